package mockservers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, payload interface{}) error {
	return json.NewEncoder(w).Encode(payload)
}

// mockItineraryContent is a schema-valid two-day itinerary, returned as the
// message content of a chat completion.
const mockItineraryContent = `{
  "name": "Ubud Eco Escape",
  "destination": "Ubud",
  "date_from": "2024-01-01",
  "date_to": "2024-01-02",
  "days": [
    {
      "id": "day-1",
      "date": "2024-01-01",
      "activities": [
        {
          "id": "act-1",
          "time": "09:00 - 11:00",
          "title": "Bamboo bike tour through the rice terraces",
          "description": "Guided ride on locally built bamboo bikes.",
          "type": "sightseeing",
          "eco_tag": "community-run",
          "cost": 25,
          "currency": "USD",
          "location": {"name": "Tegallalang Rice Terrace", "lat": -8.4312, "lng": 115.2777}
        }
      ]
    },
    {
      "id": "day-2",
      "date": "2024-01-02",
      "activities": [
        {
          "id": "act-2",
          "time": "12:30",
          "title": "Lunch at Moksa Plant-based Cuisine",
          "description": "Farm-to-table restaurant growing its own produce.",
          "type": "food",
          "eco_tag": "farm-to-table",
          "cost": 18,
          "currency": "USD",
          "location": {"name": "Moksa Ubud", "lat": -8.4964, "lng": 115.2413}
        }
      ]
    }
  ],
  "budget": {"total": 1000, "breakdown": {"food": 300, "transport": 200, "stay": 500}},
  "carbon": {"saved_kg": 42.5, "total_kg": 120.0, "reduced_percent": 26.2}
}`

func StartGenerationApiServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", GenerationApiHandler)

	fmt.Println("Generation API server starting on port 8085")

	err := http.ListenAndServe(":8085", mux)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Generation API server")
	}
}

func GenerationApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]string{
					"role":    "assistant",
					"content": mockItineraryContent,
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := writeJSON(w, response)
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
