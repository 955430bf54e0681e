package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"kelana-server/db"
	"kelana-server/externals"
	"kelana-server/internals"
	"kelana-server/model"
)

// CreateItineraryResult is the uniform envelope of the generation pipeline.
// The pipeline never surfaces a fault any other way: every failure from
// validation to persistence ends up in the error field.
type CreateItineraryResult struct {
	Success     bool   `json:"success"`
	ItineraryID int    `json:"itineraryId,omitempty"`
	Error       string `json:"error,omitempty"`
}

func HandleCreateItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	err := r.ParseForm()
	if err != nil {
		log.Println("Error parsing form: ", err)
		writeResult(w, CreateItineraryResult{Success: false, Error: "invalid form data"})
		return
	}
	form := map[string]string{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}

	// validate input
	request, err := internals.ParseTripRequest(form)
	if err != nil {
		log.Println("Invalid trip request: ", err)
		writeResult(w, CreateItineraryResult{Success: false, Error: err.Error()})
		return
	}

	// compose prompt and call the model
	prompt := internals.ComposePrompt(request)
	generated, err := externals.GenerateItinerary(prompt)
	if err != nil {
		log.Println("Generation failed: ", err)
		writeResult(w, CreateItineraryResult{Success: false, Error: err.Error()})
		return
	}

	// shape and persist the row set
	details := internals.ShapeItinerary(generated, request, profile.ProfileID)
	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	err = itineraryDAO.CreateItineraryDetails(&details)
	if err != nil {
		log.Println("Persistence failed: ", err)
		writeResult(w, CreateItineraryResult{Success: false, Error: err.Error()})
		return
	}

	// best-effort profile update: a failure here is logged and never reaches
	// the envelope
	if request.HomeLocation != nil {
		profileDAO := db.NewProfileDAO(db.GetDB())
		err = profileDAO.UpdateHomePreferences(profile.ProfileID, *request.HomeLocation, request.TravelStyles, request.DietaryNeeds)
		if err != nil {
			log.Println("Profile update failed after itinerary creation: ", err)
		}
	}

	writeResult(w, CreateItineraryResult{Success: true, ItineraryID: details.Itinerary.ItineraryID})
}

func writeResult(w http.ResponseWriter, result CreateItineraryResult) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(result)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
	}
}

func HandleItinerariesUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	itineraries, err := itineraryDAO.GetItinerariesByProfileId(profile.ProfileID)
	if err != nil {
		log.Println("Error getting itineraries: ", err)
		http.Error(w, "Error getting itineraries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(itineraries)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func HandleModifyItinerary(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getItineraryDetails(w, r)
	case "PUT":
		updateItinerary(w, r)
	case "DELETE":
		deleteItinerary(w, r)
	default:
		log.Println("HandleModifyItinerary received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

// itineraryFromPath resolves the trailing path id and checks it belongs to
// the calling user.
func itineraryFromPath(w http.ResponseWriter, r *http.Request) (model.Itinerary, bool) {
	profile, ok := requireProfile(w, r)
	if !ok {
		return model.Itinerary{}, false
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/itineraries/user/")
	itineraryID, err := strconv.Atoi(idStr)
	if err != nil || itineraryID <= 0 {
		log.Println("Itinerary id is not valid")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return model.Itinerary{}, false
	}

	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	itinerary, err := itineraryDAO.GetItineraryById(itineraryID)
	if err != nil {
		log.Println("Itinerary not found: ", err)
		http.Error(w, "Itinerary could not be found", http.StatusNotFound)
		return model.Itinerary{}, false
	}
	if itinerary.ProfileID != profile.ProfileID {
		log.Println("Itinerary does not belong to the user")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return model.Itinerary{}, false
	}

	return itinerary, true
}

func getItineraryDetails(w http.ResponseWriter, r *http.Request) {
	itinerary, ok := itineraryFromPath(w, r)
	if !ok {
		return
	}

	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	details, err := itineraryDAO.GetItineraryDetailsByItineraryId(itinerary.ItineraryID)
	if err != nil {
		log.Println("Error getting itinerary details: ", err)
		http.Error(w, "Error getting itinerary details", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(details)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

type updateItineraryPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	BudgetSpent *float64 `json:"budget_spent"`
}

func updateItinerary(w http.ResponseWriter, r *http.Request) {
	itinerary, ok := itineraryFromPath(w, r)
	if !ok {
		return
	}

	var payload updateItineraryPayload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	if payload.Name != nil {
		if *payload.Name == "" {
			log.Println("Empty itinerary name")
			http.Error(w, "Itinerary name cannot be empty", http.StatusBadRequest)
			return
		}
		itinerary.Name = *payload.Name
	}
	if payload.Description != nil {
		itinerary.Description = *payload.Description
	}
	if payload.Status != nil {
		if !model.ValidStatus(*payload.Status) {
			log.Println("Invalid itinerary status")
			http.Error(w, "Invalid itinerary status", http.StatusBadRequest)
			return
		}
		itinerary.Status = *payload.Status
	}
	if payload.BudgetSpent != nil {
		if *payload.BudgetSpent < 0 {
			log.Println("Invalid budget spent")
			http.Error(w, "Budget spent cannot be negative", http.StatusBadRequest)
			return
		}
		itinerary.BudgetSpent = *payload.BudgetSpent
	}

	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	err = itineraryDAO.UpdateItinerary(itinerary)
	if err != nil {
		log.Println("Error updating itinerary: ", err)
		http.Error(w, "Error updating itinerary", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func deleteItinerary(w http.ResponseWriter, r *http.Request) {
	itinerary, ok := itineraryFromPath(w, r)
	if !ok {
		return
	}

	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	err := itineraryDAO.DeleteItinerary(itinerary.ItineraryID)
	if err != nil {
		log.Println("Error deleting itinerary: ", err)
		http.Error(w, "Error deleting itinerary", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
