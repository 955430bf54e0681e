package internals

import (
	"fmt"
	"strings"

	"kelana-server/model"
)

// ComposePrompt renders the full instruction block for the completion
// endpoint. Deterministic: the same request always yields the same string, so
// prompt output can be snapshot-tested without calling the model.
func ComposePrompt(request model.TripRequest) string {
	var b strings.Builder

	b.WriteString("You are an eco-conscious travel planner. Create a day-by-day itinerary for the following trip.\n\n")

	b.WriteString("Trip details:\n")
	b.WriteString(fmt.Sprintf("- Trip name: %s\n", request.TripName))
	b.WriteString(fmt.Sprintf("- Destination: %s (lat %.4f, lng %.4f)\n",
		request.Destination.Name, request.Destination.Lat, request.Destination.Lng))
	b.WriteString(fmt.Sprintf("- Dates: %s to %s\n",
		request.DateFrom.Format(dateLayout), request.DateTo.Format(dateLayout)))
	b.WriteString(fmt.Sprintf("- Travel type: %s\n", request.TravelType))
	if len(request.TravelStyles) > 0 {
		b.WriteString(fmt.Sprintf("- Travel styles: %s\n", strings.Join(request.TravelStyles, ", ")))
	}
	if len(request.DietaryNeeds) > 0 {
		b.WriteString(fmt.Sprintf("- Dietary needs: %s\n", strings.Join(request.DietaryNeeds, ", ")))
	}
	b.WriteString(fmt.Sprintf("- Total budget: %.2f USD\n", request.Budget))

	b.WriteString(`
Rules for every day:
- include at least one transportation entry, one dining entry (food or drink),
  one sightseeing entry, one wellness entry and one cultural engagement
- only real, existing venues; never invent a restaurant, hotel or attraction
- every location must carry real coordinates near the destination
- every activity must carry one specific eco tag naming a concrete
  sustainability practice, not a generic claim

Good eco tag examples: "farm-to-table", "zero-waste kitchen", "community-run",
"electric shuttle", "reef-safe operator".
Bad eco tag examples: "eco-friendly", "green", "sustainable vibes".

Good activity example: "Lunch at Moksa Plant-based Cuisine, a farm-to-table
restaurant growing its own produce on site."
Bad activity example: "Eat somewhere nice and sustainable."
`)

	b.WriteString(`
Respond with a single JSON object and nothing else, matching exactly this
schema: {"name", "destination", "date_from", "date_to", "days": [{"id",
"date", "activities": [{"id", "time", "title", "description", "type",
"eco_tag", "cost", "currency", "location": {"name", "lat", "lng"} | null}]}],
"budget": {"total", "breakdown"}, "carbon": {"saved_kg", "total_kg",
"reduced_percent"}}. The "time" field is "HH:MM" or "HH:MM - HH:MM". The
"type" field is one of: transportation, accommodation, food, drink,
sightseeing, wellness, logistics, event, other.
`)

	return b.String()
}
