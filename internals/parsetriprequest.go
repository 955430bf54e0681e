package internals

import (
	"encoding/json"
	"strconv"
	"time"

	"kelana-server/model"
)

const dateLayout = "2006-01-02"

type dateRangePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ParseTripRequest turns the flat form map of the trip wizard into a validated
// trip request. Composite fields arrive as JSON-encoded strings, budget as a
// numeric string. Pure parse, no side effects.
func ParseTripRequest(form map[string]string) (model.TripRequest, error) {
	var request model.TripRequest

	tripName, ok := form["tripName"]
	if !ok || tripName == "" {
		return model.TripRequest{}, &model.ValidationError{Field: "tripName", Constraint: "required"}
	}
	request.TripName = tripName

	// destination: JSON-encoded {name, lat, lng}
	destinationJSON, ok := form["destination"]
	if !ok || destinationJSON == "" {
		return model.TripRequest{}, &model.ValidationError{Field: "destination", Constraint: "required"}
	}
	err := json.Unmarshal([]byte(destinationJSON), &request.Destination)
	if err != nil {
		return model.TripRequest{}, &model.ValidationError{Field: "destination", Constraint: "not valid JSON"}
	}

	// home location is optional
	if homeJSON, ok := form["homeLocation"]; ok && homeJSON != "" {
		var home model.Coordinates
		err = json.Unmarshal([]byte(homeJSON), &home)
		if err != nil {
			return model.TripRequest{}, &model.ValidationError{Field: "homeLocation", Constraint: "not valid JSON"}
		}
		request.HomeLocation = &home
	}

	// date range: JSON-encoded {from, to} with date-only values
	dateRangeJSON, ok := form["dateRange"]
	if !ok || dateRangeJSON == "" {
		return model.TripRequest{}, &model.ValidationError{Field: "dateRange", Constraint: "required"}
	}
	var dateRange dateRangePayload
	err = json.Unmarshal([]byte(dateRangeJSON), &dateRange)
	if err != nil {
		return model.TripRequest{}, &model.ValidationError{Field: "dateRange", Constraint: "not valid JSON"}
	}
	request.DateFrom, err = time.Parse(dateLayout, dateRange.From)
	if err != nil {
		return model.TripRequest{}, &model.ValidationError{Field: "dateRange", Constraint: "from is not a valid date"}
	}
	request.DateTo, err = time.Parse(dateLayout, dateRange.To)
	if err != nil {
		return model.TripRequest{}, &model.ValidationError{Field: "dateRange", Constraint: "to is not a valid date"}
	}

	travelType, ok := form["travelType"]
	if !ok || travelType == "" {
		return model.TripRequest{}, &model.ValidationError{Field: "travelType", Constraint: "required"}
	}
	request.TravelType = travelType

	// travel styles and dietary needs default to empty lists
	request.TravelStyles = []string{}
	if stylesJSON, ok := form["travelStyles"]; ok && stylesJSON != "" {
		err = json.Unmarshal([]byte(stylesJSON), &request.TravelStyles)
		if err != nil {
			return model.TripRequest{}, &model.ValidationError{Field: "travelStyles", Constraint: "not valid JSON"}
		}
	}
	request.DietaryNeeds = []string{}
	if dietaryJSON, ok := form["dietaryNeeds"]; ok && dietaryJSON != "" {
		err = json.Unmarshal([]byte(dietaryJSON), &request.DietaryNeeds)
		if err != nil {
			return model.TripRequest{}, &model.ValidationError{Field: "dietaryNeeds", Constraint: "not valid JSON"}
		}
	}

	budgetStr, ok := form["budget"]
	if !ok || budgetStr == "" {
		return model.TripRequest{}, &model.ValidationError{Field: "budget", Constraint: "required"}
	}
	request.Budget, err = strconv.ParseFloat(budgetStr, 64)
	if err != nil {
		return model.TripRequest{}, &model.ValidationError{Field: "budget", Constraint: "not a valid number"}
	}

	err = request.Validate()
	if err != nil {
		return model.TripRequest{}, err
	}

	return request, nil
}
