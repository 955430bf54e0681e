package model

import (
	"math"
	"time"
)

const (
	TravelTypeSolo    = "solo"
	TravelTypeCouple  = "couple"
	TravelTypeFriends = "friends"
	TravelTypeFamily  = "family"
)

type Coordinates struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// TripRequest is the validated trip form. All fields are plain values, so an
// already-valid request re-validates as a no-op.
type TripRequest struct {
	TripName     string       `json:"trip_name"`
	Destination  Coordinates  `json:"destination"`
	HomeLocation *Coordinates `json:"home_location"` // can be nil, pointer
	DateFrom     time.Time    `json:"date_from"`
	DateTo       time.Time    `json:"date_to"`
	TravelType   string       `json:"travel_type"`
	TravelStyles []string     `json:"travel_styles"`
	DietaryNeeds []string     `json:"dietary_needs"`
	Budget       float64      `json:"budget"`
}

func ValidTravelType(travelType string) bool {
	switch travelType {
	case TravelTypeSolo, TravelTypeCouple, TravelTypeFriends, TravelTypeFamily:
		return true
	}
	return false
}

func (r TripRequest) Validate() error {
	if r.TripName == "" {
		return &ValidationError{Field: "tripName", Constraint: "required"}
	}
	if r.Destination.Name == "" {
		return &ValidationError{Field: "destination", Constraint: "name required"}
	}
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return &ValidationError{Field: "dateRange", Constraint: "required"}
	}
	if r.DateTo.Before(r.DateFrom) {
		return &ValidationError{Field: "dateRange", Constraint: "from must not be after to"}
	}
	if !ValidTravelType(r.TravelType) {
		return &ValidationError{Field: "travelType", Constraint: "must be one of solo, couple, friends, family"}
	}
	// ParseFloat accepts NaN and the infinities, and NaN slips past any
	// ordering check
	if math.IsNaN(r.Budget) || math.IsInf(r.Budget, 0) {
		return &ValidationError{Field: "budget", Constraint: "must be a finite number"}
	}
	if r.Budget < 0 {
		return &ValidationError{Field: "budget", Constraint: "must not be negative"}
	}
	return nil
}
