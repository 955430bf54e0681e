package model

import "fmt"

// GeneratedItinerary is the structured object the completion endpoint must
// return. The generation client decodes into these structs and calls Validate
// before anything reaches the persistence layer.
type GeneratedItinerary struct {
	Name        string           `json:"name"`
	Destination string           `json:"destination"`
	DateFrom    string           `json:"date_from"`
	DateTo      string           `json:"date_to"`
	Days        []GeneratedDay   `json:"days"`
	Budget      *GeneratedBudget `json:"budget"` // can be nil, pointer
	Carbon      *GeneratedCarbon `json:"carbon"` // can be nil, pointer
}

type GeneratedDay struct {
	ID         string              `json:"id"`
	Date       string              `json:"date"`
	Activities []GeneratedActivity `json:"activities"`
}

type GeneratedActivity struct {
	ID          string             `json:"id"`
	Time        string             `json:"time"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	EcoTag      string             `json:"eco_tag"`
	Cost        float64            `json:"cost"`
	Currency    string             `json:"currency"`
	Location    *GeneratedLocation `json:"location"` // can be nil, pointer
}

type GeneratedLocation struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type GeneratedBudget struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
}

type GeneratedCarbon struct {
	SavedKg        float64 `json:"saved_kg"`
	TotalKg        float64 `json:"total_kg"`
	ReducedPercent float64 `json:"reduced_percent"`
}

func (g GeneratedItinerary) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("missing itinerary name")
	}
	if g.Destination == "" {
		return fmt.Errorf("missing destination")
	}
	if g.DateFrom == "" || g.DateTo == "" {
		return fmt.Errorf("missing date bounds")
	}
	if len(g.Days) == 0 {
		return fmt.Errorf("missing days")
	}
	for i, day := range g.Days {
		if day.Date == "" {
			return fmt.Errorf("day %d: missing date", i)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d: missing activities", i)
		}
		for j, activity := range day.Activities {
			if activity.Title == "" {
				return fmt.Errorf("day %d activity %d: missing title", i, j)
			}
			if activity.Time == "" {
				return fmt.Errorf("day %d activity %d: missing time", i, j)
			}
			if !ValidActivityType(activity.Type) {
				return fmt.Errorf("day %d activity %d: unknown type %q", i, j, activity.Type)
			}
			if activity.EcoTag == "" {
				return fmt.Errorf("day %d activity %d: missing eco tag", i, j)
			}
		}
	}
	return nil
}
