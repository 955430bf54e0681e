package model

type DayDetails struct {
	Day        ItineraryDay        `json:"day"`
	Activities []ItineraryActivity `json:"activities"`
}

type ItineraryDetails struct {
	Itinerary Itinerary    `json:"itinerary"`
	Days      []DayDetails `json:"days"`
}

func (d *ItineraryDetails) ActivityCount() int {
	count := 0
	for _, day := range d.Days {
		count += len(day.Activities)
	}
	return count
}
