package model

import "time"

const (
	StatusDraft     = "draft"
	StatusPlanning  = "planning"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Itinerary struct {
	ItineraryID          int                `gorm:"column:id_itinerary;primaryKey;autoIncrement" json:"itinerary_id"`
	ProfileID            int                `gorm:"column:id_profile;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"profile_id"`
	Name                 string             `gorm:"column:name;type:text;not null" json:"name"`
	Description          string             `gorm:"column:description;type:text" json:"description"`
	Status               string             `gorm:"column:status;type:text;not null" json:"status"`
	DestinationName      string             `gorm:"column:destination_name;type:text;not null" json:"destination_name"`
	DestinationLat       float64            `gorm:"column:destination_lat;type:numeric;not null" json:"destination_lat"`
	DestinationLng       float64            `gorm:"column:destination_lng;type:numeric;not null" json:"destination_lng"`
	DateFrom             time.Time          `gorm:"column:date_from;type:date;not null" json:"date_from"`
	DateTo               time.Time          `gorm:"column:date_to;type:date;not null" json:"date_to"`
	TravelType           string             `gorm:"column:travel_type;type:text;not null" json:"travel_type"`
	TravelStyles         []string           `gorm:"column:travel_styles;type:jsonb;serializer:json" json:"travel_styles"`
	DietaryNeeds         []string           `gorm:"column:dietary_needs;type:jsonb;serializer:json" json:"dietary_needs"`
	BudgetTotal          float64            `gorm:"column:budget_total;type:numeric;not null" json:"budget_total"`
	BudgetSpent          float64            `gorm:"column:budget_spent;type:numeric;not null" json:"budget_spent"`
	BudgetRemaining      float64            `gorm:"column:budget_remaining;type:numeric;not null" json:"budget_remaining"`
	BudgetBreakdown      map[string]float64 `gorm:"column:budget_breakdown;type:jsonb;serializer:json" json:"budget_breakdown"`
	CarbonSavedKg        float64            `gorm:"column:carbon_saved_kg;type:numeric;not null" json:"carbon_saved_kg"`
	CarbonTotalKg        float64            `gorm:"column:carbon_total_kg;type:numeric;not null" json:"carbon_total_kg"`
	CarbonReducedPercent float64            `gorm:"column:carbon_reduced_percent;type:numeric;not null" json:"carbon_reduced_percent"`
	CreatedAt            time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPlanning, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the trip counts towards the dashboard active-trip
// number: not yet archived, not abandoned.
func (i Itinerary) IsActive() bool {
	return i.Status == StatusPlanning || i.Status == StatusConfirmed
}
