package model

const (
	ActivityTransportation = "transportation"
	ActivityAccommodation  = "accommodation"
	ActivityFood           = "food"
	ActivityDrink          = "drink"
	ActivitySightseeing    = "sightseeing"
	ActivityWellness       = "wellness"
	ActivityLogistics      = "logistics"
	ActivityEvent          = "event"
	ActivityOther          = "other"
)

const ActivityStatusPlanned = "planned"

type ItineraryActivity struct {
	ActivityID    int      `gorm:"column:id_activity;primaryKey;autoIncrement" json:"activity_id"`
	DayID         int      `gorm:"column:id_day;type:integer;not null;uniqueIndex:idx_activity_position;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"day_id"`
	ActivityIndex int      `gorm:"column:activity_index;type:integer;not null;uniqueIndex:idx_activity_position" json:"activity_index"`
	StartTime     string   `gorm:"column:start_time;type:text;not null" json:"start_time"`
	EndTime       *string  `gorm:"column:end_time;type:text" json:"end_time"` // can be nil, pointer
	Title         string   `gorm:"column:title;type:text;not null" json:"title"`
	Description   string   `gorm:"column:description;type:text" json:"description"`
	Type          string   `gorm:"column:type;type:text;not null" json:"type"`
	Status        string   `gorm:"column:status;type:text;not null" json:"status"`
	LocationName  *string  `gorm:"column:location_name;type:text" json:"location_name"`
	LocationLat   *float64 `gorm:"column:location_lat;type:numeric" json:"location_lat"`
	LocationLng   *float64 `gorm:"column:location_lng;type:numeric" json:"location_lng"`
	Address       *string  `gorm:"column:address;type:text" json:"address"`
	Cost          float64  `gorm:"column:cost;type:numeric;not null" json:"cost"`
	Currency      string   `gorm:"column:currency;type:text;not null" json:"currency"`
	EcoTags       []string `gorm:"column:eco_tags;type:jsonb;serializer:json" json:"eco_tags"`
}

func (ItineraryActivity) TableName() string {
	return "itinerary_activities"
}

func ValidActivityType(activityType string) bool {
	switch activityType {
	case ActivityTransportation, ActivityAccommodation, ActivityFood, ActivityDrink,
		ActivitySightseeing, ActivityWellness, ActivityLogistics, ActivityEvent, ActivityOther:
		return true
	}
	return false
}

// TimeRange rejoins start and end time with the separator used on the wire.
func (a ItineraryActivity) TimeRange() string {
	if a.EndTime == nil {
		return a.StartTime
	}
	return a.StartTime + " - " + *a.EndTime
}
