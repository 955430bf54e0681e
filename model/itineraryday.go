package model

import "time"

type ItineraryDay struct {
	DayID       int       `gorm:"column:id_day;primaryKey;autoIncrement" json:"day_id"`
	ItineraryID int       `gorm:"column:id_itinerary;type:integer;not null;uniqueIndex:idx_day_position;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"itinerary_id"`
	DayIndex    int       `gorm:"column:day_index;type:integer;not null;uniqueIndex:idx_day_position" json:"day_index"`
	Date        time.Time `gorm:"column:date;type:date;not null" json:"date"`
}

func (ItineraryDay) TableName() string {
	return "itinerary_days"
}
