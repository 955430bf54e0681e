package model

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Profile struct {
	ProfileID    int            `gorm:"column:id_profile;primaryKey;autoIncrement" json:"profile_id"`
	FirebaseUID  string         `gorm:"column:firebase_uid;type:text;not null;uniqueIndex" json:"firebase_uid"`
	DisplayName  string         `gorm:"column:display_name;type:text;not null" json:"display_name"`
	Username     string         `gorm:"column:username;type:text" json:"username"`
	AvatarRef    string         `gorm:"column:avatar_ref;type:text" json:"avatar_ref"`
	Website      string         `gorm:"column:website;type:text" json:"website"`
	HomeLat      *float64       `gorm:"column:home_lat;type:numeric" json:"home_lat"` // can be nil, pointer
	HomeLng      *float64       `gorm:"column:home_lng;type:numeric" json:"home_lng"` // can be nil, pointer
	Preferences  datatypes.JSON `gorm:"column:preferences;type:jsonb" json:"preferences"`
	DietaryNeeds []string       `gorm:"column:dietary_needs;type:jsonb;serializer:json" json:"dietary_needs"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// AvatarIsURL distinguishes an absolute avatar URL from an opaque storage path
// that needs a signed download.
func (p Profile) AvatarIsURL() bool {
	return strings.HasPrefix(p.AvatarRef, "http://") ||
		strings.HasPrefix(p.AvatarRef, "https://")
}

// preferencesBlob is the shape of the profile preferences column. Only travel
// styles are stored today.
type preferencesBlob struct {
	TravelStyles []string `json:"travel_styles"`
}

func EncodePreferences(travelStyles []string) (datatypes.JSON, error) {
	encoded, err := json.Marshal(preferencesBlob{TravelStyles: travelStyles})
	if err != nil {
		return nil, err
	}
	return encoded, nil
}

func DecodePreferences(preferences datatypes.JSON) ([]string, error) {
	if len(preferences) == 0 {
		return nil, nil
	}
	var blob preferencesBlob
	err := json.Unmarshal(preferences, &blob)
	if err != nil {
		return nil, err
	}
	return blob.TravelStyles, nil
}
