package db

import (
	"gorm.io/gorm"

	"kelana-server/model"
)

type ProfileDAO struct {
	db *gorm.DB
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{db: db}
}

func (profileDAO *ProfileDAO) GetProfileById(id int) (model.Profile, error) {
	var profile model.Profile
	result := profileDAO.db.First(&profile, id)
	return profile, result.Error
}

func (profileDAO *ProfileDAO) GetProfileByFirebaseUID(firebaseUID string) (model.Profile, error) {
	var profile model.Profile
	result := profileDAO.db.Where("firebase_uid = ?", firebaseUID).First(&profile)
	return profile, result.Error
}

func (profileDAO *ProfileDAO) AddProfile(profile model.Profile) (model.Profile, error) {
	result := profileDAO.db.Create(&profile)
	return profile, result.Error
}

func (profileDAO *ProfileDAO) UpdateProfile(profile model.Profile) error {
	result := profileDAO.db.Save(&profile)
	return result.Error
}

// UpdateHomePreferences stores the home coordinates and trip preferences the
// user entered in the itinerary form. Profiles are never hard-deleted.
func (profileDAO *ProfileDAO) UpdateHomePreferences(profileID int, home model.Coordinates, travelStyles, dietaryNeeds []string) error {
	profile, err := profileDAO.GetProfileById(profileID)
	if err != nil {
		return err
	}

	lat := home.Lat
	lng := home.Lng
	profile.HomeLat = &lat
	profile.HomeLng = &lng
	profile.DietaryNeeds = dietaryNeeds

	preferences, err := model.EncodePreferences(travelStyles)
	if err != nil {
		return err
	}
	profile.Preferences = preferences

	return profileDAO.UpdateProfile(profile)
}
