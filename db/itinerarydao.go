package db

import (
	"errors"

	"gorm.io/gorm"

	"kelana-server/model"
)

type ItineraryDAO struct {
	db *gorm.DB
}

func NewItineraryDAO(db *gorm.DB) *ItineraryDAO {
	return &ItineraryDAO{db: db}
}

// CreateItineraryDetails writes the itinerary row, then every day in order,
// then every activity of each day in order. Writes are sequential and stop at
// the first error; rows already written are left in place, so a mid-sequence
// failure leaves the itinerary with a partial set of children.
func (itineraryDAO *ItineraryDAO) CreateItineraryDetails(details *model.ItineraryDetails) error {
	// create itinerary entry
	result := itineraryDAO.db.Create(&details.Itinerary)
	if result.Error != nil {
		return &model.PersistenceError{Op: "itinerary insert", Err: result.Error}
	}

	for i := range details.Days {
		// set itineraryID on the day, then create it
		details.Days[i].Day.ItineraryID = details.Itinerary.ItineraryID
		result = itineraryDAO.db.Create(&details.Days[i].Day)
		if result.Error != nil {
			return &model.PersistenceError{Op: "day insert", Err: result.Error}
		}

		// create activity entries with the returned day id
		for j := range details.Days[i].Activities {
			details.Days[i].Activities[j].DayID = details.Days[i].Day.DayID
			result = itineraryDAO.db.Create(&details.Days[i].Activities[j])
			if result.Error != nil {
				return &model.PersistenceError{Op: "activity insert", Err: result.Error}
			}
		}
	}

	return nil
}

func (itineraryDAO *ItineraryDAO) GetItinerariesByProfileId(profileID int) ([]model.Itinerary, error) {
	var itineraries []model.Itinerary
	result := itineraryDAO.db.Where("id_profile = ?", profileID).Order("created_at").Find(&itineraries)
	if result.Error != nil {
		return nil, result.Error
	}
	return itineraries, nil
}

func (itineraryDAO *ItineraryDAO) GetItineraryById(itineraryID int) (model.Itinerary, error) {
	var itinerary model.Itinerary
	result := itineraryDAO.db.First(&itinerary, itineraryID)
	return itinerary, result.Error
}

func (itineraryDAO *ItineraryDAO) GetItineraryDetailsByItineraryId(itineraryID int) (model.ItineraryDetails, error) {
	// get itinerary
	itinerary, err := itineraryDAO.GetItineraryById(itineraryID)
	if err != nil {
		return model.ItineraryDetails{}, err
	}

	// get days in display order
	var days []model.ItineraryDay
	result := itineraryDAO.db.Where("id_itinerary = ?", itinerary.ItineraryID).Order("day_index").Find(&days)
	if result.Error != nil {
		return model.ItineraryDetails{}, result.Error
	}

	// get activities for every day, in display order
	details := model.ItineraryDetails{Itinerary: itinerary}
	for _, day := range days {
		var activities []model.ItineraryActivity
		result = itineraryDAO.db.Where("id_day = ?", day.DayID).Order("activity_index").Find(&activities)
		if result.Error != nil {
			return model.ItineraryDetails{}, result.Error
		}
		details.Days = append(details.Days, model.DayDetails{Day: day, Activities: activities})
	}

	return details, nil
}

func (itineraryDAO *ItineraryDAO) UpdateItinerary(itinerary model.Itinerary) error {
	// keep the advisory invariant: remaining is recomputed at write time
	itinerary.BudgetRemaining = itinerary.BudgetTotal - itinerary.BudgetSpent

	result := itineraryDAO.db.Save(&itinerary)
	return result.Error
}

// DeleteItinerary removes the children before the parent: activities of every
// day, then the days, then the itinerary row itself.
func (itineraryDAO *ItineraryDAO) DeleteItinerary(itineraryID int) error {
	// get days
	var days []model.ItineraryDay
	result := itineraryDAO.db.Where("id_itinerary = ?", itineraryID).Find(&days)
	if result.Error != nil {
		return result.Error
	}

	// delete activities of every day
	for _, day := range days {
		result = itineraryDAO.db.Where("id_day = ?", day.DayID).Delete(&model.ItineraryActivity{})
		if result.Error != nil {
			return result.Error
		}
	}

	// delete days
	result = itineraryDAO.db.Where("id_itinerary = ?", itineraryID).Delete(&model.ItineraryDay{})
	if result.Error != nil {
		return result.Error
	}

	// delete itinerary
	result = itineraryDAO.db.Delete(&model.Itinerary{}, itineraryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("itinerary not found")
	}

	return nil
}
