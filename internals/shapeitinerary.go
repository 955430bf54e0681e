package internals

import (
	"strings"
	"time"

	"kelana-server/model"
)

const timeSeparator = " - "
const defaultCurrency = "USD"

// ShapeItinerary turns the validated model output plus the original request
// into the row set the persistence layer writes. Destination name and
// coordinates come from the request, not from the model, so the map view can
// never drift from what the user picked.
func ShapeItinerary(generated model.GeneratedItinerary, request model.TripRequest, profileID int) model.ItineraryDetails {
	itinerary := model.Itinerary{
		// id auto increment
		ProfileID:       profileID,
		Name:            generated.Name,
		Description:     "",
		Status:          model.StatusConfirmed,
		DestinationName: request.Destination.Name,
		DestinationLat:  request.Destination.Lat,
		DestinationLng:  request.Destination.Lng,
		DateFrom:        request.DateFrom,
		DateTo:          request.DateTo,
		TravelType:      request.TravelType,
		TravelStyles:    request.TravelStyles,
		DietaryNeeds:    request.DietaryNeeds,
		BudgetTotal:     request.Budget,
		BudgetSpent:     0,
		BudgetRemaining: request.Budget,
	}

	if generated.Budget != nil {
		itinerary.BudgetBreakdown = generated.Budget.Breakdown
	}
	if generated.Carbon != nil {
		itinerary.CarbonSavedKg = generated.Carbon.SavedKg
		itinerary.CarbonTotalKg = generated.Carbon.TotalKg
		itinerary.CarbonReducedPercent = generated.Carbon.ReducedPercent
	}

	details := model.ItineraryDetails{Itinerary: itinerary}
	for dayIndex, generatedDay := range generated.Days {
		day := model.ItineraryDay{
			// id auto increment, itinerary id set by the writer
			DayIndex: dayIndex,
			Date:     parseDayDate(generatedDay.Date, request.DateFrom, dayIndex),
		}

		var activities []model.ItineraryActivity
		for activityIndex, generatedActivity := range generatedDay.Activities {
			activities = append(activities, shapeActivity(generatedActivity, activityIndex))
		}

		details.Days = append(details.Days, model.DayDetails{Day: day, Activities: activities})
	}

	return details
}

func shapeActivity(generated model.GeneratedActivity, activityIndex int) model.ItineraryActivity {
	startTime, endTime := SplitTimeRange(generated.Time)

	currency := generated.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	activity := model.ItineraryActivity{
		// id auto increment, day id set by the writer
		ActivityIndex: activityIndex,
		StartTime:     startTime,
		EndTime:       endTime,
		Title:         generated.Title,
		Description:   generated.Description,
		Type:          generated.Type,
		Status:        model.ActivityStatusPlanned,
		Cost:          generated.Cost,
		Currency:      currency,
		EcoTags:       []string{generated.EcoTag},
	}

	if generated.Location != nil {
		name := generated.Location.Name
		lat := generated.Location.Lat
		lng := generated.Location.Lng
		activity.LocationName = &name
		activity.LocationLat = &lat
		activity.LocationLng = &lng
		if generated.Location.Address != "" {
			address := generated.Location.Address
			activity.Address = &address
		}
	}

	return activity
}

// SplitTimeRange divides a "time" value on the literal " - " separator. A
// value without the separator has no end time. Rejoining start and end with
// the separator reproduces the original string.
func SplitTimeRange(timeRange string) (string, *string) {
	before, after, found := strings.Cut(timeRange, timeSeparator)
	if !found {
		return timeRange, nil
	}
	return before, &after
}

// parseDayDate trusts the generated per-day date when it parses, and falls
// back to trip start + day offset when it does not.
func parseDayDate(generatedDate string, dateFrom time.Time, dayIndex int) time.Time {
	date, err := time.Parse(dateLayout, generatedDate)
	if err != nil {
		return dateFrom.AddDate(0, 0, dayIndex)
	}
	return date
}
