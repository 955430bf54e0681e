package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kelana-server/db"
	"kelana-server/externals"
	"kelana-server/mockservers"
	"kelana-server/model"
)

var handlerDBCounter atomic.Int64

// setupHandlerDB opens a per-test in-memory database and publishes it as the
// shared connection the handlers resolve through db.GetDB.
func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", handlerDBCounter.Add(1))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&model.Profile{},
		&model.Itinerary{},
		&model.ItineraryDay{},
		&model.ItineraryActivity{},
	)
	require.NoError(t, err)

	db.SetDB(database)

	t.Cleanup(func() {
		db.SetDB(nil)
		sqlDB, err := database.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	return database
}

// addTestProfile inserts the profile of the fake verified user.
func addTestProfile(t *testing.T, database *gorm.DB) model.Profile {
	t.Helper()
	profile := model.Profile{FirebaseUID: "firebase_uid", DisplayName: "Alex"}
	require.NoError(t, database.Create(&profile).Error)
	return profile
}

func baliTripForm() url.Values {
	form := url.Values{}
	form.Set("tripName", "Bali Trip")
	form.Set("destination", `{"name":"Ubud","lat":-8.5069,"lng":115.2625}`)
	form.Set("dateRange", `{"from":"2024-01-01","to":"2024-01-03"}`)
	form.Set("travelType", "solo")
	form.Set("travelStyles", `["culinary"]`)
	form.Set("dietaryNeeds", `[]`)
	form.Set("budget", "1000")
	return form
}

func postCreateItinerary(t *testing.T, form url.Values) CreateItineraryResult {
	t.Helper()

	req := httptest.NewRequest("POST", "/itineraries", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer some-token")
	recorder := httptest.NewRecorder()

	HandleCreateItinerary(recorder, req)

	// the envelope always travels on 200, failures included
	require.Equal(t, http.StatusOK, recorder.Code)
	var result CreateItineraryResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	return result
}

func countRows(database *gorm.DB) (itineraries, days, activities int64) {
	database.Model(&model.Itinerary{}).Count(&itineraries)
	database.Model(&model.ItineraryDay{}).Count(&days)
	database.Model(&model.ItineraryActivity{}).Count(&activities)
	return
}

func TestHandleCreateItinerarySuccess(t *testing.T) {
	database := setupHandlerDB(t)
	profile := addTestProfile(t, database)

	server := httptest.NewServer(http.HandlerFunc(mockservers.GenerationApiHandler))
	defer server.Close()
	externals.SetGenerationApi(server.URL, "", "test-model")

	result := postCreateItinerary(t, baliTripForm())

	require.True(t, result.Success, result.Error)
	assert.Empty(t, result.Error)
	require.NotZero(t, result.ItineraryID)

	itineraries, days, activities := countRows(database)
	assert.Equal(t, int64(1), itineraries)
	assert.Equal(t, int64(2), days)
	assert.Equal(t, int64(2), activities)

	var itinerary model.Itinerary
	require.NoError(t, database.First(&itinerary, result.ItineraryID).Error)
	assert.Equal(t, profile.ProfileID, itinerary.ProfileID)
	assert.Equal(t, model.StatusConfirmed, itinerary.Status)
	// coordinates come from the form, never from the generated text
	assert.Equal(t, "Ubud", itinerary.DestinationName)
	assert.Equal(t, -8.5069, itinerary.DestinationLat)
	assert.Equal(t, 115.2625, itinerary.DestinationLng)
}

func TestHandleCreateItineraryGenerationFailure(t *testing.T) {
	database := setupHandlerDB(t)
	addTestProfile(t, database)

	// a completion whose content is not an itinerary at all
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"sorry, no plan today"}}]}`)
	}))
	defer server.Close()
	externals.SetGenerationApi(server.URL, "", "test-model")

	result := postCreateItinerary(t, baliTripForm())

	assert.False(t, result.Success)
	assert.Zero(t, result.ItineraryID)
	assert.NotEmpty(t, result.Error)

	// nothing was written
	itineraries, days, activities := countRows(database)
	assert.Equal(t, int64(0), itineraries)
	assert.Equal(t, int64(0), days)
	assert.Equal(t, int64(0), activities)
}

func TestHandleCreateItineraryValidationFailure(t *testing.T) {
	database := setupHandlerDB(t)
	addTestProfile(t, database)

	form := baliTripForm()
	form.Del("budget")
	result := postCreateItinerary(t, form)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "budget")

	itineraries, _, _ := countRows(database)
	assert.Equal(t, int64(0), itineraries)
}

func TestHandleCreateItineraryMissingAuthHeader(t *testing.T) {
	setupHandlerDB(t)

	req := httptest.NewRequest("POST", "/itineraries", strings.NewReader(baliTripForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()

	HandleCreateItinerary(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandleCreateItineraryNoProfileRow(t *testing.T) {
	// verified token, but the user never created a profile
	setupHandlerDB(t)

	req := httptest.NewRequest("POST", "/itineraries", strings.NewReader(baliTripForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer some-token")
	recorder := httptest.NewRecorder()

	HandleCreateItinerary(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleDashboardNoProfileRow(t *testing.T) {
	setupHandlerDB(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	recorder := httptest.NewRecorder()

	HandleDashboard(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleDashboard(t *testing.T) {
	database := setupHandlerDB(t)
	addTestProfile(t, database)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	recorder := httptest.NewRecorder()

	HandleDashboard(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var summary model.DashboardSummary
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&summary))
	assert.Zero(t, summary.ActiveTrips)
	assert.Zero(t, summary.EcoScore)
}
