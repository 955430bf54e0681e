package internals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelana-server/model"
)

func TestComputeEcoScoreClamp(t *testing.T) {
	assert.Equal(t, 0.0, ComputeEcoScore(0, 0))
	assert.Equal(t, 0.0, ComputeEcoScore(-50, 3))
	assert.Equal(t, 100.0, ComputeEcoScore(1e9, 2))
	assert.Equal(t, 10.0, ComputeEcoScore(100, 2))

	// clamped for arbitrarily large savings
	for _, savedKg := range []float64{1e3, 1e6, 1e12} {
		score := ComputeEcoScore(savedKg, 1)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestComputeDashboardTotals(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	itineraries := []model.Itinerary{
		{
			Status:          model.StatusConfirmed,
			DestinationName: "Ubud",
			DateFrom:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CarbonSavedKg:   40,
			BudgetRemaining: 700,
			BudgetBreakdown: map[string]float64{"food": 300, "stay": 100},
		},
		{
			Status:          model.StatusCompleted,
			DestinationName: "Lisbon",
			DateFrom:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			CarbonSavedKg:   60,
			BudgetRemaining: 50,
			BudgetBreakdown: map[string]float64{"food": 100},
		},
	}

	summary := ComputeDashboard(itineraries, now)

	assert.Equal(t, 1, summary.ActiveTrips)
	assert.Equal(t, 100.0, summary.TotalCarbonSavedKg)
	assert.Equal(t, 750.0, summary.RemainingBudget)
	assert.Equal(t, 10.0, summary.EcoScore)

	require.Len(t, summary.BudgetCategories, 2)
	assert.Equal(t, "food", summary.BudgetCategories[0].Category)
	assert.Equal(t, 400.0, summary.BudgetCategories[0].Amount)
	assert.Equal(t, 80.0, summary.BudgetCategories[0].Percentage)
	assert.Equal(t, "stay", summary.BudgetCategories[1].Category)
	assert.Equal(t, 20.0, summary.BudgetCategories[1].Percentage)
}

func TestComputeDashboardCarbonTrend(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	itineraries := []model.Itinerary{
		{DestinationName: "Ubud", DateFrom: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), CarbonSavedKg: 40},
		{DestinationName: "Ubud", DateFrom: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), CarbonSavedKg: 25},
		// outside the trailing window
		{DestinationName: "Ubud", DateFrom: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), CarbonSavedKg: 99},
	}

	trend := ComputeDashboard(itineraries, now).CarbonTrend
	require.Len(t, trend, 6)

	// oldest first: Oct Nov Dec Jan Feb Mar
	assert.Equal(t, "Oct", trend[0].Month)
	assert.Equal(t, "Mar", trend[5].Month)
	assert.Equal(t, 0.0, trend[0].SavedKg)
	assert.Equal(t, 25.0, trend[3].SavedKg)
	assert.Equal(t, 40.0, trend[5].SavedKg)
}

func TestComputeDashboardPlaceholderDestinations(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	// one distinct destination: placeholders keep the chart populated
	itineraries := []model.Itinerary{
		{Status: model.StatusConfirmed, DestinationName: "Ubud", CarbonSavedKg: 40},
		{Status: model.StatusConfirmed, DestinationName: "Ubud", CarbonSavedKg: 10},
	}

	impacts := ComputeDashboard(itineraries, now).DestinationImpacts
	require.Len(t, impacts, 3)
	assert.Equal(t, "Ubud", impacts[0].Destination)
	assert.Equal(t, 50.0, impacts[0].SavedKg)
	assert.False(t, impacts[0].Sample)
	assert.True(t, impacts[1].Sample)
	assert.True(t, impacts[2].Sample)
}

func TestComputeDashboardNoPlaceholderWithTwoDestinations(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	itineraries := []model.Itinerary{
		{DestinationName: "Ubud", CarbonSavedKg: 40},
		{DestinationName: "Lisbon", CarbonSavedKg: 10},
	}

	impacts := ComputeDashboard(itineraries, now).DestinationImpacts
	require.Len(t, impacts, 2)
	for _, impact := range impacts {
		assert.False(t, impact.Sample)
	}
}
