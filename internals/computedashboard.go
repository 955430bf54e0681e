package internals

import (
	"sort"
	"time"

	"kelana-server/model"
)

// an average of 500 kg saved per itinerary maps to the score ceiling
const ecoScoreDivisor = 5.0

const trendMonths = 6

// appended when the user has fewer than two distinct destinations, so the
// impact chart stays populated
var sampleDestinationImpacts = []model.DestinationImpact{
	{Destination: "Kyoto", SavedKg: 182.4, Sample: true},
	{Destination: "Reykjavik", SavedKg: 96.7, Sample: true},
}

// ComputeDashboard derives all dashboard rollups from the already-fetched
// itinerary set. Pure reducers, no external calls.
func ComputeDashboard(itineraries []model.Itinerary, now time.Time) model.DashboardSummary {
	summary := model.DashboardSummary{
		CarbonTrend: carbonTrend(itineraries, now),
	}

	for _, itinerary := range itineraries {
		if itinerary.IsActive() {
			summary.ActiveTrips++
		}
		summary.TotalCarbonSavedKg += itinerary.CarbonSavedKg
		summary.RemainingBudget += itinerary.BudgetRemaining
	}

	summary.EcoScore = ComputeEcoScore(summary.TotalCarbonSavedKg, len(itineraries))
	summary.BudgetCategories = budgetCategories(itineraries)
	summary.DestinationImpacts = destinationImpacts(itineraries)

	return summary
}

// ComputeEcoScore maps average saved carbon per itinerary onto [0, 100].
func ComputeEcoScore(totalSavedKg float64, numItineraries int) float64 {
	if numItineraries == 0 {
		return 0
	}

	score := totalSavedKg / float64(numItineraries) / ecoScoreDivisor
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// carbonTrend buckets saved carbon by trip start month over the trailing six
// months, oldest first.
func carbonTrend(itineraries []model.Itinerary, now time.Time) []model.CarbonTrendPoint {
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var trend []model.CarbonTrendPoint
	for offset := trendMonths - 1; offset >= 0; offset-- {
		month := currentMonth.AddDate(0, -offset, 0)

		savedKg := 0.0
		for _, itinerary := range itineraries {
			if itinerary.DateFrom.Year() == month.Year() && itinerary.DateFrom.Month() == month.Month() {
				savedKg += itinerary.CarbonSavedKg
			}
		}

		trend = append(trend, model.CarbonTrendPoint{
			Month:   month.Format("Jan"),
			SavedKg: savedKg,
		})
	}

	return trend
}

func budgetCategories(itineraries []model.Itinerary) []model.BudgetCategoryShare {
	totals := map[string]float64{}
	grandTotal := 0.0
	for _, itinerary := range itineraries {
		for category, amount := range itinerary.BudgetBreakdown {
			totals[category] += amount
			grandTotal += amount
		}
	}

	var shares []model.BudgetCategoryShare
	for category, amount := range totals {
		share := model.BudgetCategoryShare{Category: category, Amount: amount}
		if grandTotal > 0 {
			share.Percentage = amount / grandTotal * 100
		}
		shares = append(shares, share)
	}

	// map iteration order is random
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

func destinationImpacts(itineraries []model.Itinerary) []model.DestinationImpact {
	totals := map[string]float64{}
	var order []string
	for _, itinerary := range itineraries {
		if _, seen := totals[itinerary.DestinationName]; !seen {
			order = append(order, itinerary.DestinationName)
		}
		totals[itinerary.DestinationName] += itinerary.CarbonSavedKg
	}

	var impacts []model.DestinationImpact
	for _, destination := range order {
		impacts = append(impacts, model.DestinationImpact{
			Destination: destination,
			SavedKg:     totals[destination],
		})
	}

	// fall back to sample data so the chart never renders empty
	if len(impacts) < 2 {
		impacts = append(impacts, sampleDestinationImpacts...)
	}

	return impacts
}
