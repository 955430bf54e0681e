package model

// DashboardSummary is the struct that will be sent to the client to fill the
// dashboard cards and charts, derived in memory from the user's itineraries
type DashboardSummary struct {
	ActiveTrips        int                   `json:"active_trips"`
	TotalCarbonSavedKg float64               `json:"total_carbon_saved_kg"`
	RemainingBudget    float64               `json:"remaining_budget"`
	EcoScore           float64               `json:"eco_score"`
	CarbonTrend        []CarbonTrendPoint    `json:"carbon_trend"`
	BudgetCategories   []BudgetCategoryShare `json:"budget_categories"`
	DestinationImpacts []DestinationImpact   `json:"destination_impacts"`
}

type CarbonTrendPoint struct {
	Month   string  `json:"month"`
	SavedKg float64 `json:"saved_kg"`
}

type BudgetCategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type DestinationImpact struct {
	Destination string  `json:"destination"`
	SavedKg     float64 `json:"saved_kg"`
	Sample      bool    `json:"sample"`
}
