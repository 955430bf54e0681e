package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGenerated() GeneratedItinerary {
	return GeneratedItinerary{
		Name:        "Trip",
		Destination: "Ubud",
		DateFrom:    "2024-01-01",
		DateTo:      "2024-01-02",
		Days: []GeneratedDay{
			{
				ID:   "day-1",
				Date: "2024-01-01",
				Activities: []GeneratedActivity{
					{ID: "act-1", Time: "09:00", Title: "Bike tour", Type: ActivitySightseeing, EcoTag: "community-run"},
				},
			},
		},
	}
}

func TestGeneratedValidateAccepts(t *testing.T) {
	require.NoError(t, validGenerated().Validate())
}

func TestGeneratedValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GeneratedItinerary)
	}{
		{"missing name", func(g *GeneratedItinerary) { g.Name = "" }},
		{"missing destination", func(g *GeneratedItinerary) { g.Destination = "" }},
		{"missing date bounds", func(g *GeneratedItinerary) { g.DateFrom = "" }},
		{"missing days", func(g *GeneratedItinerary) { g.Days = nil }},
		{"day without date", func(g *GeneratedItinerary) { g.Days[0].Date = "" }},
		{"day without activities", func(g *GeneratedItinerary) { g.Days[0].Activities = nil }},
		{"activity without title", func(g *GeneratedItinerary) { g.Days[0].Activities[0].Title = "" }},
		{"activity without time", func(g *GeneratedItinerary) { g.Days[0].Activities[0].Time = "" }},
		{"activity with unknown type", func(g *GeneratedItinerary) { g.Days[0].Activities[0].Type = "parade" }},
		{"activity without eco tag", func(g *GeneratedItinerary) { g.Days[0].Activities[0].EcoTag = "" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			generated := validGenerated()
			c.mutate(&generated)
			assert.Error(t, generated.Validate())
		})
	}
}

func TestValidActivityType(t *testing.T) {
	for _, activityType := range []string{
		ActivityTransportation, ActivityAccommodation, ActivityFood, ActivityDrink,
		ActivitySightseeing, ActivityWellness, ActivityLogistics, ActivityEvent, ActivityOther,
	} {
		assert.True(t, ValidActivityType(activityType))
	}
	assert.False(t, ValidActivityType("parade"))
	assert.False(t, ValidActivityType(""))
}
