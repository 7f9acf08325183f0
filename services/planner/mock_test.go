package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/models"
)

func testDraft() models.TripDraft {
	return models.TripDraft{
		DepartureCity:   "Delhi",
		DestinationCity: "Goa",
		Dates: &models.DateRange{
			Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		Duration:  5,
		Travelers: &models.Travelers{Adults: 2, Children: 1, ChildrenAges: []int{8}},
		Budget:    models.BudgetLuxury,
		Themes:    []string{"beaches", "food"},
	}
}

func TestMockGenerateIsDeterministic(t *testing.T) {
	svc := NewMockService(NewMemorySessionStore(), nil)
	draft := testDraft()

	first, err := svc.Generate(context.Background(), draft)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), draft)
	require.NoError(t, err)

	require.NotNil(t, first.Itinerary)
	require.NotNil(t, second.Itinerary)
	assert.Equal(t, len(first.Itinerary.Days), len(second.Itinerary.Days))
	assert.Equal(t, first.Itinerary.TotalCost, second.Itinerary.TotalCost)
}

func TestMockGenerateShape(t *testing.T) {
	store := NewMemorySessionStore()
	svc := NewMockService(store, nil)

	resp, err := svc.Generate(context.Background(), testDraft())
	require.NoError(t, err)

	assert.Equal(t, MockSessionID, resp.SessionID)
	assert.NotEmpty(t, resp.Message)
	require.NotNil(t, resp.Itinerary)
	assert.Len(t, resp.Itinerary.Days, 5)
	assert.Equal(t, float64(5*120), resp.Itinerary.TotalCost)
	assert.Equal(t, "USD", resp.Itinerary.Currency)
	assert.Equal(t, "5-Day Trip to Goa", resp.Itinerary.Title)
	assert.Len(t, resp.Suggestions, 3)

	for _, day := range resp.Itinerary.Days {
		require.Len(t, day.Activities, 3)
		var dayTotal float64
		for _, act := range day.Activities {
			dayTotal += act.Cost
		}
		assert.Equal(t, float64(120), dayTotal)
	}

	id, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MockSessionID, id)
}

func TestMockGenerateDefaultsEmptyDraft(t *testing.T) {
	svc := NewMockService(NewMemorySessionStore(), nil)

	resp, err := svc.Generate(context.Background(), models.TripDraft{})
	require.NoError(t, err)
	require.NotNil(t, resp.Itinerary)
	assert.Len(t, resp.Itinerary.Days, 3)
	require.NotNil(t, resp.Itinerary.Metadata)
	assert.Equal(t, models.BudgetModerate, resp.Itinerary.Metadata.Budget)
	assert.Equal(t, models.Travelers{Adults: 1}, resp.Itinerary.Metadata.Travelers)
}

func TestMockFollowUpCannedAndFallback(t *testing.T) {
	svc := NewMockService(NewMemorySessionStore(), nil)

	resp, err := svc.FollowUp(context.Background(), "Would you like to see more restaurant options?")
	require.NoError(t, err)
	assert.True(t, resp.IsFollowUpQuestion)
	assert.Len(t, resp.Suggestions, 4)
	assert.Nil(t, resp.Itinerary)

	fallback, err := svc.FollowUp(context.Background(), "something else entirely")
	require.NoError(t, err)
	assert.Equal(t, "I can help you with that. Could you please be more specific?", fallback.Message)
	assert.Len(t, fallback.Suggestions, 3)
}

func TestMockClearSession(t *testing.T) {
	store := NewMemorySessionStore()
	svc := NewMockService(store, nil)

	_, err := svc.Generate(context.Background(), testDraft())
	require.NoError(t, err)
	require.NoError(t, svc.ClearSession(context.Background()))

	id, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)
}
