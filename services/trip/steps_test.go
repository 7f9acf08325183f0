package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/models"
)

func TestTransitionTravelersSkipsAgesWithoutChildren(t *testing.T) {
	out, ok := Transition(StepTravelers, models.TripDraft{}, TravelersInput{Adults: 2})
	require.True(t, ok)
	assert.Equal(t, StepBudget, out.Next)
	assert.Equal(t, "2 adults", out.Echo)
}

func TestTransitionTravelersBranchesToAgesWithChildren(t *testing.T) {
	out, ok := Transition(StepTravelers, models.TripDraft{}, TravelersInput{Adults: 2, Children: 2, Infants: 1})
	require.True(t, ok)
	assert.Equal(t, StepChildrenAges, out.Next)
	assert.Equal(t, "2 adults, 2 children, 1 infant", out.Echo)
}

func TestTransitionTravelersRequiresAnAdult(t *testing.T) {
	_, ok := Transition(StepTravelers, models.TripDraft{}, TravelersInput{Adults: 0, Children: 1})
	assert.False(t, ok)
}

func TestTransitionChildrenAgesClamped(t *testing.T) {
	draft := models.TripDraft{Travelers: &models.Travelers{Adults: 2, Children: 3}}
	out, ok := Transition(StepChildrenAges, draft, ChildrenAgesInput{Ages: []int{1, 7, 15}})
	require.True(t, ok)
	require.NotNil(t, out.Patch)
	require.NotNil(t, out.Patch.Travelers)
	assert.Equal(t, []int{2, 7, 11}, out.Patch.Travelers.ChildrenAges)
}

func TestTransitionChildrenAgesCountMustMatch(t *testing.T) {
	draft := models.TripDraft{Travelers: &models.Travelers{Adults: 2, Children: 2}}
	_, ok := Transition(StepChildrenAges, draft, ChildrenAgesInput{Ages: []int{5}})
	assert.False(t, ok)
}

func TestTransitionThemesRequireAtLeastOne(t *testing.T) {
	_, ok := Transition(StepThemes, models.TripDraft{}, ThemesInput{})
	assert.False(t, ok)

	_, ok = Transition(StepThemes, models.TripDraft{}, ThemesInput{Themes: []string{"skydiving"}})
	assert.False(t, ok, "unknown tag must be rejected")

	out, ok := Transition(StepThemes, models.TripDraft{}, ThemesInput{Themes: []string{"beaches", "food"}})
	require.True(t, ok)
	assert.Equal(t, StepConstraints, out.Next)
}

func TestTransitionConstraintsMayBeEmpty(t *testing.T) {
	out, ok := Transition(StepConstraints, models.TripDraft{}, ConstraintsInput{})
	require.True(t, ok)
	assert.Equal(t, "No specific constraints", out.Echo)
	assert.Equal(t, StepFlights, out.Next)
}

func TestTransitionDatesComputesInclusiveDuration(t *testing.T) {
	rng := models.DateRange{Start: day(2026, 3, 1), End: day(2026, 3, 5)}
	out, ok := Transition(StepDates, models.TripDraft{}, DateRangeInput{Range: rng, Nights: 4})
	require.True(t, ok)
	require.NotNil(t, out.Patch.Duration)
	assert.Equal(t, 5, *out.Patch.Duration)
	assert.Equal(t, "From Mar 1, 2026 to Mar 5, 2026 (5 days)", out.Echo)
}

func TestTransitionAccommodationPromptsSummary(t *testing.T) {
	draft := models.TripDraft{
		Duration:        5,
		DepartureCity:   "Delhi",
		DestinationCity: "Goa",
		Travelers:       &models.Travelers{Adults: 2, Children: 1},
		Budget:          models.BudgetLuxury,
		Themes:          []string{"beaches", "food", "adventure"},
	}
	out, ok := Transition(StepAccommodation, draft, AccommodationInput{Include: true, StarRating: "4-star"})
	require.True(t, ok)
	assert.Equal(t, StepConfirmation, out.Next)
	assert.Equal(t, "Include hotels (4-star)", out.Echo)
	assert.Equal(t,
		"Okay, you're planning a 5-day family trip from Delhi to Goa with a luxury budget focusing on beaches and food. Shall I create your itinerary?",
		out.Prompt,
	)
}

func TestTransitionConfirmationRejectionKeepsDraft(t *testing.T) {
	out, ok := Transition(StepConfirmation, models.TripDraft{}, ConfirmInput{Accepted: false})
	require.True(t, ok)
	assert.Equal(t, StepInitial, out.Next)
	assert.Nil(t, out.Patch)
	assert.False(t, out.Generate)
}

func TestTransitionConfirmationAcceptTriggersGeneration(t *testing.T) {
	out, ok := Transition(StepConfirmation, models.TripDraft{}, ConfirmInput{Accepted: true})
	require.True(t, ok)
	assert.Equal(t, StepGenerating, out.Next)
	assert.True(t, out.Generate)
}

func TestTransitionRejectsWrongEventType(t *testing.T) {
	steps := []Step{StepInitial, StepDestination, StepDates, StepTravelers, StepBudget, StepThemes, StepFlights, StepAccommodation, StepConfirmation}
	for _, step := range steps {
		_, ok := Transition(step, models.TripDraft{}, ChildrenAgesInput{Ages: []int{5}})
		assert.False(t, ok, "step %s accepted a stray event", step)
	}
}

func TestTransitionBudgetValidatesTier(t *testing.T) {
	_, ok := Transition(StepBudget, models.TripDraft{}, BudgetInput{Tier: "extravagant"})
	assert.False(t, ok)

	out, ok := Transition(StepBudget, models.TripDraft{}, BudgetInput{Tier: models.BudgetModerate})
	require.True(t, ok)
	assert.Equal(t, "Moderate", out.Echo)
}
