package trip

import (
	"fmt"
	"strings"
	"time"

	"tripforge/models"
	"tripforge/utils"
)

// Step is one named stage of the onboarding conversation.
type Step string

const (
	StepInitial       Step = "initial"
	StepDestination   Step = "destination"
	StepDates         Step = "dates"
	StepTravelers     Step = "travelers"
	StepChildrenAges  Step = "children-ages"
	StepBudget        Step = "budget"
	StepThemes        Step = "themes"
	StepConstraints   Step = "constraints"
	StepFlights       Step = "flights"
	StepAccommodation Step = "accommodation"
	StepConfirmation  Step = "confirmation"
	StepGenerating    Step = "generating"
	StepComplete      Step = "complete"
)

// Event is one piece of user input fed to the step machine.
type Event interface{ isEvent() }

// TextInput is a free-text message (city names, follow-up questions).
type TextInput struct{ Text string }

// DateRangeInput is a completed travel-date selection.
type DateRangeInput struct {
	Range  models.DateRange
	Nights int
}

// TravelersInput is the party composition.
type TravelersInput struct {
	Adults   int
	Children int
	Infants  int
}

// ChildrenAgesInput carries one age per child traveler.
type ChildrenAgesInput struct{ Ages []int }

// BudgetInput is the selected spending tier.
type BudgetInput struct{ Tier models.BudgetTier }

// ThemesInput is the multi-selected set of interest tags.
type ThemesInput struct{ Themes []string }

// ConstraintsInput is the optional multi-selected set of preference tags.
type ConstraintsInput struct{ Constraints []string }

// FlightsInput is the flight-inclusion answer.
type FlightsInput struct {
	Include    bool
	Preference string
}

// AccommodationInput is the hotel-inclusion answer.
type AccommodationInput struct {
	Include    bool
	StarRating string
}

// ConfirmInput is the yes/edit answer on the confirmation summary.
type ConfirmInput struct{ Accepted bool }

func (TextInput) isEvent()          {}
func (DateRangeInput) isEvent()     {}
func (TravelersInput) isEvent()     {}
func (ChildrenAgesInput) isEvent()  {}
func (BudgetInput) isEvent()        {}
func (ThemesInput) isEvent()        {}
func (ConstraintsInput) isEvent()   {}
func (FlightsInput) isEvent()       {}
func (AccommodationInput) isEvent() {}
func (ConfirmInput) isEvent()       {}

// Outcome is the full effect of accepting one input: the draft patch to
// merge, the user-role transcript line echoing the accepted value, the
// assistant prompt introducing the next step, and the step to move to once
// the prompt has been delivered.
type Outcome struct {
	Next     Step
	Patch    *models.TripDraftPatch
	Echo     string
	Prompt   string
	Generate bool
}

// Transition evaluates one input against the current step. It returns false
// when the input is invalid for the step, in which case nothing may change.
// The function is pure: it never mutates the draft it is given.
func Transition(step Step, draft models.TripDraft, ev Event) (Outcome, bool) {
	switch step {
	case StepInitial:
		in, ok := ev.(TextInput)
		city := strings.TrimSpace(in.Text)
		if !ok || city == "" {
			return Outcome{}, false
		}
		return Outcome{
			Next:   StepDestination,
			Patch:  &models.TripDraftPatch{DepartureCity: &city},
			Echo:   city,
			Prompt: "Great! Let me help you plan that trip. Where would you like to go?",
		}, true

	case StepDestination:
		in, ok := ev.(TextInput)
		city := strings.TrimSpace(in.Text)
		if !ok || city == "" {
			return Outcome{}, false
		}
		return Outcome{
			Next:   StepDates,
			Patch:  &models.TripDraftPatch{DestinationCity: &city},
			Echo:   city,
			Prompt: "Sounds amazing! When would you like to travel?",
		}, true

	case StepDates:
		in, ok := ev.(DateRangeInput)
		if !ok || in.Nights < 1 {
			return Outcome{}, false
		}
		duration := in.Nights + 1
		rng := in.Range
		return Outcome{
			Next:     StepTravelers,
			Patch:    &models.TripDraftPatch{Dates: &rng, Duration: &duration},
			Echo:     fmt.Sprintf("From %s to %s (%d days)", formatDate(rng.Start), formatDate(rng.End), duration),
			Prompt:   "Perfect! Who's traveling with you?",
			Generate: false,
		}, true

	case StepTravelers:
		in, ok := ev.(TravelersInput)
		if !ok || in.Adults < 1 || in.Children < 0 || in.Infants < 0 {
			return Outcome{}, false
		}
		t := models.Travelers{Adults: in.Adults, Children: in.Children, Infants: in.Infants}
		out := Outcome{
			Next:   StepBudget,
			Patch:  &models.TripDraftPatch{Travelers: &t},
			Echo:   formatTravelers(t),
			Prompt: "Great! What's your budget range for this trip?",
		}
		if in.Children > 0 {
			out.Next = StepChildrenAges
			out.Prompt = "Got it! How old are the children?"
		}
		return out, true

	case StepChildrenAges:
		in, ok := ev.(ChildrenAgesInput)
		if !ok || draft.Travelers == nil || len(in.Ages) != draft.Travelers.Children {
			return Outcome{}, false
		}
		t := *draft.Travelers
		t.ChildrenAges = clampAges(in.Ages)
		return Outcome{
			Next:   StepBudget,
			Patch:  &models.TripDraftPatch{Travelers: &t},
			Echo:   "Ages: " + joinInts(t.ChildrenAges),
			Prompt: "Great! What's your budget range for this trip?",
		}, true

	case StepBudget:
		in, ok := ev.(BudgetInput)
		if !ok || !in.Tier.Valid() {
			return Outcome{}, false
		}
		tier := in.Tier
		return Outcome{
			Next:   StepThemes,
			Patch:  &models.TripDraftPatch{Budget: &tier},
			Echo:   utils.BudgetLabels[string(tier)],
			Prompt: "Great choice! What kind of experiences are you looking for?",
		}, true

	case StepThemes:
		in, ok := ev.(ThemesInput)
		if !ok || len(in.Themes) == 0 || !allKnown(in.Themes, utils.TripThemes) {
			return Outcome{}, false
		}
		return Outcome{
			Next:   StepConstraints,
			Patch:  &models.TripDraftPatch{Themes: in.Themes},
			Echo:   strings.Join(in.Themes, ", "),
			Prompt: "Awesome! Any special preferences or constraints I should know about?",
		}, true

	case StepConstraints:
		in, ok := ev.(ConstraintsInput)
		if !ok || !allKnown(in.Constraints, utils.TripConstraints) {
			return Outcome{}, false
		}
		echo := "No specific constraints"
		if len(in.Constraints) > 0 {
			echo = strings.Join(in.Constraints, ", ")
		}
		constraints := in.Constraints
		if constraints == nil {
			constraints = []string{}
		}
		return Outcome{
			Next:   StepFlights,
			Patch:  &models.TripDraftPatch{Constraints: constraints},
			Echo:   echo,
			Prompt: "Would you like me to include flights in your plan?",
		}, true

	case StepFlights:
		in, ok := ev.(FlightsInput)
		if !ok {
			return Outcome{}, false
		}
		f := models.FlightPreference{Include: in.Include}
		echo := "No flights needed"
		if in.Include {
			f.Preference = strings.TrimSpace(in.Preference)
			echo = "Include flights"
			if f.Preference != "" {
				echo += " (" + f.Preference + ")"
			}
		}
		return Outcome{
			Next:   StepAccommodation,
			Patch:  &models.TripDraftPatch{Flights: &f},
			Echo:   echo,
			Prompt: "And should I look for hotels as well?",
		}, true

	case StepAccommodation:
		in, ok := ev.(AccommodationInput)
		if !ok {
			return Outcome{}, false
		}
		a := models.AccommodationPreference{Include: in.Include}
		echo := "No hotels needed"
		if in.Include {
			a.StarRating = strings.TrimSpace(in.StarRating)
			echo = "Include hotels"
			if a.StarRating != "" {
				echo += " (" + a.StarRating + ")"
			}
		}
		// The confirmation prompt recaps the full draft, so apply the patch
		// to a scratch copy before formatting.
		patch := models.TripDraftPatch{Accommodation: &a}
		merged := draft
		patch.Apply(&merged)
		return Outcome{
			Next:   StepConfirmation,
			Patch:  &patch,
			Echo:   echo,
			Prompt: ConfirmationSummary(merged),
		}, true

	case StepConfirmation:
		in, ok := ev.(ConfirmInput)
		if !ok {
			return Outcome{}, false
		}
		if !in.Accepted {
			// Back to the top without discarding anything already answered.
			return Outcome{
				Next:   StepInitial,
				Echo:   "I'd like to change something",
				Prompt: "No problem, let's go over it again. Which city will you be departing from?",
			}, true
		}
		return Outcome{
			Next:     StepGenerating,
			Echo:     "Yes, create my itinerary",
			Prompt:   "Perfect! Let me create a personalized itinerary for you...",
			Generate: true,
		}, true
	}

	return Outcome{}, false
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func formatTravelers(t models.Travelers) string {
	parts := []string{plural(t.Adults, "adult")}
	if t.Children > 0 {
		parts = append(parts, plural(t.Children, "child"))
	}
	if t.Infants > 0 {
		parts = append(parts, plural(t.Infants, "infant"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	if noun == "child" {
		return fmt.Sprintf("%d children", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func clampAges(ages []int) []int {
	out := make([]int, len(ages))
	for i, a := range ages {
		switch {
		case a < utils.MinChildAge:
			out[i] = utils.MinChildAge
		case a > utils.MaxChildAge:
			out[i] = utils.MaxChildAge
		default:
			out[i] = a
		}
	}
	return out
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

func allKnown(tags, vocab []string) bool {
	for _, tag := range tags {
		found := false
		for _, v := range vocab {
			if tag == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
