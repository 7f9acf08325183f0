package models

import "time"

// BudgetTier is the spending level selected during onboarding.
type BudgetTier string

const (
	BudgetLow      BudgetTier = "budget"
	BudgetModerate BudgetTier = "moderate"
	BudgetLuxury   BudgetTier = "luxury"
)

// Valid reports whether the tier is one of the three known values.
func (b BudgetTier) Valid() bool {
	return b == BudgetLow || b == BudgetModerate || b == BudgetLuxury
}

// DateRange is a pair of calendar dates with End strictly after Start.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Travelers describes the party composition for a trip.
type Travelers struct {
	Adults       int   `json:"adults"`
	Children     int   `json:"children"`
	Infants      int   `json:"infants"`
	ChildrenAges []int `json:"childrenAges,omitempty"` // one entry per child, each in [2,11]
}

// Total returns the full headcount including infants.
func (t Travelers) Total() int {
	return t.Adults + t.Children + t.Infants
}

// FlightPreference captures whether flights should be part of the plan.
type FlightPreference struct {
	Include    bool   `json:"include"`
	Preference string `json:"preference,omitempty"` // e.g. "non-stop", "cheapest"
}

// AccommodationPreference captures whether hotels should be part of the plan.
type AccommodationPreference struct {
	Include    bool   `json:"include"`
	StarRating string `json:"starRating,omitempty"` // e.g. "3-star", "5-star"
}

// TripDraft is the accumulating set of answers collected by the onboarding
// conversation. Fields are optional until the matching step has run; the draft
// is sent as-is to the planning backend once confirmed.
type TripDraft struct {
	DepartureCity   string                   `json:"departureCity,omitempty"`
	DestinationCity string                   `json:"destinationCity,omitempty"`
	Dates           *DateRange               `json:"dates,omitempty"`
	Duration        int                      `json:"duration,omitempty"` // inclusive day count, nights+1
	Travelers       *Travelers               `json:"travelers,omitempty"`
	Budget          BudgetTier               `json:"budget,omitempty"`
	Themes          []string                 `json:"themes,omitempty"`
	Constraints     []string                 `json:"constraints,omitempty"`
	Flights         *FlightPreference        `json:"flights,omitempty"`
	Accommodation   *AccommodationPreference `json:"accommodation,omitempty"`
}

// Clone returns a deep copy of the draft so readers cannot alias the
// owner's slices or nested structs.
func (d TripDraft) Clone() TripDraft {
	out := d
	if d.Dates != nil {
		rng := *d.Dates
		out.Dates = &rng
	}
	if d.Travelers != nil {
		t := *d.Travelers
		if d.Travelers.ChildrenAges != nil {
			t.ChildrenAges = append([]int{}, d.Travelers.ChildrenAges...)
		}
		out.Travelers = &t
	}
	if d.Themes != nil {
		out.Themes = append([]string{}, d.Themes...)
	}
	if d.Constraints != nil {
		out.Constraints = append([]string{}, d.Constraints...)
	}
	if d.Flights != nil {
		f := *d.Flights
		out.Flights = &f
	}
	if d.Accommodation != nil {
		a := *d.Accommodation
		out.Accommodation = &a
	}
	return out
}

// TripDraftPatch is a partial update to a TripDraft. Nil fields are left
// untouched by a merge; set fields overwrite the current value wholesale.
type TripDraftPatch struct {
	DepartureCity   *string
	DestinationCity *string
	Dates           *DateRange
	Duration        *int
	Travelers       *Travelers
	Budget          *BudgetTier
	Themes          []string
	Constraints     []string
	Flights         *FlightPreference
	Accommodation   *AccommodationPreference
}

// Apply merges the patch into the draft, later writes winning per field.
func (p TripDraftPatch) Apply(d *TripDraft) {
	if p.DepartureCity != nil {
		d.DepartureCity = *p.DepartureCity
	}
	if p.DestinationCity != nil {
		d.DestinationCity = *p.DestinationCity
	}
	if p.Dates != nil {
		rng := *p.Dates
		d.Dates = &rng
	}
	if p.Duration != nil {
		d.Duration = *p.Duration
	}
	if p.Travelers != nil {
		t := *p.Travelers
		t.ChildrenAges = append([]int(nil), p.Travelers.ChildrenAges...)
		d.Travelers = &t
	}
	if p.Budget != nil {
		d.Budget = *p.Budget
	}
	if p.Themes != nil {
		d.Themes = append([]string(nil), p.Themes...)
	}
	if p.Constraints != nil {
		d.Constraints = append([]string(nil), p.Constraints...)
	}
	if p.Flights != nil {
		f := *p.Flights
		d.Flights = &f
	}
	if p.Accommodation != nil {
		a := *p.Accommodation
		d.Accommodation = &a
	}
}
