package utils

import "time"

// PlannerSessionPrefix is the prefix used for Redis planner session keys.
const PlannerSessionPrefix = "planner:session:"

// PlannerSessionTTL is the time-to-live for stored planner session identifiers.
const PlannerSessionTTL = 24 * time.Hour

// PlannerAppTag identifies this application to the planning backend.
const PlannerAppTag = "itinerary-agents"

// TripThemes is the fixed vocabulary of selectable interest tags.
var TripThemes = []string{"heritage", "beaches", "adventure", "food", "shopping", "nightlife"}

// TripConstraints is the fixed vocabulary of selectable preference tags.
var TripConstraints = []string{"kid-friendly", "vegetarian", "no-red-eye", "accessible"}

// BudgetLabels maps budget tiers to their human-readable transcript labels.
var BudgetLabels = map[string]string{
	"budget":   "Budget-friendly",
	"moderate": "Moderate",
	"luxury":   "Luxury",
}

// MinChildAge and MaxChildAge bound the accepted age for a child traveler;
// raw values outside the range are clamped, not rejected.
const (
	MinChildAge = 2
	MaxChildAge = 11
)
