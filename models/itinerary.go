package models

// Weather is the forecast snapshot attached to an itinerary day.
type Weather struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon,omitempty"`
}

// Activity is a single scheduled item within an itinerary day.
type Activity struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location,omitempty"`
	Cost        float64 `json:"cost"`
	Category    string  `json:"category,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	BookingURL  string  `json:"bookingUrl,omitempty"`
}

// ItineraryDay groups the activities planned for one calendar date.
type ItineraryDay struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Weather    *Weather   `json:"weather,omitempty"`
}

// ItineraryMetadata echoes the trip parameters the itinerary was built from.
type ItineraryMetadata struct {
	DestinationCity string     `json:"destinationCity"`
	Duration        int        `json:"duration"`
	Travelers       Travelers  `json:"travelers"`
	Budget          BudgetTier `json:"budget"`
	Themes          []string   `json:"themes"`
}

// Itinerary is the day-by-day plan produced by the planning backend. Its
// contents are passed through untouched; only the structural shape is checked.
type Itinerary struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Summary   string             `json:"summary,omitempty"`
	Days      []ItineraryDay     `json:"days"`
	TotalCost float64            `json:"totalCost"`
	Currency  string             `json:"currency"`
	Metadata  *ItineraryMetadata `json:"metadata,omitempty"`
}
