package trip

import (
	"fmt"
	"strings"

	"tripforge/models"
)

// ConfirmationSummary builds the deterministic recap shown before an
// itinerary is generated. Field order is fixed; clauses for budget and themes
// are dropped when unset, and at most the first two themes are mentioned.
func ConfirmationSummary(d models.TripDraft) string {
	tripType := "trip"
	if d.Travelers != nil && (d.Travelers.Total() > 1 || d.Travelers.Children > 0 || d.Travelers.Infants > 0) {
		tripType = "family trip"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Okay, you're planning a %d-day %s", d.Duration, tripType)
	if d.DepartureCity != "" && d.DestinationCity != "" {
		fmt.Fprintf(&b, " from %s to %s", d.DepartureCity, d.DestinationCity)
	}
	if d.Budget != "" {
		fmt.Fprintf(&b, " with a %s budget", d.Budget)
	}
	if len(d.Themes) > 0 {
		themes := d.Themes
		if len(themes) > 2 {
			themes = themes[:2]
		}
		fmt.Fprintf(&b, " focusing on %s", strings.Join(themes, " and "))
	}
	b.WriteString(". Shall I create your itinerary?")
	return b.String()
}
