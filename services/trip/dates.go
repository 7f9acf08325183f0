package trip

import (
	"time"

	"tripforge/models"
)

// Nights returns the number of whole days between two calendar dates.
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// DateSelector accumulates the two taps of the travel-date picker. The first
// pick sets the start date; the second completes the range. An end date equal
// to the start is dropped silently, and an end date beyond the allowed span
// (or before the start) restarts the selection with the picked date as the
// new start.
type DateSelector struct {
	maxNights int
	start     *time.Time
}

// NewDateSelector returns a selector allowing ranges of at most maxNights.
func NewDateSelector(maxNights int) *DateSelector {
	return &DateSelector{maxNights: maxNights}
}

// Pick registers one tapped date. It returns a completed range once a valid
// end date has been picked, and nil while the selection is still pending.
func (s *DateSelector) Pick(day time.Time) *models.DateRange {
	if s.start == nil {
		d := day
		s.start = &d
		return nil
	}

	nights := Nights(*s.start, day)
	if nights == 0 {
		// Minimum one night; keep waiting for a different end date.
		return nil
	}
	if nights < 0 || nights > s.maxNights {
		d := day
		s.start = &d
		return nil
	}

	rng := &models.DateRange{Start: *s.start, End: day}
	s.start = nil
	return rng
}

// Pending reports whether a start date has been picked without an end date.
func (s *DateSelector) Pending() bool {
	return s.start != nil
}

// Reset clears any pending start date.
func (s *DateSelector) Reset() {
	s.start = nil
}
