package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateSelectorFirstPickIsPending(t *testing.T) {
	s := NewDateSelector(30)
	rng := s.Pick(day(2026, 3, 1))
	assert.Nil(t, rng)
	assert.True(t, s.Pending())
}

func TestDateSelectorRejectsSameDay(t *testing.T) {
	s := NewDateSelector(30)
	start := day(2026, 3, 1)
	require.Nil(t, s.Pick(start))

	// Minimum one night: picking the start again must not complete a range
	// and must not lose the pending start.
	assert.Nil(t, s.Pick(start))
	assert.True(t, s.Pending())

	rng := s.Pick(day(2026, 3, 3))
	require.NotNil(t, rng)
	assert.Equal(t, start, rng.Start)
	assert.Equal(t, day(2026, 3, 3), rng.End)
}

func TestDateSelectorDurationIsNightsPlusOne(t *testing.T) {
	for nights := 1; nights <= 30; nights++ {
		s := NewDateSelector(30)
		start := day(2026, 3, 1)
		require.Nil(t, s.Pick(start))
		rng := s.Pick(start.AddDate(0, 0, nights))
		require.NotNil(t, rng, "nights=%d", nights)
		assert.Equal(t, nights, Nights(rng.Start, rng.End))
	}
}

func TestDateSelectorResetsBeyondMaxNights(t *testing.T) {
	s := NewDateSelector(30)
	require.Nil(t, s.Pick(day(2026, 3, 1)))

	// 40 nights out: the picked date becomes the new start.
	assert.Nil(t, s.Pick(day(2026, 4, 10)))
	assert.True(t, s.Pending())

	rng := s.Pick(day(2026, 4, 15))
	require.NotNil(t, rng)
	assert.Equal(t, day(2026, 4, 10), rng.Start)
	assert.Equal(t, day(2026, 4, 15), rng.End)
}

func TestDateSelectorEarlierEndBecomesNewStart(t *testing.T) {
	s := NewDateSelector(30)
	require.Nil(t, s.Pick(day(2026, 3, 10)))
	assert.Nil(t, s.Pick(day(2026, 3, 5)))

	rng := s.Pick(day(2026, 3, 8))
	require.NotNil(t, rng)
	assert.Equal(t, day(2026, 3, 5), rng.Start)
}
