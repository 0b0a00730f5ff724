package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = prev })
}

func TestNormalizeRelativePhrases(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	withNow(t, now)

	tests := []struct {
		in   string
		want string
	}{
		{"tomorrow", "2026-03-11"},
		{"today", "2026-03-10"},
		{"yesterday", "2026-03-09"},
		{"next week", "2026-03-17"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeCollapsesNoisyInput(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	withNow(t, now)

	// The containment rule strips the noise around the phrase.
	assert.Equal(t, "2026-03-11", Normalize("due tomorrow morning"))
	assert.Equal(t, "2026-03-17", Normalize("sometime next week please"))
}

func TestNormalizeFailsOpen(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	withNow(t, now)

	// The parser echoes the base time for all of these instead of erroring;
	// every one must come back verbatim, never as today's date.
	for _, in := range []string{
		"not a date",
		"asap",
		"tbd",
		"whenever",
		"no deadline",
		"later",
		"after the meeting",
		"once Bob replies",
	} {
		assert.Equal(t, in, Normalize(in), "input %q", in)
	}

	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "   ", Normalize("   "))
	// Already-canonical dates pass through untouched.
	assert.Equal(t, "2026-12-01", Normalize("2026-12-01"))
}
