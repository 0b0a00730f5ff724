// Package dates turns free-text date phrases ("due tomorrow morning",
// "next week") into canonical YYYY-MM-DD strings.
package dates

import (
	"strings"
	"time"

	naturaldate "github.com/tj/go-naturaldate"
)

// Now is the clock Normalize resolves relative dates against. Tests swap it
// for a fixed time.
var Now = time.Now

// Checked in order; "next week" and "next month" must win before the general
// parser sees the surrounding noise.
var phrases = []string{"tomorrow", "next week", "next month", "today", "yesterday"}

// Normalize resolves a relative or natural date expression against the
// current moment and returns it as YYYY-MM-DD. When one of the fixed phrases
// appears anywhere in the input, the whole input collapses to that phrase
// before parsing. Input the parser cannot place is returned unchanged;
// Normalize never fails on non-empty input.
func Normalize(text string) string {
	src := strings.TrimSpace(text)
	if src == "" {
		return text
	}
	lower := strings.ToLower(src)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			src = p
			break
		}
	}
	base := Now()
	t, err := naturaldate.Parse(src, base, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return text
	}
	// Parse answers nil error for text carrying no date expression at all; it
	// just echoes the base time back. An echo counts as a parse failure unless
	// the input actually asked for the present.
	if t.Equal(base) && !strings.EqualFold(src, "today") && !strings.EqualFold(src, "now") {
		return text
	}
	return t.Format("2006-01-02")
}
