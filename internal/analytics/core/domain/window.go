package domain

import (
	"strings"
	"time"
)

// DefaultWindowDays is the lookback applied when a caller omits bounds.
const DefaultWindowDays = 7

// Window is a closed [Start, End] interval; both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func DefaultWindow(now time.Time) Window {
	return Window{Start: now.AddDate(0, 0, -DefaultWindowDays), End: now}
}

// ResolveWindow turns optional ISO-8601 bounds into a concrete window.
// A missing or unparseable bound takes its default (now-7d / now); an
// inverted range falls back to the full default window. Malformed input
// never fails a request.
func ResolveWindow(startStr, endStr string, now time.Time) Window {
	w := DefaultWindow(now)

	if t, ok := parseISO(startStr); ok {
		w.Start = t
	}
	if t, ok := parseISO(endStr); ok {
		w.End = t
	}

	if w.End.Before(w.Start) {
		return DefaultWindow(now)
	}
	return w
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseBotFilter normalizes a caller-supplied bot_type filter. Empty and
// "both" (any case) mean no restriction; everything else is lowercased and
// compared as-is, so an unknown value matches nothing.
func ParseBotFilter(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "both" {
		return ""
	}
	return s
}
