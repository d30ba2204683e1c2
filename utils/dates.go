package utils

import "time"

// Timestamp layouts accepted from stored documents. Records written by the
// web clients use RFC3339 with milliseconds; older exports carry date-only
// values.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a stored timestamp. The second return value is false
// for empty or unparseable input; callers treat that as "no date" and skip
// the record rather than erroring.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a timestamp the way the clients store them.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// SameDay reports whether two timestamps fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates a timestamp to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
