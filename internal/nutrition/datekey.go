package nutrition

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date key format.
const DateLayout = "2006-01-02"

// DateKey returns the local calendar date of t in loc. The instant is
// shifted by the zone offset in effect at t before truncation, so an entry
// logged at 23:30 local time files under that local day even when its UTC
// representation has already rolled over.
func DateKey(t time.Time, loc *time.Location) string {
	_, offset := t.In(loc).Zone()
	return t.UTC().Add(time.Duration(offset) * time.Second).Format(DateLayout)
}

// RecentDateKeys returns n consecutive date keys ending with the day that
// contains now, oldest first.
func RecentDateKeys(now time.Time, loc *time.Location, n int) []string {
	if n <= 0 {
		return []string{}
	}
	y, m, d := now.In(loc).Date()
	// noon keeps DST transitions from skipping or repeating a day
	anchor := time.Date(y, m, d, 12, 0, 0, 0, loc)

	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = anchor.AddDate(0, 0, i-(n-1)).Format(DateLayout)
	}
	return keys
}

// ParseDateKey validates a YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
