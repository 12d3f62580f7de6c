package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_DayBoundaries(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		at   time.Time
		loc  *time.Location
		want string
	}{
		{"late evening west of UTC stays on local day", time.Date(2026, 3, 10, 3, 30, 0, 0, time.UTC), newYork, "2026-03-09"},
		{"local midnight starts the next day", time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), newYork, "2026-03-10"},
		{"one second before local midnight", time.Date(2026, 3, 10, 3, 59, 59, 0, time.UTC), newYork, "2026-03-09"},
		{"early morning east of UTC is already the next day", time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC), tokyo, "2026-03-10"},
		{"east of UTC before local midnight", time.Date(2026, 3, 9, 14, 59, 59, 0, time.UTC), tokyo, "2026-03-09"},
		{"utc zone is identity", time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), time.UTC, "2026-12-31"},
		{"year rollover in local zone", time.Date(2027, 1, 1, 2, 0, 0, 0, time.UTC), newYork, "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.at, tt.loc))
		})
	}
}

func TestDateKey_StableAcrossTheDay(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, loc)
	for h := 0; h < 24; h++ {
		assert.Equal(t, "2026-06-01", DateKey(start.Add(time.Duration(h)*time.Hour), loc))
	}
}

func TestRecentDateKeys(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)

	got := RecentDateKeys(now, loc, 7)
	assert.Equal(t, []string{
		"2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27",
		"2026-02-28", "2026-03-01", "2026-03-02",
	}, got)

	assert.Empty(t, RecentDateKeys(now, loc, 0))
	assert.Equal(t, []string{"2026-03-02"}, RecentDateKeys(now, loc, 1))
}

func TestRecentDateKeys_AcrossDST(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// DST begins 2026-03-08 in New York
	now := time.Date(2026, 3, 9, 0, 30, 0, 0, newYork)

	got := RecentDateKeys(now, newYork, 3)
	assert.Equal(t, []string{"2026-03-07", "2026-03-08", "2026-03-09"}, got)
}

func TestParseDateKey(t *testing.T) {
	_, err := ParseDateKey("2026-02-30")
	assert.Error(t, err)
	_, err = ParseDateKey("2026-02-28")
	assert.NoError(t, err)
}
