package services

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/nutrition"
)

// Clock supplies the current instant and the zone date keys are cut in.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Location: loc}
}

// Today is the date key for the current instant.
func (c Clock) Today() string {
	return nutrition.DateKey(c.Now(), c.Location)
}

func (c Clock) DateKey(t time.Time) string {
	return nutrition.DateKey(t, c.Location)
}
