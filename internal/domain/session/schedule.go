package session

import (
	"time"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
)

const day = 24 * time.Hour

// EndDate is the begin date shifted by the activity duration.
func EndDate(begin time.Time, a *activity.Activity) time.Time {
	return begin.UTC().Add(a.DurationTime())
}

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow is the 24 hours starting at the given instant.
func DayWindow(from time.Time) Window {
	from = from.UTC()
	return Window{Start: from, End: from.Add(day)}
}

// Overlaps reports whether [begin, end) intersects the window.
func (w Window) Overlaps(begin, end time.Time) bool {
	return begin.Before(w.End) && end.After(w.Start)
}

// PlacesLeft is the capacity minus the live reservation count. It goes
// negative when a session has been overbooked.
func PlacesLeft(maximumCapacity int, reservations int64) int {
	return maximumCapacity - int(reservations)
}
