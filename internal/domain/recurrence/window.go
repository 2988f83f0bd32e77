// internal/domain/recurrence/window.go
package recurrence

import "time"

const (
	WindowLead = 1 * time.Hour
	WindowEnd  = 2 * time.Hour
)

// Window returns the reminder window [now+1h, now+2h) in UTC.
func Window(now time.Time) (from, to time.Time) {
	now = now.UTC()
	return now.Add(WindowLead), now.Add(WindowEnd)
}

// TodayAt places startsAt's UTC hour and minute on now's UTC date.
// The wall-clock time of a series is assumed never to change between occurrences.
func TodayAt(startsAt, now time.Time) time.Time {
	s, n := startsAt.UTC(), now.UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), s.Hour(), s.Minute(), 0, 0, time.UTC)
}

// InWindow reports whether today's occurrence of startsAt falls inside the window for now.
func InWindow(startsAt, now time.Time) bool {
	from, to := Window(now)
	at := TodayAt(startsAt, now)
	return !at.Before(from) && at.Before(to)
}
