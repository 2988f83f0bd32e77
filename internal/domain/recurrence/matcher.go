// internal/domain/recurrence/matcher.go
package recurrence

import "time"

// Matches reports whether a series anchored at startsAt (and optionally ending on
// the civil date of endsAt) has an occurrence on day. Dates are taken in zone.
//
// The arithmetic is on civil dates, never on instants:
//   - DAILY with BYDAY matches on the listed weekdays and ignores INTERVAL.
//   - WEEKLY counts weeks as floor(daysDiff/7) from the start date.
//   - MONTHLY never clamps: a series starting on the 31st skips shorter months.
//   - YEARLY compares (month, day) exactly, so Feb 29 only recurs in leap years.
func (r Rule) Matches(zone Zone, startsAt time.Time, endsAt *time.Time, day Date) bool {
	start := zone.CivilDate(startsAt)
	if day.Before(start) {
		return false
	}
	if endsAt != nil && day.After(zone.CivilDate(*endsAt)) {
		return false
	}

	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	daysDiff := day.DaysSince(start)

	switch r.Frequency {
	case FrequencyDaily:
		if len(r.ByDay) > 0 {
			return r.hasWeekday(day.Weekday())
		}
		return daysDiff%interval == 0

	case FrequencyWeekly:
		weekIndex := daysDiff / 7
		if weekIndex%interval != 0 {
			return false
		}
		if len(r.ByDay) > 0 {
			return r.hasWeekday(day.Weekday())
		}
		return day.Weekday() == start.Weekday()

	case FrequencyMonthly:
		monthsDiff := (day.Year-start.Year)*12 + int(day.Month) - int(start.Month)
		if monthsDiff < 0 || monthsDiff%interval != 0 {
			return false
		}
		return day.Day == start.Day

	case FrequencyYearly:
		yearsDiff := day.Year - start.Year
		if yearsDiff < 0 || yearsDiff%interval != 0 {
			return false
		}
		return day.Month == start.Month && day.Day == start.Day

	default:
		return false
	}
}

// OccurrencesBetween lists the days in [from, to] on which the series occurs.
func (r Rule) OccurrencesBetween(zone Zone, startsAt time.Time, endsAt *time.Time, from, to Date) []Date {
	var out []Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		if r.Matches(zone, startsAt, endsAt, d) {
			out = append(out, d)
		}
	}
	return out
}
