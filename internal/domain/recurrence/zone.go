// internal/domain/recurrence/zone.go
package recurrence

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultOffset is the UTC offset used for "today" when no time zone is configured (UTC-3).
const DefaultOffset = -3 * time.Hour

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// Date is a civil (year, month, day) triple, independent of time-of-day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// utc returns the date at UTC midnight; only used for calendar arithmetic.
func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(o Date) bool { return d.utc().Before(o.utc()) }
func (d Date) After(o Date) bool  { return d.utc().After(o.utc()) }

// DaysSince returns the number of whole civil days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.utc().Sub(o.utc()).Hours() / 24)
}

func (d Date) Weekday() time.Weekday { return d.utc().Weekday() }

// AddDays returns the civil date n days after d.
func (d Date) AddDays(n int) Date {
	t := d.utc().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String formats the date as YYYY-MM-DD, the form Postgres DATE columns accept.
func (d Date) String() string {
	return d.utc().Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

var defaultLocation = time.FixedZone("UTC-03:00", int(DefaultOffset.Seconds()))

// Zone converts instants to civil dates for a single location.
// The zero Zone behaves as DefaultZone.
type Zone struct {
	loc *time.Location
}

// NewZone wraps loc. A nil loc yields the default UTC-3 zone.
func NewZone(loc *time.Location) Zone {
	if loc == nil {
		return DefaultZone()
	}
	return Zone{loc: loc}
}

// DefaultZone is the fixed UTC-3 offset. No DST, no per-user zone.
func DefaultZone() Zone {
	return Zone{loc: defaultLocation}
}

// ParseZone accepts an IANA name ("America/Sao_Paulo"), a fixed offset ("-03:00")
// or the empty string for the default zone.
func ParseZone(name string) (Zone, error) {
	if name == "" {
		return DefaultZone(), nil
	}
	if m := offsetPattern.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours > 14 || minutes > 59 {
			return Zone{}, fmt.Errorf("offset out of range: %s", name)
		}
		secs := hours*3600 + minutes*60
		if m[1] == "-" {
			secs = -secs
		}
		return Zone{loc: time.FixedZone("UTC"+name, secs)}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return Zone{loc: loc}, nil
}

func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return defaultLocation
	}
	return z.loc
}

func (z Zone) String() string { return z.Location().String() }

// CivilDate returns the date t falls on in the zone.
func (z Zone) CivilDate(t time.Time) Date {
	local := t.In(z.Location())
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// Midnight returns the UTC instant at which d begins in the zone.
func (z Zone) Midnight(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, z.Location()).UTC()
}
