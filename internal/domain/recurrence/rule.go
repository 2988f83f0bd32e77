// internal/domain/recurrence/rule.go
package recurrence

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Frequency is the FREQ part of a recurrence rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// ErrNoFrequency is returned when a rule has no FREQ token or an unsupported value.
// Activities with such a rule never occur.
var ErrNoFrequency = errors.New("recurrence rule has no supported frequency")

var (
	freqPattern     = regexp.MustCompile(`FREQ=([A-Z]+)`)
	intervalPattern = regexp.MustCompile(`INTERVAL=\s*(\d+)`)
	byDayPattern    = regexp.MustCompile(`BYDAY=([A-Za-z]{2}\b(?:\s*,\s*[A-Za-z]{2}\b)*)`)
)

// weekdayCodes maps time.Weekday to its two-letter BYDAY code.
var weekdayCodes = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Rule is the parsed form of a FREQ/INTERVAL/BYDAY rule string.
type Rule struct {
	Frequency Frequency
	Interval  int
	// ByDay keeps the codes as written; an unknown code never matches any day
	// but still counts as a non-empty set.
	ByDay []string
}

// Parse reads FREQ, INTERVAL and BYDAY from s in any order and with any separator.
// Each field captures only its own value, so a missing ';' cannot merge two fields.
// Matching is case-sensitive: "freq=daily" has no frequency and "mo" is an unknown code.
func Parse(s string) (Rule, error) {
	var r Rule

	m := freqPattern.FindStringSubmatch(s)
	if m == nil {
		return r, ErrNoFrequency
	}
	switch f := Frequency(m[1]); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		r.Frequency = f
	default:
		return r, ErrNoFrequency
	}

	r.Interval = 1
	if m := intervalPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			r.Interval = n
		}
	}

	if m := byDayPattern.FindStringSubmatch(s); m != nil {
		for _, code := range strings.Split(m[1], ",") {
			r.ByDay = append(r.ByDay, strings.TrimSpace(code))
		}
	}

	return r, nil
}

// String renders the rule back into its canonical string form.
func (r Rule) String() string {
	if r.Frequency == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("FREQ=")
	b.WriteString(string(r.Frequency))
	if r.Interval > 1 {
		b.WriteString(";INTERVAL=")
		b.WriteString(strconv.Itoa(r.Interval))
	}
	if len(r.ByDay) > 0 {
		b.WriteString(";BYDAY=")
		b.WriteString(strings.Join(r.ByDay, ","))
	}
	return b.String()
}

func (r Rule) hasWeekday(wd time.Weekday) bool {
	code := weekdayCodes[wd]
	for _, c := range r.ByDay {
		if c == code {
			return true
		}
	}
	return false
}
