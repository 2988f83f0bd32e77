package activity

import (
	"time"

	"elepad_reminders/internal/domain/recurrence"

	"github.com/google/uuid"
)

// Activity is a scheduled family-care activity.
// Corresponds to the 'activities' table.
type Activity struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      *time.Time    // Last civil day of a recurring series, if any
	AssignedTo  uuid.NullUUID // User who receives the reminder
	Completed   bool
}

// SingleActivity happens once, at StartsAt.
type SingleActivity struct {
	Activity
}

// RecurringActivity repeats according to a frequency rule. StartsAt anchors both the
// first occurrence date and the time-of-day of every occurrence.
type RecurringActivity struct {
	Activity
	RawRule string
	// Rule is resolved once when the row is read. RuleErr is set when RawRule
	// has no usable frequency; such an activity never occurs.
	Rule    recurrence.Rule
	RuleErr error
}

// NewRecurringActivity parses raw and attaches the result to a.
func NewRecurringActivity(a Activity, raw string) RecurringActivity {
	rule, err := recurrence.Parse(raw)
	return RecurringActivity{Activity: a, RawRule: raw, Rule: rule, RuleErr: err}
}

// OccursOn reports whether the series has an occurrence on day.
func (r RecurringActivity) OccursOn(zone recurrence.Zone, day recurrence.Date) bool {
	if r.RuleErr != nil {
		return false
	}
	return r.Rule.Matches(zone, r.StartsAt, r.EndsAt, day)
}
