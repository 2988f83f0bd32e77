package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Rule
	}{
		{
			name:  "frequency only defaults interval to one",
			input: "FREQ=DAILY",
			want:  Rule{Frequency: FrequencyDaily, Interval: 1},
		},
		{
			name:  "all fields",
			input: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE",
			want:  Rule{Frequency: FrequencyWeekly, Interval: 2, ByDay: []string{"MO", "WE"}},
		},
		{
			name:  "fields in any order",
			input: "BYDAY=FR;INTERVAL=3;FREQ=MONTHLY",
			want:  Rule{Frequency: FrequencyMonthly, Interval: 3, ByDay: []string{"FR"}},
		},
		{
			name:  "RRULE prefix and unknown fields are ignored",
			input: "RRULE:FREQ=YEARLY;COUNT=4;WKST=SU",
			want:  Rule{Frequency: FrequencyYearly, Interval: 1},
		},
		{
			name:  "non numeric interval falls back to one",
			input: "FREQ=DAILY;INTERVAL=abc",
			want:  Rule{Frequency: FrequencyDaily, Interval: 1},
		},
		{
			name:  "zero interval falls back to one",
			input: "FREQ=DAILY;INTERVAL=0",
			want:  Rule{Frequency: FrequencyDaily, Interval: 1},
		},
		{
			name:  "unknown and lower-case weekday codes are kept as written",
			input: "FREQ=DAILY;BYDAY=XX, mo ,",
			want:  Rule{Frequency: FrequencyDaily, Interval: 1, ByDay: []string{"XX", "mo"}},
		},
		{
			name:  "space separator does not merge fields",
			input: "BYDAY=MO,WE INTERVAL=2;FREQ=WEEKLY",
			want:  Rule{Frequency: FrequencyWeekly, Interval: 2, ByDay: []string{"MO", "WE"}},
		},
		{
			name:  "comma separator keeps interval",
			input: "FREQ=DAILY,INTERVAL=2,BYDAY=MO",
			want:  Rule{Frequency: FrequencyDaily, Interval: 2, ByDay: []string{"MO"}},
		},
		{
			name:  "comma after weekday codes stops at the next field",
			input: "FREQ=WEEKLY;BYDAY=TU,TH,INTERVAL=3",
			want:  Rule{Frequency: FrequencyWeekly, Interval: 3, ByDay: []string{"TU", "TH"}},
		},
		{
			name:  "interval uses its leading digits",
			input: "FREQ=MONTHLY;INTERVAL=2x",
			want:  Rule{Frequency: FrequencyMonthly, Interval: 2},
		},
		{
			name:  "empty weekday list",
			input: "FREQ=WEEKLY;BYDAY=",
			want:  Rule{Frequency: FrequencyWeekly, Interval: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_NoFrequency(t *testing.T) {
	for _, input := range []string{"", "INTERVAL=2", "FREQ=HOURLY", "FREQ=;BYDAY=MO", "freq=daily"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrNoFrequency)
		})
	}
}

func TestRule_String(t *testing.T) {
	r, err := Parse("BYDAY=MO,WE;FREQ=WEEKLY;INTERVAL=2")
	require.NoError(t, err)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE", r.String())

	assert.Equal(t, "FREQ=DAILY", Rule{Frequency: FrequencyDaily, Interval: 1}.String())
	assert.Empty(t, Rule{}.String())
}
