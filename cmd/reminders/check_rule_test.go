package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheckRuleCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newCheckRuleCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckRule(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "weekly on two weekdays",
			args: []string{"FREQ=WEEKLY;BYDAY=MO,WE", "--start", "2024-01-01T18:30:00Z", "--to", "2024-01-10"},
			want: []string{"2024-01-01 Mon", "2024-01-03 Wed", "2024-01-08 Mon", "2024-01-10 Wed"},
		},
		{
			name: "monthly on the 31st skips short months",
			args: []string{"FREQ=MONTHLY", "--start", "2024-01-31T18:00:00Z", "--from", "2024-02-01", "--to", "2024-05-31"},
			want: []string{"2024-03-31 Sun", "2024-05-31 Fri"},
		},
		{
			name: "early UTC start belongs to the previous local day",
			args: []string{"FREQ=DAILY;INTERVAL=2", "--start", "2024-03-10T02:00:00Z", "--to", "2024-03-13"},
			want: []string{"2024-03-09 Sat", "2024-03-11 Mon", "2024-03-13 Wed"},
		},
		{
			name: "end anchor stops the series",
			args: []string{"FREQ=DAILY", "--start", "2024-03-01T15:00:00Z", "--ends", "2024-03-03T15:00:00Z", "--to", "2024-03-05"},
			want: []string{"2024-03-01 Fri", "2024-03-02 Sat", "2024-03-03 Sun"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCheckRuleCmd(t, tt.args...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.NotEmpty(t, lines)
			assert.True(t, strings.HasPrefix(lines[0], "# FREQ="), lines[0])
			assert.Equal(t, tt.want, lines[1:])
		})
	}
}

func TestCheckRule_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing frequency", []string{"INTERVAL=2", "--start", "2024-01-01T00:00:00Z"}, "no supported frequency"},
		{"bad start", []string{"FREQ=DAILY", "--start", "yesterday"}, "invalid --start"},
		{"bad zone", []string{"FREQ=DAILY", "--start", "2024-01-01T00:00:00Z", "--zone", "Mars/Olympus"}, "invalid --zone"},
		{"inverted range", []string{"FREQ=DAILY", "--start", "2024-01-01T00:00:00Z", "--from", "2024-02-01", "--to", "2024-01-01"}, "is before"},
		{"missing start", []string{"FREQ=DAILY"}, `"start" not set`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCheckRuleCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseNow(t *testing.T) {
	got, err := parseNow("2024-03-04T13:31:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04T16:31:00Z", got.Format("2006-01-02T15:04:05Z07:00"))

	_, err = parseNow("now")
	assert.Error(t, err)
}
