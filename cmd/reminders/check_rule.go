package main

import (
	"fmt"
	"time"

	"elepad_reminders/internal/domain/recurrence"

	"github.com/spf13/cobra"
)

var checkRuleCmd = newCheckRuleCmd()

func newCheckRuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-rule RULE",
		Short: "Print the dates a frequency rule occurs on",
		Long: `Evaluates a rule such as "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH" exactly as the
reminder scan does and prints every matching civil date in [--from, --to].`,
		Example: `  reminders check-rule "FREQ=MONTHLY" --start 2024-01-31T18:00:00Z --to 2024-06-30`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheckRule,
	}

	f := cmd.Flags()
	f.String("start", "", "Series start instant in RFC3339 (required)")
	f.String("ends", "", "Optional series end instant in RFC3339")
	f.String("from", "", "First date to check, YYYY-MM-DD (default: start date)")
	f.String("to", "", "Last date to check, YYYY-MM-DD (default: 30 days after --from)")
	f.String("zone", "-03:00", `Time zone for civil dates: IANA name or "±HH:MM"`)
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func runCheckRule(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	startFlag, _ := f.GetString("start")
	endsFlag, _ := f.GetString("ends")
	fromFlag, _ := f.GetString("from")
	toFlag, _ := f.GetString("to")
	zoneFlag, _ := f.GetString("zone")

	rule, err := recurrence.Parse(args[0])
	if err != nil {
		return fmt.Errorf("rule %q: %w", args[0], err)
	}
	zone, err := recurrence.ParseZone(zoneFlag)
	if err != nil {
		return fmt.Errorf("invalid --zone: %w", err)
	}
	startsAt, err := time.Parse(time.RFC3339, startFlag)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	var endsAt *time.Time
	if endsFlag != "" {
		t, err := time.Parse(time.RFC3339, endsFlag)
		if err != nil {
			return fmt.Errorf("invalid --ends: %w", err)
		}
		endsAt = &t
	}

	from := zone.CivilDate(startsAt)
	if fromFlag != "" {
		if from, err = recurrence.ParseDate(fromFlag); err != nil {
			return err
		}
	}
	to := from.AddDays(30)
	if toFlag != "" {
		if to, err = recurrence.ParseDate(toFlag); err != nil {
			return err
		}
	}
	if to.Before(from) {
		return fmt.Errorf("--to %s is before --from %s", to, from)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s in %s\n", rule, zone)
	for _, d := range rule.OccurrencesBetween(zone, startsAt, endsAt, from, to) {
		fmt.Fprintf(out, "%s %s\n", d, d.Weekday().String()[:3])
	}
	return nil
}
