package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"elepad_reminders/internal/app"
	"elepad_reminders/internal/domain/activity"

	"github.com/spf13/cobra"
)

var (
	scanAt     string
	scanDryRun bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a single reminder scan and exit",
	Long: `Runs one reminder tick. With --dry-run the due activities are listed and nothing
is stored or sent. --now replays a tick at an earlier or later instant.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanAt, "now", "", "Tick instant in RFC3339 (default: current time)")
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false, "List due activities without dispatching reminders")
}

func runScan(cmd *cobra.Command, args []string) error {
	now, err := parseNow(scanAt)
	if err != nil {
		return err
	}

	d, err := setup(false)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), d.cfg.ScanTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	if scanDryRun {
		due, result, err := d.scanner.DueActivities(ctx, now)
		if err != nil {
			return err
		}
		printDue(out, due, d.cfg.Zone.Location())
		printResult(out, result)
		return nil
	}

	result, err := d.scanner.Scan(ctx, now)
	printResult(out, result)
	return err
}

func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", s, err)
	}
	return t.UTC(), nil
}

func printDue(w io.Writer, due []activity.Activity, loc *time.Location) {
	for _, a := range due {
		assignee := "-"
		if a.AssignedTo.Valid {
			assignee = a.AssignedTo.UUID.String()
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n", a.ID, a.StartsAt.In(loc).Format("15:04"), assignee, a.Title)
	}
}

func printResult(w io.Writer, r app.ScanResult) {
	fmt.Fprintf(w, "day=%s singles=%d recurring=%d due=%d dispatched=%d failed=%d skipped=%d\n",
		r.Day, r.SingleCandidates, r.RecurringCandidates, r.Due, r.Dispatched, r.Failed, r.Skipped)
}
