// internal/app/reminder_scanner.go
package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"elepad_reminders/internal/domain/activity"
	"elepad_reminders/internal/domain/notification"
	"elepad_reminders/internal/domain/recurrence"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const defaultDispatchLimit = 10

// ScanResult summarises one reminder scan.
type ScanResult struct {
	Day                 recurrence.Date
	SingleCandidates    int
	RecurringCandidates int
	Due                 int
	Dispatched          int
	Failed              int
	Skipped             int // Due but not assigned to anyone
}

// ReminderScanner finds activities whose reminder is due and hands them to the dispatcher.
// It holds no state between scans; every call reads fresh snapshots.
type ReminderScanner struct {
	activities    activity.Repository
	dispatcher    notification.Dispatcher
	zone          recurrence.Zone
	logger        *logrus.Entry
	dispatchLimit int
}

func NewReminderScanner(
	activities activity.Repository,
	dispatcher notification.Dispatcher,
	zone recurrence.Zone,
	logger *logrus.Entry,
	dispatchLimit int,
) *ReminderScanner {
	if dispatchLimit < 1 {
		dispatchLimit = defaultDispatchLimit
	}
	return &ReminderScanner{
		activities:    activities,
		dispatcher:    dispatcher,
		zone:          zone,
		logger:        logger,
		dispatchLimit: dispatchLimit,
	}
}

// DueActivities returns the activities whose reminder should fire at now, without dispatching.
func (s *ReminderScanner) DueActivities(ctx context.Context, now time.Time) ([]activity.Activity, ScanResult, error) {
	now = now.UTC()
	from, to := recurrence.Window(now)
	today := s.zone.CivilDate(now)
	result := ScanResult{Day: today}

	var (
		singles   []activity.SingleActivity
		recurring []activity.RecurringActivity
		completed []uuid.UUID
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		singles, err = s.activities.ListDueSingle(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list single activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recurring, err = s.activities.ListRecurringCandidates(gctx, to)
		if err != nil {
			return fmt.Errorf("failed to list recurring activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		completed, err = s.activities.ListCompletedIDs(gctx, today)
		if err != nil {
			return fmt.Errorf("failed to list completions for %s: %w", today, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, result, err
	}

	result.SingleCandidates = len(singles)
	result.RecurringCandidates = len(recurring)

	completedToday := make(map[uuid.UUID]struct{}, len(completed))
	for _, id := range completed {
		completedToday[id] = struct{}{}
	}

	due := make([]activity.Activity, 0, len(singles))
	for _, a := range singles {
		due = append(due, a.Activity)
	}

	for _, ra := range recurring {
		if err := ctx.Err(); err != nil {
			return nil, result, err
		}

		entry := s.logger.WithFields(logrus.Fields{
			"activity_id": ra.ID,
			"rule":        ra.RawRule,
		})
		if ra.RuleErr != nil {
			entry.WithError(ra.RuleErr).Debug("Skipping recurring activity without a usable rule")
			continue
		}
		if !ra.OccursOn(s.zone, today) {
			continue
		}
		if !recurrence.InWindow(ra.StartsAt, now) {
			continue
		}
		if _, done := completedToday[ra.ID]; done {
			entry.Debug("Occurrence already completed today")
			continue
		}
		due = append(due, ra.Activity)
	}

	result.Due = len(due)
	return due, result, nil
}

// Scan runs one reminder tick at now: it collects the due activities and dispatches one
// reminder per assigned activity. A failed dispatch never affects the others; Scan only
// returns an error when the activities could not be read or ctx ended early.
func (s *ReminderScanner) Scan(ctx context.Context, now time.Time) (ScanResult, error) {
	due, result, err := s.DueActivities(ctx, now)
	if err != nil {
		return result, err
	}

	var dispatched, failed atomic.Int32
	var g errgroup.Group
	g.SetLimit(s.dispatchLimit)

	var stopErr error
	for _, a := range due {
		if err := ctx.Err(); err != nil {
			stopErr = err
			break
		}
		if !a.AssignedTo.Valid {
			s.logger.WithField("activity_id", a.ID).Debug("Due activity has no assignee; no reminder sent")
			result.Skipped++
			continue
		}

		a := a
		g.Go(func() error {
			entry := s.logger.WithFields(logrus.Fields{
				"activity_id": a.ID,
				"user_id":     a.AssignedTo.UUID,
			})
			if err := s.dispatcher.CreateNotification(ctx, s.reminderFor(a)); err != nil {
				entry.WithError(err).Error("Failed to dispatch activity reminder")
				failed.Add(1)
				return nil
			}
			entry.Info("Activity reminder dispatched")
			dispatched.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	result.Dispatched = int(dispatched.Load())
	result.Failed = int(failed.Load())

	if stopErr != nil {
		return result, fmt.Errorf("reminder scan interrupted after %d dispatches: %w", result.Dispatched, stopErr)
	}
	return result, nil
}

func (s *ReminderScanner) reminderFor(a activity.Activity) notification.Notification {
	body := a.Description
	if body == "" {
		body = fmt.Sprintf("Your activity starts at %s.", a.StartsAt.In(s.zone.Location()).Format("15:04"))
	}
	return notification.Notification{
		UserID:     a.AssignedTo.UUID,
		EventType:  notification.EventTypeActivityReminder,
		EntityType: notification.EntityTypeActivity,
		EntityID:   a.ID,
		Title:      a.Title,
		Body:       body,
	}
}
