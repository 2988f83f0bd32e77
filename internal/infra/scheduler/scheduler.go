package scheduler

import (
	"context"
	"fmt"
	"time"

	"elepad_reminders/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderScanner is the part of app.ReminderScanner the scheduler drives.
type ReminderScanner interface {
	Scan(ctx context.Context, now time.Time) (app.ScanResult, error)
}

type ReminderScheduler struct {
	cronEngine  *cron.Cron
	scanner     ReminderScanner
	logger      *logrus.Entry
	cronSpec    string
	scanTimeout time.Duration
	now         func() time.Time
}

func NewReminderScheduler(
	scanner ReminderScanner,
	logger *logrus.Entry,
	cronSpec string, // e.g., "0 * * * *" (top of every hour)
	scanTimeout time.Duration,
) *ReminderScheduler {
	cl := cronLogger{entry: logger}
	return &ReminderScheduler{
		// Ticks never overlap: a tick still running when the next one fires is skipped.
		cronEngine: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		scanner:     scanner,
		logger:      logger,
		cronSpec:    cronSpec,
		scanTimeout: scanTimeout,
		now:         time.Now,
	}
}

// Start registers the reminder job and starts the cron engine.
func (s *ReminderScheduler) Start() error {
	s.logger.WithField("cron_spec", s.cronSpec).Info("Starting reminder scheduler...")

	if _, err := s.cronEngine.AddFunc(s.cronSpec, s.runReminderScan); err != nil {
		return fmt.Errorf("could not add reminder scan cron job %q: %w", s.cronSpec, err)
	}

	s.cronEngine.Start()
	s.logger.Info("Reminder scheduler started.")
	return nil
}

// runReminderScan is one tick. Failures are logged and the next tick retries naturally.
func (s *ReminderScheduler) runReminderScan() {
	ctx, cancel := context.WithTimeout(context.Background(), s.scanTimeout)
	defer cancel()

	now := s.now().UTC()
	entry := s.logger.WithField("tick", now.Format(time.RFC3339))
	entry.Debug("Cron job triggered for reminder scan.")

	result, err := s.scanner.Scan(ctx, now)
	fields := logrus.Fields{
		"day":        result.Day.String(),
		"due":        result.Due,
		"dispatched": result.Dispatched,
		"failed":     result.Failed,
		"skipped":    result.Skipped,
	}
	if err != nil {
		entry.WithFields(fields).WithError(err).Error("Reminder scan aborted")
		return
	}
	entry.WithFields(fields).Info("Reminder scan completed")
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new ticks and waits for a running one.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}

// cronLogger routes robfig/cron's own logging through logrus.
type cronLogger struct {
	entry *logrus.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(kvFields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(kvFields(keysAndValues)).WithError(err).Error(msg)
}

func kvFields(keysAndValues []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
