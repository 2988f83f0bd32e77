package main

import (
	"os"
	"os/signal"
	"syscall"

	"elepad_reminders/internal/infra/logger"
	"elepad_reminders/internal/infra/scheduler"
	"elepad_reminders/internal/infra/telegram"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reminder scan on its cron schedule until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := setup(true)
	if err != nil {
		return err
	}
	defer d.Close()
	mainLogger := logger.Component("main")

	reminderScheduler := scheduler.NewReminderScheduler(
		d.scanner,
		logger.Component("scheduler"),
		d.cfg.CronSpecReminder,
		d.cfg.ScanTimeout,
	)
	if err := reminderScheduler.Start(); err != nil {
		return err
	}

	if d.bot != nil {
		telegram.RegisterBotCommands(d.bot, logger.Component("telegram"))
		// Start bot in a goroutine so it doesn't block graceful shutdown handling
		go d.bot.Start()
	}

	mainLogger.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	reminderScheduler.Stop()
	if d.bot != nil {
		d.bot.Stop()
	}
	mainLogger.Info("Application shut down gracefully.")
	return nil
}
