package main

import (
	"database/sql"
	"fmt"
	"time"

	"elepad_reminders/internal/app"
	"elepad_reminders/internal/domain/push"
	"elepad_reminders/internal/infra/config"
	idb "elepad_reminders/internal/infra/database"
	"elepad_reminders/internal/infra/logger"
	"elepad_reminders/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// deps is everything a command needs to run reminder scans.
type deps struct {
	cfg     *config.AppConfig
	db      *sql.DB
	bot     *telebot.Bot // nil when TELEGRAM_TOKEN is unset
	scanner *app.ReminderScanner
}

func (d *deps) Close() {
	if d.db != nil {
		d.db.Close()
	}
}

// setup loads configuration and wires storage, push delivery and the scanner.
// poll selects a long-polling bot; otherwise the bot is only used to send.
func setup(poll bool) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load application configuration: %w", err)
	}
	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"timezone":    cfg.Zone.String(),
		"cron_spec":   cfg.CronSpecReminder,
	}).Info("Configuration loaded")

	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	mainLogger.Info("Database connection established successfully.")
	d := &deps{cfg: cfg, db: db}

	activityRepo := idb.NewPostgresActivityRepository(db)
	notificationRepo := idb.NewPostgresNotificationRepository(db)

	var pushClient push.Client
	if cfg.TelegramToken != "" {
		d.bot, err = newBot(cfg.TelegramToken, poll)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("could not create Telegram bot: %w", err)
		}
		pushClient = telegram.NewTelebotAdapter(d.bot)
		mainLogger.Info("Telegram push delivery enabled.")
	} else {
		mainLogger.Warn("TELEGRAM_TOKEN is not set; reminders are stored but not pushed.")
	}

	notificationService := app.NewNotificationService(notificationRepo, pushClient, logger.Component("notification_service"))
	d.scanner = app.NewReminderScanner(
		activityRepo,
		notificationService,
		cfg.Zone,
		logger.Component("reminder_scanner"),
		cfg.DispatchConcurrency,
	)
	return d, nil
}

func newBot(token string, poll bool) (*telebot.Bot, error) {
	botLogger := logger.Component("telebot")
	pref := telebot.Settings{
		Token:   token,
		Offline: !poll,
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := botLogger.WithError(err)
			if c != nil && c.Chat() != nil {
				entry = entry.WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telegram bot error")
		},
	}
	if poll {
		pref.Poller = &telebot.LongPoller{Timeout: 10 * time.Second}
	}
	return telebot.NewBot(pref)
}
