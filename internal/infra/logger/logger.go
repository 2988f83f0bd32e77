package logger

import (
	"os"
	"strings"

	"elepad_reminders/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is shared by every component; Init configures it once at startup.
var Log = logrus.New()

// Init applies LOG_LEVEL and ENVIRONMENT to Log. An unknown level falls back to info.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(formatterFor(cfg.Environment))

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
		Log.WithError(err).Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}
	Log.SetLevel(level)

	Log.WithFields(logrus.Fields{
		"level":       Log.GetLevel().String(),
		"environment": cfg.Environment,
	}).Debug("Logger configured")
}

// formatterFor picks JSON lines for deployed environments and readable text elsewhere.
func formatterFor(environment string) logrus.Formatter {
	switch strings.ToLower(environment) {
	case "production", "staging":
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"}
	}
}

// Component returns an entry tagged with the given component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
