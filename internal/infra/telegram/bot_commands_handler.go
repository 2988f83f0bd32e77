// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands answers /start and /help. Reminders reach a user once the
// chat ID shown here is linked to their account in the app.
func RegisterBotCommands(b *telebot.Bot, baseLogger *logrus.Entry) {
	logger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		logger.WithFields(logrus.Fields{"command": "/start", "chat_id": c.Chat().ID}).Info("Processing /start command")
		return c.Send(startMessage(c.Sender().FirstName, c.Chat().ID))
	})

	b.Handle("/help", func(c telebot.Context) error {
		logger.WithFields(logrus.Fields{"command": "/help", "chat_id": c.Chat().ID}).Info("Processing /help command")
		return c.Send(helpMessage(c.Chat().ID))
	})
}

func startMessage(firstName string, chatID int64) string {
	greeting := "Hi!"
	if firstName != "" {
		greeting = fmt.Sprintf("Hi, %s!", firstName)
	}
	return fmt.Sprintf("%s I send reminders about upcoming activities.\n\n%s", greeting, linkInstructions(chatID))
}

func helpMessage(chatID int64) string {
	return "You will get a reminder about one to two hours before each activity assigned to you. " +
		"Activities already marked as done for the day are skipped.\n\n" + linkInstructions(chatID)
}

func linkInstructions(chatID int64) string {
	return fmt.Sprintf("To receive reminders here, add this chat ID to your profile: %d", chatID)
}
