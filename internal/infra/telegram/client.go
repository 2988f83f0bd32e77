// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"

	"elepad_reminders/internal/domain/push"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements push.Client using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

var _ push.Client = (*TelebotAdapter)(nil)

// Send delivers a reminder to the given chat as plain text.
func (tba *TelebotAdapter) Send(ctx context.Context, chatID int64, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := tba.bot.Send(telebot.ChatID(chatID), formatMessage(title, body)); err != nil {
		return fmt.Errorf("telegram send to chat %d: %w", chatID, err)
	}
	return nil
}

func formatMessage(title, body string) string {
	if body == "" {
		return title
	}
	return title + "\n\n" + body
}
