package push

//go:generate mockgen -source=client.go -destination=client_mock.go -package=push

import "context"

// Client delivers a short message to a chat on some push channel.
// This keeps the application logic independent of the bot library.
type Client interface {
	Send(ctx context.Context, chatID int64, title, body string) error
}
