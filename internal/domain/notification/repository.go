// internal/domain/notification/repository.go
package notification

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists notifications and resolves where a user can be pushed to.
type Repository interface {
	// Create inserts n and fills in its ID and CreatedAt.
	Create(ctx context.Context, n *Notification) error
	// GetPushTarget returns the user's linked chat ID, or ok=false if none is linked.
	GetPushTarget(ctx context.Context, userID uuid.UUID) (chatID int64, ok bool, err error)
}

// Dispatcher creates a notification for a user and delivers it.
type Dispatcher interface {
	CreateNotification(ctx context.Context, n Notification) error
}
