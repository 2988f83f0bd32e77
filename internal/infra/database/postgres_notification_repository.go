// internal/infra/database/postgres_notification_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"elepad_reminders/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrUserNotFound = fmt.Errorf("user not found")

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

var _ notification.Repository = (*PostgresNotificationRepository)(nil)

func (r *PostgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `INSERT INTO notifications (user_id, event_type, entity_type, entity_id, title, body, read)
               VALUES ($1, $2, $3, $4, $5, $6, $7)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		n.UserID, n.EventType, n.EntityType, n.EntityID, n.Title, n.Body, n.Read,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// GetPushTarget returns the Telegram chat linked to userID. A user without a linked
// chat yields ok=false; a missing user yields ErrUserNotFound.
func (r *PostgresNotificationRepository) GetPushTarget(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	query := `SELECT telegram_chat_id FROM users WHERE id = $1`
	var chatID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, ErrUserNotFound
		}
		return 0, false, fmt.Errorf("error getting push target for user %s: %w", userID, err)
	}
	return chatID.Int64, chatID.Valid, nil
}
