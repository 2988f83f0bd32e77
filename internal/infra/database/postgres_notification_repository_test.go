package database

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"elepad_reminders/internal/domain/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepo(t *testing.T) (*PostgresNotificationRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresNotificationRepository(db), mock
}

func TestPostgresNotificationRepository_Create(t *testing.T) {
	repo, mock := setupNotificationRepo(t)

	id := uuid.New()
	createdAt := time.Date(2024, 3, 4, 16, 31, 5, 0, time.UTC)
	n := notification.Notification{
		UserID:     uuid.New(),
		EventType:  notification.EventTypeActivityReminder,
		EntityType: notification.EntityTypeActivity,
		EntityID:   uuid.New(),
		Title:      "Walk",
		Body:       "Your activity starts at 15:30.",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(n.UserID, "activity_reminder", "activity", n.EntityID, n.Title, n.Body, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), createdAt))

	require.NoError(t, repo.Create(context.Background(), &n))
	assert.Equal(t, id, n.ID)
	assert.Equal(t, createdAt, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNotificationRepository_CreateError(t *testing.T) {
	repo, mock := setupNotificationRepo(t)
	dbErr := errors.New("violates foreign key constraint")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).WillReturnError(dbErr)

	err := repo.Create(context.Background(), &notification.Notification{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestPostgresNotificationRepository_GetPushTarget(t *testing.T) {
	dbErr := errors.New("timeout")

	tests := []struct {
		name       string
		setup      func(mock sqlmock.Sqlmock, userID uuid.UUID)
		wantChatID int64
		wantOK     bool
		wantErrIs  error
	}{
		{
			name: "linked chat",
			setup: func(mock sqlmock.Sqlmock, userID uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT telegram_chat_id FROM users WHERE id = $1")).
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"telegram_chat_id"}).AddRow(int64(987654)))
			},
			wantChatID: 987654,
			wantOK:     true,
		},
		{
			name: "no linked chat",
			setup: func(mock sqlmock.Sqlmock, userID uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT telegram_chat_id FROM users")).
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"telegram_chat_id"}).AddRow(nil))
			},
		},
		{
			name: "unknown user",
			setup: func(mock sqlmock.Sqlmock, userID uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT telegram_chat_id FROM users")).
					WithArgs(userID).
					WillReturnError(sql.ErrNoRows)
			},
			wantErrIs: ErrUserNotFound,
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock, userID uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT telegram_chat_id FROM users")).
					WithArgs(userID).
					WillReturnError(dbErr)
			},
			wantErrIs: dbErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupNotificationRepo(t)
			userID := uuid.New()
			tt.setup(mock, userID)

			chatID, ok, err := repo.GetPushTarget(context.Background(), userID)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChatID, chatID)
			assert.Equal(t, tt.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
