package app

import (
	"context"
	"errors"
	"testing"

	"elepad_reminders/internal/domain/notification"
	"elepad_reminders/internal/domain/push"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reminderNotification() notification.Notification {
	return notification.Notification{
		UserID:     uuid.New(),
		EventType:  notification.EventTypeActivityReminder,
		EntityType: notification.EntityTypeActivity,
		EntityID:   uuid.New(),
		Title:      "Walk",
		Body:       "Your activity starts at 15:30.",
	}
}

func newTestEntry() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestNotificationService_CreateNotification(t *testing.T) {
	storeErr := errors.New("insert failed")
	lookupErr := errors.New("users table unavailable")
	sendErr := errors.New("chat not found")
	storedID := uuid.New()

	tests := []struct {
		name      string
		withPush  bool
		setup     func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient)
		wantErrIs error
	}{
		{
			name:     "stores and pushes to linked chat",
			withPush: true,
			setup: func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got *notification.Notification) error {
					assert.Equal(t, n, *got)
					got.ID = storedID
					return nil
				})
				repo.EXPECT().GetPushTarget(gomock.Any(), n.UserID).Return(int64(4242), true, nil)
				pc.EXPECT().Send(gomock.Any(), int64(4242), n.Title, n.Body).Return(nil)
			},
		},
		{
			name:     "user without linked chat is stored only",
			withPush: true,
			setup: func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().GetPushTarget(gomock.Any(), n.UserID).Return(int64(0), false, nil)
			},
		},
		{
			name:     "push disabled skips the lookup",
			withPush: false,
			setup: func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "store failure stops before push",
			withPush: true,
			setup: func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storeErr)
			},
			wantErrIs: storeErr,
		},
		{
			name:     "push target lookup failure",
			withPush: true,
			setup: func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().GetPushTarget(gomock.Any(), n.UserID).Return(int64(0), false, lookupErr)
			},
			wantErrIs: lookupErr,
		},
		{
			name:     "push failure is reported",
			withPush: true,
			setup: func(n notification.Notification, repo *notification.MockRepository, pc *push.MockClient) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().GetPushTarget(gomock.Any(), n.UserID).Return(int64(7), true, nil)
				pc.EXPECT().Send(gomock.Any(), int64(7), n.Title, n.Body).Return(sendErr)
			},
			wantErrIs: sendErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := notification.NewMockRepository(ctrl)
			pc := push.NewMockClient(ctrl)
			n := reminderNotification()
			tt.setup(n, repo, pc)

			var client push.Client
			if tt.withPush {
				client = pc
			}
			svc := NewNotificationService(repo, client, newTestEntry())

			err := svc.CreateNotification(context.Background(), n)
			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
