// internal/app/notification_service.go
package app

import (
	"context"
	"fmt"

	"elepad_reminders/internal/domain/notification"
	"elepad_reminders/internal/domain/push"

	"github.com/sirupsen/logrus"
)

// NotificationService stores in-app notifications and pushes them to the user's
// linked chat when there is one. It implements notification.Dispatcher.
type NotificationService struct {
	notifRepo  notification.Repository
	pushClient push.Client // nil disables push delivery
	logger     *logrus.Entry
}

func NewNotificationService(
	nr notification.Repository,
	pc push.Client,
	logger *logrus.Entry,
) *NotificationService {
	return &NotificationService{
		notifRepo:  nr,
		pushClient: pc,
		logger:     logger,
	}
}

var _ notification.Dispatcher = (*NotificationService)(nil)

// CreateNotification persists n and then pushes it. The stored row is kept even if
// the push fails; the push error is returned so the caller can log it.
func (s *NotificationService) CreateNotification(ctx context.Context, n notification.Notification) error {
	entry := s.logger.WithFields(logrus.Fields{
		"user_id":    n.UserID,
		"event_type": n.EventType,
		"entity_id":  n.EntityID,
	})

	if err := s.notifRepo.Create(ctx, &n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	entry = entry.WithField("notification_id", n.ID)
	entry.Debug("Notification stored")

	if s.pushClient == nil {
		return nil
	}

	chatID, ok, err := s.notifRepo.GetPushTarget(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up push target for user %s: %w", n.UserID, err)
	}
	if !ok {
		entry.Debug("User has no linked chat; push skipped")
		return nil
	}

	if err := s.pushClient.Send(ctx, chatID, n.Title, n.Body); err != nil {
		return fmt.Errorf("failed to push notification %s: %w", n.ID, err)
	}
	entry.WithField("chat_id", chatID).Debug("Notification pushed")
	return nil
}
