// internal/domain/notification/notification.go
package notification

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies why a notification was created.
type EventType string

const (
	EventTypeActivityReminder EventType = "activity_reminder"
)

// EntityType identifies what kind of record EntityID points at.
type EntityType string

const (
	EntityTypeActivity EntityType = "activity"
)

// Notification is an in-app notification addressed to one user.
// Corresponds to the 'notifications' table.
type Notification struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EventType  EventType
	EntityType EntityType
	EntityID   uuid.UUID
	Title      string
	Body       string
	Read       bool
	CreatedAt  time.Time
}
