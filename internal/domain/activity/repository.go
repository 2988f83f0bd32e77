package activity

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=activity

import (
	"context"
	"time"

	"elepad_reminders/internal/domain/recurrence"

	"github.com/google/uuid"
)

// Repository defines the reads the reminder scan needs.
type Repository interface {
	// ListDueSingle returns incomplete one-off activities starting in [from, to).
	ListDueSingle(ctx context.Context, from, to time.Time) ([]SingleActivity, error)
	// ListRecurringCandidates returns incomplete recurring activities starting at or before upTo.
	ListRecurringCandidates(ctx context.Context, upTo time.Time) ([]RecurringActivity, error)
	// ListCompletedIDs returns the activities completed on the given civil date.
	ListCompletedIDs(ctx context.Context, date recurrence.Date) ([]uuid.UUID, error)
}
