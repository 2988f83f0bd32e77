// internal/infra/database/postgres_activity_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"elepad_reminders/internal/domain/activity"
	"elepad_reminders/internal/domain/recurrence"

	"github.com/google/uuid"
)

const activityColumns = `a.id, a.title, COALESCE(a.description, ''), a.starts_at, a.ends_at, a.assigned_to, a.completed`

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

var _ activity.Repository = (*PostgresActivityRepository)(nil)

// scanActivity reads activityColumns, followed by any extra destinations.
func scanActivity(rows *sql.Rows, extra ...any) (activity.Activity, error) {
	var (
		a      activity.Activity
		endsAt sql.NullTime
	)
	dest := append([]any{&a.ID, &a.Title, &a.Description, &a.StartsAt, &endsAt, &a.AssignedTo, &a.Completed}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return a, err
	}
	a.StartsAt = a.StartsAt.UTC()
	if endsAt.Valid {
		t := endsAt.Time.UTC()
		a.EndsAt = &t
	}
	return a, nil
}

func (r *PostgresActivityRepository) ListDueSingle(ctx context.Context, from, to time.Time) ([]activity.SingleActivity, error) {
	query := `SELECT ` + activityColumns + `
               FROM activities a
               WHERE a.completed = FALSE
                 AND a.frequency_id IS NULL
                 AND a.starts_at >= $1
                 AND a.starts_at < $2
               ORDER BY a.starts_at, a.id`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying single activities: %w", err)
	}
	defer rows.Close()

	activities := make([]activity.SingleActivity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning single activity row: %w", err)
		}
		activities = append(activities, activity.SingleActivity{Activity: a})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating single activity rows: %w", err)
	}
	return activities, nil
}

func (r *PostgresActivityRepository) ListRecurringCandidates(ctx context.Context, upTo time.Time) ([]activity.RecurringActivity, error) {
	query := `SELECT ` + activityColumns + `, f.rrule
               FROM activities a
               JOIN frequencies f ON f.id = a.frequency_id
               WHERE a.completed = FALSE
                 AND a.starts_at <= $1
               ORDER BY a.starts_at, a.id`
	rows, err := r.db.QueryContext(ctx, query, upTo)
	if err != nil {
		return nil, fmt.Errorf("error querying recurring activities: %w", err)
	}
	defer rows.Close()

	activities := make([]activity.RecurringActivity, 0)
	for rows.Next() {
		var rule sql.NullString
		a, err := scanActivity(rows, &rule)
		if err != nil {
			return nil, fmt.Errorf("error scanning recurring activity row: %w", err)
		}
		activities = append(activities, activity.NewRecurringActivity(a, rule.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring activity rows: %w", err)
	}
	return activities, nil
}

func (r *PostgresActivityRepository) ListCompletedIDs(ctx context.Context, date recurrence.Date) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT activity_id FROM activity_completions WHERE completed_date = $1`
	rows, err := r.db.QueryContext(ctx, query, date.String())
	if err != nil {
		return nil, fmt.Errorf("error querying activity completions: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning activity completion row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity completion rows: %w", err)
	}
	return ids, nil
}
