package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adminconsole/internal/models"
)

const activitySchema = `
	CREATE TABLE IF NOT EXISTS admin_activity (
		id          TEXT PRIMARY KEY,
		admin       TEXT NOT NULL,
		action      TEXT NOT NULL,
		resource    TEXT NOT NULL,
		resource_id TEXT NOT NULL DEFAULT '',
		outcome     TEXT NOT NULL,
		detail      TEXT NOT NULL DEFAULT '',
		at          TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS admin_activity_at_idx ON admin_activity (at DESC);
`

// ActivityRepository persists the admin activity log.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// EnsureSchema creates the activity table when missing.
func (r *ActivityRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, activitySchema)
	return err
}

func (r *ActivityRepository) Insert(ctx context.Context, event models.ActivityEvent) error {
	const query = `
		INSERT INTO admin_activity (id, admin, action, resource, resource_id, outcome, detail, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Admin,
		event.Action,
		event.Resource,
		event.ResourceID,
		event.Outcome,
		event.Detail,
		event.At,
	)
	return err
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	const query = `
		SELECT id, admin, action, resource, resource_id, outcome, detail, at
		FROM admin_activity
		ORDER BY at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.ActivityEvent, 0, limit)
	for rows.Next() {
		var event models.ActivityEvent
		if err := rows.Scan(
			&event.ID,
			&event.Admin,
			&event.Action,
			&event.Resource,
			&event.ResourceID,
			&event.Outcome,
			&event.Detail,
			&event.At,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// DeleteBefore prunes entries older than cutoff and reports how many went.
func (r *ActivityRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM admin_activity WHERE at < $1`
	cmd, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
