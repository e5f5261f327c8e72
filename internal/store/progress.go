package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

// ProgressRepo implements progress.Store on the progress table.
type ProgressRepo struct {
	db  *sql.DB
	now func() time.Time
}

var _ progress.Store = (*ProgressRepo)(nil)

// ProgressRepo returns the progress repository backed by this store.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{db: s.db, now: time.Now}
}

func (r *ProgressRepo) GetProgress(ctx context.Context, userID string) (*progress.UserProgress, error) {
	query, args := builder().Select("points", "level", "badges", "completed_activities", "updated_at").
		From(builder().Table(progressTableName)).
		Where(entsql.EQ("user_id", userID)).
		Query()

	p := progress.UserProgress{UserID: userID}
	var badges, completed []byte
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.Points, &p.Level, &badges, &completed, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, progress.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	if p.Badges, err = decodeIDs(badges); err != nil {
		return nil, err
	}
	if p.CompletedActivities, err = decodeIDs(completed); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepo) UpdateProgress(ctx context.Context, userID string, u progress.Update) error {
	if err := r.update(ctx, userID, u); err != nil {
		return &progress.WriteError{UserID: userID, Err: err}
	}
	return nil
}

func (r *ProgressRepo) update(ctx context.Context, userID string, u progress.Update) error {
	b := builder().Update(progressTableName).
		Set("updated_at", r.now().UTC()).
		Where(entsql.EQ("user_id", userID))
	if u.Points != nil {
		b.Set("points", *u.Points)
	}
	if u.Level != nil {
		b.Set("level", *u.Level)
	}
	if u.Badges != nil {
		v, err := encodeIDs(u.Badges)
		if err != nil {
			return err
		}
		b.Set("badges", v)
	}
	if u.CompletedActivities != nil {
		v, err := encodeIDs(u.CompletedActivities)
		if err != nil {
			return err
		}
		b.Set("completed_activities", v)
	}

	query, args := b.Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return progress.ErrNotFound
	}
	return nil
}

// Reset clears points, level, badges and completed activities for userID.
func (r *ProgressRepo) Reset(ctx context.Context, userID string) error {
	zero, level := 0, progress.MinLevel
	return r.UpdateProgress(ctx, userID, progress.Update{
		Points:              &zero,
		Level:               &level,
		Badges:              []string{},
		CompletedActivities: []string{},
	})
}
