package progress

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a user has no progress record.
var ErrNotFound = errors.New("progress record not found")

// WriteError wraps a failed progress write.
type WriteError struct {
	UserID string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write progress for %s: %v", e.UserID, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// UserProgress is the persisted training state of one trainee.
type UserProgress struct {
	UserID              string
	Points              int
	Level               int
	Badges              []string
	CompletedActivities []string
	UpdatedAt           time.Time
}

// Completed returns the completed activities as a set.
func (p *UserProgress) Completed() Set {
	if p == nil {
		return NewSet()
	}
	return NewSet(p.CompletedActivities...)
}

// Update is a partial write. Nil fields are left unchanged.
type Update struct {
	Points              *int
	Level               *int
	Badges              []string
	CompletedActivities []string
}

// IsZero reports whether the update changes nothing.
func (u Update) IsZero() bool {
	return u.Points == nil && u.Level == nil && u.Badges == nil && u.CompletedActivities == nil
}

// Store persists progress records.
type Store interface {
	// GetProgress returns the record for userID or ErrNotFound.
	GetProgress(ctx context.Context, userID string) (*UserProgress, error)

	// UpdateProgress applies a partial update. Failures are *WriteError.
	UpdateProgress(ctx context.Context, userID string, u Update) error
}
