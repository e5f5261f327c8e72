package progress

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. It backs guest play and tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*UserProgress
	now     func() time.Time

	// FailWrites makes every UpdateProgress call fail with this error.
	FailWrites error
	// Writes counts successful UpdateProgress calls.
	Writes int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*UserProgress), now: time.Now}
}

// Create inserts a zeroed record for userID.
func (m *MemoryStore) Create(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = &UserProgress{UserID: userID, Level: MinLevel, UpdatedAt: m.now()}
}

func (m *MemoryStore) GetProgress(_ context.Context, userID string) (*UserProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	cp.Badges = slices.Clone(rec.Badges)
	cp.CompletedActivities = slices.Clone(rec.CompletedActivities)
	return &cp, nil
}

func (m *MemoryStore) UpdateProgress(_ context.Context, userID string, u Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return &WriteError{UserID: userID, Err: m.FailWrites}
	}
	rec, ok := m.records[userID]
	if !ok {
		return &WriteError{UserID: userID, Err: ErrNotFound}
	}
	if u.Points != nil {
		rec.Points = *u.Points
	}
	if u.Level != nil {
		rec.Level = *u.Level
	}
	if u.Badges != nil {
		rec.Badges = slices.Clone(u.Badges)
	}
	if u.CompletedActivities != nil {
		rec.CompletedActivities = slices.Clone(u.CompletedActivities)
	}
	rec.UpdatedAt = m.now()
	m.Writes++
	return nil
}
