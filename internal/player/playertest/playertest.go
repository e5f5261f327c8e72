// Package playertest builds player environments for screen tests.
package playertest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

// UserID is the id of the trainee SignIn creates.
const UserID = "u1"

// SessionLog keeps session events in memory, newest last.
type SessionLog struct {
	mu     sync.Mutex
	Events []store.SessionEventData
}

func (l *SessionLog) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Events = append(l.Events, d)
	return nil
}

func (l *SessionLog) QuerySessionEvents(_ context.Context, opts store.QueryOpts) ([]store.SessionEventRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []store.SessionEventRecord
	for i := len(l.Events) - 1; i >= 0; i-- {
		if opts.UserID != "" && l.Events[i].UserID != opts.UserID {
			continue
		}
		out = append(out, store.SessionEventRecord{
			ID:               i + 1,
			Sequence:         int64(i + 1),
			Timestamp:        time.Date(2025, 6, 1, 10, i, 0, 0, time.UTC),
			SessionEventData: l.Events[i],
		})
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

// Clock is a settable time source.
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock(t time.Time) *Clock { return &Clock{t: t} }

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Fixture is a guest environment over the builtin pack.
type Fixture struct {
	Env   *player.Env
	Store *progress.MemoryStore
	Log   *SessionLog
	Clock *Clock
}

// New returns a fixture with nobody signed in.
func New(t testing.TB) *Fixture {
	t.Helper()
	pack := content.Builtin()
	mem := progress.NewMemoryStore()
	log := &SessionLog{}
	clock := NewClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	return &Fixture{
		Env: &player.Env{
			Pack:           pack,
			Progress:       progress.NewService(mem, pack, logging.Discard()),
			Sessions:       log,
			Logger:         logging.Discard(),
			CertificateDir: t.TempDir(),
			Now:            clock.Now,
		},
		Store: mem,
		Log:   log,
		Clock: clock,
	}
}

// SignIn seeds a progress record with points and completed activities and
// signs the trainee in.
func (f *Fixture) SignIn(t testing.TB, points int, completed ...string) *store.User {
	t.Helper()
	ctx := context.Background()
	f.Store.Create(UserID)
	level := progress.LevelFor(points, f.Env.Pack.Thresholds)
	err := f.Store.UpdateProgress(ctx, UserID, progress.Update{
		Points:              &points,
		Level:               &level,
		Badges:              progress.BadgesFor(points, f.Env.Pack.Badges),
		CompletedActivities: completed,
	})
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	u := &store.User{ID: UserID, FirstName: "Ana", LastName: "Pérez", Email: "ana@farmacia.ec"}
	if err := f.Env.SignIn(ctx, u); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return u
}

// AllModulesComplete returns the completion markers of every module.
func AllModulesComplete() []string {
	var ids []string
	for _, m := range content.AllModules() {
		ids = append(ids, progress.CompleteMarker(m))
	}
	return ids
}
