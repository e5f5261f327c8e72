package progress

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

// Outcome describes what a completion changed.
type Outcome struct {
	// Score is the raw session score, always set even when persistence
	// fails.
	Score       int
	PointsAdded int
	NewIDs      []string
	LevelBefore int
	LevelAfter  int
	NewBadges   []string
	// Progress is the state after the merge; nil for guests or when the
	// record could not be read.
	Progress *UserProgress
}

// LeveledUp reports whether the completion raised the trainee's level.
func (o Outcome) LeveledUp() bool {
	return o.Progress != nil && o.LevelAfter > o.LevelBefore
}

// Service merges finished sessions into the progress store and keeps the
// derived level and badges in sync with the point total.
type Service struct {
	store  Store
	pack   *content.Pack
	logger *slog.Logger

	mu sync.Mutex
}

// NewService creates a progress Service.
func NewService(store Store, pack *content.Pack, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, pack: pack, logger: logger}
}

// Pack returns the content the service scores against.
func (s *Service) Pack() *content.Pack {
	return s.pack
}

// Load reads a trainee's progress and writes back level and badges when
// they disagree with the point total.
func (s *Service) Load(ctx context.Context, userID string) (*UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.reconcile(ctx, p); err != nil {
		s.logger.Warn("reconcile level and badges", "user_id", userID, "error", err)
	}
	return p, nil
}

// Complete merges a finished session into userID's progress. An empty
// userID means guest play: nothing is persisted and only the score is
// returned. Each activity id is recorded at most once and only newly
// recorded ids add points, so repeating a completion is a no-op.
//
// The returned error reports a read or write failure; the outcome still
// carries the session score so the caller can show it.
func (s *Service) Complete(ctx context.Context, userID string, res Result) (Outcome, error) {
	out := Outcome{Score: res.Score}
	if userID == "" {
		return out, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With("user_id", userID, "module", string(res.Module), "session_id", res.SessionID)

	p, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		log.Error("read progress for completion", "error", err)
		return out, err
	}
	out.LevelBefore = p.Level

	completed := p.Completed()
	for _, a := range res.Awards {
		if completed.Add(a.ID) {
			out.NewIDs = append(out.NewIDs, a.ID)
			out.PointsAdded += a.Points
		}
	}
	if res.Module != "" && res.Level > 0 && completed.HasAll(res.PoolIDs) {
		for _, marker := range []string{LevelMarker(res.Module, res.Level), CompleteMarker(res.Module)} {
			if completed.Add(marker) {
				out.NewIDs = append(out.NewIDs, marker)
			}
		}
	}

	if len(out.NewIDs) > 0 {
		points := p.Points + out.PointsAdded
		ids := completed.Sorted()
		err := s.store.UpdateProgress(ctx, userID, Update{
			Points:              &points,
			CompletedActivities: ids,
		})
		if err != nil {
			log.Error("persist completion", "error", err, "new_ids", out.NewIDs)
			return out, err
		}
		p.Points = points
		p.CompletedActivities = ids
	}

	prevBadges := NewSet(p.Badges...)
	if _, err := s.reconcile(ctx, p); err != nil {
		log.Error("persist level and badges", "error", err)
		out.LevelAfter = out.LevelBefore
		out.Progress = p
		return out, err
	}
	for _, id := range p.Badges {
		if !prevBadges.Has(id) {
			out.NewBadges = append(out.NewBadges, id)
		}
	}
	out.LevelAfter = p.Level
	out.Progress = p

	log.Info("session completed",
		"score", res.Score,
		"points_added", out.PointsAdded,
		"new_ids", len(out.NewIDs),
		"points", p.Points,
		"level", p.Level,
	)
	return out, nil
}

// reconcile recomputes level and badges for p, persisting and updating p
// only when they changed. It reports whether a write happened.
func (s *Service) reconcile(ctx context.Context, p *UserProgress) (bool, error) {
	level := LevelFor(p.Points, s.pack.Thresholds)
	badges := BadgesFor(p.Points, s.pack.Badges)

	var u Update
	if level != p.Level {
		u.Level = &level
	}
	if !sameSet(badges, p.Badges) {
		if badges == nil {
			badges = []string{}
		}
		u.Badges = badges
	}
	if u.IsZero() {
		return false, nil
	}
	if err := s.store.UpdateProgress(ctx, p.UserID, u); err != nil {
		return false, err
	}
	p.Level = level
	p.Badges = badges
	return true, nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := slices.Clone(a), slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}

// IsNotFound reports whether err means the user has no progress record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
