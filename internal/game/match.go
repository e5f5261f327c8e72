package game

import (
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

// Match scoring constants.
const (
	MatchAttemptPenalty = 10
	MatchMinScore       = 20
)

// MatchBaseScore returns the starting score for a match board at level.
func MatchBaseScore(level int) int {
	switch {
	case level >= 3:
		return 150
	case level == 2:
		return 120
	default:
		return 100
	}
}

// MatchScore computes the final board score: the level base minus a penalty
// for every attempt beyond the number of pairs, never below MatchMinScore.
func MatchScore(level, pairs, attempts int) int {
	penalty := (attempts - pairs) * MatchAttemptPenalty
	if penalty < 0 {
		penalty = 0
	}
	return max(MatchMinScore, MatchBaseScore(level)-penalty)
}

// Match is a board of benefit/system items the trainee pairs up. Every
// pairing attempt counts; the board finishes when all pairs are found.
type Match struct {
	base
	benefits []content.MatchItem
	systems  []content.MatchItem
	byID     map[string]content.MatchItem
	matched  map[string]bool
	attempts int
}

// NewMatch creates a match session.
func NewMatch(pack *content.Pack, opts Options) *Match {
	return &Match{base: newBase(content.ModuleMatch, pack, opts)}
}

// Start lays out the board with each column shuffled independently.
func (s *Match) Start() error {
	if s.phase != PhaseNotStarted {
		return nil
	}
	if err := s.begin(); err != nil {
		return err
	}
	items := s.pack.Match[s.level]
	s.byID = make(map[string]content.MatchItem, len(items))
	s.matched = make(map[string]bool, len(items))
	var benefits, systems []content.MatchItem
	for _, it := range items {
		s.byID[it.ID] = it
		if it.Kind == content.MatchBenefit {
			benefits = append(benefits, it)
		} else {
			systems = append(systems, it)
		}
	}
	s.benefits = shuffled(s.opts.Shuffler, benefits)
	s.systems = shuffled(s.opts.Shuffler, systems)
	if len(s.benefits) == 0 {
		s.finish()
		return ErrNoContent
	}
	return nil
}

// Benefits returns the left column in display order.
func (s *Match) Benefits() []content.MatchItem { return s.benefits }

// Systems returns the right column in display order.
func (s *Match) Systems() []content.MatchItem { return s.systems }

// Pairs returns the number of pairs on the board.
func (s *Match) Pairs() int { return len(s.benefits) }

// Attempts returns the number of pairing attempts so far.
func (s *Match) Attempts() int { return s.attempts }

// Matched reports whether item id has been paired.
func (s *Match) Matched(id string) bool { return s.matched[id] }

// MatchedPairs returns the number of pairs found.
func (s *Match) MatchedPairs() int { return len(s.matched) / 2 }

// Attempt tries to pair items a and b. The pair is correct when the two
// items reference each other. Every valid attempt counts toward the
// penalty; the session finishes on the last pair.
func (s *Match) Attempt(a, b string) (bool, error) {
	switch s.phase {
	case PhaseNotStarted:
		return false, ErrNotStarted
	case PhaseFinished:
		return false, ErrFinished
	}
	ia, okA := s.byID[a]
	ib, okB := s.byID[b]
	if !okA || !okB {
		return false, ErrUnknownItem
	}
	if s.matched[a] || s.matched[b] {
		return false, ErrAlreadyMatched
	}
	if ia.Kind == ib.Kind {
		return false, ErrSameKindPairing
	}

	s.attempts++
	s.answered++
	if ia.MatchID != ib.ID || ib.MatchID != ia.ID {
		return false, nil
	}
	s.matched[a] = true
	s.matched[b] = true
	s.correct++
	if s.MatchedPairs() == s.Pairs() {
		s.score = MatchScore(s.level, s.Pairs(), s.attempts)
		s.finish()
	}
	return true, nil
}

// Finish ends the session. A complete board earns the level award carrying
// the whole score; an abandoned board earns nothing.
func (s *Match) Finish() progress.Result {
	s.finish()
	res := s.result(s.Pairs(), nil)
	if s.Pairs() > 0 && s.MatchedPairs() == s.Pairs() {
		res.Awards = []progress.Award{{ID: progress.LevelMarker(s.module, s.level), Points: s.score}}
	} else {
		res.Score = 0
		res.Level = 0
	}
	return res
}
