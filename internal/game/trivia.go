package game

import (
	"time"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

// DefaultTriviaBudget is the time allowed for a whole trivia session.
const DefaultTriviaBudget = 30 * time.Second

// Trivia is a timed multiple-choice session. The whole session shares one
// time budget; when it runs out the session finishes and only the items
// answered so far count.
type Trivia struct {
	quiz[content.TriviaQuestion]
	budget   time.Duration
	deadline time.Time
}

// NewTrivia creates a trivia session with the given budget (0 means
// DefaultTriviaBudget).
func NewTrivia(pack *content.Pack, opts Options, budget time.Duration) *Trivia {
	if budget <= 0 {
		budget = DefaultTriviaBudget
	}
	return &Trivia{
		quiz: quiz[content.TriviaQuestion]{
			base: newBase(content.ModuleTrivia, pack, opts),
			id:   func(q content.TriviaQuestion) int { return q.ID },
		},
		budget: budget,
	}
}

// Start shuffles the pool and starts the clock.
func (s *Trivia) Start() error {
	err := s.start(func(level int) []content.TriviaQuestion {
		return shuffled(s.opts.Shuffler, s.pack.Trivia[level])
	})
	if err != nil {
		return err
	}
	if s.deadline.IsZero() {
		s.deadline = s.startedAt.Add(s.budget)
	}
	return nil
}

// Remaining returns the time left at now, never negative.
func (s *Trivia) Remaining(now time.Time) time.Duration {
	if s.phase == PhaseNotStarted {
		return s.budget
	}
	if s.phase == PhaseFinished {
		return 0
	}
	if d := s.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// TimedOut reports whether the session was ended by the clock.
func (s *Trivia) TimedOut() bool { return s.timedOut }

// Tick checks the clock and finishes the session once the budget is spent.
// It reports whether the session is finished.
func (s *Trivia) Tick(now time.Time) bool {
	if s.phase == PhaseFinished {
		return true
	}
	if s.phase == PhaseNotStarted {
		return false
	}
	if !now.Before(s.deadline) {
		s.timedOut = true
		s.finish()
		s.endedAt = s.deadline
		return true
	}
	return false
}

// Answer checks choice against the current question. An answer arriving
// after the deadline finishes the session and is rejected with ErrFinished.
func (s *Trivia) Answer(itemID, choice int) (Feedback, error) {
	if s.Tick(s.opts.Now()) {
		return Feedback{}, ErrFinished
	}
	q, err := s.current(itemID)
	if err != nil {
		return Feedback{}, err
	}
	if choice < 0 || choice >= len(q.Options) {
		return Feedback{}, ErrUnknownItem
	}
	correct := choice == q.CorrectIndex
	points := 0
	if correct {
		points = TriviaPoints
	}
	s.answer(itemID, correct, points)
	return Feedback{Correct: correct, Points: points, Explanation: q.Options[q.CorrectIndex]}, nil
}

// Next advances past the feedback state unless the clock has run out.
func (s *Trivia) Next() (bool, error) {
	if s.Tick(s.opts.Now()) {
		return false, nil
	}
	return s.quiz.Next()
}

// Finish ends the session and returns its result.
func (s *Trivia) Finish() progress.Result {
	s.Tick(s.opts.Now())
	return s.quiz.Finish()
}
