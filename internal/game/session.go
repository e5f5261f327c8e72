package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

// Phase is the lifecycle state of a mini-game session.
type Phase int

const (
	PhaseNotStarted   Phase = iota // Created, no items selected yet
	PhaseInProgress                // Waiting for an answer to the current item
	PhaseItemAnswered              // Feedback for the current item is showing
	PhaseFinished                  // No more answers accepted
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseItemAnswered:
		return "item-answered"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrNotStarted      = errors.New("session not started")
	ErrFinished        = errors.New("session already finished")
	ErrUnknownItem     = errors.New("unknown item")
	ErrAwaitingNext    = errors.New("current item already answered")
	ErrNotAnswered     = errors.New("current item not answered yet")
	ErrNoContent       = errors.New("no content for this module")
	ErrAlreadyMatched  = errors.New("item already matched")
	ErrSameKindPairing = errors.New("items are on the same side")
)

// Points awarded per correct answer.
const (
	TrueFalsePoints = 25
	ScenarioPoints  = 50
	TriviaPoints    = 50

	// TrueFalseSessionSize caps the questions drawn per true/false session.
	TrueFalseSessionSize = 4
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a deterministic Shuffler for seed.
func NewShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Options configures a new session.
type Options struct {
	// Level is the trainee's current level; the pool comes from the nearest
	// level with content.
	Level int
	// Completed is the trainee's completed activity set. Sessions that draw
	// a subset of the pool prefer items not yet completed.
	Completed progress.Set
	Shuffler  Shuffler
	Now       func() time.Time
	SessionID string
}

func (o Options) withDefaults() Options {
	if o.Level < progress.MinLevel {
		o.Level = progress.MinLevel
	}
	if o.Shuffler == nil {
		o.Shuffler = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.SessionID == "" {
		o.SessionID = uuid.New().String()
	}
	if o.Completed == nil {
		o.Completed = progress.NewSet()
	}
	return o
}

// Feedback reports the outcome of one answer.
type Feedback struct {
	Correct bool
	Points  int
	// Explanation is the teaching text for the item, when the content has
	// one.
	Explanation string
}

// base carries the bookkeeping every session shares.
type base struct {
	module content.Module
	pack   *content.Pack
	opts   Options

	level     int
	phase     Phase
	startedAt time.Time
	endedAt   time.Time

	score    int
	correct  int
	answered int
	timedOut bool
	awards   []progress.Award
}

func newBase(m content.Module, pack *content.Pack, opts Options) base {
	return base{module: m, pack: pack, opts: opts.withDefaults()}
}

// Module returns the module this session belongs to.
func (b *base) Module() content.Module { return b.module }

// Phase returns the current lifecycle state.
func (b *base) Phase() Phase { return b.phase }

// Score returns the running score.
func (b *base) Score() int { return b.score }

// Level returns the content level selected at Start.
func (b *base) Level() int { return b.level }

// SessionID identifies the session in logs and history.
func (b *base) SessionID() string { return b.opts.SessionID }

// begin resolves the pool level and moves to InProgress.
func (b *base) begin() error {
	if b.phase != PhaseNotStarted {
		return nil
	}
	level, ok := b.pack.PoolLevel(b.module, b.opts.Level)
	if !ok {
		return ErrNoContent
	}
	b.level = level
	b.startedAt = b.opts.Now()
	b.phase = PhaseInProgress
	return nil
}

func (b *base) checkAnswerable() error {
	switch b.phase {
	case PhaseNotStarted:
		return ErrNotStarted
	case PhaseFinished:
		return ErrFinished
	case PhaseItemAnswered:
		return ErrAwaitingNext
	}
	return nil
}

func (b *base) record(activityID string, correct bool, points int) {
	b.answered++
	if !correct {
		return
	}
	b.correct++
	b.score += points
	b.awards = append(b.awards, progress.Award{ID: activityID, Points: points})
}

func (b *base) finish() {
	if b.phase == PhaseFinished {
		return
	}
	b.phase = PhaseFinished
	b.endedAt = b.opts.Now()
}

func (b *base) result(total int, poolIDs []string) progress.Result {
	end := b.endedAt
	if end.IsZero() {
		end = b.opts.Now()
	}
	return progress.Result{
		SessionID: b.opts.SessionID,
		Module:    b.module,
		Level:     b.level,
		Score:     b.score,
		Correct:   b.correct,
		Answered:  b.answered,
		Total:     total,
		TimedOut:  b.timedOut,
		Duration:  end.Sub(b.startedAt),
		Awards:    append([]progress.Award(nil), b.awards...),
		PoolIDs:   poolIDs,
	}
}

// shuffled returns a shuffled copy of items.
func shuffled[T any](s Shuffler, items []T) []T {
	out := append([]T(nil), items...)
	s.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
