package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func testOpts(level int, clock *fakeClock) Options {
	return Options{Level: level, Shuffler: NewShuffler(7), Now: clock.Now, SessionID: "test"}
}

func TestTrueFalseDrawsFourDistinct(t *testing.T) {
	s := NewTrueFalse(content.Builtin(), testOpts(1, newClock()))
	require.NoError(t, s.Start())
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, TrueFalseSessionSize, s.Total())

	seen := map[int]bool{}
	for _, q := range s.Items() {
		assert.False(t, seen[q.ID], "question %d drawn twice", q.ID)
		seen[q.ID] = true
	}
}

func TestTrueFalsePrefersUncompleted(t *testing.T) {
	opts := testOpts(1, newClock())
	opts.Completed = progress.NewSet("tf-101", "tf-102", "tf-104")
	s := NewTrueFalse(content.Builtin(), opts)
	require.NoError(t, s.Start())

	first := map[int]bool{s.Items()[0].ID: true, s.Items()[1].ID: true}
	assert.True(t, first[103] && first[105], "fresh questions should lead, got %v", s.Items())
}

func TestTrueFalseStateMachine(t *testing.T) {
	s := NewTrueFalse(content.Builtin(), testOpts(1, newClock()))

	_, err := s.Answer(101, true)
	assert.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, s.Start())
	q, ok := s.Current()
	require.True(t, ok)

	_, err = s.Answer(q.ID+1000, true)
	assert.ErrorIs(t, err, ErrUnknownItem)

	fb, err := s.Answer(q.ID, q.IsTrue)
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, TrueFalsePoints, fb.Points)
	assert.NotEmpty(t, fb.Explanation)
	assert.Equal(t, PhaseItemAnswered, s.Phase())

	_, err = s.Answer(q.ID, q.IsTrue)
	assert.ErrorIs(t, err, ErrAwaitingNext)

	more, err := s.Next()
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, PhaseInProgress, s.Phase())
}

func TestTrueFalseFinishesAfterLastItem(t *testing.T) {
	s := NewTrueFalse(content.Builtin(), testOpts(2, newClock()))
	require.NoError(t, s.Start())
	for range s.Total() {
		q, _ := s.Current()
		_, err := s.Answer(q.ID, !q.IsTrue)
		require.NoError(t, err)
		_, err = s.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseFinished, s.Phase())

	_, err := s.Answer(201, true)
	assert.ErrorIs(t, err, ErrFinished)

	res := s.Finish()
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Awards)
	assert.Equal(t, 4, res.Answered)
	assert.Equal(t, 2, res.Level)
}

func TestScenarioScoring(t *testing.T) {
	s := NewScenario(content.Builtin(), testOpts(1, newClock()))
	require.NoError(t, s.Start())
	assert.Equal(t, 2, s.Level(), "level 1 has no scenarios, nearest level is used")
	assert.Equal(t, 4, s.Total())

	q, _ := s.Current()
	fb, err := s.Answer(q.ID, true)
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, ScenarioPoints, fb.Points)
	_, _ = s.Next()

	q, _ = s.Current()
	fb, err = s.Answer(q.ID, false)
	require.NoError(t, err)
	assert.False(t, fb.Correct)

	res := s.Finish()
	assert.Equal(t, 50, res.Score)
	assert.Len(t, res.Awards, 1)
	assert.Equal(t, 2, res.Answered)
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		level, pairs, attempts, want int
	}{
		{1, 4, 4, 100},
		{1, 4, 10, 40},
		{1, 4, 20, 20},
		{2, 4, 5, 110},
		{3, 4, 4, 150},
		{1, 4, 2, 100},
	}
	for _, tt := range tests {
		if got := MatchScore(tt.level, tt.pairs, tt.attempts); got != tt.want {
			t.Errorf("MatchScore(%d, %d, %d) = %d, want %d", tt.level, tt.pairs, tt.attempts, got, tt.want)
		}
	}
}

func TestMatchBoard(t *testing.T) {
	s := NewMatch(content.Builtin(), testOpts(1, newClock()))
	require.NoError(t, s.Start())
	require.Equal(t, 4, s.Pairs())

	// Six wrong attempts, then the four right ones: 10 attempts in total.
	wrong := 0
	for wrong < 6 {
		for _, b := range s.Benefits() {
			for _, sys := range s.Systems() {
				if wrong == 6 || b.MatchID == sys.ID {
					continue
				}
				ok, err := s.Attempt(b.ID, sys.ID)
				require.NoError(t, err)
				require.False(t, ok)
				wrong++
			}
		}
	}

	_, err := s.Attempt(s.Benefits()[0].ID, s.Benefits()[1].ID)
	assert.ErrorIs(t, err, ErrSameKindPairing)

	for _, b := range s.Benefits() {
		ok, err := s.Attempt(b.ID, b.MatchID)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.Equal(t, 10, s.Attempts())

	res := s.Finish()
	assert.Equal(t, 40, res.Score)
	require.Len(t, res.Awards, 1)
	assert.Equal(t, progress.Award{ID: "match-level-1", Points: 40}, res.Awards[0])

	_, err = s.Attempt("1a", "1b")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestMatchRejectsMatchedItem(t *testing.T) {
	s := NewMatch(content.Builtin(), testOpts(1, newClock()))
	require.NoError(t, s.Start())
	ok, err := s.Attempt("1a", "1b")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.Attempt("1a", "2b")
	assert.ErrorIs(t, err, ErrAlreadyMatched)
	assert.Equal(t, 1, s.Attempts())
}

func TestMatchAbandonedEarnsNothing(t *testing.T) {
	s := NewMatch(content.Builtin(), testOpts(1, newClock()))
	require.NoError(t, s.Start())
	_, _ = s.Attempt("1a", "1b")
	res := s.Finish()
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Awards)
}

func TestMatchLevelThreeFallsBack(t *testing.T) {
	s := NewMatch(content.Builtin(), testOpts(3, newClock()))
	require.NoError(t, s.Start())
	assert.Equal(t, 2, s.Level())
}

func TestTriviaTimeout(t *testing.T) {
	clock := newClock()
	s := NewTrivia(content.Builtin(), testOpts(1, clock), 30*time.Second)
	require.NoError(t, s.Start())

	for range 2 {
		clock.Advance(5 * time.Second)
		q, _ := s.Current()
		fb, err := s.Answer(q.ID, q.CorrectIndex)
		require.NoError(t, err)
		require.True(t, fb.Correct)
		more, err := s.Next()
		require.NoError(t, err)
		require.True(t, more)
	}

	assert.False(t, s.Tick(clock.Now()))
	assert.Equal(t, 20*time.Second, s.Remaining(clock.Now()))

	clock.Advance(21 * time.Second)
	assert.True(t, s.Tick(clock.Now()))
	assert.True(t, s.TimedOut())
	assert.Equal(t, PhaseFinished, s.Phase())

	q := s.Items()[2]
	_, err := s.Answer(q.ID, q.CorrectIndex)
	assert.ErrorIs(t, err, ErrFinished)

	res := s.Finish()
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.TimedOut)
	assert.Equal(t, 2, res.Answered)
	assert.Equal(t, 30*time.Second, res.Duration)
}

func TestTriviaLateAnswerFinishes(t *testing.T) {
	clock := newClock()
	s := NewTrivia(content.Builtin(), testOpts(1, clock), 10*time.Second)
	require.NoError(t, s.Start())
	clock.Advance(10 * time.Second)

	q, _ := s.Current()
	_, err := s.Answer(q.ID, q.CorrectIndex)
	assert.ErrorIs(t, err, ErrFinished)
	assert.True(t, s.TimedOut())
	assert.Zero(t, s.Score())
}

func TestTriviaCompletesBeforeDeadline(t *testing.T) {
	clock := newClock()
	s := NewTrivia(content.Builtin(), testOpts(1, clock), 0)
	require.NoError(t, s.Start())
	for range s.Total() {
		clock.Advance(time.Second)
		q, _ := s.Current()
		_, err := s.Answer(q.ID, q.CorrectIndex)
		require.NoError(t, err)
		_, err = s.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseFinished, s.Phase())
	res := s.Finish()
	assert.False(t, res.TimedOut)
	assert.Equal(t, 200, res.Score)
	assert.ElementsMatch(t, []string{"trivia-11", "trivia-12", "trivia-13", "trivia-14"}, res.ActivityIDs())
}

func TestNoContent(t *testing.T) {
	s := NewScenario(&content.Pack{}, testOpts(1, newClock()))
	assert.True(t, errors.Is(s.Start(), ErrNoContent))
}

// playTrueFalse answers the first `correct` items right and the rest wrong.
func playTrueFalse(t *testing.T, s *TrueFalse, correct int) {
	t.Helper()
	require.NoError(t, s.Start())
	for i := 0; i < s.Total(); i++ {
		q, _ := s.Current()
		_, err := s.Answer(q.ID, (i < correct) == q.IsTrue)
		require.NoError(t, err)
		_, err = s.Next()
		require.NoError(t, err)
	}
}

func TestEndToEndTrueFalseUnlocksMatch(t *testing.T) {
	ctx := context.Background()
	pack := content.Builtin()
	st := progress.NewMemoryStore()
	st.Create("u1")
	svc := progress.NewService(st, pack, nil)
	clock := newClock()

	s := NewTrueFalse(pack, testOpts(1, clock))
	playTrueFalse(t, s, 3)
	res := s.Finish()
	assert.Equal(t, 75, res.Score)

	out, err := svc.Complete(ctx, "u1", res)
	require.NoError(t, err)
	assert.Equal(t, 75, out.Score)

	p, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 75, p.Points)
	assert.Equal(t, 1, p.Level)
	assert.ElementsMatch(t, res.ActivityIDs(), p.CompletedActivities)
	assert.Len(t, p.CompletedActivities, 3)
	assert.False(t, progress.IsAvailable(content.ModuleMatch, p.Completed()))

	// The next session leads with the two statements still missing.
	opts := testOpts(p.Level, clock)
	opts.Completed = p.Completed()
	opts.SessionID = "second"
	s2 := NewTrueFalse(pack, opts)
	playTrueFalse(t, s2, 4)
	_, err = svc.Complete(ctx, "u1", s2.Finish())
	require.NoError(t, err)

	p, err = svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 125, p.Points)
	assert.True(t, progress.IsAvailable(content.ModuleMatch, p.Completed()))
	assert.False(t, progress.IsAvailable(content.ModuleScenario, p.Completed()))
}
