package game

import (
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

// quiz is the one-item-at-a-time flow shared by true/false, scenario and
// trivia sessions.
type quiz[T any] struct {
	base
	items []T
	index int
	id    func(T) int
	pool  []string
}

// start selects items via pick and enters the first item.
func (q *quiz[T]) start(pick func(level int) []T) error {
	if q.phase != PhaseNotStarted {
		return nil
	}
	if err := q.begin(); err != nil {
		return err
	}
	q.items = pick(q.level)
	q.pool = q.pack.PoolIDs(q.module, q.level)
	if len(q.items) == 0 {
		q.finish()
		return ErrNoContent
	}
	return nil
}

// Items returns the selected items in play order.
func (q *quiz[T]) Items() []T { return q.items }

// Index returns the zero-based position of the current item.
func (q *quiz[T]) Index() int { return q.index }

// Total returns the number of items in the session.
func (q *quiz[T]) Total() int { return len(q.items) }

// Current returns the item awaiting an answer or showing feedback.
func (q *quiz[T]) Current() (T, bool) {
	var zero T
	if q.phase == PhaseNotStarted || q.index >= len(q.items) {
		return zero, false
	}
	return q.items[q.index], true
}

// current validates that itemID is the item being answered.
func (q *quiz[T]) current(itemID int) (T, error) {
	var zero T
	if err := q.checkAnswerable(); err != nil {
		return zero, err
	}
	item := q.items[q.index]
	if q.id(item) != itemID {
		return zero, ErrUnknownItem
	}
	return item, nil
}

func (q *quiz[T]) answer(itemID int, correct bool, points int) {
	q.record(q.module.ItemActivityID(itemID), correct, points)
	q.phase = PhaseItemAnswered
}

// Next leaves the feedback state. It finishes the session after the last
// item and reports whether another item is available.
func (q *quiz[T]) Next() (bool, error) {
	switch q.phase {
	case PhaseNotStarted:
		return false, ErrNotStarted
	case PhaseFinished:
		return false, nil
	case PhaseInProgress:
		return false, ErrNotAnswered
	}
	q.index++
	if q.index >= len(q.items) {
		q.finish()
		return false, nil
	}
	q.phase = PhaseInProgress
	return true, nil
}

// Finish ends the session and returns the completion result. Items not
// answered yet earn nothing.
func (q *quiz[T]) Finish() progress.Result {
	q.finish()
	return q.result(len(q.items), q.pool)
}
