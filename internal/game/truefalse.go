package game

import (
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

// TrueFalse is a session of up to TrueFalseSessionSize statements.
type TrueFalse struct {
	quiz[content.TrueFalseQuestion]
}

// NewTrueFalse creates a true/false session.
func NewTrueFalse(pack *content.Pack, opts Options) *TrueFalse {
	return &TrueFalse{quiz[content.TrueFalseQuestion]{
		base: newBase(content.ModuleTrueFalse, pack, opts),
		id:   func(q content.TrueFalseQuestion) int { return q.ID },
	}}
}

// Start draws the questions: statements not yet completed come first, each
// group shuffled, truncated to the session size.
func (s *TrueFalse) Start() error {
	return s.start(func(level int) []content.TrueFalseQuestion {
		var fresh, done []content.TrueFalseQuestion
		for _, q := range s.pack.TrueFalse[level] {
			if s.opts.Completed.Has(s.module.ItemActivityID(q.ID)) {
				done = append(done, q)
			} else {
				fresh = append(fresh, q)
			}
		}
		items := append(shuffled(s.opts.Shuffler, fresh), shuffled(s.opts.Shuffler, done)...)
		if len(items) > TrueFalseSessionSize {
			items = items[:TrueFalseSessionSize]
		}
		return items
	})
}

// Answer judges the current statement. response is the trainee's verdict.
func (s *TrueFalse) Answer(itemID int, response bool) (Feedback, error) {
	q, err := s.current(itemID)
	if err != nil {
		return Feedback{}, err
	}
	correct := response == q.IsTrue
	points := 0
	if correct {
		points = TrueFalsePoints
	}
	s.answer(itemID, correct, points)
	return Feedback{Correct: correct, Points: points, Explanation: q.Explanation}, nil
}
