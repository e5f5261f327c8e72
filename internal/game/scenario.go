package game

import (
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

// Scenario is a session of counter dialogues, each judged as correct or
// containing an error.
type Scenario struct {
	quiz[content.Scenario]
}

// NewScenario creates a scenario session.
func NewScenario(pack *content.Pack, opts Options) *Scenario {
	return &Scenario{quiz[content.Scenario]{
		base: newBase(content.ModuleScenario, pack, opts),
		id:   func(s content.Scenario) int { return s.ID },
	}}
}

// Start shuffles every scenario of the pool level.
func (s *Scenario) Start() error {
	return s.start(func(level int) []content.Scenario {
		return shuffled(s.opts.Shuffler, s.pack.Scenarios[level])
	})
}

// Answer records the trainee's judgment: judgedCorrect is true for
// "CORRECTO" and false for "TIENE ERROR".
func (s *Scenario) Answer(itemID int, judgedCorrect bool) (Feedback, error) {
	sc, err := s.current(itemID)
	if err != nil {
		return Feedback{}, err
	}
	correct := judgedCorrect == sc.IsCorrect
	points := 0
	if correct {
		points = ScenarioPoints
	}
	s.answer(itemID, correct, points)

	explanation := sc.Feedback
	if !sc.IsCorrect && sc.CorrectAction != "" {
		explanation = sc.Feedback + " " + sc.CorrectAction
	}
	return Feedback{Correct: correct, Points: points, Explanation: explanation}, nil
}
