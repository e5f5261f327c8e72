package content

import (
	"fmt"
	"sort"
)

// Module identifies one of the four training modules.
type Module string

const (
	ModuleTrueFalse Module = "true-false"
	ModuleMatch     Module = "match"
	ModuleScenario  Module = "scenario"
	ModuleTrivia    Module = "trivia"
)

// AllModules returns the modules in unlock order.
func AllModules() []Module {
	return []Module{ModuleTrueFalse, ModuleMatch, ModuleScenario, ModuleTrivia}
}

// DisplayName returns the Spanish label shown to trainees.
func (m Module) DisplayName() string {
	switch m {
	case ModuleTrueFalse:
		return "Verdadero o Falso"
	case ModuleMatch:
		return "Relaciona Conceptos"
	case ModuleScenario:
		return "Casos de Mostrador"
	case ModuleTrivia:
		return "Trivia Contrarreloj"
	default:
		return string(m)
	}
}

// Icon returns the display icon for the module card.
func (m Module) Icon() string {
	switch m {
	case ModuleTrueFalse:
		return "✔"
	case ModuleMatch:
		return "⇄"
	case ModuleScenario:
		return "💬"
	case ModuleTrivia:
		return "⏱"
	default:
		return "•"
	}
}

// ItemPrefix is the prefix used for per-item activity ids of this module.
func (m Module) ItemPrefix() string {
	switch m {
	case ModuleTrueFalse:
		return "tf"
	default:
		return string(m)
	}
}

// ItemActivityID returns the activity id recorded when item id is answered
// correctly.
func (m Module) ItemActivityID(id int) string {
	return fmt.Sprintf("%s-%d", m.ItemPrefix(), id)
}

// MatchKind tells which column a match item belongs to.
type MatchKind string

const (
	MatchBenefit MatchKind = "benefit"
	MatchSystem  MatchKind = "system"
)

// TrueFalseQuestion is a statement the trainee judges as true or false.
type TrueFalseQuestion struct {
	ID          int    `json:"id"`
	Statement   string `json:"statement"`
	IsTrue      bool   `json:"is_true"`
	Explanation string `json:"explanation"`
}

// MatchItem is one side of a matching pair. Pairs reference each other
// through MatchID.
type MatchItem struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Kind    MatchKind `json:"kind"`
	MatchID string    `json:"match_id"`
}

// Scenario is a counter dialogue the trainee evaluates.
type Scenario struct {
	ID            int    `json:"id"`
	Customer      string `json:"customer"`
	ClerkResponse string `json:"clerk_response"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAction string `json:"correct_action,omitempty"`
	Feedback      string `json:"feedback"`
}

// TriviaQuestion is a timed multiple-choice question.
type TriviaQuestion struct {
	ID           int      `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Badge is an achievement unlocked at a point threshold.
type Badge struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	RequiredPoints int    `json:"required_points"`
}

// Thresholds are the point boundaries between levels. Maestro marks
// graduation and gates the certificate.
type Thresholds struct {
	Avanzado int `json:"avanzado"`
	Experto  int `json:"experto"`
	Maestro  int `json:"maestro"`
}

// Pack is the full read-only training content: per-module, per-level item
// collections plus the badge and threshold tables.
type Pack struct {
	Version       string     `json:"version"`
	MinAppVersion string     `json:"min_app_version,omitempty"`
	Thresholds    Thresholds `json:"thresholds"`
	Badges        []Badge    `json:"badges"`

	TrueFalse map[int][]TrueFalseQuestion `json:"true_false"`
	Match     map[int][]MatchItem         `json:"match"`
	Scenarios map[int][]Scenario          `json:"scenarios"`
	Trivia    map[int][]TriviaQuestion    `json:"trivia"`
}

// LevelsWithContent returns the ascending levels that have at least one item
// for module m.
func (p *Pack) LevelsWithContent(m Module) []int {
	var levels []int
	add := func(level, n int) {
		if n > 0 {
			levels = append(levels, level)
		}
	}
	switch m {
	case ModuleTrueFalse:
		for l, items := range p.TrueFalse {
			add(l, len(items))
		}
	case ModuleMatch:
		for l, items := range p.Match {
			add(l, len(items))
		}
	case ModuleScenario:
		for l, items := range p.Scenarios {
			add(l, len(items))
		}
	case ModuleTrivia:
		for l, items := range p.Trivia {
			add(l, len(items))
		}
	}
	sort.Ints(levels)
	return levels
}

// PoolLevel picks the content level a trainee at level plays for module m:
// the level itself when it has content, otherwise the nearest lower level
// with content, otherwise the nearest higher one. ok is false when the
// module has no content at all.
func (p *Pack) PoolLevel(m Module, level int) (int, bool) {
	levels := p.LevelsWithContent(m)
	if len(levels) == 0 {
		return 0, false
	}
	best := -1
	for _, l := range levels {
		if l <= level {
			best = l
		}
	}
	if best >= 0 {
		return best, true
	}
	return levels[0], true
}

// PoolIDs returns the activity ids of every item in module m at level.
// Match pools are represented by a single level marker and return nil.
func (p *Pack) PoolIDs(m Module, level int) []string {
	var ids []string
	switch m {
	case ModuleTrueFalse:
		for _, q := range p.TrueFalse[level] {
			ids = append(ids, m.ItemActivityID(q.ID))
		}
	case ModuleScenario:
		for _, s := range p.Scenarios[level] {
			ids = append(ids, m.ItemActivityID(s.ID))
		}
	case ModuleTrivia:
		for _, q := range p.Trivia[level] {
			ids = append(ids, m.ItemActivityID(q.ID))
		}
	}
	return ids
}

// Badge looks up a badge definition by id.
func (p *Pack) Badge(id string) (Badge, bool) {
	for _, b := range p.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
