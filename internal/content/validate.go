package content

import (
	"fmt"
	"strings"
)

// Validate performs the structural checks a JSON Schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(p *Pack) error {
	var errs []string

	t := p.Thresholds
	if !(t.Avanzado < t.Experto && t.Experto < t.Maestro) {
		errs = append(errs, fmt.Sprintf("thresholds must be increasing, got %d/%d/%d", t.Avanzado, t.Experto, t.Maestro))
	}

	badgeIDs := make(map[string]bool, len(p.Badges))
	for _, b := range p.Badges {
		if badgeIDs[b.ID] {
			errs = append(errs, fmt.Sprintf("duplicate badge ID: %q", b.ID))
		}
		badgeIDs[b.ID] = true
	}

	// Activity ids share one namespace per module, so ids must be unique
	// across levels.
	seen := make(map[string]bool)
	check := func(m Module, id int) {
		key := m.ItemActivityID(id)
		if seen[key] {
			errs = append(errs, fmt.Sprintf("duplicate %s item ID: %d", m, id))
		}
		seen[key] = true
	}
	for _, qs := range p.TrueFalse {
		for _, q := range qs {
			check(ModuleTrueFalse, q.ID)
		}
	}
	for _, ss := range p.Scenarios {
		for _, s := range ss {
			check(ModuleScenario, s.ID)
		}
	}
	for level, qs := range p.Trivia {
		for _, q := range qs {
			check(ModuleTrivia, q.ID)
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("trivia %d (level %d): correct index %d out of range", q.ID, level, q.CorrectIndex))
			}
		}
	}

	for level, items := range p.Match {
		errs = append(errs, validatePairs(level, items)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("content pack validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validatePairs checks that every match item references an existing item of
// the opposite kind that references it back.
func validatePairs(level int, items []MatchItem) []string {
	var errs []string
	byID := make(map[string]MatchItem, len(items))
	for _, it := range items {
		if _, dup := byID[it.ID]; dup {
			errs = append(errs, fmt.Sprintf("match level %d: duplicate item ID %q", level, it.ID))
		}
		byID[it.ID] = it
	}
	for _, it := range items {
		other, ok := byID[it.MatchID]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("match level %d: item %q references nonexistent %q", level, it.ID, it.MatchID))
		case other.MatchID != it.ID:
			errs = append(errs, fmt.Sprintf("match level %d: pair %q/%q is not symmetric", level, it.ID, other.ID))
		case other.Kind == it.Kind:
			errs = append(errs, fmt.Sprintf("match level %d: pair %q/%q has the same kind", level, it.ID, other.ID))
		}
	}
	return errs
}
