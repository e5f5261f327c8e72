package progress

import (
	"fmt"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

// CompleteMarker is the synthetic activity id recorded once a module's pool
// has been fully completed. It is the only id the unlock gate looks at.
func CompleteMarker(m content.Module) string {
	return string(m) + "-complete"
}

// LevelMarker is the synthetic activity id recorded once a module's pool at
// level has been fully completed.
func LevelMarker(m content.Module, level int) string {
	return fmt.Sprintf("%s-level-%d", m, level)
}

// Prerequisite returns the module that must be completed before m opens.
// ok is false for the first module in the chain.
func Prerequisite(m content.Module) (prev content.Module, ok bool) {
	order := content.AllModules()
	for i, mod := range order {
		if mod == m && i > 0 {
			return order[i-1], true
		}
	}
	return "", false
}

// IsAvailable reports whether module m can be played given the completed
// activity set.
func IsAvailable(m content.Module, completed Set) bool {
	prev, ok := Prerequisite(m)
	if !ok {
		return true
	}
	return completed.Has(CompleteMarker(prev))
}

// Availability evaluates IsAvailable for every module.
func Availability(completed Set) map[content.Module]bool {
	out := make(map[content.Module]bool, 4)
	for _, m := range content.AllModules() {
		out[m] = IsAvailable(m, completed)
	}
	return out
}
