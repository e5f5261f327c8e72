package progress

import (
	"time"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

// Award is one activity id produced by a session together with the points it
// is worth the first time it is recorded.
type Award struct {
	ID     string
	Points int
}

// Result is what a finished mini-game session hands to the completion
// handler.
type Result struct {
	SessionID string
	Module    content.Module
	// Level is the content level that was played.
	Level int

	Score    int
	Correct  int
	Answered int
	Total    int
	TimedOut bool
	Duration time.Duration

	// Awards lists the ids to mark complete, one per correctly answered item
	// (a single level award for match).
	Awards []Award
	// PoolIDs are all item ids of the played pool. When every one of them is
	// complete after the merge, the level and module markers are recorded.
	PoolIDs []string
}

// ActivityIDs returns the ids carried by the awards.
func (r Result) ActivityIDs() []string {
	ids := make([]string, len(r.Awards))
	for i, a := range r.Awards {
		ids[i] = a.ID
	}
	return ids
}
