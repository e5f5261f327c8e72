package progress

import (
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

// Levels run from 1 to MaxLevel.
const (
	MinLevel = 1
	MaxLevel = 3
)

// LevelFor maps a point total to a level using the configured thresholds.
func LevelFor(points int, t content.Thresholds) int {
	switch {
	case points >= t.Experto:
		return 3
	case points >= t.Avanzado:
		return 2
	default:
		return 1
	}
}

// LevelName returns the rank label for a level.
func LevelName(level int) string {
	switch level {
	case 1:
		return "PRINCIPIANTE"
	case 2:
		return "AVANZADO"
	case 3:
		return "EXPERTO"
	default:
		return "DESCONOCIDO"
	}
}

// NextThreshold returns the point total at which the next rank starts. ok is
// false once the trainee has reached Maestro.
func NextThreshold(points int, t content.Thresholds) (next int, ok bool) {
	for _, v := range []int{t.Avanzado, t.Experto, t.Maestro} {
		if points < v {
			return v, true
		}
	}
	return 0, false
}

// BadgesFor returns the ids of every badge whose requirement points meets,
// in definition order.
func BadgesFor(points int, defs []content.Badge) []string {
	var ids []string
	for _, b := range defs {
		if b.RequiredPoints <= points {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// BadgeUnlocked reports whether b should be shown as earned. Stored badges
// win; otherwise the point total decides.
func BadgeUnlocked(b content.Badge, p *UserProgress) bool {
	if p == nil {
		return false
	}
	for _, id := range p.Badges {
		if id == b.ID {
			return true
		}
	}
	return p.Points >= b.RequiredPoints
}
