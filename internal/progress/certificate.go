package progress

import "github.com/santgross/BIOFIT-EXPERT/internal/content"

// CertificateEligible reports whether a trainee has finished every module
// and reached the Maestro threshold.
func CertificateEligible(p *UserProgress, t content.Thresholds) bool {
	if p == nil || p.Points < t.Maestro {
		return false
	}
	done := p.Completed()
	for _, m := range content.AllModules() {
		if !done.Has(CompleteMarker(m)) {
			return false
		}
	}
	return true
}

// ModulesCompleted counts the modules whose completion marker is present.
func ModulesCompleted(p *UserProgress) int {
	done := p.Completed()
	n := 0
	for _, m := range content.AllModules() {
		if done.Has(CompleteMarker(m)) {
			n++
		}
	}
	return n
}
