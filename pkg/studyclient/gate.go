package studyclient

import (
	"sync"
)

// Pro-only feature tags. These mirror the server-side gate; the client gate
// only decides whether to issue a request at all, the server re-checks.
const (
	FeatureSamplePaper = "sample_paper"
	FeatureTeacher     = "teacher"
	FeatureImage       = "image"
)

var proFeatures = map[string]bool{
	FeatureSamplePaper: true,
	FeatureTeacher:     true,
	FeatureImage:       true,
}

// FeatureGate decides whether a gated panel may act. Unknown or unresolved
// plan status fails closed. Watchers are re-evaluated whenever the status
// changes, so an upgrade unlocks panels without any navigation.
type FeatureGate struct {
	mu       sync.Mutex
	status   *PlanStatus
	watchers []func(*PlanStatus)
}

func NewFeatureGate() *FeatureGate {
	return &FeatureGate{}
}

// Allowed reports whether the feature may be used right now.
func (g *FeatureGate) Allowed(feature string) bool {
	if !proFeatures[feature] {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status == nil {
		return false
	}
	// The server computes entitlement, including grace cases like a
	// canceled plan still inside its paid period.
	return g.status.Entitled
}

// SetStatus swaps in a fresh plan status and notifies watchers. nil resets
// the gate to the locked state.
func (g *FeatureGate) SetStatus(status *PlanStatus) {
	g.mu.Lock()
	g.status = status
	watchers := make([]func(*PlanStatus), len(g.watchers))
	copy(watchers, g.watchers)
	g.mu.Unlock()

	for _, w := range watchers {
		w(status)
	}
}

func (g *FeatureGate) Status() *PlanStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Watch registers a callback invoked on every status change.
func (g *FeatureGate) Watch(fn func(*PlanStatus)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers = append(g.watchers, fn)
}
