package studyclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureGateFailsClosed(t *testing.T) {
	gate := NewFeatureGate()

	assert.False(t, gate.Allowed(FeatureSamplePaper), "unresolved status must deny")
	assert.False(t, gate.Allowed(FeatureTeacher))
	assert.False(t, gate.Allowed(FeatureImage))
	assert.True(t, gate.Allowed("chat"), "ungated features are always allowed")
}

func TestFeatureGateStatusTransitions(t *testing.T) {
	gate := NewFeatureGate()

	gate.SetStatus(&PlanStatus{Plan: "free", Status: "inactive"})
	assert.False(t, gate.Allowed(FeatureImage))

	gate.SetStatus(&PlanStatus{Plan: "pro", Status: "active", Entitled: true})
	assert.True(t, gate.Allowed(FeatureImage))
	assert.True(t, gate.Allowed(FeatureSamplePaper))

	// A canceled plan keeps access while the server still reports
	// entitlement for the remainder of the paid period.
	gate.SetStatus(&PlanStatus{Plan: "pro", Status: "canceled", Entitled: true})
	assert.True(t, gate.Allowed(FeatureImage))

	// Expired pro locks again.
	gate.SetStatus(&PlanStatus{Plan: "pro", Status: "inactive"})
	assert.False(t, gate.Allowed(FeatureImage))

	// Losing the status entirely re-locks too.
	gate.SetStatus(nil)
	assert.False(t, gate.Allowed(FeatureImage))
}

func TestFeatureGateWatchers(t *testing.T) {
	gate := NewFeatureGate()

	var seen []*PlanStatus
	gate.Watch(func(s *PlanStatus) { seen = append(seen, s) })

	pro := &PlanStatus{Plan: "pro", Status: "active", Entitled: true}
	gate.SetStatus(pro)
	gate.SetStatus(nil)

	assert.Len(t, seen, 2)
	assert.Equal(t, pro, seen[0])
	assert.Nil(t, seen[1])
}
