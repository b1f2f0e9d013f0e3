package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurera-app/kurera/internal/assessment"
	"github.com/kurera-app/kurera/internal/catalog"
)

func maxedProgress(level int) *Progress {
	p := NewProgress(level)
	p.State.ExperiencePoints = LevelXPCap
	p.State.LevelMaxedOut = true
	p.PlanIDs = []string{"a", "b"}
	p.Entries["a"] = &ExerciseProgress{ExerciseID: "a", PhaseIndex: MaxPhaseIndex}
	return p
}

func TestLevelUp(t *testing.T) {
	program := &assessment.Program{
		Joint:                  catalog.JointKnee,
		Level:                  1,
		Irritability:           assessment.IrritabilityHigh,
		RehabDaysPerWeek:       7,
		CirculationDaysPerWeek: 7,
		ActivityPrescription:   "keep walking",
		FocusAreas:             assessment.FocusAreas(1),
	}
	p := maxedProgress(1)

	next, err := LevelUp(program, p)
	require.NoError(t, err)

	assert.Equal(t, 2, next.Level)
	assert.Equal(t, 3, next.RehabDaysPerWeek)
	assert.Equal(t, 4, next.CirculationDaysPerWeek)
	assert.Equal(t, assessment.FocusAreas(2), next.FocusAreas)
	// Carried over from the old program.
	assert.Equal(t, assessment.IrritabilityHigh, next.Irritability)
	assert.Equal(t, "keep walking", next.ActivityPrescription)
	// The old program value is untouched; level-up replaces, never mutates.
	assert.Equal(t, 1, program.Level)

	// Bulk reset.
	assert.Empty(t, p.Entries)
	assert.Empty(t, p.PlanIDs)
	assert.Equal(t, 0, p.State.ExperiencePoints)
	assert.False(t, p.State.LevelMaxedOut)
	assert.Equal(t, 2, p.State.CurrentPhase)
}

func TestLevelUp_NotEligible(t *testing.T) {
	program := &assessment.Program{Joint: catalog.JointKnee, Level: 2}
	p := NewProgress(2)

	_, err := LevelUp(program, p)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestLevelUp_CappedAtFinalLevel(t *testing.T) {
	program := &assessment.Program{Joint: catalog.JointKnee, Level: MaxLevel}
	p := maxedProgress(MaxLevel)

	_, err := LevelUp(program, p)
	assert.ErrorIs(t, err, ErrMaxLevel)
}
