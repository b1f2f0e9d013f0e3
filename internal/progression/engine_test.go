package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFeedback_XPValues(t *testing.T) {
	tests := []struct {
		name     string
		exertion Exertion
		pain     int
		wantXP   int
	}{
		{"easy session earns bonus", ExertionLight, 1, 150},
		{"light but painful is not easy", ExertionLight, 3, 100},
		{"perfect session", ExertionPerfect, 4, 100},
		{"heavy session earns no penalty", ExertionHeavy, 8, 100},
		{"high pain alone", ExertionPerfect, 6, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(2)
			result := ApplyFeedback(p, []string{"a"}, tt.exertion, tt.pain)
			assert.Equal(t, tt.wantXP, result.XPEarned)
			assert.Equal(t, tt.wantXP, p.State.ExperiencePoints)
		})
	}
}

func TestApplyFeedback_InitializesUnknownExercises(t *testing.T) {
	p := NewProgress(1)
	ApplyFeedback(p, []string{"new-one"}, ExertionPerfect, 2)

	e := p.Entries["new-one"]
	require.NotNil(t, e)
	assert.Equal(t, Dose{Sets: 2, Reps: 10}, e.Config)
	assert.Equal(t, 0, e.PhaseIndex)
	assert.Equal(t, []Exertion{ExertionPerfect}, e.History)
}

func TestApplyFeedback_HistoryTag(t *testing.T) {
	p := NewProgress(1)

	ApplyFeedback(p, []string{"a"}, ExertionLight, 0)  // easy → light
	ApplyFeedback(p, []string{"a"}, ExertionHeavy, 0)  // hard → heavy
	ApplyFeedback(p, []string{"a"}, ExertionPerfect, 8) // pain > 5 → heavy
	ApplyFeedback(p, []string{"a"}, ExertionPerfect, 4) // middle band → perfect
	ApplyFeedback(p, []string{"a"}, ExertionLight, 5)   // light but painful → perfect

	assert.Equal(t,
		[]Exertion{ExertionLight, ExertionHeavy, ExertionHeavy, ExertionPerfect, ExertionPerfect},
		p.Entries["a"].History)
}

func TestApplyFeedback_HistoryTrimmedToFive(t *testing.T) {
	p := NewProgress(1)
	for i := 0; i < 7; i++ {
		exertion := ExertionPerfect
		if i < 2 {
			exertion = ExertionHeavy
		}
		ApplyFeedback(p, []string{"a"}, exertion, 4)
	}

	history := p.Entries["a"].History
	require.Len(t, history, HistoryLimit)
	// The two oldest (heavy) entries were discarded first.
	for _, tag := range history {
		assert.Equal(t, ExertionPerfect, tag)
	}
}

func TestApplyFeedback_ThreeStrikesUpgrade(t *testing.T) {
	p := NewProgress(1)

	for i := 0; i < 2; i++ {
		result := ApplyFeedback(p, []string{"c"}, ExertionLight, 1)
		assert.Empty(t, result.UpgradedExercises, "no upgrade before the third strike")
	}

	result := ApplyFeedback(p, []string{"c"}, ExertionLight, 1)
	require.Equal(t, []string{"c"}, result.UpgradedExercises)

	e := p.Entries["c"]
	assert.Equal(t, 1, e.PhaseIndex)
	assert.Equal(t, Dose{Sets: 2, Reps: 12}, e.Config)
	assert.Empty(t, e.History, "history must clear after an upgrade")

	// A fourth light session alone does not re-upgrade; the streak restarts.
	result = ApplyFeedback(p, []string{"c"}, ExertionLight, 1)
	assert.Empty(t, result.UpgradedExercises)
	assert.Equal(t, 1, p.Entries["c"].PhaseIndex)
}

func TestApplyFeedback_FullLadder(t *testing.T) {
	p := NewProgress(1)
	wantDoses := []Dose{
		{Sets: 2, Reps: 12},
		{Sets: 3, Reps: 10},
		{Sets: 3, Reps: 12},
	}

	for step, want := range wantDoses {
		for i := 0; i < UpgradeStreak; i++ {
			ApplyFeedback(p, []string{"a"}, ExertionLight, 0)
		}
		assert.Equal(t, step+1, p.Entries["a"].PhaseIndex)
		assert.Equal(t, want, p.Entries["a"].Config)
	}

	// Maxed: further light streaks never advance past the final step.
	for i := 0; i < UpgradeStreak*2; i++ {
		ApplyFeedback(p, []string{"a"}, ExertionLight, 0)
	}
	assert.Equal(t, MaxPhaseIndex, p.Entries["a"].PhaseIndex)
}

func TestApplyFeedback_NoDownwardTransitions(t *testing.T) {
	p := NewProgress(1)
	for i := 0; i < UpgradeStreak; i++ {
		ApplyFeedback(p, []string{"a"}, ExertionLight, 0)
	}
	require.Equal(t, 1, p.Entries["a"].PhaseIndex)

	// Repeated heavy, painful sessions never reduce difficulty.
	for i := 0; i < 10; i++ {
		ApplyFeedback(p, []string{"a"}, ExertionHeavy, 9)
	}
	assert.Equal(t, 1, p.Entries["a"].PhaseIndex)
	assert.Equal(t, Dose{Sets: 2, Reps: 12}, p.Entries["a"].Config)
}

func TestApplyFeedback_XPGoalUnlocksBossFight(t *testing.T) {
	p := NewProgress(2)
	p.State.ExperiencePoints = LevelXPCap - 100

	result := ApplyFeedback(p, []string{"a"}, ExertionPerfect, 4)
	assert.True(t, result.LevelMaxedOut)
	assert.True(t, p.State.LevelMaxedOut)
	assert.Contains(t, result.Message, "XP goal")
}

func TestApplyFeedback_PlanMaxedUnlocksBossFight(t *testing.T) {
	// Spec scenario: plan [A, B], A maxed, B fresh, perfect session with
	// pain 4. Neither upgrades, XP is 100, and rule (b) fires because
	// ceil(2/2) = 1 exercise is already maxed.
	p := NewProgress(3)
	p.PlanIDs = []string{"A", "B"}
	p.Entries["A"] = &ExerciseProgress{
		ExerciseID: "A",
		PhaseIndex: MaxPhaseIndex,
		Config:     PhaseDose(MaxPhaseIndex),
	}
	p.Entries["B"] = &ExerciseProgress{ExerciseID: "B", Config: PhaseDose(0)}

	result := ApplyFeedback(p, []string{"A", "B"}, ExertionPerfect, 4)

	assert.Equal(t, 100, result.XPEarned)
	assert.Empty(t, result.UpgradedExercises)
	assert.True(t, result.LevelMaxedOut)
	assert.Contains(t, result.Message, "maxed")
}

func TestApplyFeedback_EmptyPlanNeverMaxesByRuleB(t *testing.T) {
	p := NewProgress(1)
	result := ApplyFeedback(p, []string{"a"}, ExertionPerfect, 4)
	assert.False(t, result.LevelMaxedOut)
}

func TestApplyFeedback_UpgradeCountMessage(t *testing.T) {
	p := NewProgress(1)
	for i := 0; i < UpgradeStreak-1; i++ {
		ApplyFeedback(p, []string{"a", "b"}, ExertionLight, 0)
	}
	result := ApplyFeedback(p, []string{"a", "b"}, ExertionLight, 0)
	assert.Len(t, result.UpgradedExercises, 2)
	assert.Contains(t, result.Message, "2 exercises")
}

func TestApplyFeedback_PerfectStreakCounter(t *testing.T) {
	p := NewProgress(1)

	ApplyFeedback(p, []string{"a"}, ExertionPerfect, 4)
	ApplyFeedback(p, []string{"a"}, ExertionPerfect, 3)
	assert.Equal(t, 2, p.State.ConsecutivePerfectSessions)

	ApplyFeedback(p, []string{"a"}, ExertionHeavy, 8)
	assert.Equal(t, 0, p.State.ConsecutivePerfectSessions)
}
