package progression

const (
	// HistoryLimit bounds the per-exercise feedback history.
	HistoryLimit = 5

	// UpgradeStreak is the number of consecutive light sessions that
	// triggers a difficulty upgrade (the three-strikes rule).
	UpgradeStreak = 3

	// MaxPhaseIndex is the final difficulty step.
	MaxPhaseIndex = 3
)

// phaseDoses is the fixed difficulty ladder, indexed by phase. Difficulty
// only ever moves forward on this ladder; there are no downward transitions
// even after repeated heavy or painful sessions.
var phaseDoses = [MaxPhaseIndex + 1]Dose{
	{Sets: 2, Reps: 10},
	{Sets: 2, Reps: 12},
	{Sets: 3, Reps: 10},
	{Sets: 3, Reps: 12},
}

// PhaseDose returns the prescribed dose for a phase index, clamped to the
// ladder.
func PhaseDose(phase int) Dose {
	if phase < 0 {
		phase = 0
	}
	if phase > MaxPhaseIndex {
		phase = MaxPhaseIndex
	}
	return phaseDoses[phase]
}

// newEntry returns a fresh progress entry at the first difficulty step.
func newEntry(exerciseID string) *ExerciseProgress {
	return &ExerciseProgress{
		ExerciseID: exerciseID,
		Config:     phaseDoses[0],
	}
}

// recordFeedback appends one feedback tag and trims the history to the
// HistoryLimit most recent entries, oldest first.
func recordFeedback(e *ExerciseProgress, tag Exertion) {
	e.History = append(e.History, tag)
	if len(e.History) > HistoryLimit {
		e.History = e.History[len(e.History)-HistoryLimit:]
	}
}

// tryUpgrade advances the exercise one difficulty step when its last
// UpgradeStreak entries are all light and it isn't already maxed. The
// history is cleared on upgrade; the streak restarts at the new difficulty.
func tryUpgrade(e *ExerciseProgress) bool {
	if e.PhaseIndex >= MaxPhaseIndex {
		return false
	}
	if len(e.History) < UpgradeStreak {
		return false
	}
	for _, tag := range e.History[len(e.History)-UpgradeStreak:] {
		if tag != ExertionLight {
			return false
		}
	}

	e.PhaseIndex++
	e.Config = phaseDoses[e.PhaseIndex]
	e.History = nil
	return true
}
