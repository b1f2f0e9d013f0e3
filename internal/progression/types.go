// Package progression implements the exercise-progression state machine:
// per-exercise difficulty steps driven by session feedback, session XP, and
// the level-advancement ("boss fight") gate.
package progression

import "fmt"

// Exertion is the user's self-reported effort for one session.
type Exertion string

const (
	ExertionLight   Exertion = "light"   // too easy
	ExertionPerfect Exertion = "perfect" // just right
	ExertionHeavy   Exertion = "heavy"   // too hard
)

// ParseExertion validates an exertion value.
func ParseExertion(s string) (Exertion, error) {
	switch Exertion(s) {
	case ExertionLight, ExertionPerfect, ExertionHeavy:
		return Exertion(s), nil
	}
	return "", fmt.Errorf("invalid exertion %q: want light, perfect, or heavy", s)
}

// Dose is a prescribed exercise volume.
type Dose struct {
	Sets        int `json:"sets"`
	Reps        int `json:"reps"`
	HoldSeconds int `json:"hold_seconds,omitempty"`
}

// ExerciseProgress tracks one exercise the user has performed. History is a
// bounded FIFO of per-session feedback tags, newest last.
type ExerciseProgress struct {
	ExerciseID string     `json:"exercise_id"`
	History    []Exertion `json:"history"` // max HistoryLimit entries
	Config     Dose       `json:"config"`
	PhaseIndex int        `json:"phase_index"` // 0..MaxPhaseIndex
}

// State is the per-user progression record. ExperiencePoints only grows
// within a level and resets to zero on level-up.
type State struct {
	CurrentPhase               int  `json:"current_phase"` // treatment level being trained
	ExperiencePoints           int  `json:"experience_points"`
	LevelMaxedOut              bool `json:"level_maxed_out"`
	ConsecutivePerfectSessions int  `json:"consecutive_perfect_sessions"`
}

// Progress bundles everything the engine reads and writes for one user.
type Progress struct {
	Entries map[string]*ExerciseProgress
	State   State
	PlanIDs []string // active plan, locked at level entry
}

// NewProgress returns an empty progress record for a freshly assessed level.
func NewProgress(level int) *Progress {
	return &Progress{
		Entries: make(map[string]*ExerciseProgress),
		State:   State{CurrentPhase: level},
	}
}

// Result is the outcome of applying one session's feedback. XPEarned is the
// session's XP only; the engine has already added it to the running total.
type Result struct {
	XPEarned          int
	LevelMaxedOut     bool
	Message           string
	UpgradedExercises []string
}
