package progression

import (
	"errors"

	"github.com/kurera-app/kurera/internal/assessment"
)

var (
	// ErrNotEligible means the boss fight hasn't been unlocked yet.
	ErrNotEligible = errors.New("level not maxed out")
	// ErrMaxLevel means the user is already at the final level.
	ErrMaxLevel = errors.New("already at the final level")
)

// MaxLevel is the highest treatment level.
const MaxLevel = 4

// LevelUp advances the user to the next treatment level after a won boss
// fight. It replaces the program wholesale (new level, new weekly dose, new
// focus areas) and bulk-resets the progression record: XP back to zero, all
// exercise entries cleared. The caller is responsible for generating a new
// plan for the returned program.
func LevelUp(program *assessment.Program, p *Progress) (*assessment.Program, error) {
	if !p.State.LevelMaxedOut {
		return nil, ErrNotEligible
	}
	if program.Level >= MaxLevel {
		return nil, ErrMaxLevel
	}

	level := program.Level + 1
	rehab, circulation := assessment.WeeklyDose(level)
	next := &assessment.Program{
		Joint:                  program.Joint,
		Level:                  level,
		Irritability:           program.Irritability,
		RehabDaysPerWeek:       rehab,
		CirculationDaysPerWeek: circulation,
		ActivityPrescription:   program.ActivityPrescription,
		FocusAreas:             assessment.FocusAreas(level),
	}

	p.Entries = make(map[string]*ExerciseProgress)
	p.PlanIDs = nil
	p.State = State{CurrentPhase: level}

	return next, nil
}
