package progression

import "fmt"

const (
	// BaseXP is earned by every completed session.
	BaseXP = 100
	// EasyBonusXP is the bonus for an easy session. Hard sessions earn no
	// penalty; they score the flat base.
	EasyBonusXP = 50
	// LevelXPCap is the per-level XP goal that unlocks the boss fight.
	LevelXPCap = 1200
)

// Session classification thresholds on the 0–10 pain scale.
const (
	easyPainBelow = 3
	hardPainAbove = 5
)

// ApplyFeedback applies one completed session's feedback to the user's
// progress: appends per-exercise history, runs the three-strikes upgrade,
// awards XP, and decides boss-fight eligibility. Inputs are assumed
// pre-validated by the caller; unknown exercise IDs are initialized fresh.
func ApplyFeedback(p *Progress, completed []string, exertion Exertion, painScore int) Result {
	if p.Entries == nil {
		p.Entries = make(map[string]*ExerciseProgress)
	}

	isEasy := painScore < easyPainBelow && exertion == ExertionLight
	isHard := painScore > hardPainAbove || exertion == ExertionHeavy

	tag := ExertionPerfect
	switch {
	case isEasy:
		tag = ExertionLight
	case isHard:
		tag = ExertionHeavy
	}

	xp := BaseXP
	if isEasy {
		xp += EasyBonusXP
	}

	var upgraded []string
	for _, id := range completed {
		e, ok := p.Entries[id]
		if !ok {
			e = newEntry(id)
			p.Entries[id] = e
		}
		recordFeedback(e, tag)
		if tryUpgrade(e) {
			upgraded = append(upgraded, id)
		}
	}

	if tag == ExertionPerfect {
		p.State.ConsecutivePerfectSessions++
	} else {
		p.State.ConsecutivePerfectSessions = 0
	}

	p.State.ExperiencePoints += xp

	result := Result{XPEarned: xp, UpgradedExercises: upgraded}

	// Boss-fight gate, first match wins.
	switch {
	case p.State.ExperiencePoints >= LevelXPCap:
		result.LevelMaxedOut = true
		result.Message = "XP goal reached — you are ready for the boss fight!"
	case planMaxedOut(p):
		result.LevelMaxedOut = true
		result.Message = "Your exercises are maxed out — you are ready for the boss fight!"
	case len(upgraded) == 1:
		result.Message = "1 exercise leveled up. Keep it going!"
	case len(upgraded) > 1:
		result.Message = fmt.Sprintf("%d exercises leveled up. Keep it going!", len(upgraded))
	default:
		result.Message = "Session logged. Consistency is what counts."
	}

	p.State.LevelMaxedOut = result.LevelMaxedOut
	return result
}

// planMaxedOut reports whether at least half (rounded up) of the active
// plan's exercises have reached the final difficulty step.
func planMaxedOut(p *Progress) bool {
	if len(p.PlanIDs) == 0 {
		return false
	}
	maxed := 0
	for _, id := range p.PlanIDs {
		if e, ok := p.Entries[id]; ok && e.PhaseIndex >= MaxPhaseIndex {
			maxed++
		}
	}
	return maxed >= (len(p.PlanIDs)+1)/2
}
