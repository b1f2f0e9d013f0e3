package workout

import (
	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/progression"
)

// levelDefaults is the starting dose for an exercise with no progress entry
// yet, by treatment level.
var levelDefaults = map[int]progression.Dose{
	1: {Sets: 1, Reps: 10, HoldSeconds: 5},
	2: {Sets: 2, Reps: 10},
	3: {Sets: 3, Reps: 10},
	4: {Sets: 3, Reps: 8},
}

// DefaultDose returns the starting dose for a level. Out-of-range levels
// fall back to level 1.
func DefaultDose(level int) progression.Dose {
	if d, ok := levelDefaults[level]; ok {
		return d
	}
	return levelDefaults[1]
}

// CirculationDose is the fixed volume for every circulation exercise,
// regardless of level or stored progress.
var CirculationDose = progression.Dose{Sets: 2, Reps: 15}

// circulationCategories lists the required categories for a circulation
// session, per joint. Fewer matches produce a shorter session, not an error.
var circulationCategories = map[catalog.Joint][]string{
	catalog.JointKnee:     {"extensor", "flexor", "mobility"},
	catalog.JointHip:      {"abductor", "extensor", "mobility"},
	catalog.JointShoulder: {"cuff", "scapular", "mobility"},
}
