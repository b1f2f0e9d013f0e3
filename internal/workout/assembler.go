package workout

import (
	"github.com/kurera-app/kurera/internal/assessment"
	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/progression"
)

// AssembleSession builds one playable session from the user's progress, the
// active program, and the catalog. An empty or fully dangling plan yields a
// valid empty session; missing catalog entries are dropped silently.
func AssembleSession(typ SessionType, p *progression.Progress, program *assessment.Program, cat *catalog.Catalog) *Session {
	if typ == TypeCirculation {
		return assembleCirculation(program.Joint, cat)
	}
	return assembleRehab(p, program.Level, cat)
}

// assembleRehab resolves the locked plan in order, attaching the stored
// per-exercise dose where one exists and the level default otherwise.
func assembleRehab(p *progression.Progress, level int, cat *catalog.Catalog) *Session {
	s := newSession(TypeRehab)
	for _, id := range p.PlanIDs {
		ex, ok := cat.Get(id)
		if !ok {
			continue
		}
		config := DefaultDose(level)
		if entry, ok := p.Entries[id]; ok {
			config = entry.Config
		}
		s.Exercises = append(s.Exercises, SessionExercise{Exercise: ex, Config: config})
	}
	return s
}

// assembleCirculation draws one exercise per required category from the
// level-1 catalog, at the fixed circulation dose. The user's actual level
// and stored progress are ignored: circulation is a constant low-intensity
// maintenance dose.
func assembleCirculation(joint catalog.Joint, cat *catalog.Catalog) *Session {
	s := newSession(TypeCirculation)
	groups := cat.ByCategory(1, joint)
	for _, category := range circulationCategories[joint] {
		matches := groups[category]
		if len(matches) == 0 {
			continue
		}
		s.Exercises = append(s.Exercises, SessionExercise{
			Exercise: matches[0],
			Config:   CirculationDose,
		})
	}
	return s
}
