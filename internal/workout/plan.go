package workout

import (
	"math/rand"
	"sort"

	"github.com/kurera-app/kurera/internal/catalog"
)

// MaxPlanSize caps the number of exercises in a level plan.
const MaxPlanSize = 5

// GenerateLevelPlan picks the exercise IDs for a new level: one random
// exercise per category among the (level, joint) matches, capped at
// MaxPlanSize. The plan is locked until the next level-up or an explicit
// regeneration. Randomness comes from the injected rng so callers can seed
// it; category order is deterministic.
func GenerateLevelPlan(cat *catalog.Catalog, level int, joint catalog.Joint, rng *rand.Rand) []string {
	groups := cat.ByCategory(level, joint)

	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var plan []string
	for _, c := range categories {
		if len(plan) >= MaxPlanSize {
			break
		}
		matches := groups[c]
		pick := matches[rng.Intn(len(matches))]
		plan = append(plan, pick.ID)
	}
	return plan
}
