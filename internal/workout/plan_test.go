package workout

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/kurera-app/kurera/internal/catalog"
)

func TestGenerateLevelPlan_OnePerCategory(t *testing.T) {
	cat := catalog.Default()
	rng := rand.New(rand.NewSource(1))

	plan := GenerateLevelPlan(cat, 1, catalog.JointKnee, rng)

	if len(plan) == 0 {
		t.Fatal("empty plan for a populated level")
	}
	if len(plan) > MaxPlanSize {
		t.Fatalf("plan size %d exceeds cap %d", len(plan), MaxPlanSize)
	}

	seenCategories := make(map[string]bool)
	for _, id := range plan {
		ex, ok := cat.Get(id)
		if !ok {
			t.Fatalf("plan id %q not in catalog", id)
		}
		if ex.Level != 1 || ex.Joint != catalog.JointKnee {
			t.Errorf("%s: wrong level/joint %d/%s", id, ex.Level, ex.Joint)
		}
		if seenCategories[ex.Category] {
			t.Errorf("category %q picked twice", ex.Category)
		}
		seenCategories[ex.Category] = true
	}
}

func TestGenerateLevelPlan_DeterministicWithSeed(t *testing.T) {
	cat := catalog.Default()

	a := GenerateLevelPlan(cat, 1, catalog.JointKnee, rand.New(rand.NewSource(42)))
	b := GenerateLevelPlan(cat, 1, catalog.JointKnee, rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different plans: %v vs %v", a, b)
	}
}

func TestGenerateLevelPlan_EmptyForUnknownLevel(t *testing.T) {
	cat := catalog.Default()
	plan := GenerateLevelPlan(cat, 9, catalog.JointKnee, rand.New(rand.NewSource(1)))
	if len(plan) != 0 {
		t.Errorf("expected empty plan, got %v", plan)
	}
}

func TestGenerateLevelPlan_CoversAllJointsAndLevels(t *testing.T) {
	cat := catalog.Default()
	for _, joint := range catalog.AllJoints() {
		for level := 1; level <= 4; level++ {
			plan := GenerateLevelPlan(cat, level, joint, rand.New(rand.NewSource(7)))
			if len(plan) == 0 {
				t.Errorf("seed catalog has no exercises for %s level %d", joint, level)
			}
		}
	}
}
