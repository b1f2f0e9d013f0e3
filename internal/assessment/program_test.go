package assessment

import (
	"reflect"
	"testing"

	"github.com/kurera-app/kurera/internal/catalog"
)

func TestWeeklyDose(t *testing.T) {
	tests := []struct {
		level                      int
		wantRehab, wantCirculation int
	}{
		{1, 7, 7},
		{2, 3, 4},
		{3, 3, 0},
		{4, 4, 0},
		{0, 7, 7},  // fallback to level 1
		{99, 7, 7}, // fallback to level 1
	}
	for _, tt := range tests {
		rehab, circulation := WeeklyDose(tt.level)
		if rehab != tt.wantRehab || circulation != tt.wantCirculation {
			t.Errorf("WeeklyDose(%d) = %d/%d, want %d/%d",
				tt.level, rehab, circulation, tt.wantRehab, tt.wantCirculation)
		}
	}
}

func TestFocusAreas(t *testing.T) {
	if got := FocusAreas(1); !reflect.DeepEqual(got, []string{"Smärtlindring", "Cirkulation"}) {
		t.Errorf("FocusAreas(1) = %v", got)
	}
	for level := 2; level <= 4; level++ {
		if got := FocusAreas(level); !reflect.DeepEqual(got, []string{"Styrka", "Funktion"}) {
			t.Errorf("FocusAreas(%d) = %v", level, got)
		}
	}
}

func TestSynthesizeProgram(t *testing.T) {
	p := synthesizeProgram(catalog.JointKnee, 2, false, AnswerActive)
	if p.Level != 2 || p.RehabDaysPerWeek != 3 || p.CirculationDaysPerWeek != 4 {
		t.Errorf("level 2 dose wrong: %+v", p)
	}
	if p.Irritability != IrritabilityLow {
		t.Errorf("Irritability = %s, want low", p.Irritability)
	}
	if p.ActivityPrescription != activityPrescriptions[AnswerActive] {
		t.Errorf("ActivityPrescription = %q", p.ActivityPrescription)
	}
	if p.CatalogVersion != CatalogVersion {
		t.Errorf("CatalogVersion = %d, want %d", p.CatalogVersion, CatalogVersion)
	}

	p = synthesizeProgram(catalog.JointKnee, 1, true, AnswerMinimal)
	if p.Irritability != IrritabilityHigh {
		t.Errorf("safety-branch Irritability = %s, want high", p.Irritability)
	}
}

func TestMainGoalOptionsPerLevel(t *testing.T) {
	seen := make(map[string]bool)
	for level := 1; level <= 4; level++ {
		q := mainGoalQuestion(catalog.JointKnee, level)
		if len(q.Options) == 0 {
			t.Fatalf("level %d has no goal options", level)
		}
		key := q.Options[0].Value
		if seen[key] {
			t.Errorf("level %d shares its option set with another level", level)
		}
		seen[key] = true
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(catalog.JointShoulder, FunctionalQuestionID(catalog.JointShoulder, 2))
	if !ok {
		t.Fatal("functional question not found")
	}
	if len(q.Options) != 2 {
		t.Errorf("third functional question should be binary, got %d options", len(q.Options))
	}

	if _, ok := QuestionByID(catalog.JointKnee, "no-such-question"); ok {
		t.Error("lookup of unknown question succeeded")
	}
}
