package assessment

import "github.com/kurera-app/kurera/internal/catalog"

// Irritability classifies how reactive the joint is to load.
type Irritability string

const (
	IrritabilityLow      Irritability = "low"
	IrritabilityModerate Irritability = "moderate"
	IrritabilityHigh     Irritability = "high"
)

// Program is the configuration produced at assessment completion. Immutable
// once created; a new assessment or a level-up replaces it wholesale.
type Program struct {
	Joint                  catalog.Joint `json:"joint"`
	Level                  int           `json:"level"` // 1..4
	Irritability           Irritability  `json:"irritability"`
	RehabDaysPerWeek       int           `json:"rehab_days_per_week"`
	CirculationDaysPerWeek int           `json:"circulation_days_per_week"`
	ActivityPrescription   string        `json:"activity_prescription"`
	FocusAreas             []string      `json:"focus_areas"`

	// CatalogVersion is the question-catalog revision the program was
	// assessed with.
	CatalogVersion int `json:"catalog_version"`
}

// WeeklyDose returns the rehab and circulation days per week for a level.
// Out-of-range levels fall back to the level-1 dose.
func WeeklyDose(level int) (rehab, circulation int) {
	switch level {
	case 2:
		return 3, 4
	case 3:
		return 3, 0
	case 4:
		return 4, 0
	default:
		return 7, 7
	}
}

// FocusAreas returns the focus areas for a level. Level 1 targets pain
// relief and circulation; higher levels target strength and function.
func FocusAreas(level int) []string {
	if level == 1 {
		return []string{"Smärtlindring", "Cirkulation"}
	}
	return []string{"Styrka", "Funktion"}
}

// activityPrescriptions maps the activity-profile answer to a prescription.
// Independent of level.
var activityPrescriptions = map[string]string{
	AnswerMinimal:  "Start with short daily walks, 10-15 minutes at an easy pace.",
	AnswerModerate: "Keep your current walks and add light activity most days.",
	AnswerActive:   "Keep training, but scale intensity so pain stays below 5/10.",
}

// synthesizeProgram builds the final program once a level is fixed and the
// profile questions are answered. Routing through the safety branch records
// high irritability; both low and moderate routing record low.
func synthesizeProgram(joint catalog.Joint, level int, safetyEntered bool, activity string) *Program {
	rehab, circulation := WeeklyDose(level)

	irritability := IrritabilityLow
	if safetyEntered {
		irritability = IrritabilityHigh
	}

	prescription, ok := activityPrescriptions[activity]
	if !ok {
		prescription = activityPrescriptions[AnswerMinimal]
	}

	return &Program{
		Joint:                  joint,
		Level:                  level,
		Irritability:           irritability,
		RehabDaysPerWeek:       rehab,
		CirculationDaysPerWeek: circulation,
		ActivityPrescription:   prescription,
		FocusAreas:             FocusAreas(level),
		CatalogVersion:         CatalogVersion,
	}
}
