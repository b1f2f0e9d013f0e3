package assessment

import (
	"fmt"

	"github.com/kurera-app/kurera/internal/catalog"
)

// Question catalog version. Bump when question wording or option sets change.
const CatalogVersion = 1

// Shared question IDs. Functional test IDs are derived per joint.
const (
	QuestionPainAtRest      QuestionID = "pain-at-rest"
	QuestionPainOnLoad      QuestionID = "pain-on-load"
	QuestionSafetyFlags     QuestionID = "safety-flags"
	QuestionActivityProfile QuestionID = "activity-profile"
	QuestionMainGoal        QuestionID = "main-goal"
)

var painAtRestQuestion = Question{
	ID:   QuestionPainAtRest,
	Text: "How much does the joint hurt when you are at rest?",
	Type: TypeChoice,
	Options: []Option{
		{Value: AnswerHigh, Label: "A lot — it aches even when I'm still"},
		{Value: AnswerModerate, Label: "Somewhat — it's noticeable but tolerable"},
		{Value: AnswerLow, Label: "Barely or not at all"},
	},
}

var painOnLoadQuestion = Question{
	ID:   QuestionPainOnLoad,
	Text: "On a scale of 0–10, how much does it hurt when you load the joint?",
	Type: TypeScale,
}

var safetyFlagsQuestion = Question{
	ID: QuestionSafetyFlags,
	Text: "Have you recently had a significant trauma to the joint, a fever or " +
		"general illness, or is the joint visibly swollen, red, or warm?",
	Type: TypeChoice,
	Options: []Option{
		{Value: AnswerFail, Label: "Yes, one or more of these"},
		{Value: AnswerPass, Label: "No, none of these"},
	},
}

var activityProfileQuestion = Question{
	ID:   QuestionActivityProfile,
	Text: "How active are you in a normal week?",
	Type: TypeChoice,
	Options: []Option{
		{Value: AnswerMinimal, Label: "Mostly sedentary"},
		{Value: AnswerModerate, Label: "Some walking or light exercise"},
		{Value: AnswerActive, Label: "I exercise regularly"},
	},
}

// gradedOptions is the option set for the first two functional questions.
var gradedOptions = []Option{
	{Value: AnswerPass, Label: "Yes, without trouble"},
	{Value: AnswerStruggle, Label: "Yes, but it's hard or painful"},
	{Value: AnswerFail, Label: "No"},
}

// binaryOptions is the option set for the third functional question.
var binaryOptions = []Option{
	{Value: AnswerPass, Label: "Yes"},
	{Value: AnswerFail, Label: "No"},
}

// functionalTexts lists the three functional-test prompts per joint, in the
// order they are asked. The first non-pass answer fixes the level.
var functionalTexts = map[catalog.Joint][3]string{
	catalog.JointKnee: {
		"Can you stand up from a chair without using your hands?",
		"Can you walk down a flight of stairs leg over leg?",
		"Can you squat to parallel without sharp pain?",
	},
	catalog.JointHip: {
		"Can you put on socks and shoes while seated without help?",
		"Can you walk for 15 minutes without limping?",
		"Can you stand on the affected leg for 30 seconds?",
	},
	catalog.JointShoulder: {
		"Can you raise your arm above shoulder height?",
		"Can you reach behind your back to touch your waistband?",
		"Can you carry a grocery bag at your side without pain?",
	},
}

// FunctionalQuestionID returns the ID of the nth (0-based) functional
// question for a joint.
func FunctionalQuestionID(joint catalog.Joint, n int) QuestionID {
	return QuestionID(fmt.Sprintf("%s-func-%d", joint, n+1))
}

func functionalQuestion(joint catalog.Joint, n int) Question {
	q := Question{
		ID:      FunctionalQuestionID(joint, n),
		Text:    functionalTexts[joint][n],
		Type:    TypeChoice,
		Options: gradedOptions,
	}
	if n == 2 {
		q.Options = binaryOptions
	}
	return q
}

// goalOptions lists the main-goal option sets keyed by the already-fixed
// level. Four distinct sets, one per level.
var goalOptions = map[int][]Option{
	1: {
		{Value: "pain-free-days", Label: "Get through the day with less pain"},
		{Value: "sleep-through-night", Label: "Sleep through the night"},
		{Value: "short-walks", Label: "Manage short walks again"},
	},
	2: {
		{Value: "longer-walks", Label: "Walk longer distances"},
		{Value: "manage-stairs", Label: "Handle stairs with confidence"},
		{Value: "daily-chores", Label: "Do household chores without flare-ups"},
	},
	3: {
		{Value: "return-to-exercise", Label: "Get back to regular exercise"},
		{Value: "hike-or-bike", Label: "Hike or bike again"},
		{Value: "keep-up-with-family", Label: "Keep up with family activities"},
	},
	4: {
		{Value: "return-to-sport", Label: "Return to my sport"},
		{Value: "run-again", Label: "Start running again"},
		{Value: "stay-injury-free", Label: "Build resilience and stay injury-free"},
	},
}

func mainGoalQuestion(joint catalog.Joint, level int) Question {
	opts, ok := goalOptions[level]
	if !ok {
		opts = goalOptions[1]
	}
	return Question{
		ID:      QuestionMainGoal,
		Text:    fmt.Sprintf("What is your main goal for your %s?", catalog.DisplayName(joint)),
		Type:    TypeChoice,
		Options: opts,
	}
}

// Questions returns every question that can appear in a joint's funnel, in
// ask order. The main-goal question is returned with the level-1 option set
// since its options depend on the assessed level.
func Questions(joint catalog.Joint) []Question {
	qs := []Question{painAtRestQuestion, painOnLoadQuestion, safetyFlagsQuestion}
	for n := 0; n < 3; n++ {
		qs = append(qs, functionalQuestion(joint, n))
	}
	qs = append(qs, activityProfileQuestion, mainGoalQuestion(joint, 1))
	return qs
}

// QuestionByID looks up a question in a joint's funnel.
func QuestionByID(joint catalog.Joint, id QuestionID) (Question, bool) {
	for _, q := range Questions(joint) {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
