package assessment

import (
	"fmt"

	"github.com/kurera-app/kurera/internal/catalog"
)

// progressSchedule is the fixed milestone per question slot. Coarse on
// purpose; only monotonicity matters to callers.
var progressSchedule = [...]int{10, 20, 25, 30, 50, 70, 85, 95, 100}

// painLoadSafetyThreshold routes to the safety branch when the 0–10 load
// pain score is at or above it.
const painLoadSafetyThreshold = 7

// Evaluate walks the triage decision tree against the accumulated answers
// and returns either the next pending question or a terminal state. It is a
// pure function of its inputs: calling it twice with the same answer map
// yields the same state.
func Evaluate(joint catalog.Joint, answers Answers) (State, error) {
	if _, err := catalog.ParseJoint(string(joint)); err != nil {
		return State{}, err
	}

	w := walker{answers: answers}

	// Triage pair: these two jointly decide the routing.
	rest, done := w.ask(painAtRestQuestion, StateQuestion)
	if done {
		return w.state, nil
	}
	if err := validateChoice(painAtRestQuestion, rest); err != nil {
		return State{}, err
	}

	loadRaw, done := w.ask(painOnLoadQuestion, StateQuestion)
	if done {
		return w.state, nil
	}
	load, err := scaleValue(QuestionPainOnLoad, loadRaw)
	if err != nil {
		return State{}, err
	}

	level := 0
	safetyEntered := false

	if rest == AnswerHigh || load >= painLoadSafetyThreshold {
		// High irritability: red-flag screening replaces functional testing.
		safetyEntered = true
		safety, done := w.ask(safetyFlagsQuestion, StateSafetyCheck)
		if done {
			return w.state, nil
		}
		if err := validateChoice(safetyFlagsQuestion, safety); err != nil {
			return State{}, err
		}
		if safety == AnswerFail {
			return State{Kind: StateHardStop, ProgressPercent: 100}, nil
		}
		level = 1
	} else {
		// Functional test: the first non-pass answer fixes the level and
		// short-circuits the remaining questions.
		for n := 0; n < 3 && level == 0; n++ {
			q := functionalQuestion(joint, n)
			answer, done := w.ask(q, StateQuestion)
			if done {
				return w.state, nil
			}
			if err := validateChoice(q, answer); err != nil {
				return State{}, err
			}
			switch {
			case answer == AnswerPass:
				// Keep walking.
			case answer == AnswerFail:
				level = n + 1
			default: // struggle
				level = n + 2
			}
		}
		if level == 0 {
			level = 4
		}
	}

	// Profile questions, asked on every non-hard-stop path.
	activity, done := w.ask(activityProfileQuestion, StateQuestion)
	if done {
		return w.state, nil
	}
	if err := validateChoice(activityProfileQuestion, activity); err != nil {
		return State{}, err
	}

	goalQ := mainGoalQuestion(joint, level)
	goal, done := w.ask(goalQ, StateQuestion)
	if done {
		return w.state, nil
	}
	if err := validateChoice(goalQ, goal); err != nil {
		return State{}, err
	}

	return State{
		Kind:            StateComplete,
		ProgressPercent: 100,
		Program:         synthesizeProgram(joint, level, safetyEntered, activity),
	}, nil
}

// walker tracks the question slot while the tree is replayed against the
// answer map, so each pending question reports the right milestone.
type walker struct {
	answers Answers
	slot    int
	state   State
}

// ask consumes one question slot. When the question is unanswered it fills
// w.state with the pending variant and reports done.
func (w *walker) ask(q Question, kind StateKind) (answer string, done bool) {
	milestone := 100
	if w.slot < len(progressSchedule) {
		milestone = progressSchedule[w.slot]
	}
	w.slot++

	a, ok := w.answers[q.ID]
	if !ok {
		w.state = State{Kind: kind, Pending: &q, ProgressPercent: milestone}
		return "", true
	}
	return a, false
}

// validateChoice checks a choice answer against the question's option set.
func validateChoice(q Question, answer string) error {
	for _, opt := range q.Options {
		if opt.Value == answer {
			return nil
		}
	}
	return &InvalidAnswerError{
		Question: q.ID,
		Value:    answer,
		Err:      fmt.Errorf("not in option set"),
	}
}
