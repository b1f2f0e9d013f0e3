// Package assessment implements the triage decision tree: a pure function
// from a joint and an accumulated answer map to the next question to ask or
// a terminal outcome (a generated program, or a medical hard stop).
package assessment

import (
	"fmt"
	"strconv"
)

// QuestionID identifies a triage question.
type QuestionID string

// QuestionType distinguishes multiple-choice questions from 0–10 scales.
type QuestionType string

const (
	TypeChoice QuestionType = "choice"
	TypeScale  QuestionType = "scale"
)

// Option is a selectable answer for a choice question.
type Option struct {
	Value string
	Label string
}

// Question is one entry in the fixed triage question catalog.
type Question struct {
	ID      QuestionID
	Text    string
	Type    QuestionType
	Options []Option // nil for scale questions
}

// Answers is the caller-held answer map. The caller only ever appends the
// answer for the question most recently requested; the engine re-derives its
// state from the full map on every call.
type Answers map[QuestionID]string

// Choice answer values shared across questions.
const (
	AnswerPass     = "pass"
	AnswerStruggle = "struggle"
	AnswerFail     = "fail"

	AnswerHigh     = "high"
	AnswerModerate = "moderate"
	AnswerLow      = "low"

	AnswerMinimal = "minimal"
	AnswerActive  = "active"
)

// InvalidAnswerError reports an answer whose value does not fit the
// question's type or option set.
type InvalidAnswerError struct {
	Question QuestionID
	Value    string
	Err      error
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer %q for question %q: %v", e.Value, e.Question, e.Err)
}

func (e *InvalidAnswerError) Unwrap() error {
	return e.Err
}

// scaleValue parses a 0–10 scale answer.
func scaleValue(id QuestionID, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidAnswerError{Question: id, Value: raw, Err: err}
	}
	if n < 0 || n > 10 {
		return 0, &InvalidAnswerError{Question: id, Value: raw, Err: fmt.Errorf("scale value out of range 0-10")}
	}
	return n, nil
}
