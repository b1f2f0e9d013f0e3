package assessment

// StateKind tags the active variant of an assessment State.
type StateKind string

const (
	// StateQuestion means the funnel is waiting for the pending question.
	StateQuestion StateKind = "question"
	// StateSafetyCheck means the red-flag question is pending.
	StateSafetyCheck StateKind = "safety-check"
	// StateHardStop means a red flag fired; no program is generated and the
	// user must be directed to medical care.
	StateHardStop StateKind = "hard-stop"
	// StateComplete means the funnel finished and Program is populated.
	StateComplete StateKind = "complete"
)

// State is the result of one Evaluate call: exactly one variant is active.
// ProgressPercent is advisory UI feedback, monotone as answers accumulate.
type State struct {
	Kind            StateKind
	Pending         *Question // set for StateQuestion and StateSafetyCheck
	ProgressPercent int
	Program         *Program // set for StateComplete
}
