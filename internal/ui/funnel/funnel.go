// Package funnel is the interactive assessment screen: it renders the
// pending question, records the answer, and re-evaluates until the
// assessment completes or hard-stops.
package funnel

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/kurera-app/kurera/internal/assessment"
	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/ui/components"
	"github.com/kurera-app/kurera/internal/ui/theme"
)

const barWidth = 40

// Model is the Bubble Tea model for the assessment funnel. The decision
// logic stays in assessment.Evaluate; the model only collects answers and
// feeds them back in.
type Model struct {
	joint   catalog.Joint
	answers assessment.Answers
	state   assessment.State
	choice  components.Choice
	scale   components.ScaleInput
	errMsg  string
	aborted bool
	evalErr error
}

// New creates a funnel model positioned at the first pending question.
func New(joint catalog.Joint) (Model, error) {
	m := Model{joint: joint, answers: make(assessment.Answers)}
	if err := m.refresh(); err != nil {
		return m, err
	}
	return m, nil
}

// refresh re-evaluates the answer set and rebuilds the input component for
// the pending question. A rejected answer is dropped so the same question
// is asked again.
func (m *Model) refresh() error {
	for {
		st, err := assessment.Evaluate(m.joint, m.answers)

		var invalid *assessment.InvalidAnswerError
		if errors.As(err, &invalid) {
			delete(m.answers, invalid.Question)
			m.errMsg = "That's not one of the options, try again."
			continue
		}
		if err != nil {
			return err
		}

		m.state = st
		if q := st.Pending; q != nil {
			if q.Type == assessment.TypeScale {
				m.scale = components.NewScaleInput(q.Text)
			} else {
				labels := make([]string, 0, len(q.Options))
				for _, opt := range q.Options {
					labels = append(labels, opt.Label)
				}
				m.choice = components.NewChoice(q.Text, labels)
			}
		}
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	if q := m.state.Pending; q != nil && q.Type == assessment.TypeScale {
		return m.scale.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	q := m.state.Pending
	if q == nil {
		return m, tea.Quit
	}

	if q.Type == assessment.TypeScale {
		return m.updateScale(msg, q)
	}
	return m.updateChoice(msg, q)
}

func (m Model) updateChoice(msg tea.Msg, q *assessment.Question) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if !m.choice.Submitted {
		return m, cmd
	}

	m.errMsg = ""
	m.answers[q.ID] = q.Options[m.choice.ChosenIndex].Value
	return m.advance()
}

func (m Model) updateScale(msg tea.Msg, q *assessment.Question) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if m.scale.Value() == "" {
			return m, nil
		}
		m.errMsg = ""
		m.answers[q.ID] = m.scale.Value()
		return m.advance()
	}

	var cmd tea.Cmd
	m.scale, cmd = m.scale.Update(msg)
	return m, cmd
}

// advance re-evaluates after an answer was recorded and quits once the
// funnel reaches a terminal state.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.refresh(); err != nil {
		m.evalErr = err
		return m, tea.Quit
	}
	if m.state.Pending == nil {
		return m, tea.Quit
	}
	return m, m.Init()
}

func (m Model) View() tea.View {
	s := theme.Title.Render(fmt.Sprintf("Assessment — %s", catalog.DisplayName(m.joint))) + "\n"
	s += components.NewProgressBar(m.state.ProgressPercent, barWidth).View() + "\n\n"

	if m.errMsg != "" {
		s += theme.Warn.Render(m.errMsg) + "\n\n"
	}

	switch {
	case m.state.Pending == nil:
		s += theme.Hint.Render("...") + "\n"
	case m.state.Pending.Type == assessment.TypeScale:
		s += m.scale.View() + "\n\n"
		s += theme.Hint.Render("Enter submit · Esc quit") + "\n"
	default:
		s += m.choice.View() + "\n"
		s += theme.Hint.Render("↑↓ navigate · Enter select · Esc quit") + "\n"
	}

	return tea.NewView(s)
}

// Aborted reports whether the user quit before finishing.
func (m Model) Aborted() bool {
	return m.aborted
}

// Err returns the evaluation error that ended the funnel, if any.
func (m Model) Err() error {
	return m.evalErr
}

// State returns the last evaluated state. After a completed run its Kind is
// StateComplete or StateHardStop.
func (m Model) State() assessment.State {
	return m.state
}
