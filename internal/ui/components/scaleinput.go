package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/kurera-app/kurera/internal/ui/theme"
)

// ScaleInput collects a 0-10 score through a numeric-only text input.
type ScaleInput struct {
	Prompt string
	Model  textinput.Model
}

// NewScaleInput creates a new styled scale input.
func NewScaleInput(prompt string) ScaleInput {
	ti := textinput.New()
	ti.Placeholder = "0-10"
	ti.CharLimit = 2
	ti.Focus()

	return ScaleInput{
		Prompt: prompt,
		Model:  ti,
	}
}

// Init returns the initial command.
func (s ScaleInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages, dropping non-digit key presses.
func (s ScaleInput) Update(msg tea.Msg) (ScaleInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			if key[0] < '0' || key[0] > '9' {
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the prompt and the input field.
func (s ScaleInput) View() string {
	return theme.Body.Bold(true).Render(s.Prompt) + "\n\n" + s.Model.View()
}

// Value returns the current input value.
func (s ScaleInput) Value() string {
	return s.Model.Value()
}

// NumericValue returns the input value as an integer.
func (s ScaleInput) NumericValue() (int, error) {
	return strconv.Atoi(s.Model.Value())
}
