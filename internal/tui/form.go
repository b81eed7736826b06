package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marouane-chirane/ModelHub/internal/dashboard"
)

// Field order of the create form. The hyperparameter textarea comes last.
const (
	fieldName = iota
	fieldType
	fieldFramework
	fieldDescription
	fieldHyperparameters
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Type", "Framework", "Description", "Hyperparameters"}

// createForm is the new-model form: four single-line inputs and a JSON textarea.
type createForm struct {
	inputs []textinput.Model
	params textarea.Model
	focus  int
}

func newCreateForm() createForm {
	placeholders := []string{"random-forest-v1", "classification", "scikit-learn", "optional"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 256
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	ta := textarea.New()
	ta.Placeholder = `{"n_estimators": 100}`
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = -1
	ta.SetHeight(3)

	return createForm{inputs: inputs, params: ta}
}

// Value returns the typed text as a dashboard form.
func (f createForm) Value() dashboard.Form {
	return dashboard.Form{
		Name:            strings.TrimSpace(f.inputs[fieldName].Value()),
		Type:            strings.TrimSpace(f.inputs[fieldType].Value()),
		Framework:       strings.TrimSpace(f.inputs[fieldFramework].Value()),
		Description:     strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Hyperparameters: f.params.Value(),
	}
}

// Reset clears every field and moves focus back to the first one.
func (f *createForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.params.Reset()
	f.setFocus(fieldName)
}

func (f *createForm) SetWidth(w int) {
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
	f.params.SetWidth(w)
}

func (f *createForm) setFocus(idx int) tea.Cmd {
	f.focus = (idx + fieldCount) % fieldCount
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.params.Blur()
	if f.focus == fieldHyperparameters {
		return f.params.Focus()
	}
	return f.inputs[f.focus].Focus()
}

// Update moves focus on tab, shift+tab and enter (outside the textarea) and
// forwards everything else to the focused field.
func (f *createForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			return f.setFocus(f.focus + 1)
		case "shift+tab":
			return f.setFocus(f.focus - 1)
		case "enter":
			if f.focus != fieldHyperparameters {
				return f.setFocus(f.focus + 1)
			}
		}
	}

	var cmd tea.Cmd
	if f.focus == fieldHyperparameters {
		f.params, cmd = f.params.Update(msg)
	} else {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return cmd
}

func (f createForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New model") + "\n\n")
	for i := range f.inputs {
		b.WriteString(fieldStyle.Render(fieldLabels[i]) + f.inputs[i].View() + "\n")
	}
	b.WriteString(fieldStyle.Render(fieldLabels[fieldHyperparameters]) + "\n")
	b.WriteString(f.params.View() + "\n\n")
	b.WriteString(helpStyle.Render("tab/shift+tab move • ctrl+s create • esc back"))
	return b.String()
}
