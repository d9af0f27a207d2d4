package update

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktrack/internal/tracker"
)

func (m *Model) openForm() {
	m.Mode = ModeForm
	m.focusField(fieldTitle)
}

func (m *Model) focusField(f formField) {
	m.field = f
	if f == fieldTitle {
		m.descInput.Blur()
		m.titleInput.Focus()
		return
	}
	m.titleInput.Blur()
	m.descInput.Focus()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.Keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.Leave):
		m.Mode = ModeList
		m.titleInput.Blur()
		m.descInput.Blur()
		return m, nil
	case key.Matches(msg, k.NextField):
		if m.field == fieldTitle {
			m.focusField(fieldDescription)
		} else {
			m.focusField(fieldTitle)
		}
		return m, nil
	case key.Matches(msg, k.Submit):
		return m.submitForm(), nil
	}

	var cmd tea.Cmd
	if m.field == fieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// submitForm validates the form and adds the task. A blank title leaves the
// list untouched and puts focus back on the title field.
func (m Model) submitForm() Model {
	title, description, err := tracker.ValidateSubmission(m.titleInput.Value(), m.descInput.Value())
	if errors.Is(err, tracker.ErrEmptyTitle) {
		m.FormError = tracker.EmptyTitleMessage
		m.focusField(fieldTitle)
		return m
	}

	task := m.session.AddTask(m.ctx, title, description)
	m.FormError = ""
	m.titleInput.Reset()
	m.descInput.Reset()
	m.focusField(fieldTitle)
	m.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Title)}
	return m
}
