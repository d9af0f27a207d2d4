package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktrack/internal/commands"
	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/tracker"
	"go.uber.org/zap"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ForceQuit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Leave):
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case key.Matches(msg, m.Keys.Submit):
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) closePalette() Model {
	m.Mode = ModeList
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m = m.closePalette()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	ctx := m.ctx
	session := m.session
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			title, description, err := tracker.ValidateSubmission(a.Title, a.Description)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: tracker.EmptyTitleMessage}
			}
			task := session.AddTask(ctx, title, description)
			return commands.Result{Message: fmt.Sprintf("added %s: %s", task.ID, task.Title)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			f, err := model.ParseFilter(a.Name)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", a.Name)}
			}
			session.SetFilter(string(f))
			return commands.Result{Message: fmt.Sprintf("filter: %s", f)}, nil
		},
		Toggle: func(a commands.TargetArgs) (commands.Result, error) {
			if !session.ToggleTask(ctx, a.ID) {
				return commands.Result{Message: fmt.Sprintf("no task %s", a.ID)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("toggled %s", a.ID)}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			if !session.RemoveTask(ctx, a.ID) {
				return commands.Result{Message: fmt.Sprintf("no task %s", a.ID)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("deleted %s", a.ID)}, nil
		},
		Theme: func() (commands.Result, error) {
			return commands.Result{Message: fmt.Sprintf("theme: %s", m.theme.Toggle(ctx))}, nil
		},
	})

	m = m.closePalette()
	if err != nil {
		m.logger.Debug("palette command failed", zap.String("input", raw), zap.Error(err))
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if cmd.Type == commands.TypeAdd || cmd.Type == commands.TypeFilter {
		m.Cursor = 0
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}
