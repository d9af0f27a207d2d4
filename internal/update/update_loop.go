package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/views"
	"go.uber.org/zap"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch m.Mode {
		case ModeForm:
			m, cmd = m.handleFormKey(typed)
		case ModePalette:
			m, cmd = m.handlePaletteKey(typed)
		default:
			m, cmd = m.handleListKey(typed)
		}
	case tea.WindowSizeMsg:
		width := typed.Width - 8
		if width < 20 {
			width = 20
		}
		m.titleInput.Width = width - len(m.titleInput.Prompt)
		m.descInput.Width = width - len(m.descInput.Prompt)
		m.commandInput.Width = width - 1
		m.preview.Width = width
		m.helpModel.Width = typed.Width
		m.previewID = ""
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
	case ClearStatusMsg:
		m.Status = StatusBar{}
	}
	m.syncPreview()
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.Keys
	switch {
	case key.Matches(msg, k.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, k.Down):
		if m.Cursor < len(m.session.Snapshot().Visible)-1 {
			m.Cursor++
		}
	case key.Matches(msg, k.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.session.ToggleTask(m.ctx, task.ID)
		if updated, ok := m.session.Task(task.ID); ok && updated.Completed {
			m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", task.Title)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("reopened: %s", task.Title)}
		}
	case key.Matches(msg, k.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.session.RemoveTask(m.ctx, task.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title)}
	case key.Matches(msg, k.ShowAll):
		m.setFilter(model.FilterAll)
	case key.Matches(msg, k.ShowActive):
		m.setFilter(model.FilterActive)
	case key.Matches(msg, k.ShowDone):
		m.setFilter(model.FilterCompleted)
	case key.Matches(msg, k.CycleFilter):
		m.setFilter(m.session.Filter().Next())
	case key.Matches(msg, k.Theme):
		next := m.theme.Toggle(m.ctx)
		m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", next)}
	case key.Matches(msg, k.NewTask):
		m.openForm()
	case key.Matches(msg, k.Palette):
		m.Mode = ModePalette
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case key.Matches(msg, k.Help):
		m.HelpVisible = !m.HelpVisible
	case key.Matches(msg, k.ScrollDown, k.ScrollUp):
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFilter(f model.Filter) {
	if m.session.SetFilter(string(f)) {
		m.Cursor = 0
		m.logger.Debug("filter changed", zap.String("filter", string(f)))
	}
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", m.session.Filter())}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	snap := m.session.Snapshot()
	styles := views.NewStyles(m.dark())

	rows := make([]views.TaskRowData, 0, len(snap.Visible))
	for i, task := range snap.Visible {
		rows = append(rows, views.TaskRowData{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Completed:   task.Completed,
			Selected:    m.Mode == ModeList && i == m.Cursor,
		})
	}

	options := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		options = append(options, string(f))
	}

	preview := ""
	if task, ok := m.SelectedTask(); ok && task.Description != "" {
		preview = m.preview.View()
	}

	return views.RenderApp(views.AppData{
		Dark:        m.dark(),
		Header:      "tasktrack",
		ToggleLabel: m.theme.ToggleLabel(),
		Form: views.RenderForm(styles, views.FormData{
			TitleView:       m.titleInput.View(),
			DescriptionView: m.descInput.View(),
			Error:           m.FormError,
			Focused:         m.Mode == ModeForm,
		}),
		FilterBar:   views.RenderFilterBar(styles, views.FilterBarData{Options: options, Active: string(snap.Filter)}),
		List:        views.RenderTaskList(styles, views.TaskListData{Rows: rows, Empty: snap.Empty}),
		Preview:     preview,
		Summary:     snap.Summary,
		StatusLine:  m.Status.Text,
		StatusError: m.Status.IsError,
		Palette:     views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()),
		Help:        m.renderHelpIfVisible(),
		Footer:      m.renderFooter(),
	})
}

func renderDescription(md string, dark bool) string {
	return views.RenderMarkdown(md, dark)
}
