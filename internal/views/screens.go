package views

import (
	"fmt"
	"strings"
)

// EmptyPlaceholder is shown in place of the list when the filtered view has
// no tasks.
const EmptyPlaceholder = "No tasks to show."

type FormData struct {
	TitleView       string
	DescriptionView string
	Error           string
	Focused         bool
}

type FilterBarData struct {
	Options []string
	Active  string
}

type TaskRowData struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Selected    bool
}

type TaskListData struct {
	Rows  []TaskRowData
	Empty bool
}

type HelpPanelData struct {
	Mode     string
	Bindings []string
	HelpView string
}

func RenderForm(s Styles, data FormData) string {
	var b strings.Builder
	heading := "new task"
	if data.Focused {
		heading += " (enter to add, tab to switch field, esc to leave)"
	} else {
		heading += " (n to focus)"
	}
	b.WriteString(s.Label.Render(heading) + "\n")
	b.WriteString(data.TitleView + "\n")
	if data.Error != "" {
		b.WriteString(s.Error.Render(data.Error) + "\n")
	}
	b.WriteString(data.DescriptionView)
	return b.String()
}

func RenderFilterBar(s Styles, data FilterBarData) string {
	parts := make([]string, 0, len(data.Options))
	for _, opt := range data.Options {
		if opt == data.Active {
			parts = append(parts, s.FilterActive.Render("["+opt+"]"))
			continue
		}
		parts = append(parts, s.FilterIdle.Render(" "+opt+" "))
	}
	return s.Label.Render("filter:") + " " + strings.Join(parts, " ")
}

func RenderTaskList(s Styles, data TaskListData) string {
	if data.Empty || len(data.Rows) == 0 {
		return s.Empty.Render(EmptyPlaceholder)
	}
	lines := make([]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		cursor := "  "
		if row.Selected {
			cursor = s.Cursor.Render("> ")
		}
		box := "[ ]"
		title := s.Title.Render(row.Title)
		if row.Completed {
			box = "[x]"
			title = s.Done.Render(row.Title)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, box, title))
		if row.Description != "" {
			lines = append(lines, s.Description.Render(firstLine(row.Description)))
		}
	}
	return strings.Join(lines, "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.Mode),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
