package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTaskListEmptyPlaceholder(t *testing.T) {
	out := RenderTaskList(NewStyles(false), TaskListData{Empty: true})
	assert.Contains(t, out, "No tasks to show.")
}

func TestRenderTaskListRows(t *testing.T) {
	out := RenderTaskList(NewStyles(true), TaskListData{Rows: []TaskRowData{
		{ID: "2", Title: "Call mum", Selected: true},
		{ID: "1", Title: "Buy milk", Description: "two litres\nsemi-skimmed", Completed: true},
	}})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "> ")
	assert.Contains(t, lines[0], "[ ] Call mum")
	assert.Contains(t, lines[1], "[x] Buy milk")
	assert.Contains(t, lines[2], "two litres")
	assert.NotContains(t, out, "semi-skimmed")
	assert.NotContains(t, out, EmptyPlaceholder)
}

func TestRenderFilterBarMarksActive(t *testing.T) {
	out := RenderFilterBar(NewStyles(false), FilterBarData{Options: []string{"all", "active", "completed"}, Active: "active"})
	assert.Contains(t, out, "[active]")
	assert.NotContains(t, out, "[all]")
	assert.Contains(t, out, "completed")
}

func TestRenderFormShowsError(t *testing.T) {
	s := NewStyles(false)
	out := RenderForm(s, FormData{TitleView: "title> ", DescriptionView: "desc> ", Error: "Please enter a task title.", Focused: true})
	assert.Contains(t, out, "Please enter a task title.")
	assert.Contains(t, out, "esc to leave")

	out = RenderForm(s, FormData{TitleView: "title> ", DescriptionView: "desc> "})
	assert.NotContains(t, out, "Please enter")
	assert.Contains(t, out, "n to focus")
}

func TestRenderAppLayout(t *testing.T) {
	out := RenderApp(AppData{
		Header:      "tasktrack",
		ToggleLabel: "Switch to dark theme",
		Form:        "form",
		FilterBar:   "filter: [all]",
		List:        EmptyPlaceholder,
		Summary:     "No tasks yet.",
		StatusLine:  "unsupported command: x",
		StatusError: true,
		Footer:      "q quit",
	})
	for _, want := range []string{"tasktrack", "Switch to dark theme", "filter: [all]", EmptyPlaceholder, "No tasks yet.", "unsupported command: x", "q quit"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Switch to dark theme"), strings.Index(out, EmptyPlaceholder))
}

func TestRenderMarkdown(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown("   ", true))
	for _, dark := range []bool{true, false} {
		out := RenderMarkdown("two **litres**", dark)
		assert.Contains(t, out, "litres")
		assert.NotContains(t, out, "**")
	}
}
