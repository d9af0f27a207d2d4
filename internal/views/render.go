package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Dark        bool
	Header      string
	ToggleLabel string
	Form        string
	FilterBar   string
	List        string
	Preview     string
	Summary     string
	StatusLine  string
	StatusError bool
	Palette     string
	Help        string
	Footer      string
}

type colors struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
	border  lipgloss.Color
}

var (
	lightColors = colors{accent: "25", text: "235", muted: "245", success: "28", danger: "160", border: "250"}
	darkColors  = colors{accent: "75", text: "252", muted: "242", success: "114", danger: "203", border: "238"}
)

// Styles is the set of lipgloss styles for one display mode.
type Styles struct {
	Header       lipgloss.Style
	Toggle       lipgloss.Style
	Panel        lipgloss.Style
	Label        lipgloss.Style
	Error        lipgloss.Style
	FilterActive lipgloss.Style
	FilterIdle   lipgloss.Style
	Cursor       lipgloss.Style
	Title        lipgloss.Style
	Done         lipgloss.Style
	Description  lipgloss.Style
	Empty        lipgloss.Style
	Summary      lipgloss.Style
	Status       lipgloss.Style
	Footer       lipgloss.Style
}

func NewStyles(dark bool) Styles {
	c := lightColors
	if dark {
		c = darkColors
	}
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(c.accent),
		Toggle:       lipgloss.NewStyle().Foreground(c.muted).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(c.border).PaddingLeft(1),
		Panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.border).Padding(0, 1),
		Label:        lipgloss.NewStyle().Foreground(c.muted),
		Error:        lipgloss.NewStyle().Foreground(c.danger),
		FilterActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(c.accent),
		FilterIdle:   lipgloss.NewStyle().Foreground(c.muted),
		Cursor:       lipgloss.NewStyle().Bold(true).Foreground(c.accent),
		Title:        lipgloss.NewStyle().Foreground(c.text),
		Done:         lipgloss.NewStyle().Strikethrough(true).Foreground(c.muted),
		Description:  lipgloss.NewStyle().Foreground(c.muted).PaddingLeft(6),
		Empty:        lipgloss.NewStyle().Italic(true).Foreground(c.muted),
		Summary:      lipgloss.NewStyle().Foreground(c.success),
		Status:       lipgloss.NewStyle().Foreground(c.success),
		Footer:       lipgloss.NewStyle().Foreground(c.muted),
	}
}

func RenderApp(data AppData) string {
	s := NewStyles(data.Dark)

	header := s.Header.Render(data.Header)
	if data.ToggleLabel != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", s.Toggle.Render("[t] "+data.ToggleLabel))
	}

	body := []string{s.Panel.Render(data.Form), data.FilterBar, s.Panel.Render(data.List)}
	if data.Preview != "" {
		body = append(body, s.Panel.Render(data.Preview))
	}

	lines := []string{header, strings.Join(body, "\n"), s.Summary.Render(data.Summary)}
	if data.StatusLine != "" {
		if data.StatusError {
			lines = append(lines, s.Error.Render(data.StatusLine))
		} else {
			lines = append(lines, s.Status.Render(data.StatusLine))
		}
	}
	if data.Palette != "" {
		lines = append(lines, s.Panel.Render(data.Palette))
	}
	if data.Help != "" {
		lines = append(lines, s.Panel.Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, s.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders a task description with the glamour style that
// matches the display mode. Input glamour cannot render is returned as is.
func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
