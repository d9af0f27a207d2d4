package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasktrack/internal/views"
)

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	ShowAll     key.Binding
	ShowActive  key.Binding
	ShowDone    key.Binding
	CycleFilter key.Binding
	Theme       key.Binding
	NewTask     key.Binding
	Palette     key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	Help        key.Binding
	Quit        key.Binding

	Submit    key.Binding
	NextField key.Binding
	Leave     key.Binding
	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ShowAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show all")),
		ShowActive:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "show active")),
		ShowDone:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show completed")),
		CycleFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "switch theme")),
		NewTask:     key.NewBinding(key.WithKeys("n", "i"), key.WithHelp("n", "new task")),
		Palette:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll notes")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll notes")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) modeKeyMap() helpKeyMap {
	k := m.Keys
	switch m.Mode {
	case ModeForm:
		return helpKeyMap{
			short: []key.Binding{k.Submit, k.NextField, k.Leave},
			full:  [][]key.Binding{{k.Submit, k.NextField, k.Leave, k.ForceQuit}},
		}
	case ModePalette:
		return helpKeyMap{
			short: []key.Binding{k.Submit, k.Leave},
			full:  [][]key.Binding{{k.Submit, k.Leave, k.ForceQuit}},
		}
	default:
		return helpKeyMap{
			short: []key.Binding{k.NewTask, k.Toggle, k.Delete, k.CycleFilter, k.Theme, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Toggle, k.Delete},
				{k.ShowAll, k.ShowActive, k.ShowDone, k.CycleFilter},
				{k.NewTask, k.Palette, k.Theme, k.ScrollDown, k.ScrollUp},
				{k.Help, k.Quit},
			},
		}
	}
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	keys := m.modeKeyMap()
	var plain []string
	if m.Mode == ModeList {
		plain = append(plain, "palette: add <title> [:: notes] | filter <all|active|completed> | toggle <id> | rm <id> | theme")
	}
	plain = append(plain, fmt.Sprintf("theme: %s", m.theme.Current()))
	return views.RenderHelpPanel(views.HelpPanelData{
		Mode:     string(m.Mode),
		Bindings: plain,
		HelpView: m.helpModel.FullHelpView(keys.full),
	})
}

func (m Model) renderFooter() string {
	return m.helpModel.View(m.modeKeyMap())
}
