package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/theme"
	"github.com/sandeepkv93/tasktrack/internal/tracker"
	"go.uber.org/zap"
)

type Mode string

const (
	ModeList    Mode = "list"
	ModeForm    Mode = "form"
	ModePalette Mode = "palette"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// Model is the bubbletea model of the task tracker. Task state lives in the
// tracker session and the theme preference; the model only holds UI state.
type Model struct {
	Mode        Mode
	Cursor      int
	FormError   string
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool

	ctx     context.Context
	session *tracker.Session
	theme   *theme.Preference
	logger  *zap.Logger

	titleInput   textinput.Model
	descInput    textinput.Model
	field        formField
	commandInput textinput.Model
	helpModel    help.Model
	preview      viewport.Model
	previewID    string
	previewTheme model.Theme
}

type Option func(*Model)

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewModel(ctx context.Context, session *tracker.Session, pref *theme.Preference, opts ...Option) Model {
	m := Model{
		Mode:    ModeList,
		Keys:    DefaultKeyMap(),
		ctx:     ctx,
		session: session,
		theme:   pref,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents()
	m.syncPreview()
	return m
}

func (m *Model) initBubbleComponents() {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.Placeholder = "What needs doing?"
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 48

	m.descInput = textinput.New()
	m.descInput.Prompt = "notes> "
	m.descInput.Placeholder = "Optional description (markdown)"
	m.descInput.CharLimit = 1024
	m.descInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.preview = viewport.New(60, 8)
}

// SelectedTask returns the visible task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	visible := m.session.Snapshot().Visible
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func (m Model) TitleValue() string { return m.titleInput.Value() }

func (m Model) DescriptionValue() string { return m.descInput.Value() }

func (m Model) CommandValue() string { return m.commandInput.Value() }

func (m Model) dark() bool { return m.theme.Current() == model.ThemeDark }

func (m *Model) clampCursor() {
	n := len(m.session.Snapshot().Visible)
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// syncPreview re-renders the description pane when the selection or the
// display mode changed since the last render.
func (m *Model) syncPreview() {
	m.clampCursor()
	task, ok := m.SelectedTask()
	id := ""
	if ok {
		id = task.ID + "\x00" + task.Description
	}
	if id == m.previewID && m.theme.Current() == m.previewTheme {
		return
	}
	m.previewID = id
	m.previewTheme = m.theme.Current()
	content := ""
	if ok {
		content = renderDescription(task.Description, m.dark())
	}
	m.preview.SetContent(content)
	m.preview.GotoTop()
}
