package theme

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/storage"
	"go.uber.org/zap"
)

// SystemSignal reports whether the environment prefers a dark display.
type SystemSignal func() bool

// TerminalSignal asks the terminal for its background colour.
func TerminalSignal() bool { return lipgloss.HasDarkBackground() }

// FixedSignal always answers with prefersDark.
func FixedSignal(prefersDark bool) SystemSignal {
	return func() bool { return prefersDark }
}

type Option func(*Preference)

func WithKey(key string) Option {
	return func(p *Preference) {
		if key != "" {
			p.key = key
		}
	}
}

func WithSignal(sig SystemSignal) Option {
	return func(p *Preference) {
		if sig != nil {
			p.signal = sig
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Preference) {
		if l != nil {
			p.logger = l
		}
	}
}

// OnApply registers a hook called after every Apply with the new mode.
func OnApply(fn func(model.Theme)) Option {
	return func(p *Preference) { p.onApply = fn }
}

func WithTimeout(d time.Duration) Option {
	return func(p *Preference) { p.timeout = d }
}

// Preference tracks the light/dark display mode and mirrors it to the store
// under its own key.
type Preference struct {
	store   storage.Store
	key     string
	current model.Theme
	label   string
	signal  SystemSignal
	onApply func(model.Theme)
	timeout time.Duration
	logger  *zap.Logger
}

func New(store storage.Store, opts ...Option) *Preference {
	p := &Preference{
		store:  store,
		key:    "personal-task-tracker-theme",
		signal: TerminalSignal,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load returns the stored mode when it is exactly "dark" or "light", and
// falls back to the system signal otherwise.
func (p *Preference) Load(ctx context.Context) model.Theme {
	ctx, cancel := p.storeContext(ctx)
	defer cancel()

	raw, err := p.store.Get(ctx, p.key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		p.logger.Debug("read theme failed", zap.String("key", p.key), zap.Error(err))
	}
	if stored := model.Theme(raw); err == nil && stored.IsValid() {
		return stored
	}
	return model.ThemeFromSignal(p.signal())
}

// Apply switches the displayed mode and relabels the toggle control with the
// mode the next activation will select.
func (p *Preference) Apply(t model.Theme) {
	p.current = t
	p.label = fmt.Sprintf("Switch to %s theme", t.Opposite())
	if p.onApply != nil {
		p.onApply(t)
	}
}

// Set applies t and persists it. Persistence failures are ignored.
func (p *Preference) Set(ctx context.Context, t model.Theme) {
	p.Apply(t)
	p.persist(ctx, t)
}

// Toggle moves to the opposite of the displayed mode, treating unset as light.
func (p *Preference) Toggle(ctx context.Context) model.Theme {
	current := p.current
	if current == "" {
		current = model.ThemeLight
	}
	next := current.Opposite()
	p.Set(ctx, next)
	return next
}

// Init loads, applies and persists the starting mode, so a fallback to the
// system signal becomes an explicit stored choice.
func (p *Preference) Init(ctx context.Context) model.Theme {
	t := p.Load(ctx)
	p.Apply(t)
	p.persist(ctx, t)
	return t
}

func (p *Preference) Current() model.Theme { return p.current }

func (p *Preference) ToggleLabel() string { return p.label }

func (p *Preference) persist(ctx context.Context, t model.Theme) {
	ctx, cancel := p.storeContext(ctx)
	defer cancel()
	if err := p.store.Set(ctx, p.key, string(t)); err != nil {
		p.logger.Debug("save theme failed", zap.String("key", p.key), zap.Error(err))
	}
}

func (p *Preference) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout > 0 {
		return context.WithTimeout(ctx, p.timeout)
	}
	return context.WithCancel(ctx)
}
