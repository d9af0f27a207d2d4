package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/storage"
	"go.uber.org/zap"
)

// Snapshot is the output of one render: the filtered view plus a summary of
// the whole list.
type Snapshot struct {
	Filter    model.Filter
	Visible   []model.Task
	Empty     bool
	Summary   string
	Total     int
	Completed int
}

type Renderer interface {
	Render(Snapshot)
}

type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKey sets the store key holding the serialized list.
func WithKey(key string) Option {
	return func(s *Session) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTimeout bounds every store call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// Session owns the in-memory task list, the current filter and the hook that
// receives every render. It is not safe for concurrent use; callers deliver
// one intent at a time.
type Session struct {
	store    storage.Store
	key      string
	tasks    []model.Task
	filter   model.Filter
	renderer Renderer
	now      func() time.Time
	timeout  time.Duration
	logger   *zap.Logger
	last     Snapshot
}

// Open loads the persisted list and renders once. Load failures never
// surface: a missing or malformed value yields an empty list.
func Open(ctx context.Context, store storage.Store, opts ...Option) *Session {
	s := &Session{
		store:  store,
		key:    "personal-task-tracker-live",
		filter: model.FilterAll,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = s.load(ctx)
	s.Render()
	return s
}

func (s *Session) AddTask(ctx context.Context, title, description string) model.Task {
	task := model.Task{
		ID:          model.NewTaskID(s.now(), s.has),
		Title:       title,
		Description: description,
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	s.logger.Debug("task added", zap.String("id", task.ID))
	s.save(ctx)
	s.Render()
	return task
}

// ToggleTask flips the completion flag of id. Unknown ids are ignored.
func (s *Session) ToggleTask(ctx context.Context, id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.logger.Debug("task toggled", zap.String("id", id), zap.Bool("completed", s.tasks[i].Completed))
	s.save(ctx)
	s.Render()
	return true
}

// RemoveTask deletes id if present. The list is saved and rendered either way.
func (s *Session) RemoveTask(ctx context.Context, id string) bool {
	kept := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(s.tasks)
	s.tasks = kept
	if removed {
		s.logger.Debug("task removed", zap.String("id", id))
	}
	s.save(ctx)
	s.Render()
	return removed
}

// SetFilter switches the view filter. Unknown or unchanged names are no-ops.
func (s *Session) SetFilter(name string) bool {
	f := model.Filter(name)
	if !f.IsValid() || f == s.filter {
		return false
	}
	s.filter = f
	s.Render()
	return true
}

func (s *Session) Render() Snapshot {
	visible := s.filter.Apply(s.tasks)
	snap := Snapshot{
		Filter:    s.filter,
		Visible:   visible,
		Empty:     len(visible) == 0,
		Summary:   model.Summary(s.tasks),
		Total:     len(s.tasks),
		Completed: model.CountCompleted(s.tasks),
	}
	s.last = snap
	if s.renderer != nil {
		s.renderer.Render(snap)
	}
	return snap
}

// Snapshot returns the most recent render without re-rendering.
func (s *Session) Snapshot() Snapshot { return s.last }

func (s *Session) Filter() model.Filter { return s.filter }

func (s *Session) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Session) Task(id string) (model.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Session) has(id string) bool { return s.indexOf(id) >= 0 }

func (s *Session) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) load(ctx context.Context) []model.Task {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("no stored tasks", zap.String("key", s.key))
		} else {
			s.logger.Warn("read tasks failed", zap.String("key", s.key), zap.Error(err))
		}
		return []model.Task{}
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn("stored tasks unreadable, starting empty", zap.String("key", s.key), zap.Error(err))
		return []model.Task{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			s.logger.Debug("stored task incomplete", zap.String("id", t.ID), zap.Error(err))
		}
	}
	s.logger.Info("tasks loaded", zap.Int("count", len(tasks)))
	return tasks
}

// save overwrites the stored list. Failures are logged and otherwise
// ignored; the in-memory list stays authoritative for the session.
func (s *Session) save(ctx context.Context) {
	payload, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Warn("encode tasks failed", zap.Error(err))
		return
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := s.store.Set(ctx, s.key, string(payload)); err != nil {
		s.logger.Warn("save tasks failed", zap.String("key", s.key), zap.Error(err))
	}
}

func (s *Session) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}
