package theme

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const themeKey = "personal-task-tracker-theme"

func stored(t *testing.T, s storage.Store) string {
	t.Helper()
	v, err := s.Get(context.Background(), themeKey)
	require.NoError(t, err)
	return v
}

func TestLoadPrefersStoredValue(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), themeKey, "light"))

	p := New(store, WithSignal(FixedSignal(true)))
	assert.Equal(t, model.ThemeLight, p.Load(context.Background()))
}

func TestLoadFallsBackToSignal(t *testing.T) {
	for _, raw := range []string{"", "Dark", "sepia", " dark"} {
		store := storage.NewMemoryStore()
		if raw != "" {
			require.NoError(t, store.Set(context.Background(), themeKey, raw))
		}
		assert.Equal(t, model.ThemeDark, New(store, WithSignal(FixedSignal(true))).Load(context.Background()), "raw %q", raw)
		assert.Equal(t, model.ThemeLight, New(store, WithSignal(FixedSignal(false))).Load(context.Background()), "raw %q", raw)
	}
}

func TestInitPersistsSystemPreference(t *testing.T) {
	store := storage.NewMemoryStore()
	var applied []model.Theme
	p := New(store, WithSignal(FixedSignal(true)), OnApply(func(t model.Theme) { applied = append(applied, t) }))

	got := p.Init(context.Background())
	assert.Equal(t, model.ThemeDark, got)
	assert.Equal(t, model.ThemeDark, p.Current())
	assert.Equal(t, "dark", stored(t, store))
	assert.Equal(t, []model.Theme{model.ThemeDark}, applied)
}

func TestApplyLabelsOppositeMode(t *testing.T) {
	p := New(storage.NewMemoryStore())
	p.Apply(model.ThemeDark)
	assert.Equal(t, "Switch to light theme", p.ToggleLabel())
	p.Apply(model.ThemeLight)
	assert.Equal(t, "Switch to dark theme", p.ToggleLabel())
}

func TestSetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.db")
	for _, want := range []model.Theme{model.ThemeDark, model.ThemeLight} {
		store, err := storage.OpenSQLite(path)
		require.NoError(t, err)
		New(store).Set(context.Background(), want)
		require.NoError(t, store.Close())

		reopened, err := storage.OpenSQLite(path)
		require.NoError(t, err)
		got := New(reopened, WithSignal(FixedSignal(want == model.ThemeLight))).Load(context.Background())
		require.NoError(t, reopened.Close())
		assert.Equal(t, want, got)
	}
}

func TestToggleFromUnsetStartsAtLight(t *testing.T) {
	store := storage.NewMemoryStore()
	p := New(store)

	assert.Equal(t, model.ThemeDark, p.Toggle(context.Background()))
	assert.Equal(t, "dark", stored(t, store))
	assert.Equal(t, model.ThemeLight, p.Toggle(context.Background()))
	assert.Equal(t, "light", stored(t, store))
	assert.Equal(t, "Switch to dark theme", p.ToggleLabel())
}

func TestSetSwallowsWriteFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailWrites = errors.New("quota exceeded")
	p := New(store, WithSignal(FixedSignal(false)))

	p.Init(context.Background())
	p.Set(context.Background(), model.ThemeDark)
	assert.Equal(t, model.ThemeDark, p.Current())

	_, err := store.Get(context.Background(), themeKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCustomKeyIsolatedFromTasks(t *testing.T) {
	store := storage.NewMemoryStore()
	New(store, WithKey("theme")).Set(context.Background(), model.ThemeDark)

	v, err := store.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	_, err = store.Get(context.Background(), themeKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
