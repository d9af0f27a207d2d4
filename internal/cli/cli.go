package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktrack/internal/config"
	"github.com/sandeepkv93/tasktrack/internal/logging"
	"github.com/sandeepkv93/tasktrack/internal/model"
	"github.com/sandeepkv93/tasktrack/internal/storage"
	"github.com/sandeepkv93/tasktrack/internal/theme"
	"github.com/sandeepkv93/tasktrack/internal/tracker"
	"github.com/sandeepkv93/tasktrack/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrNoSuchTask = errors.New("no task with that id")

// Execute runs the CLI and returns the process exit code. A nil cfg reads the
// environment.
func Execute(args []string, stdout, stderr io.Writer, cfg *config.RuntimeConfig) int {
	if cfg == nil {
		c := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
		cfg = &c
	}
	root := NewRootCmd(stdout, stderr, cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func NewRootCmd(stdout, stderr io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tasktrack",
		Short:         "A personal task tracker for the terminal",
		Long:          "tasktrack keeps a personal to-do list with an optional description per task, a completed flag and a light or dark theme.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend (sqlite, redis, memory)")
	cmd.PersistentFlags().StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "sqlite database path")
	cmd.PersistentFlags().StringVar(&cfg.LogPath, "log-file", cfg.LogPath, "write JSON logs to this file")

	cmd.AddCommand(newAddCmd(stdout, cfg))
	cmd.AddCommand(newListCmd(stdout, cfg))
	cmd.AddCommand(newToggleCmd(stdout, cfg))
	cmd.AddCommand(newRemoveCmd(stdout, cfg))
	cmd.AddCommand(newThemeCmd(stdout, cfg))
	cmd.AddCommand(newResetCmd(stdout, cfg))
	return cmd
}

// app bundles what every command needs from the configuration.
type app struct {
	cfg    config.RuntimeConfig
	store  storage.Store
	logger *zap.Logger
}

func openApp(ctx context.Context, cfg *config.RuntimeConfig) (*app, error) {
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	store, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	logger.Debug("store opened", zap.String("backend", cfg.Backend))
	return &app{cfg: *cfg, store: store, logger: logger}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("close store failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func (a *app) session(ctx context.Context, opts ...tracker.Option) *tracker.Session {
	base := []tracker.Option{
		tracker.WithLogger(a.logger),
		tracker.WithKey(a.cfg.TasksKey),
		tracker.WithTimeout(a.cfg.StoreTimeout),
	}
	return tracker.Open(ctx, a.store, append(base, opts...)...)
}

func (a *app) preference() *theme.Preference {
	signal := theme.TerminalSignal
	if a.cfg.PreferDark != nil {
		signal = theme.FixedSignal(*a.cfg.PreferDark)
	}
	return theme.New(a.store,
		theme.WithKey(a.cfg.ThemeKey),
		theme.WithSignal(signal),
		theme.WithLogger(a.logger),
		theme.WithTimeout(a.cfg.StoreTimeout),
		theme.OnApply(func(t model.Theme) {
			a.logger.Debug("theme applied", zap.String("theme", string(t)))
		}),
	)
}

func runTUI(ctx context.Context, cfg *config.RuntimeConfig) error {
	rt, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	session := rt.session(ctx, tracker.WithRenderer(tracker.RendererFunc(func(s tracker.Snapshot) {
		rt.logger.Debug("render",
			zap.String("filter", string(s.Filter)),
			zap.Int("visible", len(s.Visible)),
			zap.Int("total", s.Total),
			zap.Int("completed", s.Completed),
		)
	})))
	pref := rt.preference()
	pref.Init(ctx)

	program := tea.NewProgram(update.NewModel(ctx, session, pref, update.WithLogger(rt.logger)), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newAddCmd(stdout io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, desc, err := tracker.ValidateSubmission(strings.Join(args, " "), description)
			if err != nil {
				return fmt.Errorf("%s: %w", tracker.EmptyTitleMessage, err)
			}
			rt, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			task := rt.session(cmd.Context()).AddTask(cmd.Context(), title, desc)
			_, _ = fmt.Fprintf(stdout, "added %s: %s\n", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional task description (markdown)")
	return cmd
}

func newListCmd(stdout io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	var filterName string
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := model.ParseFilter(filterName)
			if err != nil {
				return err
			}
			rt, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			session := rt.session(cmd.Context())
			session.SetFilter(string(filter))
			return printSnapshot(stdout, session.Snapshot(), jsonOutput)
		},
	}
	cmd.Flags().StringVarP(&filterName, "filter", "f", string(model.FilterAll), "all, active or completed")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the visible tasks as JSON")
	return cmd
}

func printSnapshot(w io.Writer, snap tracker.Snapshot, jsonOutput bool) error {
	if jsonOutput {
		out, err := json.MarshalIndent(snap.Visible, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, string(out))
		return nil
	}
	if snap.Empty {
		_, _ = fmt.Fprintln(w, "No tasks to show.")
	}
	for _, t := range snap.Visible {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		_, _ = fmt.Fprintf(w, "%s %s  %s\n", box, t.ID, t.Title)
		if t.Description != "" {
			_, _ = fmt.Fprintf(w, "      %s\n", strings.ReplaceAll(t.Description, "\n", "\n      "))
		}
	}
	_, _ = fmt.Fprintln(w, snap.Summary)
	return nil
}

func newToggleCmd(stdout io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			session := rt.session(cmd.Context())
			if !session.ToggleTask(cmd.Context(), args[0]) {
				return fmt.Errorf("%w: %s", ErrNoSuchTask, args[0])
			}
			task, _ := session.Task(args[0])
			state := "active"
			if task.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(stdout, "%s: %s\n", state, task.Title)
			return nil
		},
	}
}

func newRemoveCmd(stdout io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			if !rt.session(cmd.Context()).RemoveTask(cmd.Context(), args[0]) {
				return fmt.Errorf("%w: %s", ErrNoSuchTask, args[0])
			}
			_, _ = fmt.Fprintf(stdout, "deleted %s\n", args[0])
			return nil
		},
	}
}

func newThemeCmd(stdout io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Switch the display theme, or set it explicitly",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			pref := rt.preference()
			pref.Apply(pref.Load(cmd.Context()))
			if len(args) == 1 {
				pref.Set(cmd.Context(), model.Theme(args[0]))
			} else {
				pref.Toggle(cmd.Context())
			}
			_, _ = fmt.Fprintf(stdout, "theme: %s\n", pref.Current())
			return nil
		},
	}
}

func newResetCmd(stdout io.Writer, cfg *config.RuntimeConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored tasks and theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			for _, key := range []string{rt.cfg.TasksKey, rt.cfg.ThemeKey} {
				if err := rt.store.Delete(cmd.Context(), key); err != nil && !errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("delete %s: %w", key, err)
				}
			}
			_, _ = fmt.Fprintln(stdout, "cleared")
			return nil
		},
	}
}
