package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/peekaboo/internal/app"
	"github.com/abhisek/peekaboo/internal/audio"
	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/config"
	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/logging"
	"github.com/abhisek/peekaboo/internal/narration"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/rng"
	sessionscreen "github.com/abhisek/peekaboo/internal/screens/session"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/abhisek/peekaboo/internal/store"
	"github.com/spf13/cobra"
)

// env is everything a command needs: settings, the open store and the
// services built on it.
type env struct {
	cfg      config.Config
	dbPath   string
	logger   *slog.Logger
	store    *store.Store
	catalog  *catalog.Catalog
	stickers *stickers.Service
	progress *progress.Service
	history  store.SessionRepo

	closers []io.Closer
}

// openEnv loads configuration, opens the store and builds the services.
// The TUI logs to a file; other commands log warnings to stderr.
func openEnv(cmd *cobra.Command, tui bool) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	e := &env{cfg: cfg, dbPath: dbPath}

	if tui {
		logger, closer, err := logging.OpenFile(cfg.ResolveLogFile(dbPath), level)
		if err != nil {
			return nil, err
		}
		e.logger = logger
		e.closers = append(e.closers, closer)
	} else {
		e.logger = logging.Stderr(max(level, slog.LevelWarn))
	}

	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	e.catalog = catalog.Default()
	e.stickers = stickers.NewService(ctx, st.KV(), rng.New(cfg.Seed), e.catalog.Size(), e.logger)
	e.progress = progress.NewService(ctx, st.KV(), e.catalog, nil, e.logger)
	e.history = st.SessionRepo()
	return e, nil
}

// Close releases the store and log file, newest first.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// controller wires a game controller over the env's services. The bell
// is nil when sound is off.
func (e *env) controller() (*game.Controller, *audio.Bell) {
	var narrator narration.Narrator = narration.Nop{}
	if e.cfg.Narration {
		narrator = narration.NewCaption(e.logger)
	}
	var (
		player audio.Player = audio.Nop{}
		bell   *audio.Bell
	)
	if e.cfg.Sound {
		bell = audio.NewBell(e.logger)
		player = bell
	}

	src := rng.New(e.cfg.Seed)
	return game.New(game.Deps{
		Engine:   session.NewEngine(session.NewGenerator(e.catalog, src), session.SystemClock{}),
		Stickers: e.stickers,
		Progress: e.progress,
		History:  e.history,
		Narrator: narrator,
		Audio:    player,
		Lines:    narration.NewLines(src),
		Logger:   e.logger,
	}), bell
}

// runApp opens the store, builds dependencies, and launches the TUI.
// A non-nil launch starts that game straight away.
func runApp(cmd *cobra.Command, launch *sessionscreen.Launch) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("peekaboo starting", "version", version, "db", e.dbPath)
	ctrl, bell := e.controller()
	return app.Run(app.Options{
		Controller:    ctrl,
		Bell:          bell,
		FeedbackDelay: e.cfg.FeedbackDelay,
		Launch:        launch,
	})
}
