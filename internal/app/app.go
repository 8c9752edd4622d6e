package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/export"
	"github.com/five82/marquee/internal/logger"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/marquee/prefs.toml
	CatalogPath string // overrides catalog_file from the config
	ExportDir   string // overrides export_dir from the config
}

// Env is everything a front end needs: the resolved config, a logger and a
// fresh session.
type Env struct {
	Config  config.Config
	Log     logger.Logger
	Session *state.Session
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Log.Sync()
}

// Bootstrap loads configuration and builds a session from it.
func Bootstrap(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dir := strings.TrimSpace(opts.ExportDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return nil, fmt.Errorf("export dir: %w", err)
		}
		cfg.ExportDir = expanded
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	seed, err := loadSeed(cfg, opts.CatalogPath)
	if err != nil {
		log.Warnf("catalog rejected: %v", err)
		_ = log.Sync()
		return nil, err
	}

	session := state.New(state.Options{
		Seed:  seed,
		Log:   log,
		Saver: export.Saver{Dir: cfg.ExportDir},
	})
	log.Infof("session %s ready with %d document(s)", session.ID(), session.Snapshot().Total)
	return &Env{Config: cfg, Log: log, Session: session}, nil
}

// loadSeed returns the catalog named by override or the config. An empty Seed
// makes the session fall back to the built-in catalog.
func loadSeed(cfg config.Config, override string) (catalog.Seed, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = cfg.CatalogFile
	}
	if path == "" {
		return catalog.Seed{}, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return catalog.Seed{}, fmt.Errorf("catalog path: %w", err)
	}
	seed, err := catalog.LoadFile(expanded)
	if err != nil {
		return catalog.Seed{}, fmt.Errorf("load catalog %s: %w", expanded, err)
	}
	return seed, nil
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	env.Log.Info("starting ui",
		logger.String("theme", userPrefs.Theme),
		logger.String("export_dir", env.Config.ExportDir),
	)

	started := time.Now()
	err = ui.Run(ui.Options{
		Context:   ctx,
		Session:   env.Session,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		Log:       env.Log,
	})
	if err != nil {
		env.Log.Error("ui exited", logger.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	env.Log.Info("ui closed", logger.Duration("elapsed", time.Since(started)))
	return nil
}
