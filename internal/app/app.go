package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/config"
	"github.com/five82/gallery/internal/gallery"
	"github.com/five82/gallery/internal/logging"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/ui"
)

// Options configure the gallery application. Empty fields fall back to the
// config file, then to built-in defaults.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/gallery/prefs.toml
	CatalogPath string // overrides catalog_path from the config file
	DownloadDir string // overrides download_dir from the config file
	Debug       bool
}

// Env is the wired object graph shared by the TUI and the CLI subcommands.
type Env struct {
	Config     config.Config
	Catalog    *catalog.Catalog
	Controller *gallery.Controller
	Logger     *zap.Logger

	// LogErr is set when the log file could not be opened; logging is then
	// discarded.
	LogErr error
}

// Setup loads configuration and the catalog and wires the controller.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p := config.Expand(opts.CatalogPath); p != "" {
		cfg.CatalogPath = p
	}
	if d := config.Expand(opts.DownloadDir); d != "" {
		cfg.DownloadDir = d
	}
	if opts.Debug {
		cfg.Debug = true
	}

	logger, logErr := logging.OrNop(cfg.LogPath, cfg.Debug)

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.String("source", catalogSource(cfg.CatalogPath)),
		zap.Int("programs", cat.Len()),
	)

	ctrl := gallery.New(gallery.Options{
		Catalog:   cat,
		Themes:    prefs.Store{Path: opts.PrefsPath},
		Clipboard: gallery.SystemClipboard{},
		Saver:     gallery.DirSaver{Dir: cfg.DownloadDir},
		Logger:    logger,
	})

	return &Env{
		Config:     cfg,
		Catalog:    cat,
		Controller: ctrl,
		Logger:     logger,
		LogErr:     logErr,
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	if e == nil || e.Logger == nil {
		return
	}
	_ = e.Logger.Sync()
}

// Run boots the gallery TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()
	return RunUI(ctx, env)
}

// RunUI starts the TUI over an already wired Env.
func RunUI(ctx context.Context, env *Env) error {
	env.Logger.Info("starting ui", zap.String("theme", string(env.Controller.State().Theme)))
	err := ui.Run(ui.Options{
		Context:      ctx,
		Controller:   env.Controller,
		ToastTimeout: env.Config.ToastTimeout,
		Logger:       env.Logger,
	})
	if err != nil {
		env.Logger.Error("ui exited with error", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func catalogSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
