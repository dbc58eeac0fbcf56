package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/app"
	"github.com/abhisek/fractiz/internal/audio"
	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/config"
	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/logger"
)

// env is what every command needs: config, a logger and the catalog.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	catalog  *catalog.Catalog
	closeLog func() error
}

// setup loads config, opens the log and loads the catalog. console tees
// development logs to stderr and must be false while the TUI runs.
func setup(cmd *cobra.Command, console bool) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logger.New(cfg, logger.Options{Console: console})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	cat, err := loadCatalog(cfg.Catalog.File)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	log.Debug("catalog loaded",
		zap.String("file", cfg.Catalog.File),
		zap.Int("questions", cat.Len()),
	)

	return &env{cfg: cfg, logger: log, catalog: cat, closeLog: closeLog}, nil
}

func (e *env) Close() {
	_ = e.closeLog()
}

// loadCatalog reads path, or returns the built-in catalog when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// runApp builds the engine and launches the TUI. A valid tier skips the
// title and level screens.
func runApp(cmd *cobra.Command, tier catalog.Tier) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	engine := game.New(game.Options{
		Catalog: e.catalog,
		Config:  e.cfg.Game.Rules(),
		Sounds:  audio.NewBell(os.Stderr, e.cfg.Audio.Enabled, e.logger),
		Logger:  e.logger.Named("game"),
	})
	if tier.Valid() {
		if !engine.CanStart(tier) {
			return fmt.Errorf("catalog has no %s questions", tier)
		}
		engine.StartGame(tier)
	}

	e.logger.Info("starting ui", zap.String("start_screen", engine.State().Screen.String()))
	return app.Run(app.Options{Engine: engine, Logger: e.logger})
}
