package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/jask/pantrypal/internal/config"
	"github.com/jask/pantrypal/internal/database"
	"github.com/jask/pantrypal/internal/database/repository"
	"github.com/jask/pantrypal/internal/metrics"
)

// env is what every subcommand needs: config, logger and an open,
// migrated database.
type env struct {
	cfg     config.Config
	cfgPath string
	log     *slog.Logger
	logFile io.Closer
	db      *sql.DB
	store   *database.Store
	metrics *metrics.Metrics
}

func setup(ctx context.Context, cmd *cli.Command) (*env, error) {
	e := &env{cfgPath: cmd.String("config")}
	cfg, err := config.LoadFile(e.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	e.cfg = cfg

	if err := e.openLog(); err != nil {
		return nil, err
	}
	e.metrics = metrics.New()

	dialect := database.Dialect(cfg.Database.Driver)
	target := cfg.Database.DSN
	if dialect == database.SQLite {
		target = cfg.Database.Path
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			e.Close()
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}
	db, err := database.Open(dialect, target)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db
	if err := database.RunMigrationsWithDB(db, dialect); err != nil {
		e.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	e.store = database.NewStore(db, dialect, cfg.Database.Timeout, e.metrics)
	if err := repository.NewCatalogRepo(e.store).SeedDefaults(ctx); err != nil {
		e.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	e.log.Debug("database ready", "driver", cfg.Database.Driver)
	return e, nil
}

func (e *env) openLog() error {
	if err := os.MkdirAll(filepath.Dir(e.cfg.Log.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(e.cfg.Log.Path, "pantrypal")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	e.logFile = f
	e.log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(e.cfg.Log.Level)}))
	slog.SetDefault(e.log)
	return nil
}

func (e *env) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
