package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/scheduler"
	"github.com/sandeepkv93/routined/internal/storage"
	"github.com/sandeepkv93/routined/internal/tracker"
	"github.com/sandeepkv93/routined/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "routined failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", update.DefaultConfigPath(), "path to config.yaml")
	flag.Parse()

	cfg, err := update.LoadRuntimeConfig(*configPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return err
	}

	now := time.Now()
	state := loadState(repo, now)
	state.Theme = tracker.NormalizeTheme(cfg.Theme)

	clock := scheduler.NewClock(4)
	clock.Start()
	defer clock.Stop()

	m := update.NewModelWithRuntime(state, repo, clock)
	m.Filter = cfg.CategoryFilter

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// loadState treats any unreadable snapshot as "no prior state" and starts
// from the defaults instead of failing the launch.
func loadState(repo storage.Repository, now time.Time) tracker.State {
	snap, err := repo.LoadSnapshot(context.Background())
	if err != nil {
		return tracker.NewDefaultState(now)
	}
	return update.StateFromSnapshot(snap, now)
}
