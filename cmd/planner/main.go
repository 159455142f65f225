package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"myplanner/internal/planner"
	"myplanner/internal/storage"
	"myplanner/internal/update"
)

func main() {
	_ = godotenv.Load()

	cfg, err := update.LoadRuntimeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "planner: load config: %v\n", err)
		os.Exit(1)
	}

	kv, err := openStore(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "planner: open store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	planners := planner.NewStore(kv)
	if err := planners.Load(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "planner: load state: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(update.NewModelWithConfig(planners, cfg))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "planner failed: %v\n", err)
		os.Exit(1)
	}
}

func openStore(path string) (storage.Store, error) {
	if path == "" {
		return storage.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return storage.OpenSQLite(path)
}
