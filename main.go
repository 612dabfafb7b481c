// cdu displays ceph space and file count (inode) usage for a directory
// tree in an interactive terminal, reading the cluster's own recursive
// accounting attributes instead of walking the tree.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"cdu/pkg/config"
	"cdu/pkg/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Init()
	if err != nil {
		return err
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	p := tea.NewProgram(ui.New(cfg, path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// setupLogging sends slog to a debug file when CDU_DEBUG is set. The
// terminal belongs to the TUI, so logs never go to stderr.
func setupLogging(cfg *config.Config) error {
	if os.Getenv("CDU_DEBUG") == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DebugLogPath()), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := tea.LogToFile(cfg.DebugLogPath(), "cdu")
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}
