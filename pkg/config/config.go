// Package config resolves the browser's defaults: where to start, how
// wide the gauges are, and where debug logs go. Directories follow the
// XDG base directory spec.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
)

// userDirRoot is where per-user ceph trees conventionally live; the
// default start directory is <root>/<username>.
const userDirRoot = "/mnt/ceph/users"

// Config holds the resolved defaults. Immutable after Init.
type Config struct {
	startDir     string
	gaugeWidth   int
	showOwner    bool
	debugLogPath string
}

// StartDir is the directory opened when no path argument is given.
func (c *Config) StartDir() string { return c.startDir }

// GaugeWidth is the width of each usage bar in cells.
func (c *Config) GaugeWidth() int { return c.gaugeWidth }

// ShowOwner reports whether the owner:group column starts visible.
func (c *Config) ShowOwner() bool { return c.showOwner }

// DebugLogPath is where slog output goes when debug logging is enabled.
func (c *Config) DebugLogPath() string { return c.debugLogPath }

// Init resolves defaults from the environment. CDU_HOME overrides the
// start directory; otherwise the conventional per-user ceph directory is
// used, falling back to the current directory when it does not exist.
func Init() (*Config, error) {
	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("resolving current user: %w", err)
	}

	startDir := os.Getenv("CDU_HOME")
	if startDir == "" {
		startDir = filepath.Join(userDirRoot, u.Username)
	}
	if _, err := os.Stat(startDir); err != nil {
		startDir = "."
	}

	return &Config{
		startDir:     startDir,
		gaugeWidth:   20,
		showOwner:    false,
		debugLogPath: filepath.Join(xdg.StateHome, "cdu", "debug.log"),
	}, nil
}
