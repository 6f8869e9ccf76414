// Package commands wires the CLI command tree to the daybook service.
package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/daybook/internal/core/config"
	"github.com/colonyops/daybook/internal/daybook"
)

// Flags holds global flag values and the shared state built in the root
// command's Before hook.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Dir        string
	Master     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the daybook service for executing operations
	Service *daybook.Service
}

// DefaultLogFile returns the default log file path using the system's state
// directory. Logs go to a file so the interactive prompt stays clean.
// On macOS: ~/Library/Logs/daybook/daybook.log
// On Linux: $XDG_STATE_HOME/daybook/daybook.log (defaults to ~/.local/state)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "daybook", "daybook.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "daybook", "daybook.log")
	}

	return filepath.Join(home, ".local", "state", "daybook", "daybook.log")
}
