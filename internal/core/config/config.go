// Package config handles configuration loading and validation for daybook.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Canonical operation names users may bind keywords to.
const (
	OpList           = "list"
	OpToggle         = "toggle"
	OpComplete       = "complete"
	OpUncomplete     = "uncomplete"
	OpSetDuration    = "set-duration"
	OpFinishDuration = "finish-duration"
	OpDuplicate      = "duplicate"
	OpDuplicateDone  = "duplicate-done"
	OpNew            = "new"
	OpDelete         = "delete"
	OpTime           = "time"
	OpWeekTime       = "week-time"
	OpCumulativeTime = "cumulative-time"
	OpTags           = "tags"
	OpCumulativeTags = "cumulative-tags"
	OpCacheStats     = "cache-stats"
	OpHelp           = "help"
	OpQuit           = "quit"
)

// knownOps lists every canonical operation, in display order.
var knownOps = []string{
	OpList,
	OpToggle,
	OpComplete,
	OpUncomplete,
	OpSetDuration,
	OpFinishDuration,
	OpDuplicate,
	OpDuplicateDone,
	OpNew,
	OpDelete,
	OpTime,
	OpWeekTime,
	OpCumulativeTime,
	OpTags,
	OpCumulativeTags,
	OpCacheStats,
	OpHelp,
	OpQuit,
}

// defaultKeywords provides built-in aliases that users can override.
// The short forms follow the traditional single-letter command set.
var defaultKeywords = map[string][]string{
	OpList:           {"l"},
	OpToggle:         {"t"},
	OpComplete:       {"c"},
	OpUncomplete:     {"uc"},
	OpFinishDuration: {"ct"},
	OpDuplicate:      {"dup"},
	OpDuplicateDone:  {"cd"},
	OpNew:            {"n", "add"},
	OpDelete:         {"d", "rm"},
	OpWeekTime:       {"wtime"},
	OpCumulativeTime: {"ctime"},
	OpCumulativeTags: {"ctags"},
	OpCacheStats:     {"cache"},
	OpHelp:           {"h"},
	OpQuit:           {"q", "exit"},
}

// Config holds the application configuration.
type Config struct {
	// Master is the default master task-list file, used until a dated log
	// exists for the day. A positional CLI argument overrides it.
	Master string `yaml:"master"`
	// Keywords maps canonical operation names to user-chosen aliases.
	Keywords map[string][]string `yaml:"keywords"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Master:   "todo.txt",
		Keywords: map[string][]string{},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// the file doesn't exist, defaults are returned. The file is YAML; a JSON
// mapping loads as well since JSON is a YAML subset.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keywords into defaults (user config overrides defaults)
	cfg.Keywords = mergeKeywords(defaultKeywords, cfg.Keywords)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "daybook", "config.yaml")
}

// mergeKeywords merges user aliases into defaults. User aliases override
// defaults for the same operation.
func mergeKeywords(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for op, aliases := range defaults {
		result[op] = aliases
	}

	for op, aliases := range user {
		result[op] = aliases
	}

	return result
}

// KeywordTable returns the alias→operation lookup table. Every canonical
// operation name dispatches to itself in addition to its aliases. Call
// Validate first; the table assumes a conflict-free alias set.
func (c *Config) KeywordTable() map[string]string {
	table := make(map[string]string)
	for _, op := range knownOps {
		table[op] = op
	}
	for op, aliases := range c.Keywords {
		for _, alias := range aliases {
			table[alias] = op
		}
	}
	return table
}

// Ops returns the canonical operation names in display order.
func Ops() []string {
	return knownOps
}

func isKnownOp(name string) bool {
	for _, op := range knownOps {
		if op == name {
			return true
		}
	}
	return false
}
