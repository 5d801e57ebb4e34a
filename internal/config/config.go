// Package config manages the persisted repository roster and application
// settings for repodeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Settings keys and defaults.
const (
	keyWorkers          = "workers"
	keyPullRebase       = "pull.rebase"
	keyPullPrune        = "pull.prune"
	keyProgressInterval = "progress.interval"
	keyRepos            = "repos"

	defaultWorkers          = 5
	defaultProgressInterval = 500 * time.Millisecond
)

// Config wraps the viper-backed configuration file.
type Config struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "repodeck", "config.yaml"), nil
}

// Load reads the config file at path, creating defaults in memory when the
// file does not exist yet. An empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault(keyWorkers, defaultWorkers)
	v.SetDefault(keyPullRebase, true)
	v.SetDefault(keyPullPrune, true)
	v.SetDefault(keyProgressInterval, defaultProgressInterval)
	v.SetDefault(keyRepos, []string{})

	if err := v.ReadInConfig(); err != nil {
		// A missing file just means first run; anything else is real
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	return &Config{v: v, path: path}, nil
}

// Workers returns the configured worker pool size.
func (c *Config) Workers() int {
	workers := c.v.GetInt(keyWorkers)
	if workers <= 0 {
		return defaultWorkers
	}
	return workers
}

// PullRebase returns whether pull defaults to rebase.
func (c *Config) PullRebase() bool {
	return c.v.GetBool(keyPullRebase)
}

// PullPrune returns whether pull defaults to pruning stale remote branches.
func (c *Config) PullPrune() bool {
	return c.v.GetBool(keyPullPrune)
}

// ProgressInterval returns the minimum spacing between progress notifications.
func (c *Config) ProgressInterval() time.Duration {
	interval := c.v.GetDuration(keyProgressInterval)
	if interval <= 0 {
		return defaultProgressInterval
	}
	return interval
}

// Repos returns the registered working copy roots.
func (c *Config) Repos() []string {
	return c.v.GetStringSlice(keyRepos)
}

// HasRepo reports whether path is already registered.
func (c *Config) HasRepo(path string) bool {
	for _, repo := range c.Repos() {
		if repo == path {
			return true
		}
	}
	return false
}

// AddRepo registers a working copy root and persists the roster.
func (c *Config) AddRepo(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if c.HasRepo(abs) {
		return nil
	}
	c.v.Set(keyRepos, append(c.Repos(), abs))
	return c.save()
}

// RemoveRepo removes a working copy root and persists the roster. Removing an
// unknown path is a no-op.
func (c *Config) RemoveRepo(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	repos := []string{}
	removed := false
	for _, repo := range c.Repos() {
		if repo == abs {
			removed = true
			continue
		}
		repos = append(repos, repo)
	}
	if !removed {
		return nil
	}
	c.v.Set(keyRepos, repos)
	return c.save()
}

func (c *Config) save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.path, err)
	}
	return nil
}
