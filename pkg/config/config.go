// Package config holds the runtime configuration of a gitkeeper
// installation: where the governed repository lives, where gitkeeper
// keeps its own state, and the governance policies applied to it.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gitkeeper/gitkeeper/pkg/errors"
	"github.com/gobwas/glob"
)

const (
	// DefaultStateDirName is the directory gitkeeper keeps its state in,
	// nested under the governed repository.
	DefaultStateDirName = ".gitkeeper"

	// DefaultRemote is the remote tracked by sync analysis.
	DefaultRemote = "origin"

	// DefaultBaseBranch is the integration branch used when none is given.
	DefaultBaseBranch = "main"

	// DefaultLockDuration bounds a lock's lifetime when the caller does
	// not pick one.
	DefaultLockDuration = 24 * time.Hour

	// DefaultRetentionDays is the age beyond which backups are swept.
	DefaultRetentionDays = 30

	// DefaultStaleDays is the commit idleness beyond which a branch is
	// reported stale.
	DefaultStaleDays = 90
)

// defaultProtected guards the usual integration branches. Globs use
// "/" as separator, so "release/*" covers one naming level.
var defaultProtected = []string{"main", "master", "release/*"}

// Config carries the settings shared by all gitkeeper components. It
// is assembled once at startup and passed around by value; mutating a
// copy has no effect on anyone else.
type Config struct {
	// RepoPath locates the governed git repository.
	RepoPath string

	// StateDir is where lock records and backups live. Empty means
	// DefaultStateDirName under RepoPath.
	StateDir string

	// Remote names the remote tracked by sync analysis.
	Remote string

	// BaseBranch is the default integration branch.
	BaseBranch string

	// LockDuration is the default lifetime of a lock.
	LockDuration time.Duration

	// RetentionDays is the default backup retention horizon.
	RetentionDays int

	// StaleDays is the commit idleness threshold for health reports.
	StaleDays int

	// ProtectedBranches are glob patterns; matching branches refuse
	// destructive operations unless forced.
	ProtectedBranches []string

	// LogLevel is one of the levels understood by pkg/logger.
	LogLevel string

	protected []glob.Glob
	_         struct{}
}

// Option tweaks one setting when building a Config.
type Option func(*Config)

// Repo locates the governed repository.
func Repo(path string) Option {
	return func(c *Config) {
		c.RepoPath = path
	}
}

// StateDir overrides where gitkeeper keeps its state.
func StateDir(path string) Option {
	return func(c *Config) {
		c.StateDir = path
	}
}

// Remote overrides the tracked remote.
func Remote(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Remote = name
		}
	}
}

// BaseBranch overrides the default integration branch.
func BaseBranch(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.BaseBranch = name
		}
	}
}

// LockDuration overrides the default lock lifetime.
func LockDuration(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.LockDuration = d
		}
	}
}

// RetentionDays overrides the backup retention horizon.
func RetentionDays(days int) Option {
	return func(c *Config) {
		if days > 0 {
			c.RetentionDays = days
		}
	}
}

// StaleDays overrides the branch staleness threshold.
func StaleDays(days int) Option {
	return func(c *Config) {
		if days > 0 {
			c.StaleDays = days
		}
	}
}

// ProtectedBranches replaces the protected branch patterns.
func ProtectedBranches(patterns ...string) Option {
	return func(c *Config) {
		if len(patterns) > 0 {
			c.ProtectedBranches = patterns
		}
	}
}

// LogLevel sets the verbosity of structured logging.
func LogLevel(level string) Option {
	return func(c *Config) {
		if level != "" {
			c.LogLevel = level
		}
	}
}

// New builds a Config from defaults and options, then compiles the
// protected branch patterns.
func New(opts ...Option) (Config, error) {
	c := Config{
		RepoPath:          ".",
		Remote:            DefaultRemote,
		BaseBranch:        DefaultBaseBranch,
		LockDuration:      DefaultLockDuration,
		RetentionDays:     DefaultRetentionDays,
		StaleDays:         DefaultStaleDays,
		ProtectedBranches: defaultProtected,
		LogLevel:          "info",
	}
	for _, apply := range opts {
		apply(&c)
	}
	if c.StateDir == "" {
		c.StateDir = filepath.Join(c.RepoPath, DefaultStateDirName)
	}
	c.protected = make([]glob.Glob, 0, len(c.ProtectedBranches))
	for _, pattern := range c.ProtectedBranches {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return Config{}, errors.New(fmt.Sprintf("invalid protected branch pattern %q", pattern)).Wrap(err)
		}
		c.protected = append(c.protected, g)
	}
	return c, nil
}

// IsProtected reports whether a branch name matches any protected
// pattern.
func (c Config) IsProtected(branch string) bool {
	for _, g := range c.protected {
		if g.Match(branch) {
			return true
		}
	}
	return false
}

// LocksPath is the directory backing the locks store.
func (c Config) LocksPath() string {
	return filepath.Join(c.StateDir, "locks")
}

// BackupsPath is the directory backing the backup metadata and
// artifacts stores.
func (c Config) BackupsPath() string {
	return filepath.Join(c.StateDir, "backups")
}

func (c Config) String() string {
	return fmt.Sprintf("repo: %q, state: %q, remote: %q, base: %q",
		c.RepoPath, c.StateDir, c.Remote, c.BaseBranch)
}
