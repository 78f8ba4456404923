package cmd

import (
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// viper matches fields against their serialized names, keep them aligned
	Repo      string   `json:"repo" yaml:"repo"`           // Path to the governed repository
	State     string   `json:"state" yaml:"state"`         // Directory holding gitkeeper state
	Remote    string   `json:"remote" yaml:"remote"`       // Remote tracked by sync analysis
	Base      string   `json:"base" yaml:"base"`           // Default integration branch
	Name      string   `json:"name" yaml:"name"`           // Contributor name
	Email     string   `json:"email" yaml:"email"`         // Contributor email
	LogLevel  string   `json:"loglevel" yaml:"loglevel"`   // Log verbosity
	Duration  string   `json:"duration" yaml:"duration"`   // Default lock duration, e.g. "24h"
	Retention int      `json:"retention" yaml:"retention"` // Backup retention in days
	Stale     int      `json:"stale" yaml:"stale"`         // Branch staleness threshold in days
	Protected []string `json:"protected" yaml:"protected"` // Protected branch patterns

	onceLogger sync.Once
	logger     *zap.Logger
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setGitkeeperParams fills flags left empty on the command line from the
// config file, so explicit flags always win.
func (c *CLIConfig) setGitkeeperParams(flags *flagsT) {
	if flags.root.repoPath == "" {
		flags.root.repoPath = c.Repo
	}
	if flags.root.stateDir == "" {
		flags.root.stateDir = c.State
	}
	if flags.root.remote == "" {
		flags.root.remote = c.Remote
	}
	if flags.root.base == "" {
		flags.root.base = c.Base
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.contributor.name == "" {
		flags.contributor.name = c.Name
	}
	if flags.contributor.email == "" {
		flags.contributor.email = c.Email
	}
	if flags.lock.duration == "" {
		flags.lock.duration = c.Duration
	}
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the gitkeeper config",
	Long: `Commands to manage the gitkeeper CLI config.

The configuration holds the flags that rarely change across runs, such
as the repository path, the tracked remote or the contributor identity,
analogous to "git config ...".`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
