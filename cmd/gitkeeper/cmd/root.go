package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitkeeper",
	Short: "Gitkeeper governs the branches of a git repository",
	Long: `Gitkeeper layers governance over an existing git repository: advisory
branch locks, full-ref backups taken before anything mutates, branch
health analysis and an orchestrated merge flow.

It is not a replacement for git. Every repository mutation shells out to
the git command line, and all state gitkeeper keeps lives in plain files
under the repository's .gitkeeper directory, so a plain git clone plus
that directory is always a complete picture.`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addRepoFlag(rootCmd)
	addStateDirFlag(rootCmd)
	addRemoteFlag(rootCmd)
	addBaseFlag(rootCmd)
	addLogLevelFlag(rootCmd)
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	// viper.Unmarshal only surfaces keys it has seen: defaults make the
	// env-only case work.
	viper.SetDefault("repo", "")
	viper.SetDefault("state", "")
	viper.SetDefault("remote", "")
	viper.SetDefault("base", "")
	viper.SetDefault("name", "")
	viper.SetDefault("email", "")
	viper.SetDefault("loglevel", "")
	viper.SetDefault("duration", "")
	viper.SetDefault("retention", 0)
	viper.SetDefault("stale", 0)
	viper.SetDefault("protected", []string{})

	if cfgFile := os.Getenv("GITKEEPER_CONFIG"); cfgFile != "" {
		// Use config file from the environment.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".gitkeeper")
		if gitkeeperFlags.root.repoPath != "" {
			viper.AddConfigPath(gitkeeperFlags.root.repoPath)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("gitkeeper")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setGitkeeperParams(&gitkeeperFlags)
}
