package cmd

import (
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
)

var configGen = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long:  "Create a config to use for gitkeeper. The config file will be placed in $HOME/.gitkeeper.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		usr, err := user.Current()
		if usr == nil || err != nil {
			wrapFatalln("could not get home directory for user", err)
			return
		}
		cfg := CLIConfig{
			Repo:     gitkeeperFlags.root.repoPath,
			State:    gitkeeperFlags.root.stateDir,
			Remote:   gitkeeperFlags.root.remote,
			Base:     gitkeeperFlags.root.base,
			Name:     gitkeeperFlags.contributor.name,
			Email:    gitkeeperFlags.contributor.email,
			LogLevel: gitkeeperFlags.root.logLevel,
			Duration: gitkeeperFlags.lock.duration,
		}
		o, err := yaml.Marshal(&cfg)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		target := filepath.Join(usr.HomeDir, ".gitkeeper.yaml")
		if err := os.WriteFile(target, o, 0600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("Wrote config file:", target)
	},
}

func init() {
	addContributorNameFlag(configGen)
	addContributorEmailFlag(configGen)
	addLockDurationFlag(configGen)

	configCmd.AddCommand(configGen)
}
