package cmd

import (
	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
)

var configShow = &cobra.Command{
	Use:   "show",
	Short: "Show the config",
	Long: `Show the configuration resolved from the config file and environment,
followed by the effective settings once flags are folded in.`,
	Run: func(cmd *cobra.Command, args []string) {
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
			return
		}
		o, err := yaml.Marshal(config)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		_, _ = logStdOut("%s", string(o))
		infoLogger.Println("effective:", cfg.String())
	},
}

func init() {
	configCmd.AddCommand(configShow)
}
