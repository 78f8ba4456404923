package cmd

import (
	"context"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var branchConflicts = &cobra.Command{
	Use:   "conflicts",
	Short: "Predict merge conflicts between two branches",
	Long: `Predict which files a merge between two branches would fight over.

The prediction compares the files each side touched since their common
ancestor; an empty answer means no overlap, not a guaranteed clean
merge.`,
	Example: `% gitkeeper branch conflicts --branch feature/login
pkg/auth/login.go
pkg/auth/token.go`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
			return
		}
		eng, err := optionInputs.gitEngine(cfg)
		if err != nil {
			wrapFatalln("prepare git engine", err)
			return
		}
		zlog, err := optionInputs.getLogger()
		if err != nil {
			wrapFatalln("set log level", err)
			return
		}
		branch := gitkeeperFlags.branch.name
		against := gitkeeperFlags.branch.against
		if against == "" {
			against = cfg.BaseBranch
		}
		analyzer := core.NewAnalyzer(eng, cfg, core.AnalyzerLogger(zlog))
		paths, err := analyzer.PredictConflicts(ctx, branch, against)
		if err != nil {
			wrapFatalln("predict conflicts", err)
			return
		}
		if len(paths) == 0 {
			infoLogger.Printf("no overlapping changes between %s and %s", branch, against)
			return
		}
		for _, pth := range paths {
			infoLogger.Println(pth)
		}
	},
}

func init() {
	requireFlags(branchConflicts,
		addBranchFlag(branchConflicts),
	)
	addAgainstFlag(branchConflicts)

	branchCmd.AddCommand(branchConflicts)
}
