package cmd

import (
	"context"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var branchStatus = &cobra.Command{
	Use:   "status",
	Short: "Show how far a branch drifted from its base",
	Long: `Show how far a branch drifted from its base branch and whether the
remote copy agrees with the local one.

Ahead counts commits only the branch has, behind counts commits only the
base has.`,
	Example: `% gitkeeper branch status --branch feature/login
feature/login vs main: 3 ahead, 1 behind (diverged)
origin/feature/login: in sync`,
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
		div, err := analyzer.Divergence(ctx, branch, against)
		if err != nil {
			wrapFatalln("analyze divergence", err)
			return
		}
		infoLogger.Printf("%s vs %s: %d ahead, %d behind (%s)",
			div.Branch, div.Base, div.Ahead, div.Behind, div.State())

		remote, err := analyzer.RemoteSync(ctx, branch)
		if err != nil {
			wrapFatalln("compare with remote", err)
			return
		}
		switch {
		case !remote.Found:
			infoLogger.Printf("%s/%s: not tracked", cfg.Remote, branch)
		case remote.InSync:
			infoLogger.Printf("%s/%s: in sync", cfg.Remote, branch)
		default:
			infoLogger.Printf("%s/%s: differs, local %s remote %s",
				cfg.Remote, branch, remote.LocalHash, remote.RemoteHash)
		}
	},
}

func init() {
	requireFlags(branchStatus,
		addBranchFlag(branchStatus),
	)
	addAgainstFlag(branchStatus)

	branchCmd.AddCommand(branchStatus)
}
