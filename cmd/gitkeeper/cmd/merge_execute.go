package cmd

import (
	"context"
	"errors"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/spf13/cobra"
)

var mergeExecute = &cobra.Command{
	Use:   "execute",
	Short: "Merge a branch into its target",
	Long: `Merge a source branch into a target branch with the chosen strategy.

The merge halts before touching anything when the conflict prediction
finds overlapping files; --force acknowledges the prediction and
proceeds. The target branch is backed up before the first mutation on
every path.`,
	Example: `% gitkeeper merge execute --source feature/login --strategy squash
merged feature/login into main (squash), commit 9f31c2b7aa0e4fd2b1c38b5f0a7f0f6f2f1e0d4c, backup main_20260825-093005`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
			return
		}
		actor, err := optionInputs.contributor()
		if err != nil {
			wrapFatalln("resolve contributor", err)
			return
		}
		stores, err := optionInputs.stateStores(cfg)
		if err != nil {
			wrapFatalln("mount state stores", err)
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
		target := gitkeeperFlags.merge.target
		if target == "" {
			target = cfg.BaseBranch
		}
		merger := core.NewMerger(stores, eng, cfg, core.MergeLogger(zlog))
		summary, err := merger.Execute(ctx,
			gitkeeperFlags.merge.source,
			target,
			gitkeeperFlags.merge.strategy,
			actor,
			gitkeeperFlags.merge.force,
		)
		if err != nil {
			if errors.Is(err, status.ErrConfirmationRequired) {
				wrapFatalWithCodef(2, "%v\nre-run with --force to confirm", err)
				return
			}
			wrapFatalln("merge", err)
			return
		}
		infoLogger.Println(summary.String())
	},
}

func init() {
	requireFlags(mergeExecute,
		addMergeSourceFlag(mergeExecute),
	)
	addMergeTargetFlag(mergeExecute)
	addMergeStrategyFlag(mergeExecute)
	addMergeForceFlag(mergeExecute)
	addContributorNameFlag(mergeExecute)
	addContributorEmailFlag(mergeExecute)

	mergeCmd.AddCommand(mergeExecute)
}
