package cmd

import (
	"context"
	"errors"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/spf13/cobra"
)

var mergeRevert = &cobra.Command{
	Use:   "revert",
	Short: "Undo a merge commit",
	Long: `Undo a merge commit on a branch by adding a revert commit.

History is never rewritten: the merged commits stay reachable, their
changes are undone by a new commit on top. The command refuses to run
without --force and says what it would do instead.`,
	Example: `% gitkeeper merge revert --target main --commit 9f31c2b --force`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
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
		err = merger.Revert(ctx, target, gitkeeperFlags.merge.commit, gitkeeperFlags.merge.force)
		if err != nil {
			if errors.Is(err, status.ErrConfirmationRequired) {
				wrapFatalWithCodef(2, "%v\nre-run with --force to confirm", err)
				return
			}
			wrapFatalln("revert merge", err)
			return
		}
		infoLogger.Printf("reverted %s on %s", gitkeeperFlags.merge.commit, target)
	},
}

func init() {
	requireFlags(mergeRevert,
		addMergeCommitFlag(mergeRevert),
	)
	addMergeTargetFlag(mergeRevert)
	addMergeForceFlag(mergeRevert)

	mergeCmd.AddCommand(mergeRevert)
}
