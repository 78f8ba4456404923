package cmd

import (
	"context"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var lockRelease = &cobra.Command{
	Use:   "release",
	Short: "Release a lock on a branch",
	Long: `Release the advisory lock held on a branch.

Only the lock's owner may release it; --force overrides for locks left
behind by others. Releasing a branch that is not locked is an error, so
scripts notice when their assumptions drifted.`,
	Example: `% gitkeeper lock release --branch release/1.4`,
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
		zlog, err := optionInputs.getLogger()
		if err != nil {
			wrapFatalln("set log level", err)
			return
		}
		locks := core.NewLockManager(stores, core.LockLogger(zlog))
		err = locks.Release(ctx, gitkeeperFlags.lock.branch, actor, gitkeeperFlags.lock.force)
		if err != nil {
			wrapFatalln("release lock", err)
			return
		}
		infoLogger.Printf("released lock on %q", gitkeeperFlags.lock.branch)
	},
}

func init() {
	requireFlags(lockRelease,
		addLockBranchFlag(lockRelease),
	)
	addLockForceFlag(lockRelease)
	addContributorNameFlag(lockRelease)
	addContributorEmailFlag(lockRelease)

	lockCmd.AddCommand(lockRelease)
}
