package cmd

import (
	"bytes"
	"context"
	"log"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var lockAcquire = &cobra.Command{
	Use:   "acquire",
	Short: "Acquire a lock on a branch",
	Long: `Acquire an advisory lock on a branch for a bounded time.

Re-acquiring a branch you already hold renews the lease. A live lock
held by someone else is refused with its holder named, unless --force
takes it over. Expired locks never stand in the way.`,
	Example: `% gitkeeper lock acquire --branch release/1.4 --reason "release hardening" --duration 48h
release/1.4 , locked by Ann Hart <ann@example.com> , until 2026-08-27 10:00:00 +0000 UTC , release hardening`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
			return
		}
		owner, err := optionInputs.contributor()
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
		lock, err := locks.Acquire(ctx,
			gitkeeperFlags.lock.branch,
			owner,
			gitkeeperFlags.lock.reason,
			cfg.LockDuration,
			gitkeeperFlags.lock.force,
		)
		if err != nil {
			wrapFatalln("acquire lock", err)
			return
		}
		var buf bytes.Buffer
		if err := lockDescriptorTemplate(gitkeeperFlags).Execute(&buf, lock); err != nil {
			wrapFatalln("executing template", err)
			return
		}
		log.Println(buf.String())
	},
}

func init() {
	requireFlags(lockAcquire,
		addLockBranchFlag(lockAcquire),
	)
	addLockReasonFlag(lockAcquire)
	addLockDurationFlag(lockAcquire)
	addLockForceFlag(lockAcquire)
	addContributorNameFlag(lockAcquire)
	addContributorEmailFlag(lockAcquire)

	lockCmd.AddCommand(lockAcquire)
}
