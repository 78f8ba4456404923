package cmd

import (
	"bytes"
	"context"
	"log"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var lockStatus = &cobra.Command{
	Use:   "status",
	Short: "Show the lock on a branch",
	Long: `Show whether a branch is locked, and by whom.

Querying a branch whose lock has expired clears the leftover record and
reports the branch as unlocked.`,
	Example: `% gitkeeper lock status --branch release/1.4
release/1.4 , locked by Ann Hart <ann@example.com> , until 2026-08-27 10:00:00 +0000 UTC , release hardening`,
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
		zlog, err := optionInputs.getLogger()
		if err != nil {
			wrapFatalln("set log level", err)
			return
		}
		locks := core.NewLockManager(stores, core.LockLogger(zlog))
		status, err := locks.Query(ctx, gitkeeperFlags.lock.branch)
		if err != nil {
			wrapFatalln("query lock", err)
			return
		}
		if status.State != core.LockActive {
			infoLogger.Printf("%s is not locked", gitkeeperFlags.lock.branch)
			return
		}
		var buf bytes.Buffer
		if err := lockDescriptorTemplate(gitkeeperFlags).Execute(&buf, *status.Lock); err != nil {
			wrapFatalln("executing template", err)
			return
		}
		log.Println(buf.String())
	},
}

func init() {
	requireFlags(lockStatus,
		addLockBranchFlag(lockStatus),
	)

	lockCmd.AddCommand(lockStatus)
}
