package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/spf13/cobra"
)

func applyLockTemplate(lock model.LockDescriptor) error {
	var buf bytes.Buffer
	if err := lockDescriptorTemplate(gitkeeperFlags).Execute(&buf, lock); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	log.Println(buf.String())
	return nil
}

var lockList = &cobra.Command{
	Use:   "list",
	Short: "List the active locks",
	Long: `List every branch currently locked, sorted by branch name.

Expired records found along the way are cleared, so the listing is also
a sweep.`,
	Example: `% gitkeeper lock list
main , locked by Ann Hart <ann@example.com> , until 2026-08-27 10:00:00 +0000 UTC
release/1.4 , locked by Raj Patel <raj@example.com> , until 2026-08-26 08:30:00 +0000 UTC , release hardening`,
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
		active, err := locks.ListActive(ctx)
		if err != nil {
			wrapFatalln("list locks", err)
			return
		}
		for _, lock := range active {
			if err := applyLockTemplate(lock); err != nil {
				wrapFatalln("print lock", err)
				return
			}
		}
	},
}

func init() {
	lockCmd.AddCommand(lockList)
}
