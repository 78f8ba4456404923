package cmd

import (
	"context"
	"time"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var backupClean = &cobra.Command{
	Use:   "clean",
	Short: "Remove backups past the retention horizon",
	Long: `Remove backups strictly older than the retention horizon.

A backup exactly at the horizon stays. Orphaned snapshot artifacts whose
metadata record is missing are swept too, once they age past the same
horizon.`,
	Example: `% gitkeeper backup clean --older-than 14
removed 3 backups older than 14 days`,
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
		days := gitkeeperFlags.backup.olderThan
		if days == 0 {
			days = cfg.RetentionDays
		}
		backups := core.NewBackupManager(stores, eng, cfg, core.BackupLogger(zlog))
		removed, err := backups.Clean(ctx, time.Duration(days)*24*time.Hour)
		if err != nil {
			wrapFatalln("clean backups", err)
			return
		}
		infoLogger.Printf("removed %d backups older than %d days", removed, days)
	},
}

func init() {
	addOlderThanFlag(backupClean)

	backupCmd.AddCommand(backupClean)
}
