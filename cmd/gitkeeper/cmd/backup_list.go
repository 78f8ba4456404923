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

func applyBackupTemplate(backup model.BackupDescriptor) error {
	var buf bytes.Buffer
	if err := backupDescriptorTemplate(gitkeeperFlags).Execute(&buf, backup); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	log.Println(buf.String())
	return nil
}

var backupList = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	Long: `List the backups on record, newest first.

Only metadata records are read; listing never touches the snapshot
artifacts. Undecodable records are skipped with a warning in the logs
rather than failing the whole listing.`,
	Example: `% gitkeeper backup list
main_20260825-093005 , main @ 2f9c81a0c0d5f3a1907cb5dd0a2f3f4f1f0d9b11 , 2026-08-25 09:30:05 +0000 UTC , 1.24MB , before 1.4 merge`,
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
		backups := core.NewBackupManager(stores, eng, cfg, core.BackupLogger(zlog))
		list, err := backups.List(ctx)
		if err != nil {
			wrapFatalln("list backups", err)
			return
		}
		for _, backup := range list {
			if err := applyBackupTemplate(backup); err != nil {
				wrapFatalln("print backup", err)
				return
			}
		}
	},
}

func init() {
	backupCmd.AddCommand(backupList)
}
