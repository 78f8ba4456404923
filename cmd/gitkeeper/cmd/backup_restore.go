package cmd

import (
	"context"
	"errors"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/spf13/cobra"
)

var backupRestore = &cobra.Command{
	Use:   "restore",
	Short: "Restore a branch from a backup",
	Long: `Restore a branch to the exact commit a backup recorded.

Commits made after the backup disappear from the branch, so the command
refuses to run without --force and says what it would do instead.
Objects missing from the repository are brought back from the snapshot
first; the restored branch never dangles.`,
	Example: `% gitkeeper backup restore --backup main_20260825-093005 --force`,
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
		err = backups.Restore(ctx, gitkeeperFlags.backup.id, gitkeeperFlags.backup.force)
		if err != nil {
			if errors.Is(err, status.ErrConfirmationRequired) {
				wrapFatalWithCodef(2, "%v\nre-run with --force to confirm", err)
				return
			}
			wrapFatalln("restore backup", err)
			return
		}
		infoLogger.Printf("restored %s", gitkeeperFlags.backup.id)
	},
}

func init() {
	requireFlags(backupRestore,
		addBackupIDFlag(backupRestore),
	)
	addBackupForceFlag(backupRestore)

	backupCmd.AddCommand(backupRestore)
}
