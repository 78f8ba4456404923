package cmd

import (
	"bytes"
	"context"
	"log"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var backupCreate = &cobra.Command{
	Use:   "create",
	Short: "Back up a branch",
	Long: `Back up a branch before risky work.

The snapshot captures every ref in the repository, not just the named
branch, so a restore can bring back objects the repository has since
lost. Backup ids resolve to the second; two backups of one branch within
the same second collide on purpose.`,
	Example: `% gitkeeper backup create --branch main --description "before 1.4 merge"
main_20260825-093005 , main @ 2f9c81a0c0d5f3a1907cb5dd0a2f3f4f1f0d9b11 , 2026-08-25 09:30:05 +0000 UTC , 1.24MB , before 1.4 merge`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
			return
		}
		createdBy, err := optionInputs.contributor()
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
		backups := core.NewBackupManager(stores, eng, cfg, core.BackupLogger(zlog))
		backup, err := backups.Create(ctx,
			gitkeeperFlags.backup.branch,
			gitkeeperFlags.backup.description,
			createdBy,
		)
		if err != nil {
			wrapFatalln("create backup", err)
			return
		}
		var buf bytes.Buffer
		if err := backupDescriptorTemplate(gitkeeperFlags).Execute(&buf, backup); err != nil {
			wrapFatalln("executing template", err)
			return
		}
		log.Println(buf.String())
	},
}

func init() {
	requireFlags(backupCreate,
		addBackupBranchFlag(backupCreate),
	)
	addBackupDescriptionFlag(backupCreate)
	addContributorNameFlag(backupCreate)
	addContributorEmailFlag(backupCreate)

	backupCmd.AddCommand(backupCreate)
}
