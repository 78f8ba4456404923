package cmd

import (
	"context"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/spf13/cobra"
)

var branchCreate = &cobra.Command{
	Use:   "create",
	Short: "Create a typed branch",
	Long: `Create a branch of a given kind and check it out.

The kind determines the name prefix: feature/, bugfix/ or hotfix/. The
branch starts from --from, or from the base branch when omitted. Names
shadowing a protected pattern and names already in use are refused
unless --force is set.`,
	Example: `% gitkeeper branch create --kind feature --name login-retries
created feature/login-retries`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
			return
		}
		kind, err := model.ParseBranchKind(gitkeeperFlags.branch.kind)
		if err != nil {
			wrapFatalln("parse branch kind", err)
			return
		}
		eng, err := optionInputs.gitEngine(cfg)
		if err != nil {
			wrapFatalln("prepare git engine", err)
			return
		}
		branch, err := core.CreateBranch(ctx, eng, cfg, kind,
			gitkeeperFlags.branch.name,
			gitkeeperFlags.branch.from,
			gitkeeperFlags.branch.force,
		)
		if err != nil {
			wrapFatalln("create branch", err)
			return
		}
		infoLogger.Printf("created %s", branch)
	},
}

func init() {
	requireFlags(branchCreate,
		addBranchNameFlag(branchCreate),
	)
	addBranchKindFlag(branchCreate)
	addBranchFromFlag(branchCreate)
	addBranchForceFlag(branchCreate)

	branchCmd.AddCommand(branchCreate)
}
