package cmd

import (
	"context"

	"github.com/gitkeeper/gitkeeper/pkg/core"
	"github.com/spf13/cobra"
)

var branchHealth = &cobra.Command{
	Use:   "health",
	Short: "Run a health check on a branch",
	Long: `Run every health check gitkeeper knows on one branch: remote sync,
currency against the base, staleness, working tree state and predicted
merge conflicts.

Findings print one per line with their severity; only warnings and
above count as issues.`,
	Example: `% gitkeeper branch health --branch feature/login --max-age 30
[warning] base-currency: 3 commits behind main
[warning] staleness: no commits for 5 weeks
feature/login: 2 issues`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &gitkeeperFlags)
		cfg, err := optionInputs.runtimeConfig()
		if err != nil {
			wrapFatalln("resolve configuration", err)
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
		branch := gitkeeperFlags.branch.name
		against := gitkeeperFlags.branch.against
		if against == "" {
			against = cfg.BaseBranch
		}
		analyzer := core.NewAnalyzer(eng, cfg, core.AnalyzerLogger(zlog))
		report, err := analyzer.Health(ctx, branch, against, gitkeeperFlags.branch.maxAge)
		if err != nil {
			wrapFatalln("run health checks", err)
			return
		}
		for _, finding := range report.Findings {
			infoLogger.Printf("[%s] %s: %s", finding.Severity, finding.Category, finding.Message)
		}
		if report.Healthy() {
			infoLogger.Printf("%s: healthy", report.Branch)
			return
		}
		infoLogger.Printf("%s: %d issues", report.Branch, report.IssueCount())
	},
}

func init() {
	requireFlags(branchHealth,
		addBranchFlag(branchHealth),
	)
	addAgainstFlag(branchHealth)
	addMaxAgeFlag(branchHealth)

	branchCmd.AddCommand(branchHealth)
}
