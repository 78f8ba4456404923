package cmd

import (
	"fmt"
	"time"

	config2 "github.com/gitkeeper/gitkeeper/pkg/config"
	context2 "github.com/gitkeeper/gitkeeper/pkg/context"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/logger"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/gitkeeper/gitkeeper/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flagsT struct {
	root struct {
		repoPath string
		stateDir string
		remote   string
		base     string
		logLevel string
	}
	contributor struct {
		name  string
		email string
	}
	lock struct {
		branch   string
		reason   string
		duration string
		force    bool
	}
	backup struct {
		branch      string
		description string
		id          string
		olderThan   int
		force       bool
	}
	branch struct {
		name    string
		kind    string
		from    string
		against string
		maxAge  int
		force   bool
	}
	merge struct {
		source   string
		target   string
		strategy string
		commit   string
		force    bool
	}
	core struct {
		template string
	}
}

var gitkeeperFlags = flagsT{}

func addRepoFlag(cmd *cobra.Command) string {
	c := "repo"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&gitkeeperFlags.root.repoPath, c, "",
			"Path to the governed git repository (default: the current directory)")
	}
	return c
}

func addStateDirFlag(cmd *cobra.Command) string {
	c := "state-dir"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&gitkeeperFlags.root.stateDir, c, "",
			"Directory holding gitkeeper state (default: .gitkeeper under the repository)")
	}
	return c
}

func addRemoteFlag(cmd *cobra.Command) string {
	c := "remote"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&gitkeeperFlags.root.remote, c, "",
			`The remote tracked by sync analysis (default "origin")`)
	}
	return c
}

func addBaseFlag(cmd *cobra.Command) string {
	c := "base"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&gitkeeperFlags.root.base, c, "",
			`The integration branch merges target by default (default "main")`)
	}
	return c
}

func addLogLevelFlag(cmd *cobra.Command) string {
	c := "loglevel"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&gitkeeperFlags.root.logLevel, c, "",
			`The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug (default "info")`)
	}
	return c
}

func addContributorNameFlag(cmd *cobra.Command) string {
	c := "name"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.contributor.name, c, "",
			"The name of the contributor running the command")
	}
	return c
}

func addContributorEmailFlag(cmd *cobra.Command) string {
	c := "email"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.contributor.email, c, "",
			"The email of the contributor running the command")
	}
	return c
}

func addLockBranchFlag(cmd *cobra.Command) string {
	c := "branch"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.lock.branch, c, "",
			"The branch the lock applies to")
	}
	return c
}

func addLockReasonFlag(cmd *cobra.Command) string {
	c := "reason"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.lock.reason, c, "",
			`Why the branch is locked. Example: "release 1.4 hardening"`)
	}
	return c
}

func addLockDurationFlag(cmd *cobra.Command) string {
	c := "duration"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.lock.duration, c, "",
			`How long the lock holds, as a duration. Examples: "45m", "24h" (default "24h")`)
	}
	return c
}

func addLockForceFlag(cmd *cobra.Command) string {
	c := "force"
	if cmd != nil {
		cmd.Flags().BoolVar(&gitkeeperFlags.lock.force, c, false,
			"Take over or release the lock even when held by someone else")
	}
	return c
}

func addBackupBranchFlag(cmd *cobra.Command) string {
	c := "branch"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.backup.branch, c, "",
			"The branch to snapshot")
	}
	return c
}

func addBackupDescriptionFlag(cmd *cobra.Command) string {
	c := "description"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.backup.description, c, "",
			"A free form description of the backup")
	}
	return c
}

func addBackupIDFlag(cmd *cobra.Command) string {
	c := "backup"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.backup.id, c, "",
			`The backup id, as reported by "gitkeeper backup list"`)
	}
	return c
}

func addOlderThanFlag(cmd *cobra.Command) string {
	c := "older-than"
	if cmd != nil {
		cmd.Flags().IntVar(&gitkeeperFlags.backup.olderThan, c, 0,
			"Remove backups older than this many days (default: the configured retention)")
	}
	return c
}

func addBackupForceFlag(cmd *cobra.Command) string {
	c := "force"
	if cmd != nil {
		cmd.Flags().BoolVar(&gitkeeperFlags.backup.force, c, false,
			"Restore without confirmation, protected branches included")
	}
	return c
}

func addBranchNameFlag(cmd *cobra.Command) string {
	c := "name"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.branch.name, c, "",
			`The short branch name, without the kind prefix. Example: "login-retries"`)
	}
	return c
}

func addBranchKindFlag(cmd *cobra.Command) string {
	c := "kind"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.branch.kind, c, "feature",
			`The branch kind: "feature", "bugfix" or "hotfix"`)
	}
	return c
}

func addBranchFromFlag(cmd *cobra.Command) string {
	c := "from"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.branch.from, c, "",
			"The commit or branch the new branch starts from (default: the base branch)")
	}
	return c
}

func addBranchFlag(cmd *cobra.Command) string {
	c := "branch"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.branch.name, c, "",
			"The branch to inspect")
	}
	return c
}

func addAgainstFlag(cmd *cobra.Command) string {
	c := "against"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.branch.against, c, "",
			"The branch compared against (default: the base branch)")
	}
	return c
}

func addMaxAgeFlag(cmd *cobra.Command) string {
	c := "max-age"
	if cmd != nil {
		cmd.Flags().IntVar(&gitkeeperFlags.branch.maxAge, c, 0,
			"Days without a commit before a branch counts as stale (default: the configured threshold)")
	}
	return c
}

func addBranchForceFlag(cmd *cobra.Command) string {
	c := "force"
	if cmd != nil {
		cmd.Flags().BoolVar(&gitkeeperFlags.branch.force, c, false,
			"Recreate an existing branch or shadow a protected name")
	}
	return c
}

func addMergeSourceFlag(cmd *cobra.Command) string {
	c := "source"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.merge.source, c, "",
			"The branch whose commits land on the target")
	}
	return c
}

func addMergeTargetFlag(cmd *cobra.Command) string {
	c := "target"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.merge.target, c, "",
			"The branch merged into (default: the base branch)")
	}
	return c
}

func addMergeStrategyFlag(cmd *cobra.Command) string {
	c := "strategy"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.merge.strategy, c, "merge",
			`How source commits land on the target: "merge", "rebase" or "squash"`)
	}
	return c
}

func addMergeCommitFlag(cmd *cobra.Command) string {
	c := "commit"
	if cmd != nil {
		cmd.Flags().StringVar(&gitkeeperFlags.merge.commit, c, "",
			"The merge commit to undo")
	}
	return c
}

func addMergeForceFlag(cmd *cobra.Command) string {
	c := "force"
	if cmd != nil {
		cmd.Flags().BoolVar(&gitkeeperFlags.merge.force, c, false,
			"Proceed despite predicted conflicts or confirmation gates")
	}
	return c
}

func addTemplateFlag(cmd *cobra.Command) string {
	c := "format"
	if cmd != nil {
		cmd.PersistentFlags().StringVar(&gitkeeperFlags.core.template, c, "",
			`Pretty-print gitkeeper objects using a Go template. Use '{{ printf "%#v" . }}' to explore available fields`)
	}
	return c
}

/** combined config (file + env var) and parameters (pflags) */

type cliOptionInputs struct {
	config *CLIConfig
	params *flagsT
}

func newCliOptionInputs(config *CLIConfig, params *flagsT) *cliOptionInputs {
	return &cliOptionInputs{
		config: config,
		params: params,
	}
}

/** combined config and parameters to internal objects */

// runtimeConfig resolves the effective gitkeeper configuration from
// flags merged with the config file. Explicit flags win.
func (in *cliOptionInputs) runtimeConfig() (config2.Config, error) {
	flags := in.params
	opts := []config2.Option{
		config2.Remote(flags.root.remote),
		config2.BaseBranch(flags.root.base),
		config2.RetentionDays(in.config.Retention),
		config2.StaleDays(in.config.Stale),
		config2.LogLevel(flags.root.logLevel),
	}
	if flags.root.repoPath != "" {
		repo, err := sanitizePath(flags.root.repoPath)
		if err != nil {
			return config2.Config{}, fmt.Errorf("failed to sanitize repo path: %s: %w", flags.root.repoPath, err)
		}
		opts = append(opts, config2.Repo(repo))
	}
	if flags.root.stateDir != "" {
		state, err := sanitizePath(flags.root.stateDir)
		if err != nil {
			return config2.Config{}, fmt.Errorf("failed to sanitize state dir: %s: %w", flags.root.stateDir, err)
		}
		opts = append(opts, config2.StateDir(state))
	}
	if len(in.config.Protected) > 0 {
		opts = append(opts, config2.ProtectedBranches(in.config.Protected...))
	}
	if flags.lock.duration != "" {
		d, err := time.ParseDuration(flags.lock.duration)
		if err != nil {
			return config2.Config{}, fmt.Errorf("invalid lock duration %q: %w", flags.lock.duration, err)
		}
		opts = append(opts, config2.LockDuration(d))
	}
	return config2.New(opts...)
}

// stateStores mounts the lock and backup stores under the state
// directory. Locks use the plain store so create-if-absent stays a real
// O_EXCL create; backup records go through the atomic store so readers
// never observe half-written descriptors or artifacts.
func (in *cliOptionInputs) stateStores(cfg config2.Config) (context2.Stores, error) {
	if err := createPath(cfg.LocksPath()); err != nil {
		return context2.New(), fmt.Errorf("ensure locks directory: %w", err)
	}
	if err := createPath(cfg.BackupsPath()); err != nil {
		return context2.New(), fmt.Errorf("ensure backups directory: %w", err)
	}
	locks := localfs.New(afero.NewBasePathFs(afero.NewOsFs(), cfg.LocksPath()))
	backups, err := localfs.NewAtomic(afero.NewBasePathFs(afero.NewOsFs(), cfg.BackupsPath()))
	if err != nil {
		return context2.New(), fmt.Errorf("prepare backups store: %w", err)
	}
	// descriptor and artifact live side by side in one directory per backup
	return context2.NewStores(locks, backups, backups), nil
}

// gitEngine builds the git CLI engine for the governed repository.
func (in *cliOptionInputs) gitEngine(cfg config2.Config) (engine.Engine, error) {
	zlog, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	DieIfNotDirectory(cfg.RepoPath)
	eng, err := engine.New(cfg.RepoPath,
		engine.WithRemote(cfg.Remote),
		engine.WithLogger(zlog),
	)
	if err != nil {
		return nil, err
	}
	return eng, nil
}

func (in *cliOptionInputs) getLogger() (*zap.Logger, error) {
	var err error
	in.config.onceLogger.Do(func() {
		level := in.params.root.logLevel
		if level == "" {
			level = logger.LogLevelInfo
		}
		in.config.logger, err = logger.GetLogger(level)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set log level: %v", err)
	}
	return in.config.logger, nil
}

func (in *cliOptionInputs) contributor() (model.Contributor, error) {
	flags := in.params
	if flags.contributor.name == "" {
		return model.Contributor{},
			fmt.Errorf(`could not resolve contributor: must be present as --name flag, as "name" in the config file or as GITKEEPER_NAME environment`)
	}
	return model.Contributor{
		Name:  flags.contributor.name,
		Email: flags.contributor.email,
	}, nil
}

/** misc util */

// requireFlags sets a flag (local to the command or inherited) as required
func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}
