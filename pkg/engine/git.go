package engine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Runner executes one git invocation. Splitting this out keeps GitCLI
// testable without a git binary or a repository on disk.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner runs git as a subprocess.
type ExecRunner struct{}

// Run shells out to git in the given directory and captures both
// output streams.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

const defaultCommitCacheSize = 128

// GitCLI implements Engine on top of the git command line.
type GitCLI struct {
	dir     string
	remote  string
	runner  Runner
	l       *zap.Logger
	commits *lru.Cache[string, CommitInfo]

	cacheSize int
	_         struct{}
}

// Option tweaks the construction of a GitCLI.
type Option func(*GitCLI)

// WithRunner substitutes the subprocess runner, e.g. with a fake.
func WithRunner(r Runner) Option {
	return func(g *GitCLI) {
		if r != nil {
			g.runner = r
		}
	}
}

// WithRemote sets the remote consulted by RemoteTip.
func WithRemote(name string) Option {
	return func(g *GitCLI) {
		if name != "" {
			g.remote = name
		}
	}
}

// WithLogger sets a logger for command tracing.
func WithLogger(l *zap.Logger) Option {
	return func(g *GitCLI) {
		if l != nil {
			g.l = l
		}
	}
}

// WithCommitCacheSize bounds the immutable commit metadata cache.
func WithCommitCacheSize(size int) Option {
	return func(g *GitCLI) {
		if size > 0 {
			g.cacheSize = size
		}
	}
}

// New builds a git CLI engine rooted at the given repository path.
func New(dir string, opts ...Option) (*GitCLI, error) {
	g := &GitCLI{
		dir:       dir,
		remote:    "origin",
		runner:    ExecRunner{},
		l:         zap.NewNop(),
		cacheSize: defaultCommitCacheSize,
	}
	for _, apply := range opts {
		apply(g)
	}
	cache, err := lru.New[string, CommitInfo](g.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("commit cache: %w", err)
	}
	g.commits = cache
	return g, nil
}

var _ Engine = &GitCLI{}

// run executes git and folds failures into a GitError.
func (g *GitCLI) run(ctx context.Context, args ...string) (string, error) {
	start := time.Now()
	stdout, stderr, err := g.runner.Run(ctx, g.dir, args...)
	g.l.Debug("git",
		zap.Strings("args", args),
		zap.Duration("took", time.Since(start)),
		zap.Bool("failed", err != nil),
	)
	if err != nil {
		return "", &GitError{
			Op:     args[0],
			Args:   args[1:],
			Stderr: strings.TrimSpace(stderr),
			Err:    err,
		}
	}
	return stdout, nil
}

func (g *GitCLI) RefExists(ctx context.Context, name string) (bool, error) {
	_, stderr, err := g.runner.Run(ctx, g.dir, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	// --quiet: a plain miss exits non-zero and says nothing
	if strings.TrimSpace(stderr) == "" {
		return false, nil
	}
	return false, &GitError{Op: "show-ref", Args: []string{name}, Stderr: strings.TrimSpace(stderr), Err: err}
}

func (g *GitCLI) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (g *GitCLI) CreateBranch(ctx context.Context, name, from string) error {
	_, err := g.run(ctx, "branch", name, from)
	return err
}

func (g *GitCLI) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := g.run(ctx, "branch", flag, name)
	return err
}

func (g *GitCLI) Checkout(ctx context.Context, name string) error {
	_, err := g.run(ctx, "checkout", name)
	return err
}

func (g *GitCLI) Merge(ctx context.Context, name string, mode MergeMode) error {
	var args []string
	switch mode {
	case FFOnly:
		args = []string{"merge", "--ff-only", name}
	case Squash:
		args = []string{"merge", "--squash", name}
	default:
		args = []string{"merge", "--no-ff", "--no-edit", name}
	}
	_, err := g.run(ctx, args...)
	return err
}

func (g *GitCLI) Rebase(ctx context.Context, branch, onto string) error {
	_, err := g.run(ctx, "rebase", onto, branch)
	return err
}

func (g *GitCLI) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

func (g *GitCLI) Revert(ctx context.Context, commit string, parentIndex int) error {
	args := []string{"revert", "--no-edit"}
	if parentIndex > 0 {
		args = append(args, "-m", strconv.Itoa(parentIndex))
	}
	args = append(args, commit)
	_, err := g.run(ctx, args...)
	return err
}

func (g *GitCLI) MergeBase(ctx context.Context, a, b string) (string, error) {
	out, err := g.run(ctx, "merge-base", a, b)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (g *GitCLI) ChangedPaths(ctx context.Context, from, to string) ([]string, error) {
	out, err := g.run(ctx, "diff", "--name-only", from, to)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

func (g *GitCLI) RevListCount(ctx context.Context, revisionRange string) (int, error) {
	out, err := g.run(ctx, "rev-list", "--count", revisionRange)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, &GitError{Op: "rev-list", Args: []string{"--count", revisionRange}, Stderr: out, Err: err}
	}
	return n, nil
}

func (g *GitCLI) ResolveCommit(ctx context.Context, rev string) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--verify", rev+"^{commit}")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// logFormat separates fields with the unit separator, which cannot
// appear in author names or subjects.
const logFormat = "--format=%H%x1f%an%x1f%aI%x1f%s"

func (g *GitCLI) Log1(ctx context.Context, rev string) (CommitInfo, error) {
	hash, err := g.ResolveCommit(ctx, rev)
	if err != nil {
		return CommitInfo{}, err
	}
	// commits are immutable: cache by resolved hash
	if ci, ok := g.commits.Get(hash); ok {
		return ci, nil
	}
	out, err := g.run(ctx, "log", "-1", logFormat, hash)
	if err != nil {
		return CommitInfo{}, err
	}
	fields := strings.SplitN(strings.TrimRight(out, "\n"), "\x1f", 4)
	if len(fields) != 4 {
		return CommitInfo{}, &GitError{
			Op:     "log",
			Args:   []string{"-1", hash},
			Stderr: fmt.Sprintf("unexpected output: %q", out),
			Err:    fmt.Errorf("malformed log record"),
		}
	}
	date, err := time.Parse(time.RFC3339, fields[2])
	if err != nil {
		return CommitInfo{}, &GitError{Op: "log", Args: []string{"-1", hash}, Stderr: fields[2], Err: err}
	}
	ci := CommitInfo{
		Hash:    fields[0],
		Author:  fields[1],
		Date:    date,
		Subject: fields[3],
	}
	g.commits.Add(hash, ci)
	return ci, nil
}

func (g *GitCLI) BundleCreate(ctx context.Context, path string, refs []string) error {
	args := []string{"bundle", "create", path}
	if len(refs) == 0 {
		args = append(args, "--all")
	} else {
		args = append(args, refs...)
	}
	_, err := g.run(ctx, args...)
	return err
}

func (g *GitCLI) BundleVerify(ctx context.Context, path string) error {
	_, err := g.run(ctx, "bundle", "verify", path)
	return err
}

func (g *GitCLI) BundleFetch(ctx context.Context, path, branch, targetRef string) error {
	refspec := fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, targetRef)
	_, err := g.run(ctx, "fetch", path, refspec)
	return err
}

func (g *GitCLI) RemoteTip(ctx context.Context, branch string) (string, bool, error) {
	ref := fmt.Sprintf("refs/remotes/%s/%s", g.remote, branch)
	stdout, stderr, err := g.runner.Run(ctx, g.dir, "rev-parse", "--verify", "--quiet", ref)
	if err == nil {
		return strings.TrimSpace(stdout), true, nil
	}
	// --quiet: no remote-tracking ref exits non-zero and says nothing
	if strings.TrimSpace(stderr) == "" {
		return "", false, nil
	}
	return "", false, &GitError{Op: "rev-parse", Args: []string{ref}, Stderr: strings.TrimSpace(stderr), Err: err}
}

func (g *GitCLI) WorkingTreeClean(ctx context.Context) (bool, error) {
	out, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

func (g *GitCLI) String() string {
	return "git@" + g.dir
}
