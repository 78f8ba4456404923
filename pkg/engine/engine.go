// Package engine abstracts the version control system gitkeeper
// governs. The one real implementation shells out to the git CLI;
// everything above this package talks to the Engine interface and can
// be tested against a mock.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MergeMode selects how an engine-level merge integrates a branch into
// the branch currently checked out.
type MergeMode int

const (
	// MergeCommit records a merge commit even when fast-forward is
	// possible.
	MergeCommit MergeMode = iota

	// FFOnly fails unless the merge is a pure fast-forward.
	FFOnly

	// Squash stages the squashed changes without committing them.
	Squash
)

func (m MergeMode) String() string {
	switch m {
	case FFOnly:
		return "ff-only"
	case Squash:
		return "squash"
	default:
		return "merge-commit"
	}
}

// CommitInfo carries the metadata of a single commit.
type CommitInfo struct {
	Hash    string
	Author  string
	Date    time.Time
	Subject string
	_       struct{}
}

//go:generate moq -out ./mockengine/engine.go -pkg mockengine . Engine

// Engine is the contract gitkeeper requires from a version control
// system. All calls are synchronous and honor context cancellation.
//
// Failures carry enough diagnostic to be reported as-is; callers
// classify them wholesale rather than parsing them.
type Engine interface {
	// RefExists reports whether a local branch exists. A missing branch
	// is not an error.
	RefExists(ctx context.Context, name string) (bool, error)

	// CurrentBranch names the branch checked out in the working tree,
	// or "HEAD" when detached.
	CurrentBranch(ctx context.Context) (string, error)

	// CreateBranch creates a branch at the given starting point, a
	// branch name or commit hash.
	CreateBranch(ctx context.Context, name, from string) error

	// DeleteBranch removes a branch; force also removes unmerged ones.
	DeleteBranch(ctx context.Context, name string, force bool) error

	// Checkout switches the working tree to a branch or commit.
	Checkout(ctx context.Context, name string) error

	// Merge integrates name into the current branch.
	Merge(ctx context.Context, name string, mode MergeMode) error

	// Rebase replays branch onto the given base.
	Rebase(ctx context.Context, branch, onto string) error

	// Commit records staged changes with the given message.
	Commit(ctx context.Context, message string) error

	// Revert records a new commit undoing the given one. For merge
	// commits parentIndex picks the mainline parent (1-based); zero
	// means an ordinary commit.
	Revert(ctx context.Context, commit string, parentIndex int) error

	// MergeBase resolves the best common ancestor of two revisions.
	MergeBase(ctx context.Context, a, b string) (string, error)

	// ChangedPaths lists the files changed between two revisions.
	ChangedPaths(ctx context.Context, from, to string) ([]string, error)

	// RevListCount counts the commits selected by a revision range such
	// as "main..feature/login".
	RevListCount(ctx context.Context, revisionRange string) (int, error)

	// ResolveCommit resolves any revision to a full commit hash.
	ResolveCommit(ctx context.Context, rev string) (string, error)

	// Log1 describes the commit a revision points at.
	Log1(ctx context.Context, rev string) (CommitInfo, error)

	// BundleCreate writes a bundle of the given refs to path; with no
	// refs the bundle captures every ref in the repository.
	BundleCreate(ctx context.Context, path string, refs []string) error

	// BundleVerify checks a bundle file for completeness.
	BundleVerify(ctx context.Context, path string) error

	// BundleFetch fetches one branch out of a bundle file into the
	// given local ref.
	BundleFetch(ctx context.Context, path, branch, targetRef string) error

	// RemoteTip resolves the remote-tracking tip of a branch. found is
	// false when no remote-tracking ref exists.
	RemoteTip(ctx context.Context, branch string) (hash string, found bool, err error)

	// WorkingTreeClean reports whether the working tree has no pending
	// changes.
	WorkingTreeClean(ctx context.Context) (bool, error)
}

// GitError describes a failed git invocation. The stderr tail usually
// pinpoints the cause better than the exit status.
type GitError struct {
	Op     string
	Args   []string
	Stderr string
	Err    error
	_      struct{}
}

func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %s", e.Op, firstLine(e.Stderr))
	}
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
