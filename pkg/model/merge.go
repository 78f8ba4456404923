package model

import "fmt"

// MergeStrategy selects how source commits land on the target branch.
type MergeStrategy string

const (
	// StrategyMerge produces a merge commit joining both histories.
	StrategyMerge MergeStrategy = "merge"
	// StrategyRebase replays source commits onto the target, then fast-forwards.
	StrategyRebase MergeStrategy = "rebase"
	// StrategySquash collapses the source history into a single commit.
	StrategySquash MergeStrategy = "squash"
)

// ParseMergeStrategy maps a user supplied string to a strategy.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch MergeStrategy(s) {
	case StrategyMerge, StrategyRebase, StrategySquash:
		return MergeStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown merge strategy %q (want merge, rebase or squash)", s)
	}
}

func (m MergeStrategy) String() string {
	return string(m)
}

// MergeState tracks the progress of a merge operation. The state lives
// only for the duration of the call and is surfaced in logs and errors,
// never persisted.
type MergeState int

const (
	// MergeIdle is the zero state before the operation starts.
	MergeIdle MergeState = iota
	// MergeConflictCheck runs the pre-merge conflict prediction.
	MergeConflictCheck
	// MergeAwaitingConfirmation halts for the caller to acknowledge predicted conflicts.
	MergeAwaitingConfirmation
	// MergeBackingUp snapshots the target branch before any mutation.
	MergeBackingUp
	// MergeExecuting performs the strategy on the target branch.
	MergeExecuting
	// MergeDone is terminal success.
	MergeDone
	// MergeFailed is terminal failure. The backup taken in MergeBackingUp remains valid.
	MergeFailed
)

func (s MergeState) String() string {
	switch s {
	case MergeIdle:
		return "idle"
	case MergeConflictCheck:
		return "conflict-check"
	case MergeAwaitingConfirmation:
		return "awaiting-confirmation"
	case MergeBackingUp:
		return "backing-up"
	case MergeExecuting:
		return "executing"
	case MergeDone:
		return "done"
	case MergeFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MergeSummary reports a completed merge.
type MergeSummary struct {
	Source          string        `json:"source" yaml:"source"`
	Target          string        `json:"target" yaml:"target"`
	Strategy        MergeStrategy `json:"strategy" yaml:"strategy"`
	BackupID        string        `json:"backupId" yaml:"backupId"`
	ResultingCommit string        `json:"resultingCommit" yaml:"resultingCommit"`
}

func (m MergeSummary) String() string {
	return fmt.Sprintf("merged %s into %s (%s), commit %s, backup %s",
		m.Source, m.Target, m.Strategy, m.ResultingCommit, m.BackupID)
}
