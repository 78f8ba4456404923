package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gitkeeper/gitkeeper/pkg/config"
	context2 "github.com/gitkeeper/gitkeeper/pkg/context"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"go.uber.org/zap"
)

// Merger orchestrates a governed merge: conflict prediction first, a
// mandatory backup of the target next, and only then the strategy's
// mutating engine calls.
//
// A failed engine call aborts the operation where it stands — there is
// no automatic rollback, and for the rebase strategy that can mean a
// repository left mid-rebase. The backup taken before the first
// mutation is the supported way back.
type Merger struct {
	stores   context2.Stores
	eng      engine.Engine
	cfg      config.Config
	clock    func() time.Time
	l        *zap.Logger
	backups  *BackupManager
	analyzer *Analyzer
	_        struct{}
}

func defaultMerger(stores context2.Stores, eng engine.Engine, cfg config.Config) *Merger {
	return &Merger{
		stores: stores,
		eng:    eng,
		cfg:    cfg,
		clock:  time.Now,
		l:      zap.NewNop(),
	}
}

// NewMerger builds a merger over the given stores and engine.
func NewMerger(stores context2.Stores, eng engine.Engine, cfg config.Config, opts ...MergeOption) *Merger {
	m := defaultMerger(stores, eng, cfg)
	for _, apply := range opts {
		apply(m)
	}
	m.backups = NewBackupManager(stores, eng, cfg, BackupClock(m.clock), BackupLogger(m.l))
	m.analyzer = NewAnalyzer(eng, cfg, AnalyzerLogger(m.l))
	return m
}

// mergeOp is the transient record of one orchestrated merge. It lives
// for the duration of the call and surfaces in logs, never in a store.
type mergeOp struct {
	source    string
	target    string
	strategy  model.MergeStrategy
	state     model.MergeState
	conflicts []string
	backupID  string
	_         struct{}
}

func (m *Merger) transition(op *mergeOp, to model.MergeState) {
	m.l.Info("merge state",
		zap.String("source", op.source),
		zap.String("target", op.target),
		zap.String("strategy", op.strategy.String()),
		zap.String("from", op.state.String()),
		zap.String("to", to.String()),
	)
	op.state = to
}

func (m *Merger) abort(op *mergeOp, err error) error {
	m.transition(op, model.MergeFailed)
	m.l.Warn("merge aborted",
		zap.String("source", op.source),
		zap.String("target", op.target),
		zap.String("backup_id", op.backupID),
		zap.Error(err),
	)
	return err
}

// Execute merges source into target using the named strategy, one of
// "merge", "rebase" or "squash".
//
// Predicted conflicts halt the operation before any mutation unless
// force acknowledges them. A backup of target is taken before the
// first mutating call on every path that reaches one; its id is in the
// returned summary.
func (m *Merger) Execute(ctx context.Context, source, target, strategy string, actor model.Contributor, force bool) (model.MergeSummary, error) {
	var none model.MergeSummary

	parsed, err := model.ParseMergeStrategy(strategy)
	if err != nil {
		return none, wrapf(status.ErrValidation, "merge: %v", err)
	}
	if err := model.ValidateBranchName(source); err != nil {
		return none, wrapf(status.ErrValidation, "merge source: %v", err)
	}
	if err := model.ValidateBranchName(target); err != nil {
		return none, wrapf(status.ErrValidation, "merge target: %v", err)
	}
	if source == target {
		return none, wrapf(status.ErrValidation, "cannot merge %q into itself", source)
	}
	for _, name := range []string{source, target} {
		exists, err := m.eng.RefExists(ctx, name)
		if err != nil {
			return none, engineErr("check branch", err)
		}
		if !exists {
			return none, wrapf(status.ErrNotFound, "branch %q does not exist", name)
		}
	}

	op := &mergeOp{source: source, target: target, strategy: parsed, state: model.MergeIdle}

	m.transition(op, model.MergeConflictCheck)
	conflicts, err := m.analyzer.PredictConflicts(ctx, source, target)
	if err != nil {
		return none, m.abort(op, err)
	}
	op.conflicts = conflicts
	if len(conflicts) > 0 && !force {
		m.transition(op, model.MergeAwaitingConfirmation)
		return none, wrapf(status.ErrConfirmationRequired,
			"merging %q into %q may conflict on %d paths: %s",
			source, target, len(conflicts), strings.Join(conflicts, ", "))
	}

	m.transition(op, model.MergeBackingUp)
	backup, err := m.backups.Create(ctx, target,
		fmt.Sprintf("pre-merge of %s into %s (%s)", source, target, parsed), actor)
	if err != nil {
		return none, m.abort(op, err)
	}
	op.backupID = backup.ID

	m.transition(op, model.MergeExecuting)
	if err := m.runStrategy(ctx, op); err != nil {
		return none, m.abort(op, err)
	}

	resulting, err := m.eng.ResolveCommit(ctx, target)
	if err != nil {
		return none, m.abort(op, engineErr("resolve merged tip", err))
	}
	m.transition(op, model.MergeDone)

	summary := model.MergeSummary{
		Source:          source,
		Target:          target,
		Strategy:        parsed,
		BackupID:        backup.ID,
		ResultingCommit: resulting,
	}
	m.l.Info("merge done",
		zap.String("source", source),
		zap.String("target", target),
		zap.String("strategy", parsed.String()),
		zap.String("commit", shortHash(resulting)),
		zap.String("backup_id", backup.ID),
	)
	return summary, nil
}

// runStrategy performs the mutating engine calls of one strategy. The
// caller has already backed the target up.
func (m *Merger) runStrategy(ctx context.Context, op *mergeOp) error {
	switch op.strategy {
	case model.StrategyRebase:
		// the rebase rewrites source; a failure here leaves the engine
		// mid-rebase and the merge step is never attempted
		if err := m.eng.Rebase(ctx, op.source, op.target); err != nil {
			return engineErr("rebase source", err)
		}
		if err := m.eng.Checkout(ctx, op.target); err != nil {
			return engineErr("checkout target", err)
		}
		if err := m.eng.Merge(ctx, op.source, engine.FFOnly); err != nil {
			return engineErr("fast-forward target", err)
		}
	case model.StrategySquash:
		if err := m.eng.Checkout(ctx, op.target); err != nil {
			return engineErr("checkout target", err)
		}
		if err := m.eng.Merge(ctx, op.source, engine.Squash); err != nil {
			return engineErr("squash", err)
		}
		if err := m.eng.Commit(ctx, fmt.Sprintf("merge %s into %s (squash)", op.source, op.target)); err != nil {
			return engineErr("commit squash", err)
		}
	default:
		if err := m.eng.Checkout(ctx, op.target); err != nil {
			return engineErr("checkout target", err)
		}
		if err := m.eng.Merge(ctx, op.source, engine.MergeCommit); err != nil {
			return engineErr("merge", err)
		}
	}
	return nil
}

// Revert adds a commit on target undoing the given merge commit. It
// never rewrites history; the undone commit stays in the log.
func (m *Merger) Revert(ctx context.Context, target, commit string, force bool) error {
	if err := model.ValidateBranchName(target); err != nil {
		return wrapf(status.ErrValidation, "revert target: %v", err)
	}
	exists, err := m.eng.RefExists(ctx, target)
	if err != nil {
		return engineErr("check branch", err)
	}
	if !exists {
		return wrapf(status.ErrNotFound, "branch %q does not exist", target)
	}
	resolved, err := m.eng.ResolveCommit(ctx, commit)
	if err != nil {
		return wrapf(status.ErrValidation, "commit %q does not resolve", commit)
	}
	if !force {
		return wrapf(status.ErrConfirmationRequired,
			"reverting %s on %q adds a commit undoing it", shortHash(resolved), target)
	}

	if err := m.eng.Checkout(ctx, target); err != nil {
		return engineErr("checkout target", err)
	}
	// merge commits are undone against their first parent
	if err := m.eng.Revert(ctx, resolved, 1); err != nil {
		return engineErr("revert", err)
	}
	m.l.Info("merge reverted",
		zap.String("target", target),
		zap.String("commit", shortHash(resolved)),
	)
	return nil
}
