package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/gitkeeper/gitkeeper/pkg/config"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Analyzer derives branch state on demand: divergence from a base,
// agreement with the remote copy, textual conflict prediction, and an
// aggregated health report. Nothing it computes is ever persisted.
type Analyzer struct {
	eng   engine.Engine
	cfg   config.Config
	clock func() time.Time
	l     *zap.Logger
	_     struct{}
}

func defaultAnalyzer(eng engine.Engine, cfg config.Config) *Analyzer {
	return &Analyzer{
		eng:   eng,
		cfg:   cfg,
		clock: time.Now,
		l:     zap.NewNop(),
	}
}

// NewAnalyzer builds an analyzer over the given engine.
func NewAnalyzer(eng engine.Engine, cfg config.Config, opts ...AnalyzerOption) *Analyzer {
	a := defaultAnalyzer(eng, cfg)
	for _, apply := range opts {
		apply(a)
	}
	return a
}

// checkRefs validates branch names and confirms they exist.
func (a *Analyzer) checkRefs(ctx context.Context, names ...string) error {
	for _, name := range names {
		if err := model.ValidateBranchName(name); err != nil {
			return wrapf(status.ErrValidation, "%v", err)
		}
	}
	for _, name := range names {
		exists, err := a.eng.RefExists(ctx, name)
		if err != nil {
			return engineErr("check branch", err)
		}
		if !exists {
			return wrapf(status.ErrNotFound, "branch %q does not exist", name)
		}
	}
	return nil
}

// Divergence counts the commits separating branch from base: ahead are
// on branch only, behind on base only.
func (a *Analyzer) Divergence(ctx context.Context, branch, base string) (model.BranchDivergence, error) {
	var none model.BranchDivergence
	if err := a.checkRefs(ctx, branch, base); err != nil {
		return none, err
	}

	ahead, err := a.eng.RevListCount(ctx, fmt.Sprintf("%s..%s", base, branch))
	if err != nil {
		return none, engineErr("count commits ahead", err)
	}
	behind, err := a.eng.RevListCount(ctx, fmt.Sprintf("%s..%s", branch, base))
	if err != nil {
		return none, engineErr("count commits behind", err)
	}
	return model.BranchDivergence{
		Branch: branch,
		Base:   base,
		Ahead:  ahead,
		Behind: behind,
	}, nil
}

// SyncState classifies the divergence of branch from base.
func (a *Analyzer) SyncState(ctx context.Context, branch, base string) (model.SyncState, error) {
	d, err := a.Divergence(ctx, branch, base)
	if err != nil {
		return model.InvalidSync, err
	}
	return d.State(), nil
}

// RemoteSync compares the branch tip with its remote-tracking copy.
func (a *Analyzer) RemoteSync(ctx context.Context, branch string) (model.RemoteStatus, error) {
	var none model.RemoteStatus
	if err := a.checkRefs(ctx, branch); err != nil {
		return none, err
	}

	local, err := a.eng.ResolveCommit(ctx, branch)
	if err != nil {
		return none, engineErr("resolve branch tip", err)
	}
	remote, found, err := a.eng.RemoteTip(ctx, branch)
	if err != nil {
		return none, engineErr("resolve remote tip", err)
	}
	return model.RemoteStatus{
		Branch:     branch,
		Found:      found,
		InSync:     found && local == remote,
		LocalHash:  local,
		RemoteHash: remote,
	}, nil
}

// PredictConflicts lists the paths changed on both sides since the
// merge base of a and b, sorted.
//
// This is a textual heuristic: it flags overlap, not certain merge
// conflicts. Renames, binary content and semantically incompatible
// changes can all make the real merge disagree with the prediction.
func (a *Analyzer) PredictConflicts(ctx context.Context, b1, b2 string) ([]string, error) {
	if err := a.checkRefs(ctx, b1, b2); err != nil {
		return nil, err
	}

	base, err := a.eng.MergeBase(ctx, b1, b2)
	if err != nil {
		return nil, engineErr("find merge base", err)
	}
	side1, err := a.eng.ChangedPaths(ctx, base, b1)
	if err != nil {
		return nil, engineErr("diff against merge base", err)
	}
	side2, err := a.eng.ChangedPaths(ctx, base, b2)
	if err != nil {
		return nil, engineErr("diff against merge base", err)
	}

	overlap := lo.Intersect(side1, side2)
	sort.Strings(overlap)
	a.l.Debug("conflict prediction",
		zap.String("a", b1),
		zap.String("b", b2),
		zap.String("merge_base", shortHash(base)),
		zap.Int("overlap", len(overlap)),
	)
	return overlap, nil
}

// Health aggregates one pass of branch checks against base into a
// report. maxAgeDays bounds how long a branch may go without commits
// before it counts as stale; zero or negative falls back to the
// configured threshold.
func (a *Analyzer) Health(ctx context.Context, branch, base string, maxAgeDays int) (model.HealthReport, error) {
	var none model.HealthReport
	if err := a.checkRefs(ctx, branch, base); err != nil {
		return none, err
	}
	if maxAgeDays <= 0 {
		maxAgeDays = a.cfg.StaleDays
	}

	report := model.HealthReport{Branch: branch}

	remote, err := a.RemoteSync(ctx, branch)
	if err != nil {
		return none, err
	}
	switch {
	case !remote.Found:
		report.Add(model.CategoryRemoteSync, model.SeverityInfo,
			"no copy of %q on remote %q", branch, a.cfg.Remote)
	case !remote.InSync:
		report.Add(model.CategoryRemoteSync, model.SeverityWarning,
			"local tip %s differs from remote tip %s", shortHash(remote.LocalHash), shortHash(remote.RemoteHash))
	}

	d, err := a.Divergence(ctx, branch, base)
	if err != nil {
		return none, err
	}
	if d.Behind > 0 {
		report.Add(model.CategoryBaseCurrency, model.SeverityWarning,
			"behind %q by %d commits", base, d.Behind)
	}

	last, err := a.eng.Log1(ctx, branch)
	if err != nil {
		return none, engineErr("read last commit", err)
	}
	idle := a.clock().UTC().Sub(last.Date)
	if idle > time.Duration(maxAgeDays)*24*time.Hour {
		report.Add(model.CategoryStaleness, model.SeverityWarning,
			"no commits for %s (threshold %d days)", units.HumanDuration(idle), maxAgeDays)
	}

	current, err := a.eng.CurrentBranch(ctx)
	if err != nil {
		return none, engineErr("current branch", err)
	}
	if current == branch {
		clean, err := a.eng.WorkingTreeClean(ctx)
		if err != nil {
			return none, engineErr("working tree status", err)
		}
		if !clean {
			report.Add(model.CategoryWorkingTree, model.SeverityWarning,
				"working tree has uncommitted changes")
		}
	}

	if branch != base {
		conflicts, err := a.PredictConflicts(ctx, branch, base)
		if err != nil {
			return none, err
		}
		if len(conflicts) > 0 {
			report.Add(model.CategoryConflictRisk, model.SeverityWarning,
				"%d paths changed on both %q and %q: %s",
				len(conflicts), branch, base, strings.Join(conflicts, ", "))
		}
	}

	a.l.Info("health pass done",
		zap.String("branch", branch),
		zap.String("base", base),
		zap.Int("findings", len(report.Findings)),
		zap.Int("issues", report.IssueCount()),
	)
	return report, nil
}
