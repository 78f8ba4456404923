package core

import (
	"context"

	"github.com/gitkeeper/gitkeeper/pkg/config"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/model"
)

// CreateBranch scaffolds a typed branch: the short name is qualified by
// the kind's prefix (e.g. feature/login), created at the given starting
// point and checked out. An empty starting point means the configured
// base branch.
//
// Names shadowing a protected pattern and names already taken are
// conflicts; force overrides both, recreating an existing branch at the
// starting point.
func CreateBranch(ctx context.Context, eng engine.Engine, cfg config.Config, kind model.BranchKind, shortName, from string, force bool) (string, error) {
	if shortName == "" {
		return "", wrapf(status.ErrValidation, "create branch: empty name")
	}
	qualified := kind.QualifiedName(shortName)
	if err := model.ValidateBranchName(qualified); err != nil {
		return "", wrapf(status.ErrValidation, "create branch: %v", err)
	}
	if !force && cfg.IsProtected(qualified) {
		return "", wrapf(status.ErrConflict, "branch %q would shadow a protected name", qualified)
	}

	if from == "" {
		from = cfg.BaseBranch
	}
	if _, err := eng.ResolveCommit(ctx, from); err != nil {
		return "", wrapf(status.ErrNotFound, "starting point %q does not resolve", from)
	}

	exists, err := eng.RefExists(ctx, qualified)
	if err != nil {
		return "", engineErr("check branch", err)
	}
	if exists {
		if !force {
			return "", wrapf(status.ErrConflict, "branch %q already exists", qualified)
		}
		if err := eng.DeleteBranch(ctx, qualified, true); err != nil {
			return "", engineErr("recreate branch", err)
		}
	}
	if err := eng.CreateBranch(ctx, qualified, from); err != nil {
		return "", engineErr("create branch", err)
	}
	if err := eng.Checkout(ctx, qualified); err != nil {
		return "", engineErr("checkout branch", err)
	}
	return qualified, nil
}
