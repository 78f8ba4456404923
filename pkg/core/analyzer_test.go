package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/errors"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzerRepo() *fakeRepo {
	return newFakeRepo("main", map[string]string{
		"main":          "1111111111111111111111111111111111111111",
		"feature/login": "2222222222222222222222222222222222222222",
	})
}

func countsByRange(ahead, behind int) func(context.Context, string) (int, error) {
	return func(_ context.Context, rng string) (int, error) {
		switch rng {
		case "main..feature/login":
			return ahead, nil
		case "feature/login..main":
			return behind, nil
		default:
			return 0, fmt.Errorf("unexpected range %q", rng)
		}
	}
}

func TestDivergence(t *testing.T) {
	for _, toPin := range []struct {
		name   string
		ahead  int
		behind int
		state  model.SyncState
	}{
		{name: "in sync", ahead: 0, behind: 0, state: model.InSync},
		{name: "ahead only", ahead: 3, behind: 0, state: model.AheadOnly},
		{name: "behind only", ahead: 0, behind: 2, state: model.BehindOnly},
		{name: "diverged", ahead: 4, behind: 7, state: model.Diverged},
	} {
		testcase := toPin
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			em := analyzerRepo().engine()
			em.RevListCountFunc = countsByRange(testcase.ahead, testcase.behind)
			a := NewAnalyzer(em, testConfig(t))

			d, err := a.Divergence(context.Background(), "feature/login", "main")
			require.NoError(t, err)
			assert.Equal(t, testcase.ahead, d.Ahead)
			assert.Equal(t, testcase.behind, d.Behind)
			assert.Equal(t, testcase.state, d.State())

			st, err := a.SyncState(context.Background(), "feature/login", "main")
			require.NoError(t, err)
			assert.Equal(t, testcase.state, st)
		})
	}
}

func TestDivergenceGates(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed name", func(t *testing.T) {
		t.Parallel()
		a := NewAnalyzer(analyzerRepo().engine(), testConfig(t))
		_, err := a.Divergence(ctx, "feat ure", "main")
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrValidation))
	})

	t.Run("unknown branch", func(t *testing.T) {
		t.Parallel()
		a := NewAnalyzer(analyzerRepo().engine(), testConfig(t))
		_, err := a.Divergence(ctx, "feature/ghost", "main")
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrNotFound))
	})

	t.Run("engine failure", func(t *testing.T) {
		t.Parallel()
		em := analyzerRepo().engine()
		em.RevListCountFunc = func(_ context.Context, _ string) (int, error) {
			return 0, &engine.GitError{Op: "rev-list", Stderr: "fatal: boom"}
		}
		a := NewAnalyzer(em, testConfig(t))
		_, err := a.Divergence(ctx, "feature/login", "main")
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrEngine))

		st, serr := a.SyncState(ctx, "feature/login", "main")
		require.Error(t, serr)
		assert.Equal(t, model.InvalidSync, st)
	})
}

func TestRemoteSync(t *testing.T) {
	ctx := context.Background()

	t.Run("no remote copy", func(t *testing.T) {
		t.Parallel()
		a := NewAnalyzer(analyzerRepo().engine(), testConfig(t))
		rs, err := a.RemoteSync(ctx, "feature/login")
		require.NoError(t, err)
		assert.False(t, rs.Found)
		assert.False(t, rs.InSync)
	})

	t.Run("in sync with remote", func(t *testing.T) {
		t.Parallel()
		repo := analyzerRepo()
		em := repo.engine()
		em.RemoteTipFunc = func(_ context.Context, branch string) (string, bool, error) {
			return repo.tip(branch), true, nil
		}
		a := NewAnalyzer(em, testConfig(t))

		rs, err := a.RemoteSync(ctx, "feature/login")
		require.NoError(t, err)
		assert.True(t, rs.Found)
		assert.True(t, rs.InSync)
		assert.Equal(t, rs.LocalHash, rs.RemoteHash)
	})

	t.Run("remote diverged", func(t *testing.T) {
		t.Parallel()
		em := analyzerRepo().engine()
		em.RemoteTipFunc = func(_ context.Context, _ string) (string, bool, error) {
			return "9999999999999999999999999999999999999999", true, nil
		}
		a := NewAnalyzer(em, testConfig(t))

		rs, err := a.RemoteSync(ctx, "feature/login")
		require.NoError(t, err)
		assert.True(t, rs.Found)
		assert.False(t, rs.InSync)
		assert.NotEqual(t, rs.LocalHash, rs.RemoteHash)
	})
}

func TestPredictConflicts(t *testing.T) {
	ctx := context.Background()

	withDiffs := func(side map[string][]string) *Analyzer {
		em := analyzerRepo().engine()
		em.MergeBaseFunc = func(_ context.Context, _, _ string) (string, error) {
			return "0000000000000000000000000000000000000000", nil
		}
		em.ChangedPathsFunc = func(_ context.Context, _, to string) ([]string, error) {
			return side[to], nil
		}
		return NewAnalyzer(em, testConfig(t))
	}

	t.Run("overlap is sorted", func(t *testing.T) {
		t.Parallel()
		a := withDiffs(map[string][]string{
			"feature/login": {"pkg/auth/login.go", "docs/README.md", "pkg/auth/token.go"},
			"main":          {"pkg/auth/token.go", "go.mod", "pkg/auth/login.go"},
		})

		paths, err := a.PredictConflicts(ctx, "feature/login", "main")
		require.NoError(t, err)
		assert.Equal(t, []string{"pkg/auth/login.go", "pkg/auth/token.go"}, paths)
	})

	t.Run("no overlap", func(t *testing.T) {
		t.Parallel()
		a := withDiffs(map[string][]string{
			"feature/login": {"a.go"},
			"main":          {"b.go"},
		})

		paths, err := a.PredictConflicts(ctx, "feature/login", "main")
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("merge base failure", func(t *testing.T) {
		t.Parallel()
		em := analyzerRepo().engine()
		em.MergeBaseFunc = func(_ context.Context, _, _ string) (string, error) {
			return "", &engine.GitError{Op: "merge-base", Stderr: "fatal: no common ancestor"}
		}
		a := NewAnalyzer(em, testConfig(t))

		_, err := a.PredictConflicts(ctx, "feature/login", "main")
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrEngine))
	})
}

func TestHealthAllClear(t *testing.T) {
	ctx := context.Background()
	repo := analyzerRepo()
	clk := newTestClock(testTime())
	em := repo.engine()
	em.RevListCountFunc = countsByRange(2, 0)
	em.RemoteTipFunc = func(_ context.Context, branch string) (string, bool, error) {
		return repo.tip(branch), true, nil
	}
	em.Log1Func = func(_ context.Context, rev string) (engine.CommitInfo, error) {
		return engine.CommitInfo{
			Hash:    repo.tip(rev),
			Author:  dev1.Name,
			Date:    testTime().Add(-24 * time.Hour),
			Subject: "wip",
		}, nil
	}
	em.MergeBaseFunc = func(_ context.Context, _, _ string) (string, error) {
		return "0000000000000000000000000000000000000000", nil
	}
	em.ChangedPathsFunc = func(_ context.Context, _, to string) ([]string, error) {
		if to == "feature/login" {
			return []string{"pkg/auth/login.go"}, nil
		}
		return []string{"docs/README.md"}, nil
	}
	a := NewAnalyzer(em, testConfig(t), AnalyzerClock(clk.Now))

	report, err := a.Health(ctx, "feature/login", "main", 0)
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
	assert.True(t, report.Healthy())
	assert.Zero(t, report.IssueCount())
}

func TestHealthFindings(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo("feature/login", map[string]string{
		"main":          "1111111111111111111111111111111111111111",
		"feature/login": "2222222222222222222222222222222222222222",
	})
	clk := newTestClock(testTime())
	em := repo.engine()
	em.RevListCountFunc = countsByRange(1, 3)
	em.Log1Func = func(_ context.Context, rev string) (engine.CommitInfo, error) {
		return engine.CommitInfo{
			Hash: repo.tip(rev),
			Date: testTime().Add(-100 * 24 * time.Hour),
		}, nil
	}
	em.WorkingTreeCleanFunc = func(_ context.Context) (bool, error) {
		return false, nil
	}
	em.MergeBaseFunc = func(_ context.Context, _, _ string) (string, error) {
		return "0000000000000000000000000000000000000000", nil
	}
	em.ChangedPathsFunc = func(_ context.Context, _, _ string) ([]string, error) {
		return []string{"pkg/auth/login.go"}, nil
	}
	a := NewAnalyzer(em, testConfig(t), AnalyzerClock(clk.Now))

	report, err := a.Health(ctx, "feature/login", "main", 90)
	require.NoError(t, err)

	categories := make([]model.FindingCategory, 0, len(report.Findings))
	for _, f := range report.Findings {
		categories = append(categories, f.Category)
	}
	assert.Equal(t, []model.FindingCategory{
		model.CategoryRemoteSync,
		model.CategoryBaseCurrency,
		model.CategoryStaleness,
		model.CategoryWorkingTree,
		model.CategoryConflictRisk,
	}, categories)

	// the missing remote is informational, everything else a warning
	assert.Equal(t, model.SeverityInfo, report.Findings[0].Severity)
	assert.Equal(t, 4, report.IssueCount())
	assert.False(t, report.Healthy())
}

func TestHealthStalenessThreshold(t *testing.T) {
	ctx := context.Background()
	repo := analyzerRepo()
	clk := newTestClock(testTime())
	em := repo.engine()
	em.RevListCountFunc = countsByRange(0, 0)
	em.RemoteTipFunc = func(_ context.Context, branch string) (string, bool, error) {
		return repo.tip(branch), true, nil
	}
	em.Log1Func = func(_ context.Context, rev string) (engine.CommitInfo, error) {
		return engine.CommitInfo{Hash: repo.tip(rev), Date: testTime().Add(-10 * 24 * time.Hour)}, nil
	}
	em.MergeBaseFunc = func(_ context.Context, _, _ string) (string, error) {
		return "0000000000000000000000000000000000000000", nil
	}
	em.ChangedPathsFunc = func(_ context.Context, _, _ string) ([]string, error) {
		return nil, nil
	}
	a := NewAnalyzer(em, testConfig(t), AnalyzerClock(clk.Now))

	// ten days idle trips a 5 day threshold but not the default one
	report, err := a.Health(ctx, "feature/login", "main", 5)
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, model.CategoryStaleness, report.Findings[0].Category)

	report, err = a.Health(ctx, "feature/login", "main", 0)
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
}
