package core

import (
	"context"
	"testing"

	"github.com/gitkeeper/gitkeeper/pkg/config"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/errors"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBranch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo("main", map[string]string{
		"main":    "1111111111111111111111111111111111111111",
		"develop": "3333333333333333333333333333333333333333",
	})
	em := repo.engine()
	cfg := testConfig(t)

	name, err := CreateBranch(ctx, em, cfg, model.KindFeature, "login", "", false)
	require.NoError(t, err)
	assert.Equal(t, "feature/login", name)

	// created at the configured base branch tip and checked out
	assert.Equal(t, repo.tip("main"), repo.tip("feature/login"))
	cur, err := em.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "feature/login", cur)

	// an explicit starting point wins over the base branch
	name, err = CreateBranch(ctx, em, cfg, model.KindHotfix, "payments", "develop", false)
	require.NoError(t, err)
	assert.Equal(t, "hotfix/payments", name)
	assert.Equal(t, repo.tip("develop"), repo.tip("hotfix/payments"))
}

func TestCreateBranchGates(t *testing.T) {
	ctx := context.Background()

	t.Run("empty and invalid names", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo("main", map[string]string{"main": "1111111111111111111111111111111111111111"})
		cfg := testConfig(t)

		_, err := CreateBranch(ctx, repo.engine(), cfg, model.KindFeature, "", "", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrValidation))

		_, err = CreateBranch(ctx, repo.engine(), cfg, model.KindFeature, "bad name", "", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrValidation))
	})

	t.Run("unknown starting point", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo("main", map[string]string{"main": "1111111111111111111111111111111111111111"})

		_, err := CreateBranch(ctx, repo.engine(), testConfig(t), model.KindBugfix, "typo", "feature/ghost", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrNotFound))
	})

	t.Run("protected shadow", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo("main", map[string]string{"main": "1111111111111111111111111111111111111111"})
		cfg := testConfig(t, config.ProtectedBranches("main", "feature/payments*"))

		_, err := CreateBranch(ctx, repo.engine(), cfg, model.KindFeature, "payments-v2", "", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrConflict))

		// force overrides the shadow guard
		name, err := CreateBranch(ctx, repo.engine(), cfg, model.KindFeature, "payments-v2", "", true)
		require.NoError(t, err)
		assert.Equal(t, "feature/payments-v2", name)
	})

	t.Run("existing branch", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo("main", map[string]string{
			"main":          "1111111111111111111111111111111111111111",
			"feature/login": "2222222222222222222222222222222222222222",
		})
		em := repo.engine()
		cfg := testConfig(t)

		_, err := CreateBranch(ctx, em, cfg, model.KindFeature, "login", "", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrConflict))
		assert.Equal(t, "2222222222222222222222222222222222222222", repo.tip("feature/login"))

		// force recreates the branch at the starting point
		_, err = CreateBranch(ctx, em, cfg, model.KindFeature, "login", "", true)
		require.NoError(t, err)
		assert.Equal(t, repo.tip("main"), repo.tip("feature/login"))
	})
}
