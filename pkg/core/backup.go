package core

import (
	"context"
	"io"
	"os"
	"sort"
	"time"

	"github.com/gitkeeper/gitkeeper/pkg/config"
	context2 "github.com/gitkeeper/gitkeeper/pkg/context"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/errors"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/gitkeeper/gitkeeper/pkg/storage"
	storagestatus "github.com/gitkeeper/gitkeeper/pkg/storage/status"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

func getMetaStore(stores context2.Stores) storage.Store {
	return stores.Metadata()
}

func getArtifactStore(stores context2.Stores) storage.Store {
	return stores.Artifacts()
}

// restoreRefPrefix namespaces the disposable refs used while restoring,
// keeping them clear of anything a user would create.
const restoreRefPrefix = "gitkeeper/restore-"

// BackupManager snapshots the repository's entire reachable ref set
// into immutable, timestamped backups and restores branches from them.
//
// Each backup is a pair: an opaque snapshot artifact in the artifacts
// store and a yaml descriptor in the metadata store, both keyed by the
// backup id. The artifact is always written first, so a descriptor
// never references a missing artifact; the reverse — an orphan artifact
// from an interrupted create — is tolerated and swept by Clean.
type BackupManager struct {
	stores context2.Stores
	eng    engine.Engine
	cfg    config.Config
	clock  func() time.Time
	l      *zap.Logger
	_      struct{}
}

func defaultBackupManager(stores context2.Stores, eng engine.Engine, cfg config.Config) *BackupManager {
	return &BackupManager{
		stores: stores,
		eng:    eng,
		cfg:    cfg,
		clock:  time.Now,
		l:      zap.NewNop(),
	}
}

// NewBackupManager builds a backup manager over the given stores and
// engine.
func NewBackupManager(stores context2.Stores, eng engine.Engine, cfg config.Config, opts ...BackupOption) *BackupManager {
	m := defaultBackupManager(stores, eng, cfg)
	for _, apply := range opts {
		apply(m)
	}
	return m
}

// Create snapshots the repository with branch as the backup's subject.
//
// The artifact captures every ref in the repository, not just branch;
// the descriptor records branch's tip at call time, which is what a
// later Restore resets the branch to. The descriptor is only written
// once the artifact is safely in the artifacts store.
func (m *BackupManager) Create(ctx context.Context, branch, description string, createdBy model.Contributor) (model.BackupDescriptor, error) {
	var none model.BackupDescriptor
	if err := model.ValidateBranchName(branch); err != nil {
		return none, wrapf(status.ErrValidation, "create backup: %v", err)
	}

	exists, err := m.eng.RefExists(ctx, branch)
	if err != nil {
		return none, engineErr("check branch", err)
	}
	if !exists {
		return none, wrapf(status.ErrNotFound, "branch %q does not exist", branch)
	}
	hash, err := m.eng.ResolveCommit(ctx, branch)
	if err != nil {
		return none, engineErr("resolve branch tip", err)
	}

	now := m.clock().UTC()
	backup := model.BackupDescriptor{
		ID:          model.NewBackupID(branch, now),
		Branch:      branch,
		Description: description,
		CreatedAt:   now,
		CreatedBy:   createdBy,
		CommitHash:  hash,
	}

	metaStore := getMetaStore(m.stores)
	metaPath := model.GetPathToBackupDescriptor(backup.ID)
	has, err := metaStore.Has(ctx, metaPath)
	if err != nil {
		return none, err
	}
	if has {
		return none, wrapf(status.ErrConflict, "backup %q already exists", backup.ID)
	}

	tmp, err := os.CreateTemp("", "gitkeeper-backup-*.bundle")
	if err != nil {
		return none, engineErr("stage backup artifact", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := m.eng.BundleCreate(ctx, tmpPath, nil); err != nil {
		return none, engineErr("snapshot refs", err)
	}
	info, err := os.Stat(tmpPath)
	if err != nil {
		return none, engineErr("stat backup artifact", err)
	}
	backup.SizeBytes = info.Size()

	// the artifact goes in first; an orphan left by an earlier crashed
	// create at the same id is simply overwritten
	src, err := os.Open(tmpPath)
	if err != nil {
		return none, engineErr("read backup artifact", err)
	}
	err = getArtifactStore(m.stores).Put(ctx, model.GetPathToBackupArtifact(backup.ID), src, storage.OverWrite)
	_ = src.Close()
	if err != nil {
		return none, engineErr("store backup artifact", err)
	}

	err = writeRecord(ctx, metaStore, metaPath, backup, storage.IfNotPresent)
	if err != nil {
		if errors.Is(err, storagestatus.ErrExists) {
			return none, wrapf(status.ErrConflict, "backup %q was created concurrently", backup.ID)
		}
		return none, err
	}

	m.l.Info("backup created",
		zap.String("backup_id", backup.ID),
		zap.String("branch", branch),
		zap.String("commit", shortHash(hash)),
		zap.Int64("size_bytes", backup.SizeBytes),
	)
	return backup, nil
}

// Restore points the backed-up branch at the commit recorded in the
// descriptor.
//
// This is a forced reset, not a merge: commits added to the branch
// after the backup was taken disappear from the ref (they stay in the
// repository's history for manual recovery). Without force the call
// stops before touching anything and asks for confirmation. The
// snapshot is verified, then fetched into a disposable ref so the
// recorded commit is present again even if the repository lost it.
func (m *BackupManager) Restore(ctx context.Context, backupID string, force bool) error {
	if backupID == "" {
		return wrapf(status.ErrValidation, "restore: empty backup id")
	}

	backup, err := m.readBackup(ctx, model.GetPathToBackupDescriptor(backupID))
	switch {
	case errors.Is(err, storagestatus.ErrNotFound):
		return wrapf(status.ErrNotFound, "backup %q not found", backupID)
	case err != nil:
		return err
	}

	artStore := getArtifactStore(m.stores)
	artPath := model.GetPathToBackupArtifact(backupID)
	has, err := artStore.Has(ctx, artPath)
	if err != nil {
		return err
	}
	if !has {
		return wrapf(status.ErrNotFound, "backup %q has no snapshot artifact", backupID)
	}

	if !force {
		if m.cfg.IsProtected(backup.Branch) {
			return wrapf(status.ErrConflict, "branch %q is protected; restore requires force", backup.Branch)
		}
		return wrapf(status.ErrConfirmationRequired,
			"restoring %q resets branch %q to commit %s, discarding later commits on it",
			backupID, backup.Branch, shortHash(backup.CommitHash))
	}

	tmp, err := os.CreateTemp("", "gitkeeper-restore-*.bundle")
	if err != nil {
		return engineErr("stage snapshot", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	src, err := artStore.Get(ctx, artPath)
	if err != nil {
		_ = tmp.Close()
		return err
	}
	_, err = io.Copy(tmp, src)
	_ = src.Close()
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return engineErr("stage snapshot", err)
	}

	if err := m.eng.BundleVerify(ctx, tmpPath); err != nil {
		return engineErr("verify snapshot", err)
	}

	// pull the captured tip back into the repository under a throwaway
	// ref, so the recorded commit resolves even after a history rewrite
	tempRef := restoreRefPrefix + ksuid.New().String()
	if err := m.eng.BundleFetch(ctx, tmpPath, backup.Branch, tempRef); err != nil {
		return engineErr("fetch snapshot", err)
	}
	defer func() {
		if derr := m.eng.DeleteBranch(ctx, tempRef, true); derr != nil {
			m.l.Warn("could not remove restore ref", zap.String("ref", tempRef), zap.Error(derr))
		}
	}()

	if _, err := m.eng.ResolveCommit(ctx, backup.CommitHash); err != nil {
		return engineErr("recorded commit missing from snapshot", err)
	}

	current, err := m.eng.CurrentBranch(ctx)
	if err != nil {
		return engineErr("current branch", err)
	}
	wasCurrent := current == backup.Branch
	if wasCurrent {
		// detach so the branch can be deleted out from under us
		if err := m.eng.Checkout(ctx, backup.CommitHash); err != nil {
			return engineErr("detach from branch", err)
		}
	}

	exists, err := m.eng.RefExists(ctx, backup.Branch)
	if err != nil {
		return engineErr("check branch", err)
	}
	if exists {
		if err := m.eng.DeleteBranch(ctx, backup.Branch, true); err != nil {
			return engineErr("reset branch", err)
		}
	}
	if err := m.eng.CreateBranch(ctx, backup.Branch, backup.CommitHash); err != nil {
		return engineErr("reset branch", err)
	}
	if wasCurrent {
		if err := m.eng.Checkout(ctx, backup.Branch); err != nil {
			return engineErr("reattach to branch", err)
		}
	}

	m.l.Info("backup restored",
		zap.String("backup_id", backupID),
		zap.String("branch", backup.Branch),
		zap.String("commit", shortHash(backup.CommitHash)),
	)
	return nil
}

// List yields all backup descriptors, newest first. Only metadata is
// read; artifacts stay untouched. Unreadable records are skipped with
// a warning.
func (m *BackupManager) List(ctx context.Context) ([]model.BackupDescriptor, error) {
	keys, err := getMetaStore(m.stores).Keys(ctx)
	if err != nil {
		return nil, err
	}

	backups := make([]model.BackupDescriptor, 0, len(keys))
	for _, key := range keys {
		if !model.IsBackupDescriptorPath(key) {
			continue
		}
		backup, err := m.readBackup(ctx, key)
		switch {
		case errors.Is(err, storagestatus.ErrNotFound):
			// swept by a concurrent clean between Keys and Get
			continue
		case errors.Is(err, status.ErrStaleData):
			m.l.Warn("skipping unreadable backup record", zap.String("key", key), zap.Error(err))
			continue
		case err != nil:
			return nil, err
		}
		backups = append(backups, backup)
	}
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].CreatedAt.Equal(backups[j].CreatedAt) {
			return backups[i].ID > backups[j].ID
		}
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Clean removes every backup strictly older than olderThan and reports
// how many pairs went away.
//
// The descriptor is deleted before its artifact so no reader ever sees
// a descriptor without one. Orphan artifacts — left by creates that
// died between the two writes — are swept too once the timestamp in
// their id passes the threshold.
func (m *BackupManager) Clean(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan < 0 {
		return 0, wrapf(status.ErrValidation, "retention threshold must not be negative, got %s", olderThan)
	}

	metaStore := getMetaStore(m.stores)
	artStore := getArtifactStore(m.stores)
	keys, err := metaStore.Keys(ctx)
	if err != nil {
		return 0, err
	}

	now := m.clock().UTC()
	removed := 0
	paired := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !model.IsBackupDescriptorPath(key) {
			continue
		}
		comp, cerr := model.GetBackupPathComponents(key)
		if cerr == nil {
			// unreadable records keep their artifact out of the orphan sweep
			paired[comp.BackupID] = true
		}
		backup, err := m.readBackup(ctx, key)
		switch {
		case errors.Is(err, storagestatus.ErrNotFound):
			continue
		case errors.Is(err, status.ErrStaleData):
			m.l.Warn("skipping unreadable backup record", zap.String("key", key), zap.Error(err))
			continue
		case err != nil:
			return removed, err
		}
		if backup.Age(now) <= olderThan {
			continue
		}
		// metadata first, so nobody reads a record whose artifact is gone
		if err := metaStore.Delete(ctx, key); err != nil && !errors.Is(err, storagestatus.ErrNotFound) {
			return removed, err
		}
		if err := artStore.Delete(ctx, model.GetPathToBackupArtifact(backup.ID)); err != nil && !errors.Is(err, storagestatus.ErrNotFound) {
			return removed, err
		}
		removed++
		m.l.Info("backup removed",
			zap.String("backup_id", backup.ID),
			zap.String("branch", backup.Branch),
			zap.Duration("age", backup.Age(now)),
		)
	}

	artKeys, err := artStore.Keys(ctx)
	if err != nil {
		return removed, err
	}
	for _, key := range artKeys {
		if !model.IsBackupArtifactPath(key) {
			continue
		}
		comp, err := model.GetBackupPathComponents(key)
		if err != nil || paired[comp.BackupID] {
			continue
		}
		at, err := model.BackupIDTime(comp.BackupID)
		if err != nil {
			m.l.Warn("skipping undatable orphan artifact", zap.String("key", key), zap.Error(err))
			continue
		}
		if now.Sub(at) <= olderThan {
			continue
		}
		if err := artStore.Delete(ctx, key); err != nil && !errors.Is(err, storagestatus.ErrNotFound) {
			return removed, err
		}
		m.l.Info("orphan artifact swept", zap.String("backup_id", comp.BackupID))
	}

	m.l.Info("retention sweep done", zap.Int("removed", removed), zap.Duration("older_than", olderThan))
	return removed, nil
}

// readBackup fetches and decodes one backup descriptor. Undecodable or
// invalid records come back wrapped in status.ErrStaleData.
func (m *BackupManager) readBackup(ctx context.Context, pth string) (model.BackupDescriptor, error) {
	var backup model.BackupDescriptor
	src, err := readRecord(ctx, getMetaStore(m.stores), pth)
	if err != nil {
		return backup, err
	}
	if err := yaml.Unmarshal(src, &backup); err != nil {
		return backup, wrapf(status.ErrStaleData, "undecodable backup record: %v", err)
	}
	if err := model.ValidateBackup(backup); err != nil {
		return backup, wrapf(status.ErrStaleData, "invalid backup record: %v", err)
	}
	return backup, nil
}
