package core

import (
	"context"
	"sort"
	"time"

	context2 "github.com/gitkeeper/gitkeeper/pkg/context"
	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/errors"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/gitkeeper/gitkeeper/pkg/storage"
	storagestatus "github.com/gitkeeper/gitkeeper/pkg/storage/status"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

func getLockStore(stores context2.Stores) storage.Store {
	return stores.Locks()
}

// LockState classifies what a lock query found.
type LockState int

const (
	// LockAbsent means no lock record exists for the branch.
	LockAbsent LockState = iota

	// LockActive means an unexpired lock is held.
	LockActive

	// LockExpiredCleared means an expired or unusable record was found
	// and removed as a side effect of the query.
	LockExpiredCleared
)

func (s LockState) String() string {
	switch s {
	case LockActive:
		return "active"
	case LockExpiredCleared:
		return "expired-cleared"
	default:
		return "unlocked"
	}
}

// LockStatus is the result of querying one branch's lock.
type LockStatus struct {
	State LockState

	// Lock is set when State is LockActive, and carries the cleared
	// record when an expired lock was swept.
	Lock *model.LockDescriptor

	_ struct{}
}

// LockManager hands out advisory, time-bounded branch leases backed by
// the locks store. Mutual exclusion between concurrent processes rests
// on the store's exclusive create, not on in-process locking.
type LockManager struct {
	stores context2.Stores
	clock  func() time.Time
	l      *zap.Logger
	_      struct{}
}

func defaultLockManager(stores context2.Stores) *LockManager {
	return &LockManager{
		stores: stores,
		clock:  time.Now,
		l:      zap.NewNop(),
	}
}

// NewLockManager builds a lock manager over the given stores.
func NewLockManager(stores context2.Stores, opts ...LockOption) *LockManager {
	m := defaultLockManager(stores)
	for _, apply := range opts {
		apply(m)
	}
	return m
}

// Acquire leases branch to owner for duration d.
//
// Renewing one's own unexpired lease succeeds and extends it. A live
// lease held by someone else fails with a conflict naming the holder,
// unless force takes it over. Expired or undecodable records are
// cleared on encounter. Racing acquirers are arbitrated by the store's
// exclusive create: the loser re-reads once and reports the winner.
func (m *LockManager) Acquire(ctx context.Context, branch string, owner model.Contributor, reason string, d time.Duration, force bool) (model.LockDescriptor, error) {
	var none model.LockDescriptor
	if err := model.ValidateBranchName(branch); err != nil {
		return none, wrapf(status.ErrValidation, "acquire lock: %v", err)
	}
	if owner.Name == "" {
		return none, wrapf(status.ErrValidation, "acquiring a lock requires an owner")
	}
	if d <= 0 {
		return none, wrapf(status.ErrValidation, "lock duration must be positive, got %s", d)
	}

	store := getLockStore(m.stores)
	pth := model.GetPathToLock(branch)
	now := m.clock().UTC()
	lock := model.NewLockDescriptor(branch, owner, reason, now, d)

	for attempt := 0; ; attempt++ {
		existing, err := m.readLock(ctx, pth)
		switch {
		case err == nil:
			if !existing.Expired(now) {
				if existing.LockedBy.SameIdentity(owner) {
					// renewal: replace our own live lease
					if err := writeRecord(ctx, store, pth, lock, storage.OverWrite); err != nil {
						return none, err
					}
					m.l.Info("lock renewed",
						zap.String("branch", branch),
						zap.String("owner", owner.Name),
						zap.Time("expires_at", lock.ExpiresAt),
					)
					return lock, nil
				}
				if !force {
					return none, wrapf(status.ErrConflict, "branch %q is locked by %s until %s",
						branch, existing.LockedBy, existing.ExpiresAt.Format(time.RFC3339))
				}
				if err := writeRecord(ctx, store, pth, lock, storage.OverWrite); err != nil {
					return none, err
				}
				m.l.Warn("lock taken over",
					zap.String("branch", branch),
					zap.String("previous_owner", existing.LockedBy.Name),
					zap.String("owner", owner.Name),
				)
				return lock, nil
			}
			// lapsed lease: clear it and fall through to a fresh create
			m.l.Info("clearing expired lock",
				zap.String("branch", branch),
				zap.String("previous_owner", existing.LockedBy.Name),
				zap.Time("expired_at", existing.ExpiresAt),
			)
			if err := store.Delete(ctx, pth); err != nil && !errors.Is(err, storagestatus.ErrNotFound) {
				return none, err
			}

		case errors.Is(err, status.ErrStaleData):
			// undecodable record: self-heal by clearing it
			m.l.Warn("clearing unreadable lock record", zap.String("branch", branch), zap.Error(err))
			if err := store.Delete(ctx, pth); err != nil && !errors.Is(err, storagestatus.ErrNotFound) {
				return none, err
			}

		case errors.Is(err, storagestatus.ErrNotFound):
			// no record: proceed to the exclusive create

		default:
			return none, err
		}

		err = writeRecord(ctx, store, pth, lock, storage.IfNotPresent)
		if err == nil {
			m.l.Info("lock acquired",
				zap.String("branch", branch),
				zap.String("owner", owner.Name),
				zap.Time("expires_at", lock.ExpiresAt),
			)
			return lock, nil
		}
		if errors.Is(err, storagestatus.ErrExists) && attempt == 0 {
			// lost the create race: re-read to name the winner
			continue
		}
		if errors.Is(err, storagestatus.ErrExists) {
			return none, wrapf(status.ErrConflict, "branch %q was locked concurrently", branch)
		}
		return none, err
	}
}

// Release gives up the lease on branch.
//
// Only the holder may release; force overrides for administrative
// cleanup. Releasing a branch whose lease has already lapsed clears
// the record and reports that no lock was held.
func (m *LockManager) Release(ctx context.Context, branch string, actor model.Contributor, force bool) error {
	if err := model.ValidateBranchName(branch); err != nil {
		return wrapf(status.ErrValidation, "release lock: %v", err)
	}
	if actor.Name == "" {
		return wrapf(status.ErrValidation, "releasing a lock requires an actor")
	}

	store := getLockStore(m.stores)
	pth := model.GetPathToLock(branch)

	existing, err := m.readLock(ctx, pth)
	switch {
	case errors.Is(err, storagestatus.ErrNotFound):
		return wrapf(status.ErrNotFound, "no lock held on %q", branch)
	case errors.Is(err, status.ErrStaleData):
		m.l.Warn("clearing unreadable lock record", zap.String("branch", branch), zap.Error(err))
		if derr := store.Delete(ctx, pth); derr != nil && !errors.Is(derr, storagestatus.ErrNotFound) {
			return derr
		}
		return wrapf(status.ErrNotFound, "lock record on %q was unreadable and has been cleared", branch)
	case err != nil:
		return err
	}

	now := m.clock().UTC()
	if existing.Expired(now) {
		if derr := store.Delete(ctx, pth); derr != nil && !errors.Is(derr, storagestatus.ErrNotFound) {
			return derr
		}
		m.l.Info("cleared expired lock on release",
			zap.String("branch", branch),
			zap.Time("expired_at", existing.ExpiresAt),
		)
		return wrapf(status.ErrNotFound, "lock on %q expired at %s", branch, existing.ExpiresAt.Format(time.RFC3339))
	}

	if !existing.LockedBy.SameIdentity(actor) {
		if !force {
			return wrapf(status.ErrPermission, "lock on %q is held by %s, not %s",
				branch, existing.LockedBy, actor)
		}
		m.l.Warn("lock force-released",
			zap.String("branch", branch),
			zap.String("holder", existing.LockedBy.Name),
			zap.String("actor", actor.Name),
		)
	}

	if err := store.Delete(ctx, pth); err != nil && !errors.Is(err, storagestatus.ErrNotFound) {
		return err
	}
	m.l.Info("lock released", zap.String("branch", branch), zap.String("actor", actor.Name))
	return nil
}

// Query reports the lock state of a branch. Encountered expired or
// unreadable records are cleared as a side effect.
func (m *LockManager) Query(ctx context.Context, branch string) (LockStatus, error) {
	if err := model.ValidateBranchName(branch); err != nil {
		return LockStatus{}, wrapf(status.ErrValidation, "query lock: %v", err)
	}

	store := getLockStore(m.stores)
	pth := model.GetPathToLock(branch)

	existing, err := m.readLock(ctx, pth)
	switch {
	case errors.Is(err, storagestatus.ErrNotFound):
		return LockStatus{State: LockAbsent}, nil
	case errors.Is(err, status.ErrStaleData):
		m.l.Warn("clearing unreadable lock record", zap.String("branch", branch), zap.Error(err))
		if derr := store.Delete(ctx, pth); derr != nil && !errors.Is(derr, storagestatus.ErrNotFound) {
			return LockStatus{}, derr
		}
		return LockStatus{State: LockExpiredCleared}, nil
	case err != nil:
		return LockStatus{}, err
	}

	if existing.Expired(m.clock().UTC()) {
		if derr := store.Delete(ctx, pth); derr != nil && !errors.Is(derr, storagestatus.ErrNotFound) {
			return LockStatus{}, derr
		}
		m.l.Info("cleared expired lock",
			zap.String("branch", branch),
			zap.Time("expired_at", existing.ExpiresAt),
		)
		return LockStatus{State: LockExpiredCleared, Lock: &existing}, nil
	}
	return LockStatus{State: LockActive, Lock: &existing}, nil
}

// ListActive yields all live locks, sorted by branch. Expired records
// met along the way are swept; unreadable ones are skipped with a
// warning so one bad record cannot hide the rest.
func (m *LockManager) ListActive(ctx context.Context) ([]model.LockDescriptor, error) {
	store := getLockStore(m.stores)
	keys, err := store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	now := m.clock().UTC()
	locks := make([]model.LockDescriptor, 0, len(keys))
	for _, key := range keys {
		if !model.IsLockPath(key) {
			continue
		}
		lk, err := m.readLock(ctx, key)
		switch {
		case errors.Is(err, storagestatus.ErrNotFound):
			// swept by a concurrent process between Keys and Get
			continue
		case errors.Is(err, status.ErrStaleData):
			m.l.Warn("skipping unreadable lock record", zap.String("key", key), zap.Error(err))
			continue
		case err != nil:
			return nil, err
		}
		if lk.Expired(now) {
			if derr := store.Delete(ctx, key); derr != nil && !errors.Is(derr, storagestatus.ErrNotFound) {
				return nil, derr
			}
			m.l.Info("cleared expired lock", zap.String("branch", lk.Branch))
			continue
		}
		locks = append(locks, lk)
	}
	sort.Slice(locks, func(i, j int) bool {
		return locks[i].Branch < locks[j].Branch
	})
	return locks, nil
}

// readLock fetches and decodes one lock record. Undecodable or invalid
// records come back wrapped in status.ErrStaleData.
func (m *LockManager) readLock(ctx context.Context, pth string) (model.LockDescriptor, error) {
	var lock model.LockDescriptor
	src, err := readRecord(ctx, getLockStore(m.stores), pth)
	if err != nil {
		return lock, err
	}
	if err := yaml.Unmarshal(src, &lock); err != nil {
		return lock, wrapf(status.ErrStaleData, "undecodable lock record: %v", err)
	}
	if err := model.ValidateLock(lock); err != nil {
		return lock, wrapf(status.ErrStaleData, "invalid lock record: %v", err)
	}
	return lock, nil
}
