package model

import (
	"fmt"
	"time"
)

// LockDescriptor is the persisted record of an advisory branch lease.
// The record is keyed by the branch's slug in the locks store; at most
// one record per branch exists. Expiry is evaluated lazily by readers —
// an expired record is treated as no lock and cleared on encounter.
type LockDescriptor struct {
	Branch    string      `json:"branch" yaml:"branch"`
	LockedBy  Contributor `json:"lockedBy" yaml:"lockedBy"`
	Reason    string      `json:"reason,omitempty" yaml:"reason,omitempty"`
	LockedAt  time.Time   `json:"lockedAt" yaml:"lockedAt"`
	ExpiresAt time.Time   `json:"expiresAt" yaml:"expiresAt"`
	_         struct{}
}

// NewLockDescriptor builds the record for a lease on branch held by
// owner, running from now for the given duration.
func NewLockDescriptor(branch string, owner Contributor, reason string, now time.Time, d time.Duration) LockDescriptor {
	now = now.UTC()
	return LockDescriptor{
		Branch:    branch,
		LockedBy:  owner,
		Reason:    reason,
		LockedAt:  now,
		ExpiresAt: now.Add(d),
	}
}

// Expired reports whether the lease has lapsed at the given instant.
func (l LockDescriptor) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// Remaining yields how much of the lease is left at the given instant,
// never negative.
func (l LockDescriptor) Remaining(now time.Time) time.Duration {
	r := l.ExpiresAt.Sub(now)
	if r < 0 {
		return 0
	}
	return r
}

func (l LockDescriptor) String() string {
	return fmt.Sprintf("lock on %s by %s until %s", l.Branch, l.LockedBy, l.ExpiresAt.Format(time.RFC3339))
}

// ValidateLock rejects records that must not reach the locks store.
func ValidateLock(l LockDescriptor) error {
	if err := ValidateBranchName(l.Branch); err != nil {
		return err
	}
	if l.LockedBy.Name == "" {
		return fmt.Errorf("empty field: lock owner")
	}
	if !l.ExpiresAt.After(l.LockedAt) {
		return fmt.Errorf("lock on %s would expire before it starts", l.Branch)
	}
	return nil
}
