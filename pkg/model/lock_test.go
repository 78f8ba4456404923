package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockDescriptor(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 15, 2, 0, time.UTC)
	owner := Contributor{Name: "dev1", Email: "dev1@example.com"}

	lock := NewLockDescriptor("feature/login", owner, "refactoring auth", now, 2*time.Hour)
	require.NoError(t, ValidateLock(lock))
	assert.Equal(t, "feature/login", lock.Branch)
	assert.Equal(t, owner, lock.LockedBy)
	assert.Equal(t, now, lock.LockedAt)
	assert.Equal(t, now.Add(2*time.Hour), lock.ExpiresAt)

	assert.False(t, lock.Expired(now))
	assert.False(t, lock.Expired(now.Add(2*time.Hour-time.Second)))
	// expiry boundary is inclusive
	assert.True(t, lock.Expired(now.Add(2*time.Hour)))
	assert.True(t, lock.Expired(now.Add(3*time.Hour)))

	assert.Equal(t, 2*time.Hour, lock.Remaining(now))
	assert.Equal(t, time.Hour, lock.Remaining(now.Add(time.Hour)))
	assert.Equal(t, time.Duration(0), lock.Remaining(now.Add(5*time.Hour)))
}

func TestNewLockDescriptorNormalizesUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	local := time.Date(2026, 3, 1, 5, 15, 2, 0, loc)

	lock := NewLockDescriptor("main", Contributor{Name: "dev1"}, "", local, time.Hour)
	assert.Equal(t, time.UTC, lock.LockedAt.Location())
	assert.Equal(t, time.UTC, lock.ExpiresAt.Location())
	assert.True(t, lock.LockedAt.Equal(local))
}

func TestValidateLock(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	valid := NewLockDescriptor("main", Contributor{Name: "dev1"}, "", now, time.Hour)

	tests := []struct {
		name    string
		mutate  func(l LockDescriptor) LockDescriptor
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(l LockDescriptor) LockDescriptor { return l },
		},
		{
			name: "invalid branch",
			mutate: func(l LockDescriptor) LockDescriptor {
				l.Branch = "bad name"
				return l
			},
			wantErr: true,
		},
		{
			name: "anonymous owner",
			mutate: func(l LockDescriptor) LockDescriptor {
				l.LockedBy = Contributor{Email: "dev1@example.com"}
				return l
			},
			wantErr: true,
		},
		{
			name: "expires before start",
			mutate: func(l LockDescriptor) LockDescriptor {
				l.ExpiresAt = l.LockedAt
				return l
			},
			wantErr: true,
		},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateLock(tt.mutate(valid)); (err != nil) != tt.wantErr {
				t.Errorf("ValidateLock() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestContributorString(t *testing.T) {
	assert.Equal(t, "dev1 <dev1@example.com>", Contributor{Name: "dev1", Email: "dev1@example.com"}.String())
	assert.Equal(t, "dev1", Contributor{Name: "dev1"}.String())
	assert.Equal(t, "dev1@example.com", Contributor{Email: "dev1@example.com"}.String())
	assert.True(t, Contributor{Name: "dev1"}.SameIdentity(Contributor{Name: "dev1", Email: "other@example.com"}))
	assert.False(t, Contributor{Name: "dev1"}.SameIdentity(Contributor{Name: "dev2"}))
}
