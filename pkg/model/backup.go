package model

import (
	"fmt"
	"strings"
	"time"
)

// backupIDTimeFormat keeps ids sortable by creation time.
const backupIDTimeFormat = "20060102-150405"

// BackupDescriptor is the persisted metadata half of a backup pair. The
// other half is an opaque snapshot artifact capturing the repository's
// entire reachable ref set. The pair is created together or not at all;
// a descriptor must never reference a missing artifact. Backups are
// immutable once created and disappear only through a retention sweep.
type BackupDescriptor struct {
	ID          string      `json:"id" yaml:"id"`
	Branch      string      `json:"branch" yaml:"branch"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" yaml:"createdAt"`
	CreatedBy   Contributor `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	// CommitHash is the tip of Branch resolved when the backup was taken;
	// restore resets the branch to exactly this commit.
	CommitHash string `json:"commitHash" yaml:"commitHash"`
	// SizeBytes is the artifact size recorded at creation, so listings
	// never need to read the artifact itself.
	SizeBytes int64 `json:"sizeBytes,omitempty" yaml:"sizeBytes,omitempty"`
	_         struct{}
}

// NewBackupID derives the deterministic id of a backup of branch taken
// at the given instant: "<branchSlug>_<UTC timestamp>".
func NewBackupID(branch string, createdAt time.Time) string {
	return fmt.Sprintf("%s_%s", BranchSlug(branch), createdAt.UTC().Format(backupIDTimeFormat))
}

// BackupIDTime recovers the creation instant embedded in a backup id.
// Slugs may contain underscores, so the timestamp is whatever follows
// the last one.
func BackupIDTime(backupID string) (time.Time, error) {
	idx := strings.LastIndex(backupID, "_")
	if idx < 0 || idx == len(backupID)-1 {
		return time.Time{}, fmt.Errorf("not a backup id: %q", backupID)
	}
	return time.Parse(backupIDTimeFormat, backupID[idx+1:])
}

// Age yields how long ago the backup was taken, never negative.
func (b BackupDescriptor) Age(now time.Time) time.Duration {
	a := now.Sub(b.CreatedAt)
	if a < 0 {
		return 0
	}
	return a
}

func (b BackupDescriptor) String() string {
	return fmt.Sprintf("backup %s of %s at %s", b.ID, b.Branch, b.CommitHash)
}

// ValidateBackup rejects descriptors that must not reach the metadata
// store.
func ValidateBackup(b BackupDescriptor) error {
	if b.ID == "" {
		return fmt.Errorf("empty field: backup id")
	}
	if err := ValidateBranchName(b.Branch); err != nil {
		return err
	}
	if b.CommitHash == "" {
		return fmt.Errorf("backup %s records no commit hash", b.ID)
	}
	if b.CreatedAt.IsZero() {
		return fmt.Errorf("backup %s records no creation time", b.ID)
	}
	return nil
}
