package model

import (
	"fmt"
	"strings"
)

const (
	lockRecordSuffix = ".yaml"

	backupDescriptorFile = "backup.yaml"
	backupArtifactFile   = "refs.bundle"
)

// BranchSlug derives a filesystem-safe slug from a branch name: path
// separators become "__" and any rune outside [A-Za-z0-9._-] becomes "-".
// The mapping is deterministic; exotic names may collide, which branch
// name validation keeps out of reach in practice.
func BranchSlug(branch string) string {
	slug := strings.ReplaceAll(branch, "/", "__")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, slug)
}

// GetPathToLock yields the key of a branch's lock record within the
// locks store.
func GetPathToLock(branch string) string {
	return BranchSlug(branch) + lockRecordSuffix
}

// IsLockPath reports whether a locks store key looks like a lock record.
func IsLockPath(key string) bool {
	return strings.HasSuffix(key, lockRecordSuffix)
}

// GetPathToBackupDescriptor yields the key of a backup's metadata record
// within the metadata store.
func GetPathToBackupDescriptor(backupID string) string {
	return fmt.Sprint(backupID, "/", backupDescriptorFile)
}

// GetPathToBackupArtifact yields the key of a backup's snapshot artifact
// within the artifacts store.
func GetPathToBackupArtifact(backupID string) string {
	return fmt.Sprint(backupID, "/", backupArtifactFile)
}

// BackupPathComponents carries the parts of a parsed backup store key.
type BackupPathComponents struct {
	BackupID string
	FileName string
}

// GetBackupPathComponents splits a metadata or artifacts store key into
// its backup id and file name. Keys produced by the helpers above always
// parse; anything else is rejected.
func GetBackupPathComponents(key string) (BackupPathComponents, error) {
	cs := strings.SplitN(key, "/", 2)
	if len(cs) != 2 || cs[0] == "" || cs[1] == "" {
		return BackupPathComponents{}, fmt.Errorf("not a backup store key: %q", key)
	}
	return BackupPathComponents{BackupID: cs[0], FileName: cs[1]}, nil
}

// IsBackupDescriptorPath reports whether a metadata store key holds a
// backup descriptor.
func IsBackupDescriptorPath(key string) bool {
	c, err := GetBackupPathComponents(key)
	return err == nil && c.FileName == backupDescriptorFile
}

// IsBackupArtifactPath reports whether an artifacts store key holds a
// backup snapshot artifact.
func IsBackupArtifactPath(key string) bool {
	c, err := GetBackupPathComponents(key)
	return err == nil && c.FileName == backupArtifactFile
}
