package core

import (
	"time"

	"go.uber.org/zap"
)

// BackupOption is a functor to build backup managers
type BackupOption func(*BackupManager)

// BackupLogger sets a logger for backup operations
func BackupLogger(l *zap.Logger) BackupOption {
	return func(m *BackupManager) {
		if l != nil {
			m.l = l
		}
	}
}

// BackupClock substitutes the time source, e.g. for tests
func BackupClock(clock func() time.Time) BackupOption {
	return func(m *BackupManager) {
		if clock != nil {
			m.clock = clock
		}
	}
}
