package core

import (
	"time"

	"go.uber.org/zap"
)

// LockOption is a functor to build lock managers
type LockOption func(*LockManager)

// LockLogger sets a logger for lock operations
func LockLogger(l *zap.Logger) LockOption {
	return func(m *LockManager) {
		if l != nil {
			m.l = l
		}
	}
}

// LockClock substitutes the time source, e.g. for tests
func LockClock(clock func() time.Time) LockOption {
	return func(m *LockManager) {
		if clock != nil {
			m.clock = clock
		}
	}
}
