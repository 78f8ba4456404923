package core

import (
	"time"

	"go.uber.org/zap"
)

// MergeOption is a functor to build mergers
type MergeOption func(*Merger)

// MergeLogger sets a logger for merge orchestration
func MergeLogger(l *zap.Logger) MergeOption {
	return func(m *Merger) {
		if l != nil {
			m.l = l
		}
	}
}

// MergeClock substitutes the time source, e.g. for tests
func MergeClock(clock func() time.Time) MergeOption {
	return func(m *Merger) {
		if clock != nil {
			m.clock = clock
		}
	}
}
