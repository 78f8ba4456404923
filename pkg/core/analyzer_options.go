package core

import (
	"time"

	"go.uber.org/zap"
)

// AnalyzerOption is a functor to build analyzers
type AnalyzerOption func(*Analyzer)

// AnalyzerLogger sets a logger for analyzer passes
func AnalyzerLogger(l *zap.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if l != nil {
			a.l = l
		}
	}
}

// AnalyzerClock substitutes the time source, e.g. for tests
func AnalyzerClock(clock func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		if clock != nil {
			a.clock = clock
		}
	}
}
