package pipeloop

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/enclosure"
)

// Option configures a Maze.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	rule    enclosure.Rule
	workers int
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		rule:   enclosure.CountUp,
	}
}

// WithLogger sets the logger used for debug tracing. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRule selects the crossing rule for CountEnclosedCells.
func WithRule(r enclosure.Rule) Option {
	return func(o *options) { o.rule = r }
}

// WithWorkers bounds the classifier's concurrent row scans; 0 means one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}
