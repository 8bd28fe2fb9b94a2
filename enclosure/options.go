package enclosure

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/pipeloop/pipe"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("enclosure: invalid option supplied")

// Rule selects which vertical half of a pipe counts as a crossing.
type Rule int

const (
	// CountUp counts loop pipes connecting up: '|', 'L', 'J'.
	CountUp Rule = iota
	// CountDown counts loop pipes connecting down: '|', '7', 'F'.
	CountDown
)

// ParseRule maps "up" or "down" to a Rule.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "up", "":
		return CountUp, nil
	case "down":
		return CountDown, nil
	}
	return 0, fmt.Errorf("%w: unknown parity rule %q", ErrOptionViolation, s)
}

func (r Rule) String() string {
	switch r {
	case CountUp:
		return "up"
	case CountDown:
		return "down"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// crosses reports whether a loop pipe of type p flips the ray's parity.
func (r Rule) crosses(p pipe.PipeType) bool {
	if r == CountDown {
		return p.GoesDown()
	}
	return p.GoesUp()
}

// Option configures Classify via functional arguments.
type Option func(*Options)

// Options holds the classifier parameters.
type Options struct {
	// Rule picks the crossing rule. Default CountUp.
	Rule Rule
	// Workers bounds concurrent row scans. Default runtime.GOMAXPROCS(0).
	Workers int

	err error
}

// DefaultOptions returns CountUp with one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Rule:    CountUp,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithRule selects the crossing rule.
func WithRule(r Rule) Option {
	return func(o *Options) {
		if r != CountUp && r != CountDown {
			o.err = fmt.Errorf("%w: unknown parity rule %d", ErrOptionViolation, int(r))
			return
		}
		o.Rule = r
	}
}

// WithWorkers bounds the number of rows scanned at once.
//
//	n > 0: at most n rows in flight
//	n == 0: keep the default
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}
