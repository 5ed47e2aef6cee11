package executor

import (
	"fmt"

	"github.com/katalvlaran/zoidsweep/kernel"
)

// RuntimeMode selects which runtime.ParallelRuntime backs a Run.
type RuntimeMode int

const (
	// ModeGoroutine spawns one goroutine per task via errgroup. Default.
	ModeGoroutine RuntimeMode = iota
	// ModeSequential runs every spawned task inline; useful for
	// debugging and for grids too small to benefit from parallelism.
	ModeSequential
	// ModeWorkStealing uses a fixed worker pool with per-worker deques.
	ModeWorkStealing
)

func (m RuntimeMode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeWorkStealing:
		return "workstealing"
	default:
		return "goroutine"
	}
}

// Config holds the executor's tunable constants, turned into runtime
// fields since Go has no preprocessor.
type Config struct {
	// Cut is CUT: the time extent at or below which recursion bottoms
	// out to the base case. Must be >= 3.
	Cut int

	// FunCutoff is FUN_CUTOFF: the maximum recursive call depth before
	// the executor forces a base case over whatever zoid remains,
	// regardless of its time extent. Bounds stack usage; a performance
	// guard, not a correctness requirement.
	FunCutoff int

	// Mode selects the ParallelRuntime implementation.
	Mode RuntimeMode

	// WorkStealingWorkers sizes the worker pool when Mode is
	// ModeWorkStealing. Zero means runtime.GOMAXPROCS(0).
	WorkStealingWorkers int
}

// DefaultConfig returns {Cut: 10, FunCutoff: 8, Mode: ModeGoroutine},
// conservative defaults for general use.
func DefaultConfig() Config {
	return Config{Cut: 10, FunCutoff: 8, Mode: ModeGoroutine}
}

// Validate checks Config's preconditions. Along with Run's own
// dimensionality check and gridstore.New, it is one of the module's
// few fallible checks, all made before a computation starts; every
// other contract breach is a panic.
func (c Config) Validate() error {
	if c.Cut < 3 {
		return fmt.Errorf("executor: Cut=%d must be >= 3: %w", c.Cut, kernel.ErrConfigOutOfBounds)
	}

	return nil
}
