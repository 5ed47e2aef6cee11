package runtime

// Sequential is the degenerate runtime with no concurrency: every
// spawned task runs inline, synchronously, on the caller. It produces
// identical results to the concurrent runtimes for any pure kernel and
// is the default choice for small grids or single-core environments.
type Sequential struct{}

// NewSequential returns a Sequential runtime. There is no configuration.
func NewSequential() *Sequential { return &Sequential{} }

// Region opens a trivial region: Spawn runs task immediately, Sync is a
// no-op since nothing is ever outstanding.
func (Sequential) Region(fn func(r Region)) {
	fn(sequentialRegion{})
}

type sequentialRegion struct{}

func (sequentialRegion) Spawn(task func()) { task() }
func (sequentialRegion) Sync()             {}
