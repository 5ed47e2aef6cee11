package runtime

import "golang.org/x/sync/errgroup"

// Goroutine is a ParallelRuntime backed by one errgroup.Group per
// Region: Spawn calls g.Go, Sync calls g.Wait. This is the default
// runtime mode (executor.ModeGoroutine) — the Go-idiomatic fork-join
// pattern, grounded in the x/sync dependency and the
// sync.WaitGroup fork-join pattern used in its concurrency tests.
type Goroutine struct{}

// NewGoroutine returns a Goroutine runtime. There is no configuration.
func NewGoroutine() *Goroutine { return &Goroutine{} }

// Region opens a new errgroup.Group and runs fn with a Region backed by
// it. Region itself blocks until every spawn fn issued (synced or not)
// completes, so a caller that forgets to call Sync still gets a correct
// fork-join barrier at the end of the region.
func (Goroutine) Region(fn func(r Region)) {
	g := &errgroup.Group{}
	fn(goroutineRegion{g: g})
	_ = g.Wait()
}

type goroutineRegion struct {
	g *errgroup.Group
}

func (r goroutineRegion) Spawn(task func()) {
	r.g.Go(func() error {
		task()

		return nil
	})
}

func (r goroutineRegion) Sync() {
	_ = r.g.Wait()
}
