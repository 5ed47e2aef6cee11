package runtime

import stdruntime "runtime"

// osYield yields the current OS thread to let another worker goroutine
// run. Named to avoid shadowing this package's own name.
func osYield() { stdruntime.Gosched() }
