// Command zoidsweep is the demo CLI for the recursive stencil
// executor: it builds a grid and a named kernel, runs the recursive
// executor and/or the naive iterative reference over it, and reports
// per-phase timings. Out of the library's core; it exists
// to exercise and showcase the library, not to be imported.
package main

import "github.com/katalvlaran/zoidsweep/cmd/zoidsweep/cmd"

func main() {
	cmd.Execute()
}
