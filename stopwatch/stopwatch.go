package stopwatch

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Lap is one named checkpoint: Duration is the elapsed time since the
// Stopwatch's Start, not since the previous Lap.
type Lap struct {
	Name     string
	Duration time.Duration
}

// Stopwatch is the timing hook the demo CLI (and any caller that wants
// per-phase timings) drives around a Run call.
type Stopwatch interface {
	// Start resets the stopwatch's zero point to now.
	Start()
	// Stop returns the elapsed time since Start and also records it as
	// a final "total" lap.
	Stop() time.Duration
	// Lap records a named checkpoint at the current elapsed time and
	// returns that duration.
	Lap(name string) time.Duration
	// Laps returns all recorded laps in insertion order, "total" last
	// if Stop was called.
	Laps() []Lap
}

// clock abstracts time.Now for deterministic tests.
type clock interface{ Now() time.Time }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// realStopwatch is the time-backed Stopwatch implementation New
// returns.
type realStopwatch struct {
	mu    sync.Mutex
	clock clock
	start time.Time
	laps  []Lap
}

// New returns a Stopwatch backed by the wall clock.
func New() Stopwatch {
	sw := &realStopwatch{clock: realClock{}}
	sw.Start()

	return sw
}

func (s *realStopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = s.clock.Now()
	s.laps = nil
}

func (s *realStopwatch) Lap(name string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.clock.Now().Sub(s.start)
	s.laps = append(s.laps, Lap{Name: name, Duration: d})

	return d
}

func (s *realStopwatch) Stop() time.Duration {
	return s.Lap("total")
}

func (s *realStopwatch) Laps() []Lap {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Lap(nil), s.laps...)
}

// Summary formats a Stopwatch's laps as a one-line-per-lap report,
// e.g. for logging alongside a zap logger in cmd/zoidsweep.
func Summary(sw Stopwatch) string {
	var b strings.Builder
	for _, l := range sw.Laps() {
		fmt.Fprintf(&b, "%-12s %v\n", l.Name, l.Duration)
	}

	return b.String()
}
