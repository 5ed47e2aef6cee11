package zoid

import "fmt"

// Split holds the three pieces produced by a space cut (SplitM or
// SplitW). Fields are named by role rather than position: Left and
// Right are the outward strips (mutually independent, dispatchable in
// parallel); Center is the inward strip that depends on both. Naming by
// role rather than tuple order sidesteps the left/center/right
// destructuring ambiguity between prose and pseudocode descriptions of the cut.
type Split struct {
	Left, Center, Right Zoid
}

// SplitM performs the parallel space cut ("M-cut") of z along dimension
// dim at base position s, given the kernel's slope (left, right) for
// that dimension (left >= 0, right <= 0 by convention).
//
// Precondition: a[dim] < s < b[dim]. Violating it is a contract breach
// (panic), per the "invariant assertions, not runtime errors" policy.
//
// The returned Left and Right strips have disjoint space–time
// footprints at every tau and are safe to run concurrently; Center
// reads data that both outward strips wrote and must run after them.
func SplitM(z Zoid, dim, s, left, right int) Split {
	a, b := z.A[dim], z.B[dim]
	if !(a < s && s < b) {
		panic(fmt.Sprintf("zoid: SplitM precondition violated: need %d < %d < %d", a, s, b))
	}

	leftStrip := z.Clone()
	leftStrip.B[dim] = s
	leftStrip.Db[dim] = left

	rightStrip := z.Clone()
	rightStrip.A[dim] = s
	rightStrip.Da[dim] = -right

	centerStrip := z.Clone()
	centerStrip.A[dim] = s
	centerStrip.B[dim] = s
	centerStrip.Da[dim] = left
	centerStrip.Db[dim] = -right

	return Split{Left: leftStrip, Center: centerStrip, Right: rightStrip}
}

// SplitW performs the serial space cut ("W-cut") of z along dimension
// dim over a time extent dt, given the kernel's slope (left, right).
// Used in place of SplitM when the zoid's top (not its base) is the
// side wide enough to cut.
//
// SplitW is implemented as SplitM conjugated by time reversal: reversing
// a zoid (swapping which end is "base" and negating its slopes) turns a
// top-wide zoid into a base-wide one, applies the ordinary M-cut
// algebra there, then reverses the three results back. This guarantees
// the same coverage and disjointness properties SplitM already has,
// without re-deriving the cut algebra by hand.
func SplitW(z Zoid, dim, dt, left, right int) Split {
	if dt < 0 {
		panic(fmt.Sprintf("zoid: SplitW requires dt >= 0, got %d", dt))
	}

	reversed := reverse(z, dt)
	topA := z.A[dim] + z.Da[dim]*dt
	topB := z.B[dim] + z.Db[dim]*dt
	s := topA + (topB-topA)/2

	// Reversing time swaps which edge is "leading" and negates the rate
	// of propagation, so the slope pair fed to the M-cut algebra is
	// (-right, -left) rather than (left, right).
	cut := SplitM(reversed, dim, s, -right, -left)

	return Split{
		Left:   reverse(cut.Left, dt),
		Center: reverse(cut.Center, dt),
		Right:  reverse(cut.Right, dt),
	}
}

// reverse returns z viewed backward in time over a window of length dt:
// its top becomes the new base, and every slope is negated. reverse is
// its own inverse: reverse(reverse(z, dt), dt) == z.
func reverse(z Zoid, dt int) Zoid {
	d := z.Dim()
	a := make([]int, d)
	b := make([]int, d)
	da := make([]int, d)
	db := make([]int, d)
	for k := 0; k < d; k++ {
		a[k] = z.A[k] + z.Da[k]*dt
		b[k] = z.B[k] + z.Db[k]*dt
		da[k] = -z.Da[k]
		db[k] = -z.Db[k]
	}

	return Zoid{A: a, B: b, Da: da, Db: db}
}

// SplitT performs the time cut: splits [t0,t1) at its midpoint, keeping
// z's spatial slopes unchanged but advancing its bounds by h steps for
// the second half. Requires dt=t1-t0 >= 2 so h=dt/2 >= 1.
//
// Returns (first, second) where first covers [t0,t0+h) using z
// unchanged, and second covers [t0+h,t1) using the advanced zoid.
func SplitT(z Zoid, h int) (first, second Zoid) {
	if h < 1 {
		panic(fmt.Sprintf("zoid: SplitT requires h >= 1, got %d", h))
	}

	advanced := z.Clone()
	for k := range advanced.A {
		advanced.A[k] = z.A[k] + z.Da[k]*h
		advanced.B[k] = z.B[k] + z.Db[k]*h
	}

	return z, advanced
}
