package accel

import "fmt"

// This file implements the workload distribution loops that map a 1-D problem
// domain of size n onto the launch topology. Each variant guarantees, within
// its stated domain, that the union of the index sets processed by all logical
// threads is exactly {0, ..., n-1} with no index visited twice.

// ForEach calls fn for every domain index owned by the calling logical
// thread, using striding with loop blocking: the thread starts at
// rank*E, processes a contiguous run of up to E elements, then jumps ahead by
// G*E, where G is the total thread count and E the element extent.
//
// This is the general form. It is correct for every n relative to the chosen
// work division and should be the default in kernel bodies.
func ForEach(idx Index, n int, fn func(i int)) {
	rank := idx.GridThreadLinear()
	stride := idx.GridThreadCount() * idx.ElemCount()
	elems := idx.ElemCount()

	for start := rank * elems; start < n; start += stride {
		for i := start; i < start+elems && i < n; i++ {
			fn(i)
		}
	}
}

// ForEachStrided is the pure strided loop: one element per stride step,
// successive elements of one thread spaced by the total thread count.
// The element extent of the work division is ignored.
func ForEachStrided(idx Index, n int, fn func(i int)) {
	stride := idx.GridThreadCount()
	for i := idx.GridThreadLinear(); i < n; i += stride {
		fn(i)
	}
}

// ForEachGuarded assigns at most one element per thread, guarded against
// threads beyond the domain. Requires the thread count to be >= n for full
// coverage; surplus threads do nothing.
func ForEachGuarded(idx Index, n int, fn func(i int)) {
	if i := idx.GridThreadLinear(); i < n {
		fn(i)
	}
}

// ForEachExact assigns exactly one element per thread with no bound check in
// the processing path. Precondition: n equals the total thread count of the
// launch. The precondition is enforced; a mismatch panics, which the
// executing backend reports as a task error, rather than silently reading or
// writing out of range.
func ForEachExact(idx Index, n int, fn func(i int)) {
	if g := idx.GridThreadCount(); g != n {
		panic(fmt.Sprintf("ForEachExact: domain size %d does not match thread count %d", n, g))
	}
	fn(idx.GridThreadLinear())
}
