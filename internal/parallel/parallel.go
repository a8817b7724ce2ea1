// Package parallel provides the chunked parallel-for shared by the CPU-side
// launch paths: the iteration space is split into contiguous ranges, one per
// worker goroutine, so that neighboring iterations stay on the same worker.
package parallel

import (
	"runtime"
	"sync"
)

// For executes f(i) for i in [0, n), chunked over at most workers goroutines.
// Each worker owns one contiguous index range. Workers <= 0 selects
// runtime.NumCPU(); workers == 1 runs everything on the calling goroutine.
//
// All iterations run even when some fail; the first error encountered (in an
// unspecified order across workers) is returned.
func For(n, workers int, f func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, n)

	if workers == 1 {
		var firstErr error
		for i := 0; i < n; i++ {
			if err := f(i); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				if err := f(i); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}(start, end)
	}
	wg.Wait()
	return firstErr
}
