package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	var counter int64
	n := 1000

	err := For(n, 0, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	})

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_EveryIndexOnce(t *testing.T) {
	n := 257 // does not divide evenly over typical worker counts
	seen := make([]int64, n)

	err := For(n, 4, func(i int) error {
		atomic.AddInt64(&seen[i], 1)
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, c := range seen {
		if c != 1 {
			t.Errorf("Index %d visited %d times", i, c)
		}
	}
}

func TestFor_SingleWorker(t *testing.T) {
	// One worker must run in index order on the calling goroutine.
	var order []int
	err := For(10, 1, func(i int) error {
		order = append(order, i)
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("Expected index %d at position %d, got %d", i, i, got)
		}
	}
}

func TestFor_ErrorDoesNotStopOthers(t *testing.T) {
	errBoom := errors.New("boom")
	var counter int64
	n := 100

	err := For(n, 4, func(i int) error {
		atomic.AddInt64(&counter, 1)
		if i == 42 {
			return errBoom
		}
		return nil
	})

	if !errors.Is(err, errBoom) {
		t.Errorf("Expected boom error, got %v", err)
	}
	if counter != int64(n) {
		t.Errorf("Expected all %d iterations to run, got %d", n, counter)
	}
}

func TestFor_Empty(t *testing.T) {
	called := false
	if err := For(0, 4, func(int) error { called = true; return nil }); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if called {
		t.Error("Body must not run for n == 0")
	}
}

func BenchmarkFor(b *testing.B) {
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, 0, func(i int) error {
				atomic.AddInt64(&sum, int64(i))
				return nil
			})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, 1, func(i int) error {
				atomic.AddInt64(&sum, int64(i))
				return nil
			})
		}
	})
}
