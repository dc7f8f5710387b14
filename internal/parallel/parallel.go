// Package parallel provides bounded fan-out for loops whose iterations
// are independent.
//
// The stitching pipeline is sequential across frames and across canvas
// rows, but the work inside a single stage — hashing the rows of one
// frame, scoring the candidate offsets of one match — carries no ordering
// constraint. For splits that work across worker goroutines and waits for
// all of them, leaving result ordering to the caller: each iteration
// writes only its own slot, so output stays deterministic.
package parallel

import (
	"runtime"
	"sync"
)

// minIterations is the loop size below which fan-out costs more than it
// saves and For runs inline.
const minIterations = 64

// For runs fn(i) for every i in [0, n), distributing contiguous blocks of
// the index range across up to GOMAXPROCS goroutines. It returns when all
// iterations have completed.
//
// fn must not assume any execution order and must not touch state shared
// with other iterations.
func For(n int, fn func(i int)) {
	ForWorkers(n, runtime.GOMAXPROCS(0), fn)
}

// ForWorkers is For with an explicit worker cap. A cap below 2, or a loop
// too small to be worth scheduling, runs inline on the calling goroutine.
func ForWorkers(n, workers int, fn func(i int)) {
	if workers > n {
		workers = n
	}
	if workers < 2 || n < minIterations {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	// Contiguous blocks rather than striding: iterations that touch
	// adjacent memory stay on the same worker.
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
