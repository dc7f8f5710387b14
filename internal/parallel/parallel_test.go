package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor_CoversEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "empty", n: 0},
		{name: "single", n: 1},
		{name: "below inline threshold", n: 63},
		{name: "at threshold", n: 64},
		{name: "large", n: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make([]int32, tt.n)
			For(tt.n, func(i int) {
				atomic.AddInt32(&counts[i], 1)
			})
			for i, c := range counts {
				if c != 1 {
					t.Fatalf("index %d executed %d times, want 1", i, c)
				}
			}
		})
	}
}

func TestForWorkers_SingleWorkerRunsInOrder(t *testing.T) {
	var got []int
	ForWorkers(100, 1, func(i int) {
		got = append(got, i)
	})
	for i, v := range got {
		if v != i {
			t.Fatalf("iteration %d ran index %d, want %d", i, v, i)
		}
	}
}

func TestForWorkers_ResultsDeterministic(t *testing.T) {
	// Each iteration writes its own slot; the assembled result must not
	// depend on scheduling.
	const n = 5000
	want := make([]uint64, n)
	ForWorkers(n, 1, func(i int) {
		want[i] = uint64(i)*2654435761 + 1
	})

	for workers := 2; workers <= 8; workers *= 2 {
		got := make([]uint64, n)
		ForWorkers(n, workers, func(i int) {
			got[i] = uint64(i)*2654435761 + 1
		})
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: slot %d = %d, want %d", workers, i, got[i], want[i])
			}
		}
	}
}
