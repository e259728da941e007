package loader

import (
	"runtime"
	"sync"
)

// workerCount returns runtime.NumCPU capped at n, and at least 1.
func workerCount(n int) int {
	return max(1, min(n, runtime.NumCPU()))
}

// parallelMap calls fn for every index in [0,n) on a pool of workers and
// returns the results in index order.
func parallelMap[T any](n, workers int, fn func(int) T) []T {
	out := make([]T, n)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}
