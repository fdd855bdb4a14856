package sorted

import (
	"sync"
)

// ForEachParallel consumes s by splitting batches off it and handing them to given
// amount of worker goroutines. Values which could not be split off are consumed by
// the calling goroutine. f must be safe for concurrent use and is called in no
// particular order. The list must not be modified until ForEachParallel returns.
// ForEachParallel returns after every batch is consumed.
func ForEachParallel[T any](s Spliterator[T], workers int, f func(v Value[T])) {
	if workers < 1 {
		workers = 1
	}

	tasks := make(chan Spliterator[T], workers)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for batch := range tasks {
				batch.ForEachRemaining(f)
			}
		}()
	}
	// Workers are released even when f panics in the calling goroutine
	defer func() {
		close(tasks)
		wg.Wait()
	}()

	for batch := s.TrySplit(); batch != nil; batch = s.TrySplit() {
		tasks <- batch
	}
	s.ForEachRemaining(f)
}
