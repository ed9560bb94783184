// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs up to workerCount goroutines over items. The first error
// cancels the remaining work and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	_, err := Collect(ctx, workerCount, items, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, process(ctx, item)
	})
	return err
}

// Collect runs process over items with bounded concurrency and returns the
// results positionally aligned with items. The first error cancels the
// remaining work; partial results are still returned so callers can recover
// work that already completed.
func Collect[T, R any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) (R, error)) ([]R, error) {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	indexes := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-indexes:
					if !ok {
						return
					}
					res, err := process(ctx, items[idx])
					if err != nil {
						fail(err)
						return
					}
					results[idx] = res
				}
			}
		}()
	}

	for i := range items {
		select {
		case <-ctx.Done():
		case indexes <- i:
			continue
		}
		break
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return results, firstErr
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
