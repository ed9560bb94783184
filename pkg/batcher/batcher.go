// Package batcher provides a generic buffered batch flusher with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config bounds batch size, flush cadence and flush rate.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// Batcher buffers items and flushes them when the buffer fills, on an
// interval tick, or on close. Flush failures are logged and the batch is
// dropped; the flush callback owns any retry policy.
type Batcher[T any] struct {
	logger   *zap.Logger
	flush    func(context.Context, []T) error
	cfg      Config
	limiter  ratelimit.Limiter
	items    chan T
	done     chan struct{}
	closing  chan struct{}
	closeOne sync.Once
}

// New constructs a Batcher that hands full batches to flush.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 64
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.FlushRPS <= 0 {
		cfg.FlushRPS = 10
	}
	return &Batcher[T]{
		logger:  logger,
		flush:   flush,
		cfg:     cfg,
		limiter: ratelimit.New(cfg.FlushRPS),
		items:   make(chan T, cfg.FlushSize*2),
		done:    make(chan struct{}),
		closing: make(chan struct{}),
	}
}

// Start begins the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	go b.run(ctx)
}

// Close stops the loop after draining buffered items.
func (b *Batcher[T]) Close() {
	b.closeOne.Do(func() {
		close(b.closing)
	})
	<-b.done
}

// Add queues an item, respecting context cancellation and shutdown.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.closing:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]T, 0, b.cfg.FlushSize)

	send := func() {
		if len(batch) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch flush failed", zap.Int("size", len(batch)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
		}
		batch = batch[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.items:
				batch = append(batch, item)
				if len(batch) >= b.cfg.FlushSize {
					send()
				}
			default:
				send()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.closing:
			drain()
			return
		case item := <-b.items:
			batch = append(batch, item)
			if len(batch) >= b.cfg.FlushSize {
				send()
			}
		case <-ticker.C:
			send()
		}
	}
}
