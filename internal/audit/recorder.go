// Package audit buffers settlement events and flushes them to the
// append-only event repository. Recording never blocks settlement work;
// a full buffer or a failed flush loses events, not money.
package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/pkg/batcher"
)

// Sink receives flushed event batches.
type Sink interface {
	InsertEvents(ctx context.Context, events []model.SettlementEvent) error
}

// Events is the recording surface the domain components consume. Both
// Recorder and NopRecorder satisfy it.
type Events interface {
	Record(ctx context.Context, event model.SettlementEvent)
}

// Recorder is a batching settlement-event recorder.
type Recorder struct {
	logger  *zap.Logger
	batcher *batcher.Batcher[model.SettlementEvent]
}

// NewRecorder builds a Recorder flushing into sink.
func NewRecorder(logger *zap.Logger, sink Sink, cfg batcher.Config) *Recorder {
	logger = logger.Named("audit")
	return &Recorder{
		logger:  logger,
		batcher: batcher.New(logger, sink.InsertEvents, cfg),
	}
}

// Start begins the background flush loop.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Close drains buffered events and stops the loop.
func (r *Recorder) Close() {
	r.batcher.Close()
}

// Record queues one event.
func (r *Recorder) Record(ctx context.Context, event model.SettlementEvent) {
	if err := r.batcher.Add(ctx, event); err != nil {
		r.logger.Warn("event dropped",
			zap.String("kind", string(event.Kind)),
			zap.Error(err))
	}
}

// NopRecorder discards every event. Used when no event repository is
// configured.
type NopRecorder struct{}

// Record implements the recorder interface.
func (NopRecorder) Record(context.Context, model.SettlementEvent) {}
