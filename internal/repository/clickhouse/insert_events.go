package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

// InsertEvents stores settlement event rows in ClickHouse.
func (r *Repository) InsertEvents(ctx context.Context, events []model.SettlementEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO settlement_events (
	time,
	kind,
	redemption_id,
	request_id,
	asset,
	node,
	expected,
	actual,
	detail
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.Time,
			string(event.Kind),
			string(event.Redemption),
			string(event.Request),
			string(event.Asset),
			uint64(event.Node),
			event.Expected,
			event.Actual,
			event.Detail,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
