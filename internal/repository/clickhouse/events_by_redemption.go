package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

// EventsByRedemption returns the audit trail of one redemption in time order.
func (r *Repository) EventsByRedemption(ctx context.Context, id model.RedemptionID) ([]model.SettlementEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("events_by_redemption", err, start)
	}()

	const query = `
SELECT
	time,
	kind,
	redemption_id,
	request_id,
	asset,
	node,
	expected,
	actual,
	detail
FROM settlement_events
WHERE redemption_id = ?
ORDER BY time ASC`

	rows, err := r.conn.Query(ctx, query, string(id))
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var events []model.SettlementEvent
	for rows.Next() {
		var (
			event      model.SettlementEvent
			kind       string
			redemption string
			request    string
			asset      string
			node       uint64
		)
		if err = rows.Scan(
			&event.Time,
			&kind,
			&redemption,
			&request,
			&asset,
			&node,
			&event.Expected,
			&event.Actual,
			&event.Detail,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.Kind = model.EventKind(kind)
		event.Redemption = model.RedemptionID(redemption)
		event.Request = model.RequestID(request)
		event.Asset = model.AssetID(asset)
		event.Node = model.NodeID(node)
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
