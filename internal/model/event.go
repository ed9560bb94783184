package model

import "time"

// EventKind classifies settlement audit events.
type EventKind string

const (
	EventRequestCreated       EventKind = "request_created"
	EventRequestFulfilled     EventKind = "request_fulfilled"
	EventSettlementExecuted   EventKind = "settlement_executed"
	EventRedemptionCreated    EventKind = "redemption_created"
	EventRedemptionCompleted  EventKind = "redemption_completed"
	EventSlashingApplied      EventKind = "slashing_applied"
	EventSurplusRetained      EventKind = "surplus_retained"
	EventUndelegationRecorded EventKind = "undelegation_recorded"
	EventSettlementRolledBack EventKind = "settlement_rolled_back"
)

// SettlementEvent is one row of the append-only audit trail. Fields that do
// not apply to a kind are left zero.
type SettlementEvent struct {
	Time       time.Time
	Kind       EventKind
	Redemption RedemptionID
	Request    RequestID
	Asset      AssetID
	Node       NodeID
	Expected   uint64
	Actual     uint64
	Detail     string
}
