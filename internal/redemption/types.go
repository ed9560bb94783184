package redemption

import (
	"context"
	"time"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RequestBook is the slice of the withdrawal queue the engine drives.
	RequestBook interface {
		Requests(ids []model.RequestID) ([]model.WithdrawalRequest, error)
		Commit(ctx context.Context, ids []model.RequestID) error
		Release(ctx context.Context, ids []model.RequestID) error
		MarkFulfillable(ctx context.Context, ids []model.RequestID) error
		ApplySlash(ctx context.Context, id model.RequestID, asset model.AssetID, actual, expected uint64) error
	}

	// Ledger is the slice of the balance ledger the engine drives.
	Ledger interface {
		Credit(asset model.AssetID, amount uint64, pool model.Pool) error
		Debit(asset model.AssetID, amount uint64, pool model.Pool) error
		Transfer(asset model.AssetID, amount uint64, from, to model.Pool) error
		Reconcile(ctx context.Context, asset model.AssetID) error
	}

	// Protocol is the withdraw path of the external restaking protocol.
	Protocol interface {
		BeginWithdrawal(ctx context.Context, node model.NodeID, assets []model.AssetID, shares []uint64) (model.WithdrawalReceipt, error)
		CompleteWithdrawal(ctx context.Context, receipt model.WithdrawalReceipt) (map[model.AssetID]uint64, error)
	}

	// NodeBook answers whether a node identity exists.
	NodeBook interface {
		Has(node model.NodeID) bool
	}

	// Store persists in-flight redemptions across restarts.
	Store interface {
		SaveRedemption(ctx context.Context, r model.Redemption) error
		DeleteRedemption(ctx context.Context, id model.RedemptionID) error
	}

	// Metrics observes engine activity.
	Metrics interface {
		ObserveSettle(err error, requests int)
		ObserveComplete(err error, receipts int, started time.Time)
		ObserveSlashing(asset model.AssetID, ratio float64)
		SetOpenRedemptions(n int)
	}

	// Recorder sinks audit events.
	Recorder interface {
		Record(ctx context.Context, event model.SettlementEvent)
	}
)

// NodeDraw proposes one external withdraw-from-node operation. Shares are
// parallel to Assets and are denominated in asset base units: one share
// redeems one base unit unless slashing intervenes.
type NodeDraw struct {
	Node   model.NodeID
	Assets []model.AssetID
	Shares []uint64
}
