package withdrawal

import (
	"context"
	"time"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store persists requests and per-user nonces.
	Store interface {
		SaveRequest(ctx context.Context, req model.WithdrawalRequest) error
		DeleteRequest(ctx context.Context, id model.RequestID) error
		SaveNonce(ctx context.Context, user string, nonce uint64) error
	}

	// Ledger is the slice of the balance ledger the queue drives.
	Ledger interface {
		HasAsset(asset model.AssetID) bool
		Credit(asset model.AssetID, amount uint64, pool model.Pool) error
		Debit(asset model.AssetID, amount uint64, pool model.Pool) error
		Reconcile(ctx context.Context, asset model.AssetID) error
	}

	// Payer moves custodied funds to a user.
	Payer interface {
		Transfer(ctx context.Context, recipient string, asset model.AssetID, amount uint64) error
	}

	// SharePool burns share tokens escrowed by a request.
	SharePool interface {
		BurnShares(ctx context.Context, holder string, shares uint64) error
	}

	// Metrics observes queue activity.
	Metrics interface {
		ObserveCreate(err error)
		ObserveFulfill(err error, started time.Time)
		SetQueueDepth(depth int)
	}

	// Recorder sinks audit events; failures are the sink's concern.
	Recorder interface {
		Record(ctx context.Context, event model.SettlementEvent)
	}
)
