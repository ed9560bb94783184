package ledger

import (
	"context"
	"time"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Custodian reports the actual custodied balance of an asset, the
	// ground truth the stored pools are reconciled against.
	Custodian interface {
		BalanceOf(ctx context.Context, asset model.AssetID) (uint64, error)
	}

	// StakedView reports per-node share positions in the external protocol.
	StakedView interface {
		SharesOf(ctx context.Context, node model.NodeID, asset model.AssetID) (uint64, error)
	}

	// NodeLister enumerates the registered nodes.
	NodeLister interface {
		NodeIDs() []model.NodeID
	}

	// Metrics observes ledger state and reconciliation outcomes.
	Metrics interface {
		SetPool(asset model.AssetID, pool model.Pool, amount uint64)
		ObserveReconcile(asset model.AssetID, err error, started time.Time)
	}
)
