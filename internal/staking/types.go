// Package staking models the external restaking protocol and the token
// custody service as opaque remote collaborators. The system only consumes
// outcomes: receipts from begin calls and actually-received amounts from
// complete calls.
package staking

import (
	"context"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

type (
	// Protocol is the external restaking protocol. Begin and complete are
	// separated by an arbitrary, externally determined delay; a begun
	// withdrawal can never be aborted.
	Protocol interface {
		BeginWithdrawal(ctx context.Context, node model.NodeID, assets []model.AssetID, shares []uint64) (model.WithdrawalReceipt, error)
		CompleteWithdrawal(ctx context.Context, receipt model.WithdrawalReceipt) (map[model.AssetID]uint64, error)
		Delegate(ctx context.Context, node model.NodeID, operator model.OperatorID, proof []byte) error
		Undelegate(ctx context.Context, node model.NodeID) ([]model.WithdrawalReceipt, error)
		SharesOf(ctx context.Context, node model.NodeID, asset model.AssetID) (uint64, error)
	}

	// Custody is the service holding the pooled funds outside the nodes.
	Custody interface {
		BalanceOf(ctx context.Context, asset model.AssetID) (uint64, error)
		Transfer(ctx context.Context, recipient string, asset model.AssetID, amount uint64) error
		BurnShares(ctx context.Context, holder string, shares uint64) error
	}
)
