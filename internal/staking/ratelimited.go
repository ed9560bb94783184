package staking

import (
	"context"

	"go.uber.org/ratelimit"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

// RateLimited throttles calls to the external protocol so batched
// settlements do not overwhelm the gateway.
type RateLimited struct {
	inner   Protocol
	limiter ratelimit.Limiter
}

// NewRateLimited wraps inner with an rps requests-per-second limit.
func NewRateLimited(inner Protocol, rps int) *RateLimited {
	if rps <= 0 {
		rps = 10
	}
	return &RateLimited{inner: inner, limiter: ratelimit.New(rps)}
}

func (r *RateLimited) BeginWithdrawal(ctx context.Context, node model.NodeID, assets []model.AssetID, shares []uint64) (model.WithdrawalReceipt, error) {
	r.limiter.Take()
	return r.inner.BeginWithdrawal(ctx, node, assets, shares)
}

func (r *RateLimited) CompleteWithdrawal(ctx context.Context, receipt model.WithdrawalReceipt) (map[model.AssetID]uint64, error) {
	r.limiter.Take()
	return r.inner.CompleteWithdrawal(ctx, receipt)
}

func (r *RateLimited) Delegate(ctx context.Context, node model.NodeID, operator model.OperatorID, proof []byte) error {
	r.limiter.Take()
	return r.inner.Delegate(ctx, node, operator, proof)
}

func (r *RateLimited) Undelegate(ctx context.Context, node model.NodeID) ([]model.WithdrawalReceipt, error) {
	r.limiter.Take()
	return r.inner.Undelegate(ctx, node)
}

func (r *RateLimited) SharesOf(ctx context.Context, node model.NodeID, asset model.AssetID) (uint64, error) {
	r.limiter.Take()
	return r.inner.SharesOf(ctx, node, asset)
}
