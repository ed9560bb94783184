package redemption

import (
	"fmt"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/pkg/safe"
)

// Settlement is the per-asset proof that a proposed draw combination
// exactly covers a set of withdrawal requests. It is produced by Verify
// and consumed by the engine when committing funds.
type Settlement struct {
	// Requested is the total amount the targeted requests demand per asset.
	Requested map[model.AssetID]uint64
	// Liquid is the portion drawn from the idle pool per asset.
	Liquid map[model.AssetID]uint64
	// NodeTotal is the portion drawn from nodes per asset, summed across
	// all node draws.
	NodeTotal map[model.AssetID]uint64
}

// Verify proves that liquid plus node draws exactly satisfy the requests.
// Exactness holds in both directions: a deficit would under-fund
// withdrawals and a surplus would strand funds in the queued pool, so any
// mismatch on any touched asset fails with RequestsDoNotSettleError and
// nothing may proceed.
func Verify(requests []model.WithdrawalRequest, liquid map[model.AssetID]uint64, draws []NodeDraw) (Settlement, error) {
	if err := validateDraws(draws); err != nil {
		return Settlement{}, err
	}

	s := Settlement{
		Requested: make(map[model.AssetID]uint64),
		Liquid:    make(map[model.AssetID]uint64, len(liquid)),
		NodeTotal: make(map[model.AssetID]uint64),
	}

	for _, req := range requests {
		for i, asset := range req.Assets {
			total, err := safe.Add(s.Requested[asset], req.Amounts[i])
			if err != nil {
				return Settlement{}, fmt.Errorf("sum requested %s: %w", asset, err)
			}
			s.Requested[asset] = total
		}
	}
	for asset, amount := range liquid {
		if amount == 0 {
			return Settlement{}, fmt.Errorf("liquid draw of %s: %w", asset, ErrZeroDraw)
		}
		s.Liquid[asset] = amount
	}
	for _, draw := range draws {
		for i, asset := range draw.Assets {
			total, err := safe.Add(s.NodeTotal[asset], draw.Shares[i])
			if err != nil {
				return Settlement{}, fmt.Errorf("sum node draws %s: %w", asset, err)
			}
			s.NodeTotal[asset] = total
		}
	}

	for asset, want := range s.Requested {
		proposed, err := safe.Add(s.Liquid[asset], s.NodeTotal[asset])
		if err != nil {
			return Settlement{}, fmt.Errorf("sum draws %s: %w", asset, err)
		}
		if proposed != want {
			return Settlement{}, RequestsDoNotSettleError{Asset: asset, Expected: want, Actual: proposed}
		}
	}
	// Draws touching an asset no request demands are a surplus of that
	// asset, symmetric with the deficit case above.
	for asset := range s.Liquid {
		if _, ok := s.Requested[asset]; !ok {
			return Settlement{}, RequestsDoNotSettleError{Asset: asset, Expected: 0, Actual: s.Liquid[asset]}
		}
	}
	for asset := range s.NodeTotal {
		if _, ok := s.Requested[asset]; !ok {
			return Settlement{}, RequestsDoNotSettleError{Asset: asset, Expected: 0, Actual: s.NodeTotal[asset]}
		}
	}
	return s, nil
}

func validateDraws(draws []NodeDraw) error {
	for _, draw := range draws {
		if len(draw.Assets) == 0 || len(draw.Assets) != len(draw.Shares) {
			return fmt.Errorf("node %d: %w", draw.Node, ErrDrawLengthMismatch)
		}
		seen := make(map[model.AssetID]struct{}, len(draw.Assets))
		for i, asset := range draw.Assets {
			if draw.Shares[i] == 0 {
				return fmt.Errorf("node %d asset %s: %w", draw.Node, asset, ErrZeroDraw)
			}
			if _, dup := seen[asset]; dup {
				return fmt.Errorf("node %d asset %s: %w", draw.Node, asset, ErrDuplicateDrawAsset)
			}
			seen[asset] = struct{}{}
		}
	}
	return nil
}
