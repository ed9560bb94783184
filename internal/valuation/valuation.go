// Package valuation converts asset amounts to and from the unit of account.
// The production price feed is an external collaborator; this package holds
// the interface plus an in-memory oracle used by tooling and tests.
package valuation

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

func newUint(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

var (
	ErrAssetNotFound   = errors.New("asset not registered with oracle")
	ErrZeroPrice       = errors.New("asset price must be nonzero")
	ErrPriceOutOfBound = errors.New("price update exceeds volatility threshold")
)

// Oracle is the valuation collaborator consumed by the rest of the system.
type Oracle interface {
	ConvertToUnitOfAccount(asset model.AssetID, amount uint64) (decimal.Decimal, error)
	ConvertFromUnitOfAccount(asset model.AssetID, value decimal.Decimal) (uint64, error)
}

// FixedOracle prices assets from a static table with guarded updates.
type FixedOracle struct {
	mu     sync.RWMutex
	assets map[model.AssetID]model.Asset
}

// NewFixedOracle registers the assets, rejecting zero prices.
func NewFixedOracle(assets ...model.Asset) (*FixedOracle, error) {
	o := &FixedOracle{assets: make(map[model.AssetID]model.Asset, len(assets))}
	for _, a := range assets {
		if !a.Price.IsPositive() {
			return nil, fmt.Errorf("asset %s: %w", a.ID, ErrZeroPrice)
		}
		o.assets[a.ID] = a
	}
	return o, nil
}

// UpdatePrice replaces the asset price. The relative move from the previous
// price must stay within the asset's volatility threshold; a price never
// becomes zero while the asset is registered.
func (o *FixedOracle) UpdatePrice(asset model.AssetID, price decimal.Decimal) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	a, ok := o.assets[asset]
	if !ok {
		return fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}
	if !price.IsPositive() {
		return fmt.Errorf("asset %s: %w", asset, ErrZeroPrice)
	}
	if a.VolatilityThreshold.IsPositive() {
		move := price.Sub(a.Price).Abs().Div(a.Price)
		if move.GreaterThan(a.VolatilityThreshold) {
			return fmt.Errorf("asset %s move %s: %w", asset, move, ErrPriceOutOfBound)
		}
	}
	a.Price = price
	o.assets[asset] = a
	return nil
}

// ConvertToUnitOfAccount values amount base units of the asset.
func (o *FixedOracle) ConvertToUnitOfAccount(asset model.AssetID, amount uint64) (decimal.Decimal, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	a, ok := o.assets[asset]
	if !ok {
		return decimal.Zero, fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}
	units := decimal.NewFromBigInt(newUint(amount), -int32(a.Decimals))
	return units.Mul(a.Price), nil
}

// ConvertFromUnitOfAccount returns the base-unit amount of the asset worth
// value, rounded down.
func (o *FixedOracle) ConvertFromUnitOfAccount(asset model.AssetID, value decimal.Decimal) (uint64, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	a, ok := o.assets[asset]
	if !ok {
		return 0, fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}
	units := value.Div(a.Price).Shift(int32(a.Decimals)).Floor()
	if units.IsNegative() {
		return 0, fmt.Errorf("asset %s: negative value %s", asset, value)
	}
	bi := units.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("asset %s: amount %s exceeds uint64", asset, units)
	}
	return bi.Uint64(), nil
}
