package model

import "github.com/shopspring/decimal"

// AssetID identifies a registered yield-bearing asset.
type AssetID string

// Pool names one of the two stored balance pools of an asset. The staked
// portion is derived from the external protocol on demand and never stored.
type Pool string

const (
	PoolLiquid Pool = "liquid"
	PoolQueued Pool = "queued"
)

// Asset describes a registered asset. Price is expressed in the unit of
// account per whole token; amounts elsewhere are uint64 base units scaled
// by Decimals.
type Asset struct {
	ID                  AssetID
	Decimals            uint8
	Price               decimal.Decimal
	VolatilityThreshold decimal.Decimal
}

// BalancePools is a point-in-time snapshot of the stored pools of an asset.
type BalancePools struct {
	Asset  AssetID
	Liquid uint64
	Queued uint64
}
