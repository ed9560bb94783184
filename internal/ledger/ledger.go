// Package ledger tracks the two stored balance pools of every registered
// asset. The liquid pool holds idle custodied funds; the queued pool holds
// funds logically committed to in-flight settlement. The staked portion
// lives in the external protocol and is derived on demand, never stored.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/pkg/safe"
)

type poolState struct {
	liquid uint64
	queued uint64
}

// Ledger is the per-asset balance book. All mutations hold one lock, so a
// settlement's ledger moves are atomic relative to other operations.
type Ledger struct {
	mu        sync.Mutex
	logger    *zap.Logger
	custodian Custodian
	staked    StakedView
	nodes     NodeLister
	metrics   Metrics
	assets    map[model.AssetID]model.Asset
	pools     map[model.AssetID]*poolState
}

// New builds a Ledger. staked and nodes back StakedValue and may be nil in
// deployments that never derive staked totals.
func New(logger *zap.Logger, custodian Custodian, staked StakedView, nodes NodeLister, metrics Metrics) *Ledger {
	return &Ledger{
		logger:    logger.Named("ledger"),
		custodian: custodian,
		staked:    staked,
		nodes:     nodes,
		metrics:   metrics,
		assets:    make(map[model.AssetID]model.Asset),
		pools:     make(map[model.AssetID]*poolState),
	}
}

// RegisterAsset adds an asset to the book. A registered asset's price is
// never zero.
func (l *Ledger) RegisterAsset(asset model.Asset) error {
	if !asset.Price.IsPositive() {
		return fmt.Errorf("asset %s has zero price", asset.ID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[asset.ID]; ok {
		return fmt.Errorf("asset %s: %w", asset.ID, ErrAssetAlreadyRegistered)
	}
	l.assets[asset.ID] = asset
	l.pools[asset.ID] = &poolState{}
	l.logger.Info("asset registered", zap.String("asset", string(asset.ID)), zap.Uint8("decimals", asset.Decimals))
	return nil
}

// HasAsset reports whether the asset is registered.
func (l *Ledger) HasAsset(asset model.AssetID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.assets[asset]
	return ok
}

// Assets returns the registered asset identifiers in stable order.
func (l *Ledger) Assets() []model.AssetID {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]model.AssetID, 0, len(l.assets))
	for id := range l.assets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Credit increases the pool balance of the asset.
func (l *Ledger) Credit(asset model.AssetID, amount uint64, pool model.Pool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.credit(asset, amount, pool)
}

// Debit decreases the pool balance, failing with ErrInsufficientBalance
// when the pool does not cover the amount.
func (l *Ledger) Debit(asset model.AssetID, amount uint64, pool model.Pool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debit(asset, amount, pool)
}

// Transfer atomically moves amount between two pools of the asset.
func (l *Ledger) Transfer(asset model.AssetID, amount uint64, from, to model.Pool) error {
	if from == to {
		return fmt.Errorf("transfer within pool %s", from)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.debit(asset, amount, from); err != nil {
		return err
	}
	if err := l.credit(asset, amount, to); err != nil {
		// The credit can only fail on overflow; restore the debited pool.
		if restoreErr := l.credit(asset, amount, from); restoreErr != nil {
			return fmt.Errorf("restore after failed transfer: %w", restoreErr)
		}
		return err
	}
	return nil
}

// Pools returns a snapshot of the stored pools of the asset.
func (l *Ledger) Pools(asset model.AssetID) (model.BalancePools, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.pools[asset]
	if !ok {
		return model.BalancePools{}, fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}
	return model.BalancePools{Asset: asset, Liquid: state.liquid, Queued: state.queued}, nil
}

// Reconcile asserts liquid+queued <= custodied for the asset. Callers run
// it after every operation that moves external funds. A violation means an
// external transfer bypassed the ledger; it surfaces and is never corrected.
func (l *Ledger) Reconcile(ctx context.Context, asset model.AssetID) error {
	started := time.Now()
	var err error
	defer func() {
		l.metrics.ObserveReconcile(asset, err, started)
	}()

	custodied, err := l.custodian.BalanceOf(ctx, asset)
	if err != nil {
		return fmt.Errorf("custodied balance of %s: %w", asset, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.pools[asset]
	if !ok {
		err = fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
		return err
	}

	stored, sumErr := safe.Add(state.liquid, state.queued)
	if sumErr != nil || stored > custodied {
		err = OutOfSyncError{Asset: asset, Liquid: state.liquid, Queued: state.queued, Custodied: custodied}
		l.logger.Error("custody reconciliation failed", zap.Error(err))
		return err
	}
	return nil
}

// StakedValue derives the asset's total staked amount by summing every
// node's share position in the external protocol.
func (l *Ledger) StakedValue(ctx context.Context, asset model.AssetID) (uint64, error) {
	if !l.HasAsset(asset) {
		return 0, fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}
	if l.staked == nil || l.nodes == nil {
		return 0, fmt.Errorf("staked view not configured")
	}

	var total uint64
	for _, node := range l.nodes.NodeIDs() {
		shares, err := l.staked.SharesOf(ctx, node, asset)
		if err != nil {
			return 0, fmt.Errorf("shares of node %d: %w", node, err)
		}
		total, err = safe.Add(total, shares)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (l *Ledger) credit(asset model.AssetID, amount uint64, pool model.Pool) error {
	state, ok := l.pools[asset]
	if !ok {
		return fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}

	target, err := l.pool(state, pool)
	if err != nil {
		return err
	}
	next, err := safe.Add(*target, amount)
	if err != nil {
		return err
	}
	*target = next
	l.metrics.SetPool(asset, pool, next)
	return nil
}

func (l *Ledger) debit(asset model.AssetID, amount uint64, pool model.Pool) error {
	state, ok := l.pools[asset]
	if !ok {
		return fmt.Errorf("asset %s: %w", asset, ErrAssetNotFound)
	}

	target, err := l.pool(state, pool)
	if err != nil {
		return err
	}
	if *target < amount {
		return fmt.Errorf("debit %d from %s pool of %s holding %d: %w",
			amount, pool, asset, *target, ErrInsufficientBalance)
	}
	*target -= amount
	l.metrics.SetPool(asset, pool, *target)
	return nil
}

func (l *Ledger) pool(state *poolState, pool model.Pool) (*uint64, error) {
	switch pool {
	case model.PoolLiquid:
		return &state.liquid, nil
	case model.PoolQueued:
		return &state.queued, nil
	default:
		return nil, fmt.Errorf("unknown pool %q", pool)
	}
}
