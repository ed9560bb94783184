// Package redemption implements the settlement verifier and the redemption
// engine. A settlement proves that a proposed combination of liquid and
// per-node draws exactly covers a set of pending withdrawal requests, then
// commits funds to the queued pool and issues the external withdrawals. A
// redemption tracks the receipts of those withdrawals until every one has
// completed; only then are actual amounts reconciled against expectations,
// slashing propagated, and the proceeds distributed.
package redemption

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/capability"
	"github.com/EigenExplorer/liquid-avs-token/internal/clock"
	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/pkg/safe"
	"github.com/EigenExplorer/liquid-avs-token/pkg/workerpool"
)

// Engine coordinates settlements and in-flight redemptions.
type Engine struct {
	mu          sync.Mutex
	logger      *zap.Logger
	clk         clock.Clock
	caps        capability.Table
	requests    RequestBook
	ledger      Ledger
	protocol    Protocol
	nodes       NodeBook
	store       Store
	metrics     Metrics
	recorder    Recorder
	workers     int
	redemptions map[model.RedemptionID]*model.Redemption
	nonce       uint64
}

// Config carries engine construction parameters.
type Config struct {
	// Workers bounds concurrent external begin/complete calls.
	Workers int
}

// NewEngine builds an Engine.
func NewEngine(
	logger *zap.Logger,
	clk clock.Clock,
	caps capability.Table,
	requests RequestBook,
	ledger Ledger,
	protocol Protocol,
	nodes NodeBook,
	store Store,
	metrics Metrics,
	recorder Recorder,
	cfg Config,
) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Engine{
		logger:      logger.Named("redemption"),
		clk:         clk,
		caps:        caps,
		requests:    requests,
		ledger:      ledger,
		protocol:    protocol,
		nodes:       nodes,
		store:       store,
		metrics:     metrics,
		recorder:    recorder,
		workers:     cfg.Workers,
		redemptions: make(map[model.RedemptionID]*model.Redemption),
	}
}

// Load primes the engine from persisted state at startup. The nonce
// resumes past the highest persisted value.
func (e *Engine) Load(redemptions []model.Redemption) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range redemptions {
		r := redemptions[i]
		e.redemptions[r.ID] = &r
		if r.Nonce > e.nonce {
			e.nonce = r.Nonce
		}
	}
	e.metrics.SetOpenRedemptions(len(e.redemptions))
}

// Settle verifies that the draws exactly satisfy the requests, commits the
// drawn amounts to the queued pool, and issues the external withdrawals.
// Requests move to committed; a fully-liquid settlement needs no external
// operation and flips them straight to fulfillable, returning an empty
// redemption id.
func (e *Engine) Settle(ctx context.Context, caller string, requestIDs []model.RequestID, liquidDraws map[model.AssetID]uint64, nodeDraws []NodeDraw) (model.RedemptionID, error) {
	var err error
	defer func() {
		e.metrics.ObserveSettle(err, len(requestIDs))
	}()

	if err = e.caps.Require(caller, capability.SettlementExecute); err != nil {
		return "", err
	}
	if len(requestIDs) == 0 {
		err = ErrNoRequests
		return "", err
	}
	for _, draw := range nodeDraws {
		if !e.nodes.Has(draw.Node) {
			err = fmt.Errorf("node %d: %w", draw.Node, ErrNodeNotRegistered)
			return "", err
		}
	}

	reqs, err := e.requests.Requests(requestIDs)
	if err != nil {
		return "", err
	}
	st, err := Verify(reqs, liquidDraws, nodeDraws)
	if err != nil {
		return "", err
	}
	if err = e.requests.Commit(ctx, requestIDs); err != nil {
		return "", err
	}
	if err = e.commitFunds(st); err != nil {
		if relErr := e.requests.Release(ctx, requestIDs); relErr != nil {
			e.logger.Error("release after failed fund commit", zap.Error(relErr))
		}
		return "", err
	}

	if len(nodeDraws) == 0 {
		if err = e.requests.MarkFulfillable(ctx, requestIDs); err != nil {
			return "", err
		}
		e.recorder.Record(ctx, model.SettlementEvent{
			Time:   e.clk.Now(),
			Kind:   model.EventSettlementExecuted,
			Detail: caller,
		})
		e.logger.Info("fully liquid settlement",
			zap.Int("requests", len(requestIDs)))
		return "", nil
	}

	receipts, beginErr := e.begin(ctx, nodeDraws)
	if beginErr != nil {
		err = e.rollbackSettlement(ctx, requestIDs, st, receipts, beginErr)
		return "", err
	}

	id, err := e.createRedemption(ctx, requestIDs, receipts, model.ReceiverRequests, st.NodeTotal)
	if err != nil {
		return "", err
	}
	e.recorder.Record(ctx, model.SettlementEvent{
		Time:       e.clk.Now(),
		Kind:       model.EventSettlementExecuted,
		Redemption: id,
		Detail:     caller,
	})
	e.logger.Info("settlement executed",
		zap.String("redemption", string(id)),
		zap.Int("requests", len(requestIDs)),
		zap.Int("receipts", len(receipts)))
	return id, nil
}

// Rebalance pulls funds out of nodes back toward the liquid pool without
// settling any request.
func (e *Engine) Rebalance(ctx context.Context, caller string, nodeDraws []NodeDraw) (model.RedemptionID, error) {
	if err := e.caps.Require(caller, capability.SettlementExecute); err != nil {
		return "", err
	}
	if len(nodeDraws) == 0 {
		return "", ErrNoDraws
	}
	if err := validateDraws(nodeDraws); err != nil {
		return "", err
	}
	for _, draw := range nodeDraws {
		if !e.nodes.Has(draw.Node) {
			return "", fmt.Errorf("node %d: %w", draw.Node, ErrNodeNotRegistered)
		}
	}

	totals, err := drawTotals(nodeDraws)
	if err != nil {
		return "", err
	}
	if err := e.creditQueued(totals); err != nil {
		return "", err
	}

	receipts, beginErr := e.begin(ctx, nodeDraws)
	if beginErr != nil {
		return "", e.rollbackRebalance(ctx, totals, receipts, beginErr)
	}

	id, err := e.createRedemption(ctx, nil, receipts, model.ReceiverLiquidPool, totals)
	if err != nil {
		return "", err
	}
	e.logger.Info("rebalance issued",
		zap.String("redemption", string(id)),
		zap.Int("receipts", len(receipts)))
	return id, nil
}

// RecordUndelegation wraps the receipts an undelegation produced into a
// rebalancing redemption so the in-flight funds are tracked to completion.
func (e *Engine) RecordUndelegation(ctx context.Context, node model.NodeID, receipts []model.WithdrawalReceipt) (model.RedemptionID, error) {
	if len(receipts) == 0 {
		return "", nil
	}
	totals, err := receiptTotals(receipts)
	if err != nil {
		return "", err
	}
	if err := e.creditQueued(totals); err != nil {
		return "", err
	}
	id, err := e.createRedemption(ctx, nil, receipts, model.ReceiverLiquidPool, totals)
	if err != nil {
		return "", err
	}
	e.recorder.Record(ctx, model.SettlementEvent{
		Time:       e.clk.Now(),
		Kind:       model.EventUndelegationRecorded,
		Redemption: id,
		Node:       node,
	})
	e.logger.Info("undelegation recorded",
		zap.Uint64("node", uint64(node)),
		zap.String("redemption", string(id)))
	return id, nil
}

// Complete consumes every receipt the redemption depends on, reconciles
// actual against expected amounts, propagates slashing into the settled
// requests, and distributes the proceeds. The receipt set must match
// exactly; a completed redemption is deleted, so a second call fails with
// ErrRedemptionNotFound.
func (e *Engine) Complete(ctx context.Context, caller string, id model.RedemptionID, receiptIDs []model.ReceiptID) error {
	started := time.Now()
	var err error
	var receiptCount int
	defer func() {
		e.metrics.ObserveComplete(err, receiptCount, started)
	}()

	if err = e.caps.Require(caller, capability.RedemptionComplete); err != nil {
		return err
	}

	e.mu.Lock()
	r, ok := e.redemptions[id]
	if !ok {
		e.mu.Unlock()
		err = fmt.Errorf("redemption %s: %w", id, ErrRedemptionNotFound)
		return err
	}
	receiptCount = len(r.Receipts)
	if !sameReceiptSet(r.ReceiptIDs(), receiptIDs) {
		e.mu.Unlock()
		err = fmt.Errorf("redemption %s: %w", id, ErrWithdrawalRootMissing)
		return err
	}
	snapshot := copyRedemption(r)
	e.mu.Unlock()

	// External completes are retryable: on any failure the redemption is
	// left untouched and no ledger state has changed.
	received, err := workerpool.Collect(ctx, e.workers, snapshot.Receipts,
		func(ctx context.Context, receipt model.WithdrawalReceipt) (map[model.AssetID]uint64, error) {
			amounts, completeErr := e.protocol.CompleteWithdrawal(ctx, receipt)
			if completeErr != nil {
				return nil, fmt.Errorf("complete receipt %s: %w", receipt.ID, completeErr)
			}
			return amounts, nil
		})
	if err != nil {
		return err
	}
	actual := make(map[model.AssetID]uint64)
	for _, amounts := range received {
		for asset, amount := range amounts {
			total, sumErr := safe.Add(actual[asset], amount)
			if sumErr != nil {
				err = fmt.Errorf("sum received %s: %w", asset, sumErr)
				return err
			}
			actual[asset] = total
		}
	}

	e.mu.Lock()
	if _, ok := e.redemptions[id]; !ok {
		e.mu.Unlock()
		err = fmt.Errorf("redemption %s: %w", id, ErrRedemptionNotFound)
		return err
	}
	delete(e.redemptions, id)
	e.metrics.SetOpenRedemptions(len(e.redemptions))
	e.mu.Unlock()

	if err = e.distribute(ctx, snapshot, actual); err != nil {
		return err
	}
	if err = e.store.DeleteRedemption(ctx, id); err != nil {
		return fmt.Errorf("delete persisted redemption: %w", err)
	}
	e.recorder.Record(ctx, model.SettlementEvent{
		Time:       e.clk.Now(),
		Kind:       model.EventRedemptionCompleted,
		Redemption: id,
		Detail:     caller,
	})
	e.logger.Info("redemption completed",
		zap.String("redemption", string(id)),
		zap.Int("receipts", receiptCount))
	return nil
}

// Redemption returns a copy of an in-flight redemption.
func (e *Engine) Redemption(id model.RedemptionID) (model.Redemption, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.redemptions[id]
	if !ok {
		return model.Redemption{}, fmt.Errorf("redemption %s: %w", id, ErrRedemptionNotFound)
	}
	return copyRedemption(r), nil
}

// Open returns the number of redemptions awaiting completion.
func (e *Engine) Open() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redemptions)
}

// distribute reconciles actual against expected per asset, slashes the
// settled requests where the protocol returned less than requested, and
// routes the proceeds to the redemption's receiver.
func (e *Engine) distribute(ctx context.Context, snapshot model.Redemption, actual map[model.AssetID]uint64) error {
	var reqs []model.WithdrawalRequest
	if len(snapshot.Requests) > 0 {
		var err error
		reqs, err = e.requests.Requests(snapshot.Requests)
		if err != nil {
			return err
		}
	}

	now := e.clk.Now()
	for _, asset := range assetUnion(snapshot.Expected, actual) {
		exp, act := snapshot.Expected[asset], actual[asset]
		switch {
		case act < exp:
			if err := e.ledger.Debit(asset, exp-act, model.PoolQueued); err != nil {
				return err
			}
			e.metrics.ObserveSlashing(asset, float64(act)/float64(exp))
			e.recorder.Record(ctx, model.SettlementEvent{
				Time:       now,
				Kind:       model.EventSlashingApplied,
				Redemption: snapshot.ID,
				Asset:      asset,
				Expected:   exp,
				Actual:     act,
			})
			for _, req := range reqs {
				if req.RequestedAmount(asset) == 0 {
					continue
				}
				if err := e.requests.ApplySlash(ctx, req.ID, asset, act, exp); err != nil {
					return err
				}
			}
		case act > exp:
			// The protocol never credits users above what they requested;
			// the upside stays with the pool.
			if err := e.ledger.Credit(asset, act-exp, model.PoolQueued); err != nil {
				return err
			}
			e.recorder.Record(ctx, model.SettlementEvent{
				Time:       now,
				Kind:       model.EventSurplusRetained,
				Redemption: snapshot.ID,
				Asset:      asset,
				Expected:   exp,
				Actual:     act,
			})
		}
		if snapshot.Receiver == model.ReceiverLiquidPool && act > 0 {
			if err := e.ledger.Transfer(asset, act, model.PoolQueued, model.PoolLiquid); err != nil {
				return err
			}
		}
		if err := e.ledger.Reconcile(ctx, asset); err != nil {
			return err
		}
	}

	if snapshot.Receiver == model.ReceiverRequests && len(snapshot.Requests) > 0 {
		if err := e.requests.MarkFulfillable(ctx, snapshot.Requests); err != nil {
			return err
		}
	}
	return nil
}

// begin issues the external withdrawals with bounded concurrency. On
// failure the receipts issued before the first error are still returned so
// the caller can preserve them.
func (e *Engine) begin(ctx context.Context, draws []NodeDraw) ([]model.WithdrawalReceipt, error) {
	receipts, err := workerpool.Collect(ctx, e.workers, draws,
		func(ctx context.Context, draw NodeDraw) (model.WithdrawalReceipt, error) {
			receipt, beginErr := e.protocol.BeginWithdrawal(ctx, draw.Node, draw.Assets, draw.Shares)
			if beginErr != nil {
				return model.WithdrawalReceipt{}, BeginError{Node: draw.Node, Err: beginErr}
			}
			return receipt, nil
		})
	if err != nil {
		issued := receipts[:0:0]
		for _, receipt := range receipts {
			if receipt.ID != "" {
				issued = append(issued, receipt)
			}
		}
		return issued, err
	}
	return receipts, nil
}

// rollbackSettlement undoes a settlement whose begin batch failed partway.
// The liquid draw returns to the liquid pool, queued credits for never-begun
// node draws are removed, and the requests go back to pending. Receipts that
// were issued before the failure cannot be aborted, so they are preserved in
// a rebalancing redemption.
func (e *Engine) rollbackSettlement(ctx context.Context, requestIDs []model.RequestID, st Settlement, issued []model.WithdrawalReceipt, beginErr error) error {
	issuedTotals, err := receiptTotals(issued)
	if err != nil {
		return errors.Join(beginErr, err)
	}
	for asset, amount := range st.Liquid {
		if err := e.ledger.Transfer(asset, amount, model.PoolQueued, model.PoolLiquid); err != nil {
			e.logger.Error("rollback liquid draw", zap.String("asset", string(asset)), zap.Error(err))
		}
	}
	for asset, amount := range st.NodeTotal {
		unbegun := amount - issuedTotals[asset]
		if unbegun == 0 {
			continue
		}
		if err := e.ledger.Debit(asset, unbegun, model.PoolQueued); err != nil {
			e.logger.Error("rollback node draw", zap.String("asset", string(asset)), zap.Error(err))
		}
	}
	if err := e.requests.Release(ctx, requestIDs); err != nil {
		e.logger.Error("release requests after failed begin", zap.Error(err))
	}
	e.recorder.Record(ctx, model.SettlementEvent{
		Time:   e.clk.Now(),
		Kind:   model.EventSettlementRolledBack,
		Detail: beginErr.Error(),
	})

	var be BeginError
	if !errors.As(beginErr, &be) {
		be = BeginError{Err: beginErr}
	}
	if len(issued) > 0 {
		preserved, createErr := e.createRedemption(ctx, nil, issued, model.ReceiverLiquidPool, issuedTotals)
		if createErr != nil {
			return errors.Join(be, createErr)
		}
		be.Preserved = preserved
	}
	return be
}

func (e *Engine) rollbackRebalance(ctx context.Context, totals map[model.AssetID]uint64, issued []model.WithdrawalReceipt, beginErr error) error {
	issuedTotals, err := receiptTotals(issued)
	if err != nil {
		return errors.Join(beginErr, err)
	}
	for asset, amount := range totals {
		unbegun := amount - issuedTotals[asset]
		if unbegun == 0 {
			continue
		}
		if err := e.ledger.Debit(asset, unbegun, model.PoolQueued); err != nil {
			e.logger.Error("rollback rebalance credit", zap.String("asset", string(asset)), zap.Error(err))
		}
	}

	var be BeginError
	if !errors.As(beginErr, &be) {
		be = BeginError{Err: beginErr}
	}
	if len(issued) > 0 {
		preserved, createErr := e.createRedemption(ctx, nil, issued, model.ReceiverLiquidPool, issuedTotals)
		if createErr != nil {
			return errors.Join(be, createErr)
		}
		be.Preserved = preserved
	}
	return be
}

// commitFunds moves the settlement's amounts into the queued pool: the
// liquid portion by pool transfer, the node portion by credit in
// anticipation of the external withdrawals. Partial failures are undone.
func (e *Engine) commitFunds(st Settlement) error {
	var undo []func()
	fail := func(err error) error {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return err
	}
	for asset, amount := range st.Liquid {
		if err := e.ledger.Transfer(asset, amount, model.PoolLiquid, model.PoolQueued); err != nil {
			return fail(err)
		}
		undo = append(undo, func() {
			if err := e.ledger.Transfer(asset, amount, model.PoolQueued, model.PoolLiquid); err != nil {
				e.logger.Error("undo liquid commit", zap.String("asset", string(asset)), zap.Error(err))
			}
		})
	}
	for asset, amount := range st.NodeTotal {
		if err := e.ledger.Credit(asset, amount, model.PoolQueued); err != nil {
			return fail(err)
		}
		undo = append(undo, func() {
			if err := e.ledger.Debit(asset, amount, model.PoolQueued); err != nil {
				e.logger.Error("undo queued credit", zap.String("asset", string(asset)), zap.Error(err))
			}
		})
	}
	return nil
}

func (e *Engine) creditQueued(totals map[model.AssetID]uint64) error {
	var done []model.AssetID
	for asset, amount := range totals {
		if err := e.ledger.Credit(asset, amount, model.PoolQueued); err != nil {
			for _, prev := range done {
				if undoErr := e.ledger.Debit(prev, totals[prev], model.PoolQueued); undoErr != nil {
					e.logger.Error("undo queued credit", zap.String("asset", string(prev)), zap.Error(undoErr))
				}
			}
			return err
		}
		done = append(done, asset)
	}
	return nil
}

func (e *Engine) createRedemption(ctx context.Context, requestIDs []model.RequestID, receipts []model.WithdrawalReceipt, receiver model.Receiver, expected map[model.AssetID]uint64) (model.RedemptionID, error) {
	e.mu.Lock()
	e.nonce++
	ids := make([]model.ReceiptID, 0, len(receipts))
	for _, receipt := range receipts {
		ids = append(ids, receipt.ID)
	}
	r := model.Redemption{
		ID:        model.NewRedemptionID(ids, e.nonce),
		Requests:  append([]model.RequestID(nil), requestIDs...),
		Receipts:  append([]model.WithdrawalReceipt(nil), receipts...),
		Receiver:  receiver,
		Expected:  expected,
		CreatedAt: e.clk.Now(),
		Nonce:     e.nonce,
	}
	if err := e.store.SaveRedemption(ctx, r); err != nil {
		e.mu.Unlock()
		return "", fmt.Errorf("persist redemption: %w", err)
	}
	e.redemptions[r.ID] = &r
	e.metrics.SetOpenRedemptions(len(e.redemptions))
	e.mu.Unlock()

	e.recorder.Record(ctx, model.SettlementEvent{
		Time:       r.CreatedAt,
		Kind:       model.EventRedemptionCreated,
		Redemption: r.ID,
	})
	return r.ID, nil
}

func drawTotals(draws []NodeDraw) (map[model.AssetID]uint64, error) {
	totals := make(map[model.AssetID]uint64)
	for _, draw := range draws {
		for i, asset := range draw.Assets {
			total, err := safe.Add(totals[asset], draw.Shares[i])
			if err != nil {
				return nil, fmt.Errorf("sum draws %s: %w", asset, err)
			}
			totals[asset] = total
		}
	}
	return totals, nil
}

func receiptTotals(receipts []model.WithdrawalReceipt) (map[model.AssetID]uint64, error) {
	totals := make(map[model.AssetID]uint64)
	for _, receipt := range receipts {
		for i, asset := range receipt.Assets {
			total, err := safe.Add(totals[asset], receipt.Shares[i])
			if err != nil {
				return nil, fmt.Errorf("sum receipts %s: %w", asset, err)
			}
			totals[asset] = total
		}
	}
	return totals, nil
}

// sameReceiptSet compares as sets, so a duplicate-padded partial list can
// never masquerade as the full receipt set.
func sameReceiptSet(want, got []model.ReceiptID) bool {
	wantSet := make(map[model.ReceiptID]struct{}, len(want))
	for _, id := range want {
		wantSet[id] = struct{}{}
	}
	gotSet := make(map[model.ReceiptID]struct{}, len(got))
	for _, id := range got {
		if _, ok := wantSet[id]; !ok {
			return false
		}
		gotSet[id] = struct{}{}
	}
	return len(gotSet) == len(wantSet)
}

func copyRedemption(r *model.Redemption) model.Redemption {
	out := *r
	out.Requests = append([]model.RequestID(nil), r.Requests...)
	out.Receipts = append([]model.WithdrawalReceipt(nil), r.Receipts...)
	out.Expected = make(map[model.AssetID]uint64, len(r.Expected))
	for asset, amount := range r.Expected {
		out.Expected[asset] = amount
	}
	return out
}

func assetUnion(a, b map[model.AssetID]uint64) []model.AssetID {
	seen := make(map[model.AssetID]struct{}, len(a)+len(b))
	out := make([]model.AssetID, 0, len(a)+len(b))
	for asset := range a {
		seen[asset] = struct{}{}
		out = append(out, asset)
	}
	for asset := range b {
		if _, ok := seen[asset]; !ok {
			out = append(out, asset)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
