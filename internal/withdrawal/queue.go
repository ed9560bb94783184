// Package withdrawal implements the queue of pending user withdrawal
// requests. Requests escrow burned shares at creation, become fulfillable
// once a settlement confirms their backing funds, and are deleted when the
// owner collects after the withdrawal delay.
package withdrawal

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/capability"
	"github.com/EigenExplorer/liquid-avs-token/internal/clock"
	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/pkg/safe"
)

// Queue is the withdrawal request book.
type Queue struct {
	mu       sync.Mutex
	logger   *zap.Logger
	clk      clock.Clock
	caps     capability.Table
	delay    time.Duration
	store    Store
	ledger   Ledger
	payer    Payer
	shares   SharePool
	metrics  Metrics
	recorder Recorder
	requests map[model.RequestID]*model.WithdrawalRequest
	nonces   map[string]uint64
}

// Config carries queue construction parameters.
type Config struct {
	// Delay is the minimum time between request creation and fulfillment,
	// independent of the external protocol's own withdrawal delay.
	Delay time.Duration
}

// DefaultDelay guards fulfillment when no delay is configured.
const DefaultDelay = 14 * 24 * time.Hour

// New builds a Queue.
func New(
	logger *zap.Logger,
	clk clock.Clock,
	caps capability.Table,
	store Store,
	ledger Ledger,
	payer Payer,
	shares SharePool,
	metrics Metrics,
	recorder Recorder,
	cfg Config,
) *Queue {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	return &Queue{
		logger:   logger.Named("withdrawal"),
		clk:      clk,
		caps:     caps,
		delay:    cfg.Delay,
		store:    store,
		ledger:   ledger,
		payer:    payer,
		shares:   shares,
		metrics:  metrics,
		recorder: recorder,
		requests: make(map[model.RequestID]*model.WithdrawalRequest),
		nonces:   make(map[string]uint64),
	}
}

// Load primes the queue from persisted state at startup.
func (q *Queue) Load(requests []model.WithdrawalRequest, nonces map[string]uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range requests {
		req := requests[i]
		q.requests[req.ID] = &req
	}
	for user, nonce := range nonces {
		q.nonces[user] = nonce
	}
	q.metrics.SetQueueDepth(len(q.requests))
}

// Create records a withdrawal intent. The user's shares covering the
// request are already burned into escrow by the share-token component;
// the request starts unfulfillable until a settlement confirms funds.
func (q *Queue) Create(ctx context.Context, user string, assets []model.AssetID, amounts []uint64, escrowedShares uint64) (model.RequestID, error) {
	var err error
	defer func() {
		q.metrics.ObserveCreate(err)
	}()

	if err = q.caps.Require(user, capability.WithdrawalCreate); err != nil {
		return "", err
	}
	if err = validateRequest(assets, amounts, escrowedShares); err != nil {
		return "", err
	}
	for _, asset := range assets {
		if !q.ledger.HasAsset(asset) {
			err = fmt.Errorf("asset %s: %w", asset, ErrUnsupportedAsset)
			return "", err
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	nonce := q.nonces[user] + 1
	createdAt := q.clk.Now()
	id := model.NewRequestID(user, assets, amounts, createdAt, nonce)
	if _, exists := q.requests[id]; exists {
		err = fmt.Errorf("request %s already exists", id)
		return "", err
	}

	req := model.WithdrawalRequest{
		ID:             id,
		User:           user,
		Assets:         append([]model.AssetID(nil), assets...),
		Amounts:        append([]uint64(nil), amounts...),
		Withdrawable:   append([]uint64(nil), amounts...),
		EscrowedShares: escrowedShares,
		CreatedAt:      createdAt,
		Nonce:          nonce,
		State:          model.RequestPending,
	}

	if err = q.store.SaveNonce(ctx, user, nonce); err != nil {
		return "", fmt.Errorf("persist nonce: %w", err)
	}
	if err = q.store.SaveRequest(ctx, req); err != nil {
		return "", fmt.Errorf("persist request: %w", err)
	}

	q.nonces[user] = nonce
	q.requests[id] = &req
	q.metrics.SetQueueDepth(len(q.requests))
	q.recorder.Record(ctx, model.SettlementEvent{
		Time:    createdAt,
		Kind:    model.EventRequestCreated,
		Request: id,
		Detail:  user,
	})
	q.logger.Info("withdrawal requested",
		zap.String("request", string(id)),
		zap.String("user", user),
		zap.Int("assets", len(assets)))
	return id, nil
}

// Fulfill pays the (possibly slashed) withdrawable amounts to the request
// owner and deletes the request. Both the withdrawal delay and
// fulfillability must hold.
func (q *Queue) Fulfill(ctx context.Context, caller string, id model.RequestID) error {
	started := time.Now()
	var err error
	defer func() {
		q.metrics.ObserveFulfill(err, started)
	}()

	q.mu.Lock()
	req, ok := q.requests[id]
	if !ok {
		q.mu.Unlock()
		err = fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
		return err
	}
	if req.User != caller {
		q.mu.Unlock()
		err = fmt.Errorf("request %s: %w", id, ErrNotRequestOwner)
		return err
	}
	now := q.clk.Now()
	if now.Before(req.CreatedAt.Add(q.delay)) {
		q.mu.Unlock()
		err = fmt.Errorf("request %s fulfillable at %s: %w",
			id, req.CreatedAt.Add(q.delay).Format(time.RFC3339), ErrWithdrawalDelayNotMet)
		return err
	}
	if !req.CanFulfill() {
		q.mu.Unlock()
		err = fmt.Errorf("request %s: %w", id, ErrWithdrawalNotReadyToFulfill)
		return err
	}

	payout := copyRequest(req)
	delete(q.requests, id)
	q.metrics.SetQueueDepth(len(q.requests))
	q.mu.Unlock()

	// Ledger state changes first, fund movements second, one asset at a
	// time. A failed transfer re-credits that asset's debit and restores
	// the request with only the unpaid remainder, so nothing already paid
	// can be collected twice and nothing unpaid is stranded.
	for i, asset := range payout.Assets {
		amount := payout.Withdrawable[i]
		if amount == 0 {
			continue
		}
		if err = q.ledger.Debit(asset, amount, model.PoolQueued); err != nil {
			q.restore(ctx, payout)
			return err
		}
		if err = q.payer.Transfer(ctx, payout.User, asset, amount); err != nil {
			if creditErr := q.ledger.Credit(asset, amount, model.PoolQueued); creditErr != nil {
				q.logger.Error("re-credit queued after failed payout",
					zap.String("request", string(id)),
					zap.String("asset", string(asset)),
					zap.Error(creditErr))
			}
			q.restore(ctx, payout)
			err = fmt.Errorf("pay %s: %w", asset, err)
			return err
		}
		payout.Withdrawable[i] = 0
	}
	for _, asset := range payout.Assets {
		if err = q.ledger.Reconcile(ctx, asset); err != nil {
			q.restore(ctx, payout)
			return err
		}
	}
	if err = q.shares.BurnShares(ctx, payout.User, payout.EscrowedShares); err != nil {
		q.restore(ctx, payout)
		err = fmt.Errorf("burn escrowed shares: %w", err)
		return err
	}
	if err = q.store.DeleteRequest(ctx, id); err != nil {
		q.restore(ctx, payout)
		err = fmt.Errorf("delete persisted request: %w", err)
		return err
	}

	q.recorder.Record(ctx, model.SettlementEvent{
		Time:    now,
		Kind:    model.EventRequestFulfilled,
		Request: id,
		Detail:  payout.User,
	})
	q.logger.Info("withdrawal fulfilled",
		zap.String("request", string(id)),
		zap.String("user", payout.User))
	return nil
}

// restore puts a partially fulfilled request back in the queue so the
// unpaid remainder stays retryable, and persists the reduced withdrawable
// amounts so a restart cannot resurrect amounts already paid out.
func (q *Queue) restore(ctx context.Context, req model.WithdrawalRequest) {
	q.mu.Lock()
	q.requests[req.ID] = &req
	q.metrics.SetQueueDepth(len(q.requests))
	q.mu.Unlock()

	if err := q.store.SaveRequest(ctx, req); err != nil {
		q.logger.Error("persist partially fulfilled request",
			zap.String("request", string(req.ID)),
			zap.Error(err))
	}
}

// Request returns a copy of the request.
func (q *Queue) Request(id model.RequestID) (model.WithdrawalRequest, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	req, ok := q.requests[id]
	if !ok {
		return model.WithdrawalRequest{}, fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
	}
	return copyRequest(req), nil
}

// RequestsByUser returns the user's live requests, oldest first.
func (q *Queue) RequestsByUser(user string) []model.WithdrawalRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]model.WithdrawalRequest, 0, 4)
	for _, req := range q.requests {
		if req.User == user {
			out = append(out, copyRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Nonce < out[j].Nonce
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Requests returns copies of the identified requests, failing if any is
// missing.
func (q *Queue) Requests(ids []model.RequestID) ([]model.WithdrawalRequest, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]model.WithdrawalRequest, 0, len(ids))
	for _, id := range ids {
		req, ok := q.requests[id]
		if !ok {
			return nil, fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
		}
		out = append(out, copyRequest(req))
	}
	return out, nil
}

// Commit binds pending requests to a settlement. All-or-nothing: if any
// request is missing or not pending, no state changes.
func (q *Queue) Commit(ctx context.Context, ids []model.RequestID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	reqs := make([]*model.WithdrawalRequest, 0, len(ids))
	for _, id := range ids {
		req, ok := q.requests[id]
		if !ok {
			return fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
		}
		if req.State != model.RequestPending {
			return fmt.Errorf("request %s: %w", id, ErrRequestNotPending)
		}
		reqs = append(reqs, req)
	}
	return q.transition(ctx, reqs, model.RequestCommitted)
}

// Release returns committed requests to pending after a failed settlement.
func (q *Queue) Release(ctx context.Context, ids []model.RequestID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	reqs := make([]*model.WithdrawalRequest, 0, len(ids))
	for _, id := range ids {
		req, ok := q.requests[id]
		if !ok {
			return fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
		}
		if req.State != model.RequestCommitted {
			return fmt.Errorf("request %s: %w", id, ErrRequestNotCommitted)
		}
		reqs = append(reqs, req)
	}
	return q.transition(ctx, reqs, model.RequestPending)
}

// MarkFulfillable flips committed requests to fulfillable once their
// backing funds are confirmed available.
func (q *Queue) MarkFulfillable(ctx context.Context, ids []model.RequestID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	reqs := make([]*model.WithdrawalRequest, 0, len(ids))
	for _, id := range ids {
		req, ok := q.requests[id]
		if !ok {
			return fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
		}
		if req.State != model.RequestCommitted {
			return fmt.Errorf("request %s: %w", id, ErrRequestNotCommitted)
		}
		reqs = append(reqs, req)
	}
	return q.transition(ctx, reqs, model.RequestFulfillable)
}

// ApplySlash scales the request's withdrawable amount of asset by
// actual/expected, rounding down so the haircut never favors the user.
func (q *Queue) ApplySlash(ctx context.Context, id model.RequestID, asset model.AssetID, actual, expected uint64) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	req, ok := q.requests[id]
	if !ok {
		return fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
	}
	if req.State != model.RequestCommitted {
		return fmt.Errorf("request %s: %w", id, ErrRequestNotCommitted)
	}

	for i, a := range req.Assets {
		if a != asset {
			continue
		}
		slashed, err := safe.MulDiv(req.Amounts[i], actual, expected)
		if err != nil {
			return fmt.Errorf("slash request %s asset %s: %w", id, asset, err)
		}
		req.Withdrawable[i] = slashed
		if err := q.store.SaveRequest(ctx, *req); err != nil {
			return fmt.Errorf("persist slashed request: %w", err)
		}
		q.logger.Warn("request slashed",
			zap.String("request", string(id)),
			zap.String("asset", string(asset)),
			zap.Uint64("requested", req.Amounts[i]),
			zap.Uint64("withdrawable", slashed))
		return nil
	}
	return fmt.Errorf("request %s does not draw asset %s", id, asset)
}

func (q *Queue) transition(ctx context.Context, reqs []*model.WithdrawalRequest, state model.RequestState) error {
	for _, req := range reqs {
		prev := req.State
		req.State = state
		if err := q.store.SaveRequest(ctx, *req); err != nil {
			req.State = prev
			return fmt.Errorf("persist request %s: %w", req.ID, err)
		}
	}
	return nil
}

func validateRequest(assets []model.AssetID, amounts []uint64, escrowedShares uint64) error {
	if len(assets) == 0 || len(assets) != len(amounts) {
		return ErrLengthMismatch
	}
	if escrowedShares == 0 {
		return ErrEscrowRequired
	}
	seen := make(map[model.AssetID]struct{}, len(assets))
	for i, asset := range assets {
		if amounts[i] == 0 {
			return fmt.Errorf("asset %s: %w", asset, ErrZeroAmount)
		}
		if _, dup := seen[asset]; dup {
			return fmt.Errorf("asset %s: %w", asset, ErrDuplicateAsset)
		}
		seen[asset] = struct{}{}
	}
	return nil
}

func copyRequest(req *model.WithdrawalRequest) model.WithdrawalRequest {
	out := *req
	out.Assets = append([]model.AssetID(nil), req.Assets...)
	out.Amounts = append([]uint64(nil), req.Amounts...)
	out.Withdrawable = append([]uint64(nil), req.Withdrawable...)
	return out
}
