// Package transport exposes the settlement API over HTTP/JSON.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/capability"
	"github.com/EigenExplorer/liquid-avs-token/internal/ledger"
	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/internal/redemption"
	"github.com/EigenExplorer/liquid-avs-token/internal/registry"
	"github.com/EigenExplorer/liquid-avs-token/internal/valuation"
	"github.com/EigenExplorer/liquid-avs-token/internal/withdrawal"
)

// CallerHeader identifies the caller on mutating requests.
const CallerHeader = "X-Caller"

type (
	// Queue is the withdrawal queue surface the handler exposes.
	Queue interface {
		Create(ctx context.Context, user string, assets []model.AssetID, amounts []uint64, escrowedShares uint64) (model.RequestID, error)
		Fulfill(ctx context.Context, caller string, id model.RequestID) error
		RequestsByUser(user string) []model.WithdrawalRequest
	}

	// Engine is the settlement surface the handler exposes.
	Engine interface {
		Settle(ctx context.Context, caller string, requestIDs []model.RequestID, liquidDraws map[model.AssetID]uint64, nodeDraws []redemption.NodeDraw) (model.RedemptionID, error)
		Rebalance(ctx context.Context, caller string, nodeDraws []redemption.NodeDraw) (model.RedemptionID, error)
		Complete(ctx context.Context, caller string, id model.RedemptionID, receiptIDs []model.ReceiptID) error
		RecordUndelegation(ctx context.Context, node model.NodeID, receipts []model.WithdrawalReceipt) (model.RedemptionID, error)
		Redemption(id model.RedemptionID) (model.Redemption, error)
	}

	// Registry is the node management surface the handler exposes.
	Registry interface {
		Add(ctx context.Context, caller string) (model.NodeID, error)
		Delegate(ctx context.Context, caller string, node model.NodeID, operator model.OperatorID, proof []byte) error
		Undelegate(ctx context.Context, caller string, node model.NodeID) ([]model.WithdrawalReceipt, error)
		Node(node model.NodeID) (model.Node, error)
		NodeIDs() []model.NodeID
	}

	// Pools is the balance query surface the handler exposes.
	Pools interface {
		Assets() []model.AssetID
		Pools(asset model.AssetID) (model.BalancePools, error)
	}

	// Valuer converts base-unit amounts into the unit of account.
	Valuer interface {
		ConvertToUnitOfAccount(asset model.AssetID, amount uint64) (decimal.Decimal, error)
	}
)

// Handler serves the settlement HTTP API.
type Handler struct {
	logger   *zap.Logger
	queue    Queue
	engine   Engine
	registry Registry
	pools    Pools
	valuer   Valuer
}

// NewHandler builds a Handler.
func NewHandler(logger *zap.Logger, queue Queue, engine Engine, registry Registry, pools Pools, valuer Valuer) *Handler {
	return &Handler{
		logger:   logger.Named("transport"),
		queue:    queue,
		engine:   engine,
		registry: registry,
		pools:    pools,
		valuer:   valuer,
	}
}

// Router returns the route table. Mutating routes sit behind the
// caller middleware, so handlers can assume an identity is present.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/pools", h.listPools)
		r.Get("/valuation", h.valuation)
		r.Get("/requests", h.listRequests)
		r.Get("/redemptions/{id}", h.getRedemption)
		r.Get("/nodes", h.listNodes)

		r.Group(func(r chi.Router) {
			r.Use(h.requireCaller)
			r.Post("/requests", h.createRequest)
			r.Post("/requests/{id}/fulfill", h.fulfillRequest)
			r.Post("/settlements", h.settle)
			r.Post("/rebalances", h.rebalance)
			r.Post("/redemptions/{id}/complete", h.completeRedemption)
			r.Post("/nodes", h.addNode)
			r.Post("/nodes/{id}/delegate", h.delegateNode)
			r.Post("/nodes/{id}/undelegate", h.undelegateNode)
		})
	})
	return r
}

type ctxKey int

const callerKey ctxKey = iota

// requireCaller rejects mutating requests that carry no identity and
// stores the caller on the request context for the handlers.
func (h *Handler) requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := r.Header.Get(CallerHeader)
		if caller == "" {
			h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "caller identity is required"})
			return
		}
		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(r *http.Request) string {
	caller, _ := r.Context().Value(callerKey).(string)
	return caller
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type poolRow struct {
	Asset  model.AssetID `json:"asset"`
	Liquid uint64        `json:"liquid"`
	Queued uint64        `json:"queued"`
}

func (h *Handler) listPools(w http.ResponseWriter, r *http.Request) {
	assets := h.pools.Assets()
	rows := make([]poolRow, 0, len(assets))
	for _, asset := range assets {
		pools, err := h.pools.Pools(asset)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		rows = append(rows, poolRow{Asset: asset, Liquid: pools.Liquid, Queued: pools.Queued})
	}
	h.writeJSON(w, http.StatusOK, rows)
}

type valuationRow struct {
	Asset model.AssetID   `json:"asset"`
	Value decimal.Decimal `json:"value"`
}

// valuation reports the unit-of-account value of each asset's stored
// pools. The staked portion is derived externally and excluded here.
func (h *Handler) valuation(w http.ResponseWriter, r *http.Request) {
	assets := h.pools.Assets()
	rows := make([]valuationRow, 0, len(assets))
	total := decimal.Zero
	for _, asset := range assets {
		pools, err := h.pools.Pools(asset)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		value, err := h.valuer.ConvertToUnitOfAccount(asset, pools.Liquid+pools.Queued)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		rows = append(rows, valuationRow{Asset: asset, Value: value})
		total = total.Add(value)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"assets": rows, "total": total})
}

type requestRow struct {
	ID             model.RequestID `json:"id"`
	User           string          `json:"user"`
	Assets         []model.AssetID `json:"assets"`
	Amounts        []uint64        `json:"amounts"`
	Withdrawable   []uint64        `json:"withdrawable"`
	EscrowedShares uint64          `json:"escrowedShares"`
	CreatedAt      time.Time       `json:"createdAt"`
	CanFulfill     bool            `json:"canFulfill"`
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "user query parameter is required"})
		return
	}
	reqs := h.queue.RequestsByUser(user)
	rows := make([]requestRow, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, requestRow{
			ID:             req.ID,
			User:           req.User,
			Assets:         req.Assets,
			Amounts:        req.Amounts,
			Withdrawable:   req.Withdrawable,
			EscrowedShares: req.EscrowedShares,
			CreatedAt:      req.CreatedAt,
			CanFulfill:     req.CanFulfill(),
		})
	}
	h.writeJSON(w, http.StatusOK, rows)
}

type createRequestBody struct {
	Assets         []model.AssetID `json:"assets"`
	Amounts        []uint64        `json:"amounts"`
	EscrowedShares uint64          `json:"escrowedShares"`
}

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}
	id, err := h.queue.Create(r.Context(), callerFrom(r), body.Assets, body.Amounts, body.EscrowedShares)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]model.RequestID{"id": id})
}

func (h *Handler) fulfillRequest(w http.ResponseWriter, r *http.Request) {
	id := model.RequestID(chi.URLParam(r, "id"))
	if err := h.queue.Fulfill(r.Context(), callerFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "fulfilled"})
}

type nodeDrawBody struct {
	Node   model.NodeID    `json:"node"`
	Assets []model.AssetID `json:"assets"`
	Shares []uint64        `json:"shares"`
}

type settleBody struct {
	RequestIDs  []model.RequestID        `json:"requestIds"`
	LiquidDraws map[model.AssetID]uint64 `json:"liquidDraws"`
	NodeDraws   []nodeDrawBody           `json:"nodeDraws"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	var body settleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}
	draws := make([]redemption.NodeDraw, 0, len(body.NodeDraws))
	for _, draw := range body.NodeDraws {
		draws = append(draws, redemption.NodeDraw{Node: draw.Node, Assets: draw.Assets, Shares: draw.Shares})
	}
	id, err := h.engine.Settle(r.Context(), callerFrom(r), body.RequestIDs, body.LiquidDraws, draws)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]model.RedemptionID{"redemptionId": id})
}

type redemptionRow struct {
	ID        model.RedemptionID `json:"id"`
	Requests  []model.RequestID  `json:"requests"`
	Receipts  []model.ReceiptID  `json:"receipts"`
	Receiver  model.Receiver     `json:"receiver"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (h *Handler) getRedemption(w http.ResponseWriter, r *http.Request) {
	id := model.RedemptionID(chi.URLParam(r, "id"))
	red, err := h.engine.Redemption(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, redemptionRow{
		ID:        red.ID,
		Requests:  red.Requests,
		Receipts:  red.ReceiptIDs(),
		Receiver:  red.Receiver,
		CreatedAt: red.CreatedAt,
	})
}

type completeBody struct {
	ReceiptIDs []model.ReceiptID `json:"receiptIds"`
}

func (h *Handler) completeRedemption(w http.ResponseWriter, r *http.Request) {
	id := model.RedemptionID(chi.URLParam(r, "id"))
	var body completeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}
	if err := h.engine.Complete(r.Context(), callerFrom(r), id, body.ReceiptIDs); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

func (h *Handler) rebalance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NodeDraws []nodeDrawBody `json:"nodeDraws"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}
	draws := make([]redemption.NodeDraw, 0, len(body.NodeDraws))
	for _, draw := range body.NodeDraws {
		draws = append(draws, redemption.NodeDraw{Node: draw.Node, Assets: draw.Assets, Shares: draw.Shares})
	}
	id, err := h.engine.Rebalance(r.Context(), callerFrom(r), draws)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]model.RedemptionID{"redemptionId": id})
}

type nodeRow struct {
	ID        model.NodeID     `json:"id"`
	Operator  model.OperatorID `json:"operator,omitempty"`
	Delegated bool             `json:"delegated"`
}

func (h *Handler) listNodes(w http.ResponseWriter, r *http.Request) {
	ids := h.registry.NodeIDs()
	rows := make([]nodeRow, 0, len(ids))
	for _, id := range ids {
		node, err := h.registry.Node(id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		rows = append(rows, nodeRow{ID: node.ID, Operator: node.Operator, Delegated: node.Delegated()})
	}
	h.writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) addNode(w http.ResponseWriter, r *http.Request) {
	id, err := h.registry.Add(r.Context(), callerFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]model.NodeID{"node": id})
}

func (h *Handler) nodeID(w http.ResponseWriter, r *http.Request) (model.NodeID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid node id"})
		return 0, false
	}
	return model.NodeID(id), true
}

type delegateBody struct {
	Operator model.OperatorID `json:"operator"`
	Proof    []byte           `json:"proof"`
}

func (h *Handler) delegateNode(w http.ResponseWriter, r *http.Request) {
	node, ok := h.nodeID(w, r)
	if !ok {
		return
	}
	var body delegateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}
	if err := h.registry.Delegate(r.Context(), callerFrom(r), node, body.Operator, body.Proof); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "delegated"})
}

// undelegateNode removes the delegation and hands every receipt the
// external protocol issued to the engine, so the in-flight funds are
// tracked by a rebalancing redemption.
func (h *Handler) undelegateNode(w http.ResponseWriter, r *http.Request) {
	node, ok := h.nodeID(w, r)
	if !ok {
		return
	}
	receipts, err := h.registry.Undelegate(r.Context(), callerFrom(r), node)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.engine.RecordUndelegation(r.Context(), node, receipts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]model.RedemptionID{"redemptionId": id})
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	h.writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	var denied capability.DeniedError
	switch {
	case errors.As(err, &denied):
		return http.StatusForbidden
	case errors.Is(err, withdrawal.ErrRequestNotFound),
		errors.Is(err, redemption.ErrRedemptionNotFound),
		errors.Is(err, ledger.ErrAssetNotFound),
		errors.Is(err, valuation.ErrAssetNotFound),
		errors.Is(err, registry.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, withdrawal.ErrNotRequestOwner):
		return http.StatusForbidden
	case errors.Is(err, withdrawal.ErrWithdrawalDelayNotMet),
		errors.Is(err, withdrawal.ErrWithdrawalNotReadyToFulfill),
		errors.Is(err, redemption.ErrWithdrawalRootMissing),
		errors.Is(err, registry.ErrNodeCapReached),
		errors.Is(err, registry.ErrAlreadyDelegated),
		errors.Is(err, registry.ErrNotDelegated),
		errors.Is(err, registry.ErrDelegationInFlight):
		return http.StatusConflict
	case errors.Is(err, redemption.ErrRequestsDoNotSettle):
		return http.StatusUnprocessableEntity
	case errors.Is(err, withdrawal.ErrLengthMismatch),
		errors.Is(err, withdrawal.ErrZeroAmount),
		errors.Is(err, withdrawal.ErrUnsupportedAsset),
		errors.Is(err, withdrawal.ErrEscrowRequired),
		errors.Is(err, withdrawal.ErrDuplicateAsset),
		errors.Is(err, redemption.ErrNoRequests),
		errors.Is(err, redemption.ErrNoDraws),
		errors.Is(err, redemption.ErrDrawLengthMismatch),
		errors.Is(err, redemption.ErrZeroDraw),
		errors.Is(err, redemption.ErrDuplicateDrawAsset),
		errors.Is(err, redemption.ErrNodeNotRegistered),
		errors.Is(err, registry.ErrOperatorRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}
