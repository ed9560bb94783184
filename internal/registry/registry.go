// Package registry owns the fixed-cap, append-only set of restaking nodes.
// Nodes are created up to the cap and never destroyed; each delegates to at
// most one external operator at a time.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/capability"
	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	ErrNodeCapReached     = errors.New("node cap reached")
	ErrNodeNotFound       = errors.New("node not found")
	ErrAlreadyDelegated   = errors.New("node already delegated")
	ErrNotDelegated       = errors.New("node not delegated")
	ErrOperatorRequired   = errors.New("operator is required")
	ErrDelegationInFlight = errors.New("delegation change in flight")
)

// Delegator is the slice of the external protocol the registry drives.
type Delegator interface {
	Delegate(ctx context.Context, node model.NodeID, operator model.OperatorID, proof []byte) error
	Undelegate(ctx context.Context, node model.NodeID) ([]model.WithdrawalReceipt, error)
}

// Registry tracks nodes and their delegation targets. A node with a
// delegation change in flight stays marked busy across the external
// call, so a second change cannot start until the first settles.
type Registry struct {
	mu        sync.Mutex
	logger    *zap.Logger
	caps      capability.Table
	delegator Delegator
	limit     int
	nodes     map[model.NodeID]*model.Node
	busy      map[model.NodeID]struct{}
	nextID    model.NodeID
}

// New builds a Registry capped at limit nodes.
func New(logger *zap.Logger, caps capability.Table, delegator Delegator, limit int) *Registry {
	if limit <= 0 {
		limit = 16
	}
	return &Registry{
		logger:    logger.Named("registry"),
		caps:      caps,
		delegator: delegator,
		limit:     limit,
		nodes:     make(map[model.NodeID]*model.Node),
		busy:      make(map[model.NodeID]struct{}),
		nextID:    1,
	}
}

// Add creates a new undelegated node.
func (r *Registry) Add(ctx context.Context, caller string) (model.NodeID, error) {
	if err := r.caps.Require(caller, capability.RegistryManage); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.nodes) >= r.limit {
		return 0, fmt.Errorf("cap %d: %w", r.limit, ErrNodeCapReached)
	}
	id := r.nextID
	r.nextID++
	r.nodes[id] = &model.Node{ID: id, Strategies: make(map[model.AssetID]struct{})}
	r.logger.Info("node added", zap.Uint64("node", uint64(id)))
	return id, nil
}

// Delegate points an undelegated node at an operator through the external
// protocol.
func (r *Registry) Delegate(ctx context.Context, caller string, node model.NodeID, operator model.OperatorID, proof []byte) error {
	if err := r.caps.Require(caller, capability.RegistryManage); err != nil {
		return err
	}
	if operator == "" {
		return ErrOperatorRequired
	}

	r.mu.Lock()
	n, ok := r.nodes[node]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	if _, inFlight := r.busy[node]; inFlight {
		r.mu.Unlock()
		return fmt.Errorf("node %d: %w", node, ErrDelegationInFlight)
	}
	if n.Delegated() {
		r.mu.Unlock()
		return fmt.Errorf("node %d delegated to %s: %w", node, n.Operator, ErrAlreadyDelegated)
	}
	r.busy[node] = struct{}{}
	r.mu.Unlock()

	err := r.delegator.Delegate(ctx, node, operator, proof)

	r.mu.Lock()
	delete(r.busy, node)
	if err == nil {
		n.Operator = operator
	}
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("delegate node %d: %w", node, err)
	}

	r.logger.Info("node delegated",
		zap.Uint64("node", uint64(node)),
		zap.String("operator", string(operator)))
	return nil
}

// Undelegate removes the node's delegation. The external protocol queues a
// withdrawal for every position the node held; the returned receipts must
// be handed to the redemption engine so the in-flight funds are tracked.
func (r *Registry) Undelegate(ctx context.Context, caller string, node model.NodeID) ([]model.WithdrawalReceipt, error) {
	if err := r.caps.Require(caller, capability.RegistryManage); err != nil {
		return nil, err
	}

	r.mu.Lock()
	n, ok := r.nodes[node]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	if _, inFlight := r.busy[node]; inFlight {
		r.mu.Unlock()
		return nil, fmt.Errorf("node %d: %w", node, ErrDelegationInFlight)
	}
	if !n.Delegated() {
		r.mu.Unlock()
		return nil, fmt.Errorf("node %d: %w", node, ErrNotDelegated)
	}
	r.busy[node] = struct{}{}
	r.mu.Unlock()

	receipts, err := r.delegator.Undelegate(ctx, node)

	r.mu.Lock()
	delete(r.busy, node)
	if err == nil {
		n.Operator = ""
		n.Strategies = make(map[model.AssetID]struct{})
	}
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("undelegate node %d: %w", node, err)
	}

	r.logger.Info("node undelegated",
		zap.Uint64("node", uint64(node)),
		zap.Int("receipts", len(receipts)))
	return receipts, nil
}

// MarkStrategy records that the node holds a position in the strategy.
func (r *Registry) MarkStrategy(node model.NodeID, asset model.AssetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[node]
	if !ok {
		return fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	n.Strategies[asset] = struct{}{}
	return nil
}

// Has reports whether the node exists.
func (r *Registry) Has(node model.NodeID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.nodes[node]
	return ok
}

// Node returns a copy of the node.
func (r *Registry) Node(node model.NodeID) (model.Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[node]
	if !ok {
		return model.Node{}, fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	return copyNode(n), nil
}

// NodeIDs returns every node identifier in creation order.
func (r *Registry) NodeIDs() []model.NodeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]model.NodeID, 0, len(r.nodes))
	for id := model.NodeID(1); id < r.nextID; id++ {
		if _, ok := r.nodes[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func copyNode(n *model.Node) model.Node {
	strategies := make(map[model.AssetID]struct{}, len(n.Strategies))
	for s := range n.Strategies {
		strategies[s] = struct{}{}
	}
	return model.Node{ID: n.ID, Operator: n.Operator, Strategies: strategies}
}
