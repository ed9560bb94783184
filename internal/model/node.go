package model

// NodeID identifies a restaking sub-account. Nodes are created up to a
// fixed cap and never destroyed.
type NodeID uint64

// OperatorID identifies an external operator a node can delegate to.
type OperatorID string

// Node is an isolated sub-account holding staked positions, delegated to
// at most one external operator at a time.
type Node struct {
	ID         NodeID
	Operator   OperatorID
	Strategies map[AssetID]struct{}
}

// Delegated reports whether the node currently has a delegation target.
func (n Node) Delegated() bool {
	return n.Operator != ""
}
