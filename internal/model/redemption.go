package model

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"time"
)

// RedemptionID uniquely keys a redemption batch.
type RedemptionID string

// ReceiptID is the opaque handle the external protocol returns for one
// pending withdraw-from-node operation.
type ReceiptID string

// Receiver designates who the proceeds of a completed redemption belong to.
type Receiver string

const (
	// ReceiverRequests routes proceeds to the pending withdrawal requests
	// the redemption settles.
	ReceiverRequests Receiver = "requests"
	// ReceiverLiquidPool routes proceeds back to the idle liquid pool
	// (rebalancing and undelegation redemptions).
	ReceiverLiquidPool Receiver = "liquid_pool"
)

// WithdrawalReceipt covers one external withdraw-from-node operation.
// Shares is parallel to Assets and holds the share amount requested per
// strategy. A receipt is consumed exactly once on completion.
type WithdrawalReceipt struct {
	ID     ReceiptID
	Node   NodeID
	Assets []AssetID
	Shares []uint64
}

// Redemption groups one or more external withdrawal operations into a
// single atomic-intent batch. It is accepted only when every referenced
// receipt has been completed; there is no partial completion and no
// failed state.
type Redemption struct {
	ID        RedemptionID
	Requests  []RequestID
	Receipts  []WithdrawalReceipt
	Receiver  Receiver
	Expected  map[AssetID]uint64
	CreatedAt time.Time
	Nonce     uint64
}

// ReceiptIDs returns the identifiers of every receipt the redemption
// depends on.
func (r Redemption) ReceiptIDs() []ReceiptID {
	ids := make([]ReceiptID, 0, len(r.Receipts))
	for _, rc := range r.Receipts {
		ids = append(ids, rc.ID)
	}
	return ids
}

// NewRedemptionID derives the redemption key from the receipt set and a
// monotonically increasing nonce, so identical batches issued in the same
// instant still key uniquely.
func NewRedemptionID(receipts []ReceiptID, nonce uint64) RedemptionID {
	sorted := make([]string, 0, len(receipts))
	for _, id := range receipts {
		sorted = append(sorted, string(id))
	}
	sort.Strings(sorted)

	h := sha256.New()
	for _, id := range sorted {
		h.Write([]byte(id))
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])
	return RedemptionID(hex.EncodeToString(h.Sum(nil)))
}
