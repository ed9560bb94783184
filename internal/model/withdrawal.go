package model

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// RequestID uniquely keys a withdrawal request. It is derived from the
// requesting user, the requested assets and amounts, the creation time and
// a per-user nonce, so two identical-looking requests never collide.
type RequestID string

// RequestState tracks a request through settlement.
type RequestState uint8

const (
	// RequestPending means no settlement has committed funds to the request.
	RequestPending RequestState = iota
	// RequestCommitted means a settlement holds the request; its backing
	// funds are queued or in flight through a redemption.
	RequestCommitted
	// RequestFulfillable means backing funds are confirmed available and the
	// owner may fulfill once the withdrawal delay has elapsed.
	RequestFulfillable
)

// WithdrawalRequest records a user's withdrawal intent. Amounts and
// Withdrawable are parallel to Assets; Withdrawable starts equal to Amounts
// and may only be reduced by slashing.
type WithdrawalRequest struct {
	ID             RequestID
	User           string
	Assets         []AssetID
	Amounts        []uint64
	Withdrawable   []uint64
	EscrowedShares uint64
	CreatedAt      time.Time
	Nonce          uint64
	State          RequestState
}

// CanFulfill reports whether backing funds are confirmed available.
func (r WithdrawalRequest) CanFulfill() bool {
	return r.State == RequestFulfillable
}

// RequestedAmount returns the originally requested amount of the asset,
// or zero if the request does not touch it.
func (r WithdrawalRequest) RequestedAmount(asset AssetID) uint64 {
	for i, a := range r.Assets {
		if a == asset {
			return r.Amounts[i]
		}
	}
	return 0
}

// NewRequestID derives the unique request key.
func NewRequestID(user string, assets []AssetID, amounts []uint64, createdAt time.Time, nonce uint64) RequestID {
	h := sha256.New()
	h.Write([]byte(user))
	var buf [8]byte
	for i, a := range assets {
		h.Write([]byte(a))
		binary.BigEndian.PutUint64(buf[:], amounts[i])
		h.Write(buf[:])
	}
	binary.BigEndian.PutUint64(buf[:], uint64(createdAt.UnixNano()))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])
	return RequestID(hex.EncodeToString(h.Sum(nil)))
}
