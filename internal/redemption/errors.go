package redemption

import (
	"errors"
	"fmt"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

var (
	ErrNoRequests         = errors.New("settlement names no withdrawal requests")
	ErrNoDraws            = errors.New("no draws proposed")
	ErrDrawLengthMismatch = errors.New("draw assets and shares length mismatch")
	ErrZeroDraw           = errors.New("draw share amount is zero")
	ErrDuplicateDrawAsset = errors.New("asset listed twice in one node draw")
	ErrNodeNotRegistered  = errors.New("node not registered")

	ErrRedemptionNotFound = errors.New("redemption not found")

	// ErrWithdrawalRootMissing: the supplied receipt set is not exactly the
	// set the redemption depends on. Completion is all-or-nothing.
	ErrWithdrawalRootMissing = errors.New("redemption receipt set incomplete")

	// ErrRequestsDoNotSettle matches any RequestsDoNotSettleError.
	ErrRequestsDoNotSettle = errors.New("requests do not settle")
)

// RequestsDoNotSettleError reports the first asset whose proposed draw
// total differs from the total the targeted requests demand.
type RequestsDoNotSettleError struct {
	Asset    model.AssetID
	Expected uint64
	Actual   uint64
}

func (e RequestsDoNotSettleError) Error() string {
	return fmt.Sprintf("asset %s: requests demand %d, draws provide %d", e.Asset, e.Expected, e.Actual)
}

func (e RequestsDoNotSettleError) Is(target error) bool {
	return target == ErrRequestsDoNotSettle
}

// BeginError reports a begin-withdrawal call that failed mid-batch. The
// settlement it belonged to has been rolled back; receipts issued before
// the failure are preserved under Preserved, a rebalancing redemption
// whose proceeds return to the liquid pool, because a begun external
// withdrawal can never be aborted.
type BeginError struct {
	Node      model.NodeID
	Preserved model.RedemptionID
	Err       error
}

func (e BeginError) Error() string {
	if e.Preserved != "" {
		return fmt.Sprintf("begin withdrawal from node %d: %v (issued receipts preserved in redemption %s)", e.Node, e.Err, e.Preserved)
	}
	return fmt.Sprintf("begin withdrawal from node %d: %v", e.Node, e.Err)
}

func (e BeginError) Unwrap() error {
	return e.Err
}
