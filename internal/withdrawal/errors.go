package withdrawal

import "errors"

var (
	ErrLengthMismatch   = errors.New("assets and amounts length mismatch")
	ErrZeroAmount       = errors.New("requested amount is zero")
	ErrUnsupportedAsset = errors.New("asset not supported")
	ErrEscrowRequired   = errors.New("escrowed shares are required")
	ErrDuplicateAsset   = errors.New("asset listed twice in request")

	ErrRequestNotFound = errors.New("withdrawal request not found")
	ErrNotRequestOwner = errors.New("caller does not own the request")

	// ErrWithdrawalDelayNotMet: the fixed minimum delay since creation has
	// not elapsed. Retry later.
	ErrWithdrawalDelayNotMet = errors.New("withdrawal delay not met")
	// ErrWithdrawalNotReadyToFulfill: backing funds are not yet confirmed
	// available. Retry after the covering redemption completes.
	ErrWithdrawalNotReadyToFulfill = errors.New("withdrawal not ready to fulfill")

	ErrRequestNotPending   = errors.New("request is not pending")
	ErrRequestNotCommitted = errors.New("request is not committed to a settlement")
)
