package ledger

import (
	"errors"
	"fmt"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

var (
	ErrAssetNotFound          = errors.New("asset not registered")
	ErrAssetAlreadyRegistered = errors.New("asset already registered")
	ErrInsufficientBalance    = errors.New("insufficient pool balance")

	// ErrAssetBalanceOutOfSync signals that the stored pools exceed the
	// actual custodied balance: an external transfer bypassed the ledger.
	// This is a fatal consistency error and is never auto-corrected.
	ErrAssetBalanceOutOfSync = errors.New("asset balance out of sync with custody")
)

// OutOfSyncError carries the pool and custody figures of a failed
// reconciliation. errors.Is matches it against ErrAssetBalanceOutOfSync.
type OutOfSyncError struct {
	Asset     model.AssetID
	Liquid    uint64
	Queued    uint64
	Custodied uint64
}

func (e OutOfSyncError) Error() string {
	return fmt.Sprintf("asset %s out of sync: liquid %d + queued %d exceeds custodied %d",
		e.Asset, e.Liquid, e.Queued, e.Custodied)
}

func (e OutOfSyncError) Is(target error) bool {
	return target == ErrAssetBalanceOutOfSync
}
