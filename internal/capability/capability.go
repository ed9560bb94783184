// Package capability implements an explicit permission table. Callers are
// identified by opaque strings and every privileged operation names the
// capability it requires; there is no ambient role state.
package capability

import "fmt"

// Capability names one privileged operation class.
type Capability string

const (
	WithdrawalCreate   Capability = "withdrawal:create"
	SettlementExecute  Capability = "settlement:execute"
	RedemptionComplete Capability = "redemption:complete"
	RegistryManage     Capability = "registry:manage"
)

// DeniedError reports a caller lacking a required capability.
type DeniedError struct {
	Caller     string
	Capability Capability
}

func (e DeniedError) Error() string {
	return fmt.Sprintf("caller %q lacks capability %q", e.Caller, e.Capability)
}

// Table maps callers to the capabilities they hold.
type Table map[string]map[Capability]struct{}

// NewTable builds an empty table.
func NewTable() Table {
	return make(Table)
}

// Grant gives caller the listed capabilities.
func (t Table) Grant(caller string, caps ...Capability) {
	set, ok := t[caller]
	if !ok {
		set = make(map[Capability]struct{}, len(caps))
		t[caller] = set
	}
	for _, c := range caps {
		set[c] = struct{}{}
	}
}

// Require returns a DeniedError unless caller holds c.
func (t Table) Require(caller string, c Capability) error {
	if set, ok := t[caller]; ok {
		if _, ok := set[c]; ok {
			return nil
		}
	}
	return DeniedError{Caller: caller, Capability: c}
}
