package types

import (
	"encoding/json"

	"github.com/holiman/uint256"
)

// CallInfo identifies who is calling the connector and the funds attached to the call
type CallInfo struct {
	Predecessor     string       `json:"predecessor"`
	AttachedDeposit *uint256.Int `json:"attached_deposit"`
}

// Deposit returns the attached deposit, zero if none
func (c CallInfo) Deposit() *uint256.Int {
	if c.AttachedDeposit == nil {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(c.AttachedDeposit)
}

// PromiseStatus is the outcome of a dependent call
type PromiseStatus uint8

const (
	PromiseSuccessful PromiseStatus = iota
	PromiseFailed
)

func (s PromiseStatus) String() string {
	switch s {
	case PromiseSuccessful:
		return "Successful"
	case PromiseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// PromiseResult is what a dependent call delivers to its continuation
type PromiseResult struct {
	Status PromiseStatus   `json:"status"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// NewSuccessfulResult returns a successful result carrying the JSON encoding of v
func NewSuccessfulResult(v interface{}) PromiseResult {
	value, err := json.Marshal(v)
	if err != nil {
		return PromiseResult{Status: PromiseFailed}
	}
	return PromiseResult{Status: PromiseSuccessful, Value: value}
}

// NewFailedResult returns a failed result
func NewFailedResult() PromiseResult {
	return PromiseResult{Status: PromiseFailed}
}
