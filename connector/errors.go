package connector

import (
	"errors"

	"github.com/0xPolygon/eth-connector/common"
	"github.com/0xPolygon/eth-connector/connector/db"
	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/ethevent"
	"github.com/0xPolygon/eth-connector/prover"
)

var (
	ErrInvalidAddressFormat = common.ErrInvalidAddressFormat
	ErrMalformedLogEncoding = ethevent.ErrMalformedLogEncoding
	ErrEventShapeMismatch   = ethevent.ErrEventShapeMismatch
	ErrAmountOverflow       = types.ErrAmountOverflow

	ErrCustodianMismatch    = errors.New("event's address does not match custodian address")
	ErrUnauthorizedCallback = errors.New("method can only be called by the connector itself")
	ErrUnauthorizedWithdraw = errors.New("only sub accounts of the connector can call this method")

	ErrVerificationFailed      = errors.New("failed to verify the proof")
	ErrVerifierCallFailed      = prover.ErrVerifierCallFailed
	ErrUnexpectedCallbackShape = prover.ErrUnexpectedCallbackShape

	ErrProofAlreadyUsed = db.ErrProofAlreadyUsed

	ErrInsufficientDeposit = errors.New("attached deposit doesn't cover the storage of the proof")

	ErrNotInitialized     = db.ErrNotInitialized
	ErrAlreadyInitialized = db.ErrAlreadyInitialized
	ErrPathDisabled       = errors.New("native NEP21 on Ethereum is disabled")

	ErrCreditFailed      = errors.New("ledger call failed after the proof was recorded")
	ErrLedgerCallFailed  = errors.New("ledger call failed")
	ErrNothingToRetry    = errors.New("recorded proof has no pending credit")
	ErrUnknownProof      = errors.New("proof isn't recorded")
	ErrInvalidFinishArgs = errors.New("invalid finish arguments")
	ErrInvalidAccountID  = errors.New("invalid account id")
	ErrIndexOutOfRange   = errors.New("proof index doesn't fit in 63 bits")
	ErrUnknownSubmission = errors.New("no submission awaits this continuation")
)

// StatusOf returns the final status of a proof submission given its outcome
func StatusOf(err error) types.ProofStatus {
	switch {
	case err == nil:
		return types.StatusCredited
	case errors.Is(err, ErrProofAlreadyUsed):
		return types.StatusReplayRejected
	case errors.Is(err, ErrCreditFailed):
		return types.StatusCreditFailed
	default:
		return types.StatusRejected
	}
}
