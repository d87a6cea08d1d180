package prover

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/log"
)

var (
	// ErrUnexpectedCallbackShape is returned when a continuation doesn't receive exactly one boolean result
	ErrUnexpectedCallbackShape = errors.New("contract expected exactly one boolean result on the callback")
	// ErrVerifierCallFailed is returned when the call to the prover itself failed
	ErrVerifierCallFailed = errors.New("verifier call failed")
)

// RequestVerification dispatches the verification of the proof and returns a channel
// that delivers exactly one result before being closed
func RequestVerification(
	ctx context.Context,
	client ProverClienter,
	proverAccount string,
	proof *types.Proof,
	skipBridgeCall bool,
) <-chan types.PromiseResult {
	results := make(chan types.PromiseResult, 1)
	args := NewVerifyLogEntryArgs(proof, skipBridgeCall)
	go func() {
		defer close(results)
		ok, err := client.VerifyLogEntry(ctx, proverAccount, args)
		if err != nil {
			log.Warnf("verification of log %d on receipt %d failed: %v", args.LogIndex, args.ReceiptIndex, err)
			results <- types.NewFailedResult()
			return
		}
		results <- types.NewSuccessfulResult(ok)
	}()
	return results
}

// VerificationResult extracts the boolean delivered to a continuation
func VerificationResult(results []types.PromiseResult) (bool, error) {
	if len(results) != 1 {
		return false, fmt.Errorf("%w: got %d results", ErrUnexpectedCallbackShape, len(results))
	}
	result := results[0]
	if result.Status != types.PromiseSuccessful {
		return false, ErrVerifierCallFailed
	}
	switch string(bytes.TrimSpace(result.Value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: value %q isn't a boolean", ErrUnexpectedCallbackShape, result.Value)
	}
}
