package connector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/prover"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// FinishArgs is what the submission phase hands to its continuation. Proof is the
// connector's own copy of the submitted proof, Nonce identifies the submission
type FinishArgs struct {
	Nonce     uint64          `json:"nonce"`
	Kind      types.ProofKind `json:"kind"`
	Token     string          `json:"token"`
	Recipient string          `json:"recipient"`
	Amount    *big.Int        `json:"amount"`
	Proof     *types.Proof    `json:"proof"`
}

func (a *FinishArgs) validate(kind types.ProofKind) error {
	if a == nil || a.Proof == nil {
		return fmt.Errorf("%w: missing proof", ErrInvalidFinishArgs)
	}
	if a.Kind != kind {
		return fmt.Errorf("%w: kind %q, expected %q", ErrInvalidFinishArgs, a.Kind, kind)
	}
	if a.Token == "" {
		return fmt.Errorf("%w: missing token", ErrInvalidFinishArgs)
	}
	if err := ValidateAccountID(a.Recipient); err != nil {
		return fmt.Errorf("%w: recipient: %w", ErrInvalidFinishArgs, err)
	}
	return types.CheckAmount(a.Amount)
}

func (a *FinishArgs) matches(other *FinishArgs) bool {
	return other != nil && other.Proof != nil && other.Amount != nil &&
		a.Nonce == other.Nonce &&
		a.Kind == other.Kind &&
		a.Token == other.Token &&
		a.Recipient == other.Recipient &&
		a.Amount.Cmp(other.Amount) == 0 &&
		bytes.Equal(a.Proof.LogEntryData, other.Proof.LogEntryData) &&
		a.Proof.Fingerprint() == other.Proof.Fingerprint()
}

// ProofResult is the outcome of a proof that went through the whole flow
type ProofResult struct {
	Status      types.ProofStatus `json:"status"`
	Fingerprint common.Hash       `json:"fingerprint"`
	Refund      *uint256.Int      `json:"refund"`
}

// process runs submit, verification and finish for a proof
func (c *Connector) process(ctx context.Context, kind types.ProofKind, call types.CallInfo,
	proof *types.Proof) (*ProofResult, error) {
	verifyCtx, cancel := c.verifyContext(ctx)
	defer cancel()

	args, pending, err := c.submit(verifyCtx, kind, proof)
	if err != nil {
		return nil, err
	}

	results, err := c.awaitVerification(verifyCtx, pending)
	if err != nil {
		c.dropSubmission(args.Nonce)
		return nil, err
	}

	return c.finish(ctx, kind, c.selfCall(call.Deposit()), results, args)
}

func (c *Connector) verifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.VerifyTimeout.Duration > 0 {
		return context.WithTimeout(ctx, c.cfg.VerifyTimeout.Duration)
	}
	return context.WithCancel(ctx)
}

// submit decodes the event, checks where it comes from and dispatches the verification
func (c *Connector) submit(ctx context.Context, kind types.ProofKind,
	proof *types.Proof) (*FinishArgs, <-chan types.PromiseResult, error) {
	if proof == nil {
		return nil, nil, fmt.Errorf("%w: nil proof", ErrMalformedLogEncoding)
	}
	// the replay set stores the indices as sqlite integers
	if proof.LogIndex > math.MaxInt64 || proof.ReceiptIndex > math.MaxInt64 {
		return nil, nil, fmt.Errorf("%w: log index %d, receipt index %d",
			ErrIndexOutOfRange, proof.LogIndex, proof.ReceiptIndex)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cfg, err := c.storage.GetConnectorConfig()
	if err != nil {
		return nil, nil, err
	}

	proofCopy := proof.Copy()
	custodian, args, err := c.decodeEvent(kind, proofCopy.LogEntryData)
	if err != nil {
		return nil, nil, err
	}
	if custodian != cfg.CustodianAddress {
		return nil, nil, fmt.Errorf("%w: event's address %s, custodian address %s",
			ErrCustodianMismatch, custodian.Hex(), cfg.CustodianAddress.Hex())
	}
	args.Proof = proofCopy
	c.nonce++
	args.Nonce = c.nonce
	c.submissions[args.Nonce] = args

	c.log.Debugf("%s submitted - Fingerprint: %s. Recipient: %s. Amount: %s. Status: %s",
		kind, proofCopy.Fingerprint().Hex(), args.Recipient, args.Amount, types.StatusAwaitingVerification)

	pendingArgs := *args
	pendingArgs.Amount = new(big.Int).Set(args.Amount)
	pendingArgs.Proof = proofCopy.Copy()
	return &pendingArgs,
		prover.RequestVerification(ctx, c.prover, cfg.ProverAccount, proofCopy.Copy(), c.cfg.SkipBridgeCall), nil
}

// takeSubmission returns the args registered on submit for the continuation, the
// submission can only be taken once
func (c *Connector) takeSubmission(args *FinishArgs) (*FinishArgs, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: missing args", ErrInvalidFinishArgs)
	}
	submitted, ok := c.submissions[args.Nonce]
	if !ok {
		return nil, fmt.Errorf("%w: nonce %d", ErrUnknownSubmission, args.Nonce)
	}
	if !submitted.matches(args) {
		return nil, fmt.Errorf("%w: args differ from submission %d", ErrInvalidFinishArgs, args.Nonce)
	}
	delete(c.submissions, args.Nonce)
	return submitted, nil
}

func (c *Connector) dropSubmission(nonce uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.submissions, nonce)
}

func (c *Connector) decodeEvent(kind types.ProofKind, logEntryData []byte) (common.Address, *FinishArgs, error) {
	args := &FinishArgs{Kind: kind}
	var custodian common.Address
	switch kind {
	case types.KindDeposit:
		event, err := types.ParseLockedEvent(logEntryData)
		if err != nil {
			return common.Address{}, nil, err
		}
		custodian = event.Custodian
		args.Token = c.bridgeTokenAccountID(event.Token)
		args.Recipient = event.Recipient
		args.Amount = event.Amount
	case types.KindUnlock:
		event, err := types.ParseUnlockedEvent(logEntryData)
		if err != nil {
			return common.Address{}, nil, err
		}
		if err := ValidateAccountID(event.Token); err != nil {
			return common.Address{}, nil, fmt.Errorf("token: %w", err)
		}
		custodian = event.Custodian
		args.Token = event.Token
		args.Recipient = event.Recipient
		args.Amount = event.Amount
	default:
		return common.Address{}, nil, fmt.Errorf("unknown proof kind %q", kind)
	}
	if err := ValidateAccountID(args.Recipient); err != nil {
		return common.Address{}, nil, fmt.Errorf("recipient: %w", err)
	}
	return custodian, args, nil
}

// awaitVerification collects the results delivered by the verification until it's done
func (c *Connector) awaitVerification(ctx context.Context,
	pending <-chan types.PromiseResult) ([]types.PromiseResult, error) {
	results := make([]types.PromiseResult, 0, 1)
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for verification: %w", ctx.Err())
		case result, ok := <-pending:
			if !ok {
				return results, nil
			}
			results = append(results, result)
		}
	}
}

// finish is the continuation of a verification: it checks the result, records the proof
// on the replay set charging its storage and credits the recipient
func (c *Connector) finish(ctx context.Context, kind types.ProofKind, call types.CallInfo,
	results []types.PromiseResult, args *FinishArgs) (*ProofResult, error) {
	if err := c.assertSelf(call); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetConnectorConfig(); err != nil {
		return nil, err
	}

	args, err := c.takeSubmission(args)
	if err != nil {
		return nil, err
	}
	verified, err := prover.VerificationResult(results)
	if err != nil {
		return nil, err
	}
	if err := args.validate(kind); err != nil {
		return nil, err
	}
	fingerprint := args.Proof.Fingerprint()
	if !verified {
		c.log.Infof("%s rejected - Fingerprint: %s. Status: %s", args.Kind, fingerprint.Hex(), types.StatusRejected)
		return nil, fmt.Errorf("%w: fingerprint %s", ErrVerificationFailed, fingerprint.Hex())
	}

	record := &types.UsedProof{
		Fingerprint:  fingerprint,
		Kind:         args.Kind,
		LogIndex:     args.Proof.LogIndex,
		ReceiptIndex: args.Proof.ReceiptIndex,
		Token:        args.Token,
		Recipient:    args.Recipient,
		Amount:       new(big.Int).Set(args.Amount),
		Status:       types.StatusVerified,
	}
	refund, err := c.recordProof(ctx, call, record)
	if err != nil {
		if errors.Is(err, ErrProofAlreadyUsed) {
			c.log.Warnf("%s replayed - Fingerprint: %s. Status: %s",
				args.Kind, fingerprint.Hex(), types.StatusReplayRejected)
		}
		return nil, err
	}

	if err := c.credit(ctx, record); err != nil {
		c.setStatus(ctx, fingerprint, types.StatusCreditFailed)
		c.log.Errorf("%s credit failed - Fingerprint: %s. Token: %s. Recipient: %s. Amount: %s. Err: %v",
			args.Kind, fingerprint.Hex(), record.Token, record.Recipient, record.Amount, err)
		return nil, fmt.Errorf("%w: fingerprint %s: %w", ErrCreditFailed, fingerprint.Hex(), err)
	}
	c.setStatus(ctx, fingerprint, types.StatusCredited)

	c.log.Infof("%s credited - Fingerprint: %s. Token: %s. Recipient: %s. Amount: %s",
		args.Kind, fingerprint.Hex(), record.Token, record.Recipient, record.Amount)

	return &ProofResult{
		Status:      types.StatusCredited,
		Fingerprint: fingerprint,
		Refund:      refund,
	}, nil
}

// recordProof adds the proof to the replay set, the storage it uses has to be covered by
// the attached deposit. Returns what is left of the deposit
func (c *Connector) recordProof(ctx context.Context, call types.CallInfo,
	record *types.UsedProof) (*uint256.Int, error) {
	attached := call.Deposit()
	price := c.cfg.storagePrice()
	var refund *uint256.Int
	err := c.storage.RecordProof(ctx, record, func(storageDelta uint64) error {
		required, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(storageDelta), price)
		if overflow || attached.Lt(required) {
			return fmt.Errorf("%w: attached %s, required %s for %d bytes",
				ErrInsufficientDeposit, attached.Dec(), required.Dec(), storageDelta)
		}
		refund = new(uint256.Int).Sub(attached, required)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

func (c *Connector) credit(ctx context.Context, record *types.UsedProof) error {
	switch record.Kind {
	case types.KindDeposit:
		return c.ledger.Mint(ctx, record.Token, record.Recipient, record.Amount)
	case types.KindUnlock:
		return c.ledger.Transfer(ctx, record.Token, record.Recipient, record.Amount)
	default:
		return fmt.Errorf("unknown proof kind %q", record.Kind)
	}
}

// setStatus only logs on failure: the credit outcome can't be undone at this point
func (c *Connector) setStatus(ctx context.Context, fingerprint common.Hash, status types.ProofStatus) {
	if err := c.storage.UpdateCreditStatus(ctx, fingerprint, status); err != nil {
		c.log.Errorf("error updating status of proof %s to %s: %v", fingerprint.Hex(), status, err)
	}
}
