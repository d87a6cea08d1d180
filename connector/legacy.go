package connector

import (
	"context"
	"fmt"
	"math/big"

	"github.com/0xPolygon/eth-connector/common"
	"github.com/0xPolygon/eth-connector/connector/types"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

// Unlock releases a native token held by the connector for the recipient of an Unlocked event
func (c *Connector) Unlock(ctx context.Context, call types.CallInfo, proof *types.Proof) (*ProofResult, error) {
	if !c.cfg.UnlockEnabled {
		return nil, fmt.Errorf("%w: unlock", ErrPathDisabled)
	}
	return c.process(ctx, types.KindUnlock, call, proof)
}

// FinishUnlock is the continuation of Unlock once the prover answered.
// Can only be called by the connector itself
func (c *Connector) FinishUnlock(ctx context.Context, call types.CallInfo, results []types.PromiseResult,
	args *FinishArgs) (*ProofResult, error) {
	if !c.cfg.UnlockEnabled {
		return nil, fmt.Errorf("%w: unlock", ErrPathDisabled)
	}
	return c.finish(ctx, types.KindUnlock, call, results, args)
}

// Lock takes amount of a native token from the caller to be minted on the source chain for recipient
func (c *Connector) Lock(ctx context.Context, call types.CallInfo, token string, amount *big.Int,
	recipient string) (*types.LockResult, error) {
	if !c.cfg.LockEnabled {
		return nil, fmt.Errorf("%w: lock", ErrPathDisabled)
	}
	if _, err := c.storage.GetConnectorConfig(); err != nil {
		return nil, err
	}
	if err := ValidateAccountID(token); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	recipientAddress, err := common.DecodeEthAddress(recipient)
	if err != nil {
		return nil, err
	}
	if err := types.CheckAmount(amount); err != nil {
		return nil, err
	}

	var results []types.PromiseResult
	if err := c.ledger.TransferFrom(ctx, token, call.Predecessor, c.accountID, amount); err != nil {
		c.log.Warnf("lock transfer from %s failed: %v", call.Predecessor, err)
		results = []types.PromiseResult{types.NewFailedResult()}
	} else {
		results = []types.PromiseResult{types.NewSuccessfulResult(true)}
	}

	return c.FinishLock(ctx, c.selfCall(nil), results, token, amount, recipientAddress)
}

// FinishLock is the continuation of Lock once the transfer is done.
// Can only be called by the connector itself
func (c *Connector) FinishLock(_ context.Context, call types.CallInfo, results []types.PromiseResult,
	token string, amount *big.Int, recipient ethCommon.Address) (*types.LockResult, error) {
	if !c.cfg.LockEnabled {
		return nil, fmt.Errorf("%w: lock", ErrPathDisabled)
	}
	if err := c.assertSelf(call); err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("%w: got %d results", ErrUnexpectedCallbackShape, len(results))
	}
	if results[0].Status != types.PromiseSuccessful {
		return nil, fmt.Errorf("%w: transfer of %s %s", ErrLedgerCallFailed, amount, token)
	}

	c.log.Infof("locked - Token: %s. Amount: %s. Recipient: %s", token, amount, recipient.Hex())

	return &types.LockResult{
		ResultType: types.ResultLock,
		Token:      token,
		Amount:     new(big.Int).Set(amount),
		Recipient:  recipient,
	}, nil
}
