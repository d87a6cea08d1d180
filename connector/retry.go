package connector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/eth-connector/connector/db"
	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// RetryCredit runs again the ledger call of a recorded proof whose credit failed.
// Can only be called by the connector itself
func (c *Connector) RetryCredit(ctx context.Context, call types.CallInfo,
	fingerprint common.Hash) (*ProofResult, error) {
	if err := c.assertSelf(call); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	record, err := c.storage.GetUsedProof(fingerprint)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProof, fingerprint.Hex())
		}
		return nil, err
	}
	if record.Status != types.StatusCreditFailed {
		return nil, fmt.Errorf("%w: proof %s is %s", ErrNothingToRetry, fingerprint.Hex(), record.Status)
	}
	if record.Kind == types.KindUnlock && !c.cfg.UnlockEnabled {
		return nil, fmt.Errorf("%w: unlock", ErrPathDisabled)
	}

	// claimed back to verified so a crash in the middle never leaves it retriable
	if err := c.storage.UpdateCreditStatus(ctx, fingerprint, types.StatusVerified); err != nil {
		return nil, err
	}
	if err := c.credit(ctx, record); err != nil {
		c.setStatus(ctx, fingerprint, types.StatusCreditFailed)
		return nil, fmt.Errorf("%w: fingerprint %s: %w", ErrCreditFailed, fingerprint.Hex(), err)
	}
	c.setStatus(ctx, fingerprint, types.StatusCredited)

	c.log.Infof("%s credited on retry - Fingerprint: %s. Token: %s. Recipient: %s. Amount: %s",
		record.Kind, fingerprint.Hex(), record.Token, record.Recipient, record.Amount)

	return &ProofResult{
		Status:      types.StatusCredited,
		Fingerprint: fingerprint,
		Refund:      uint256.NewInt(0),
	}, nil
}

// Start retries the failed credits every RetryCreditInterval until ctx is done
func (c *Connector) Start(ctx context.Context) {
	interval := c.cfg.RetryCreditInterval.Duration
	if interval <= 0 {
		c.log.Info("credit retries are disabled")
		return
	}
	c.log.Infof("retrying failed credits every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.RetryPendingCredits(ctx); err != nil {
				c.log.Errorf("error retrying failed credits: %v", err)
			}
		}
	}
}

// RetryPendingCredits retries every recorded proof whose credit failed, oldest first.
// Returns how many of them were credited
func (c *Connector) RetryPendingCredits(ctx context.Context) (int, error) {
	pending, err := c.PendingCredits()
	if err != nil {
		return 0, err
	}

	credited := 0
	for _, record := range pending {
		if ctx.Err() != nil {
			return credited, ctx.Err()
		}
		if _, err := c.RetryCredit(ctx, c.selfCall(nil), record.Fingerprint); err != nil {
			c.log.Warnf("credit retry of %s failed: %v", record.Fingerprint.Hex(), err)
			continue
		}
		credited++
	}
	return credited, nil
}
