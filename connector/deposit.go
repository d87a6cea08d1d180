package connector

import (
	"context"

	"github.com/0xPolygon/eth-connector/connector/types"
)

// Deposit mints the bridged token for the recipient of a Locked event of the custodian.
// The attached deposit has to cover the storage of the proof, what is left is refunded
func (c *Connector) Deposit(ctx context.Context, call types.CallInfo, proof *types.Proof) (*ProofResult, error) {
	return c.process(ctx, types.KindDeposit, call, proof)
}

// FinishDeposit is the continuation of Deposit once the prover answered.
// Can only be called by the connector itself
func (c *Connector) FinishDeposit(ctx context.Context, call types.CallInfo, results []types.PromiseResult,
	args *FinishArgs) (*ProofResult, error) {
	return c.finish(ctx, types.KindDeposit, call, results, args)
}
