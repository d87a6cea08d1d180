package rpc

import (
	"context"
	"math/big"

	"github.com/0xPolygon/eth-connector/connector"
	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/ethereum/go-ethereum/common"
)

// Connectorer is what the connector endpoints need from the connector. The finish
// continuations and the credit retries run in process, they aren't exposed
type Connectorer interface {
	Deposit(ctx context.Context, call types.CallInfo, proof *types.Proof) (*connector.ProofResult, error)
	Unlock(ctx context.Context, call types.CallInfo, proof *types.Proof) (*connector.ProofResult, error)
	Lock(ctx context.Context, call types.CallInfo, token string, amount *big.Int,
		recipient string) (*types.LockResult, error)
	Withdraw(ctx context.Context, call types.CallInfo, amount *big.Int, recipient string) (*types.WithdrawResult, error)
	IsUsedProof(proof *types.Proof) (bool, error)
	GetUsedProof(fingerprint common.Hash) (*types.UsedProof, error)
	PendingCredits() ([]*types.UsedProof, error)
	GetConfig() (*types.ConnectorConfig, error)
	BridgeTokenAccountID(address string) (string, error)
}
