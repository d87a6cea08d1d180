package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/eth-connector/connector"
	connectorTypes "github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/log"
	"github.com/0xPolygon/eth-connector/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// CONNECTOR is the namespace of the connector service
	CONNECTOR = "connector"
	meterName = "github.com/0xPolygon/eth-connector/rpc"
)

// ConnectorEndpoints contains implementations for the "connector" RPC endpoints
type ConnectorEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	connector    Connectorer
}

// NewConnectorEndpoints returns ConnectorEndpoints
func NewConnectorEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	connector Connectorer,
) *ConnectorEndpoints {
	meter := otel.Meter(meterName)
	return &ConnectorEndpoints{
		logger:       logger,
		meter:        meter,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		connector:    connector,
	}
}

// withTimeout applies the timeout only when it is configured
func withTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (b *ConnectorEndpoints) count(ctx context.Context, name string) {
	c, merr := b.meter.Int64Counter(name)
	if merr != nil {
		b.logger.Warnf("failed to create %s counter: %s", name, merr)
		return
	}
	c.Add(ctx, 1)
}

func proofError(method string, err error) rpc.Error {
	return rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf(
		"%s failed with status %s, error: %s", method, connector.StatusOf(err), err),
	)
}

// Deposit submits the proof of a Locked event to mint the bridged token for its recipient.
// It returns once the proof is verified and credited, or rejected
func (b *ConnectorEndpoints) Deposit(call connectorTypes.CallInfo, proof connectorTypes.Proof) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.writeTimeout)
	defer cancel()
	b.count(ctx, "deposit")

	result, err := b.connector.Deposit(ctx, call, &proof)
	if err != nil {
		return nil, proofError("deposit", err)
	}
	return result, nil
}

// Unlock submits the proof of an Unlocked event to release a native token
func (b *ConnectorEndpoints) Unlock(call connectorTypes.CallInfo, proof connectorTypes.Proof) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.writeTimeout)
	defer cancel()
	b.count(ctx, "unlock")

	result, err := b.connector.Unlock(ctx, call, &proof)
	if err != nil {
		return nil, proofError("unlock", err)
	}
	return result, nil
}

// Lock takes a native token from the caller and returns the tuple to be relayed to the source chain
func (b *ConnectorEndpoints) Lock(
	call connectorTypes.CallInfo, token string, amount *big.Int, recipient string,
) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.writeTimeout)
	defer cancel()
	b.count(ctx, "lock")

	result, err := b.connector.Lock(ctx, call, token, amount, recipient)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("lock failed, error: %s", err))
	}
	return types.NewLockRelayResult(result), nil
}

// Withdraw is called by a bridged token when burning, it returns the tuple to be relayed
// to the source chain
func (b *ConnectorEndpoints) Withdraw(
	call connectorTypes.CallInfo, amount *big.Int, recipient string,
) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.writeTimeout)
	defer cancel()
	b.count(ctx, "withdraw")

	result, err := b.connector.Withdraw(ctx, call, amount, recipient)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("withdraw failed, error: %s", err))
	}
	return types.NewWithdrawRelayResult(result), nil
}

// IsUsedProof returns true if the proof was already used to credit
func (b *ConnectorEndpoints) IsUsedProof(proof connectorTypes.Proof) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.readTimeout)
	defer cancel()
	b.count(ctx, "is_used_proof")

	used, err := b.connector.IsUsedProof(&proof)
	if err != nil {
		return false, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to check the proof, error: %s", err))
	}
	return used, nil
}

// GetUsedProof returns the record of a used proof by its fingerprint
func (b *ConnectorEndpoints) GetUsedProof(fingerprint common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.readTimeout)
	defer cancel()
	b.count(ctx, "get_used_proof")

	record, err := b.connector.GetUsedProof(fingerprint)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get used proof, error: %s", err))
	}
	return record, nil
}

// PendingCredits returns the recorded proofs whose credit has to be retried
func (b *ConnectorEndpoints) PendingCredits() (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.readTimeout)
	defer cancel()
	b.count(ctx, "pending_credits")

	records, err := b.connector.PendingCredits()
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get pending credits, error: %s", err))
	}
	return records, nil
}

// GetConfig returns the prover account and the custodian address the connector was initialized with
func (b *ConnectorEndpoints) GetConfig() (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.readTimeout)
	defer cancel()
	b.count(ctx, "get_config")

	cfg, err := b.connector.GetConfig()
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get config, error: %s", err))
	}
	return cfg, nil
}

// BridgeTokenAccountID returns the account of the bridged token of an ETH token address
func (b *ConnectorEndpoints) BridgeTokenAccountID(address string) (interface{}, rpc.Error) {
	ctx, cancel := withTimeout(b.readTimeout)
	defer cancel()
	b.count(ctx, "bridge_token_account_id")

	accountID, err := b.connector.BridgeTokenAccountID(address)
	if err != nil {
		return "", rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("invalid token address, error: %s", err))
	}
	return accountID, nil
}
