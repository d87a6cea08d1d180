package client

import (
	"math/big"

	"github.com/0xPolygon/eth-connector/connector"
	connectorTypes "github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/rpc/types"
	"github.com/ethereum/go-ethereum/common"
)

// Deposit submits the proof of a Locked event and waits for its outcome
func (c *Client) Deposit(call connectorTypes.CallInfo, proof *connectorTypes.Proof) (*connector.ProofResult, error) {
	var result connector.ProofResult
	if err := c.call(&result, "connector_deposit", call, proof); err != nil {
		return nil, err
	}
	return &result, nil
}

// Unlock submits the proof of an Unlocked event and waits for its outcome
func (c *Client) Unlock(call connectorTypes.CallInfo, proof *connectorTypes.Proof) (*connector.ProofResult, error) {
	var result connector.ProofResult
	if err := c.call(&result, "connector_unlock", call, proof); err != nil {
		return nil, err
	}
	return &result, nil
}

// Lock locks a native token and returns the tuple to relay to the source chain
func (c *Client) Lock(
	call connectorTypes.CallInfo, token string, amount *big.Int, recipient string,
) (*types.RelayResult, error) {
	var result types.RelayResult
	if err := c.call(&result, "connector_lock", call, token, amount, recipient); err != nil {
		return nil, err
	}
	return &result, nil
}

// Withdraw reports a burn and returns the tuple to relay to the source chain
func (c *Client) Withdraw(call connectorTypes.CallInfo, amount *big.Int, recipient string) (*types.RelayResult, error) {
	var result types.RelayResult
	if err := c.call(&result, "connector_withdraw", call, amount, recipient); err != nil {
		return nil, err
	}
	return &result, nil
}

// IsUsedProof returns true if the proof was already used to credit
func (c *Client) IsUsedProof(proof *connectorTypes.Proof) (bool, error) {
	var result bool
	return result, c.call(&result, "connector_isUsedProof", proof)
}

// GetUsedProof returns the record of a used proof
func (c *Client) GetUsedProof(fingerprint common.Hash) (*connectorTypes.UsedProof, error) {
	var result connectorTypes.UsedProof
	if err := c.call(&result, "connector_getUsedProof", fingerprint); err != nil {
		return nil, err
	}
	return &result, nil
}

// PendingCredits returns the recorded proofs whose credit failed
func (c *Client) PendingCredits() ([]*connectorTypes.UsedProof, error) {
	var result []*connectorTypes.UsedProof
	return result, c.call(&result, "connector_pendingCredits")
}

// GetConfig returns the configuration set on init
func (c *Client) GetConfig() (*connectorTypes.ConnectorConfig, error) {
	var result connectorTypes.ConnectorConfig
	if err := c.call(&result, "connector_getConfig"); err != nil {
		return nil, err
	}
	return &result, nil
}

// BridgeTokenAccountID returns the account of the bridged token of an ETH token address
func (c *Client) BridgeTokenAccountID(address string) (string, error) {
	var result string
	return result, c.call(&result, "connector_bridgeTokenAccountID", address)
}
