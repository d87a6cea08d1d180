package client

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/eth-connector/connector"
	connectorTypes "github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/rpc/types"
	"github.com/ethereum/go-ethereum/common"
)

var jSONRPCCall = rpc.JSONRPCCall

// ConnectorClientInterface is the client side of the "connector" RPC endpoints
type ConnectorClientInterface interface {
	Deposit(call connectorTypes.CallInfo, proof *connectorTypes.Proof) (*connector.ProofResult, error)
	Unlock(call connectorTypes.CallInfo, proof *connectorTypes.Proof) (*connector.ProofResult, error)
	Lock(call connectorTypes.CallInfo, token string, amount *big.Int, recipient string) (*types.RelayResult, error)
	Withdraw(call connectorTypes.CallInfo, amount *big.Int, recipient string) (*types.RelayResult, error)
	IsUsedProof(proof *connectorTypes.Proof) (bool, error)
	GetUsedProof(fingerprint common.Hash) (*connectorTypes.UsedProof, error)
	PendingCredits() ([]*connectorTypes.UsedProof, error)
	GetConfig() (*connectorTypes.ConnectorConfig, error)
	BridgeTokenAccountID(address string) (string, error)
}

// ClientFactoryInterface interface for the client factory
type ClientFactoryInterface interface {
	NewClient(url string) ConnectorClientInterface
}

// ClientFactory is the implementation of the connector client factory
type ClientFactory struct{}

// NewClient returns an implementation of the connector client
func (f *ClientFactory) NewClient(url string) ConnectorClientInterface {
	return NewClient(url)
}

// Client wraps all the available endpoints of the connector node
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

func (c *Client) call(result interface{}, method string, params ...interface{}) error {
	response, err := jSONRPCCall(c.url, method, params...)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(response.Result, result)
}
