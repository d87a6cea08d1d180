package prover

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
)

const methodVerifyLogEntry = "prover_verifyLogEntry"

var jSONRPCCall = rpc.JSONRPCCall

// ProverClienter is the interface of the service that checks a log entry against chain consensus data
type ProverClienter interface {
	VerifyLogEntry(ctx context.Context, proverAccount string, args VerifyLogEntryArgs) (bool, error)
}

// Client is the JSON-RPC client of the prover
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

// VerifyLogEntry asks the prover whether the log entry is included in the header
func (c *Client) VerifyLogEntry(ctx context.Context, proverAccount string, args VerifyLogEntryArgs) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	response, err := jSONRPCCall(c.url, methodVerifyLogEntry, proverAccount, args)
	if err != nil {
		return false, err
	}

	if response.Error != nil {
		return false, fmt.Errorf("%d %s", response.Error.Code, response.Error.Message)
	}

	var result bool
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return false, err
	}

	return result, nil
}
