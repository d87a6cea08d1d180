package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/0xPolygon/cdk-rpc/rpc"
)

var jSONRPCCall = rpc.JSONRPCCall

// Ledger is the token ledger the connector credits and debits
type Ledger interface {
	Mint(ctx context.Context, token, recipient string, amount *big.Int) error
	Transfer(ctx context.Context, token, recipient string, amount *big.Int) error
	TransferFrom(ctx context.Context, token, owner, recipient string, amount *big.Int) error
}

// Client is the JSON-RPC client of the ledger
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

// Mint creates amount of token for recipient
func (c *Client) Mint(ctx context.Context, token, recipient string, amount *big.Int) error {
	return c.call(ctx, "ledger_mint", token, recipient, amountParam(amount))
}

// Transfer moves amount of token from the connector to recipient
func (c *Client) Transfer(ctx context.Context, token, recipient string, amount *big.Int) error {
	return c.call(ctx, "ledger_transfer", token, recipient, amountParam(amount))
}

// TransferFrom moves amount of token from owner to recipient, owner must have approved it
func (c *Client) TransferFrom(ctx context.Context, token, owner, recipient string, amount *big.Int) error {
	return c.call(ctx, "ledger_transferFrom", token, owner, recipient, amountParam(amount))
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	response, err := jSONRPCCall(c.url, method, params...)
	if err != nil {
		return err
	}

	if response.Error != nil {
		return fmt.Errorf("%s: %d %s", method, response.Error.Code, response.Error.Message)
	}

	if len(response.Result) == 0 {
		return nil
	}
	var ok bool
	if err := json.Unmarshal(response.Result, &ok); err != nil {
		return fmt.Errorf("%s: unexpected result %s: %w", method, string(response.Result), err)
	}
	if !ok {
		return fmt.Errorf("%s: rejected by the ledger", method)
	}
	return nil
}

// amounts travel as decimal strings as they may not fit a JSON number
func amountParam(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}
