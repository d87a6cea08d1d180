package connector

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/0xPolygon/eth-connector/common"
	"github.com/0xPolygon/eth-connector/connector/types"
)

// Withdraw reports a burn of a bridged token to be released on the source chain for recipient.
// The caller must be <token_address>.<connector_account>
func (c *Connector) Withdraw(_ context.Context, call types.CallInfo, amount *big.Int,
	recipient string) (*types.WithdrawResult, error) {
	if _, err := c.storage.GetConnectorConfig(); err != nil {
		return nil, err
	}

	tokenHex, ok := strings.CutSuffix(call.Predecessor, "."+c.accountID)
	if !ok || tokenHex == "" || strings.Contains(tokenHex, ".") {
		return nil, fmt.Errorf("%w: predecessor %q", ErrUnauthorizedWithdraw, call.Predecessor)
	}
	token, err := common.DecodeEthAddress(tokenHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorizedWithdraw, err)
	}
	// only the canonical spelling of the bridge token account
	if call.Predecessor != c.bridgeTokenAccountID(token) {
		return nil, fmt.Errorf("%w: predecessor %q", ErrUnauthorizedWithdraw, call.Predecessor)
	}
	recipientAddress, err := common.DecodeEthAddress(recipient)
	if err != nil {
		return nil, err
	}
	if err := types.CheckAmount(amount); err != nil {
		return nil, err
	}

	c.log.Infof("withdraw - Token: %s. Amount: %s. Recipient: %s", token.Hex(), amount, recipientAddress.Hex())

	return &types.WithdrawResult{
		ResultType: types.ResultWithdraw,
		Amount:     new(big.Int).Set(amount),
		Token:      token,
		Recipient:  recipientAddress,
	}, nil
}
