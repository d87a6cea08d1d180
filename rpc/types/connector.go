package types

import (
	"math/big"

	connectorTypes "github.com/0xPolygon/eth-connector/connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RelayResult is a result tuple to be relayed to the source chain, along with its
// borsh encoding and the hash of it
type RelayResult struct {
	ResultType string         `json:"result_type"`
	Token      string         `json:"token"`
	Amount     *big.Int       `json:"amount"`
	Recipient  common.Address `json:"recipient"`
	Encoded    hexutil.Bytes  `json:"encoded"`
	Hash       common.Hash    `json:"hash"`
}

func NewWithdrawRelayResult(w *connectorTypes.WithdrawResult) RelayResult {
	return RelayResult{
		ResultType: w.ResultType.String(),
		Token:      w.Token.Hex(),
		Amount:     w.Amount,
		Recipient:  w.Recipient,
		Encoded:    w.Bytes(),
		Hash:       w.Hash(),
	}
}

func NewLockRelayResult(l *connectorTypes.LockResult) RelayResult {
	return RelayResult{
		ResultType: l.ResultType.String(),
		Token:      l.Token,
		Amount:     l.Amount,
		Recipient:  l.Recipient,
		Encoded:    l.Bytes(),
		Hash:       l.Hash(),
	}
}

