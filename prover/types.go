package prover

import (
	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// VerifyLogEntryArgs is the request sent to the prover
type VerifyLogEntryArgs struct {
	LogIndex       uint64          `json:"log_index"`
	LogEntryData   hexutil.Bytes   `json:"log_entry_data"`
	ReceiptIndex   uint64          `json:"receipt_index"`
	ReceiptData    hexutil.Bytes   `json:"receipt_data"`
	HeaderData     hexutil.Bytes   `json:"header_data"`
	Proof          []hexutil.Bytes `json:"proof"`
	SkipBridgeCall bool            `json:"skip_bridge_call"`
}

// NewVerifyLogEntryArgs builds the request from a copy of the proof
func NewVerifyLogEntryArgs(proof *types.Proof, skipBridgeCall bool) VerifyLogEntryArgs {
	p := proof.Copy()
	return VerifyLogEntryArgs{
		LogIndex:       p.LogIndex,
		LogEntryData:   p.LogEntryData,
		ReceiptIndex:   p.ReceiptIndex,
		ReceiptData:    p.ReceiptData,
		HeaderData:     p.HeaderData,
		Proof:          p.Proof,
		SkipBridgeCall: skipBridgeCall,
	}
}
