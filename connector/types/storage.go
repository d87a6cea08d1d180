package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ConnectorConfig is the configuration set once when the connector is initialized
type ConnectorConfig struct {
	ID               uint64         `meddler:"id"`
	ProverAccount    string         `meddler:"prover_account"`
	CustodianAddress common.Address `meddler:"custodian_address,address"`
	InitializedAt    int64          `meddler:"initialized_at"`
}

// UsedProof is the replay set entry of an accepted proof, it also tracks the credit
// of the proof once it was recorded
type UsedProof struct {
	Fingerprint  common.Hash `meddler:"fingerprint,hash"`
	Kind         ProofKind   `meddler:"kind"`
	LogIndex     uint64      `meddler:"log_index"`
	ReceiptIndex uint64      `meddler:"receipt_index"`
	Token        string      `meddler:"token"`
	Recipient    string      `meddler:"recipient"`
	Amount       *big.Int    `meddler:"amount,bigint"`
	Status       ProofStatus `meddler:"status"`
	CreatedAt    int64       `meddler:"created_at"`
	UpdatedAt    int64       `meddler:"updated_at"`
}

func (u *UsedProof) String() string {
	return fmt.Sprintf("UsedProof{Fingerprint: %s, Kind: %s, LogIndex: %d, ReceiptIndex: %d, "+
		"Token: %s, Recipient: %s, Amount: %s, Status: %s}",
		u.Fingerprint.Hex(), u.Kind, u.LogIndex, u.ReceiptIndex, u.Token, u.Recipient, u.Amount, u.Status)
}
