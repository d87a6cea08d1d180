package types

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

const u128Len = 16

// ResultType tags the tuples returned for off-chain relaying
type ResultType uint8

const (
	ResultWithdraw ResultType = iota
	ResultLock
)

func (r ResultType) String() string {
	switch r {
	case ResultWithdraw:
		return "Withdraw"
	case ResultLock:
		return "Lock"
	default:
		return "Unknown"
	}
}

// WithdrawResult describes a burn on this side to be released on the source chain.
// Amount must fit in 128 bits
type WithdrawResult struct {
	ResultType ResultType     `json:"result_type"`
	Amount     *big.Int       `json:"amount"`
	Token      common.Address `json:"token"`
	Recipient  common.Address `json:"recipient"`
}

// Bytes returns the borsh layout of the tuple: u8 type, u128 LE amount, token, recipient
func (w *WithdrawResult) Bytes() []byte {
	res := make([]byte, 0, 1+u128Len+2*common.AddressLength)
	res = append(res, byte(w.ResultType))
	res = append(res, u128LittleEndian(w.Amount)...)
	res = append(res, w.Token[:]...)
	res = append(res, w.Recipient[:]...)
	return res
}

// Hash is the keccak256 of the borsh layout
func (w *WithdrawResult) Hash() common.Hash {
	return common.BytesToHash(keccak256.Hash(w.Bytes()))
}

// LockResult describes a native token lock on this side to be minted on the source chain.
// Amount must fit in 128 bits
type LockResult struct {
	ResultType ResultType     `json:"result_type"`
	Token      string         `json:"token"`
	Amount     *big.Int       `json:"amount"`
	Recipient  common.Address `json:"recipient"`
}

// Bytes returns the borsh layout of the tuple: u8 type, u32 LE length prefixed token,
// u128 LE amount, recipient
func (l *LockResult) Bytes() []byte {
	res := make([]byte, 0, 1+4+len(l.Token)+u128Len+common.AddressLength) //nolint:mnd
	res = append(res, byte(l.ResultType))
	res = binary.LittleEndian.AppendUint32(res, uint32(len(l.Token)))
	res = append(res, l.Token...)
	res = append(res, u128LittleEndian(l.Amount)...)
	res = append(res, l.Recipient[:]...)
	return res
}

// Hash is the keccak256 of the borsh layout
func (l *LockResult) Hash() common.Hash {
	return common.BytesToHash(keccak256.Hash(l.Bytes()))
}

// CheckAmount fails with ErrAmountOverflow if amount isn't an unsigned 128 bit value
func CheckAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 || amount.BitLen() > amountBits {
		return fmt.Errorf("%w: %v", ErrAmountOverflow, amount)
	}
	return nil
}

func u128LittleEndian(n *big.Int) []byte {
	var buf [u128Len]byte
	if n == nil {
		return buf[:]
	}
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:]
}
