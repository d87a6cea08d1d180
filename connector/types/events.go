package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/eth-connector/ethevent"
	"github.com/ethereum/go-ethereum/common"
)

const amountBits = 128

// ErrAmountOverflow is returned when an event amount doesn't fit in 128 bits
var ErrAmountOverflow = errors.New("amount doesn't fit in 128 bits")

var (
	// LockedEventSpec is Locked(address indexed token, address indexed sender, uint256 amount, string accountId)
	LockedEventSpec = ethevent.EventSpec{
		Name: "Locked",
		Fields: []ethevent.Field{
			{Name: "token", Type: ethevent.AddressType(), Indexed: true},
			{Name: "sender", Type: ethevent.AddressType(), Indexed: true},
			{Name: "amount", Type: ethevent.UintType(256)},
			{Name: "accountId", Type: ethevent.StringType()},
		},
	}

	// UnlockedEventSpec is Unlocked(string token, address indexed sender, uint256 amount, string accountId)
	UnlockedEventSpec = ethevent.EventSpec{
		Name: "Unlocked",
		Fields: []ethevent.Field{
			{Name: "token", Type: ethevent.StringType()},
			{Name: "sender", Type: ethevent.AddressType(), Indexed: true},
			{Name: "amount", Type: ethevent.UintType(256)},
			{Name: "accountId", Type: ethevent.StringType()},
		},
	}
)

// LockedEvent is emitted by the custodian when tokens are locked to be minted on this side
type LockedEvent struct {
	Custodian common.Address
	Token     common.Address
	Sender    common.Address
	Amount    *big.Int
	Recipient string
}

// UnlockedEvent is emitted when a bridged token is burnt on the source chain to release
// the locally held native token
type UnlockedEvent struct {
	Custodian common.Address
	Token     string
	Sender    common.Address
	Amount    *big.Int
	Recipient string
}

// ParseLockedEvent decodes a Locked event from RLP log entry bytes
func ParseLockedEvent(logEntryData []byte) (*LockedEvent, error) {
	event, err := ethevent.Decode(LockedEventSpec, logEntryData)
	if err != nil {
		return nil, err
	}
	res := &LockedEvent{Custodian: event.Address}
	if res.Token, err = event.AddressArg("token"); err != nil {
		return nil, err
	}
	if res.Sender, err = event.AddressArg("sender"); err != nil {
		return nil, err
	}
	if res.Amount, err = amountArg(event); err != nil {
		return nil, err
	}
	if res.Recipient, err = event.StringArg("accountId"); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseUnlockedEvent decodes an Unlocked event from RLP log entry bytes
func ParseUnlockedEvent(logEntryData []byte) (*UnlockedEvent, error) {
	event, err := ethevent.Decode(UnlockedEventSpec, logEntryData)
	if err != nil {
		return nil, err
	}
	res := &UnlockedEvent{Custodian: event.Address}
	if res.Token, err = event.StringArg("token"); err != nil {
		return nil, err
	}
	if res.Sender, err = event.AddressArg("sender"); err != nil {
		return nil, err
	}
	if res.Amount, err = amountArg(event); err != nil {
		return nil, err
	}
	if res.Recipient, err = event.StringArg("accountId"); err != nil {
		return nil, err
	}
	return res, nil
}

func amountArg(event *ethevent.Event) (*big.Int, error) {
	amount, err := event.UintArgBits("amount", amountBits)
	if errors.Is(err, ethevent.ErrValueOverflow) {
		return nil, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	return amount, err
}
