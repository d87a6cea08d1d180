package types

import (
	"math/big"
	"testing"

	"github.com/0xPolygon/eth-connector/ethevent"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var (
	custodian = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	token     = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	sender    = common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
)

func mustType(t *testing.T, name string) abi.Type {
	t.Helper()

	typ, err := abi.NewType(name, "", nil)
	require.NoError(t, err)
	return typ
}

func TestParseLockedEvent(t *testing.T) {
	data, err := abi.Arguments{{Type: mustType(t, "uint256")}, {Type: mustType(t, "string")}}.
		Pack(big.NewInt(1000), "alice.near")
	require.NoError(t, err)
	entry, err := ethevent.EncodeLogEntry(ethevent.LogEntry{
		Address: custodian,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte(LockedEventSpec.Signature())),
			common.BytesToHash(token.Bytes()),
			common.BytesToHash(sender.Bytes()),
		},
		Data: data,
	})
	require.NoError(t, err)

	event, err := ParseLockedEvent(entry)
	require.NoError(t, err)
	require.Equal(t, &LockedEvent{
		Custodian: custodian,
		Token:     token,
		Sender:    sender,
		Amount:    big.NewInt(1000),
		Recipient: "alice.near",
	}, event)

	_, err = ParseUnlockedEvent(entry)
	require.ErrorIs(t, err, ethevent.ErrEventShapeMismatch)
}

func TestParseLockedEventOverflow(t *testing.T) {
	data, err := abi.Arguments{{Type: mustType(t, "uint256")}, {Type: mustType(t, "string")}}.
		Pack(new(big.Int).Lsh(big.NewInt(1), 200), "alice.near")
	require.NoError(t, err)
	entry, err := ethevent.EncodeLogEntry(ethevent.LogEntry{
		Address: custodian,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte(LockedEventSpec.Signature())),
			common.BytesToHash(token.Bytes()),
			common.BytesToHash(sender.Bytes()),
		},
		Data: data,
	})
	require.NoError(t, err)

	_, err = ParseLockedEvent(entry)
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestParseUnlockedEvent(t *testing.T) {
	data, err := abi.Arguments{
		{Type: mustType(t, "string")},
		{Type: mustType(t, "uint256")},
		{Type: mustType(t, "string")},
	}.Pack("usdc.near", big.NewInt(42), "bob.near")
	require.NoError(t, err)
	entry, err := ethevent.EncodeLogEntry(ethevent.LogEntry{
		Address: custodian,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("Unlocked(string,address,uint256,string)")),
			common.BytesToHash(sender.Bytes()),
		},
		Data: data,
	})
	require.NoError(t, err)

	event, err := ParseUnlockedEvent(entry)
	require.NoError(t, err)
	require.Equal(t, &UnlockedEvent{
		Custodian: custodian,
		Token:     "usdc.near",
		Sender:    sender,
		Amount:    big.NewInt(42),
		Recipient: "bob.near",
	}, event)
}
