package connector

import (
	"context"
	"math/big"
	"path"
	"testing"

	cdkcommon "github.com/0xPolygon/eth-connector/common"
	"github.com/0xPolygon/eth-connector/config/types"
	"github.com/0xPolygon/eth-connector/connector/db"
	connectorTypes "github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/ethevent"
	ledgerMocks "github.com/0xPolygon/eth-connector/ledger/mocks"
	"github.com/0xPolygon/eth-connector/log"
	proverMocks "github.com/0xPolygon/eth-connector/prover/mocks"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testAccountID     = "connector.near"
	testProverAccount = "prover.near"
	testRecipient     = "alice.near"
	testCustodianHex  = "5fbdb2315678afecb367f032d93f642f64180aa3"
)

var (
	testCustodian = common.HexToAddress(testCustodianHex)
	testToken     = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	testSender    = common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
	// 10 NEAR, enough for the storage of any proof
	enoughDeposit = uint256.MustFromDecimal("10000000000000000000000000")
)

type connectorWithMocks struct {
	*Connector
	storage *db.ConnectorSQLStorage
	prover  *proverMocks.ProverClienter
	ledger  *ledgerMocks.Ledger
}

func newTestConfig(t *testing.T) Config {
	t.Helper()

	return Config{
		StoragePath:         path.Join(t.TempDir(), "connector.sqlite"),
		StoragePricePerByte: *DefaultStoragePricePerByte,
		VerifyTimeout:       types.NewDuration(0),
	}
}

func newConnectorWithMocks(t *testing.T, cfg Config, initialize bool) *connectorWithMocks {
	t.Helper()

	logger := log.WithFields("module", cdkcommon.CONNECTOR)
	storage, err := db.NewConnectorSQLStorage(logger, cfg.StoragePath)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.Close()) })

	proverMock := proverMocks.NewProverClienter(t)
	ledgerMock := ledgerMocks.NewLedger(t)
	c, err := New(logger, cfg, testAccountID, storage, proverMock, ledgerMock)
	require.NoError(t, err)

	if initialize {
		require.NoError(t, c.Init(context.Background(), testProverAccount, testCustodianHex))
	}

	return &connectorWithMocks{
		Connector: c,
		storage:   storage,
		prover:    proverMock,
		ledger:    ledgerMock,
	}
}

func mustType(t *testing.T, name string) abi.Type {
	t.Helper()

	typ, err := abi.NewType(name, "", nil)
	require.NoError(t, err)
	return typ
}

func lockedLogEntry(t *testing.T, custodian common.Address, amount *big.Int, recipient string) []byte {
	t.Helper()

	data, err := abi.Arguments{{Type: mustType(t, "uint256")}, {Type: mustType(t, "string")}}.Pack(amount, recipient)
	require.NoError(t, err)
	entry, err := ethevent.EncodeLogEntry(ethevent.LogEntry{
		Address: custodian,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("Locked(address,address,uint256,string)")),
			common.BytesToHash(testToken.Bytes()),
			common.BytesToHash(testSender.Bytes()),
		},
		Data: data,
	})
	require.NoError(t, err)
	return entry
}

func unlockedLogEntry(t *testing.T, custodian common.Address, token string, amount *big.Int,
	recipient string) []byte {
	t.Helper()

	data, err := abi.Arguments{
		{Type: mustType(t, "string")},
		{Type: mustType(t, "uint256")},
		{Type: mustType(t, "string")},
	}.Pack(token, amount, recipient)
	require.NoError(t, err)
	entry, err := ethevent.EncodeLogEntry(ethevent.LogEntry{
		Address: custodian,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("Unlocked(string,address,uint256,string)")),
			common.BytesToHash(testSender.Bytes()),
		},
		Data: data,
	})
	require.NoError(t, err)
	return entry
}

func newProof(logEntryData []byte, logIndex uint64) *connectorTypes.Proof {
	return &connectorTypes.Proof{
		LogIndex:     logIndex,
		LogEntryData: logEntryData,
		ReceiptIndex: 7,
		ReceiptData:  []byte{0xf9, 0x01, 0x02},
		HeaderData:   []byte{0xf9, 0x02, 0x11, 0x22, 0x33},
		Proof:        []hexutil.Bytes{{0x01, 0x02}, {0x03, 0x04}},
	}
}

func amountEq(n int64) interface{} {
	return mock.MatchedBy(func(amount *big.Int) bool {
		return amount != nil && amount.Cmp(big.NewInt(n)) == 0
	})
}

func callWith(predecessor string, deposit *uint256.Int) connectorTypes.CallInfo {
	return connectorTypes.CallInfo{Predecessor: predecessor, AttachedDeposit: deposit}
}

// submitted runs the submission phase of proof with a verification answering true,
// returning the args the connector registered for the continuation
func (c *connectorWithMocks) submitted(t *testing.T, kind connectorTypes.ProofKind,
	proof *connectorTypes.Proof) *FinishArgs {
	t.Helper()

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(true, nil).Once()
	args, pending, err := c.submit(context.Background(), kind, proof)
	require.NoError(t, err)
	<-pending
	return args
}
