package connector

import (
	"context"
	"errors"
	"math"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/0xPolygon/eth-connector/config/types"
	connectorTypes "github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/prover"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const bridgeToken = "e7f1725e7734ce288f8367e1bb143e90bb3f0512.connector.near"

func TestDepositCredited(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, prover.NewVerifyLogEntryArgs(proof, false)).
		Return(true, nil).Once()
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()

	result, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, result.Status)
	require.Equal(t, proof.Fingerprint(), result.Fingerprint)

	// the attached deposit pays for whole bytes of storage and the rest is refunded
	charged := new(uint256.Int).Sub(enoughDeposit, result.Refund)
	require.False(t, charged.IsZero())
	require.True(t, new(uint256.Int).Mod(charged, DefaultStoragePricePerByte).IsZero())

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.True(t, used)

	record, err := c.GetUsedProof(proof.Fingerprint())
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, record.Status)
	require.Equal(t, connectorTypes.KindDeposit, record.Kind)
	require.Equal(t, bridgeToken, record.Token)
	require.Equal(t, testRecipient, record.Recipient)
}

func TestDepositReplayRejected(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	// verification isn't deduplicated, only the credit is
	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(true, nil).Times(2)
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.NoError(t, err)

	result, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrProofAlreadyUsed)
	require.Nil(t, result)
	require.Equal(t, connectorTypes.StatusReplayRejected, StatusOf(err))

	record, err := c.GetUsedProof(proof.Fingerprint())
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, record.Status)
}

func TestDepositConcurrentSubmissions(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	const submissions = 10
	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).
		RunAndReturn(func(context.Context, string, prover.VerifyLogEntryArgs) (bool, error) {
			time.Sleep(time.Millisecond)
			return true, nil
		}).Times(submissions)
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()

	var (
		mu       sync.Mutex
		credited int
		replayed int
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < submissions; i++ {
		g.Go(func() error {
			_, err := c.Deposit(gctx, callWith("relayer.near", enoughDeposit), proof.Copy())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				credited++
			case errors.Is(err, ErrProofAlreadyUsed):
				replayed++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 1, credited)
	require.Equal(t, submissions-1, replayed)
}

func TestDepositCustodianMismatch(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)

	// differs on the last byte
	other := testCustodian
	other[common.AddressLength-1] ^= 0x01
	proof := newProof(lockedLogEntry(t, other, big.NewInt(1000), testRecipient), 1)

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrCustodianMismatch)
	c.prover.AssertNotCalled(t, "VerifyLogEntry", mock.Anything, mock.Anything, mock.Anything)

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)
}

func TestDepositInvalidEvent(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), newProof([]byte{0x01, 0x02}, 1))
	require.ErrorIs(t, err, ErrMalformedLogEncoding)

	unlocked := unlockedLogEntry(t, testCustodian, "usdc.near", big.NewInt(1), testRecipient)
	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit), newProof(unlocked, 1))
	require.ErrorIs(t, err, ErrEventShapeMismatch)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit),
		newProof(lockedLogEntry(t, testCustodian, tooBig, testRecipient), 1))
	require.ErrorIs(t, err, ErrAmountOverflow)

	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit),
		newProof(lockedLogEntry(t, testCustodian, big.NewInt(1), "Not An Account"), 1))
	require.ErrorIs(t, err, ErrInvalidAccountID)

	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit), nil)
	require.ErrorIs(t, err, ErrMalformedLogEncoding)

	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit),
		newProof(lockedLogEntry(t, testCustodian, big.NewInt(1), testRecipient), math.MaxUint64))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDepositVerificationFailed(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(false, nil).Once()

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrVerificationFailed)
	require.Equal(t, connectorTypes.StatusRejected, StatusOf(err))

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)

	// nothing was recorded, so the proof can be submitted again
	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(true, nil).Once()
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()
	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.NoError(t, err)
}

func TestDepositProverCallFailed(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).
		Return(false, errors.New("connection refused")).Once()

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrVerifierCallFailed)

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)
}

func TestDepositVerifyTimeout(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	cfg.VerifyTimeout = types.NewDuration(50 * time.Millisecond)
	c := newConnectorWithMocks(t, cfg, true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ prover.VerifyLogEntryArgs) (bool, error) {
			<-ctx.Done()
			return false, ctx.Err()
		}).Once()

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.Error(t, err)
	require.Empty(t, c.submissions)

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)
}

func TestDepositInsufficientDeposit(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(true, nil).Times(3)

	_, err := c.Deposit(ctx, callWith("relayer.near", uint256.NewInt(1)), proof)
	require.ErrorIs(t, err, ErrInsufficientDeposit)

	_, err = c.Deposit(ctx, callWith("relayer.near", nil), proof)
	require.ErrorIs(t, err, ErrInsufficientDeposit)

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)

	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()
	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.NoError(t, err)
}

func TestDepositCallerMutatesProof(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)
	original := proof.Copy()

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, prover.NewVerifyLogEntryArgs(original, false)).
		RunAndReturn(func(context.Context, string, prover.VerifyLogEntryArgs) (bool, error) {
			// the caller changes its proof while it's being verified
			proof.HeaderData[0] = 0xff
			proof.LogIndex = 99
			return true, nil
		}).Once()
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()

	result, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.NoError(t, err)
	require.Equal(t, original.Fingerprint(), result.Fingerprint)

	used, err := c.IsUsedProof(original)
	require.NoError(t, err)
	require.True(t, used)
}

func TestFinishDepositUnauthorized(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)
	args := c.submitted(t, connectorTypes.KindDeposit, proof)
	verified := []connectorTypes.PromiseResult{connectorTypes.NewSuccessfulResult(true)}

	for _, predecessor := range []string{"attacker.near", "", "prover.near", "sub.connector.near"} {
		_, err := c.FinishDeposit(ctx, callWith(predecessor, enoughDeposit), verified, args)
		require.ErrorIs(t, err, ErrUnauthorizedCallback)
	}

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)

	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()
	result, err := c.FinishDeposit(ctx, callWith(testAccountID, enoughDeposit), verified, args)
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, result.Status)

	// a submission is finished once
	_, err = c.FinishDeposit(ctx, callWith(testAccountID, enoughDeposit), verified, args)
	require.ErrorIs(t, err, ErrUnknownSubmission)
}

func TestFinishDepositNeverSubmitted(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	self := callWith(testAccountID, enoughDeposit)
	verified := []connectorTypes.PromiseResult{connectorTypes.NewSuccessfulResult(true)}
	maxAmount := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	forged := &FinishArgs{
		Nonce:     1,
		Kind:      connectorTypes.KindDeposit,
		Token:     "anytoken.near",
		Recipient: "attacker.near",
		Amount:    maxAmount,
		Proof:     &connectorTypes.Proof{HeaderData: []byte("never verified")},
	}
	_, err := c.FinishDeposit(ctx, self, verified, forged)
	require.ErrorIs(t, err, ErrUnknownSubmission)

	_, err = c.FinishDeposit(ctx, self, verified, nil)
	require.ErrorIs(t, err, ErrInvalidFinishArgs)

	used, err := c.IsUsedProof(forged.Proof)
	require.NoError(t, err)
	require.False(t, used)
	c.prover.AssertNotCalled(t, "VerifyLogEntry", mock.Anything, mock.Anything, mock.Anything)
	c.ledger.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFinishDepositArgsDifferFromSubmission(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	self := callWith(testAccountID, enoughDeposit)
	verified := []connectorTypes.PromiseResult{connectorTypes.NewSuccessfulResult(true)}
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)
	args := c.submitted(t, connectorTypes.KindDeposit, proof)

	tests := []struct {
		name   string
		mutate func(args *FinishArgs)
	}{
		{name: "recipient", mutate: func(args *FinishArgs) { args.Recipient = "attacker.near" }},
		{name: "token", mutate: func(args *FinishArgs) { args.Token = "anytoken.near" }},
		{name: "amount", mutate: func(args *FinishArgs) { args.Amount = big.NewInt(1_000_000) }},
		{name: "missing amount", mutate: func(args *FinishArgs) { args.Amount = nil }},
		{name: "kind", mutate: func(args *FinishArgs) { args.Kind = connectorTypes.KindUnlock }},
		{name: "missing proof", mutate: func(args *FinishArgs) { args.Proof = nil }},
		{
			// same fingerprint, another event
			name: "log entry",
			mutate: func(args *FinishArgs) {
				args.Proof = newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), "attacker.near"), 1)
			},
		},
		{
			name: "proof",
			mutate: func(args *FinishArgs) {
				args.Proof = newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 2)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tampered := *args
			tt.mutate(&tampered)
			_, err := c.FinishDeposit(ctx, self, verified, &tampered)
			require.ErrorIs(t, err, ErrInvalidFinishArgs)
		})
	}

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)

	// the registered submission is still there for its own continuation
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()
	result, err := c.FinishDeposit(ctx, self, verified, args)
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, result.Status)
}

func TestFinishDepositCallbackShape(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)
	self := callWith(testAccountID, enoughDeposit)

	tests := []struct {
		name     string
		results  []connectorTypes.PromiseResult
		expected error
	}{
		{name: "no results", results: nil, expected: ErrUnexpectedCallbackShape},
		{
			name: "two results",
			results: []connectorTypes.PromiseResult{
				connectorTypes.NewSuccessfulResult(true),
				connectorTypes.NewSuccessfulResult(true),
			},
			expected: ErrUnexpectedCallbackShape,
		},
		{
			name:     "not a boolean",
			results:  []connectorTypes.PromiseResult{connectorTypes.NewSuccessfulResult("yes")},
			expected: ErrUnexpectedCallbackShape,
		},
		{
			name:     "failed call",
			results:  []connectorTypes.PromiseResult{connectorTypes.NewFailedResult()},
			expected: ErrVerifierCallFailed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			args := c.submitted(t, connectorTypes.KindDeposit, proof)
			_, err := c.FinishDeposit(ctx, self, tt.results, args)
			require.ErrorIs(t, err, tt.expected)
		})
	}

	used, err := c.IsUsedProof(proof)
	require.NoError(t, err)
	require.False(t, used)
	require.Empty(t, c.submissions)
}

func TestCreditFailedAndRetry(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)
	fingerprint := proof.Fingerprint()

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(true, nil).Times(2)
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).
		Return(errors.New("ledger unavailable")).Once()

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrCreditFailed)
	require.Equal(t, connectorTypes.StatusCreditFailed, StatusOf(err))

	pending, err := c.PendingCredits()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, fingerprint, pending[0].Fingerprint)

	// the proof stays recorded, submitting it again never credits twice
	_, err = c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrProofAlreadyUsed)

	_, err = c.RetryCredit(ctx, callWith("relayer.near", nil), fingerprint)
	require.ErrorIs(t, err, ErrUnauthorizedCallback)

	_, err = c.RetryCredit(ctx, callWith(testAccountID, nil), common.HexToHash("0x01"))
	require.ErrorIs(t, err, ErrUnknownProof)
	_, err = c.GetUsedProof(common.HexToHash("0x01"))
	require.ErrorIs(t, err, ErrUnknownProof)

	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()
	result, err := c.RetryCredit(ctx, callWith(testAccountID, nil), fingerprint)
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, result.Status)

	_, err = c.RetryCredit(ctx, callWith(testAccountID, nil), fingerprint)
	require.ErrorIs(t, err, ErrNothingToRetry)

	pending, err = c.PendingCredits()
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRetryPendingCredits(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), true)
	first := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)
	second := newProof(lockedLogEntry(t, testCustodian, big.NewInt(2000), testRecipient), 2)

	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, mock.Anything).Return(true, nil).Times(2)
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, mock.Anything).
		Return(errors.New("ledger unavailable")).Times(2)
	for _, proof := range []*connectorTypes.Proof{first, second} {
		_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
		require.ErrorIs(t, err, ErrCreditFailed)
	}

	// the ledger keeps refusing the second credit
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(1000)).Return(nil).Once()
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(2000)).
		Return(errors.New("ledger unavailable")).Once()
	credited, err := c.RetryPendingCredits(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, credited)

	pending, err := c.PendingCredits()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, second.Fingerprint(), pending[0].Fingerprint)

	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(2000)).Return(nil).Once()
	credited, err = c.RetryPendingCredits(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, credited)

	record, err := c.GetUsedProof(second.Fingerprint())
	require.NoError(t, err)
	require.Equal(t, connectorTypes.StatusCredited, record.Status)
}

func TestStartRetriesDisabled(t *testing.T) {
	c := newConnectorWithMocks(t, newTestConfig(t), true)

	done := make(chan struct{})
	go func() {
		c.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start kept running with the retries disabled")
	}
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	c := newConnectorWithMocks(t, newTestConfig(t), false)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(1000), testRecipient), 1)

	_, err := c.Deposit(ctx, callWith("relayer.near", enoughDeposit), proof)
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = c.Withdraw(ctx, callWith(bridgeToken, nil), big.NewInt(1), testCustodianHex)
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = c.GetConfig()
	require.ErrorIs(t, err, ErrNotInitialized)

	require.ErrorIs(t, c.Init(ctx, testProverAccount, "0x1234"), ErrInvalidAddressFormat)
	require.ErrorIs(t, c.Init(ctx, "", testCustodianHex), ErrInvalidAccountID)

	require.NoError(t, c.Init(ctx, testProverAccount, "0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	require.ErrorIs(t, c.Init(ctx, testProverAccount, testCustodianHex), ErrAlreadyInitialized)

	cfg, err := c.GetConfig()
	require.NoError(t, err)
	require.Equal(t, testProverAccount, cfg.ProverAccount)
	require.Equal(t, testCustodian, cfg.CustodianAddress)
}

func TestBridgeTokenAccountID(t *testing.T) {
	c := newConnectorWithMocks(t, newTestConfig(t), true)

	for _, input := range []string{
		"e7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"E7F1725E7734CE288F8367E1BB143E90BB3F0512",
	} {
		accountID, err := c.BridgeTokenAccountID(input)
		require.NoError(t, err)
		require.Equal(t, bridgeToken, accountID)
	}

	_, err := c.BridgeTokenAccountID("e7f1725e")
	require.ErrorIs(t, err, ErrInvalidAddressFormat)
}

func TestNew(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.SkipBridgeCall = true
	_, err := New(nil, cfg, testAccountID, nil, nil, nil)
	require.ErrorIs(t, err, ErrSkipBridgeCallNotAllowed)

	_, err = New(nil, Config{}, testAccountID, nil, nil, nil)
	require.ErrorIs(t, err, ErrMissingStoragePath)

	_, err = New(nil, newTestConfig(t), "UPPER.near", nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidAccountID)

	cfg.DevelopmentMode = true
	c := newConnectorWithMocks(t, cfg, true)
	proof := newProof(lockedLogEntry(t, testCustodian, big.NewInt(5), testRecipient), 1)
	c.prover.EXPECT().VerifyLogEntry(mock.Anything, testProverAccount, prover.NewVerifyLogEntryArgs(proof, true)).
		Return(true, nil).Once()
	c.ledger.EXPECT().Mint(mock.Anything, bridgeToken, testRecipient, amountEq(5)).Return(nil).Once()
	_, err = c.Deposit(context.Background(), callWith("relayer.near", enoughDeposit), proof)
	require.NoError(t, err)
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, connectorTypes.StatusCredited, StatusOf(nil))
	require.Equal(t, connectorTypes.StatusReplayRejected, StatusOf(ErrProofAlreadyUsed))
	require.Equal(t, connectorTypes.StatusCreditFailed, StatusOf(ErrCreditFailed))
	require.Equal(t, connectorTypes.StatusRejected, StatusOf(ErrVerificationFailed))
	require.Equal(t, connectorTypes.StatusRejected, StatusOf(ErrCustodianMismatch))
}

func TestValidateAccountID(t *testing.T) {
	for _, valid := range []string{"alice.near", "a1", "connector.near", "bob_1-2.testnet", testAccountID} {
		require.NoError(t, ValidateAccountID(valid), valid)
	}
	for _, invalid := range []string{"", "a", "Alice.near", "alice..near", ".alice", "alice.", "a b",
		"this-account-id-is-way-too-long-to-be-a-valid-account-on-the-host-chain.near"} {
		require.ErrorIs(t, ValidateAccountID(invalid), ErrInvalidAccountID, invalid)
	}
}
