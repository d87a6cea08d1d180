package prover_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/prover"
	"github.com/0xPolygon/eth-connector/prover/mocks"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func collect(results <-chan types.PromiseResult) []types.PromiseResult {
	res := []types.PromiseResult{}
	for r := range results {
		res = append(res, r)
	}
	return res
}

func TestRequestVerification(t *testing.T) {
	ctx := context.Background()
	proof := &types.Proof{
		LogIndex:     3,
		LogEntryData: []byte{0x01},
		ReceiptIndex: 4,
		ReceiptData:  []byte{0x02},
		HeaderData:   []byte{0x03},
		Proof:        []hexutil.Bytes{{0x04}},
	}

	t.Run("verified", func(t *testing.T) {
		client := mocks.NewProverClienter(t)
		client.EXPECT().VerifyLogEntry(ctx, "prover.near", prover.NewVerifyLogEntryArgs(proof, false)).
			Return(true, nil).Once()

		results := collect(prover.RequestVerification(ctx, client, "prover.near", proof, false))
		require.Len(t, results, 1)
		ok, err := prover.VerificationResult(results)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("not verified", func(t *testing.T) {
		client := mocks.NewProverClienter(t)
		client.EXPECT().VerifyLogEntry(ctx, "prover.near", mock.Anything).Return(false, nil).Once()

		ok, err := prover.VerificationResult(collect(prover.RequestVerification(ctx, client, "prover.near", proof, false)))
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("prover call fails", func(t *testing.T) {
		client := mocks.NewProverClienter(t)
		client.EXPECT().VerifyLogEntry(ctx, "prover.near", mock.Anything).Return(false, errors.New("foo")).Once()

		results := collect(prover.RequestVerification(ctx, client, "prover.near", proof, false))
		require.Len(t, results, 1)
		_, err := prover.VerificationResult(results)
		require.ErrorIs(t, err, prover.ErrVerifierCallFailed)
	})

	t.Run("request isn't affected by later mutations", func(t *testing.T) {
		client := mocks.NewProverClienter(t)
		expected := prover.NewVerifyLogEntryArgs(proof, true)
		mutable := proof.Copy()
		client.EXPECT().VerifyLogEntry(ctx, "prover.near", expected).Return(true, nil).Once()

		results := prover.RequestVerification(ctx, client, "prover.near", mutable, true)
		mutable.HeaderData[0] = 0xff
		require.Len(t, collect(results), 1)
	})
}

func TestVerificationResultShape(t *testing.T) {
	tests := []struct {
		name        string
		results     []types.PromiseResult
		expected    bool
		expectedErr error
	}{
		{name: "no results", results: nil, expectedErr: prover.ErrUnexpectedCallbackShape},
		{
			name:        "two results",
			results:     []types.PromiseResult{types.NewSuccessfulResult(true), types.NewSuccessfulResult(true)},
			expectedErr: prover.ErrUnexpectedCallbackShape,
		},
		{
			name:        "failed",
			results:     []types.PromiseResult{types.NewFailedResult()},
			expectedErr: prover.ErrVerifierCallFailed,
		},
		{
			name:        "not a boolean",
			results:     []types.PromiseResult{types.NewSuccessfulResult("true")},
			expectedErr: prover.ErrUnexpectedCallbackShape,
		},
		{
			name:        "null",
			results:     []types.PromiseResult{{Status: types.PromiseSuccessful, Value: json.RawMessage(`null`)}},
			expectedErr: prover.ErrUnexpectedCallbackShape,
		},
		{name: "true", results: []types.PromiseResult{types.NewSuccessfulResult(true)}, expected: true},
		{name: "false", results: []types.PromiseResult{types.NewSuccessfulResult(false)}, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ok, err := prover.VerificationResult(tt.results)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, ok)
		})
	}
}
