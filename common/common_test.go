package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestUint64ToBytes(t *testing.T) {
	t.Parallel()

	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}, Uint64ToBytes(0x0102))
	require.Equal(t, uint64(0x0102), BytesToUint64(Uint64ToBytes(0x0102)))
	require.Equal(t, []byte{0x02, 0x01, 0, 0, 0, 0, 0, 0}, Uint64ToLittleEndianBytes(0x0102))
	require.Equal(t, uint64(0x0102), LittleEndianBytesToUint64(Uint64ToLittleEndianBytes(0x0102)))
}

func TestDecodeEthAddress(t *testing.T) {
	t.Parallel()

	expected := common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")

	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:  "lower case without prefix",
			input: "5fbdb2315678afecb367f032d93f642f64180aa3",
		},
		{
			name:  "mixed case with prefix",
			input: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		},
		{
			name:        "too short",
			input:       "5fbdb2315678afecb367f032d93f642f64180a",
			expectedErr: ErrInvalidAddressFormat,
		},
		{
			name:        "too long",
			input:       "5fbdb2315678afecb367f032d93f642f64180aa3aa",
			expectedErr: ErrInvalidAddressFormat,
		},
		{
			name:        "non hex characters",
			input:       "5fbdb2315678afecb367f032d93f642f64180azz",
			expectedErr: ErrInvalidAddressFormat,
		},
		{
			name:        "empty",
			input:       "",
			expectedErr: ErrInvalidAddressFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			address, err := DecodeEthAddress(tt.input)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, expected, address)
		})
	}
}

func TestEncodeEthAddress(t *testing.T) {
	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	require.Equal(t, "5fbdb2315678afecb367f032d93f642f64180aa3", EncodeEthAddress(address))
	require.Equal(t, "0000000000000000000000000000000000000000", EncodeEthAddress(common.Address{}))

	decoded, err := DecodeEthAddress(EncodeEthAddress(address))
	require.NoError(t, err)
	require.Equal(t, address, decoded)
}
