package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidAddressFormat is returned when a text can't be parsed into a 20 bytes address
	ErrInvalidAddressFormat = errors.New("ETH address should be a valid hex string of 20 bytes")
)

// DecodeEthAddress validates an Ethereum address given as hex text (the 0x prefix is optional)
// and returns its binary form
func DecodeEthAddress(text string) (common.Address, error) {
	if !common.IsHexAddress(text) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddressFormat, text)
	}
	return common.HexToAddress(text), nil
}

// EncodeEthAddress returns the lower case hex form of the address, without prefix
func EncodeEthAddress(address common.Address) string {
	return strings.ToLower(common.Bytes2Hex(address.Bytes()))
}
