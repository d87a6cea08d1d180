package ethevent

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event is a decoded log entry: the emitting contract and the named field values
type Event struct {
	Name    string
	Address common.Address
	values  map[string]interface{}
}

// Has reports whether the event carries a value for the field
func (e *Event) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

func (e *Event) value(name string) (interface{}, error) {
	v, ok := e.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, e.Name, name)
	}
	return v, nil
}

func (e *Event) typeErr(name string, v interface{}, expected string) error {
	return fmt.Errorf("%w: field %s.%s is %T, expected %s", ErrEventShapeMismatch, e.Name, name, v, expected)
}

// AddressArg returns the value of an address field
func (e *Event) AddressArg(name string) (common.Address, error) {
	v, err := e.value(name)
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := v.(common.Address)
	if !ok {
		return common.Address{}, e.typeErr(name, v, "address")
	}
	return addr, nil
}

// UintArg returns the value of an unsigned integer field of any width
func (e *Event) UintArg(name string) (*big.Int, error) {
	v, err := e.value(name)
	if err != nil {
		return nil, err
	}
	switch n := v.(type) {
	case *big.Int:
		return new(big.Int).Set(n), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	default:
		return nil, e.typeErr(name, v, "uint")
	}
}

// UintArgBits returns the value of an unsigned integer field, failing if it
// needs more than bits to be represented
func (e *Event) UintArgBits(name string, bits int) (*big.Int, error) {
	n, err := e.UintArg(name)
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 || n.BitLen() > bits {
		return nil, fmt.Errorf("%w: field %s.%s doesn't fit in %d bits", ErrValueOverflow, e.Name, name, bits)
	}
	return n, nil
}

// StringArg returns the value of a non indexed string field
func (e *Event) StringArg(name string) (string, error) {
	v, err := e.value(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", e.typeErr(name, v, "string")
	}
	return s, nil
}

// BoolArg returns the value of a bool field
func (e *Event) BoolArg(name string) (bool, error) {
	v, err := e.value(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, e.typeErr(name, v, "bool")
	}
	return b, nil
}

// BytesArg returns the value of a dynamic bytes field
func (e *Event) BytesArg(name string) ([]byte, error) {
	v, err := e.value(name)
	if err != nil {
		return nil, err
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, e.typeErr(name, v, "bytes")
	}
	return b, nil
}

// HashArg returns the value of a bytes32 field, or the topic hash of an
// indexed dynamic field
func (e *Event) HashArg(name string) (common.Hash, error) {
	v, err := e.value(name)
	if err != nil {
		return common.Hash{}, err
	}
	switch h := v.(type) {
	case common.Hash:
		return h, nil
	case [32]byte:
		return common.Hash(h), nil
	default:
		return common.Hash{}, e.typeErr(name, v, "bytes32")
	}
}
