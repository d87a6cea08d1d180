package ethevent

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Kind is the closed set of primitive ABI kinds an event field can have
type Kind uint8

const (
	KindAddress Kind = iota + 1
	KindUint
	KindInt
	KindBool
	KindString
	KindBytes
	KindFixedBytes
)

const (
	maxIntBits       = 256
	maxFixedBytesLen = 32
	bitsPerByte      = 8
)

// FieldType is a primitive ABI type. Size is the bit size for integers and the
// length for fixed size byte arrays, it's ignored for the rest of kinds
type FieldType struct {
	Kind Kind
	Size int
}

func AddressType() FieldType { return FieldType{Kind: KindAddress} }

func UintType(bits int) FieldType { return FieldType{Kind: KindUint, Size: bits} }

func IntType(bits int) FieldType { return FieldType{Kind: KindInt, Size: bits} }

func BoolType() FieldType { return FieldType{Kind: KindBool} }

func StringType() FieldType { return FieldType{Kind: KindString} }

func BytesType() FieldType { return FieldType{Kind: KindBytes} }

func FixedBytesType(length int) FieldType { return FieldType{Kind: KindFixedBytes, Size: length} }

// String returns the canonical solidity name of the type, as used on event signatures
func (t FieldType) String() string {
	switch t.Kind {
	case KindAddress:
		return "address"
	case KindUint:
		return fmt.Sprintf("uint%d", t.Size)
	case KindInt:
		return fmt.Sprintf("int%d", t.Size)
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.Size)
	default:
		return fmt.Sprintf("unknown(%d)", t.Kind)
	}
}

func (t FieldType) validate() error {
	switch t.Kind {
	case KindAddress, KindBool, KindString, KindBytes:
		return nil
	case KindUint, KindInt:
		if t.Size <= 0 || t.Size > maxIntBits || t.Size%bitsPerByte != 0 {
			return fmt.Errorf("%w: invalid integer size %d", ErrInvalidEventSpec, t.Size)
		}
		return nil
	case KindFixedBytes:
		if t.Size <= 0 || t.Size > maxFixedBytesLen {
			return fmt.Errorf("%w: invalid fixed bytes length %d", ErrInvalidEventSpec, t.Size)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown field kind %d", ErrInvalidEventSpec, t.Kind)
	}
}

func (t FieldType) abiType() (abi.Type, error) {
	if err := t.validate(); err != nil {
		return abi.Type{}, err
	}
	typ, err := abi.NewType(t.String(), "", nil)
	if err != nil {
		return abi.Type{}, fmt.Errorf("%w: %v", ErrInvalidEventSpec, err)
	}
	return typ, nil
}

// Field describes one parameter of an event
type Field struct {
	Name    string
	Type    FieldType
	Indexed bool
}

// EventSpec is the expected ABI shape of an event: its name and its ordered fields
type EventSpec struct {
	Name   string
	Fields []Field
}

// Signature returns the canonical signature, e.g. Locked(address,address,uint256,string)
func (s EventSpec) Signature() string {
	event, err := s.abiEvent()
	if err != nil {
		return ""
	}
	return event.Sig
}

func (s EventSpec) abiEvent() (abi.Event, error) {
	if s.Name == "" {
		return abi.Event{}, fmt.Errorf("%w: empty event name", ErrInvalidEventSpec)
	}
	inputs := make(abi.Arguments, 0, len(s.Fields))
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return abi.Event{}, fmt.Errorf("%w: unnamed field on event %s", ErrInvalidEventSpec, s.Name)
		}
		if _, ok := seen[f.Name]; ok {
			return abi.Event{}, fmt.Errorf("%w: duplicated field %s on event %s", ErrInvalidEventSpec, f.Name, s.Name)
		}
		seen[f.Name] = struct{}{}
		typ, err := f.Type.abiType()
		if err != nil {
			return abi.Event{}, fmt.Errorf("field %s: %w", f.Name, err)
		}
		inputs = append(inputs, abi.Argument{
			Name:    f.Name,
			Type:    typ,
			Indexed: f.Indexed,
		})
	}
	return abi.NewEvent(s.Name, s.Name, false, inputs), nil
}
