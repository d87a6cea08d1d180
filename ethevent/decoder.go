package ethevent

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

const wordSize = 32

// LogEntry is the RLP layout of a receipt log: [address, [topics...], data]
type LogEntry struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// EncodeLogEntry returns the RLP encoding of the log entry
func EncodeLogEntry(entry LogEntry) ([]byte, error) {
	return rlp.EncodeToBytes(&entry)
}

// Decode parses RLP encoded log entry bytes and binds them to the given event spec.
// Indexed fields are read from topics[1:] in declaration order, the rest of fields
// are ABI decoded from the data payload
func Decode(spec EventSpec, logEntryData []byte) (*Event, error) {
	abiEvent, err := spec.abiEvent()
	if err != nil {
		return nil, err
	}

	var entry LogEntry
	if err := rlp.DecodeBytes(logEntryData, &entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLogEncoding, err)
	}

	indexed := indexedArguments(abiEvent.Inputs)
	if len(entry.Topics) != len(indexed)+1 {
		return nil, fmt.Errorf("%w: event %s expects %d topics, got %d",
			ErrEventShapeMismatch, spec.Name, len(indexed)+1, len(entry.Topics))
	}
	if entry.Topics[0] != abiEvent.ID {
		return nil, fmt.Errorf("%w: topic %s isn't the signature of %s",
			ErrEventShapeMismatch, entry.Topics[0].Hex(), abiEvent.Sig)
	}
	if err := checkIndexedPadding(indexed, entry.Topics[1:]); err != nil {
		return nil, err
	}

	values := make(map[string]interface{}, len(abiEvent.Inputs))
	if err := abi.ParseTopicsIntoMap(values, indexed, entry.Topics[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventShapeMismatch, err)
	}

	nonIndexed := abiEvent.Inputs.NonIndexed()
	if len(entry.Data)%wordSize != 0 {
		return nil, fmt.Errorf("%w: data length %d isn't a multiple of %d",
			ErrEventShapeMismatch, len(entry.Data), wordSize)
	}
	if len(nonIndexed) > 0 {
		if err := nonIndexed.UnpackIntoMap(values, entry.Data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEventShapeMismatch, err)
		}
		if err := checkDataLength(nonIndexed, values, entry.Data); err != nil {
			return nil, err
		}
	} else if len(entry.Data) != 0 {
		return nil, fmt.Errorf("%w: event %s has no data fields but got %d bytes",
			ErrEventShapeMismatch, spec.Name, len(entry.Data))
	}

	return &Event{
		Name:    spec.Name,
		Address: entry.Address,
		values:  values,
	}, nil
}

func indexedArguments(args abi.Arguments) abi.Arguments {
	indexed := make(abi.Arguments, 0, len(args))
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}

// checkDataLength rejects data carrying words past the encoding of the decoded values
func checkDataLength(nonIndexed abi.Arguments, values map[string]interface{}, data []byte) error {
	decoded := make([]interface{}, 0, len(nonIndexed))
	for _, arg := range nonIndexed {
		decoded = append(decoded, values[arg.Name])
	}
	packed, err := nonIndexed.Pack(decoded...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEventShapeMismatch, err)
	}
	if len(data) != len(packed) {
		return fmt.Errorf("%w: data length %d, the fields encode to %d",
			ErrEventShapeMismatch, len(data), len(packed))
	}
	return nil
}

// checkIndexedPadding rejects topics whose unused high bytes are set for the
// static types that are left padded on the word
func checkIndexedPadding(indexed abi.Arguments, topics []common.Hash) error {
	for i, arg := range indexed {
		var used int
		switch arg.Type.T {
		case abi.AddressTy:
			used = common.AddressLength
		case abi.BoolTy:
			used = 1
		case abi.UintTy:
			used = arg.Type.Size / bitsPerByte
		default:
			continue
		}
		for _, b := range topics[i][:wordSize-used] {
			if b != 0 {
				return fmt.Errorf("%w: topic for %s has non zero padding", ErrEventShapeMismatch, arg.Name)
			}
		}
	}
	return nil
}
