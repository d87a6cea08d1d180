package connector

import (
	"errors"

	"github.com/0xPolygon/eth-connector/config/types"
	"github.com/holiman/uint256"
)

// DefaultStoragePricePerByte is the price of one byte of storage, 1e20
var DefaultStoragePricePerByte = uint256.MustFromDecimal("100000000000000000000")

var (
	ErrSkipBridgeCallNotAllowed = errors.New("SkipBridgeCall can only be enabled on DevelopmentMode")
	ErrMissingStoragePath       = errors.New("StoragePath is mandatory")
)

// Config is the configuration of the connector
type Config struct {
	// StoragePath is the path of the sqlite file used to persist the replay set and the configuration
	StoragePath string `mapstructure:"StoragePath"`
	// ProverURL is the JSON-RPC endpoint of the prover
	ProverURL string `mapstructure:"ProverURL"`
	// LedgerURL is the JSON-RPC endpoint of the token ledger
	LedgerURL string `mapstructure:"LedgerURL"`
	// StoragePricePerByte is charged to the caller for each byte the replay set grows
	StoragePricePerByte uint256.Int `mapstructure:"StoragePricePerByte" jsonschema:"type=string"`
	// VerifyTimeout is the max time waiting for the prover answer, 0 means no limit
	VerifyTimeout types.Duration `mapstructure:"VerifyTimeout"`
	// RetryCreditInterval is how often the failed credits are retried, 0 disables the retries
	RetryCreditInterval types.Duration `mapstructure:"RetryCreditInterval"`
	// SkipBridgeCall asks the prover to skip the header check, development only
	SkipBridgeCall bool `mapstructure:"SkipBridgeCall"`
	// DevelopmentMode allows diagnostic settings such as SkipBridgeCall
	DevelopmentMode bool `mapstructure:"DevelopmentMode"`
	// LockEnabled enables the legacy lock path
	LockEnabled bool `mapstructure:"LockEnabled"`
	// UnlockEnabled enables the legacy unlock path
	UnlockEnabled bool `mapstructure:"UnlockEnabled"`
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	if c.StoragePath == "" {
		return ErrMissingStoragePath
	}
	if c.SkipBridgeCall && !c.DevelopmentMode {
		return ErrSkipBridgeCallNotAllowed
	}
	return nil
}

func (c Config) storagePrice() *uint256.Int {
	return new(uint256.Int).Set(&c.StoragePricePerByte)
}
