package connector

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/0xPolygon/eth-connector/common"
	"github.com/0xPolygon/eth-connector/connector/db"
	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/ledger"
	"github.com/0xPolygon/eth-connector/log"
	"github.com/0xPolygon/eth-connector/prover"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
)

var accountIDRegexp = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// Connector is the bridge endpoint: it takes proofs of source chain events, gets them
// verified by the prover and credits each of them at most once
type Connector struct {
	log       *log.Logger
	cfg       Config
	accountID string
	storage   db.ConnectorStorage
	prover    prover.ProverClienter
	ledger    ledger.Ledger

	// mu serializes the submission and finish phases, the verification round trip runs unlocked
	mu sync.Mutex
	// submissions holds the args of the proofs awaiting verification, by nonce
	submissions map[uint64]*FinishArgs
	nonce       uint64
}

// New returns a connector acting as accountID
func New(
	logger *log.Logger,
	cfg Config,
	accountID string,
	storage db.ConnectorStorage,
	proverClient prover.ProverClienter,
	ledgerClient ledger.Ledger,
) (*Connector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateAccountID(accountID); err != nil {
		return nil, fmt.Errorf("connector account: %w", err)
	}
	if cfg.SkipBridgeCall {
		logger.Warn("SkipBridgeCall is enabled, proofs won't be checked against the headers")
	}
	return &Connector{
		log:       logger,
		cfg:       cfg,
		accountID: accountID,
		storage:   storage,
		prover:    proverClient,
		ledger:    ledgerClient,

		submissions: make(map[uint64]*FinishArgs),
	}, nil
}

// AccountID returns the account the connector acts as
func (c *Connector) AccountID() string {
	return c.accountID
}

// Init sets the prover account and the trusted custodian address given as hex text.
// It can only be done once
func (c *Connector) Init(ctx context.Context, proverAccount, custodianAddress string) error {
	if err := ValidateAccountID(proverAccount); err != nil {
		return fmt.Errorf("prover account: %w", err)
	}
	custodian, err := common.DecodeEthAddress(custodianAddress)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.storage.InitConnectorConfig(ctx, types.ConnectorConfig{
		ProverAccount:    proverAccount,
		CustodianAddress: custodian,
	})
}

// GetConfig returns the configuration set on init
func (c *Connector) GetConfig() (*types.ConnectorConfig, error) {
	return c.storage.GetConnectorConfig()
}

// IsUsedProof returns true if the proof was already used to credit
func (c *Connector) IsUsedProof(proof *types.Proof) (bool, error) {
	if proof == nil {
		return false, fmt.Errorf("%w: nil proof", ErrInvalidFinishArgs)
	}
	return c.storage.IsUsedProof(proof.Fingerprint())
}

// GetUsedProof returns the record of a used proof
func (c *Connector) GetUsedProof(fingerprint ethCommon.Hash) (*types.UsedProof, error) {
	record, err := c.storage.GetUsedProof(fingerprint)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProof, fingerprint.Hex())
	}
	return record, err
}

// PendingCredits returns the recorded proofs whose credit failed
func (c *Connector) PendingCredits() ([]*types.UsedProof, error) {
	return c.storage.GetUsedProofsByStatus([]types.ProofStatus{types.StatusCreditFailed})
}

// BridgeTokenAccountID returns the account of the bridged token of an ETH token address
func (c *Connector) BridgeTokenAccountID(address string) (string, error) {
	token, err := common.DecodeEthAddress(strings.ToLower(address))
	if err != nil {
		return "", err
	}
	return c.bridgeTokenAccountID(token), nil
}

func (c *Connector) bridgeTokenAccountID(token ethCommon.Address) string {
	return fmt.Sprintf("%s.%s", common.EncodeEthAddress(token), c.accountID)
}

func (c *Connector) assertSelf(call types.CallInfo) error {
	if call.Predecessor != c.accountID {
		return fmt.Errorf("%w: predecessor %q", ErrUnauthorizedCallback, call.Predecessor)
	}
	return nil
}

func (c *Connector) selfCall(attachedDeposit *uint256.Int) types.CallInfo {
	return types.CallInfo{
		Predecessor:     c.accountID,
		AttachedDeposit: attachedDeposit,
	}
}

// ValidateAccountID checks the account id follows the host chain naming rules
func ValidateAccountID(accountID string) error {
	if len(accountID) < minAccountIDLen || len(accountID) > maxAccountIDLen ||
		!accountIDRegexp.MatchString(accountID) {
		return fmt.Errorf("%w: %q", ErrInvalidAccountID, accountID)
	}
	return nil
}
