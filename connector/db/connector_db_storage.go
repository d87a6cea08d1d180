package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/0xPolygon/eth-connector/connector/db/migrations"
	"github.com/0xPolygon/eth-connector/connector/types"
	"github.com/0xPolygon/eth-connector/db"
	"github.com/0xPolygon/eth-connector/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const (
	connectorConfigTable = "connector_config"
	usedProofTable       = "used_proof"

	connectorConfigID = 1

	// recordOverheadBytes is the fixed cost charged per used proof on top of its columns
	recordOverheadBytes = 40
)

var (
	// ErrProofAlreadyUsed is returned when recording a fingerprint that is already in the replay set
	ErrProofAlreadyUsed = errors.New("event cannot be reused for depositing, proof already exists")
	// ErrAlreadyInitialized is returned when initializing an already initialized connector
	ErrAlreadyInitialized = errors.New("connector already initialized")
	// ErrNotInitialized is returned when reading the configuration of a connector not initialized yet
	ErrNotInitialized = errors.New("connector should be initialized before usage")
	// ErrNotFound is returned when the fingerprint isn't in the replay set
	ErrNotFound = db.ErrNotFound
)

// ConnectorStorage is the interface that defines the methods to interact with the storage
type ConnectorStorage interface {
	// GetConnectorConfig returns the configuration set on init
	GetConnectorConfig() (*types.ConnectorConfig, error)
	// InitConnectorConfig stores the configuration, it can only be done once
	InitConnectorConfig(ctx context.Context, cfg types.ConnectorConfig) error
	// RecordProof adds the proof to the replay set and charges the storage it used
	RecordProof(ctx context.Context, record *types.UsedProof, charge func(storageDelta uint64) error) error
	// IsUsedProof returns true if the fingerprint is in the replay set
	IsUsedProof(fingerprint common.Hash) (bool, error)
	// GetUsedProof returns the replay set entry of the fingerprint
	GetUsedProof(fingerprint common.Hash) (*types.UsedProof, error)
	// GetUsedProofsByStatus returns the replay set entries on any of the given statuses
	GetUsedProofsByStatus(statuses []types.ProofStatus) ([]*types.UsedProof, error)
	// UpdateCreditStatus updates the credit status of a recorded proof
	UpdateCreditStatus(ctx context.Context, fingerprint common.Hash, status types.ProofStatus) error
}

var _ ConnectorStorage = (*ConnectorSQLStorage)(nil)

// ConnectorSQLStorage is the sqlite implementation of ConnectorStorage
type ConnectorSQLStorage struct {
	logger *log.Logger
	db     *sql.DB
}

// NewConnectorSQLStorage creates a new ConnectorSQLStorage
func NewConnectorSQLStorage(logger *log.Logger, dbPath string) (*ConnectorSQLStorage, error) {
	database, err := db.NewSQLiteDB(dbPath)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(logger, database); err != nil {
		return nil, err
	}

	return &ConnectorSQLStorage{
		db:     database,
		logger: logger,
	}, nil
}

// Close closes the underlying database
func (s *ConnectorSQLStorage) Close() error {
	return s.db.Close()
}

// GetConnectorConfig returns the configuration set on init
func (s *ConnectorSQLStorage) GetConnectorConfig() (*types.ConnectorConfig, error) {
	return getConnectorConfig(s.db)
}

func getConnectorConfig(querier meddler.DB) (*types.ConnectorConfig, error) {
	cfg := &types.ConnectorConfig{}
	if err := meddler.QueryRow(querier, cfg,
		"SELECT * FROM connector_config WHERE id = $1;", connectorConfigID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}

	return cfg, nil
}

// InitConnectorConfig stores the configuration, it can only be done once
func (s *ConnectorSQLStorage) InitConnectorConfig(ctx context.Context, cfg types.ConnectorConfig) error {
	cfg.ID = connectorConfigID
	if cfg.InitializedAt == 0 {
		cfg.InitializedAt = time.Now().UTC().Unix()
	}

	err := db.WithTx(ctx, s.db, func(tx *db.Tx) error {
		_, err := getConnectorConfig(tx)
		if err == nil {
			return ErrAlreadyInitialized
		}
		if !errors.Is(err, ErrNotInitialized) {
			return err
		}

		if err := meddler.Insert(tx, connectorConfigTable, &cfg); err != nil {
			if db.IsUniqueViolation(err) {
				return ErrAlreadyInitialized
			}
			return fmt.Errorf("error inserting connector config: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Infof("connector initialized - ProverAccount: %s. CustodianAddress: %s",
		cfg.ProverAccount, cfg.CustodianAddress.Hex())

	return nil
}

// RecordProof inserts the proof on the replay set. The storage used by the new row is
// measured within the same transaction and passed to charge.
// If charge fails the insert is rolled back and its error returned
func (s *ConnectorSQLStorage) RecordProof(ctx context.Context, record *types.UsedProof,
	charge func(storageDelta uint64) error) error {
	now := time.Now().UTC().Unix()
	if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = record.CreatedAt

	err := db.WithTx(ctx, s.db, func(tx *db.Tx) error {
		if err := meddler.Insert(tx, usedProofTable, record); err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrProofAlreadyUsed, record.Fingerprint.Hex())
			}
			return fmt.Errorf("error inserting used proof: %w", err)
		}

		if charge == nil {
			return nil
		}
		usage, err := recordStorageUsage(tx, record.Fingerprint)
		if err != nil {
			return err
		}
		return charge(usage)
	})
	if err != nil {
		return err
	}

	s.logger.Debugf("recorded proof - %s", record.String())

	return nil
}

// recordStorageUsage approximates the bytes used by a replay set entry as the text length
// of its columns plus a fixed per record overhead
func recordStorageUsage(querier db.Querier, fingerprint common.Hash) (uint64, error) {
	var usage uint64
	err := querier.QueryRow(`
		SELECT LENGTH(fingerprint) + LENGTH(kind) + LENGTH(log_index) + LENGTH(receipt_index) +
			LENGTH(token) + LENGTH(recipient) + LENGTH(amount) + LENGTH(status) +
			LENGTH(created_at) + LENGTH(updated_at) + $1
		FROM used_proof WHERE fingerprint = $2;`, recordOverheadBytes, fingerprint.Hex()).Scan(&usage)
	if err != nil {
		return 0, fmt.Errorf("error measuring storage usage: %w", err)
	}

	return usage, nil
}

// IsUsedProof returns true if the fingerprint is in the replay set
func (s *ConnectorSQLStorage) IsUsedProof(fingerprint common.Hash) (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM used_proof WHERE fingerprint = $1;`,
		fingerprint.Hex()).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetUsedProof returns the replay set entry of the fingerprint
func (s *ConnectorSQLStorage) GetUsedProof(fingerprint common.Hash) (*types.UsedProof, error) {
	usedProof := &types.UsedProof{}
	if err := meddler.QueryRow(s.db, usedProof,
		"SELECT * FROM used_proof WHERE fingerprint = $1;", fingerprint.Hex()); err != nil {
		return nil, db.ReturnErrNotFound(err)
	}

	return usedProof, nil
}

// GetUsedProofsByStatus returns the replay set entries on any of the given statuses, oldest first
func (s *ConnectorSQLStorage) GetUsedProofsByStatus(statuses []types.ProofStatus) ([]*types.UsedProof, error) {
	query := "SELECT * FROM used_proof"
	args := make([]interface{}, len(statuses))

	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i := range statuses {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args[i] = statuses[i]
		}

		query += " WHERE status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	query += " ORDER BY created_at ASC"

	var usedProofs []*types.UsedProof
	if err := meddler.QueryAll(s.db, &usedProofs, query, args...); err != nil {
		return nil, err
	}

	return usedProofs, nil
}

// UpdateCreditStatus updates the credit status of a recorded proof
func (s *ConnectorSQLStorage) UpdateCreditStatus(ctx context.Context, fingerprint common.Hash,
	status types.ProofStatus) error {
	err := db.WithTx(ctx, s.db, func(tx *db.Tx) error {
		res, err := tx.Exec(`UPDATE used_proof SET status = $1, updated_at = $2 WHERE fingerprint = $3;`,
			status, time.Now().UTC().Unix(), fingerprint.Hex())
		if err != nil {
			return fmt.Errorf("error updating used proof: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return db.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debugf("updated used proof status - Fingerprint: %s. Status: %s", fingerprint.Hex(), status)

	return nil
}
