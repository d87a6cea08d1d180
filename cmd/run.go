package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	ethconnector "github.com/0xPolygon/eth-connector"
	cdkcommon "github.com/0xPolygon/eth-connector/common"
	"github.com/0xPolygon/eth-connector/config"
	"github.com/0xPolygon/eth-connector/connector"
	connectorDB "github.com/0xPolygon/eth-connector/connector/db"
	"github.com/0xPolygon/eth-connector/ledger"
	"github.com/0xPolygon/eth-connector/log"
	"github.com/0xPolygon/eth-connector/prover"
	"github.com/0xPolygon/eth-connector/rpc"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const dataDirPermissions = 0o750

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		ethconnector.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	conn, storage, err := newConnector(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Errorf("error closing the connector storage: %v", err)
		}
	}()

	if _, err := conn.GetConfig(); err != nil {
		log.Warnf("connector %s isn't initialized yet, proofs will be rejected: %v", conn.AccountID(), err)
	}

	server := createRPC(c.RPC, conn)

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		conn.Start(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("terminating application gracefully...")
		return server.Stop()
	})

	return g.Wait()
}

func newConnector(c *config.Config) (*connector.Connector, *connectorDB.ConnectorSQLStorage, error) {
	logger := log.WithFields("module", cdkcommon.CONNECTOR)

	if err := os.MkdirAll(filepath.Dir(c.Connector.StoragePath), dataDirPermissions); err != nil {
		return nil, nil, fmt.Errorf("error creating the data dir of %s: %w", c.Connector.StoragePath, err)
	}
	storage, err := connectorDB.NewConnectorSQLStorage(logger, c.Connector.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating the connector storage: %w", err)
	}

	conn, err := connector.New(
		logger,
		c.Connector,
		c.Common.AccountID,
		storage,
		prover.NewClient(c.Connector.ProverURL),
		ledger.NewClient(c.Connector.LedgerURL),
	)
	if err != nil {
		if closeErr := storage.Close(); closeErr != nil {
			log.Errorf("error closing the connector storage: %v", closeErr)
		}
		return nil, nil, err
	}

	return conn, storage, nil
}

func createRPC(cfg jRPC.Config, conn *connector.Connector) *jRPC.Server {
	logger := log.WithFields("module", cdkcommon.RPC)
	services := []jRPC.Service{
		{
			Name: rpc.CONNECTOR,
			Service: rpc.NewConnectorEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				conn,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", ethconnector.GitRev,
		"gitBranch", ethconnector.GitBranch,
		"goVersion", runtime.Version(),
		"built", ethconnector.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
