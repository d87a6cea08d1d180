package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/0xPolygon/eth-connector/config"
	"github.com/0xPolygon/eth-connector/log"
	"github.com/urfave/cli/v2"
)

var errInitAborted = errors.New("init aborted")

func initCmd(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	proverAccount := cliCtx.String(config.FlagProverAccount)
	custodianAddress := cliCtx.String(config.FlagCustodianAddress)
	if !cliCtx.Bool(config.FlagYes) {
		fmt.Printf("Connector %s will trust prover %s and custodian %s, this can't be changed later. Continue? [y/N]: ",
			c.Common.AccountID, proverAccount, custodianAddress)
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return errInitAborted
		}
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

	if err := conn.Init(cliCtx.Context, proverAccount, custodianAddress); err != nil {
		return err
	}

	cfg, err := conn.GetConfig()
	if err != nil {
		return err
	}
	log.Infof("connector %s initialized. ProverAccount: %s. CustodianAddress: %s",
		conn.AccountID(), cfg.ProverAccount, cfg.CustodianAddress.Hex())

	return nil
}
