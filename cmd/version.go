package main

import (
	"os"

	ethconnector "github.com/0xPolygon/eth-connector"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	ethconnector.PrintVersion(os.Stdout)
	return nil
}
