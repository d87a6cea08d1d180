package main

import (
	"os"

	ethconnector "github.com/0xPolygon/eth-connector"
	"github.com/0xPolygon/eth-connector/config"
	"github.com/0xPolygon/eth-connector/log"
	"github.com/urfave/cli/v2"
)

const appName = "eth-connector"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	optionalConfigFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s), when set the effective configuration is printed",
		Required: false,
	}
	yesFlag = cli.BoolFlag{
		Name:     config.FlagYes,
		Aliases:  []string{"y"},
		Usage:    "Automatically accepts any confirmation to execute the command",
		Required: false,
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: eth_connector_config.toml)",
		Required: false,
	}
	proverAccountFlag = cli.StringFlag{
		Name:     config.FlagProverAccount,
		Usage:    "Account of the prover that verifies the proofs",
		Required: true,
	}
	custodianAddressFlag = cli.StringFlag{
		Name:     config.FlagCustodianAddress,
		Usage:    "Hex address of the custodian contract on the source chain",
		Required: true,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = ethconnector.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Prints the default configuration, or the effective one if config files are given",
			Action:  configCmd,
			Flags:   []cli.Flag{&optionalConfigFileFlag},
		},
		{
			Name:    "init",
			Aliases: []string{},
			Usage:   "Sets the prover account and the custodian address, it can only be done once",
			Action:  initCmd,
			Flags:   []cli.Flag{&configFileFlag, &yesFlag, &proverAccountFlag, &custodianAddressFlag},
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the eth-connector node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &saveConfigFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
