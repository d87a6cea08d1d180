package main

import (
	"os"
	"strings"

	"github.com/0xPolygon/eth-connector/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	if len(cliCtx.StringSlice(config.FlagCfg)) > 0 {
		c, err := config.Load(cliCtx)
		if err != nil {
			return err
		}
		effective, err := config.SaveConfigToString(*c)
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(effective)
		return err
	}

	// String buffer to concatenate all the default config vars
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultMandatoryVars)
	defaultConfig.WriteString(config.DefaultVars)
	defaultConfig.WriteString(config.DefaultValues)

	_, err := os.Stdout.WriteString(defaultConfig.String())
	if err != nil {
		return err
	}

	return nil
}
