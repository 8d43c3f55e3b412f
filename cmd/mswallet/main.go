package main

import (
	"fmt"
	"os"

	"github.com/iov-one/mswallet"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "mswallet",
		Usage: "multisig wallet tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level: debug, info, error or none",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "genesis",
				Usage:     "load a genesis file and print the declared contracts and wallets",
				ArgsUsage: "<genesis.json>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("genesis file path required", 2)
					}
					logger, err := newLogger(c.String("log-level"))
					if err != nil {
						return err
					}
					return inspectGenesis(c.App.Writer, logger, c.Args().First())
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, mswallet.Version())
					return nil
				},
			},
		},
	}
}

func newLogger(level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr)).With("module", "mswallet")
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, opt), nil
}
