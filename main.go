package main

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/ipfs/go-log"
	"github.com/urfave/cli"

	"github.com/keep-network/stark-signer/cmd"
)

const defaultConfigPath = "./configs/config.toml"

var (
	configPath string
	logLevel   string
)

func main() {
	app := cli.NewApp()
	app.Name = path.Base(os.Args[0])
	app.Usage = "CLI for STARK curve signing with an in-memory key"
	app.Compiled = time.Now()
	app.Authors = []cli.Author{
		{
			Name:  "Keep Network",
			Email: "info@keep.network",
		},
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config,c",
			Value:       defaultConfigPath,
			Destination: &configPath,
			Usage:       "full path to the configuration file",
		},
		cli.StringFlag{
			Name:        "log-level",
			Value:       "info",
			Destination: &logLevel,
			Usage:       "log level, overrides the level from the configuration file",
		},
	}
	app.Before = func(c *cli.Context) error {
		return log.SetLogLevel("*", logLevel)
	}
	app.Commands = []cli.Command{
		cmd.SigningCommand,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
