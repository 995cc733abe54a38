package cmd

import (
	"fmt"

	"github.com/ipfs/go-log"
	"github.com/urfave/cli"

	"github.com/keep-network/stark-signer/internal/config"
	"github.com/keep-network/stark-signer/pkg/ecdsa"
	"github.com/keep-network/stark-signer/pkg/sign"
)

var logger = log.Logger("stark-cmd")

// loadLocalWallet reads the config file pointed by the global `config` flag
// and creates a LocalWallet from the private key it resolves to.
func loadLocalWallet(c *cli.Context) (*sign.LocalWallet, error) {
	cfg, err := config.ReadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, fmt.Errorf("failed while reading config file: [%v]", err)
	}

	if !c.GlobalIsSet("log-level") {
		if err := log.SetLogLevel("*", cfg.Logging.GetLogLevel()); err != nil {
			return nil, fmt.Errorf("invalid log level in config: [%v]", err)
		}
	}

	return walletFromHex(cfg.Key.PrivateKey)
}

func walletFromHex(privateKeyHex string) (*sign.LocalWallet, error) {
	if len(privateKeyHex) == 0 {
		return nil, fmt.Errorf(
			"private key not configured; set a key file in the config file "+
				"or the %s environment variable",
			config.PrivateKeyEnvVariable,
		)
	}

	secret, err := ecdsa.FeltFromHex(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key: [%v]", err)
	}

	wallet := sign.NewLocalWallet(ecdsa.NewSigningKey(secret))

	logger.Debugf("loaded wallet with public key [%s]", wallet.VerifyingKey())

	return wallet, nil
}
