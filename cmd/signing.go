package cmd

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/keep-network/stark-signer/internal/config"
	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

// SigningCommand contains the definition of the `signing` command-line
// subcommand and its own subcommands.
var SigningCommand cli.Command

const publicKeyDescription = "Prints the public key of the configured private " +
	"key. The private key is read from the " + config.PrivateKeyEnvVariable +
	" environment variable or from a key file configured in a config file."

const signDescription = "Calculates a STARK curve ECDSA signature over a given " +
	"hash with the configured private key. The hash is expected to be a " +
	"hexadecimal field element lower than 2^251. With the `message` flag a " +
	"string message is hashed with Starknet Keccak instead. The signature is " +
	"printed as three lines: r, s and the recovery ID."

const verifyDescription = "Verifies if a signature was calculated over a hash " +
	"with the private key matching the given public key. All values are " +
	"expected as hexadecimal field elements."

const outputFileFlag = "output-file,o"

func init() {
	SigningCommand = cli.Command{
		Name:  "signing",
		Usage: "Provides tools for STARK curve signatures",
		Subcommands: []cli.Command{
			{
				Name:        "generate-key",
				Usage:       "Generates a new private key",
				Description: generateKeyDescription,
				Action:      GenerateKey,
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  outputFileFlag,
						Usage: "Output file for the generated private key",
					},
				},
			},
			{
				Name:        "public-key",
				Usage:       "Prints the public key of the configured private key",
				Description: publicKeyDescription,
				Action:      PublicKey,
			},
			{
				Name:        "sign",
				Usage:       "Signs a hash with the configured private key",
				Description: signDescription,
				Action:      Sign,
				ArgsUsage:   "[hash]",
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "message,m",
						Usage: "Message to hash with Starknet Keccak and sign",
					},
					cli.StringFlag{
						Name:  outputFileFlag,
						Usage: "Output file for the signature",
					},
				},
			},
			{
				Name:        "verify",
				Usage:       "Verifies a signature",
				Description: verifyDescription,
				Action:      Verify,
				ArgsUsage:   "[public-key] [hash] [r] [s]",
			},
		},
	}
}

// PublicKey prints the public key of the private key from the configuration.
func PublicKey(c *cli.Context) error {
	wallet, err := loadLocalWallet(c)
	if err != nil {
		return err
	}

	publicKey, err := wallet.PublicKey(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get public key: [%v]", err)
	}

	return outputData(c, []byte(publicKey.String()+"\n"))
}

// Verify checks a signature against a public key and a hash given as CLI
// arguments.
func Verify(c *cli.Context) error {
	if c.NArg() != 4 {
		return fmt.Errorf(
			"invalid number of arguments; expected 4, got [%d]",
			c.NArg(),
		)
	}

	parsed := make([]*ecdsa.Felt, 4)
	names := []string{"public key", "hash", "r", "s"}
	for i, name := range names {
		felt, err := ecdsa.FeltFromHex(c.Args().Get(i))
		if err != nil {
			return fmt.Errorf("could not parse %s: [%v]", name, err)
		}
		parsed[i] = felt
	}

	publicKey := ecdsa.NewVerifyingKey(parsed[0])
	signature := &ecdsa.Signature{R: *parsed[2], S: *parsed[3]}

	valid, err := publicKey.Verify(parsed[1], signature)
	if err != nil {
		return fmt.Errorf("failed to verify signature: [%v]", err)
	}

	if !valid {
		return fmt.Errorf("invalid signature")
	}

	logger.Infof("signature is valid")

	return outputData(c, []byte("valid\n"))
}

func outputData(c *cli.Context, data []byte) error {
	if outputFilePath := c.String("output-file"); len(outputFilePath) > 0 {
		if _, err := os.Stat(outputFilePath); !os.IsNotExist(err) {
			return fmt.Errorf(
				"could not write output to a file; file [%s] already exists",
				outputFilePath,
			)
		}

		err := ioutil.WriteFile(outputFilePath, data, 0400) // owner read-only
		if err != nil {
			return fmt.Errorf(
				"failed to write output to a file [%s]: [%v]",
				outputFilePath,
				err,
			)
		}

		fmt.Printf("output stored to a file: %s\n", outputFilePath)
	} else {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf(
				"could not write bytes to stdout: [%v]",
				err,
			)
		}
	}

	return nil
}
