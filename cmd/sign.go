package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

// Sign signs a hash, or the Starknet Keccak of a message, with the private key
// from the configuration and prints the signature.
func Sign(c *cli.Context) error {
	hash, err := hashToSign(c)
	if err != nil {
		return err
	}

	wallet, err := loadLocalWallet(c)
	if err != nil {
		return err
	}

	signature, err := wallet.SignHash(context.Background(), hash)
	if err != nil {
		return fmt.Errorf("failed to calculate signature: [%v]", err)
	}

	logger.Infof(
		"calculated signature over hash [%s]: [%s]",
		ecdsa.FeltToHex(hash),
		signature,
	)

	return outputData(c, []byte(formatSignature(signature)))
}

func hashToSign(c *cli.Context) (*ecdsa.Felt, error) {
	if message := c.String("message"); len(message) > 0 {
		if c.NArg() > 0 {
			return nil, fmt.Errorf("both hash and message provided")
		}
		return ecdsa.StarknetKeccak([]byte(message)), nil
	}

	hashHex := c.Args().First()
	if len(hashHex) == 0 {
		return nil, fmt.Errorf("invalid hash")
	}

	hash, err := ecdsa.FeltFromHex(hashHex)
	if err != nil {
		return nil, fmt.Errorf("could not parse hash: [%v]", err)
	}

	return hash, nil
}

func formatSignature(signature *ecdsa.Signature) string {
	return fmt.Sprintf(
		"%s\n%s\n%d\n",
		ecdsa.FeltToHex(&signature.R),
		ecdsa.FeltToHex(&signature.S),
		signature.RecoveryID,
	)
}
