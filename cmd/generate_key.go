package cmd

import (
	crand "crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

const generateKeyDescription = "Generates a random private key and prints it " +
	"as a hexadecimal field element. The matching public key is logged. " +
	"The key is not encrypted; use the `output-file` flag to store it in a " +
	"file readable only by the owner."

// GenerateKey generates a new private key and prints it.
func GenerateKey(c *cli.Context) error {
	privateKey, err := ecdsa.GenerateKey(crand.Reader)
	if err != nil {
		return fmt.Errorf("failed to generate key: [%v]", err)
	}

	logger.Infof("generated key with public key [%s]", privateKey.VerifyingKey())

	return outputData(c, []byte(ecdsa.FeltToHex(privateKey.Secret())+"\n"))
}
