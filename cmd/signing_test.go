package cmd

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/urfave/cli"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
	"github.com/keep-network/stark-signer/pkg/utils/testutils"
)

const testPrivateKey = "0x139fe4d6f02e666e86a6f58e65060f115cd3c185bd9e98bd829636931458f79"

func TestWalletFromHex(t *testing.T) {
	wallet, err := walletFromHex(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	secret, err := ecdsa.FeltFromHex(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	expected := ecdsa.NewSigningKey(secret).VerifyingKey()
	if wallet.VerifyingKey().String() != expected.String() {
		t.Errorf(
			"unexpected public key\nexpected: %s\nactual:   %s",
			expected,
			wallet.VerifyingKey(),
		)
	}
}

func TestWalletFromHex_ExpectedFailure(t *testing.T) {
	var failureTests = map[string]struct {
		privateKey    string
		expectedError string
	}{
		"empty key": {
			privateKey:    "",
			expectedError: "private key not configured",
		},
		"malformed key": {
			privateKey:    "0xnot-a-key",
			expectedError: "could not parse private key",
		},
	}

	for testName, test := range failureTests {
		t.Run(testName, func(t *testing.T) {
			_, err := walletFromHex(test.privateKey)
			if err == nil {
				t.Fatalf("expecting an error but found none")
			}
			if !strings.Contains(err.Error(), test.expectedError) {
				t.Errorf(
					"unexpected error\nexpected: %s\nactual:   %v",
					test.expectedError,
					err,
				)
			}
		})
	}
}

func TestHashToSign(t *testing.T) {
	var tests = map[string]struct {
		message       string
		args          []string
		expectedHash  string
		expectedError string
	}{
		"hash argument": {
			args:         []string{"0x499602d2"},
			expectedHash: "0x499602d2",
		},
		"message flag": {
			message:      "transfer",
			expectedHash: "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e",
		},
		"no input": {
			expectedError: "invalid hash",
		},
		"hash and message": {
			message:       "transfer",
			args:          []string{"0x1"},
			expectedError: "both hash and message provided",
		},
		"malformed hash": {
			args:          []string{"0xzz"},
			expectedError: "could not parse hash",
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			c := newTestContext(t, test.message, test.args)

			hash, err := hashToSign(c)
			if test.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), test.expectedError) {
					t.Fatalf(
						"unexpected error\nexpected: %s\nactual:   %v",
						test.expectedError,
						err,
					)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if ecdsa.FeltToHex(hash) != test.expectedHash {
				t.Errorf(
					"unexpected hash\nexpected: %s\nactual:   %s",
					test.expectedHash,
					ecdsa.FeltToHex(hash),
				)
			}
		})
	}
}

func TestFormatSignature(t *testing.T) {
	wallet, err := walletFromHex(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	hash := ecdsa.StarknetKeccak([]byte("message"))

	signature, err := wallet.SignHash(context.Background(), hash)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(formatSignature(signature), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected number of lines [%d]", len(lines))
	}

	r, err := ecdsa.FeltFromHex(lines[0])
	if err != nil {
		t.Fatal(err)
	}
	s, err := ecdsa.FeltFromHex(lines[1])
	if err != nil {
		t.Fatal(err)
	}

	parsed := &ecdsa.Signature{R: *r, S: *s, RecoveryID: signature.RecoveryID}

	testutils.VerifySignature(t, hash, parsed, wallet.VerifyingKey())
}

func newTestContext(t *testing.T, message string, args []string) *cli.Context {
	set := flag.NewFlagSet("sign", flag.ContinueOnError)
	set.String("message", "", "")

	flagArgs := []string{}
	if message != "" {
		flagArgs = append(flagArgs, "--message", message)
	}

	if err := set.Parse(append(flagArgs, args...)); err != nil {
		t.Fatal(err)
	}

	return cli.NewContext(nil, set, nil)
}
