package ecdsa

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

func TestFeltFromHex(t *testing.T) {
	modulusHex := "0x" + fp.Modulus().Text(16)

	var tests = map[string]struct {
		input         string
		expectedHex   string
		expectedError bool
	}{
		"prefixed": {
			input:       "0x499602d2",
			expectedHex: "0x499602d2",
		},
		"unprefixed": {
			input:       "499602d2",
			expectedHex: "0x499602d2",
		},
		"leading zeros": {
			input:       "0x000000ff",
			expectedHex: "0xff",
		},
		"zero": {
			input:       "0x0",
			expectedHex: "0x0",
		},
		"modulus": {
			input:         modulusHex,
			expectedError: true,
		},
		"not hex": {
			input:         "0xzz",
			expectedError: true,
		},
		"empty": {
			input:         "0x",
			expectedError: true,
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			felt, err := FeltFromHex(test.input)
			if test.expectedError {
				if err == nil {
					t.Fatalf("expected error, got felt [%s]", FeltToHex(felt))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if FeltToHex(felt) != test.expectedHex {
				t.Errorf(
					"unexpected felt\nexpected: [%s]\nactual:   [%s]",
					test.expectedHex,
					FeltToHex(felt),
				)
			}
		})
	}
}

func TestFeltBytesRoundtrip(t *testing.T) {
	felt := randomHash(t)

	feltBytes := FeltToBytes(felt)
	if len(feltBytes) != 32 {
		t.Fatalf("unexpected length [%d]", len(feltBytes))
	}

	unmarshaled, err := FeltFromBytes(feltBytes)
	if err != nil {
		t.Fatal(err)
	}

	if !unmarshaled.Equal(felt) {
		t.Errorf(
			"unexpected felt\nexpected: [%s]\nactual:   [%s]",
			FeltToHex(felt),
			FeltToHex(unmarshaled),
		)
	}
}

func TestFeltFromBytesTooLong(t *testing.T) {
	_, err := FeltFromBytes(bytes.Repeat([]byte{0x01}, 33))
	if err == nil {
		t.Fatal("expected error for 33-byte input")
	}
}

func TestFeltFromBigIntNegative(t *testing.T) {
	_, err := FeltFromBigInt(big.NewInt(-1))
	if err == nil {
		t.Fatal("expected error for negative value")
	}
}

func TestStarknetKeccak(t *testing.T) {
	// Entry point selector of `transfer`.
	expected := "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e"

	actual := FeltToHex(StarknetKeccak([]byte("transfer")))
	if actual != expected {
		t.Errorf(
			"unexpected hash\nexpected: [%s]\nactual:   [%s]",
			expected,
			actual,
		)
	}
}

func TestStarknetKeccakIsSignable(t *testing.T) {
	hash := StarknetKeccak([]byte("any message"))

	if feltToBig(hash).Cmp(elementUpperBound) >= 0 {
		t.Errorf("hash [%s] is not lower than 2^251", FeltToHex(hash))
	}
}
