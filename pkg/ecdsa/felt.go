package ecdsa

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/keep-network/stark-signer/pkg/utils/byteutils"
)

// Felt is an element of the STARK prime field. It is used for message hashes,
// keys and signature components.
type Felt = fp.Element

// FeltFromHex parses a hexadecimal string, with or without `0x` prefix, into
// a Felt. Values not lower than the field modulus are rejected instead of
// being reduced.
func FeltFromHex(hexString string) (*Felt, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(hexString, "0x"), "0X")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty hex string")
	}

	value, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex string: [%s]", hexString)
	}

	return FeltFromBigInt(value)
}

// FeltFromBigInt converts an integer into a Felt. The integer must be in
// range `[0, p)`.
func FeltFromBigInt(value *big.Int) (*Felt, error) {
	if value.Sign() < 0 || value.Cmp(fp.Modulus()) >= 0 {
		return nil, fmt.Errorf(
			"value [0x%s] is out of the field range",
			value.Text(16),
		)
	}

	return new(Felt).SetBigInt(value), nil
}

// FeltFromBytes converts a big-endian byte slice of at most 32 bytes into a
// Felt. The value must be lower than the field modulus.
func FeltFromBytes(bytes []byte) (*Felt, error) {
	if len(bytes) > fp.Bytes {
		return nil, fmt.Errorf(
			"felt cannot be longer than [%d] bytes; has [%d]",
			fp.Bytes,
			len(bytes),
		)
	}

	return FeltFromBigInt(new(big.Int).SetBytes(bytes))
}

// FeltToHex returns the `0x` prefixed hexadecimal representation of the Felt
// without leading zeros.
func FeltToHex(felt *Felt) string {
	return "0x" + feltToBig(felt).Text(16)
}

// FeltToBytes returns the 32-byte big-endian representation of the Felt.
func FeltToBytes(felt *Felt) []byte {
	// Felt values are always lower than 2^252, so padding never fails.
	padded, _ := byteutils.LeftPadTo32Bytes(feltToBig(felt).Bytes())
	return padded
}

// StarknetKeccak computes the Starknet variant of Keccak-256, which is the
// Keccak-256 digest truncated to its 250 least significant bits. The result
// always fits into a Felt and is lower than 2^251, so it can be signed
// directly.
func StarknetKeccak(data []byte) *Felt {
	digest := crypto.Keccak256(data)
	digest[0] &= 0x03

	return new(Felt).SetBigInt(new(big.Int).SetBytes(digest))
}

func feltToBig(felt *Felt) *big.Int {
	return felt.BigInt(new(big.Int))
}
