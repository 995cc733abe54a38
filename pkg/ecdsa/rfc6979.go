package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/keep-network/stark-signer/pkg/utils/byteutils"
)

// generateK derives a nonce in range `[1, n)` from the hash and the secret
// following section 3.2 of RFC 6979 with HMAC-SHA256. A non-zero seed is
// appended to the HMAC input as additional data, with its leading zero bytes
// stripped.
//
// The hash is taken as an integer modulo `n` without the bit truncation of
// `bits2int`; hashes are at most 251 bits long so there is nothing to
// truncate.
func generateK(hash, secret, seed *big.Int) *big.Int {
	qlen := curveOrder.BitLen()
	rolen := (qlen + 7) / 8

	hashModOrder := new(big.Int).Mod(hash, curveOrder)

	input := append(int2octets(secret, rolen), int2octets(hashModOrder, rolen)...)
	if seed.Sign() > 0 {
		input = append(input, seed.Bytes()...)
	}

	// Step b and c.
	v := bytes.Repeat([]byte{0x01}, sha256.Size)
	k := make([]byte, sha256.Size)

	// Steps d to g.
	k = hmacSHA256(k, v, []byte{0x00}, input)
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, v, []byte{0x01}, input)
	v = hmacSHA256(k, v)

	// Step h.
	for {
		var t []byte
		for len(t) < rolen {
			v = hmacSHA256(k, v)
			t = append(t, v...)
		}

		candidate := bits2int(t[:rolen], qlen)
		if candidate.Sign() > 0 && candidate.Cmp(curveOrder) < 0 {
			return candidate
		}

		k = hmacSHA256(k, v, []byte{0x00})
		v = hmacSHA256(k, v)
	}
}

func hmacSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, chunk := range data {
		mac.Write(chunk)
	}
	return mac.Sum(nil)
}

// bits2int converts the leftmost qlen bits of the input into an integer.
func bits2int(input []byte, qlen int) *big.Int {
	value := new(big.Int).SetBytes(input)
	if excess := len(input)*8 - qlen; excess > 0 {
		value.Rsh(value, uint(excess))
	}
	return value
}

func int2octets(value *big.Int, rolen int) []byte {
	// Inputs are field elements so they always fit into rolen bytes.
	octets, _ := byteutils.LeftPadTo(value.Bytes(), rolen)
	return octets
}
