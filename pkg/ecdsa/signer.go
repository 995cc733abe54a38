package ecdsa

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

// SigningKey holds a secret scalar used to calculate signatures.
type SigningKey struct {
	secret Felt
}

// VerifyingKey is a public key used to verify signatures. It is the `x`
// coordinate of `secret * G`.
type VerifyingKey struct {
	scalar Felt
}

// NewSigningKey creates a SigningKey holding a copy of the provided secret
// scalar.
func NewSigningKey(secret *Felt) *SigningKey {
	return &SigningKey{secret: *secret}
}

// GenerateKey generates a random SigningKey with a secret scalar in range
// `[1, n)`, where `n` is the order of the curve.
func GenerateKey(rand io.Reader) (*SigningKey, error) {
	// Read 64 bits more than needed to make the modulo bias negligible.
	randomBytes := make([]byte, fr.Bits/8+8)
	if _, err := io.ReadFull(rand, randomBytes); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: [%v]", err)
	}

	one := big.NewInt(1)
	orderMinusOne := new(big.Int).Sub(curveOrder, one)

	k := new(big.Int).SetBytes(randomBytes)
	k.Mod(k, orderMinusOne)
	k.Add(k, one)

	return &SigningKey{secret: *new(Felt).SetBigInt(k)}, nil
}

// Secret returns a copy of the secret scalar.
func (sk *SigningKey) Secret() *Felt {
	secret := sk.secret
	return &secret
}

// VerifyingKey derives the public key of the SigningKey. It is recomputed on
// every call.
func (sk *SigningKey) VerifyingKey() *VerifyingKey {
	publicPoint := scalarBaseMult(feltToBig(&sk.secret))
	return &VerifyingKey{scalar: publicPoint.X}
}

// NewVerifyingKey creates a VerifyingKey from the `x` coordinate of a public
// point. The coordinate is not validated here; a coordinate with no matching
// curve point fails at verification time.
func NewVerifyingKey(scalar *Felt) *VerifyingKey {
	return &VerifyingKey{scalar: *scalar}
}

// Scalar returns a copy of the public key `x` coordinate.
func (vk *VerifyingKey) Scalar() *Felt {
	scalar := vk.scalar
	return &scalar
}

// String returns the hexadecimal form of the public key.
func (vk *VerifyingKey) String() string {
	return FeltToHex(&vk.scalar)
}
