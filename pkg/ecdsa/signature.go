package ecdsa

import (
	"fmt"
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
)

// Signature holds a signature in a form of two field elements `r` and `s`
// and a recovery ID value in {0, 1}. The recovery ID is the parity of the `y`
// coordinate of the `k * G` point.
type Signature struct {
	R          Felt
	S          Felt
	RecoveryID int
}

// String returns the signature in `R: 0x.., S: 0x.., RecoveryID: v` form.
func (s *Signature) String() string {
	return fmt.Sprintf(
		"R: %s, S: %s, RecoveryID: %d",
		FeltToHex(&s.R),
		FeltToHex(&s.S),
		s.RecoveryID,
	)
}

// Sign calculates a signature over the provided hash with the SigningKey.
// The hash must be lower than 2^251, otherwise ErrMessageHashOutOfRange is
// returned.
//
// The nonce is derived from the secret and the hash as described in RFC 6979.
// When a nonce yields `r` or `s` out of range, a new nonce is derived with an
// incremented seed used as RFC 6979 additional data.
func (sk *SigningKey) Sign(hash *Felt) (*Signature, error) {
	z := feltToBig(hash)
	if z.Cmp(elementUpperBound) >= 0 {
		return nil, ErrMessageHashOutOfRange
	}

	secret := feltToBig(&sk.secret)

	seed := new(big.Int)
	for {
		k := generateK(z, secret, seed)

		if signature, ok := calculateSignature(secret, z, k); ok {
			return signature, nil
		}

		seed = new(big.Int).Add(seed, big.NewInt(1))
	}
}

// calculateSignature computes `r = (k * G).x` and `s = k^-1 * (z + r * d)`.
// It returns false if either value is out of range for the given nonce.
func calculateSignature(secret, z, k *big.Int) (*Signature, bool) {
	if k.Sign() == 0 {
		return nil, false
	}

	noncePoint := scalarBaseMult(k)

	r := feltToBig(&noncePoint.X)
	if !isInRange(r) {
		return nil, false
	}

	kInverse := new(big.Int).ModInverse(k, curveOrder)
	if kInverse == nil {
		return nil, false
	}

	s := new(big.Int).Mul(r, secret)
	s.Mod(s, curveOrder)
	s.Add(s, z)
	s.Mul(s, kInverse)
	s.Mod(s, curveOrder)
	if !isInRange(s) {
		return nil, false
	}

	return &Signature{
		R:          *new(Felt).SetBigInt(r),
		S:          *new(Felt).SetBigInt(s),
		RecoveryID: int(feltToBig(&noncePoint.Y).Bit(0)),
	}, true
}

// Verify checks whether the signature was calculated over the hash with the
// SigningKey matching this VerifyingKey. A VerifyError is returned when the
// inputs are malformed; a well-formed but mismatching signature yields false
// and no error.
func (vk *VerifyingKey) Verify(hash *Felt, signature *Signature) (bool, error) {
	z := feltToBig(hash)
	if z.Cmp(elementUpperBound) >= 0 {
		return false, ErrInvalidMessageHash
	}

	r := feltToBig(&signature.R)
	if !isInRange(r) {
		return false, ErrInvalidR
	}

	s := feltToBig(&signature.S)
	if !isInRange(s) {
		return false, ErrInvalidS
	}

	publicPoint, ok := pointFromX(&vk.scalar)
	if !ok {
		return false, ErrInvalidPublicKey
	}

	w := new(big.Int).ModInverse(s, curveOrder)
	if w == nil || !isInRange(w) {
		return false, ErrInvalidS
	}

	zw := new(big.Int).Mul(z, w)
	zw.Mod(zw, curveOrder)

	rw := new(big.Int).Mul(r, w)
	rw.Mod(rw, curveOrder)

	var g, q starkcurve.G1Jac
	g.FromAffine(&generator)
	q.FromAffine(publicPoint)

	var zwG, rwQ starkcurve.G1Jac
	zwG.ScalarMultiplication(&g, zw)
	rwQ.ScalarMultiplication(&q, rw)

	// The public key only carries `x`, so `Q` may be either of the two points
	// sharing it. Accept the signature for both `zwG + rwQ` and `zwG - rwQ`.
	var sum, difference starkcurve.G1Jac
	sum.Set(&zwG).AddAssign(&rwQ)
	difference.Set(&zwG).SubAssign(&rwQ)

	var sumAffine, differenceAffine starkcurve.G1Affine
	sumAffine.FromJacobian(&sum)
	differenceAffine.FromJacobian(&difference)

	return sumAffine.X.Equal(&signature.R) ||
		differenceAffine.X.Equal(&signature.R), nil
}
