// Package ecdsa implements ECDSA over the STARK curve, the curve used by
// Starknet.
//
// The curve is the short Weierstrass curve `y² = x³ + x + β` over the prime
// field `p = 2^251 + 17·2^192 + 1`. Message hashes, keys and signature
// components are all elements of that field (Felt). Nonces are derived
// deterministically as described in [RFC 6979], so signing the same hash with
// the same key always yields the same signature.
//
//   [RFC 6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA),
//     https://tools.ietf.org/html/rfc6979
package ecdsa

import (
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

var (
	// elementUpperBound is 2^251. Message hashes and both signature
	// components must be strictly below it.
	elementUpperBound = new(big.Int).Lsh(big.NewInt(1), 251)

	// curveOrder is the order `n` of the generator point.
	curveOrder = fr.Modulus()

	generator starkcurve.G1Affine

	// curveB is the β coefficient of the curve equation.
	curveB fp.Element
)

func init() {
	_, generator = starkcurve.Generators()

	// β = y² - x³ - x for any point on the curve, the generator included.
	var x3, y2 fp.Element
	x3.Square(&generator.X).Mul(&x3, &generator.X)
	y2.Square(&generator.Y)
	curveB.Sub(&y2, &x3).Sub(&curveB, &generator.X)
}

// scalarBaseMult returns `k * G`.
func scalarBaseMult(k *big.Int) *starkcurve.G1Affine {
	var g starkcurve.G1Jac
	g.FromAffine(&generator)

	return scalarMult(&g, k)
}

// scalarMult returns `k * P` in affine coordinates.
func scalarMult(p *starkcurve.G1Jac, k *big.Int) *starkcurve.G1Affine {
	var product starkcurve.G1Jac
	product.ScalarMultiplication(p, k)

	result := new(starkcurve.G1Affine)
	result.FromJacobian(&product)

	return result
}

// pointFromX finds a curve point with the given `x` coordinate. It returns
// false if `x³ + x + β` has no square root in the field. Of the two possible
// points `(x, y)` and `(x, -y)`, the one returned is unspecified; callers must
// be indifferent to the sign of `y`.
func pointFromX(x *fp.Element) (*starkcurve.G1Affine, bool) {
	// x³ + x + β
	var y2 fp.Element
	y2.Square(x).Mul(&y2, x)
	y2.Add(&y2, x).Add(&y2, &curveB)

	var y fp.Element
	if y.Sqrt(&y2) == nil {
		return nil, false
	}

	point := &starkcurve.G1Affine{X: *x, Y: y}
	if !point.IsOnCurve() {
		return nil, false
	}

	return point, true
}

func isInRange(value *big.Int) bool {
	return value.Sign() > 0 && value.Cmp(elementUpperBound) < 0
}
