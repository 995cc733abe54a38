// Package sign provides signers calculating STARK curve ECDSA signatures
// over message hashes.
//
// Callers depend on the Signer interface only, so a key held in memory, a
// hardware token and a remote signing service are interchangeable.
package sign

import (
	"context"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

// Signer is the capability to provide a public key and to sign hashes.
type Signer interface {
	// PublicKey returns the public key signatures can be verified with.
	PublicKey(ctx context.Context) (*ecdsa.VerifyingKey, error)

	// SignHash calculates a signature over the provided hash.
	SignHash(ctx context.Context, hash *ecdsa.Felt) (*ecdsa.Signature, error)

	// IsInteractive tells whether signing in the given context requires an
	// out-of-band approval, for example a confirmation on a hardware device.
	IsInteractive(interactivityContext InteractivityContext) bool
}
