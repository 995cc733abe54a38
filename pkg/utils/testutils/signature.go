// Package testutils provides assertions shared by tests of signing packages.
package testutils

import (
	"testing"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

// VerifySignature validates that the signature in form (r, s, recoveryID) was
// calculated over the hash with the private key matching expectedPublicKey.
func VerifySignature(
	t *testing.T,
	hash *ecdsa.Felt,
	signature *ecdsa.Signature,
	expectedPublicKey *ecdsa.VerifyingKey,
) {
	t.Helper()

	if signature.RecoveryID != 0 && signature.RecoveryID != 1 {
		t.Errorf("invalid recovery ID: [%d]", signature.RecoveryID)
	}

	valid, err := expectedPublicKey.Verify(hash, signature)
	if err != nil {
		t.Fatalf("failed to verify signature: [%v]", err)
	}

	if !valid {
		t.Errorf(
			"invalid signature:\nsignature:  [%s]\npublic key: [%s]\n",
			signature,
			expectedPublicKey,
		)
	}
}
