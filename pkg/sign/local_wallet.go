package sign

import (
	"context"
	"fmt"

	"github.com/ipfs/go-log"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

var logger = log.Logger("stark-sign")

var (
	errMissingSigningKey = fmt.Errorf("wallet holds no signing key")
	errKeyAlreadySet     = fmt.Errorf("wallet already holds a signing key")
)

// LocalWallet is a Signer holding the signing key in memory. Hardware-based
// signers should be preferred for keys controlling real value.
//
// LocalWallet never modifies the key after construction and is safe for
// concurrent use. The zero value holds no key and is only meant to be filled
// by Unmarshal; until then it reports no public key and refuses to sign.
type LocalWallet struct {
	privateKey *ecdsa.SigningKey
}

var _ Signer = (*LocalWallet)(nil)

// NewLocalWallet creates a LocalWallet holding a copy of the provided signing
// key.
func NewLocalWallet(privateKey *ecdsa.SigningKey) *LocalWallet {
	return &LocalWallet{privateKey: ecdsa.NewSigningKey(privateKey.Secret())}
}

// FromSigningKey is an alias of NewLocalWallet.
func FromSigningKey(privateKey *ecdsa.SigningKey) *LocalWallet {
	return NewLocalWallet(privateKey)
}

// VerifyingKey returns the public key derived from the held signing key.
func (lw *LocalWallet) VerifyingKey() *ecdsa.VerifyingKey {
	if lw.privateKey == nil {
		return nil
	}

	return lw.privateKey.VerifyingKey()
}

// PublicKey returns the public key derived from the held signing key. The
// returned error is always nil.
func (lw *LocalWallet) PublicKey(ctx context.Context) (*ecdsa.VerifyingKey, error) {
	return lw.VerifyingKey(), nil
}

// SignHash signs the hash with the held signing key. Errors of the ECDSA
// signing are returned as *SignError.
func (lw *LocalWallet) SignHash(
	ctx context.Context,
	hash *ecdsa.Felt,
) (*ecdsa.Signature, error) {
	if lw.privateKey == nil {
		return nil, errMissingSigningKey
	}

	signature, err := lw.privateKey.Sign(hash)
	if err != nil {
		return nil, &SignError{Err: err}
	}

	logger.Debugf(
		"calculated signature for hash [%s]: [%s]",
		ecdsa.FeltToHex(hash),
		signature,
	)

	return signature, nil
}

// IsInteractive always returns false; LocalWallet never asks for approval.
func (lw *LocalWallet) IsInteractive(InteractivityContext) bool {
	return false
}

// Clone returns an independent LocalWallet holding equal key material.
func (lw *LocalWallet) Clone() *LocalWallet {
	if lw.privateKey == nil {
		return &LocalWallet{}
	}

	return NewLocalWallet(lw.privateKey)
}

// Marshal converts LocalWallet to byte array. The key is not encrypted.
func (lw *LocalWallet) Marshal() ([]byte, error) {
	if lw.privateKey == nil {
		return nil, errMissingSigningKey
	}

	return lw.privateKey.Marshal()
}

// Unmarshal converts a byte array back to LocalWallet. Only a zero value
// LocalWallet can be unmarshaled; the key of a constructed wallet is never
// replaced.
func (lw *LocalWallet) Unmarshal(bytes []byte) error {
	if lw.privateKey != nil {
		return errKeyAlreadySet
	}

	privateKey := &ecdsa.SigningKey{}
	if err := privateKey.Unmarshal(bytes); err != nil {
		return err
	}

	lw.privateKey = privateKey

	return nil
}
