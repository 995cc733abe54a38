package ecdsa

// SignError is returned when a signature can not be calculated.
type SignError struct {
	reason string
}

func (se *SignError) Error() string {
	return se.reason
}

// VerifyError is returned when a signature can not be checked at all, as
// opposed to a signature that is well-formed but invalid.
type VerifyError struct {
	reason string
}

func (ve *VerifyError) Error() string {
	return ve.reason
}

var (
	// ErrMessageHashOutOfRange is returned when signing a hash that is not
	// lower than 2^251.
	ErrMessageHashOutOfRange = &SignError{"message hash out of range"}

	// ErrInvalidMessageHash is returned when verifying a signature over a hash
	// that is not lower than 2^251.
	ErrInvalidMessageHash = &VerifyError{"invalid message hash"}
	// ErrInvalidR is returned when `r` is zero or not lower than 2^251.
	ErrInvalidR = &VerifyError{"invalid r"}
	// ErrInvalidS is returned when `s`, or its inverse, is zero or not lower
	// than 2^251.
	ErrInvalidS = &VerifyError{"invalid s"}
	// ErrInvalidPublicKey is returned when no curve point has the public key
	// as its `x` coordinate.
	ErrInvalidPublicKey = &VerifyError{"invalid public key"}
)
