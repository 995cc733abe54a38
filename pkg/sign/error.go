package sign

// SignError is returned by LocalWallet when a signature could not be
// calculated. It carries the ECDSA error unchanged; Error returns its message
// and Unwrap returns the error itself.
type SignError struct {
	Err error
}

func (se *SignError) Error() string {
	return se.Err.Error()
}

// Unwrap returns the underlying ECDSA error.
func (se *SignError) Unwrap() error {
	return se.Err
}
