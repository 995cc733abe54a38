// Package byteutils provides helper utilities for working with bytes
package byteutils

import (
	"fmt"
)

// LeftPadTo32Bytes prepends zeros to bytes slice to make it exactly 32 bytes
// long.
func LeftPadTo32Bytes(bytes []byte) ([]byte, error) {
	return LeftPadTo(bytes, 32)
}

// LeftPadTo prepends zeros to bytes slice to make it exactly length bytes long.
func LeftPadTo(bytes []byte, length int) ([]byte, error) {
	if len(bytes) > length {
		return nil, fmt.Errorf(
			"cannot pad %v byte array to %v bytes", len(bytes), length,
		)
	}

	result := make([]byte, 0, length)
	if len(bytes) < length {
		result = make([]byte, length-len(bytes), length)
	}
	result = append(result, bytes...)

	return result, nil
}
