// Package pbutils provides helpers for testing protocol buffer marshalling.
package pbutils

import (
	"github.com/gogo/protobuf/proto"
	fuzz "github.com/google/gofuzz"
)

// RoundTrip marshals the marshaler and unmarshals the result into the
// unmarshaler.
func RoundTrip(
	marshaler proto.Marshaler,
	unmarshaler proto.Unmarshaler,
) error {
	bytes, err := marshaler.Marshal()
	if err != nil {
		return err
	}

	return unmarshaler.Unmarshal(bytes)
}

// FuzzUnmarshaler tests given unmarshaler with random bytes. Errors are
// expected and ignored; the unmarshaler must not panic.
func FuzzUnmarshaler(unmarshaler proto.Unmarshaler) {
	for i := 0; i < 100; i++ {
		var messageBytes []byte

		f := fuzz.New().NilChance(0.01).NumElements(0, 512)
		f.Fuzz(&messageBytes)

		_ = unmarshaler.Unmarshal(messageBytes)
	}
}
