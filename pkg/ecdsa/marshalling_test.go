package ecdsa

import (
	"reflect"
	"testing"

	"github.com/keep-network/stark-signer/pkg/utils/pbutils"
)

func TestSigningKeyRoundtrip(t *testing.T) {
	signingKey := generateTestKey(t)

	unmarshaled := &SigningKey{}

	err := pbutils.RoundTrip(signingKey, unmarshaled)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(signingKey, unmarshaled) {
		t.Fatalf("unexpected content of unmarshaled signing key")
	}
}

func TestSignatureRoundtrip(t *testing.T) {
	signature, err := generateTestKey(t).Sign(randomHash(t))
	if err != nil {
		t.Fatal(err)
	}

	unmarshaled := &Signature{}

	err = pbutils.RoundTrip(signature, unmarshaled)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(signature, unmarshaled) {
		t.Fatalf(
			"unexpected content of unmarshaled signature\n"+
				"expected: [%s]\nactual:   [%s]",
			signature,
			unmarshaled,
		)
	}
}

func TestSignatureUnmarshalInvalidRecoveryID(t *testing.T) {
	signature, err := generateTestKey(t).Sign(randomHash(t))
	if err != nil {
		t.Fatal(err)
	}
	signature.RecoveryID = 2

	bytes, err := signature.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	if err := (&Signature{}).Unmarshal(bytes); err == nil {
		t.Fatal("expected error for recovery ID out of range")
	}
}

func TestFuzzSigningKeyUnmarshaler(t *testing.T) {
	pbutils.FuzzUnmarshaler(&SigningKey{})
}

func TestFuzzSignatureUnmarshaler(t *testing.T) {
	pbutils.FuzzUnmarshaler(&Signature{})
}
