package ecdsa

import (
	"fmt"

	"github.com/gogo/protobuf/proto"

	"github.com/keep-network/stark-signer/pkg/ecdsa/gen/pb"
)

// Marshal converts SigningKey to byte array.
func (sk *SigningKey) Marshal() ([]byte, error) {
	return proto.Marshal(&pb.SigningKey{
		Secret: FeltToBytes(&sk.secret),
	})
}

// Unmarshal converts a byte array back to SigningKey.
func (sk *SigningKey) Unmarshal(bytes []byte) error {
	pbSigningKey := pb.SigningKey{}
	if err := proto.Unmarshal(bytes, &pbSigningKey); err != nil {
		return err
	}

	secret, err := FeltFromBytes(pbSigningKey.Secret)
	if err != nil {
		return fmt.Errorf("failed to unmarshal secret: [%v]", err)
	}

	sk.secret = *secret

	return nil
}

// Marshal converts Signature to byte array.
func (s *Signature) Marshal() ([]byte, error) {
	return proto.Marshal(&pb.Signature{
		R:          FeltToBytes(&s.R),
		S:          FeltToBytes(&s.S),
		RecoveryId: uint32(s.RecoveryID),
	})
}

// Unmarshal converts a byte array back to Signature.
func (s *Signature) Unmarshal(bytes []byte) error {
	pbSignature := pb.Signature{}
	if err := proto.Unmarshal(bytes, &pbSignature); err != nil {
		return err
	}

	r, err := FeltFromBytes(pbSignature.R)
	if err != nil {
		return fmt.Errorf("failed to unmarshal r: [%v]", err)
	}

	sValue, err := FeltFromBytes(pbSignature.S)
	if err != nil {
		return fmt.Errorf("failed to unmarshal s: [%v]", err)
	}

	if pbSignature.RecoveryId > 1 {
		return fmt.Errorf(
			"invalid recovery ID: [%d]",
			pbSignature.RecoveryId,
		)
	}

	s.R = *r
	s.S = *sValue
	s.RecoveryID = int(pbSignature.RecoveryId)

	return nil
}
