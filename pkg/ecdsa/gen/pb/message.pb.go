// Source: message.proto

// Package pb holds protocol buffer messages for persisting keys and
// signatures.
package pb

import (
	proto "github.com/gogo/protobuf/proto"
)

// SigningKey carries a 32-byte big-endian secret scalar.
type SigningKey struct {
	Secret []byte `protobuf:"bytes,1,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *SigningKey) Reset()         { *m = SigningKey{} }
func (m *SigningKey) String() string { return proto.CompactTextString(m) }
func (*SigningKey) ProtoMessage()    {}

func (m *SigningKey) GetSecret() []byte {
	if m != nil {
		return m.Secret
	}
	return nil
}

// Signature carries 32-byte big-endian `r` and `s` values and the recovery ID.
type Signature struct {
	R          []byte `protobuf:"bytes,1,opt,name=r,proto3" json:"r,omitempty"`
	S          []byte `protobuf:"bytes,2,opt,name=s,proto3" json:"s,omitempty"`
	RecoveryId uint32 `protobuf:"varint,3,opt,name=recovery_id,json=recoveryId,proto3" json:"recovery_id,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

func (m *Signature) GetR() []byte {
	if m != nil {
		return m.R
	}
	return nil
}

func (m *Signature) GetS() []byte {
	if m != nil {
		return m.S
	}
	return nil
}

func (m *Signature) GetRecoveryId() uint32 {
	if m != nil {
		return m.RecoveryId
	}
	return 0
}

func init() {
	proto.RegisterType((*SigningKey)(nil), "ecdsa.SigningKey")
	proto.RegisterType((*Signature)(nil), "ecdsa.Signature")
}
