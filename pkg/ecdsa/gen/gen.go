// Package gen holds the protocol buffer sources of pkg/ecdsa and the
// directive regenerating their Go code.
package gen

//go:generate sh -c "protoc --proto_path=. --gogo_out=paths=source_relative:. pb/message.proto"
