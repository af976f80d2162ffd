// Package api defines the RPC surface of the fund service: message types,
// procedure names, and Connect handler and client constructors.
//
// Messages are plain Go structs carried as JSON. Every handler and client
// built here registers Codec so browsers and curl can talk to the server
// with Content-Type: application/json.
package api

import (
	"encoding/json"
	"fmt"
	"slices"

	"connectrpc.com/connect"
)

// Codec marshals messages with encoding/json under the "json" codec name,
// replacing Connect's protobuf-only JSON codec.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}

var readOnly = connect.WithIdempotency(connect.IdempotencyNoSideEffects)

func handlerOptions(opts []connect.HandlerOption, extra ...connect.HandlerOption) []connect.HandlerOption {
	return slices.Concat([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts, extra)
}

func clientOptions(opts []connect.ClientOption, extra ...connect.ClientOption) []connect.ClientOption {
	return slices.Concat([]connect.ClientOption{connect.WithCodec(Codec{})}, opts, extra)
}
