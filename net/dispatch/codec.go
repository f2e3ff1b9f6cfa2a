package dispatch

import "fmt"

// A frame is an already-encoded message body. Requests and responses are
// encoded by the wire package, so the transport passes them through.
type frame []byte

// codec is a grpc encoding.Codec that passes frames through unchanged. Its
// name selects the content subtype nodes expect.
type codec struct{}

func (codec) Name() string { return "proto" }

func (codec) Marshal(v any) ([]byte, error) {
	f, ok := v.(*frame)
	if !ok {
		return nil, fmt.Errorf("cannot marshal %T", v)
	}
	return *f, nil
}

func (codec) Unmarshal(data []byte, v any) error {
	f, ok := v.(*frame)
	if !ok {
		return fmt.Errorf("cannot unmarshal into %T", v)
	}
	*f = append((*f)[:0], data...)
	return nil
}
