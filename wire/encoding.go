// Package wire defines the protobuf messages exchanged with network nodes,
// together with a deterministic Encoder and a Decoder for them.
//
// The messages mirror the network's published service schema field for field.
// They are maintained by hand, so no protoc toolchain is required; well-known
// wrapper fields use the types from wrapperspb.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// A Message can encode itself to an Encoder.
type Message interface {
	EncodeTo(e *Encoder)
}

// A DecoderFrom can decode itself from a Decoder.
type DecoderFrom interface {
	DecodeFrom(d *Decoder)
}

// An Encoder appends protobuf fields to a buffer. Fields must be written in
// ascending field-number order; the output is then byte-identical to a
// deterministic marshal of the same message.
type Encoder struct {
	buf []byte
}

// Bytes returns the encoded message.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset discards any encoded data.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// AppendVarint writes a varint field, even if v is zero. It is used for
// members of a oneof, which are always present on the wire.
func (e *Encoder) AppendVarint(num protowire.Number, v uint64) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

// AppendBytes writes a length-delimited field, even if b is empty.
func (e *Encoder) AppendBytes(num protowire.Number, b []byte) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, b)
}

// AppendMessage writes m as an embedded message, even if it encodes to
// nothing.
func (e *Encoder) AppendMessage(num protowire.Number, m Message) {
	var sub Encoder
	m.EncodeTo(&sub)
	e.AppendBytes(num, sub.buf)
}

// WriteUint64 writes a uint64 field. Zero values are omitted.
func (e *Encoder) WriteUint64(num protowire.Number, v uint64) {
	if v != 0 {
		e.AppendVarint(num, v)
	}
}

// WriteInt64 writes an int64 field. Zero values are omitted.
func (e *Encoder) WriteInt64(num protowire.Number, v int64) {
	e.WriteUint64(num, uint64(v))
}

// WriteSint64 writes a zigzag-encoded sint64 field. Zero values are omitted.
func (e *Encoder) WriteSint64(num protowire.Number, v int64) {
	if v != 0 {
		e.AppendVarint(num, protowire.EncodeZigZag(v))
	}
}

// WriteInt32 writes an int32 (or enum) field. Zero values are omitted.
func (e *Encoder) WriteInt32(num protowire.Number, v int32) {
	e.WriteUint64(num, uint64(int64(v)))
}

// WriteUint32 writes a uint32 field. Zero values are omitted.
func (e *Encoder) WriteUint32(num protowire.Number, v uint32) {
	e.WriteUint64(num, uint64(v))
}

// WriteBool writes a bool field. False is omitted.
func (e *Encoder) WriteBool(num protowire.Number, b bool) {
	if b {
		e.AppendVarint(num, 1)
	}
}

// WriteBytes writes a bytes field. Empty values are omitted.
func (e *Encoder) WriteBytes(num protowire.Number, b []byte) {
	if len(b) > 0 {
		e.AppendBytes(num, b)
	}
}

// WriteString writes a string field. Empty values are omitted.
func (e *Encoder) WriteString(num protowire.Number, s string) {
	if len(s) > 0 {
		e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
		e.buf = protowire.AppendString(e.buf, s)
	}
}

// WritePackedInt64 writes a packed repeated int64 field. Empty slices are
// omitted.
func (e *Encoder) WritePackedInt64(num protowire.Number, vs []int64) {
	if len(vs) == 0 {
		return
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	e.AppendBytes(num, packed)
}

// WriteRepeatedBytes writes each element of bs as a separate bytes field.
func (e *Encoder) WriteRepeatedBytes(num protowire.Number, bs [][]byte) {
	for _, b := range bs {
		e.AppendBytes(num, b)
	}
}

// WriteWrapper writes a well-known wrapper message (or any other generated
// message). A nil message is omitted.
func (e *Encoder) WriteWrapper(num protowire.Number, m proto.Message) {
	if m == nil || !m.ProtoReflect().IsValid() {
		return
	}
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		panic(err) // wrapper types cannot fail to marshal
	}
	e.AppendBytes(num, b)
}

// EncodeMessage writes p as an embedded message. A nil pointer is omitted.
func EncodeMessage[T any, P interface {
	*T
	Message
}](e *Encoder, num protowire.Number, p P) {
	if p != nil {
		e.AppendMessage(num, p)
	}
}

// EncodeRepeated writes each element of s as an embedded message.
func EncodeRepeated[T any, P interface {
	*T
	Message
}](e *Encoder, num protowire.Number, s []P) {
	for _, p := range s {
		if p == nil {
			p = new(T)
		}
		e.AppendMessage(num, p)
	}
}

// Marshal returns the encoding of m.
func Marshal(m Message) []byte {
	var e Encoder
	m.EncodeTo(&e)
	if e.buf == nil {
		return []byte{}
	}
	return e.buf
}

// A Decoder reads protobuf fields from a buffer. Callers MUST check
// (*Decoder).Err before using any decoded values.
type Decoder struct {
	b   []byte
	num protowire.Number
	typ protowire.Type
	err error
}

// NewDecoder returns a Decoder for the provided buffer.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{b: b}
}

// SetErr sets the Decoder's error if it has not already been set. SetErr should
// only be called from DecodeFrom methods.
func (d *Decoder) SetErr(err error) {
	if err != nil && d.err == nil {
		d.err = err
		d.b = nil
	}
}

// Err returns the first error encountered during decoding.
func (d *Decoder) Err() error { return d.err }

// Next advances to the next field. It returns false once the buffer is
// exhausted or an error has occurred.
func (d *Decoder) Next() bool {
	if d.err != nil || len(d.b) == 0 {
		return false
	}
	num, typ, n := protowire.ConsumeTag(d.b)
	if n < 0 {
		d.SetErr(fmt.Errorf("invalid field tag: %w", protowire.ParseError(n)))
		return false
	}
	d.b = d.b[n:]
	d.num, d.typ = num, typ
	return true
}

// Field returns the number of the current field.
func (d *Decoder) Field() protowire.Number { return d.num }

// Skip discards the value of the current field.
func (d *Decoder) Skip() {
	n := protowire.ConsumeFieldValue(d.num, d.typ, d.b)
	if n < 0 {
		d.SetErr(fmt.Errorf("invalid value for field %d: %w", d.num, protowire.ParseError(n)))
		return
	}
	d.b = d.b[n:]
}

func (d *Decoder) expect(typ protowire.Type) bool {
	if d.err != nil {
		return false
	} else if d.typ != typ {
		d.SetErr(fmt.Errorf("field %d has wire type %d, expected %d", d.num, d.typ, typ))
		return false
	}
	return true
}

// ReadUint64 reads a varint value.
func (d *Decoder) ReadUint64() uint64 {
	if !d.expect(protowire.VarintType) {
		return 0
	}
	v, n := protowire.ConsumeVarint(d.b)
	if n < 0 {
		d.SetErr(fmt.Errorf("invalid varint in field %d: %w", d.num, protowire.ParseError(n)))
		return 0
	}
	d.b = d.b[n:]
	return v
}

// ReadInt64 reads an int64 value.
func (d *Decoder) ReadInt64() int64 { return int64(d.ReadUint64()) }

// ReadSint64 reads a zigzag-encoded sint64 value.
func (d *Decoder) ReadSint64() int64 { return protowire.DecodeZigZag(d.ReadUint64()) }

// ReadInt32 reads an int32 (or enum) value.
func (d *Decoder) ReadInt32() int32 { return int32(d.ReadUint64()) }

// ReadUint32 reads a uint32 value.
func (d *Decoder) ReadUint32() uint32 { return uint32(d.ReadUint64()) }

// ReadBool reads a bool value.
func (d *Decoder) ReadBool() bool { return d.ReadUint64() != 0 }

// ReadBytes reads a length-delimited value. The returned slice does not alias
// the Decoder's buffer and is never nil.
func (d *Decoder) ReadBytes() []byte {
	if !d.expect(protowire.BytesType) {
		return nil
	}
	v, n := protowire.ConsumeBytes(d.b)
	if n < 0 {
		d.SetErr(fmt.Errorf("invalid length prefix in field %d: %w", d.num, protowire.ParseError(n)))
		return nil
	}
	d.b = d.b[n:]
	return append([]byte{}, v...)
}

// ReadString reads a string value.
func (d *Decoder) ReadString() string { return string(d.ReadBytes()) }

// ReadMessage decodes the current field into m.
func (d *Decoder) ReadMessage(m DecoderFrom) {
	b := d.ReadBytes()
	if d.err != nil {
		return
	}
	sub := NewDecoder(b)
	m.DecodeFrom(sub)
	if sub.err != nil {
		d.SetErr(fmt.Errorf("field %d: %w", d.num, sub.err))
	}
}

// ReadWrapper decodes the current field into a generated message.
func (d *Decoder) ReadWrapper(m proto.Message) {
	b := d.ReadBytes()
	if d.err != nil {
		return
	}
	if err := proto.Unmarshal(b, m); err != nil {
		d.SetErr(fmt.Errorf("field %d: %w", d.num, err))
	}
}

// ReadPackedInt64 appends the value(s) of a repeated int64 field to vs. Both
// packed and unpacked encodings are accepted.
func (d *Decoder) ReadPackedInt64(vs []int64) []int64 {
	if d.typ == protowire.VarintType {
		return append(vs, d.ReadInt64())
	}
	b := d.ReadBytes()
	for len(b) > 0 && d.err == nil {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			d.SetErr(fmt.Errorf("invalid packed varint in field %d: %w", d.num, protowire.ParseError(n)))
			break
		}
		vs = append(vs, int64(v))
		b = b[n:]
	}
	return vs
}

// DecodeMessage decodes the current field into a newly-allocated T.
func DecodeMessage[T any, P interface {
	*T
	DecoderFrom
}](d *Decoder, v **T) {
	*v = new(T)
	d.ReadMessage(P(*v))
}

// DecodeRepeated decodes the current field into a new T and appends it to s.
func DecodeRepeated[T any, P interface {
	*T
	DecoderFrom
}](d *Decoder, s *[]P) {
	p := P(new(T))
	d.ReadMessage(p)
	*s = append(*s, p)
}

// ErrTrailingData is returned by Unmarshal when a message contains malformed
// trailing bytes.
var ErrTrailingData = errors.New("trailing data after message")

// Unmarshal decodes b into m.
func Unmarshal(b []byte, m DecoderFrom) error {
	d := NewDecoder(b)
	m.DecodeFrom(d)
	if err := d.Err(); err != nil {
		return err
	} else if len(d.b) != 0 {
		return ErrTrailingData
	}
	return nil
}
