package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// A Oneof is the populated member of a discriminated body. Field is the
// member's field number within the enclosing message.
type Oneof struct {
	Field protowire.Number
	Msg   Message
}

// RawMessage is an already-encoded message. It is produced when decoding a
// oneof member whose concrete type is not needed.
type RawMessage []byte

// EncodeTo implements Message.
func (m RawMessage) EncodeTo(e *Encoder) { e.buf = append(e.buf, m...) }

// DecodeFrom implements DecoderFrom.
func (m *RawMessage) DecodeFrom(d *Decoder) {
	*m = append((*m)[:0], d.b...)
	d.b = nil
}

// A TransactionBody is the signed content of a transaction.
type TransactionBody struct {
	TransactionID            *TransactionID
	NodeAccountID            *AccountID
	TransactionFee           uint64
	TransactionValidDuration *Duration
	Memo                     string
	Data                     Oneof
}

// EncodeTo implements Message.
func (b *TransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.TransactionID)
	EncodeMessage(e, 2, b.NodeAccountID)
	e.WriteUint64(3, b.TransactionFee)
	EncodeMessage(e, 4, b.TransactionValidDuration)
	e.WriteString(6, b.Memo)
	if b.Data.Msg != nil {
		e.AppendMessage(b.Data.Field, b.Data.Msg)
	}
}

// DecodeFrom implements DecoderFrom. The body's data is decoded as a
// RawMessage.
func (b *TransactionBody) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch f := d.Field(); f {
		case 1:
			DecodeMessage(d, &b.TransactionID)
		case 2:
			DecodeMessage(d, &b.NodeAccountID)
		case 3:
			b.TransactionFee = d.ReadUint64()
		case 4:
			DecodeMessage(d, &b.TransactionValidDuration)
		case 6:
			b.Memo = d.ReadString()
		case 5:
			d.Skip() // generateRecord, deprecated
		default:
			if f >= 7 && f <= 99 {
				raw := RawMessage(d.ReadBytes())
				b.Data = Oneof{Field: f, Msg: raw}
			} else {
				d.Skip()
			}
		}
	}
}

// A SchedulableTransactionBody is a transaction body wrapped for deferred
// execution by a schedule.
type SchedulableTransactionBody struct {
	TransactionFee uint64
	Memo           string
	Data           Oneof
}

// EncodeTo implements Message.
func (b *SchedulableTransactionBody) EncodeTo(e *Encoder) {
	e.WriteUint64(1, b.TransactionFee)
	e.WriteString(2, b.Memo)
	if b.Data.Msg != nil {
		e.AppendMessage(b.Data.Field, b.Data.Msg)
	}
}

// DecodeFrom implements DecoderFrom.
func (b *SchedulableTransactionBody) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch f := d.Field(); f {
		case 1:
			b.TransactionFee = d.ReadUint64()
		case 2:
			b.Memo = d.ReadString()
		default:
			if f >= 3 && f <= 99 {
				b.Data = Oneof{Field: f, Msg: RawMessage(d.ReadBytes())}
			} else {
				d.Skip()
			}
		}
	}
}

// A Transaction is the outer envelope submitted to a node.
type Transaction struct {
	SignedTransactionBytes []byte
}

// EncodeTo implements Message.
func (t *Transaction) EncodeTo(e *Encoder) { e.WriteBytes(5, t.SignedTransactionBytes) }

// DecodeFrom implements DecoderFrom.
func (t *Transaction) DecodeFrom(d *Decoder) {
	for d.Next() {
		if d.Field() == 5 {
			t.SignedTransactionBytes = d.ReadBytes()
		} else {
			d.Skip()
		}
	}
}

// A SignedTransaction pairs encoded body bytes with their signatures.
type SignedTransaction struct {
	BodyBytes []byte
	SigMap    *SignatureMap
}

// EncodeTo implements Message.
func (t *SignedTransaction) EncodeTo(e *Encoder) {
	e.WriteBytes(1, t.BodyBytes)
	EncodeMessage(e, 2, t.SigMap)
}

// DecodeFrom implements DecoderFrom.
func (t *SignedTransaction) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			t.BodyBytes = d.ReadBytes()
		case 2:
			DecodeMessage(d, &t.SigMap)
		default:
			d.Skip()
		}
	}
}

// A SignatureMap holds the signatures of a transaction.
type SignatureMap struct {
	SigPair []*SignaturePair
}

// EncodeTo implements Message.
func (m *SignatureMap) EncodeTo(e *Encoder) { EncodeRepeated(e, 1, m.SigPair) }

// DecodeFrom implements DecoderFrom.
func (m *SignatureMap) DecodeFrom(d *Decoder) {
	for d.Next() {
		if d.Field() == 1 {
			DecodeRepeated(d, &m.SigPair)
		} else {
			d.Skip()
		}
	}
}

// Signature kinds carried by a SignaturePair.
const (
	SignatureContract       protowire.Number = 2
	SignatureEd25519        protowire.Number = 3
	SignatureRSA3072        protowire.Number = 4
	SignatureECDSA384       protowire.Number = 5
	SignatureECDSASecp256k1 protowire.Number = 6
)

// A SignaturePair is a signature together with a prefix of the public key
// that produced it.
type SignaturePair struct {
	PubKeyPrefix []byte
	Kind         protowire.Number
	Signature    []byte
}

// EncodeTo implements Message.
func (p *SignaturePair) EncodeTo(e *Encoder) {
	e.WriteBytes(1, p.PubKeyPrefix)
	if p.Kind != 0 {
		e.AppendBytes(p.Kind, p.Signature)
	}
}

// DecodeFrom implements DecoderFrom.
func (p *SignaturePair) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch f := d.Field(); f {
		case 1:
			p.PubKeyPrefix = d.ReadBytes()
		case SignatureContract, SignatureEd25519, SignatureRSA3072, SignatureECDSA384, SignatureECDSASecp256k1:
			p.Kind, p.Signature = f, d.ReadBytes()
		default:
			d.Skip()
		}
	}
}

// A TransactionResponse is a node's answer to a submitted transaction.
type TransactionResponse struct {
	NodeTransactionPrecheckCode ResponseCode
	Cost                        uint64
}

// EncodeTo implements Message.
func (r *TransactionResponse) EncodeTo(e *Encoder) {
	e.WriteInt32(1, int32(r.NodeTransactionPrecheckCode))
	e.WriteUint64(2, r.Cost)
}

// DecodeFrom implements DecoderFrom.
func (r *TransactionResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			r.NodeTransactionPrecheckCode = ResponseCode(d.ReadInt32())
		case 2:
			r.Cost = d.ReadUint64()
		default:
			d.Skip()
		}
	}
}
