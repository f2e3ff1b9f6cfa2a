// Package ops adapts domain-level operation parameters to the network's
// request bodies. Every transaction and query variant shares one contract:
// validate and build a body, wrap it for scheduling, wrap it in an envelope,
// select the remote method, and validate the result.
package ops

import (
	"fmt"
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// A Transaction holds the parameters of one transaction variant.
type Transaction interface {
	Tag() Tag
	buildBody() (wire.Message, error)
}

// A Body is a validated transaction body, ready to be enveloped or
// scheduled.
type Body struct {
	Tag Tag
	Msg wire.Message
}

// Build validates tx and returns its body. Build never partially succeeds.
func Build(tx Transaction) (Body, error) {
	msg, err := tx.buildBody()
	if err != nil {
		return Body{}, fmt.Errorf("%v: %w", tx.Tag(), err)
	}
	return Body{Tag: tx.Tag(), Msg: msg}, nil
}

// Bytes returns the deterministic encoding of the bare body.
func (b Body) Bytes() []byte { return wire.Marshal(b.Msg) }

// Transaction validity bounds.
const (
	DefaultValidDuration = 120 * time.Second
	MaxValidDuration     = 180 * time.Second
)

// A Header holds the fields shared by every transaction envelope, already
// validated and encoded.
type Header struct {
	id       types.TransactionID
	wid      *wire.TransactionID
	node     *wire.AccountID
	fee      uint64
	duration *wire.Duration
	memo     string
}

// NewHeader validates and encodes the common envelope fields. A zero
// validDuration selects DefaultValidDuration.
func NewHeader(id types.TransactionID, node types.Address, maxFee types.Hbar, validDuration time.Duration, memo string) (Header, error) {
	if validDuration == 0 {
		validDuration = DefaultValidDuration
	}
	wid, err := types.TransactionIDToWire(id)
	if err != nil {
		return Header{}, err
	}
	wnode, err := types.AccountIDToWire(node)
	if err != nil {
		return Header{}, fmt.Errorf("node account: %w", err)
	}
	switch {
	case node.IsAlias():
		return Header{}, errRange("node account must be numeric, got %v", node)
	case maxFee < 0:
		return Header{}, errRange("transaction fee must not be negative, got %v", maxFee)
	case validDuration < time.Second || validDuration > MaxValidDuration:
		return Header{}, errRange("valid duration must be between 1s and %v, got %v", MaxValidDuration, validDuration)
	}
	if err := checkMemo(memo); err != nil {
		return Header{}, err
	}
	return Header{
		id:       id,
		wid:      wid,
		node:     wnode,
		fee:      uint64(maxFee),
		duration: types.DurationToWire(validDuration),
		memo:     memo,
	}, nil
}

// TransactionID returns the ID the header was built with.
func (h Header) TransactionID() types.TransactionID { return h.id }

// Envelope wraps the body in a TransactionBody.
func (b Body) Envelope(h Header) *wire.TransactionBody {
	return &wire.TransactionBody{
		TransactionID:            h.wid,
		NodeAccountID:            h.node,
		TransactionFee:           h.fee,
		TransactionValidDuration: h.duration,
		Memo:                     h.memo,
		Data:                     wire.Oneof{Field: b.Tag.desc().field, Msg: b.Msg},
	}
}

// Schedulable wraps the body for deferred execution by a schedule. Variants
// that cannot be scheduled fail with ErrUnsupportedOperationVariant.
func (b Body) Schedulable(maxFee types.Hbar, memo string) (*wire.SchedulableTransactionBody, error) {
	d := b.Tag.desc()
	if d.scheduled == 0 {
		return nil, errUnsupported("%v cannot be scheduled", b.Tag)
	} else if maxFee < 0 {
		return nil, errRange("transaction fee must not be negative, got %v", maxFee)
	} else if err := checkMemo(memo); err != nil {
		return nil, err
	}
	return &wire.SchedulableTransactionBody{
		TransactionFee: uint64(maxFee),
		Memo:           memo,
		Data:           wire.Oneof{Field: d.scheduled, Msg: b.Msg},
	}, nil
}

// TagOf returns the tag of the variant populated in body.
func TagOf(body *wire.TransactionBody) (Tag, error) {
	if body == nil || body.Data.Msg == nil {
		return 0, errMissing("transaction body is empty")
	}
	t, ok := byField[0][body.Data.Field]
	if !ok {
		return 0, errProtocol("unknown transaction body field %d", body.Data.Field)
	}
	return t, nil
}

// Method selects the remote method for body. System delete and undelete
// route to the smart contract service when they name a contract.
func Method(body *wire.TransactionBody) (RemoteMethod, error) {
	t, err := TagOf(body)
	if err != nil {
		return RemoteMethod{}, err
	}
	d := t.desc()
	if d.contractMethod != (RemoteMethod{}) && hasField(body.Data.Msg, 2) {
		return d.contractMethod, nil
	}
	return d.method, nil
}

// hasField reports whether the encoding of m contains the given field. It
// works for both typed bodies and decoded RawMessages.
func hasField(m wire.Message, field protowire.Number) bool {
	d := wire.NewDecoder(wire.Marshal(m))
	for d.Next() {
		if d.Field() == field {
			return true
		}
		d.Skip()
	}
	return false
}

// ValidatePrecheck checks a node's response to a submitted transaction.
func ValidatePrecheck(t Tag, id types.TransactionID, resp *wire.TransactionResponse) error {
	if resp == nil {
		return errProtocol("%v: empty transaction response", t)
	} else if resp.NodeTransactionPrecheckCode == wire.ResponseOK {
		return nil
	}
	return fmt.Errorf("%v: %w", t, &types.PrecheckError{
		TransactionID: id,
		Status:        resp.NodeTransactionPrecheckCode,
		Cost:          types.Hbar(resp.Cost),
	})
}

// ValidateReceipt checks the post-consensus status of a transaction.
func ValidateReceipt(t Tag, r types.Receipt) error {
	if r.Status == wire.ResponseSuccess {
		return nil
	}
	return &types.ExecutionError{
		TransactionID: r.TransactionID,
		Status:        r.Status,
		Message:       t.FailureMessage(r.Status),
	}
}
