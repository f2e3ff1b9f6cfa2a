package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.hashgraph.tech/core/wire"
	"lukechampine.com/frand"
)

// A TransactionID uniquely identifies a transaction by its payer and the time
// from which it is valid.
type TransactionID struct {
	Account    Address
	ValidStart time.Time
	Scheduled  bool
	Nonce      int32
}

// maxValidStartJitter bounds how far before the current time a generated
// valid start may fall, so that IDs generated in the same instant differ and
// clock skew with nodes is tolerated.
const maxValidStartJitter = 5 * time.Second

// NewTransactionID returns a transaction ID for payer whose valid start is
// slightly before the current time.
func NewTransactionID(payer Address) TransactionID {
	jitter := time.Duration(frand.Intn(int(maxValidStartJitter)))
	return TransactionID{
		Account:    payer,
		ValidStart: time.Now().Add(-jitter).UTC(),
	}
}

// IsZero reports whether id is the zero TransactionID.
func (id TransactionID) IsZero() bool {
	return id.Account.IsNone() && id.ValidStart.IsZero() && !id.Scheduled && id.Nonce == 0
}

// String implements fmt.Stringer. The format is
// "shard.realm.num@seconds.nanos", followed by "?scheduled" and "/nonce"
// when applicable.
func (id TransactionID) String() string {
	var sb strings.Builder
	sb.WriteString(id.Account.String())
	sb.WriteByte('@')
	sb.WriteString(strconv.FormatInt(id.ValidStart.Unix(), 10))
	sb.WriteByte('.')
	sb.WriteString(fmt.Sprintf("%09d", id.ValidStart.Nanosecond()))
	if id.Scheduled {
		sb.WriteString("?scheduled")
	}
	if id.Nonce != 0 {
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatInt(int64(id.Nonce), 10))
	}
	return sb.String()
}

// ParseTransactionID parses a transaction ID from its string form.
func ParseTransactionID(s string) (TransactionID, error) {
	var id TransactionID
	rest := s
	if i := strings.LastIndexByte(rest, '/'); i != -1 {
		n, err := strconv.ParseInt(rest[i+1:], 10, 32)
		if err != nil {
			return TransactionID{}, fmt.Errorf("invalid transaction ID %q: invalid nonce: %w", s, err)
		}
		id.Nonce, rest = int32(n), rest[:i]
	}
	rest, id.Scheduled = strings.CutSuffix(rest, "?scheduled")
	acct, start, ok := strings.Cut(rest, "@")
	if !ok {
		return TransactionID{}, fmt.Errorf("invalid transaction ID %q: missing '@'", s)
	}
	var err error
	if id.Account, err = ParseAddress(acct); err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction ID %q: %w", s, err)
	}
	secs, nanos, ok := strings.Cut(start, ".")
	if !ok {
		return TransactionID{}, fmt.Errorf("invalid transaction ID %q: missing nanoseconds", s)
	}
	sec, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction ID %q: invalid seconds: %w", s, err)
	}
	nsec, err := strconv.ParseInt(nanos, 10, 32)
	if err != nil || nsec >= int64(time.Second) {
		return TransactionID{}, fmt.Errorf("invalid transaction ID %q: invalid nanoseconds", s)
	}
	id.ValidStart = time.Unix(sec, nsec).UTC()
	return id, nil
}

// TransactionIDToWire encodes id. The payer account is required.
func TransactionIDToWire(id TransactionID) (*wire.TransactionID, error) {
	acct, err := AccountIDToWire(id.Account)
	if err != nil {
		return nil, fmt.Errorf("transaction ID: %w", err)
	} else if id.ValidStart.IsZero() {
		return nil, errMissing("transaction ID valid start is required")
	}
	return &wire.TransactionID{
		TransactionValidStart: TimestampToWire(id.ValidStart),
		AccountID:             acct,
		Scheduled:             id.Scheduled,
		Nonce:                 id.Nonce,
	}, nil
}

// TransactionIDFromWire decodes a transaction ID. A nil ID decodes to the
// zero TransactionID.
func TransactionIDFromWire(id *wire.TransactionID) TransactionID {
	if id == nil {
		return TransactionID{}
	}
	return TransactionID{
		Account:    AccountIDFromWire(id.AccountID),
		ValidStart: TimestampFromWire(id.TransactionValidStart),
		Scheduled:  id.Scheduled,
		Nonce:      id.Nonce,
	}
}
