package ops

import (
	"fmt"
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Network limits enforced before a body is built.
const (
	maxMemoBytes         = 100
	maxNameBytes         = 100
	maxMetadataBytes     = 100
	maxTopicMessageBytes = 1024
	maxFileAppendBytes   = 4096
	maxCustomFees        = 10
	maxPendingAirdrops   = 10
	maxTokenRejections   = 10
	minAutoRenewPeriod   = 30 * 24 * time.Hour
	maxAutoRenewPeriod   = 8_000_001 * time.Second
	maxPort              = 65535
)

const errBlankUpdate = "at least one update property must be set"

func errMissing(format string, args ...any) error {
	return types.NewError(types.ErrorKindMissingRequiredField, format, args...)
}

func errRange(format string, args ...any) error {
	return types.NewError(types.ErrorKindOutOfRangeValue, format, args...)
}

func errConflict(format string, args ...any) error {
	return types.NewError(types.ErrorKindConflictingOrBlankUpdate, format, args...)
}

func errUnsupported(format string, args ...any) error {
	return types.NewError(types.ErrorKindUnsupportedOperationVariant, format, args...)
}

func errProtocol(format string, args ...any) error {
	return types.NewError(types.ErrorKindProtocolMismatch, format, args...)
}

func checkMemo(memo string) error {
	if len(memo) > maxMemoBytes {
		return errRange("memo must not exceed %d bytes, got %d", maxMemoBytes, len(memo))
	}
	return nil
}

// checkAutoRenew accepts zero, meaning "unset".
func checkAutoRenew(d time.Duration) error {
	if d != 0 && (d < minAutoRenewPeriod || d > maxAutoRenewPeriod) {
		return errRange("auto-renew period must be between %v and %v, got %v", minAutoRenewPeriod, maxAutoRenewPeriod, d)
	}
	return nil
}

func checkStaking(account types.Address, node *int64) error {
	if !account.IsNone() && node != nil {
		return errConflict("only one of staked account and staked node may be set")
	} else if node != nil && *node < 0 {
		return errRange("staked node ID must not be negative, got %d", *node)
	}
	return nil
}

func checkMaxAssociations(n int32) error {
	if n < -1 {
		return errRange("max automatic token associations must be at least -1, got %d", n)
	}
	return nil
}

func checkSerials(serials []int64) error {
	seen := make(map[int64]bool, len(serials))
	for _, s := range serials {
		if s <= 0 {
			return errRange("serial numbers must be positive, got %d", s)
		} else if seen[s] {
			return errConflict("serial number %d appears more than once", s)
		}
		seen[s] = true
	}
	return nil
}

func optionalString(s *string) *wrapperspb.StringValue {
	if s == nil {
		return nil
	}
	return wrapperspb.String(*s)
}

func optionalBool(b *bool) *wrapperspb.BoolValue {
	if b == nil {
		return nil
	}
	return wrapperspb.Bool(*b)
}

func optionalInt32(n *int32) *wrapperspb.Int32Value {
	if n == nil {
		return nil
	}
	return wrapperspb.Int32(*n)
}

// optionalBytes encodes nil as "unchanged" and any other slice, including an
// empty one, as a replacement value.
func optionalBytes(b []byte) *wrapperspb.BytesValue {
	if b == nil {
		return nil
	}
	return wrapperspb.Bytes(b)
}

// anySet reports whether any of the given update properties is set.
func anySet(set ...bool) bool {
	for _, s := range set {
		if s {
			return true
		}
	}
	return false
}

// A builder converts domain values to their wire forms. Like a Decoder, it
// retains the first error encountered, annotated with the field name.
type builder struct {
	err error
}

func (b *builder) check(name string, err error) {
	if b.err == nil && err != nil {
		if name != "" {
			err = fmt.Errorf("%s: %w", name, err)
		}
		b.err = err
	}
}

func (b *builder) account(name string, a types.Address) *wire.AccountID {
	id, err := types.AccountIDToWire(a)
	b.check(name, err)
	return id
}

func (b *builder) optAccount(name string, a types.Address) *wire.AccountID {
	id, err := types.OptionalAccountID(a)
	b.check(name, err)
	return id
}

func (b *builder) contract(name string, a types.Address) *wire.ContractID {
	id, err := types.ContractIDToWire(a)
	b.check(name, err)
	return id
}

func (b *builder) optContract(name string, a types.Address) *wire.ContractID {
	id, err := types.OptionalContractID(a)
	b.check(name, err)
	return id
}

func (b *builder) file(name string, a types.Address) *wire.FileID {
	id, err := types.FileIDToWire(a)
	b.check(name, err)
	return id
}

func (b *builder) optFile(name string, a types.Address) *wire.FileID {
	id, err := types.OptionalFileID(a)
	b.check(name, err)
	return id
}

func (b *builder) token(name string, a types.Address) *wire.TokenID {
	id, err := types.TokenIDToWire(a)
	b.check(name, err)
	return id
}

func (b *builder) topic(name string, a types.Address) *wire.TopicID {
	id, err := types.TopicIDToWire(a)
	b.check(name, err)
	return id
}

func (b *builder) schedule(name string, a types.Address) *wire.ScheduleID {
	id, err := types.ScheduleIDToWire(a)
	b.check(name, err)
	return id
}

func (b *builder) nft(name string, id types.NftID) *wire.NftID {
	w, err := types.NftIDToWire(id)
	b.check(name, err)
	return w
}

func (b *builder) key(name string, k types.Key) *wire.Key {
	w, err := types.KeyToWire(k)
	b.check(name, err)
	return w
}

func (b *builder) optKey(name string, k types.Key) *wire.Key {
	w, err := types.OptionalKey(k)
	b.check(name, err)
	return w
}

func (b *builder) fees(fees []types.CustomFee, nonFungible bool) []*wire.CustomFee {
	if len(fees) > maxCustomFees {
		b.check("custom fees", errRange("at most %d custom fees are allowed, got %d", maxCustomFees, len(fees)))
		return nil
	}
	for i, f := range fees {
		b.check(fmt.Sprintf("custom fee %d", i), f.ValidateFor(nonFungible))
	}
	ws, err := types.CustomFeesToWire(fees)
	b.check("custom fees", err)
	return ws
}
