package types

import (
	"fmt"

	"go.hashgraph.tech/core/wire"
)

// SentinelToken, used as the denominating token of a fixed fee in a token
// creation, denotes the token being created.
var SentinelToken = NewAddress(0, 0, 0)

// A CustomFee is an entry of a token's fee schedule, assessed against
// transfers of that token.
type CustomFee struct {
	Collector           Address
	AllCollectorsExempt bool
	Type                interface{ isFee() }
}

// FeeTypeFixed charges a flat amount. If DenominatingToken is None the
// amount is in tinybars.
type FeeTypeFixed struct {
	Amount            int64
	DenominatingToken Address
}

// FeeTypeFractional charges Numerator/Denominator of each transferred
// amount, bounded by Min and Max (a Max of zero means unbounded). It applies
// only to fungible tokens. If Surcharge is set the fee is charged to the
// sender on top of the transfer, rather than deducted from it.
type FeeTypeFractional struct {
	Numerator   int64
	Denominator int64
	Min         int64
	Max         int64
	Surcharge   bool
}

// FeeTypeRoyalty charges Numerator/Denominator of the value exchanged for an
// NFT, falling back to a fixed fee when nothing is exchanged. It applies only
// to non-fungible tokens. The wire schema calls this a royalty fee; it is the
// asset royalty of the fee model.
type FeeTypeRoyalty struct {
	Numerator      int64
	Denominator    int64
	FallbackAmount int64
	FallbackToken  Address
}

func (FeeTypeFixed) isFee()      {}
func (FeeTypeFractional) isFee() {}
func (FeeTypeRoyalty) isFee()    {}

// String implements fmt.Stringer.
func (f CustomFee) String() string {
	switch t := f.Type.(type) {
	case FeeTypeFixed:
		if t.DenominatingToken.IsNone() {
			return fmt.Sprintf("fixed(%v,%v)", Hbar(t.Amount), f.Collector)
		}
		return fmt.Sprintf("fixed(%d %v,%v)", t.Amount, t.DenominatingToken, f.Collector)
	case FeeTypeFractional:
		return fmt.Sprintf("fractional(%d/%d,[%d,%d],%v)", t.Numerator, t.Denominator, t.Min, t.Max, f.Collector)
	case FeeTypeRoyalty:
		return fmt.Sprintf("royalty(%d/%d,%v)", t.Numerator, t.Denominator, f.Collector)
	default:
		return "invalid()"
	}
}

// ValidateFor checks that f may be attached to a token of the given kind:
// fractional fees require a fungible token and royalty fees a non-fungible
// one.
func (f CustomFee) ValidateFor(nonFungible bool) error {
	switch f.Type.(type) {
	case FeeTypeFractional:
		if nonFungible {
			return errUnsupported("fractional fees are not supported for non-fungible tokens")
		}
	case FeeTypeRoyalty:
		if !nonFungible {
			return errUnsupported("royalty fees are only supported for non-fungible tokens")
		}
	default:
		// fixed fees apply to either kind
	}
	return nil
}

func checkFraction(numerator, denominator int64) (*wire.Fraction, error) {
	if denominator <= 0 {
		return nil, errRange("fee denominator must be positive, got %d", denominator)
	} else if numerator < 0 {
		return nil, errRange("fee numerator must not be negative, got %d", numerator)
	}
	return &wire.Fraction{Numerator: numerator, Denominator: denominator}, nil
}

func fixedFeeToWire(amount int64, token Address) (*wire.FixedFee, error) {
	if amount < 0 {
		return nil, errRange("fixed fee amount must not be negative, got %d", amount)
	}
	id, err := OptionalTokenID(token)
	if err != nil {
		return nil, err
	}
	return &wire.FixedFee{Amount: amount, DenominatingTokenID: id}, nil
}

// CustomFeeToWire encodes f.
func CustomFeeToWire(f CustomFee) (*wire.CustomFee, error) {
	collector, err := AccountIDToWire(f.Collector)
	if err != nil {
		return nil, fmt.Errorf("fee collector: %w", err)
	}
	w := &wire.CustomFee{
		FeeCollectorAccountID:  collector,
		AllCollectorsAreExempt: f.AllCollectorsExempt,
	}
	switch t := f.Type.(type) {
	case FeeTypeFixed:
		w.FixedFee, err = fixedFeeToWire(t.Amount, t.DenominatingToken)
	case FeeTypeFractional:
		var frac *wire.Fraction
		if frac, err = checkFraction(t.Numerator, t.Denominator); err != nil {
			break
		} else if t.Min < 0 || t.Max < 0 || (t.Max != 0 && t.Max < t.Min) {
			err = errRange("fractional fee bounds [%d, %d] are invalid", t.Min, t.Max)
			break
		}
		w.FractionalFee = &wire.FractionalFee{
			FractionalAmount: frac,
			MinimumAmount:    t.Min,
			MaximumAmount:    t.Max,
			NetOfTransfers:   t.Surcharge,
		}
	case FeeTypeRoyalty:
		var frac *wire.Fraction
		if frac, err = checkFraction(t.Numerator, t.Denominator); err != nil {
			break
		}
		w.RoyaltyFee = &wire.RoyaltyFee{ExchangeValueFraction: frac}
		if t.FallbackAmount != 0 || !t.FallbackToken.IsNone() {
			w.RoyaltyFee.FallbackFee, err = fixedFeeToWire(t.FallbackAmount, t.FallbackToken)
		}
	default:
		// covers a nil Type as well as pointer forms of the fee types
		err = errUnsupported("custom fee has unsupported type %T", t)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// CustomFeesToWire encodes a fee schedule.
func CustomFeesToWire(fees []CustomFee) ([]*wire.CustomFee, error) {
	ws := make([]*wire.CustomFee, len(fees))
	for i, f := range fees {
		w, err := CustomFeeToWire(f)
		if err != nil {
			return nil, fmt.Errorf("custom fee %d: %w", i, err)
		}
		ws[i] = w
	}
	return ws, nil
}

// unsetFeeFallback is the result of decoding a fee whose kind is unset or
// unknown: a zero fixed fee paid to None. Decoding deliberately does not
// fail in this case.
func unsetFeeFallback() CustomFee {
	return CustomFee{Type: FeeTypeFixed{}}
}

// CustomFeeFromWire decodes a fee schedule entry.
func CustomFeeFromWire(w *wire.CustomFee) CustomFee {
	if w == nil || (w.FixedFee == nil && w.FractionalFee == nil && w.RoyaltyFee == nil) {
		return unsetFeeFallback()
	}
	f := CustomFee{
		Collector:           AccountIDFromWire(w.FeeCollectorAccountID),
		AllCollectorsExempt: w.AllCollectorsAreExempt,
	}
	switch {
	case w.FixedFee != nil:
		f.Type = FeeTypeFixed{
			Amount:            w.FixedFee.Amount,
			DenominatingToken: EntityIDFromWire(w.FixedFee.DenominatingTokenID),
		}
	case w.FractionalFee != nil:
		num, den := fractionFromWire(w.FractionalFee.FractionalAmount)
		f.Type = FeeTypeFractional{
			Numerator:   num,
			Denominator: den,
			Min:         w.FractionalFee.MinimumAmount,
			Max:         w.FractionalFee.MaximumAmount,
			Surcharge:   w.FractionalFee.NetOfTransfers,
		}
	default:
		num, den := fractionFromWire(w.RoyaltyFee.ExchangeValueFraction)
		t := FeeTypeRoyalty{Numerator: num, Denominator: den}
		if fb := w.RoyaltyFee.FallbackFee; fb != nil {
			t.FallbackAmount = fb.Amount
			t.FallbackToken = EntityIDFromWire(fb.DenominatingTokenID)
		}
		f.Type = t
	}
	return f
}

// CustomFeesFromWire decodes a fee schedule.
func CustomFeesFromWire(ws []*wire.CustomFee) []CustomFee {
	if len(ws) == 0 {
		return nil
	}
	fees := make([]CustomFee, len(ws))
	for i, w := range ws {
		fees[i] = CustomFeeFromWire(w)
	}
	return fees
}

func fractionFromWire(f *wire.Fraction) (num, den int64) {
	if f == nil {
		return 0, 0
	}
	return f.Numerator, f.Denominator
}

// An AssessedFee is a custom fee charged by an executed transaction.
type AssessedFee struct {
	Amount    int64
	Token     Address
	Collector Address
	Payers    []Address
}

// AssessedFeeFromWire decodes an assessed custom fee.
func AssessedFeeFromWire(w *wire.AssessedCustomFee) AssessedFee {
	f := AssessedFee{
		Amount:    w.Amount,
		Token:     EntityIDFromWire(w.TokenID),
		Collector: AccountIDFromWire(w.FeeCollectorAccountID),
	}
	for _, p := range w.EffectivePayers {
		f.Payers = append(f.Payers, AccountIDFromWire(p))
	}
	return f
}
