package wire

import (
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// An AccountID identifies an account either by number or by alias.
type AccountID struct {
	ShardNum int64
	RealmNum int64
	// exactly one of AccountNum or Alias is encoded; a non-nil Alias wins
	AccountNum int64
	Alias      []byte
}

// EncodeTo implements Message.
func (id *AccountID) EncodeTo(e *Encoder) {
	e.WriteInt64(1, id.ShardNum)
	e.WriteInt64(2, id.RealmNum)
	if id.Alias != nil {
		e.AppendBytes(4, id.Alias)
	} else {
		e.AppendVarint(3, uint64(id.AccountNum))
	}
}

// DecodeFrom implements DecoderFrom.
func (id *AccountID) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			id.ShardNum = d.ReadInt64()
		case 2:
			id.RealmNum = d.ReadInt64()
		case 3:
			id.AccountNum, id.Alias = d.ReadInt64(), nil
		case 4:
			id.Alias, id.AccountNum = d.ReadBytes(), 0
		default:
			d.Skip()
		}
	}
}

// A ContractID identifies a contract either by number or by EVM address.
type ContractID struct {
	ShardNum    int64
	RealmNum    int64
	ContractNum int64
	EVMAddress  []byte
}

// EncodeTo implements Message.
func (id *ContractID) EncodeTo(e *Encoder) {
	e.WriteInt64(1, id.ShardNum)
	e.WriteInt64(2, id.RealmNum)
	if id.EVMAddress != nil {
		e.AppendBytes(4, id.EVMAddress)
	} else {
		e.AppendVarint(3, uint64(id.ContractNum))
	}
}

// DecodeFrom implements DecoderFrom.
func (id *ContractID) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			id.ShardNum = d.ReadInt64()
		case 2:
			id.RealmNum = d.ReadInt64()
		case 3:
			id.ContractNum, id.EVMAddress = d.ReadInt64(), nil
		case 4:
			id.EVMAddress, id.ContractNum = d.ReadBytes(), 0
		default:
			d.Skip()
		}
	}
}

// An EntityID is the shard/realm/number triple shared by files, tokens,
// topics and schedules.
type EntityID struct {
	ShardNum  int64
	RealmNum  int64
	EntityNum int64
}

// EncodeTo implements Message.
func (id *EntityID) EncodeTo(e *Encoder) {
	e.WriteInt64(1, id.ShardNum)
	e.WriteInt64(2, id.RealmNum)
	e.WriteInt64(3, id.EntityNum)
}

// DecodeFrom implements DecoderFrom.
func (id *EntityID) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			id.ShardNum = d.ReadInt64()
		case 2:
			id.RealmNum = d.ReadInt64()
		case 3:
			id.EntityNum = d.ReadInt64()
		default:
			d.Skip()
		}
	}
}

// Entity identifiers that share the EntityID layout.
type (
	FileID     = EntityID
	TokenID    = EntityID
	TopicID    = EntityID
	ScheduleID = EntityID
)

// An NftID identifies a single serial of a non-fungible token.
type NftID struct {
	TokenID      *TokenID
	SerialNumber int64
}

// EncodeTo implements Message.
func (id *NftID) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, id.TokenID)
	e.WriteInt64(2, id.SerialNumber)
}

// DecodeFrom implements DecoderFrom.
func (id *NftID) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &id.TokenID)
		case 2:
			id.SerialNumber = d.ReadInt64()
		default:
			d.Skip()
		}
	}
}

// A Timestamp is a point in time with nanosecond precision.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// EncodeTo implements Message.
func (t *Timestamp) EncodeTo(e *Encoder) {
	e.WriteInt64(1, t.Seconds)
	e.WriteInt32(2, t.Nanos)
}

// DecodeFrom implements DecoderFrom.
func (t *Timestamp) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			t.Seconds = d.ReadInt64()
		case 2:
			t.Nanos = d.ReadInt32()
		default:
			d.Skip()
		}
	}
}

// TimestampSeconds is a point in time with second precision.
type TimestampSeconds struct {
	Seconds int64
}

// EncodeTo implements Message.
func (t *TimestampSeconds) EncodeTo(e *Encoder) { e.WriteInt64(1, t.Seconds) }

// DecodeFrom implements DecoderFrom.
func (t *TimestampSeconds) DecodeFrom(d *Decoder) {
	for d.Next() {
		if d.Field() == 1 {
			t.Seconds = d.ReadInt64()
		} else {
			d.Skip()
		}
	}
}

// Duration is a length of time in seconds.
type Duration struct {
	Seconds int64
}

// EncodeTo implements Message.
func (t *Duration) EncodeTo(e *Encoder) { e.WriteInt64(1, t.Seconds) }

// DecodeFrom implements DecoderFrom.
func (t *Duration) DecodeFrom(d *Decoder) {
	for d.Next() {
		if d.Field() == 1 {
			t.Seconds = d.ReadInt64()
		} else {
			d.Skip()
		}
	}
}

// A TransactionID uniquely identifies a transaction by its payer and the
// time from which it is valid.
type TransactionID struct {
	TransactionValidStart *Timestamp
	AccountID             *AccountID
	Scheduled             bool
	Nonce                 int32
}

// EncodeTo implements Message.
func (id *TransactionID) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, id.TransactionValidStart)
	EncodeMessage(e, 2, id.AccountID)
	e.WriteBool(3, id.Scheduled)
	e.WriteInt32(4, id.Nonce)
}

// DecodeFrom implements DecoderFrom.
func (id *TransactionID) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &id.TransactionValidStart)
		case 2:
			DecodeMessage(d, &id.AccountID)
		case 3:
			id.Scheduled = d.ReadBool()
		case 4:
			id.Nonce = d.ReadInt32()
		default:
			d.Skip()
		}
	}
}

// A Fraction is a rational number.
type Fraction struct {
	Numerator   int64
	Denominator int64
}

// EncodeTo implements Message.
func (f *Fraction) EncodeTo(e *Encoder) {
	e.WriteInt64(1, f.Numerator)
	e.WriteInt64(2, f.Denominator)
}

// DecodeFrom implements DecoderFrom.
func (f *Fraction) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			f.Numerator = d.ReadInt64()
		case 2:
			f.Denominator = d.ReadInt64()
		default:
			d.Skip()
		}
	}
}

// A Key is a signing requirement. At most one field is set; a Key with no
// field set was written by a newer schema than this one.
type Key struct {
	ContractID          *ContractID
	Ed25519             []byte
	RSA3072             []byte
	ECDSA384            []byte
	ThresholdKey        *ThresholdKey
	KeyList             *KeyList
	ECDSASecp256k1      []byte
	DelegatableContract *ContractID
}

// EncodeTo implements Message.
func (k *Key) EncodeTo(e *Encoder) {
	switch {
	case k.ContractID != nil:
		e.AppendMessage(1, k.ContractID)
	case k.Ed25519 != nil:
		e.AppendBytes(2, k.Ed25519)
	case k.RSA3072 != nil:
		e.AppendBytes(3, k.RSA3072)
	case k.ECDSA384 != nil:
		e.AppendBytes(4, k.ECDSA384)
	case k.ThresholdKey != nil:
		e.AppendMessage(5, k.ThresholdKey)
	case k.KeyList != nil:
		e.AppendMessage(6, k.KeyList)
	case k.ECDSASecp256k1 != nil:
		e.AppendBytes(7, k.ECDSASecp256k1)
	case k.DelegatableContract != nil:
		e.AppendMessage(8, k.DelegatableContract)
	}
}

// DecodeFrom implements DecoderFrom.
func (k *Key) DecodeFrom(d *Decoder) {
	for d.Next() {
		// a later member of the oneof replaces an earlier one
		switch f := d.Field(); f {
		case 1, 2, 3, 4, 5, 6, 7, 8:
			*k = Key{}
			switch f {
			case 1:
				DecodeMessage(d, &k.ContractID)
			case 2:
				k.Ed25519 = d.ReadBytes()
			case 3:
				k.RSA3072 = d.ReadBytes()
			case 4:
				k.ECDSA384 = d.ReadBytes()
			case 5:
				DecodeMessage(d, &k.ThresholdKey)
			case 6:
				DecodeMessage(d, &k.KeyList)
			case 7:
				k.ECDSASecp256k1 = d.ReadBytes()
			case 8:
				DecodeMessage(d, &k.DelegatableContract)
			}
		default:
			d.Skip()
		}
	}
}

// A ThresholdKey requires Threshold of its keys to sign.
type ThresholdKey struct {
	Threshold uint32
	Keys      *KeyList
}

// EncodeTo implements Message.
func (k *ThresholdKey) EncodeTo(e *Encoder) {
	e.WriteUint32(1, k.Threshold)
	EncodeMessage(e, 2, k.Keys)
}

// DecodeFrom implements DecoderFrom.
func (k *ThresholdKey) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			k.Threshold = d.ReadUint32()
		case 2:
			DecodeMessage(d, &k.Keys)
		default:
			d.Skip()
		}
	}
}

// A KeyList requires all of its keys to sign.
type KeyList struct {
	Keys []*Key
}

// EncodeTo implements Message.
func (k *KeyList) EncodeTo(e *Encoder) { EncodeRepeated(e, 1, k.Keys) }

// DecodeFrom implements DecoderFrom.
func (k *KeyList) DecodeFrom(d *Decoder) {
	for d.Next() {
		if d.Field() == 1 {
			DecodeRepeated(d, &k.Keys)
		} else {
			d.Skip()
		}
	}
}

// An AccountAmount is a single signed hbar movement.
type AccountAmount struct {
	AccountID  *AccountID
	Amount     int64 // sint64 on the wire
	IsApproval bool
}

// EncodeTo implements Message.
func (aa *AccountAmount) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, aa.AccountID)
	e.WriteSint64(2, aa.Amount)
	e.WriteBool(3, aa.IsApproval)
}

// DecodeFrom implements DecoderFrom.
func (aa *AccountAmount) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &aa.AccountID)
		case 2:
			aa.Amount = d.ReadSint64()
		case 3:
			aa.IsApproval = d.ReadBool()
		default:
			d.Skip()
		}
	}
}

// A TransferList is a balanced list of hbar movements.
type TransferList struct {
	AccountAmounts []*AccountAmount
}

// EncodeTo implements Message.
func (tl *TransferList) EncodeTo(e *Encoder) { EncodeRepeated(e, 1, tl.AccountAmounts) }

// DecodeFrom implements DecoderFrom.
func (tl *TransferList) DecodeFrom(d *Decoder) {
	for d.Next() {
		if d.Field() == 1 {
			DecodeRepeated(d, &tl.AccountAmounts)
		} else {
			d.Skip()
		}
	}
}

// An NftTransfer moves one serial between accounts.
type NftTransfer struct {
	SenderAccountID   *AccountID
	ReceiverAccountID *AccountID
	SerialNumber      int64
	IsApproval        bool
}

// EncodeTo implements Message.
func (t *NftTransfer) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, t.SenderAccountID)
	EncodeMessage(e, 2, t.ReceiverAccountID)
	e.WriteInt64(3, t.SerialNumber)
	e.WriteBool(4, t.IsApproval)
}

// DecodeFrom implements DecoderFrom.
func (t *NftTransfer) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &t.SenderAccountID)
		case 2:
			DecodeMessage(d, &t.ReceiverAccountID)
		case 3:
			t.SerialNumber = d.ReadInt64()
		case 4:
			t.IsApproval = d.ReadBool()
		default:
			d.Skip()
		}
	}
}

// A TokenTransferList groups the movements of a single token.
type TokenTransferList struct {
	Token            *TokenID
	Transfers        []*AccountAmount
	NftTransfers     []*NftTransfer
	ExpectedDecimals *wrapperspb.UInt32Value
}

// EncodeTo implements Message.
func (tl *TokenTransferList) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, tl.Token)
	EncodeRepeated(e, 2, tl.Transfers)
	EncodeRepeated(e, 3, tl.NftTransfers)
	e.WriteWrapper(4, tl.ExpectedDecimals)
}

// DecodeFrom implements DecoderFrom.
func (tl *TokenTransferList) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &tl.Token)
		case 2:
			DecodeRepeated(d, &tl.Transfers)
		case 3:
			DecodeRepeated(d, &tl.NftTransfers)
		case 4:
			tl.ExpectedDecimals = new(wrapperspb.UInt32Value)
			d.ReadWrapper(tl.ExpectedDecimals)
		default:
			d.Skip()
		}
	}
}

// A FixedFee charges a flat amount of hbar or of a token.
type FixedFee struct {
	Amount              int64
	DenominatingTokenID *TokenID
}

// EncodeTo implements Message.
func (f *FixedFee) EncodeTo(e *Encoder) {
	e.WriteInt64(1, f.Amount)
	EncodeMessage(e, 2, f.DenominatingTokenID)
}

// DecodeFrom implements DecoderFrom.
func (f *FixedFee) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			f.Amount = d.ReadInt64()
		case 2:
			DecodeMessage(d, &f.DenominatingTokenID)
		default:
			d.Skip()
		}
	}
}

// A FractionalFee charges a bounded fraction of each transferred amount.
type FractionalFee struct {
	FractionalAmount *Fraction
	MinimumAmount    int64
	MaximumAmount    int64
	NetOfTransfers   bool
}

// EncodeTo implements Message.
func (f *FractionalFee) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, f.FractionalAmount)
	e.WriteInt64(2, f.MinimumAmount)
	e.WriteInt64(3, f.MaximumAmount)
	e.WriteBool(4, f.NetOfTransfers)
}

// DecodeFrom implements DecoderFrom.
func (f *FractionalFee) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &f.FractionalAmount)
		case 2:
			f.MinimumAmount = d.ReadInt64()
		case 3:
			f.MaximumAmount = d.ReadInt64()
		case 4:
			f.NetOfTransfers = d.ReadBool()
		default:
			d.Skip()
		}
	}
}

// A RoyaltyFee charges a fraction of the value exchanged for an NFT, with a
// fixed fallback when no value is exchanged.
type RoyaltyFee struct {
	ExchangeValueFraction *Fraction
	FallbackFee           *FixedFee
}

// EncodeTo implements Message.
func (f *RoyaltyFee) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, f.ExchangeValueFraction)
	EncodeMessage(e, 2, f.FallbackFee)
}

// DecodeFrom implements DecoderFrom.
func (f *RoyaltyFee) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &f.ExchangeValueFraction)
		case 2:
			DecodeMessage(d, &f.FallbackFee)
		default:
			d.Skip()
		}
	}
}

// A CustomFee is one entry of a token's fee schedule. At most one of
// FixedFee, FractionalFee and RoyaltyFee is set.
type CustomFee struct {
	FixedFee               *FixedFee
	FractionalFee          *FractionalFee
	FeeCollectorAccountID  *AccountID
	RoyaltyFee             *RoyaltyFee
	AllCollectorsAreExempt bool
}

// EncodeTo implements Message.
func (f *CustomFee) EncodeTo(e *Encoder) {
	switch {
	case f.FixedFee != nil:
		e.AppendMessage(1, f.FixedFee)
	case f.FractionalFee != nil:
		e.AppendMessage(2, f.FractionalFee)
	}
	EncodeMessage(e, 3, f.FeeCollectorAccountID)
	if f.FixedFee == nil && f.FractionalFee == nil && f.RoyaltyFee != nil {
		e.AppendMessage(4, f.RoyaltyFee)
	}
	e.WriteBool(5, f.AllCollectorsAreExempt)
}

// DecodeFrom implements DecoderFrom.
func (f *CustomFee) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			f.FractionalFee, f.RoyaltyFee = nil, nil
			DecodeMessage(d, &f.FixedFee)
		case 2:
			f.FixedFee, f.RoyaltyFee = nil, nil
			DecodeMessage(d, &f.FractionalFee)
		case 3:
			DecodeMessage(d, &f.FeeCollectorAccountID)
		case 4:
			f.FixedFee, f.FractionalFee = nil, nil
			DecodeMessage(d, &f.RoyaltyFee)
		case 5:
			f.AllCollectorsAreExempt = d.ReadBool()
		default:
			d.Skip()
		}
	}
}

// An AssessedCustomFee is a custom fee charged by a transaction.
type AssessedCustomFee struct {
	Amount                int64
	TokenID               *TokenID
	FeeCollectorAccountID *AccountID
	EffectivePayers       []*AccountID
}

// EncodeTo implements Message.
func (f *AssessedCustomFee) EncodeTo(e *Encoder) {
	e.WriteInt64(1, f.Amount)
	EncodeMessage(e, 2, f.TokenID)
	EncodeMessage(e, 3, f.FeeCollectorAccountID)
	EncodeRepeated(e, 4, f.EffectivePayers)
}

// DecodeFrom implements DecoderFrom.
func (f *AssessedCustomFee) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			f.Amount = d.ReadInt64()
		case 2:
			DecodeMessage(d, &f.TokenID)
		case 3:
			DecodeMessage(d, &f.FeeCollectorAccountID)
		case 4:
			DecodeRepeated(d, &f.EffectivePayers)
		default:
			d.Skip()
		}
	}
}

// An ExchangeRate is the hbar to US cent rate until ExpirationTime.
type ExchangeRate struct {
	HbarEquiv      int32
	CentEquiv      int32
	ExpirationTime *TimestampSeconds
}

// EncodeTo implements Message.
func (r *ExchangeRate) EncodeTo(e *Encoder) {
	e.WriteInt32(1, r.HbarEquiv)
	e.WriteInt32(2, r.CentEquiv)
	EncodeMessage(e, 3, r.ExpirationTime)
}

// DecodeFrom implements DecoderFrom.
func (r *ExchangeRate) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			r.HbarEquiv = d.ReadInt32()
		case 2:
			r.CentEquiv = d.ReadInt32()
		case 3:
			DecodeMessage(d, &r.ExpirationTime)
		default:
			d.Skip()
		}
	}
}

// An ExchangeRateSet holds the current and next exchange rates.
type ExchangeRateSet struct {
	CurrentRate *ExchangeRate
	NextRate    *ExchangeRate
}

// EncodeTo implements Message.
func (s *ExchangeRateSet) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, s.CurrentRate)
	EncodeMessage(e, 2, s.NextRate)
}

// DecodeFrom implements DecoderFrom.
func (s *ExchangeRateSet) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &s.CurrentRate)
		case 2:
			DecodeMessage(d, &s.NextRate)
		default:
			d.Skip()
		}
	}
}

// A ServiceEndpoint is a network address of a node.
type ServiceEndpoint struct {
	IPAddressV4 []byte
	Port        int32
	DomainName  string
}

// EncodeTo implements Message.
func (s *ServiceEndpoint) EncodeTo(e *Encoder) {
	e.WriteBytes(1, s.IPAddressV4)
	e.WriteInt32(2, s.Port)
	e.WriteString(3, s.DomainName)
}

// DecodeFrom implements DecoderFrom.
func (s *ServiceEndpoint) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			s.IPAddressV4 = d.ReadBytes()
		case 2:
			s.Port = d.ReadInt32()
		case 3:
			s.DomainName = d.ReadString()
		default:
			d.Skip()
		}
	}
}

// A SemanticVersion is a major.minor.patch version.
type SemanticVersion struct {
	Major int32
	Minor int32
	Patch int32
	Pre   string
	Build string
}

// EncodeTo implements Message.
func (v *SemanticVersion) EncodeTo(e *Encoder) {
	e.WriteInt32(1, v.Major)
	e.WriteInt32(2, v.Minor)
	e.WriteInt32(3, v.Patch)
	e.WriteString(4, v.Pre)
	e.WriteString(5, v.Build)
}

// DecodeFrom implements DecoderFrom.
func (v *SemanticVersion) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			v.Major = d.ReadInt32()
		case 2:
			v.Minor = d.ReadInt32()
		case 3:
			v.Patch = d.ReadInt32()
		case 4:
			v.Pre = d.ReadString()
		case 5:
			v.Build = d.ReadString()
		default:
			d.Skip()
		}
	}
}
