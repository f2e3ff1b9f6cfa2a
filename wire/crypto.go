package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// encodeStake writes the staked_id oneof at field numbers acct and acct+1.
func encodeStake(e *Encoder, acct protowire.Number, account *AccountID, node *int64) {
	if account != nil {
		e.AppendMessage(acct, account)
	} else if node != nil {
		e.AppendVarint(acct+1, uint64(*node))
	}
}

// CryptoCreateTransactionBody creates an account.
type CryptoCreateTransactionBody struct {
	Key                           *Key
	InitialBalance                uint64
	ReceiverSigRequired           bool
	AutoRenewPeriod               *Duration
	Memo                          string
	MaxAutomaticTokenAssociations int32
	StakedAccountID               *AccountID
	StakedNodeID                  *int64
	DeclineReward                 bool
	Alias                         []byte
}

// EncodeTo implements Message.
func (b *CryptoCreateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Key)
	e.WriteUint64(2, b.InitialBalance)
	e.WriteBool(8, b.ReceiverSigRequired)
	EncodeMessage(e, 9, b.AutoRenewPeriod)
	e.WriteString(13, b.Memo)
	e.WriteInt32(14, b.MaxAutomaticTokenAssociations)
	encodeStake(e, 15, b.StakedAccountID, b.StakedNodeID)
	e.WriteBool(17, b.DeclineReward)
	e.WriteBytes(18, b.Alias)
}

// CryptoUpdateTransactionBody modifies an account.
type CryptoUpdateTransactionBody struct {
	AccountIDToUpdate             *AccountID
	Key                           *Key
	AutoRenewPeriod               *Duration
	ExpirationTime                *Timestamp
	ReceiverSigRequired           *wrapperspb.BoolValue
	Memo                          *wrapperspb.StringValue
	MaxAutomaticTokenAssociations *wrapperspb.Int32Value
	StakedAccountID               *AccountID
	StakedNodeID                  *int64
	DeclineReward                 *wrapperspb.BoolValue
}

// EncodeTo implements Message.
func (b *CryptoUpdateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 2, b.AccountIDToUpdate)
	EncodeMessage(e, 3, b.Key)
	EncodeMessage(e, 8, b.AutoRenewPeriod)
	EncodeMessage(e, 9, b.ExpirationTime)
	e.WriteWrapper(13, b.ReceiverSigRequired)
	e.WriteWrapper(14, b.Memo)
	e.WriteWrapper(15, b.MaxAutomaticTokenAssociations)
	encodeStake(e, 16, b.StakedAccountID, b.StakedNodeID)
	e.WriteWrapper(18, b.DeclineReward)
}

// CryptoDeleteTransactionBody deletes an account, moving its balance to
// TransferAccountID.
type CryptoDeleteTransactionBody struct {
	TransferAccountID *AccountID
	DeleteAccountID   *AccountID
}

// EncodeTo implements Message.
func (b *CryptoDeleteTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.TransferAccountID)
	EncodeMessage(e, 2, b.DeleteAccountID)
}

// CryptoTransferTransactionBody moves hbar and tokens between accounts.
type CryptoTransferTransactionBody struct {
	Transfers      *TransferList
	TokenTransfers []*TokenTransferList
}

// EncodeTo implements Message.
func (b *CryptoTransferTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Transfers)
	EncodeRepeated(e, 2, b.TokenTransfers)
}

// DecodeFrom implements DecoderFrom.
func (b *CryptoTransferTransactionBody) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &b.Transfers)
		case 2:
			DecodeRepeated(d, &b.TokenTransfers)
		default:
			d.Skip()
		}
	}
}

// A CryptoAllowance lets Spender spend up to Amount of Owner's hbar.
type CryptoAllowance struct {
	Owner   *AccountID
	Spender *AccountID
	Amount  int64
}

// EncodeTo implements Message.
func (a *CryptoAllowance) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, a.Owner)
	EncodeMessage(e, 2, a.Spender)
	e.WriteInt64(3, a.Amount)
}

// An NftAllowance lets Spender transfer some or all of Owner's serials.
type NftAllowance struct {
	TokenID           *TokenID
	Owner             *AccountID
	Spender           *AccountID
	SerialNumbers     []int64
	ApprovedForAll    *wrapperspb.BoolValue
	DelegatingSpender *AccountID
}

// EncodeTo implements Message.
func (a *NftAllowance) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, a.TokenID)
	EncodeMessage(e, 2, a.Owner)
	EncodeMessage(e, 3, a.Spender)
	e.WritePackedInt64(4, a.SerialNumbers)
	e.WriteWrapper(5, a.ApprovedForAll)
	EncodeMessage(e, 6, a.DelegatingSpender)
}

// A TokenAllowance lets Spender spend up to Amount of Owner's token balance.
type TokenAllowance struct {
	TokenID *TokenID
	Owner   *AccountID
	Spender *AccountID
	Amount  int64
}

// EncodeTo implements Message.
func (a *TokenAllowance) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, a.TokenID)
	EncodeMessage(e, 2, a.Owner)
	EncodeMessage(e, 3, a.Spender)
	e.WriteInt64(4, a.Amount)
}

// CryptoApproveAllowanceTransactionBody grants allowances.
type CryptoApproveAllowanceTransactionBody struct {
	CryptoAllowances []*CryptoAllowance
	NftAllowances    []*NftAllowance
	TokenAllowances  []*TokenAllowance
}

// EncodeTo implements Message.
func (b *CryptoApproveAllowanceTransactionBody) EncodeTo(e *Encoder) {
	EncodeRepeated(e, 1, b.CryptoAllowances)
	EncodeRepeated(e, 2, b.NftAllowances)
	EncodeRepeated(e, 3, b.TokenAllowances)
}

// An NftRemoveAllowance revokes the allowances on specific serials.
type NftRemoveAllowance struct {
	TokenID       *TokenID
	Owner         *AccountID
	SerialNumbers []int64
}

// EncodeTo implements Message.
func (a *NftRemoveAllowance) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, a.TokenID)
	EncodeMessage(e, 2, a.Owner)
	e.WritePackedInt64(3, a.SerialNumbers)
}

// CryptoDeleteAllowanceTransactionBody revokes NFT allowances.
type CryptoDeleteAllowanceTransactionBody struct {
	NftAllowances []*NftRemoveAllowance
}

// EncodeTo implements Message.
func (b *CryptoDeleteAllowanceTransactionBody) EncodeTo(e *Encoder) {
	EncodeRepeated(e, 2, b.NftAllowances)
}
