package wire

import "google.golang.org/protobuf/types/known/wrapperspb"

// Token types.
const (
	TokenTypeFungibleCommon    int32 = 0
	TokenTypeNonFungibleUnique int32 = 1
)

// Token supply types.
const (
	TokenSupplyInfinite int32 = 0
	TokenSupplyFinite   int32 = 1
)

// TokenCreateTransactionBody creates a token.
type TokenCreateTransactionBody struct {
	Name             string
	Symbol           string
	Decimals         uint32
	InitialSupply    uint64
	Treasury         *AccountID
	AdminKey         *Key
	KycKey           *Key
	FreezeKey        *Key
	WipeKey          *Key
	SupplyKey        *Key
	FreezeDefault    bool
	Expiry           *Timestamp
	AutoRenewAccount *AccountID
	AutoRenewPeriod  *Duration
	Memo             string
	TokenType        int32
	SupplyType       int32
	MaxSupply        int64
	FeeScheduleKey   *Key
	CustomFees       []*CustomFee
	PauseKey         *Key
	Metadata         []byte
	MetadataKey      *Key
}

// EncodeTo implements Message.
func (b *TokenCreateTransactionBody) EncodeTo(e *Encoder) {
	e.WriteString(1, b.Name)
	e.WriteString(2, b.Symbol)
	e.WriteUint32(3, b.Decimals)
	e.WriteUint64(4, b.InitialSupply)
	EncodeMessage(e, 5, b.Treasury)
	EncodeMessage(e, 6, b.AdminKey)
	EncodeMessage(e, 7, b.KycKey)
	EncodeMessage(e, 8, b.FreezeKey)
	EncodeMessage(e, 9, b.WipeKey)
	EncodeMessage(e, 10, b.SupplyKey)
	e.WriteBool(11, b.FreezeDefault)
	EncodeMessage(e, 13, b.Expiry)
	EncodeMessage(e, 14, b.AutoRenewAccount)
	EncodeMessage(e, 15, b.AutoRenewPeriod)
	e.WriteString(16, b.Memo)
	e.WriteInt32(17, b.TokenType)
	e.WriteInt32(18, b.SupplyType)
	e.WriteInt64(19, b.MaxSupply)
	EncodeMessage(e, 20, b.FeeScheduleKey)
	EncodeRepeated(e, 21, b.CustomFees)
	EncodeMessage(e, 22, b.PauseKey)
	e.WriteBytes(23, b.Metadata)
	EncodeMessage(e, 24, b.MetadataKey)
}

// TokenUpdateTransactionBody modifies a token.
type TokenUpdateTransactionBody struct {
	Token            *TokenID
	Symbol           string
	Name             string
	Treasury         *AccountID
	AdminKey         *Key
	KycKey           *Key
	FreezeKey        *Key
	WipeKey          *Key
	SupplyKey        *Key
	AutoRenewAccount *AccountID
	AutoRenewPeriod  *Duration
	Expiry           *Timestamp
	Memo             *wrapperspb.StringValue
	FeeScheduleKey   *Key
	PauseKey         *Key
	Metadata         *wrapperspb.BytesValue
	MetadataKey      *Key
}

// EncodeTo implements Message.
func (b *TokenUpdateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Token)
	e.WriteString(2, b.Symbol)
	e.WriteString(3, b.Name)
	EncodeMessage(e, 4, b.Treasury)
	EncodeMessage(e, 5, b.AdminKey)
	EncodeMessage(e, 6, b.KycKey)
	EncodeMessage(e, 7, b.FreezeKey)
	EncodeMessage(e, 8, b.WipeKey)
	EncodeMessage(e, 9, b.SupplyKey)
	EncodeMessage(e, 10, b.AutoRenewAccount)
	EncodeMessage(e, 11, b.AutoRenewPeriod)
	EncodeMessage(e, 12, b.Expiry)
	e.WriteWrapper(13, b.Memo)
	EncodeMessage(e, 14, b.FeeScheduleKey)
	EncodeMessage(e, 15, b.PauseKey)
	e.WriteWrapper(16, b.Metadata)
	EncodeMessage(e, 17, b.MetadataKey)
}

// TokenIDTransactionBody is the layout shared by token delete, pause and
// unpause.
type TokenIDTransactionBody struct {
	Token *TokenID
}

// EncodeTo implements Message.
func (b *TokenIDTransactionBody) EncodeTo(e *Encoder) { EncodeMessage(e, 1, b.Token) }

// TokenMintTransactionBody mints fungible supply or NFT serials.
type TokenMintTransactionBody struct {
	Token    *TokenID
	Amount   uint64
	Metadata [][]byte
}

// EncodeTo implements Message.
func (b *TokenMintTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Token)
	e.WriteUint64(2, b.Amount)
	e.WriteRepeatedBytes(3, b.Metadata)
}

// TokenBurnTransactionBody burns fungible supply or NFT serials from the
// treasury.
type TokenBurnTransactionBody struct {
	Token         *TokenID
	Amount        uint64
	SerialNumbers []int64
}

// EncodeTo implements Message.
func (b *TokenBurnTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Token)
	e.WriteUint64(2, b.Amount)
	e.WritePackedInt64(3, b.SerialNumbers)
}

// TokenWipeAccountTransactionBody wipes balance or serials from an account.
type TokenWipeAccountTransactionBody struct {
	Token         *TokenID
	Account       *AccountID
	Amount        uint64
	SerialNumbers []int64
}

// EncodeTo implements Message.
func (b *TokenWipeAccountTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Token)
	EncodeMessage(e, 2, b.Account)
	e.WriteUint64(3, b.Amount)
	e.WritePackedInt64(4, b.SerialNumbers)
}

// TokenAccountTransactionBody is the layout shared by freeze, unfreeze,
// grant KYC and revoke KYC.
type TokenAccountTransactionBody struct {
	Token   *TokenID
	Account *AccountID
}

// EncodeTo implements Message.
func (b *TokenAccountTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Token)
	EncodeMessage(e, 2, b.Account)
}

// TokenAssociationTransactionBody is the layout shared by associate and
// dissociate.
type TokenAssociationTransactionBody struct {
	Account *AccountID
	Tokens  []*TokenID
}

// EncodeTo implements Message.
func (b *TokenAssociationTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Account)
	EncodeRepeated(e, 2, b.Tokens)
}

// TokenFeeScheduleUpdateTransactionBody replaces a token's custom fees.
type TokenFeeScheduleUpdateTransactionBody struct {
	TokenID    *TokenID
	CustomFees []*CustomFee
}

// EncodeTo implements Message.
func (b *TokenFeeScheduleUpdateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.TokenID)
	EncodeRepeated(e, 2, b.CustomFees)
}

// TokenUpdateNftsTransactionBody replaces the metadata of NFT serials.
type TokenUpdateNftsTransactionBody struct {
	Token         *TokenID
	SerialNumbers []int64
	Metadata      *wrapperspb.BytesValue
}

// EncodeTo implements Message.
func (b *TokenUpdateNftsTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Token)
	e.WritePackedInt64(2, b.SerialNumbers)
	e.WriteWrapper(3, b.Metadata)
}

// A TokenReference names either a fungible token or a single NFT.
type TokenReference struct {
	FungibleToken *TokenID
	NFT           *NftID
}

// EncodeTo implements Message.
func (r *TokenReference) EncodeTo(e *Encoder) {
	if r.FungibleToken != nil {
		e.AppendMessage(1, r.FungibleToken)
	} else if r.NFT != nil {
		e.AppendMessage(2, r.NFT)
	}
}

// TokenRejectTransactionBody returns tokens to their treasuries.
type TokenRejectTransactionBody struct {
	Owner      *AccountID
	Rejections []*TokenReference
}

// EncodeTo implements Message.
func (b *TokenRejectTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.Owner)
	EncodeRepeated(e, 2, b.Rejections)
}

// TokenAirdropTransactionBody sends tokens to accounts that may not yet be
// associated with them.
type TokenAirdropTransactionBody struct {
	TokenTransfers []*TokenTransferList
}

// EncodeTo implements Message.
func (b *TokenAirdropTransactionBody) EncodeTo(e *Encoder) {
	EncodeRepeated(e, 1, b.TokenTransfers)
}

// A PendingAirdropID identifies an airdrop awaiting its receiver.
type PendingAirdropID struct {
	Sender        *AccountID
	Receiver      *AccountID
	FungibleToken *TokenID
	NFT           *NftID
}

// EncodeTo implements Message.
func (id *PendingAirdropID) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, id.Sender)
	EncodeMessage(e, 2, id.Receiver)
	if id.FungibleToken != nil {
		e.AppendMessage(3, id.FungibleToken)
	} else if id.NFT != nil {
		e.AppendMessage(4, id.NFT)
	}
}

// TokenPendingAirdropTransactionBody is the layout shared by cancel and claim
// airdrop.
type TokenPendingAirdropTransactionBody struct {
	PendingAirdrops []*PendingAirdropID
}

// EncodeTo implements Message.
func (b *TokenPendingAirdropTransactionBody) EncodeTo(e *Encoder) {
	EncodeRepeated(e, 1, b.PendingAirdrops)
}
