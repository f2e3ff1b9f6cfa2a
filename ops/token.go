package ops

import (
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// TokenCreate creates a fungible or non-fungible token.
type TokenCreate struct {
	Name          string
	Symbol        string
	NonFungible   bool
	Decimals      uint32
	InitialSupply uint64
	// MaxSupply caps the supply; zero means the supply is unbounded.
	MaxSupply        int64
	Treasury         types.Address
	AdminKey         types.Key
	KycKey           types.Key
	FreezeKey        types.Key
	WipeKey          types.Key
	SupplyKey        types.Key
	FeeScheduleKey   types.Key
	PauseKey         types.Key
	MetadataKey      types.Key
	FreezeDefault    bool
	Expiration       time.Time
	AutoRenewAccount types.Address
	AutoRenewPeriod  time.Duration
	Memo             string
	CustomFees       []types.CustomFee
	Metadata         []byte
}

// Tag implements Transaction.
func (TokenCreate) Tag() Tag { return TagTokenCreate }

func (p TokenCreate) buildBody() (wire.Message, error) {
	switch {
	case p.Name == "":
		return nil, errMissing("token name is required")
	case p.Symbol == "":
		return nil, errMissing("token symbol is required")
	case len(p.Name) > maxNameBytes:
		return nil, errRange("token name must not exceed %d bytes", maxNameBytes)
	case len(p.Symbol) > maxNameBytes:
		return nil, errRange("token symbol must not exceed %d bytes", maxNameBytes)
	case len(p.Metadata) > maxMetadataBytes:
		return nil, errRange("token metadata must not exceed %d bytes", maxMetadataBytes)
	case p.NonFungible && (p.Decimals != 0 || p.InitialSupply != 0):
		return nil, errConflict("decimals and initial supply must be zero for non-fungible tokens")
	case p.NonFungible && p.SupplyKey.IsNone():
		return nil, errMissing("non-fungible tokens require a supply key")
	case p.MaxSupply < 0:
		return nil, errRange("max supply must not be negative, got %d", p.MaxSupply)
	case p.MaxSupply > 0 && p.InitialSupply > uint64(p.MaxSupply):
		return nil, errRange("initial supply %d exceeds max supply %d", p.InitialSupply, p.MaxSupply)
	}
	if err := checkMemo(p.Memo); err != nil {
		return nil, err
	} else if err := checkAutoRenew(p.AutoRenewPeriod); err != nil {
		return nil, err
	}

	tokenType, supplyType := wire.TokenTypeFungibleCommon, wire.TokenSupplyInfinite
	if p.NonFungible {
		tokenType = wire.TokenTypeNonFungibleUnique
	}
	if p.MaxSupply > 0 {
		supplyType = wire.TokenSupplyFinite
	}
	var b builder
	body := &wire.TokenCreateTransactionBody{
		Name:             p.Name,
		Symbol:           p.Symbol,
		Decimals:         p.Decimals,
		InitialSupply:    p.InitialSupply,
		Treasury:         b.account("treasury", p.Treasury),
		AdminKey:         b.optKey("admin key", p.AdminKey),
		KycKey:           b.optKey("KYC key", p.KycKey),
		FreezeKey:        b.optKey("freeze key", p.FreezeKey),
		WipeKey:          b.optKey("wipe key", p.WipeKey),
		SupplyKey:        b.optKey("supply key", p.SupplyKey),
		FreezeDefault:    p.FreezeDefault,
		Expiry:           types.OptionalTimestamp(p.Expiration),
		AutoRenewAccount: b.optAccount("auto-renew account", p.AutoRenewAccount),
		AutoRenewPeriod:  types.DurationToWire(p.AutoRenewPeriod),
		Memo:             p.Memo,
		TokenType:        tokenType,
		SupplyType:       supplyType,
		MaxSupply:        p.MaxSupply,
		FeeScheduleKey:   b.optKey("fee schedule key", p.FeeScheduleKey),
		CustomFees:       b.fees(p.CustomFees, p.NonFungible),
		PauseKey:         b.optKey("pause key", p.PauseKey),
		Metadata:         p.Metadata,
		MetadataKey:      b.optKey("metadata key", p.MetadataKey),
	}
	return body, b.err
}

// TokenUpdate changes the properties of a token. Zero or nil fields are
// left unchanged.
type TokenUpdate struct {
	Token            types.Address
	Name             string
	Symbol           string
	Treasury         types.Address
	AdminKey         types.Key
	KycKey           types.Key
	FreezeKey        types.Key
	WipeKey          types.Key
	SupplyKey        types.Key
	FeeScheduleKey   types.Key
	PauseKey         types.Key
	MetadataKey      types.Key
	AutoRenewAccount types.Address
	AutoRenewPeriod  time.Duration
	Expiration       time.Time
	Memo             *string
	Metadata         []byte
}

// Tag implements Transaction.
func (TokenUpdate) Tag() Tag { return TagTokenUpdate }

func (p TokenUpdate) buildBody() (wire.Message, error) {
	if !anySet(p.Name != "", p.Symbol != "", !p.Treasury.IsNone(), !p.AdminKey.IsNone(), !p.KycKey.IsNone(),
		!p.FreezeKey.IsNone(), !p.WipeKey.IsNone(), !p.SupplyKey.IsNone(), !p.FeeScheduleKey.IsNone(),
		!p.PauseKey.IsNone(), !p.MetadataKey.IsNone(), !p.AutoRenewAccount.IsNone(), p.AutoRenewPeriod != 0,
		!p.Expiration.IsZero(), p.Memo != nil, p.Metadata != nil) {
		return nil, errConflict(errBlankUpdate)
	}
	switch {
	case len(p.Name) > maxNameBytes:
		return nil, errRange("token name must not exceed %d bytes", maxNameBytes)
	case len(p.Symbol) > maxNameBytes:
		return nil, errRange("token symbol must not exceed %d bytes", maxNameBytes)
	case len(p.Metadata) > maxMetadataBytes:
		return nil, errRange("token metadata must not exceed %d bytes", maxMetadataBytes)
	}
	if err := checkAutoRenew(p.AutoRenewPeriod); err != nil {
		return nil, err
	} else if p.Memo != nil {
		if err := checkMemo(*p.Memo); err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.TokenUpdateTransactionBody{
		Token:            b.token("token", p.Token),
		Symbol:           p.Symbol,
		Name:             p.Name,
		Treasury:         b.optAccount("treasury", p.Treasury),
		AdminKey:         b.optKey("admin key", p.AdminKey),
		KycKey:           b.optKey("KYC key", p.KycKey),
		FreezeKey:        b.optKey("freeze key", p.FreezeKey),
		WipeKey:          b.optKey("wipe key", p.WipeKey),
		SupplyKey:        b.optKey("supply key", p.SupplyKey),
		AutoRenewAccount: b.optAccount("auto-renew account", p.AutoRenewAccount),
		AutoRenewPeriod:  types.DurationToWire(p.AutoRenewPeriod),
		Expiry:           types.OptionalTimestamp(p.Expiration),
		Memo:             optionalString(p.Memo),
		FeeScheduleKey:   b.optKey("fee schedule key", p.FeeScheduleKey),
		PauseKey:         b.optKey("pause key", p.PauseKey),
		Metadata:         optionalBytes(p.Metadata),
		MetadataKey:      b.optKey("metadata key", p.MetadataKey),
	}
	return body, b.err
}

func tokenIDBody(token types.Address) (wire.Message, error) {
	var b builder
	body := &wire.TokenIDTransactionBody{Token: b.token("token", token)}
	return body, b.err
}

// TokenDelete deletes a token.
type TokenDelete struct {
	Token types.Address
}

// Tag implements Transaction.
func (TokenDelete) Tag() Tag { return TagTokenDelete }

func (p TokenDelete) buildBody() (wire.Message, error) { return tokenIDBody(p.Token) }

// TokenPause suspends all operations on a token.
type TokenPause struct {
	Token types.Address
}

// Tag implements Transaction.
func (TokenPause) Tag() Tag { return TagTokenPause }

func (p TokenPause) buildBody() (wire.Message, error) { return tokenIDBody(p.Token) }

// TokenUnpause reverses a TokenPause.
type TokenUnpause struct {
	Token types.Address
}

// Tag implements Transaction.
func (TokenUnpause) Tag() Tag { return TagTokenUnpause }

func (p TokenUnpause) buildBody() (wire.Message, error) { return tokenIDBody(p.Token) }

// checkSupplyChange checks the "amount or serials, not both" rule shared by
// mint, burn, and wipe.
func checkSupplyChange(amount uint64, serials int, what string) error {
	switch {
	case amount == 0 && serials == 0:
		return errMissing("an amount or %s is required", what)
	case amount != 0 && serials != 0:
		return errConflict("an amount and %s are mutually exclusive", what)
	}
	return nil
}

// TokenMint mints fungible units or NFTs. Exactly one of Amount and
// Metadata must be set; each metadata entry mints one NFT.
type TokenMint struct {
	Token    types.Address
	Amount   uint64
	Metadata [][]byte
}

// Tag implements Transaction.
func (TokenMint) Tag() Tag { return TagTokenMint }

func (p TokenMint) buildBody() (wire.Message, error) {
	if err := checkSupplyChange(p.Amount, len(p.Metadata), "metadata"); err != nil {
		return nil, err
	}
	for _, m := range p.Metadata {
		if len(m) > maxMetadataBytes {
			return nil, errRange("NFT metadata must not exceed %d bytes, got %d", maxMetadataBytes, len(m))
		}
	}
	var b builder
	body := &wire.TokenMintTransactionBody{
		Token:    b.token("token", p.Token),
		Amount:   p.Amount,
		Metadata: p.Metadata,
	}
	return body, b.err
}

// TokenBurn burns fungible units or NFTs from the treasury. Exactly one of
// Amount and Serials must be set.
type TokenBurn struct {
	Token   types.Address
	Amount  uint64
	Serials []int64
}

// Tag implements Transaction.
func (TokenBurn) Tag() Tag { return TagTokenBurn }

func (p TokenBurn) buildBody() (wire.Message, error) {
	if err := checkSupplyChange(p.Amount, len(p.Serials), "serials"); err != nil {
		return nil, err
	} else if err := checkSerials(p.Serials); err != nil {
		return nil, err
	}
	var b builder
	body := &wire.TokenBurnTransactionBody{
		Token:         b.token("token", p.Token),
		Amount:        p.Amount,
		SerialNumbers: p.Serials,
	}
	return body, b.err
}

// TokenWipe removes fungible units or NFTs from an account. Exactly one of
// Amount and Serials must be set.
type TokenWipe struct {
	Token   types.Address
	Account types.Address
	Amount  uint64
	Serials []int64
}

// Tag implements Transaction.
func (TokenWipe) Tag() Tag { return TagTokenWipe }

func (p TokenWipe) buildBody() (wire.Message, error) {
	if err := checkSupplyChange(p.Amount, len(p.Serials), "serials"); err != nil {
		return nil, err
	} else if err := checkSerials(p.Serials); err != nil {
		return nil, err
	}
	var b builder
	body := &wire.TokenWipeAccountTransactionBody{
		Token:         b.token("token", p.Token),
		Account:       b.account("account", p.Account),
		Amount:        p.Amount,
		SerialNumbers: p.Serials,
	}
	return body, b.err
}

// A TokenAccount names a token and one of its holders.
type TokenAccount struct {
	Token   types.Address
	Account types.Address
}

func (p TokenAccount) buildBody() (wire.Message, error) {
	var b builder
	body := &wire.TokenAccountTransactionBody{
		Token:   b.token("token", p.Token),
		Account: b.account("account", p.Account),
	}
	return body, b.err
}

// TokenFreeze freezes an account's balance of a token.
type TokenFreeze struct{ TokenAccount }

// TokenUnfreeze reverses a TokenFreeze.
type TokenUnfreeze struct{ TokenAccount }

// TokenGrantKyc marks an account as KYC-approved for a token.
type TokenGrantKyc struct{ TokenAccount }

// TokenRevokeKyc reverses a TokenGrantKyc.
type TokenRevokeKyc struct{ TokenAccount }

// Tag implements Transaction.
func (TokenFreeze) Tag() Tag { return TagTokenFreeze }

// Tag implements Transaction.
func (TokenUnfreeze) Tag() Tag { return TagTokenUnfreeze }

// Tag implements Transaction.
func (TokenGrantKyc) Tag() Tag { return TagTokenGrantKyc }

// Tag implements Transaction.
func (TokenRevokeKyc) Tag() Tag { return TagTokenRevokeKyc }

func associationBody(account types.Address, tokens []types.Address) (wire.Message, error) {
	if len(tokens) == 0 {
		return nil, errMissing("at least one token is required")
	}
	seen := make(map[types.Address]bool, len(tokens))
	var b builder
	body := &wire.TokenAssociationTransactionBody{Account: b.account("account", account)}
	for _, t := range tokens {
		if seen[t] {
			return nil, errConflict("token %v appears more than once", t)
		}
		seen[t] = true
		body.Tokens = append(body.Tokens, b.token("token", t))
	}
	return body, b.err
}

// TokenAssociate associates an account with tokens.
type TokenAssociate struct {
	Account types.Address
	Tokens  []types.Address
}

// Tag implements Transaction.
func (TokenAssociate) Tag() Tag { return TagTokenAssociate }

func (p TokenAssociate) buildBody() (wire.Message, error) {
	return associationBody(p.Account, p.Tokens)
}

// TokenDissociate dissociates an account from tokens.
type TokenDissociate struct {
	Account types.Address
	Tokens  []types.Address
}

// Tag implements Transaction.
func (TokenDissociate) Tag() Tag { return TagTokenDissociate }

func (p TokenDissociate) buildBody() (wire.Message, error) {
	return associationBody(p.Account, p.Tokens)
}

// TokenFeeScheduleUpdate replaces a token's custom fees. An empty schedule
// removes them all.
type TokenFeeScheduleUpdate struct {
	Token types.Address
	// NonFungible reports the kind of Token; each fee must suit it.
	NonFungible bool
	CustomFees  []types.CustomFee
}

// Tag implements Transaction.
func (TokenFeeScheduleUpdate) Tag() Tag { return TagTokenFeeScheduleUpdate }

func (p TokenFeeScheduleUpdate) buildBody() (wire.Message, error) {
	var b builder
	body := &wire.TokenFeeScheduleUpdateTransactionBody{
		TokenID:    b.token("token", p.Token),
		CustomFees: b.fees(p.CustomFees, p.NonFungible),
	}
	return body, b.err
}

// TokenUpdateNfts replaces the metadata of existing NFTs.
type TokenUpdateNfts struct {
	Token    types.Address
	Serials  []int64
	Metadata []byte
}

// Tag implements Transaction.
func (TokenUpdateNfts) Tag() Tag { return TagTokenUpdateNfts }

func (p TokenUpdateNfts) buildBody() (wire.Message, error) {
	switch {
	case len(p.Serials) == 0:
		return nil, errMissing("at least one serial is required")
	case p.Metadata == nil:
		return nil, errConflict(errBlankUpdate)
	case len(p.Metadata) > maxMetadataBytes:
		return nil, errRange("NFT metadata must not exceed %d bytes, got %d", maxMetadataBytes, len(p.Metadata))
	}
	if err := checkSerials(p.Serials); err != nil {
		return nil, err
	}
	var b builder
	body := &wire.TokenUpdateNftsTransactionBody{
		Token:         b.token("token", p.Token),
		SerialNumbers: p.Serials,
		Metadata:      optionalBytes(p.Metadata),
	}
	return body, b.err
}

// TokenReject returns fungible balances and NFTs to their treasuries.
type TokenReject struct {
	Owner  types.Address // None means the payer
	Tokens []types.Address
	Nfts   []types.NftID
}

// Tag implements Transaction.
func (TokenReject) Tag() Tag { return TagTokenReject }

func (p TokenReject) buildBody() (wire.Message, error) {
	switch n := len(p.Tokens) + len(p.Nfts); {
	case n == 0:
		return nil, errMissing("at least one token or NFT is required")
	case n > maxTokenRejections:
		return nil, errRange("at most %d rejections are allowed, got %d", maxTokenRejections, n)
	}
	seenTokens := make(map[types.Address]bool)
	seenNfts := make(map[types.NftID]bool)
	var b builder
	body := &wire.TokenRejectTransactionBody{Owner: b.optAccount("owner", p.Owner)}
	for _, t := range p.Tokens {
		if seenTokens[t] {
			return nil, errConflict("token %v appears more than once", t)
		}
		seenTokens[t] = true
		body.Rejections = append(body.Rejections, &wire.TokenReference{FungibleToken: b.token("token", t)})
	}
	for _, id := range p.Nfts {
		if seenNfts[id] {
			return nil, errConflict("NFT %v appears more than once", id)
		}
		seenNfts[id] = true
		body.Rejections = append(body.Rejections, &wire.TokenReference{NFT: b.nft("NFT", id)})
	}
	return body, b.err
}

// TokenAirdrop distributes tokens, leaving a pending airdrop for recipients
// that are not yet associated. Legs are netted per token and account.
type TokenAirdrop struct {
	Tokens   []types.TokenTransfer
	Nfts     []types.NftTransfer
	Decimals map[types.Address]uint32
}

// Tag implements Transaction.
func (TokenAirdrop) Tag() Tag { return TagTokenAirdrop }

func (p TokenAirdrop) buildBody() (wire.Message, error) {
	tl, err := types.NetTransferList(nil, p.Tokens, p.Nfts, p.Decimals)
	if err != nil {
		return nil, err
	}
	tokens, err := types.TokenTransfersToWire(tl.Tokens)
	if err != nil {
		return nil, err
	}
	return &wire.TokenAirdropTransactionBody{TokenTransfers: tokens}, nil
}

// A PendingAirdrop identifies an airdrop awaiting its receiver. A zero
// Serial identifies a fungible airdrop.
type PendingAirdrop struct {
	Sender   types.Address
	Receiver types.Address
	Token    types.Address
	Serial   int64
}

func pendingAirdropsBody(airdrops []PendingAirdrop) (wire.Message, error) {
	switch {
	case len(airdrops) == 0:
		return nil, errMissing("at least one pending airdrop is required")
	case len(airdrops) > maxPendingAirdrops:
		return nil, errRange("at most %d pending airdrops are allowed, got %d", maxPendingAirdrops, len(airdrops))
	}
	seen := make(map[PendingAirdrop]bool, len(airdrops))
	var b builder
	body := new(wire.TokenPendingAirdropTransactionBody)
	for _, a := range airdrops {
		if seen[a] {
			return nil, errConflict("pending airdrop of %v appears more than once", a.Token)
		} else if a.Serial < 0 {
			return nil, errRange("NFT serial number must be positive, got %d", a.Serial)
		}
		seen[a] = true
		id := &wire.PendingAirdropID{
			Sender:   b.account("sender", a.Sender),
			Receiver: b.account("receiver", a.Receiver),
		}
		if a.Serial == 0 {
			id.FungibleToken = b.token("token", a.Token)
		} else {
			id.NFT = b.nft("NFT", types.NftID{Token: a.Token, Serial: a.Serial})
		}
		body.PendingAirdrops = append(body.PendingAirdrops, id)
	}
	return body, b.err
}

// TokenCancelAirdrop cancels pending airdrops sent by the payer.
type TokenCancelAirdrop struct {
	Airdrops []PendingAirdrop
}

// Tag implements Transaction.
func (TokenCancelAirdrop) Tag() Tag { return TagTokenCancelAirdrop }

func (p TokenCancelAirdrop) buildBody() (wire.Message, error) {
	return pendingAirdropsBody(p.Airdrops)
}

// TokenClaimAirdrop claims pending airdrops addressed to the payer.
type TokenClaimAirdrop struct {
	Airdrops []PendingAirdrop
}

// Tag implements Transaction.
func (TokenClaimAirdrop) Tag() Tag { return TagTokenClaimAirdrop }

func (p TokenClaimAirdrop) buildBody() (wire.Message, error) {
	return pendingAirdropsBody(p.Airdrops)
}
