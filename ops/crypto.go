package ops

import (
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// AccountCreate creates an account.
type AccountCreate struct {
	Key types.Key
	// Alias, if set, is the EVM address the account is reachable by.
	Alias                         *types.EVMAddress
	InitialBalance                types.Hbar
	ReceiverSignatureRequired     bool
	AutoRenewPeriod               time.Duration
	Memo                          string
	MaxAutomaticTokenAssociations int32
	StakedAccount                 types.Address
	StakedNode                    *int64
	DeclineStakingReward          bool
}

// Tag implements Transaction.
func (AccountCreate) Tag() Tag { return TagAccountCreate }

func (p AccountCreate) buildBody() (wire.Message, error) {
	switch {
	case p.Key.IsNone():
		return nil, errMissing("key is required")
	case p.InitialBalance < 0:
		return nil, errRange("initial balance must not be negative, got %v", p.InitialBalance)
	}
	for _, err := range []error{
		checkAutoRenew(p.AutoRenewPeriod),
		checkMemo(p.Memo),
		checkMaxAssociations(p.MaxAutomaticTokenAssociations),
		checkStaking(p.StakedAccount, p.StakedNode),
	} {
		if err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.CryptoCreateTransactionBody{
		Key:                           b.key("key", p.Key),
		InitialBalance:                uint64(p.InitialBalance),
		ReceiverSigRequired:           p.ReceiverSignatureRequired,
		AutoRenewPeriod:               types.DurationToWire(p.AutoRenewPeriod),
		Memo:                          p.Memo,
		MaxAutomaticTokenAssociations: p.MaxAutomaticTokenAssociations,
		StakedAccountID:               b.optAccount("staked account", p.StakedAccount),
		StakedNodeID:                  p.StakedNode,
		DeclineReward:                 p.DeclineStakingReward,
	}
	if p.Alias != nil {
		body.Alias = append([]byte(nil), p.Alias[:]...)
	}
	return body, b.err
}

// AccountUpdate changes the properties of an account. Zero or nil fields
// are left unchanged.
type AccountUpdate struct {
	Account                       types.Address
	Key                           types.Key
	AutoRenewPeriod               time.Duration
	Expiration                    time.Time
	ReceiverSignatureRequired     *bool
	Memo                          *string
	MaxAutomaticTokenAssociations *int32
	StakedAccount                 types.Address
	StakedNode                    *int64
	DeclineStakingReward          *bool
}

// Tag implements Transaction.
func (AccountUpdate) Tag() Tag { return TagAccountUpdate }

func (p AccountUpdate) buildBody() (wire.Message, error) {
	if !anySet(!p.Key.IsNone(), p.AutoRenewPeriod != 0, !p.Expiration.IsZero(), p.ReceiverSignatureRequired != nil,
		p.Memo != nil, p.MaxAutomaticTokenAssociations != nil, !p.StakedAccount.IsNone(), p.StakedNode != nil,
		p.DeclineStakingReward != nil) {
		return nil, errConflict(errBlankUpdate)
	} else if err := checkAutoRenew(p.AutoRenewPeriod); err != nil {
		return nil, err
	} else if err := checkStaking(p.StakedAccount, p.StakedNode); err != nil {
		return nil, err
	}
	if p.Memo != nil {
		if err := checkMemo(*p.Memo); err != nil {
			return nil, err
		}
	}
	if p.MaxAutomaticTokenAssociations != nil {
		if err := checkMaxAssociations(*p.MaxAutomaticTokenAssociations); err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.CryptoUpdateTransactionBody{
		AccountIDToUpdate:             b.account("account", p.Account),
		Key:                           b.optKey("key", p.Key),
		AutoRenewPeriod:               types.DurationToWire(p.AutoRenewPeriod),
		ExpirationTime:                types.OptionalTimestamp(p.Expiration),
		ReceiverSigRequired:           optionalBool(p.ReceiverSignatureRequired),
		Memo:                          optionalString(p.Memo),
		MaxAutomaticTokenAssociations: optionalInt32(p.MaxAutomaticTokenAssociations),
		StakedAccountID:               b.optAccount("staked account", p.StakedAccount),
		StakedNodeID:                  p.StakedNode,
		DeclineReward:                 optionalBool(p.DeclineStakingReward),
	}
	return body, b.err
}

// AccountDelete deletes an account, moving its remaining balance to
// TransferAccount.
type AccountDelete struct {
	Account         types.Address
	TransferAccount types.Address
}

// Tag implements Transaction.
func (AccountDelete) Tag() Tag { return TagAccountDelete }

func (p AccountDelete) buildBody() (wire.Message, error) {
	if !p.Account.IsNone() && p.Account == p.TransferAccount {
		return nil, errConflict("transfer account must differ from the deleted account")
	}
	var b builder
	body := &wire.CryptoDeleteTransactionBody{
		TransferAccountID: b.account("transfer account", p.TransferAccount),
		DeleteAccountID:   b.account("account", p.Account),
	}
	return body, b.err
}

// Transfer moves hbar, fungible tokens, and NFTs between accounts. Legs are
// netted per account before encoding.
type Transfer struct {
	Hbar   []types.HbarTransfer
	Tokens []types.TokenTransfer
	Nfts   []types.NftTransfer
	// Decimals optionally records the expected decimals of a token, which
	// the network checks against the token's actual decimals.
	Decimals map[types.Address]uint32
}

// Tag implements Transaction.
func (Transfer) Tag() Tag { return TagTransfer }

func (p Transfer) buildBody() (wire.Message, error) {
	tl, err := types.NetTransferList(p.Hbar, p.Tokens, p.Nfts, p.Decimals)
	if err != nil {
		return nil, err
	}
	hbar, tokens, err := tl.ToWire()
	if err != nil {
		return nil, err
	}
	return &wire.CryptoTransferTransactionBody{Transfers: hbar, TokenTransfers: tokens}, nil
}

// An HbarAllowance lets Spender transfer up to Amount of Owner's hbar.
type HbarAllowance struct {
	Owner   types.Address // None means the payer
	Spender types.Address
	Amount  types.Hbar
}

// A TokenAllowance lets Spender transfer up to Amount of Owner's fungible
// Token.
type TokenAllowance struct {
	Token   types.Address
	Owner   types.Address // None means the payer
	Spender types.Address
	Amount  int64
}

// An NftAllowance lets Spender transfer the listed serials of Owner's NFTs,
// or all of them.
type NftAllowance struct {
	Token             types.Address
	Owner             types.Address // None means the payer
	Spender           types.Address
	Serials           []int64
	AllSerials        *bool
	DelegatingSpender types.Address
}

// AccountAllowanceApprove grants allowances.
type AccountAllowanceApprove struct {
	Hbar   []HbarAllowance
	Tokens []TokenAllowance
	Nfts   []NftAllowance
}

// Tag implements Transaction.
func (AccountAllowanceApprove) Tag() Tag { return TagAccountAllowanceApprove }

func (p AccountAllowanceApprove) buildBody() (wire.Message, error) {
	if len(p.Hbar)+len(p.Tokens)+len(p.Nfts) == 0 {
		return nil, errMissing("at least one allowance is required")
	}
	var b builder
	body := new(wire.CryptoApproveAllowanceTransactionBody)
	for _, a := range p.Hbar {
		if a.Amount < 0 {
			return nil, errRange("allowance amount must not be negative, got %v", a.Amount)
		}
		body.CryptoAllowances = append(body.CryptoAllowances, &wire.CryptoAllowance{
			Owner:   b.optAccount("owner", a.Owner),
			Spender: b.account("spender", a.Spender),
			Amount:  int64(a.Amount),
		})
	}
	for _, a := range p.Tokens {
		if a.Amount < 0 {
			return nil, errRange("allowance amount must not be negative, got %d", a.Amount)
		}
		body.TokenAllowances = append(body.TokenAllowances, &wire.TokenAllowance{
			TokenID: b.token("token", a.Token),
			Owner:   b.optAccount("owner", a.Owner),
			Spender: b.account("spender", a.Spender),
			Amount:  a.Amount,
		})
	}
	for _, a := range p.Nfts {
		if len(a.Serials) > 0 && a.AllSerials != nil && *a.AllSerials {
			return nil, errConflict("serials and all-serials approval are mutually exclusive")
		} else if len(a.Serials) == 0 && a.AllSerials == nil {
			return nil, errMissing("NFT allowance requires serials or an all-serials approval")
		} else if err := checkSerials(a.Serials); err != nil {
			return nil, err
		}
		body.NftAllowances = append(body.NftAllowances, &wire.NftAllowance{
			TokenID:           b.token("token", a.Token),
			Owner:             b.optAccount("owner", a.Owner),
			Spender:           b.account("spender", a.Spender),
			SerialNumbers:     a.Serials,
			ApprovedForAll:    optionalBool(a.AllSerials),
			DelegatingSpender: b.optAccount("delegating spender", a.DelegatingSpender),
		})
	}
	return body, b.err
}

// An NftAllowanceRemoval revokes every allowance on the listed serials.
type NftAllowanceRemoval struct {
	Token   types.Address
	Owner   types.Address // None means the payer
	Serials []int64
}

// AccountAllowanceDelete removes NFT allowances.
type AccountAllowanceDelete struct {
	Nfts []NftAllowanceRemoval
}

// Tag implements Transaction.
func (AccountAllowanceDelete) Tag() Tag { return TagAccountAllowanceDelete }

func (p AccountAllowanceDelete) buildBody() (wire.Message, error) {
	if len(p.Nfts) == 0 {
		return nil, errMissing("at least one allowance removal is required")
	}
	var b builder
	body := new(wire.CryptoDeleteAllowanceTransactionBody)
	for _, r := range p.Nfts {
		if len(r.Serials) == 0 {
			return nil, errMissing("allowance removal for %v requires serials", r.Token)
		} else if err := checkSerials(r.Serials); err != nil {
			return nil, err
		}
		body.NftAllowances = append(body.NftAllowances, &wire.NftRemoveAllowance{
			TokenID:       b.token("token", r.Token),
			Owner:         b.optAccount("owner", r.Owner),
			SerialNumbers: r.Serials,
		})
	}
	return body, b.err
}
