package types

import (
	"fmt"
	"time"

	"go.hashgraph.tech/core/wire"
)

// An AccountBalance is the hbar and token holdings of an account or
// contract.
type AccountBalance struct {
	Account Address
	Hbar    Hbar
	// Tokens maps each token to the balance held, in the token's smallest
	// unit.
	Tokens   map[Address]uint64
	Decimals map[Address]uint32
}

// AccountBalanceFromWire decodes a balance response.
func AccountBalanceFromWire(w *wire.CryptoGetAccountBalanceResponse) AccountBalance {
	b := AccountBalance{
		Account: AccountIDFromWire(w.AccountID),
		Hbar:    Hbar(w.Balance),
	}
	for _, tb := range w.TokenBalances {
		if b.Tokens == nil {
			b.Tokens = make(map[Address]uint64)
			b.Decimals = make(map[Address]uint32)
		}
		token := EntityIDFromWire(tb.TokenID)
		b.Tokens[token] = tb.Balance
		b.Decimals[token] = tb.Decimals
	}
	return b
}

// AccountInfo describes an account.
type AccountInfo struct {
	Account                       Address
	ContractAccountID             string
	Deleted                       bool
	Key                           Key
	Balance                       Hbar
	ReceiverSignatureRequired     bool
	Expiration                    time.Time
	AutoRenewPeriod               time.Duration
	Memo                          string
	OwnedNfts                     int64
	MaxAutomaticTokenAssociations int32
	Alias                         []byte
	LedgerID                      []byte
	EthereumNonce                 int64
}

// AccountInfoFromWire decodes account info.
func AccountInfoFromWire(w *wire.AccountInfo) (AccountInfo, error) {
	if w == nil {
		return AccountInfo{}, errProtocol("missing account info")
	}
	key, err := KeyFromWire(w.Key)
	if err != nil {
		return AccountInfo{}, fmt.Errorf("account key: %w", err)
	}
	return AccountInfo{
		Account:                       AccountIDFromWire(w.AccountID),
		ContractAccountID:             w.ContractAccountID,
		Deleted:                       w.Deleted,
		Key:                           key,
		Balance:                       Hbar(w.Balance),
		ReceiverSignatureRequired:     w.ReceiverSigRequired,
		Expiration:                    TimestampFromWire(w.ExpirationTime),
		AutoRenewPeriod:               DurationFromWire(w.AutoRenewPeriod),
		Memo:                          w.Memo,
		OwnedNfts:                     w.OwnedNfts,
		MaxAutomaticTokenAssociations: w.MaxAutomaticTokenAssociations,
		Alias:                         w.Alias,
		LedgerID:                      w.LedgerID,
		EthereumNonce:                 w.EthereumNonce,
	}, nil
}

// FileInfo describes a file.
type FileInfo struct {
	File       Address
	Size       int64
	Expiration time.Time
	Deleted    bool
	Keys       []Key
	Memo       string
	LedgerID   []byte
}

// FileInfoFromWire decodes file info.
func FileInfoFromWire(w *wire.FileInfo) (FileInfo, error) {
	if w == nil {
		return FileInfo{}, errProtocol("missing file info")
	}
	keys, err := KeyListFromWire(w.Keys)
	if err != nil {
		return FileInfo{}, fmt.Errorf("file keys: %w", err)
	}
	return FileInfo{
		File:       EntityIDFromWire(w.FileID),
		Size:       w.Size,
		Expiration: TimestampFromWire(w.ExpirationTime),
		Deleted:    w.Deleted,
		Keys:       keys,
		Memo:       w.Memo,
		LedgerID:   w.LedgerID,
	}, nil
}

// ContractInfo describes a contract.
type ContractInfo struct {
	Contract                      Address
	Account                       Address
	ContractAccountID             string
	AdminKey                      Key
	Expiration                    time.Time
	AutoRenewPeriod               time.Duration
	AutoRenewAccount              Address
	Storage                       int64
	Memo                          string
	Balance                       Hbar
	Deleted                       bool
	MaxAutomaticTokenAssociations int32
	LedgerID                      []byte
}

// ContractInfoFromWire decodes contract info.
func ContractInfoFromWire(w *wire.ContractInfo) (ContractInfo, error) {
	if w == nil {
		return ContractInfo{}, errProtocol("missing contract info")
	}
	key, err := KeyFromWire(w.AdminKey)
	if err != nil {
		return ContractInfo{}, fmt.Errorf("admin key: %w", err)
	}
	return ContractInfo{
		Contract:                      ContractIDFromWire(w.ContractID),
		Account:                       AccountIDFromWire(w.AccountID),
		ContractAccountID:             w.ContractAccountID,
		AdminKey:                      key,
		Expiration:                    TimestampFromWire(w.ExpirationTime),
		AutoRenewPeriod:               DurationFromWire(w.AutoRenewPeriod),
		AutoRenewAccount:              AccountIDFromWire(w.AutoRenewAccountID),
		Storage:                       w.Storage,
		Memo:                          w.Memo,
		Balance:                       Hbar(w.Balance),
		Deleted:                       w.Deleted,
		MaxAutomaticTokenAssociations: w.MaxAutomaticTokenAssociations,
		LedgerID:                      w.LedgerID,
	}, nil
}

// TopicInfo describes a consensus topic.
type TopicInfo struct {
	Topic            Address
	Memo             string
	RunningHash      []byte
	SequenceNumber   uint64
	Expiration       time.Time
	AdminKey         Key
	SubmitKey        Key
	AutoRenewPeriod  time.Duration
	AutoRenewAccount Address
	LedgerID         []byte
}

// TopicInfoFromWire decodes topic info.
func TopicInfoFromWire(topic *wire.TopicID, w *wire.ConsensusTopicInfo) (TopicInfo, error) {
	if w == nil {
		return TopicInfo{}, errProtocol("missing topic info")
	}
	admin, err := KeyFromWire(w.AdminKey)
	if err != nil {
		return TopicInfo{}, fmt.Errorf("admin key: %w", err)
	}
	submit, err := KeyFromWire(w.SubmitKey)
	if err != nil {
		return TopicInfo{}, fmt.Errorf("submit key: %w", err)
	}
	return TopicInfo{
		Topic:            EntityIDFromWire(topic),
		Memo:             w.Memo,
		RunningHash:      w.RunningHash,
		SequenceNumber:   w.SequenceNumber,
		Expiration:       TimestampFromWire(w.ExpirationTime),
		AdminKey:         admin,
		SubmitKey:        submit,
		AutoRenewPeriod:  DurationFromWire(w.AutoRenewPeriod),
		AutoRenewAccount: AccountIDFromWire(w.AutoRenewAccount),
		LedgerID:         w.LedgerID,
	}, nil
}

// TokenInfo describes a token. The default freeze, default KYC and pause
// statuses are nil when the token lacks the corresponding key.
type TokenInfo struct {
	Token            Address
	Name             string
	Symbol           string
	NonFungible      bool
	Decimals         uint32
	TotalSupply      uint64
	MaxSupply        int64 // zero means infinite
	Treasury         Address
	AdminKey         Key
	KycKey           Key
	FreezeKey        Key
	WipeKey          Key
	SupplyKey        Key
	FeeScheduleKey   Key
	PauseKey         Key
	MetadataKey      Key
	DefaultFrozen    *bool
	DefaultKycGrant  *bool
	Paused           *bool
	Deleted          bool
	AutoRenewAccount Address
	AutoRenewPeriod  time.Duration
	Expiration       time.Time
	Memo             string
	CustomFees       []CustomFee
	Metadata         []byte
	LedgerID         []byte
}

// tokenStatus decodes a tri-state token status, where 1 means set and 2
// means unset.
func tokenStatus(s int32) *bool {
	switch s {
	case 1:
		v := true
		return &v
	case 2:
		v := false
		return &v
	}
	return nil
}

// TokenInfoFromWire decodes token info.
func TokenInfoFromWire(w *wire.TokenInfo) (TokenInfo, error) {
	if w == nil {
		return TokenInfo{}, errProtocol("missing token info")
	}
	ti := TokenInfo{
		Token:            EntityIDFromWire(w.TokenID),
		Name:             w.Name,
		Symbol:           w.Symbol,
		NonFungible:      w.TokenType == 1,
		Decimals:         w.Decimals,
		TotalSupply:      w.TotalSupply,
		Treasury:         AccountIDFromWire(w.Treasury),
		DefaultFrozen:    tokenStatus(w.DefaultFreezeStatus),
		DefaultKycGrant:  tokenStatus(w.DefaultKycStatus),
		Paused:           tokenStatus(w.PauseStatus),
		Deleted:          w.Deleted,
		AutoRenewAccount: AccountIDFromWire(w.AutoRenewAccount),
		AutoRenewPeriod:  DurationFromWire(w.AutoRenewPeriod),
		Expiration:       TimestampFromWire(w.Expiry),
		Memo:             w.Memo,
		CustomFees:       CustomFeesFromWire(w.CustomFees),
		Metadata:         w.Metadata,
		LedgerID:         w.LedgerID,
	}
	if w.SupplyType == 1 {
		ti.MaxSupply = w.MaxSupply
	}
	for _, k := range []struct {
		name string
		w    *wire.Key
		dst  *Key
	}{
		{"admin key", w.AdminKey, &ti.AdminKey},
		{"KYC key", w.KycKey, &ti.KycKey},
		{"freeze key", w.FreezeKey, &ti.FreezeKey},
		{"wipe key", w.WipeKey, &ti.WipeKey},
		{"supply key", w.SupplyKey, &ti.SupplyKey},
		{"fee schedule key", w.FeeScheduleKey, &ti.FeeScheduleKey},
		{"pause key", w.PauseKey, &ti.PauseKey},
		{"metadata key", w.MetadataKey, &ti.MetadataKey},
	} {
		key, err := KeyFromWire(k.w)
		if err != nil {
			return TokenInfo{}, fmt.Errorf("%s: %w", k.name, err)
		}
		*k.dst = key
	}
	return ti, nil
}

// NftInfo describes a single NFT.
type NftInfo struct {
	Nft      NftID
	Owner    Address
	Spender  Address
	Created  time.Time
	Metadata []byte
	LedgerID []byte
}

// NftInfoFromWire decodes NFT info.
func NftInfoFromWire(w *wire.TokenNftInfo) (NftInfo, error) {
	if w == nil {
		return NftInfo{}, errProtocol("missing NFT info")
	}
	return NftInfo{
		Nft:      NftIDFromWire(w.NftID),
		Owner:    AccountIDFromWire(w.AccountID),
		Spender:  AccountIDFromWire(w.SpenderID),
		Created:  TimestampFromWire(w.CreationTime),
		Metadata: w.Metadata,
		LedgerID: w.LedgerID,
	}, nil
}

// ScheduleInfo describes a schedule. ScheduledBody holds the encoded
// schedulable body of the scheduled transaction.
type ScheduleInfo struct {
	Schedule               Address
	Creator                Address
	Payer                  Address
	ScheduledTransactionID TransactionID
	ScheduledBody          []byte
	Memo                   string
	AdminKey               Key
	Signers                []Key
	Expiration             time.Time
	Executed               time.Time
	Deleted                time.Time
	WaitForExpiry          bool
	LedgerID               []byte
}

// ScheduleInfoFromWire decodes schedule info.
func ScheduleInfoFromWire(w *wire.ScheduleInfo) (ScheduleInfo, error) {
	if w == nil {
		return ScheduleInfo{}, errProtocol("missing schedule info")
	}
	admin, err := KeyFromWire(w.AdminKey)
	if err != nil {
		return ScheduleInfo{}, fmt.Errorf("admin key: %w", err)
	}
	signers, err := KeyListFromWire(w.Signers)
	if err != nil {
		return ScheduleInfo{}, fmt.Errorf("signers: %w", err)
	}
	si := ScheduleInfo{
		Schedule:               EntityIDFromWire(w.ScheduleID),
		Creator:                AccountIDFromWire(w.CreatorAccountID),
		Payer:                  AccountIDFromWire(w.PayerAccountID),
		ScheduledTransactionID: TransactionIDFromWire(w.ScheduledTransactionID),
		Memo:                   w.Memo,
		AdminKey:               admin,
		Signers:                signers,
		Expiration:             TimestampFromWire(w.ExpirationTime),
		Executed:               TimestampFromWire(w.ExecutionTime),
		Deleted:                TimestampFromWire(w.DeletionTime),
		WaitForExpiry:          w.WaitForExpiry,
		LedgerID:               w.LedgerID,
	}
	if w.ScheduledTransactionBody != nil {
		si.ScheduledBody = wire.Marshal(w.ScheduledTransactionBody)
	}
	return si, nil
}

// A SemanticVersion is a major.minor.patch version with optional
// pre-release and build labels.
type SemanticVersion struct {
	Major, Minor, Patch int32
	Pre, Build          string
}

// String implements fmt.Stringer.
func (v SemanticVersion) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// SemanticVersionFromWire decodes a version. A nil version decodes to 0.0.0.
func SemanticVersionFromWire(w *wire.SemanticVersion) SemanticVersion {
	if w == nil {
		return SemanticVersion{}
	}
	return SemanticVersion{Major: w.Major, Minor: w.Minor, Patch: w.Patch, Pre: w.Pre, Build: w.Build}
}

// VersionInfo holds the versions of the network software.
type VersionInfo struct {
	Protocol SemanticVersion
	Services SemanticVersion
}
