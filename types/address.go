package types

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.hashgraph.tech/core/wire"
)

// An EVMAddress is the 20-byte address of an account or contract as seen by
// the EVM.
type EVMAddress [20]byte

// String implements fmt.Stringer.
func (a EVMAddress) String() string { return hex.EncodeToString(a[:]) }

type addressForm uint8

const (
	formNone addressForm = iota
	formNum
	formAlias
)

// An Address identifies an entity on the network, either by its
// shard.realm.num triple or by a 20-byte alias scoped to a shard and realm.
// The zero Address is the None sentinel, meaning "absent".
//
// Only NewAddress, NewAliasAddress and ParseAddress build usable addresses.
// The exported fields are for reading; a literal such as Address{Num: 5} is
// still None.
//
// Addresses are comparable and may be used as map keys.
type Address struct {
	Shard uint64
	Realm uint64
	Num   uint64
	Alias EVMAddress
	form  addressForm
}

// NewAddress returns the numeric address shard.realm.num.
func NewAddress(shard, realm, num uint64) Address {
	return Address{Shard: shard, Realm: realm, Num: num, form: formNum}
}

// NewAliasAddress returns an alias address within the given shard and
// realm.
func NewAliasAddress(shard, realm uint64, alias EVMAddress) Address {
	return Address{Shard: shard, Realm: realm, Alias: alias, form: formAlias}
}

// IsNone reports whether a is the None sentinel.
func (a Address) IsNone() bool { return a.form == formNone }

// IsAlias reports whether a is an alias address.
func (a Address) IsAlias() bool { return a.form == formAlias }

// String implements fmt.Stringer.
func (a Address) String() string {
	switch a.form {
	case formNum:
		return fmt.Sprintf("%d.%d.%d", a.Shard, a.Realm, a.Num)
	case formAlias:
		return fmt.Sprintf("%d.%d.%v", a.Shard, a.Realm, a.Alias)
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAddress(string(b))
	return
}

// ParseAddress parses an address from its string form, either
// "shard.realm.num" or "shard.realm.<40 hex digits>". The string "none"
// parses to the None sentinel.
func ParseAddress(s string) (Address, error) {
	if s == "none" {
		return Address{}, nil
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Address{}, fmt.Errorf("invalid address %q: expected shard.realm.num", s)
	}
	shard, err := strconv.ParseUint(parts[0], 10, 63)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: invalid shard: %w", s, err)
	}
	realm, err := strconv.ParseUint(parts[1], 10, 63)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: invalid realm: %w", s, err)
	}
	if len(parts[2]) == 2*len(EVMAddress{}) {
		var alias EVMAddress
		if _, err := hex.Decode(alias[:], []byte(parts[2])); err != nil {
			return Address{}, fmt.Errorf("invalid address %q: invalid alias: %w", s, err)
		}
		return NewAliasAddress(shard, realm, alias), nil
	}
	num, err := strconv.ParseUint(parts[2], 10, 63)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: invalid number: %w", s, err)
	}
	return NewAddress(shard, realm, num), nil
}

func wireInt(kind, field string, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errRange("%s %s %d exceeds the maximum of %d", kind, field, v, int64(math.MaxInt64))
	}
	return int64(v), nil
}

func (a Address) wireTriple(kind string) (shard, realm, num int64, err error) {
	if shard, err = wireInt(kind, "shard", a.Shard); err != nil {
		return
	} else if realm, err = wireInt(kind, "realm", a.Realm); err != nil {
		return
	}
	num, err = wireInt(kind, "number", a.Num)
	return
}

// AccountIDToWire encodes a as an account identifier. Alias addresses are
// encoded by their alias.
func AccountIDToWire(a Address) (*wire.AccountID, error) {
	if a.IsNone() {
		return nil, errMissing("account address is required")
	}
	shard, realm, num, err := a.wireTriple("account")
	if err != nil {
		return nil, err
	}
	id := &wire.AccountID{ShardNum: shard, RealmNum: realm, AccountNum: num}
	if a.IsAlias() {
		id.AccountNum, id.Alias = 0, append([]byte(nil), a.Alias[:]...)
	}
	return id, nil
}

// AccountIDFromWire decodes an account identifier. A nil identifier decodes
// to None, as does an identifier whose alias is not a 20-byte EVM address.
func AccountIDFromWire(id *wire.AccountID) Address {
	if id == nil {
		return Address{}
	} else if id.Alias != nil {
		return aliasFromWire(id.ShardNum, id.RealmNum, id.Alias)
	}
	return NewAddress(uint64(id.ShardNum), uint64(id.RealmNum), uint64(id.AccountNum))
}

// ContractIDToWire encodes a as a contract identifier. Alias addresses are
// encoded by their EVM address.
func ContractIDToWire(a Address) (*wire.ContractID, error) {
	if a.IsNone() {
		return nil, errMissing("contract address is required")
	}
	shard, realm, num, err := a.wireTriple("contract")
	if err != nil {
		return nil, err
	}
	id := &wire.ContractID{ShardNum: shard, RealmNum: realm, ContractNum: num}
	if a.IsAlias() {
		id.ContractNum, id.EVMAddress = 0, append([]byte(nil), a.Alias[:]...)
	}
	return id, nil
}

// ContractIDFromWire decodes a contract identifier. A nil identifier decodes
// to None.
func ContractIDFromWire(id *wire.ContractID) Address {
	if id == nil {
		return Address{}
	} else if id.EVMAddress != nil {
		return aliasFromWire(id.ShardNum, id.RealmNum, id.EVMAddress)
	}
	return NewAddress(uint64(id.ShardNum), uint64(id.RealmNum), uint64(id.ContractNum))
}

func aliasFromWire(shard, realm int64, b []byte) Address {
	var alias EVMAddress
	if len(b) != len(alias) {
		return Address{}
	}
	copy(alias[:], b)
	return NewAliasAddress(uint64(shard), uint64(realm), alias)
}

func entityIDToWire(kind string, a Address) (*wire.EntityID, error) {
	if a.IsNone() {
		return nil, errMissing("%s address is required", kind)
	} else if a.IsAlias() {
		return nil, errRange("%s address %v must be in shard.realm.num form", kind, a)
	}
	shard, realm, num, err := a.wireTriple(kind)
	if err != nil {
		return nil, err
	}
	return &wire.EntityID{ShardNum: shard, RealmNum: realm, EntityNum: num}, nil
}

// FileIDToWire encodes a as a file identifier.
func FileIDToWire(a Address) (*wire.FileID, error) { return entityIDToWire("file", a) }

// TokenIDToWire encodes a as a token identifier.
func TokenIDToWire(a Address) (*wire.TokenID, error) { return entityIDToWire("token", a) }

// TopicIDToWire encodes a as a topic identifier.
func TopicIDToWire(a Address) (*wire.TopicID, error) { return entityIDToWire("topic", a) }

// ScheduleIDToWire encodes a as a schedule identifier.
func ScheduleIDToWire(a Address) (*wire.ScheduleID, error) {
	return entityIDToWire("schedule", a)
}

// EntityIDFromWire decodes a file, token, topic or schedule identifier. A nil
// identifier decodes to None.
func EntityIDFromWire(id *wire.EntityID) Address {
	if id == nil {
		return Address{}
	}
	return NewAddress(uint64(id.ShardNum), uint64(id.RealmNum), uint64(id.EntityNum))
}

// OptionalAccountID is like AccountIDToWire, but encodes None as nil.
func OptionalAccountID(a Address) (*wire.AccountID, error) {
	if a.IsNone() {
		return nil, nil
	}
	return AccountIDToWire(a)
}

// OptionalContractID is like ContractIDToWire, but encodes None as nil.
func OptionalContractID(a Address) (*wire.ContractID, error) {
	if a.IsNone() {
		return nil, nil
	}
	return ContractIDToWire(a)
}

// OptionalFileID is like FileIDToWire, but encodes None as nil.
func OptionalFileID(a Address) (*wire.FileID, error) {
	if a.IsNone() {
		return nil, nil
	}
	return FileIDToWire(a)
}

// OptionalTokenID is like TokenIDToWire, but encodes None as nil.
func OptionalTokenID(a Address) (*wire.TokenID, error) {
	if a.IsNone() {
		return nil, nil
	}
	return TokenIDToWire(a)
}

// An NftID identifies a single serial of a non-fungible token.
type NftID struct {
	Token  Address
	Serial int64
}

// String implements fmt.Stringer.
func (id NftID) String() string { return fmt.Sprintf("%d@%v", id.Serial, id.Token) }

// NftIDToWire encodes id.
func NftIDToWire(id NftID) (*wire.NftID, error) {
	token, err := TokenIDToWire(id.Token)
	if err != nil {
		return nil, err
	} else if id.Serial <= 0 {
		return nil, errRange("NFT serial number must be positive, got %d", id.Serial)
	}
	return &wire.NftID{TokenID: token, SerialNumber: id.Serial}, nil
}

// NftIDFromWire decodes an NFT identifier.
func NftIDFromWire(id *wire.NftID) NftID {
	if id == nil {
		return NftID{}
	}
	return NftID{Token: EntityIDFromWire(id.TokenID), Serial: id.SerialNumber}
}
