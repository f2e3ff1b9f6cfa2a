package types

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.hashgraph.tech/core/wire"
	"golang.org/x/crypto/sha3"
)

// maxKeyDepth bounds the nesting of threshold and list keys.
const maxKeyDepth = 16

// A KeyAlgorithm is a public-key signature scheme.
type KeyAlgorithm uint8

// Supported algorithms.
const (
	AlgorithmEd25519 KeyAlgorithm = iota + 1
	AlgorithmSecp256k1
	AlgorithmRSA3072
	AlgorithmECDSA384
)

// String implements fmt.Stringer.
func (a KeyAlgorithm) String() string {
	switch a {
	case AlgorithmEd25519:
		return "ed25519"
	case AlgorithmSecp256k1:
		return "secp256k1"
	case AlgorithmRSA3072:
		return "rsa3072"
	case AlgorithmECDSA384:
		return "ecdsa384"
	default:
		return fmt.Sprintf("KeyAlgorithm(%d)", a)
	}
}

// A Key describes the signatures required to authorize an action on an
// entity. The zero Key is the None sentinel, an unsatisfiable requirement.
type Key struct {
	Type interface{ isKey() }
}

// KeyTypePublicKey requires a signature from a single public key. Ed25519
// keys are held in their DER SubjectPublicKeyInfo form; secp256k1 keys are
// held compressed.
type KeyTypePublicKey struct {
	Algorithm KeyAlgorithm
	Key       []byte
}

// KeyTypeContract is satisfied by a call from the given contract.
type KeyTypeContract Address

// KeyTypeDelegatableContract is satisfied by a call from, or delegated
// through, the given contract.
type KeyTypeDelegatableContract Address

// KeyTypeThreshold requires at least N of its keys to be satisfied.
type KeyTypeThreshold struct {
	N  uint32
	Of []Key
}

// KeyTypeAll requires all of its keys to be satisfied.
type KeyTypeAll []Key

func (KeyTypePublicKey) isKey()           {}
func (KeyTypeContract) isKey()            {}
func (KeyTypeDelegatableContract) isKey() {}
func (KeyTypeThreshold) isKey()           {}
func (KeyTypeAll) isKey()                 {}

// ed25519SPKIPrefix is the DER SubjectPublicKeyInfo header that precedes a
// raw Ed25519 public key in its standard export form.
var ed25519SPKIPrefix = []byte{0x30, 0x2a, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x03, 0x21, 0x00}

// stripEnvelope returns the raw Ed25519 key inside a DER export.
func stripEnvelope(der []byte) ([]byte, error) {
	if len(der) != len(ed25519SPKIPrefix)+ed25519.PublicKeySize || !bytes.HasPrefix(der, ed25519SPKIPrefix) {
		return nil, errRange("ed25519 key must be a %d-byte DER export, got %d bytes", len(ed25519SPKIPrefix)+ed25519.PublicKeySize, len(der))
	}
	return der[len(ed25519SPKIPrefix):], nil
}

// applyEnvelope returns the DER export of a raw Ed25519 key.
func applyEnvelope(raw []byte) []byte {
	return append(append(make([]byte, 0, len(ed25519SPKIPrefix)+len(raw)), ed25519SPKIPrefix...), raw...)
}

// KeyEd25519 returns a key that requires a signature from pk.
func KeyEd25519(pk ed25519.PublicKey) Key {
	return Key{KeyTypePublicKey{AlgorithmEd25519, applyEnvelope(pk)}}
}

// KeySecp256k1 returns a key that requires a signature from pk.
func KeySecp256k1(pk *secp256k1.PublicKey) Key {
	return Key{KeyTypePublicKey{AlgorithmSecp256k1, pk.SerializeCompressed()}}
}

// KeyContract returns a key satisfied by a call from the given contract.
func KeyContract(contract Address) Key { return Key{KeyTypeContract(contract)} }

// KeyDelegatableContract returns a key satisfied by a call from, or delegated
// through, the given contract.
func KeyDelegatableContract(contract Address) Key {
	return Key{KeyTypeDelegatableContract(contract)}
}

// KeyThreshold returns a key that requires at least n of the given keys. If
// of is empty, the requirement is unsatisfiable and KeyThreshold returns
// None.
func KeyThreshold(n uint32, of []Key) Key {
	if len(of) == 0 {
		return Key{}
	}
	return Key{KeyTypeThreshold{n, of}}
}

// KeyAll returns a key that requires all of the given keys. If of is empty,
// KeyAll returns None.
func KeyAll(of []Key) Key {
	if len(of) == 0 {
		return Key{}
	}
	return Key{KeyTypeAll(of)}
}

// IsNone reports whether k is the None sentinel. A threshold or list with no
// children is equivalent to None.
func (k Key) IsNone() bool {
	switch t := k.Type.(type) {
	case nil:
		return true
	case KeyTypeThreshold:
		return len(t.Of) == 0
	case KeyTypeAll:
		return len(t) == 0
	default:
		return false
	}
}

// RawPublicKey returns the algorithm and raw bytes of a single public key,
// as they appear in a signature pair: the bare 32-byte form of an Ed25519
// key and the compressed form of a secp256k1 key.
func (k Key) RawPublicKey() (KeyAlgorithm, []byte, bool) {
	pk, ok := k.Type.(KeyTypePublicKey)
	if !ok {
		return 0, nil, false
	}
	if pk.Algorithm == AlgorithmEd25519 {
		raw, err := stripEnvelope(pk.Key)
		if err != nil {
			return 0, nil, false
		}
		return pk.Algorithm, raw, true
	}
	return pk.Algorithm, pk.Key, true
}

// EVMAddress returns the EVM address derived from a secp256k1 key: the last
// 20 bytes of the Keccak-256 hash of its uncompressed form.
func (k Key) EVMAddress() (EVMAddress, bool) {
	pk, ok := k.Type.(KeyTypePublicKey)
	if !ok || pk.Algorithm != AlgorithmSecp256k1 {
		return EVMAddress{}, false
	}
	p, err := secp256k1.ParsePubKey(pk.Key)
	if err != nil {
		return EVMAddress{}, false
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(p.SerializeUncompressed()[1:])
	var addr EVMAddress
	copy(addr[:], h.Sum(nil)[12:])
	return addr, true
}

// KeyToWire encodes k. It fails if k, or any key within it, is None.
func KeyToWire(k Key) (*wire.Key, error) { return keyToWire(k, 0) }

// OptionalKey is like KeyToWire, but encodes None as nil.
func OptionalKey(k Key) (*wire.Key, error) {
	if k.IsNone() {
		return nil, nil
	}
	return KeyToWire(k)
}

// KeyListToWire encodes keys as a key list.
func KeyListToWire(keys []Key) (*wire.KeyList, error) { return keyListToWire(keys, 1) }

func keyToWire(k Key, depth int) (*wire.Key, error) {
	if depth > maxKeyDepth {
		return nil, errRange("key nesting exceeds %d levels", maxKeyDepth)
	}
	switch t := k.Type.(type) {
	case nil:
		return nil, errUnsupported("cannot encode an empty key")
	case KeyTypePublicKey:
		switch t.Algorithm {
		case AlgorithmEd25519:
			raw, err := stripEnvelope(t.Key)
			if err != nil {
				return nil, err
			}
			return &wire.Key{Ed25519: append([]byte(nil), raw...)}, nil
		case AlgorithmSecp256k1:
			if _, err := secp256k1.ParsePubKey(t.Key); err != nil {
				return nil, errRange("invalid secp256k1 key: %v", err)
			} else if len(t.Key) != secp256k1.PubKeyBytesLenCompressed {
				return nil, errRange("secp256k1 key must be compressed")
			}
			return &wire.Key{ECDSASecp256k1: append([]byte(nil), t.Key...)}, nil
		case AlgorithmRSA3072:
			if len(t.Key) == 0 {
				return nil, errMissing("rsa3072 key is empty")
			}
			return &wire.Key{RSA3072: append([]byte(nil), t.Key...)}, nil
		case AlgorithmECDSA384:
			if len(t.Key) == 0 {
				return nil, errMissing("ecdsa384 key is empty")
			}
			return &wire.Key{ECDSA384: append([]byte(nil), t.Key...)}, nil
		default:
			return nil, errUnsupported("unknown key algorithm %v", t.Algorithm)
		}
	case KeyTypeContract:
		id, err := ContractIDToWire(Address(t))
		if err != nil {
			return nil, err
		}
		return &wire.Key{ContractID: id}, nil
	case KeyTypeDelegatableContract:
		id, err := ContractIDToWire(Address(t))
		if err != nil {
			return nil, err
		}
		return &wire.Key{DelegatableContract: id}, nil
	case KeyTypeThreshold:
		if len(t.Of) == 0 {
			return nil, errUnsupported("cannot encode an empty threshold key")
		} else if t.N < 1 || int(t.N) > len(t.Of) {
			return nil, errRange("threshold %d must be between 1 and %d", t.N, len(t.Of))
		}
		kl, err := keyListToWire(t.Of, depth+1)
		if err != nil {
			return nil, err
		}
		return &wire.Key{ThresholdKey: &wire.ThresholdKey{Threshold: t.N, Keys: kl}}, nil
	case KeyTypeAll:
		if len(t) == 0 {
			return nil, errUnsupported("cannot encode an empty key list")
		}
		kl, err := keyListToWire(t, depth+1)
		if err != nil {
			return nil, err
		}
		return &wire.Key{KeyList: kl}, nil
	default:
		return nil, errUnsupported("unhandled key type %T", t)
	}
}

func keyListToWire(keys []Key, depth int) (*wire.KeyList, error) {
	kl := &wire.KeyList{Keys: make([]*wire.Key, len(keys))}
	for i, k := range keys {
		wk, err := keyToWire(k, depth)
		if err != nil {
			return nil, err
		}
		kl.Keys[i] = wk
	}
	return kl, nil
}

// KeyFromWire decodes a key. A nil key decodes to None, as does a threshold
// or list with no children. A key kind this package does not know fails with
// ErrProtocolMismatch.
func KeyFromWire(k *wire.Key) (Key, error) { return keyFromWire(k, 0) }

// KeyListFromWire decodes a key list.
func KeyListFromWire(kl *wire.KeyList) ([]Key, error) {
	if kl == nil {
		return nil, nil
	}
	return keyListFromWire(kl, 1)
}

func keyFromWire(k *wire.Key, depth int) (Key, error) {
	if depth > maxKeyDepth {
		return Key{}, errRange("key nesting exceeds %d levels", maxKeyDepth)
	}
	switch {
	case k == nil:
		return Key{}, nil
	case k.ContractID != nil:
		return KeyContract(ContractIDFromWire(k.ContractID)), nil
	case k.Ed25519 != nil:
		if len(k.Ed25519) != ed25519.PublicKeySize {
			return Key{}, errRange("ed25519 key must be %d bytes, got %d", ed25519.PublicKeySize, len(k.Ed25519))
		}
		return Key{KeyTypePublicKey{AlgorithmEd25519, applyEnvelope(k.Ed25519)}}, nil
	case k.RSA3072 != nil:
		return Key{KeyTypePublicKey{AlgorithmRSA3072, k.RSA3072}}, nil
	case k.ECDSA384 != nil:
		return Key{KeyTypePublicKey{AlgorithmECDSA384, k.ECDSA384}}, nil
	case k.ThresholdKey != nil:
		of, err := keyListFromWire(k.ThresholdKey.Keys, depth+1)
		if err != nil {
			return Key{}, err
		}
		return KeyThreshold(k.ThresholdKey.Threshold, of), nil
	case k.KeyList != nil:
		of, err := keyListFromWire(k.KeyList, depth+1)
		if err != nil {
			return Key{}, err
		}
		return KeyAll(of), nil
	case k.ECDSASecp256k1 != nil:
		return Key{KeyTypePublicKey{AlgorithmSecp256k1, k.ECDSASecp256k1}}, nil
	case k.DelegatableContract != nil:
		return KeyDelegatableContract(ContractIDFromWire(k.DelegatableContract)), nil
	default:
		return Key{}, errProtocol("version mismatch: unknown key kind")
	}
}

func keyListFromWire(kl *wire.KeyList, depth int) ([]Key, error) {
	if kl == nil {
		return nil, nil
	}
	var keys []Key
	for _, wk := range kl.Keys {
		k, err := keyFromWire(wk, depth)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// String implements fmt.Stringer.
func (k Key) String() string {
	var sb strings.Builder
	switch t := k.Type.(type) {
	case nil:
		sb.WriteString("none()")

	case KeyTypePublicKey:
		sb.WriteString(t.Algorithm.String())
		sb.WriteByte('(')
		b := t.Key
		if t.Algorithm == AlgorithmEd25519 {
			if raw, err := stripEnvelope(b); err == nil {
				b = raw
			}
		}
		sb.WriteString(hex.EncodeToString(b))
		sb.WriteByte(')')

	case KeyTypeContract:
		sb.WriteString("contract(")
		sb.WriteString(Address(t).String())
		sb.WriteByte(')')

	case KeyTypeDelegatableContract:
		sb.WriteString("delegatable(")
		sb.WriteString(Address(t).String())
		sb.WriteByte(')')

	case KeyTypeThreshold:
		sb.WriteString("thresh(")
		sb.WriteString(strconv.FormatUint(uint64(t.N), 10))
		sb.WriteString(",[")
		writeKeys(&sb, t.Of)
		sb.WriteString("])")

	case KeyTypeAll:
		sb.WriteString("all([")
		writeKeys(&sb, t)
		sb.WriteString("])")
	}
	return sb.String()
}

func writeKeys(sb *strings.Builder, keys []Key) {
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k.String())
	}
}

// ParseKey parses a key from its string form.
func ParseKey(s string) (Key, error) {
	k, rem, err := parseKey(s)
	if err != nil {
		return Key{}, err
	} else if rem != "" {
		return Key{}, fmt.Errorf("trailing bytes: %q", rem)
	}
	return k, nil
}

func parseKey(s string) (Key, string, error) {
	var k Key
	nextToken := func() string {
		s = strings.TrimSpace(s)
		i := strings.IndexAny(s, "(),[]")
		if i == -1 {
			return ""
		}
		t := s[:i]
		s = s[i:]
		return t
	}
	consume := func(b byte) error {
		s = strings.TrimSpace(s)
		if len(s) == 0 {
			return errors.New("string has no characters remaining")
		} else if s[0] != b {
			return fmt.Errorf("expected %c, got %c", b, s[0])
		}
		s = s[1:]
		return nil
	}
	parseList := func() ([]Key, error) {
		if err := consume('['); err != nil {
			return nil, err
		}
		var keys []Key
		for consume(']') != nil {
			var key Key
			var err error
			key, s, err = parseKey(s)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)

			// last key in list will not have comma after it
			// so don't check for error
			consume(',')
		}
		return keys, nil
	}

	typ := nextToken()
	if err := consume('('); err != nil {
		return Key{}, "", err
	}
	switch typ {
	case "none":
	case "ed25519", "secp256k1", "rsa3072", "ecdsa384":
		b, err := hex.DecodeString(nextToken())
		if err != nil {
			return Key{}, "", err
		}
		switch typ {
		case "ed25519":
			if len(b) != ed25519.PublicKeySize {
				return Key{}, "", fmt.Errorf("ed25519 key must be %d bytes", ed25519.PublicKeySize)
			}
			k = KeyEd25519(b)
		case "secp256k1":
			pk, err := secp256k1.ParsePubKey(b)
			if err != nil {
				return Key{}, "", err
			}
			k = KeySecp256k1(pk)
		case "rsa3072":
			k = Key{KeyTypePublicKey{AlgorithmRSA3072, b}}
		case "ecdsa384":
			k = Key{KeyTypePublicKey{AlgorithmECDSA384, b}}
		}
	case "contract", "delegatable":
		addr, err := ParseAddress(nextToken())
		if err != nil {
			return Key{}, "", err
		}
		if typ == "contract" {
			k = KeyContract(addr)
		} else {
			k = KeyDelegatableContract(addr)
		}
	case "thresh":
		n, err := strconv.ParseUint(nextToken(), 10, 32)
		if err != nil {
			return Key{}, "", err
		}
		if err := consume(','); err != nil {
			return Key{}, "", err
		}
		keys, err := parseList()
		if err != nil {
			return Key{}, "", err
		}
		k = KeyThreshold(uint32(n), keys)
	case "all":
		keys, err := parseList()
		if err != nil {
			return Key{}, "", err
		}
		k = KeyAll(keys)
	default:
		return Key{}, "", fmt.Errorf("unknown key type %q", typ)
	}
	if err := consume(')'); err != nil {
		return Key{}, "", err
	}
	return k, s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(b []byte) (err error) {
	*k, err = ParseKey(string(b))
	return
}
