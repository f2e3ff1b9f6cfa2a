package types

import (
	"crypto/ed25519"
	"errors"
	"reflect"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.hashgraph.tech/core/wire"
	"lukechampine.com/frand"
)

func randomEd25519Key() Key {
	return KeyEd25519(ed25519.PublicKey(frand.Bytes(ed25519.PublicKeySize)))
}

func randomSecp256k1Key(t *testing.T) Key {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	return KeySecp256k1(sk.PubKey())
}

func TestKeyRoundtrip(t *testing.T) {
	ed := randomEd25519Key()
	secp := randomSecp256k1Key(t)
	rsa := Key{KeyTypePublicKey{AlgorithmRSA3072, frand.Bytes(384)}}
	p384 := Key{KeyTypePublicKey{AlgorithmECDSA384, frand.Bytes(97)}}
	contract := KeyContract(randomAddress())
	delegatable := KeyDelegatableContract(randomAlias())

	for _, k := range []Key{
		ed,
		secp,
		rsa,
		p384,
		contract,
		delegatable,
		KeyThreshold(1, []Key{ed}),
		KeyAll([]Key{ed, secp}),
		KeyThreshold(2, []Key{
			ed,
			KeyAll([]Key{secp, contract}),
			KeyThreshold(1, []Key{
				rsa,
				KeyAll([]Key{p384, delegatable}),
			}),
		}),
	} {
		w, err := KeyToWire(k)
		if err != nil {
			t.Fatalf("%v: %v", k, err)
		}
		got, err := KeyFromWire(roundtrip(t, w))
		if err != nil {
			t.Fatalf("%v: %v", k, err)
		} else if !reflect.DeepEqual(got, k) {
			t.Fatalf("expected %v, got %v", k, got)
		}

		s := k.String()
		parsed, err := ParseKey(s)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", s, err)
		} else if parsed.String() != s {
			t.Fatalf("expected %q, got %q", s, parsed.String())
		}
	}
}

func TestKeyEd25519Envelope(t *testing.T) {
	pk := ed25519.PublicKey(frand.Bytes(ed25519.PublicKeySize))
	k := KeyEd25519(pk)
	der := k.Type.(KeyTypePublicKey).Key
	if len(der) != 44 {
		t.Fatalf("expected 44-byte DER export, got %d bytes", len(der))
	}
	w, err := KeyToWire(k)
	if err != nil {
		t.Fatal(err)
	} else if !reflect.DeepEqual(w.Ed25519, []byte(pk)) {
		t.Fatal("wire key should hold the raw 32-byte key")
	}

	bad := Key{KeyTypePublicKey{AlgorithmEd25519, pk}}
	if _, err := KeyToWire(bad); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range for a raw key, got %v", err)
	}
	if _, err := KeyFromWire(&wire.Key{Ed25519: der}); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range for a DER wire key, got %v", err)
	}

	if alg, raw, ok := k.RawPublicKey(); !ok || alg != AlgorithmEd25519 || !reflect.DeepEqual(raw, []byte(pk)) {
		t.Fatal("expected raw key to strip the DER header")
	} else if _, _, ok := bad.RawPublicKey(); ok {
		t.Fatal("expected malformed DER key to have no raw form")
	} else if _, _, ok := KeyAll([]Key{k}).RawPublicKey(); ok {
		t.Fatal("expected key list to have no raw form")
	}
}

func TestKeyEmpty(t *testing.T) {
	ed := randomEd25519Key()
	for _, k := range []Key{
		{},
		KeyThreshold(2, nil),
		KeyThreshold(2, []Key{}),
		KeyAll(nil),
		{KeyTypeThreshold{N: 2}},
	} {
		if !k.IsNone() {
			t.Fatalf("%v should be None", k)
		} else if _, err := KeyToWire(k); !errors.Is(err, ErrUnsupportedOperationVariant) {
			t.Fatalf("%v: expected unsupported variant, got %v", k, err)
		} else if w, err := OptionalKey(k); err != nil || w != nil {
			t.Fatalf("%v: expected nil, got %v, %v", k, w, err)
		}
	}

	for _, w := range []*wire.Key{
		nil,
		{ThresholdKey: &wire.ThresholdKey{Threshold: 2}},
		{ThresholdKey: &wire.ThresholdKey{Threshold: 2, Keys: &wire.KeyList{}}},
		{KeyList: &wire.KeyList{}},
	} {
		k, err := KeyFromWire(w)
		if err != nil {
			t.Fatal(err)
		} else if k.Type != nil {
			t.Fatalf("expected None, got %v", k)
		}
	}

	if _, err := KeyToWire(KeyAll([]Key{ed, {}})); !errors.Is(err, ErrUnsupportedOperationVariant) {
		t.Fatalf("expected unsupported variant for a None child, got %v", err)
	}
}

func TestKeyThresholdRange(t *testing.T) {
	ed := randomEd25519Key()
	for _, n := range []uint32{0, 3} {
		k := KeyThreshold(n, []Key{ed, ed})
		if _, err := KeyToWire(k); !errors.Is(err, ErrOutOfRangeValue) {
			t.Fatalf("threshold %d: expected out of range, got %v", n, err)
		}
	}
}

func TestKeyDepth(t *testing.T) {
	k := randomEd25519Key()
	for i := 0; i < maxKeyDepth; i++ {
		k = KeyAll([]Key{k})
	}
	w, err := KeyToWire(k)
	if err != nil {
		t.Fatalf("depth %d should encode: %v", maxKeyDepth, err)
	} else if _, err := KeyFromWire(w); err != nil {
		t.Fatalf("depth %d should decode: %v", maxKeyDepth, err)
	}

	k = KeyAll([]Key{k})
	if _, err := KeyToWire(k); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range, got %v", err)
	}
	w = &wire.Key{KeyList: &wire.KeyList{Keys: []*wire.Key{w}}}
	if _, err := KeyFromWire(w); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestKeyUnknownKind(t *testing.T) {
	// a key whose only field is one this package does not know
	b := []byte{0x4a, 0x02, 0x01, 0x02} // field 9, bytes
	w := new(wire.Key)
	if err := wire.Unmarshal(b, w); err != nil {
		t.Fatal(err)
	}
	if _, err := KeyFromWire(w); !errors.Is(err, ErrProtocolMismatch) {
		t.Fatalf("expected protocol mismatch, got %v", err)
	}
}

func TestKeyEVMAddress(t *testing.T) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	k := KeySecp256k1(sk.PubKey())
	a1, ok := k.EVMAddress()
	if !ok {
		t.Fatal("secp256k1 key should have an EVM address")
	}
	a2, _ := k.EVMAddress()
	if a1 != a2 || a1 == (EVMAddress{}) {
		t.Fatal("EVM address should be deterministic and non-zero")
	}
	if _, ok := randomEd25519Key().EVMAddress(); ok {
		t.Fatal("ed25519 key should not have an EVM address")
	}
}

func TestParseKey(t *testing.T) {
	for _, s := range []string{
		"",
		"foo()",
		"ed25519(00)",
		"thresh(1,[none()]",
		"all([none()])x",
		"contract(0.0)",
	} {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("ParseKey(%q) should have failed", s)
		}
	}
	k, err := ParseKey("thresh(2,[])")
	if err != nil {
		t.Fatal(err)
	} else if !k.IsNone() {
		t.Fatalf("expected None, got %v", k)
	}
}
