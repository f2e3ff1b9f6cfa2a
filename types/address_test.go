package types

import (
	"errors"
	"math"
	"testing"

	"go.hashgraph.tech/core/wire"
	"lukechampine.com/frand"
)

// roundtrip encodes from to bytes and decodes the bytes into a new value.
func roundtrip[T any, P interface {
	*T
	wire.Message
	wire.DecoderFrom
}](t *testing.T, from P) P {
	t.Helper()
	to := P(new(T))
	if err := wire.Unmarshal(wire.Marshal(from), to); err != nil {
		t.Fatal(err)
	}
	return to
}

func randomAddress() Address {
	return NewAddress(frand.Uint64n(math.MaxInt32), frand.Uint64n(math.MaxInt32), frand.Uint64n(math.MaxInt64))
}

func randomAlias() Address {
	var alias EVMAddress
	frand.Read(alias[:])
	return NewAliasAddress(0, 0, alias)
}

func TestAddressString(t *testing.T) {
	for _, a := range []Address{
		{},
		NewAddress(0, 0, 0),
		NewAddress(0, 0, 1234),
		NewAddress(1, 2, 3),
		randomAddress(),
		randomAlias(),
	} {
		s := a.String()
		b, err := ParseAddress(s)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", s, err)
		} else if b != a {
			t.Fatalf("expected %v, got %v", a, b)
		}
	}

	for _, s := range []string{
		"",
		"0.0",
		"0.0.0.0",
		"a.0.1",
		"0.0.-1",
		"0.0.zz00000000000000000000000000000000000000",
		"0.0.9223372036854775808",
	} {
		if _, err := ParseAddress(s); err == nil {
			t.Errorf("ParseAddress(%q) should have failed", s)
		}
	}
}

func TestAddressLiteral(t *testing.T) {
	lit := Address{Num: 5}
	if !lit.IsNone() {
		t.Fatal("an address literal should be None")
	} else if _, err := AccountIDToWire(lit); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	if a, err := ParseAddress("0.0.5"); err != nil {
		t.Fatal(err)
	} else if a != NewAddress(0, 0, 5) || a.Num != lit.Num {
		t.Fatalf("unexpected address %v", a)
	}
}

func TestAccountIDCodec(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := randomAddress()
		if i%2 == 0 {
			a = randomAlias()
		}
		id, err := AccountIDToWire(a)
		if err != nil {
			t.Fatal(err)
		}
		if b := AccountIDFromWire(roundtrip(t, id)); b != a {
			t.Fatalf("expected %v, got %v", a, b)
		}
		cid, err := ContractIDToWire(a)
		if err != nil {
			t.Fatal(err)
		}
		if b := ContractIDFromWire(roundtrip(t, cid)); b != a {
			t.Fatalf("expected %v, got %v", a, b)
		}
	}

	if _, err := AccountIDToWire(Address{}); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	} else if _, err := ContractIDToWire(Address{}); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	} else if _, err := AccountIDToWire(NewAddress(0, 0, math.MaxUint64)); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range, got %v", err)
	}

	if a := AccountIDFromWire(nil); !a.IsNone() {
		t.Fatalf("expected None, got %v", a)
	} else if a := AccountIDFromWire(&wire.AccountID{Alias: []byte{1, 2, 3}}); !a.IsNone() {
		t.Fatalf("expected None for a key alias, got %v", a)
	}
}

func TestEntityIDCodec(t *testing.T) {
	encoders := map[string]func(Address) (*wire.EntityID, error){
		"file":     FileIDToWire,
		"token":    TokenIDToWire,
		"topic":    TopicIDToWire,
		"schedule": ScheduleIDToWire,
	}
	for kind, enc := range encoders {
		a := randomAddress()
		id, err := enc(a)
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		} else if b := EntityIDFromWire(roundtrip(t, id)); b != a {
			t.Fatalf("%v: expected %v, got %v", kind, a, b)
		}

		if id, err := enc(Address{}); !errors.Is(err, ErrMissingRequiredField) || id != nil {
			t.Fatalf("%v: expected missing field, got %v, %v", kind, id, err)
		} else if id, err := enc(randomAlias()); !errors.Is(err, ErrOutOfRangeValue) || id != nil {
			t.Fatalf("%v: expected out of range, got %v, %v", kind, id, err)
		}
	}

	if a := EntityIDFromWire(nil); !a.IsNone() {
		t.Fatalf("expected None, got %v", a)
	}
	if id, err := OptionalTokenID(Address{}); err != nil || id != nil {
		t.Fatalf("expected nil, got %v, %v", id, err)
	}
}

func TestNftID(t *testing.T) {
	id := NftID{Token: randomAddress(), Serial: 7}
	w, err := NftIDToWire(id)
	if err != nil {
		t.Fatal(err)
	} else if got := NftIDFromWire(roundtrip(t, w)); got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}
	if _, err := NftIDToWire(NftID{Token: id.Token}); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range, got %v", err)
	}
}
