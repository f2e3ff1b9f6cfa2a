package types

import (
	"errors"
	"testing"

	"go.hashgraph.tech/core/wire"
)

func TestTokenInfoFromWire(t *testing.T) {
	tokenID, _ := TokenIDToWire(NewAddress(0, 0, 4001))
	treasury, _ := AccountIDToWire(NewAddress(0, 0, 1001))
	ti, err := TokenInfoFromWire(&wire.TokenInfo{
		TokenID:             tokenID,
		Name:                "Token",
		Treasury:            treasury,
		TokenType:           1,
		SupplyType:          1,
		MaxSupply:           100,
		DefaultFreezeStatus: 1,
		DefaultKycStatus:    2,
	})
	if err != nil {
		t.Fatal(err)
	}
	switch {
	case ti.Token != NewAddress(0, 0, 4001) || ti.Treasury != NewAddress(0, 0, 1001):
		t.Fatalf("unexpected addresses %v %v", ti.Token, ti.Treasury)
	case !ti.NonFungible || ti.MaxSupply != 100:
		t.Fatal("expected finite non-fungible token")
	case ti.DefaultFrozen == nil || !*ti.DefaultFrozen:
		t.Fatal("expected frozen by default")
	case ti.DefaultKycGrant == nil || *ti.DefaultKycGrant:
		t.Fatal("expected KYC revoked by default")
	case ti.Paused != nil:
		t.Fatal("expected no pause status")
	}

	// infinite supply ignores any max supply on the wire
	ti, err = TokenInfoFromWire(&wire.TokenInfo{SupplyType: 0, MaxSupply: 7})
	if err != nil {
		t.Fatal(err)
	} else if ti.MaxSupply != 0 {
		t.Fatalf("expected infinite supply, got %d", ti.MaxSupply)
	}

	if _, err := TokenInfoFromWire(&wire.TokenInfo{AdminKey: &wire.Key{Ed25519: []byte{1}}}); !errors.Is(err, ErrOutOfRangeValue) {
		t.Fatalf("expected out of range key, got %v", err)
	}
	if _, err := TokenInfoFromWire(nil); !errors.Is(err, ErrProtocolMismatch) {
		t.Fatalf("expected protocol mismatch, got %v", err)
	}
}

func TestSemanticVersion(t *testing.T) {
	tests := []struct {
		w   *wire.SemanticVersion
		exp string
	}{
		{nil, "0.0.0"},
		{&wire.SemanticVersion{Major: 0, Minor: 54, Patch: 2}, "0.54.2"},
		{&wire.SemanticVersion{Major: 1, Pre: "rc.1"}, "1.0.0-rc.1"},
		{&wire.SemanticVersion{Major: 1, Pre: "alpha", Build: "abc"}, "1.0.0-alpha+abc"},
	}
	for _, test := range tests {
		if s := SemanticVersionFromWire(test.w).String(); s != test.exp {
			t.Errorf("expected %q, got %q", test.exp, s)
		}
	}
}

func TestAccountBalanceFromWire(t *testing.T) {
	b := AccountBalanceFromWire(&wire.CryptoGetAccountBalanceResponse{Balance: 42})
	if b.Hbar != 42 || b.Tokens != nil || !b.Account.IsNone() {
		t.Fatalf("unexpected balance %+v", b)
	}
}
