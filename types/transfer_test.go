package types

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"lukechampine.com/frand"
)

func TestNetTransfers(t *testing.T) {
	a, b, c := NewAddress(0, 0, 1001), NewAddress(0, 0, 1002), NewAddress(0, 0, 1003)
	tests := []struct {
		in  []HbarTransfer
		out []HbarTransfer
		err error
	}{
		{
			in:  []HbarTransfer{{a, -50, false}, {b, 50, false}},
			out: []HbarTransfer{{a, -50, false}, {b, 50, false}},
		},
		{
			in:  []HbarTransfer{{a, -50, false}, {b, 20, false}, {c, 30, false}},
			out: []HbarTransfer{{a, -50, false}, {b, 20, false}, {c, 30, false}},
		},
		{
			in:  []HbarTransfer{{b, 30, false}, {a, -50, true}, {b, 20, false}, {a, 0, false}},
			out: []HbarTransfer{{b, 50, false}, {a, -50, true}},
		},
		{
			in:  []HbarTransfer{{c, 10, false}, {a, -10, false}, {c, -10, false}, {a, 10, false}, {b, 1, false}, {a, -1, false}},
			out: []HbarTransfer{{a, -1, false}, {b, 1, false}},
		},
		{
			// unbalanced
			in:  []HbarTransfer{{a, -50, false}, {a, 20, false}},
			err: ErrConflictingOrBlankUpdate,
		},
		{
			in:  []HbarTransfer{{a, -50, false}, {b, 20, false}},
			err: ErrConflictingOrBlankUpdate,
		},
		{
			in:  []HbarTransfer{{a, 10, false}, {a, -10, false}},
			err: ErrMissingRequiredField,
		},
		{
			in:  nil,
			err: ErrMissingRequiredField,
		},
		{
			in:  []HbarTransfer{{Address{}, -5, false}, {b, 5, false}},
			err: ErrMissingRequiredField,
		},
		{
			in:  []HbarTransfer{{a, 1 << 62, false}, {b, 1 << 62, false}, {c, -(1 << 62), false}, {c, -(1 << 62), false}},
			out: []HbarTransfer{{a, 1 << 62, false}, {b, 1 << 62, false}, {c, math.MinInt64, false}},
		},
		{
			// intermediate sums leave int64, nets do not
			in:  []HbarTransfer{{a, math.MaxInt64, false}, {b, 1, false}, {b, -math.MaxInt64, false}, {a, -1, false}},
			out: []HbarTransfer{{a, math.MaxInt64 - 1, false}, {b, -(math.MaxInt64 - 1), false}},
		},
		{
			in:  []HbarTransfer{{a, math.MaxInt64, false}, {a, math.MaxInt64, false}, {b, -math.MaxInt64, false}, {b, -math.MaxInt64, false}},
			err: ErrOutOfRangeValue,
		},
		{
			in:  []HbarTransfer{{a, math.MaxInt64, false}, {b, math.MaxInt64, false}, {c, 2, false}},
			err: ErrConflictingOrBlankUpdate,
		},
	}
	for i, test := range tests {
		out, err := NetTransfers(test.in)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%d: expected %v, got %v", i, test.err, err)
			}
			continue
		} else if err != nil {
			t.Errorf("%d: %v", i, err)
		} else if !reflect.DeepEqual(out, test.out) {
			t.Errorf("%d: expected %v, got %v", i, test.out, out)
		}
	}
}

func TestNetTransfersRandom(t *testing.T) {
	accounts := make([]Address, 5)
	for i := range accounts {
		accounts[i] = randomAddress()
	}
	for i := 0; i < 100; i++ {
		var legs []HbarTransfer
		var sum Hbar
		n := 1 + frand.Intn(10)
		for j := 0; j < n; j++ {
			amount := Hbar(frand.Intn(1000)) - 500
			legs = append(legs, HbarTransfer{Account: accounts[frand.Intn(len(accounts))], Amount: amount})
			sum += amount
		}
		// balance the legs
		legs = append(legs, HbarTransfer{Account: accounts[frand.Intn(len(accounts))], Amount: -sum})

		out, err := NetTransfers(legs)
		if errors.Is(err, ErrMissingRequiredField) {
			continue // everything cancelled out
		} else if err != nil {
			t.Fatal(err)
		}
		seen := make(map[Address]bool)
		var total Hbar
		for _, tr := range out {
			if seen[tr.Account] {
				t.Fatalf("account %v appears twice", tr.Account)
			} else if tr.Amount == 0 {
				t.Fatalf("account %v has a zero net", tr.Account)
			}
			seen[tr.Account] = true
			total += tr.Amount
		}
		if total != 0 {
			t.Fatalf("netted transfers sum to %v", total)
		}

		// unbalancing must always fail
		legs[0].Amount++
		if _, err := NetTransfers(legs); !errors.Is(err, ErrConflictingOrBlankUpdate) {
			t.Fatalf("expected conflicting update, got %v", err)
		}
	}
}

func TestNetTransfersOrder(t *testing.T) {
	a, b, c, d := NewAddress(0, 0, 1001), NewAddress(0, 0, 1002), NewAddress(0, 0, 1003), NewAddress(0, 0, 1004)
	legs := []HbarTransfer{
		{Account: a, Amount: math.MaxInt64},
		{Account: a, Amount: -1},
		{Account: b, Amount: -math.MaxInt64},
		{Account: b, Amount: 1},
		{Account: c, Amount: math.MinInt64},
		{Account: c, Amount: math.MaxInt64},
		{Account: d, Amount: 1},
	}
	exp := map[Address]Hbar{a: math.MaxInt64 - 1, b: -(math.MaxInt64 - 1), c: -1, d: 1}
	for i := 0; i < 50; i++ {
		frand.Shuffle(len(legs), func(i, j int) { legs[i], legs[j] = legs[j], legs[i] })
		out, err := NetTransfers(legs)
		if err != nil {
			t.Fatalf("%v: %v", legs, err)
		}
		got := make(map[Address]Hbar)
		for _, tr := range out {
			got[tr.Account] = tr.Amount
		}
		if !reflect.DeepEqual(got, exp) {
			t.Fatalf("%v: expected %v, got %v", legs, exp, got)
		}
	}
}

func TestNetTokenTransfers(t *testing.T) {
	t1, t2 := NewAddress(0, 0, 2001), NewAddress(0, 0, 2002)
	x, y := NewAddress(0, 0, 1001), NewAddress(0, 0, 1002)

	out, err := NetTokenTransfers([]TokenTransfer{
		{t1, x, -10, false},
		{t2, x, -10, false},
		{t1, y, 10, false},
		{t2, y, 10, true},
		{t1, y, -10, false},
		{t1, x, 10, false},
	})
	if err != nil {
		t.Fatal(err)
	}
	exp := []TokenTransferList{{
		Token: t2,
		Transfers: []TokenTransfer{
			{t2, x, -10, false},
			{t2, y, 10, true},
		},
	}}
	if !reflect.DeepEqual(out, exp) {
		t.Fatalf("expected %v, got %v", exp, out)
	}

	if _, err := NetTokenTransfers([]TokenTransfer{{Address{}, x, -1, false}, {Address{}, y, 1, false}}); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	} else if _, err := NetTokenTransfers([]TokenTransfer{{t1, x, -1, false}, {t2, y, 1, false}}); !errors.Is(err, ErrConflictingOrBlankUpdate) {
		t.Fatalf("expected conflicting update, got %v", err)
	}
}

func TestCheckNftTransfers(t *testing.T) {
	token := NewAddress(0, 0, 3001)
	x, y := NewAddress(0, 0, 1001), NewAddress(0, 0, 1002)
	tests := []struct {
		in  []NftTransfer
		err error
	}{
		{[]NftTransfer{{token, 1, x, y, false}, {token, 2, x, y, false}}, nil},
		{[]NftTransfer{{token, 1, x, y, false}, {token, 1, y, x, false}}, ErrConflictingOrBlankUpdate},
		{[]NftTransfer{{token, 1, Address{}, y, false}}, ErrMissingRequiredField},
		{[]NftTransfer{{token, 1, x, Address{}, false}}, ErrMissingRequiredField},
		{[]NftTransfer{{Address{}, 1, x, y, false}}, ErrMissingRequiredField},
		{[]NftTransfer{{token, 0, x, y, false}}, ErrOutOfRangeValue},
	}
	for i, test := range tests {
		if err := CheckNftTransfers(test.in); test.err == nil && err != nil {
			t.Errorf("%d: %v", i, err)
		} else if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("%d: expected %v, got %v", i, test.err, err)
		}
	}
}

func TestNetTransferList(t *testing.T) {
	token, nft := NewAddress(0, 0, 2001), NewAddress(0, 0, 3001)
	x, y := NewAddress(0, 0, 1001), NewAddress(0, 0, 1002)

	if _, err := NetTransferList(nil, nil, nil, nil); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	// everything nets to zero
	_, err := NetTransferList(
		[]HbarTransfer{{x, 5, false}, {x, -5, false}},
		[]TokenTransfer{{token, y, 5, false}, {token, y, -5, false}},
		nil, nil)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	}

	// NFT-only transfers are valid, and decimals are attached
	tl, err := NetTransferList(nil,
		[]TokenTransfer{{token, x, -3, false}, {token, y, 3, false}},
		[]NftTransfer{{nft, 1, x, y, false}, {token, 9, y, x, false}},
		map[Address]uint32{token: 2})
	if err != nil {
		t.Fatal(err)
	} else if len(tl.Hbar) != 0 || len(tl.Tokens) != 2 {
		t.Fatalf("unexpected transfer list %+v", tl)
	} else if tl.Tokens[0].Token != token || len(tl.Tokens[0].Transfers) != 2 || len(tl.Tokens[0].NftTransfers) != 1 {
		t.Fatalf("unexpected token list %+v", tl.Tokens[0])
	} else if tl.Tokens[0].ExpectedDecimals == nil || *tl.Tokens[0].ExpectedDecimals != 2 {
		t.Fatal("expected decimals to be attached")
	} else if tl.Tokens[1].Token != nft || tl.Tokens[1].ExpectedDecimals != nil {
		t.Fatalf("unexpected token list %+v", tl.Tokens[1])
	}

	hbar, tokens, err := tl.ToWire()
	if err != nil {
		t.Fatal(err)
	} else if hbar != nil {
		t.Fatal("expected no hbar transfer list")
	} else if len(tokens) != 2 || tokens[0].ExpectedDecimals.GetValue() != 2 || len(tokens[1].NftTransfers) != 1 {
		t.Fatalf("unexpected wire token lists %v", tokens)
	}
}
