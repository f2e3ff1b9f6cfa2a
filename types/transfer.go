package types

import (
	"fmt"
	"math/bits"

	"go.hashgraph.tech/core/wire"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// An HbarTransfer moves hbar to (positive Amount) or from (negative Amount)
// an account. Approved marks a transfer spending an allowance.
type HbarTransfer struct {
	Account  Address
	Amount   Hbar
	Approved bool
}

// A TokenTransfer moves units of a fungible token to or from an account.
type TokenTransfer struct {
	Token    Address
	Account  Address
	Amount   int64
	Approved bool
}

// An NftTransfer moves a single NFT serial between accounts. NFT transfers are
// never netted.
type NftTransfer struct {
	Token    Address
	Serial   int64
	Sender   Address
	Receiver Address
	Approved bool
}

// A TokenTransferList holds the netted movements of a single token.
type TokenTransferList struct {
	Token Address
	// ExpectedDecimals, if non-nil, makes the transfer fail unless the token
	// has this many decimals.
	ExpectedDecimals *uint32
	Transfers        []TokenTransfer
	NftTransfers     []NftTransfer
}

// A TransferList is a netted, conservation-checked set of transfers.
type TransferList struct {
	Hbar   []HbarTransfer
	Tokens []TokenTransferList
}

// A leg is one account's signed movement of a single asset.
type leg struct {
	account  Address
	amount   int64
	approved bool
}

// A sum is a 128-bit two's complement accumulator. Sums of int64 legs never
// overflow it, so the result does not depend on the order of the legs.
type sum struct {
	hi, lo uint64
}

func (s sum) add(x int64) sum {
	var ext uint64
	if x < 0 {
		ext = ^uint64(0)
	}
	lo, carry := bits.Add64(s.lo, uint64(x), 0)
	hi, _ := bits.Add64(s.hi, ext, carry)
	return sum{hi, lo}
}

func (s sum) isZero() bool { return s.hi == 0 && s.lo == 0 }

// int64 returns s, reporting whether it fits in an int64.
func (s sum) int64() (int64, bool) {
	if s.hi != uint64(int64(s.lo)>>63) {
		return 0, false
	}
	return int64(s.lo), true
}

// String implements fmt.Stringer.
func (s sum) String() string {
	if v, ok := s.int64(); ok {
		return fmt.Sprint(v)
	} else if int64(s.hi) < 0 {
		return "< min int64"
	}
	return "> max int64"
}

// netLegs groups legs by account in first-seen order, summing amounts and
// OR-ing approval flags, and drops accounts whose net is zero. The pre-drop
// total must be zero, and every net must fit in an int64.
func netLegs(what string, legs []leg) ([]leg, error) {
	index := make(map[Address]int)
	var groups []leg
	var sums []sum
	var total sum
	for _, l := range legs {
		if l.account.IsNone() {
			return nil, errMissing("%s transfer has no account", what)
		}
		total = total.add(l.amount)
		i, ok := index[l.account]
		if !ok {
			i = len(groups)
			index[l.account] = i
			groups = append(groups, leg{account: l.account})
			sums = append(sums, sum{})
		}
		sums[i] = sums[i].add(l.amount)
		groups[i].approved = groups[i].approved || l.approved
	}
	if !total.isZero() {
		return nil, errConflict("%s transfers do not balance: net %v", what, total)
	}
	out := groups[:0]
	for i, g := range groups {
		n, ok := sums[i].int64()
		if !ok {
			return nil, errRange("%s transfers to %v overflow", what, g.account)
		} else if n != 0 {
			g.amount = n
			out = append(out, g)
		}
	}
	return out, nil
}

// NetTransfers nets hbar transfers by account. The transfers must sum to zero,
// and at least one account must have a non-zero net.
func NetTransfers(transfers []HbarTransfer) ([]HbarTransfer, error) {
	out, err := netHbar(transfers)
	if err != nil {
		return nil, err
	} else if len(out) == 0 {
		return nil, errMissing("hbar transfer list is empty")
	}
	return out, nil
}

func netHbar(transfers []HbarTransfer) ([]HbarTransfer, error) {
	legs := make([]leg, len(transfers))
	for i, t := range transfers {
		legs[i] = leg{t.Account, int64(t.Amount), t.Approved}
	}
	netted, err := netLegs("hbar", legs)
	if err != nil {
		return nil, err
	}
	var out []HbarTransfer
	for _, l := range netted {
		out = append(out, HbarTransfer{l.account, Hbar(l.amount), l.approved})
	}
	return out, nil
}

// NetTokenTransfers groups fungible token transfers by token in first-seen
// order and nets each group by account. Each group must sum to zero; groups
// that net to nothing are dropped.
func NetTokenTransfers(transfers []TokenTransfer) ([]TokenTransferList, error) {
	index := make(map[Address]int)
	var tokens []Address
	var groups [][]leg
	for _, t := range transfers {
		if t.Token.IsNone() {
			return nil, errMissing("token transfer has no token")
		}
		i, ok := index[t.Token]
		if !ok {
			i = len(tokens)
			index[t.Token] = i
			tokens = append(tokens, t.Token)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], leg{t.Account, t.Amount, t.Approved})
	}
	var out []TokenTransferList
	for i, token := range tokens {
		netted, err := netLegs(fmt.Sprintf("token %v", token), groups[i])
		if err != nil {
			return nil, err
		} else if len(netted) == 0 {
			continue
		}
		tl := TokenTransferList{Token: token}
		for _, l := range netted {
			tl.Transfers = append(tl.Transfers, TokenTransfer{token, l.account, l.amount, l.approved})
		}
		out = append(out, tl)
	}
	return out, nil
}

// CheckNftTransfers validates NFT transfers: each must name a token, a
// positive serial, and both parties, and no serial may be moved twice.
func CheckNftTransfers(transfers []NftTransfer) error {
	seen := make(map[NftID]bool)
	for _, t := range transfers {
		id := NftID{t.Token, t.Serial}
		if t.Token.IsNone() {
			return errMissing("NFT transfer has no token")
		} else if t.Serial <= 0 {
			return errRange("NFT transfer of %v has invalid serial number", id)
		} else if t.Sender.IsNone() {
			return errMissing("NFT transfer of %v has no sender", id)
		} else if t.Receiver.IsNone() {
			return errMissing("NFT transfer of %v has no receiver", id)
		} else if seen[id] {
			return errConflict("NFT %v is transferred more than once", id)
		}
		seen[id] = true
	}
	return nil
}

// NetTransferList nets hbar and fungible token transfers and validates NFT
// transfers, merging token and NFT movements of the same token into one
// list. decimals optionally maps tokens to their expected decimals. At least
// one transfer must remain after netting.
func NetTransferList(hbar []HbarTransfer, tokens []TokenTransfer, nfts []NftTransfer, decimals map[Address]uint32) (TransferList, error) {
	var tl TransferList
	var err error
	if tl.Hbar, err = netHbar(hbar); err != nil {
		return TransferList{}, err
	} else if tl.Tokens, err = NetTokenTransfers(tokens); err != nil {
		return TransferList{}, err
	} else if err = CheckNftTransfers(nfts); err != nil {
		return TransferList{}, err
	}

	index := make(map[Address]int)
	for i, t := range tl.Tokens {
		index[t.Token] = i
	}
	for _, n := range nfts {
		i, ok := index[n.Token]
		if !ok {
			i = len(tl.Tokens)
			index[n.Token] = i
			tl.Tokens = append(tl.Tokens, TokenTransferList{Token: n.Token})
		}
		tl.Tokens[i].NftTransfers = append(tl.Tokens[i].NftTransfers, n)
	}
	for i := range tl.Tokens {
		if d, ok := decimals[tl.Tokens[i].Token]; ok {
			tl.Tokens[i].ExpectedDecimals = &d
		}
	}

	if len(tl.Hbar) == 0 && len(tl.Tokens) == 0 {
		return TransferList{}, errMissing("both hbar and token transfer lists are null or empty")
	}
	return tl, nil
}

// HbarTransfersToWire encodes netted hbar transfers. An empty list encodes
// as nil.
func HbarTransfersToWire(transfers []HbarTransfer) (*wire.TransferList, error) {
	if len(transfers) == 0 {
		return nil, nil
	}
	tl := new(wire.TransferList)
	for _, t := range transfers {
		id, err := AccountIDToWire(t.Account)
		if err != nil {
			return nil, err
		}
		tl.AccountAmounts = append(tl.AccountAmounts, &wire.AccountAmount{
			AccountID:  id,
			Amount:     int64(t.Amount),
			IsApproval: t.Approved,
		})
	}
	return tl, nil
}

// TokenTransfersToWire encodes netted token transfer lists.
func TokenTransfersToWire(lists []TokenTransferList) ([]*wire.TokenTransferList, error) {
	var out []*wire.TokenTransferList
	for _, l := range lists {
		token, err := TokenIDToWire(l.Token)
		if err != nil {
			return nil, err
		}
		w := &wire.TokenTransferList{Token: token}
		if l.ExpectedDecimals != nil {
			w.ExpectedDecimals = wrapperspb.UInt32(*l.ExpectedDecimals)
		}
		for _, t := range l.Transfers {
			id, err := AccountIDToWire(t.Account)
			if err != nil {
				return nil, err
			}
			w.Transfers = append(w.Transfers, &wire.AccountAmount{AccountID: id, Amount: t.Amount, IsApproval: t.Approved})
		}
		for _, n := range l.NftTransfers {
			sender, err := AccountIDToWire(n.Sender)
			if err != nil {
				return nil, err
			}
			receiver, err := AccountIDToWire(n.Receiver)
			if err != nil {
				return nil, err
			}
			w.NftTransfers = append(w.NftTransfers, &wire.NftTransfer{
				SenderAccountID:   sender,
				ReceiverAccountID: receiver,
				SerialNumber:      n.Serial,
				IsApproval:        n.Approved,
			})
		}
		out = append(out, w)
	}
	return out, nil
}

// ToWire encodes tl.
func (tl TransferList) ToWire() (*wire.TransferList, []*wire.TokenTransferList, error) {
	hbar, err := HbarTransfersToWire(tl.Hbar)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := TokenTransfersToWire(tl.Tokens)
	if err != nil {
		return nil, nil, err
	}
	return hbar, tokens, nil
}
