package ops

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
	"lukechampine.com/frand"
)

var (
	alice    = types.NewAddress(0, 0, 1001)
	bob      = types.NewAddress(0, 0, 1002)
	node3    = types.NewAddress(0, 0, 3)
	file     = types.NewAddress(0, 0, 150)
	contract = types.NewAddress(0, 0, 2001)
	topic    = types.NewAddress(0, 0, 3001)
	token    = types.NewAddress(0, 0, 4001)
	schedule = types.NewAddress(0, 0, 5001)
)

func randomKey() types.Key {
	return types.KeyEd25519(ed25519.NewKeyFromSeed(frand.Bytes(ed25519.SeedSize)).Public().(ed25519.PublicKey))
}

// sampleTransactions returns a valid instance of every transaction variant.
func sampleTransactions() []Transaction {
	key := randomKey()
	memo := "updated"
	future := time.Unix(2_000_000_000, 0)
	transfer := Transfer{Hbar: []types.HbarTransfer{{Account: alice, Amount: -10}, {Account: bob, Amount: 10}}}
	airdrops := []PendingAirdrop{{Sender: alice, Receiver: bob, Token: token}}
	return []Transaction{
		AccountCreate{Key: key},
		AccountUpdate{Account: alice, Memo: &memo},
		AccountDelete{Account: alice, TransferAccount: bob},
		transfer,
		AccountAllowanceApprove{Hbar: []HbarAllowance{{Spender: bob, Amount: 5}}},
		AccountAllowanceDelete{Nfts: []NftAllowanceRemoval{{Token: token, Serials: []int64{1}}}},
		FileCreate{Keys: []types.Key{key}, Contents: []byte("hello")},
		FileUpdate{File: file, Contents: []byte("world")},
		FileAppend{File: file, Contents: []byte("!")},
		FileDelete{File: file},
		ContractCreate{Bytecode: []byte{0x60, 0x80}, Gas: 100_000},
		ContractUpdate{Contract: contract, Memo: &memo},
		ContractExecute{Contract: contract, Gas: 50_000},
		ContractDelete{Contract: contract, TransferAccount: alice},
		Ethereum{Data: []byte{0x02, 0xf8}},
		SystemDelete{File: file, Expiration: future},
		SystemUndelete{File: file},
		Freeze{Type: FreezeOnly, StartTime: future},
		TopicCreate{Memo: "topic"},
		TopicUpdate{Topic: topic, Memo: &memo},
		TopicDelete{Topic: topic},
		TopicMessageSubmit{Topic: topic, Message: []byte("hi")},
		TokenCreate{Name: "Token", Symbol: "TOK", Treasury: alice},
		TokenUpdate{Token: token, Name: "Renamed"},
		TokenDelete{Token: token},
		TokenMint{Token: token, Amount: 1},
		TokenBurn{Token: token, Amount: 1},
		TokenWipe{Token: token, Account: bob, Amount: 1},
		TokenFreeze{TokenAccount{token, bob}},
		TokenUnfreeze{TokenAccount{token, bob}},
		TokenGrantKyc{TokenAccount{token, bob}},
		TokenRevokeKyc{TokenAccount{token, bob}},
		TokenAssociate{Account: bob, Tokens: []types.Address{token}},
		TokenDissociate{Account: bob, Tokens: []types.Address{token}},
		TokenFeeScheduleUpdate{Token: token},
		TokenPause{Token: token},
		TokenUnpause{Token: token},
		TokenUpdateNfts{Token: token, Serials: []int64{1}, Metadata: []byte{1}},
		TokenReject{Tokens: []types.Address{token}},
		TokenAirdrop{Tokens: []types.TokenTransfer{{Token: token, Account: alice, Amount: -5}, {Token: token, Account: bob, Amount: 5}}},
		TokenCancelAirdrop{Airdrops: airdrops},
		TokenClaimAirdrop{Airdrops: airdrops},
		ScheduleCreate{Transaction: transfer},
		ScheduleSign{Schedule: schedule},
		ScheduleDelete{Schedule: schedule},
		Prng{Range: 10},
		UncheckedSubmit{Transaction: []byte{1, 2, 3}},
		NodeCreate{
			Account:             alice,
			GossipEndpoints:     []Endpoint{{IP: net.IPv4(10, 0, 0, 1), Port: 50111}},
			ServiceEndpoints:    []Endpoint{{Domain: "node.example.com", Port: 50211}},
			GossipCACertificate: []byte{1},
			AdminKey:            key,
		},
		NodeUpdate{Node: 3, Description: &memo},
		NodeDelete{Node: 3},
	}
}

func sampleQueries() []Query {
	id := types.TransactionID{Account: alice, ValidStart: time.Unix(1_700_000_000, 0)}
	return []Query{
		AccountBalance{Account: alice},
		AccountInfo{Account: alice},
		AccountRecords{Account: alice},
		TransactionReceipt{TransactionID: id},
		TransactionRecord{TransactionID: id},
		FileContents{File: file},
		FileInfo{File: file},
		ContractInfo{Contract: contract},
		ContractBytecode{Contract: contract},
		ContractCallLocal{Contract: contract, Gas: 30_000},
		TopicInfo{Topic: topic},
		TokenInfo{Token: token},
		TokenNftInfo{Nft: types.NftID{Token: token, Serial: 1}},
		ScheduleInfo{Schedule: schedule},
		NetworkVersionInfo{},
	}
}

func TestTableComplete(t *testing.T) {
	var txns, queries int
	for _, tag := range Tags() {
		d := tag.desc()
		if d.name == "" || d.field == 0 || d.method.Service == "" || d.method.Method == "" || d.failure == "" {
			t.Errorf("%v: incomplete descriptor %+v", tag, d)
		}
		if tag.IsQuery() {
			queries++
		} else {
			txns++
		}
	}
	if txns != 50 || queries != 15 {
		t.Fatalf("expected 50 transactions and 15 queries, got %d and %d", txns, queries)
	}
	if len(byField[0]) != txns || len(byField[1]) != queries {
		t.Fatal("envelope fields are not unique")
	}

	seen := make(map[Tag]bool)
	for _, tx := range sampleTransactions() {
		seen[tx.Tag()] = true
	}
	for _, q := range sampleQueries() {
		seen[q.Tag()] = true
	}
	for _, tag := range Tags() {
		if !seen[tag] {
			t.Errorf("no sample for %v", tag)
		}
	}
}

func TestTagString(t *testing.T) {
	if s := TagTokenAirdrop.String(); s != "TokenAirdrop" {
		t.Fatalf("expected TokenAirdrop, got %q", s)
	} else if s := Tag(0).String(); s != "Tag(0)" {
		t.Fatalf("expected Tag(0), got %q", s)
	} else if s := TagAccountCreate.Method().FullName(); s != "/proto.CryptoService/createAccount" {
		t.Fatalf("unexpected method %q", s)
	}
}

func TestBuildEnvelope(t *testing.T) {
	id := types.TransactionID{Account: alice, ValidStart: time.Unix(1_700_000_000, 42)}
	h, err := NewHeader(id, node3, types.NewHbar(2), 0, "memo")
	if err != nil {
		t.Fatal(err)
	}
	for _, tx := range sampleTransactions() {
		body, err := Build(tx)
		if err != nil {
			t.Errorf("%v: %v", tx.Tag(), err)
			continue
		}
		env := body.Envelope(h)
		b := wire.Marshal(env)
		if !bytes.Equal(b, wire.Marshal(body.Envelope(h))) {
			t.Errorf("%v: encoding is not deterministic", tx.Tag())
		}

		var decoded wire.TransactionBody
		if err := wire.Unmarshal(b, &decoded); err != nil {
			t.Errorf("%v: %v", tx.Tag(), err)
			continue
		}
		tag, err := TagOf(&decoded)
		if err != nil {
			t.Errorf("%v: %v", tx.Tag(), err)
		} else if tag != tx.Tag() {
			t.Errorf("expected %v, got %v", tx.Tag(), tag)
		}
		m, err := Method(&decoded)
		if err != nil {
			t.Errorf("%v: %v", tx.Tag(), err)
		} else if m != tx.Tag().Method() {
			t.Errorf("%v: expected method %v, got %v", tx.Tag(), tx.Tag().Method(), m)
		}
		if decoded.TransactionFee != uint64(types.NewHbar(2)) || decoded.Memo != "memo" {
			t.Errorf("%v: header fields not preserved", tx.Tag())
		}
	}
}

func TestNewHeaderInvalid(t *testing.T) {
	id := types.TransactionID{Account: alice, ValidStart: time.Unix(1_700_000_000, 0)}
	tests := []struct {
		node     types.Address
		fee      types.Hbar
		duration time.Duration
		memo     string
		err      error
	}{
		{node3, -1, 0, "", types.ErrOutOfRangeValue},
		{node3, 1, 181 * time.Second, "", types.ErrOutOfRangeValue},
		{node3, 1, time.Millisecond, "", types.ErrOutOfRangeValue},
		{node3, 1, 0, strings.Repeat("x", 101), types.ErrOutOfRangeValue},
		{types.Address{}, 1, 0, "", types.ErrMissingRequiredField},
		{types.NewAliasAddress(0, 0, types.EVMAddress{1}), 1, 0, "", types.ErrOutOfRangeValue},
	}
	for i, test := range tests {
		if _, err := NewHeader(id, test.node, test.fee, test.duration, test.memo); !errors.Is(err, test.err) {
			t.Errorf("%d: expected %v, got %v", i, test.err, err)
		}
	}
	if _, err := NewHeader(types.TransactionID{}, node3, 1, 0, ""); err == nil {
		t.Error("expected error for empty transaction ID")
	}
}

func TestSchedulable(t *testing.T) {
	notSchedulable := map[Tag]bool{
		TagEthereum:               true,
		TagFreeze:                 true,
		TagTokenFeeScheduleUpdate: true,
		TagScheduleCreate:         true,
		TagScheduleSign:           true,
		TagUncheckedSubmit:        true,
		TagNodeCreate:             true,
		TagNodeUpdate:             true,
		TagNodeDelete:             true,
	}
	fields := make(map[int32]Tag)
	for _, tx := range sampleTransactions() {
		body, err := Build(tx)
		if err != nil {
			t.Fatalf("%v: %v", tx.Tag(), err)
		}
		sb, err := body.Schedulable(types.NewHbar(1), "scheduled")
		if notSchedulable[tx.Tag()] {
			if !errors.Is(err, types.ErrUnsupportedOperationVariant) {
				t.Errorf("%v: expected unsupported variant, got %v", tx.Tag(), err)
			} else if tx.Tag().IsSchedulable() {
				t.Errorf("%v: reported as schedulable", tx.Tag())
			}
			continue
		} else if err != nil {
			t.Errorf("%v: %v", tx.Tag(), err)
			continue
		}
		f := int32(sb.Data.Field)
		if other, ok := fields[f]; ok {
			t.Errorf("%v and %v share schedulable field %d", tx.Tag(), other, f)
		}
		fields[f] = tx.Tag()
		if sb.Memo != "scheduled" || sb.TransactionFee != uint64(types.NewHbar(1)) {
			t.Errorf("%v: schedulable header not preserved", tx.Tag())
		}
	}
}

func TestScheduleCreate(t *testing.T) {
	inner := TokenMint{Token: token, Amount: 10}
	body, err := Build(ScheduleCreate{Transaction: inner, MaxFee: 7, TransactionMemo: "inner", Memo: "outer", Payer: bob})
	if err != nil {
		t.Fatal(err)
	}
	sc := body.Msg.(*wire.ScheduleCreateTransactionBody)
	if sc.Memo != "outer" || sc.ScheduledTransactionBody.Memo != "inner" || sc.ScheduledTransactionBody.TransactionFee != 7 {
		t.Fatalf("unexpected schedule body %+v", sc)
	} else if sc.ScheduledTransactionBody.Data.Field != descriptors[TagTokenMint].scheduled {
		t.Fatalf("wrong scheduled field %d", sc.ScheduledTransactionBody.Data.Field)
	}
	innerBody, _ := Build(inner)
	if !bytes.Equal(wire.Marshal(sc.ScheduledTransactionBody.Data.Msg), innerBody.Bytes()) {
		t.Fatal("scheduled body differs from the standalone body")
	}

	// nested schedules and non-schedulable variants are rejected
	for _, tx := range []Transaction{
		ScheduleCreate{Transaction: ScheduleCreate{Transaction: inner}},
		ScheduleCreate{Transaction: Freeze{Type: FreezeAbort}},
	} {
		if _, err := Build(tx); !errors.Is(err, types.ErrUnsupportedOperationVariant) {
			t.Errorf("expected unsupported variant, got %v", err)
		}
	}
	if _, err := Build(ScheduleCreate{}); !errors.Is(err, types.ErrMissingRequiredField) {
		t.Errorf("expected missing field, got %v", err)
	}
	if _, err := Build(ScheduleCreate{Transaction: TokenMint{Token: token}}); !errors.Is(err, types.ErrMissingRequiredField) {
		t.Errorf("expected inner validation error, got %v", err)
	}
}

func TestSystemDeleteRouting(t *testing.T) {
	id := types.TransactionID{Account: alice, ValidStart: time.Unix(1_700_000_000, 0)}
	h, err := NewHeader(id, node3, 1, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	exp := time.Unix(2_000_000_000, 0)
	tests := []struct {
		tx      Transaction
		service string
	}{
		{SystemDelete{File: file, Expiration: exp}, ServiceFile},
		{SystemDelete{Contract: contract, Expiration: exp}, ServiceSmartContract},
		{SystemUndelete{File: file}, ServiceFile},
		{SystemUndelete{Contract: contract}, ServiceSmartContract},
	}
	for _, test := range tests {
		body, err := Build(test.tx)
		if err != nil {
			t.Fatal(err)
		}
		// route both the typed body and its decoded form
		env := body.Envelope(h)
		var decoded wire.TransactionBody
		if err := wire.Unmarshal(wire.Marshal(env), &decoded); err != nil {
			t.Fatal(err)
		}
		for _, b := range []*wire.TransactionBody{env, &decoded} {
			m, err := Method(b)
			if err != nil {
				t.Fatal(err)
			} else if m.Service != test.service || m.Method != test.tx.Tag().Method().Method {
				t.Errorf("%v: expected %v service, got %v", test.tx.Tag(), test.service, m)
			}
		}
	}

	for _, tx := range []Transaction{
		SystemDelete{Expiration: exp},
		SystemDelete{File: file, Contract: contract, Expiration: exp},
		SystemDelete{File: file},
	} {
		if _, err := Build(tx); err == nil {
			t.Errorf("expected error for %+v", tx)
		}
	}
}

func TestTagOfInvalid(t *testing.T) {
	if _, err := TagOf(nil); !errors.Is(err, types.ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	body := &wire.TransactionBody{Data: wire.Oneof{Field: 999, Msg: wire.RawMessage{}}}
	if _, err := TagOf(body); !errors.Is(err, types.ErrProtocolMismatch) {
		t.Fatalf("expected protocol mismatch, got %v", err)
	}
}

func TestValidatePrecheck(t *testing.T) {
	id := types.TransactionID{Account: alice, ValidStart: time.Unix(1_700_000_000, 0)}
	if err := ValidatePrecheck(TagTransfer, id, &wire.TransactionResponse{}); err != nil {
		t.Fatal(err)
	}
	err := ValidatePrecheck(TagTransfer, id, &wire.TransactionResponse{NodeTransactionPrecheckCode: wire.ResponseBusy, Cost: 5})
	var pe *types.PrecheckError
	if !errors.Is(err, types.ErrNetworkPrecheckFailure) || !errors.As(err, &pe) {
		t.Fatalf("expected precheck failure, got %v", err)
	} else if pe.Status != wire.ResponseBusy || pe.Cost != 5 || pe.TransactionID != id {
		t.Fatalf("unexpected precheck error %+v", pe)
	}
	if err := ValidatePrecheck(TagTransfer, id, nil); !errors.Is(err, types.ErrProtocolMismatch) {
		t.Fatalf("expected protocol mismatch, got %v", err)
	}
}

func TestValidateReceipt(t *testing.T) {
	id := types.TransactionID{Account: alice, ValidStart: time.Unix(1_700_000_000, 0)}
	if err := ValidateReceipt(TagAccountCreate, types.Receipt{TransactionID: id, Status: wire.ResponseSuccess}); err != nil {
		t.Fatal(err)
	}
	err := ValidateReceipt(TagAccountCreate, types.Receipt{TransactionID: id, Status: wire.ResponseInvalidSignature})
	var ee *types.ExecutionError
	if !errors.As(err, &ee) || !errors.Is(err, types.ErrTransactionExecutionFailure) {
		t.Fatalf("expected execution error, got %v", err)
	} else if ee.Message != "Unable to create account, status: INVALID_SIGNATURE" {
		t.Fatalf("unexpected message %q", ee.Message)
	} else if ee.TransactionID != id || ee.Status != wire.ResponseInvalidSignature {
		t.Fatalf("unexpected execution error %+v", ee)
	}
}

func TestBlankUpdates(t *testing.T) {
	for _, tx := range []Transaction{
		AccountUpdate{Account: alice},
		FileUpdate{File: file},
		ContractUpdate{Contract: contract},
		TopicUpdate{Topic: topic},
		TokenUpdate{Token: token},
		TokenUpdateNfts{Token: token, Serials: []int64{1}},
		NodeUpdate{Node: 1},
	} {
		if _, err := Build(tx); !errors.Is(err, types.ErrConflictingOrBlankUpdate) {
			t.Errorf("%v: expected blank update, got %v", tx.Tag(), err)
		}
	}
}

func TestInvalidTransactions(t *testing.T) {
	node := int64(3)
	nftFee := types.CustomFee{Collector: alice, Type: types.FeeTypeRoyalty{Numerator: 1, Denominator: 10}}
	tests := []struct {
		tx  Transaction
		err error
	}{
		{AccountCreate{}, types.ErrMissingRequiredField},
		{AccountCreate{Key: randomKey(), InitialBalance: -1}, types.ErrOutOfRangeValue},
		{AccountCreate{Key: randomKey(), AutoRenewPeriod: time.Hour}, types.ErrOutOfRangeValue},
		{AccountCreate{Key: randomKey(), StakedAccount: bob, StakedNode: &node}, types.ErrConflictingOrBlankUpdate},
		{AccountCreate{Key: randomKey(), MaxAutomaticTokenAssociations: -2}, types.ErrOutOfRangeValue},
		{AccountDelete{Account: alice, TransferAccount: alice}, types.ErrConflictingOrBlankUpdate},
		{AccountDelete{Account: alice}, types.ErrMissingRequiredField},
		{Transfer{}, types.ErrMissingRequiredField},
		{Transfer{Hbar: []types.HbarTransfer{{Account: alice, Amount: -10}, {Account: bob, Amount: 9}}}, types.ErrConflictingOrBlankUpdate},
		{AccountAllowanceApprove{}, types.ErrMissingRequiredField},
		{AccountAllowanceApprove{Nfts: []NftAllowance{{Token: token, Spender: bob}}}, types.ErrMissingRequiredField},
		{AccountAllowanceApprove{Nfts: []NftAllowance{{Token: token, Spender: bob, Serials: []int64{1, 1}}}}, types.ErrConflictingOrBlankUpdate},
		{AccountAllowanceDelete{Nfts: []NftAllowanceRemoval{{Token: token}}}, types.ErrMissingRequiredField},
		{FileAppend{File: file}, types.ErrMissingRequiredField},
		{FileAppend{File: file, Contents: make([]byte, 4097)}, types.ErrOutOfRangeValue},
		{ContractCreate{Gas: 1}, types.ErrMissingRequiredField},
		{ContractCreate{Bytecode: []byte{1}, BytecodeFile: file, Gas: 1}, types.ErrConflictingOrBlankUpdate},
		{ContractCreate{Bytecode: []byte{1}}, types.ErrOutOfRangeValue},
		{ContractExecute{Contract: contract, Gas: 1, Amount: -1}, types.ErrOutOfRangeValue},
		{ContractDelete{Contract: contract}, types.ErrMissingRequiredField},
		{ContractDelete{Contract: contract, TransferAccount: alice, TransferContract: contract}, types.ErrConflictingOrBlankUpdate},
		{Ethereum{}, types.ErrMissingRequiredField},
		{Freeze{Type: FreezeUpgrade}, types.ErrMissingRequiredField},
		{Freeze{Type: FreezePrepareUpgrade, UpdateFile: file}, types.ErrMissingRequiredField},
		{Freeze{Type: 99}, types.ErrOutOfRangeValue},
		{TopicCreate{AutoRenewAccount: alice}, types.ErrMissingRequiredField},
		{TopicMessageSubmit{Topic: topic, Message: make([]byte, 1025)}, types.ErrOutOfRangeValue},
		{TokenCreate{Symbol: "T", Treasury: alice}, types.ErrMissingRequiredField},
		{TokenCreate{Name: "T", Symbol: "T", Treasury: alice, NonFungible: true, Decimals: 2, SupplyKey: randomKey()}, types.ErrConflictingOrBlankUpdate},
		{TokenCreate{Name: "T", Symbol: "T", Treasury: alice, NonFungible: true}, types.ErrMissingRequiredField},
		{TokenCreate{Name: "T", Symbol: "T", Treasury: alice, InitialSupply: 10, MaxSupply: 5}, types.ErrOutOfRangeValue},
		{TokenCreate{Name: "T", Symbol: "T", Treasury: alice, CustomFees: []types.CustomFee{nftFee}}, types.ErrUnsupportedOperationVariant},
		{TokenMint{Token: token}, types.ErrMissingRequiredField},
		{TokenMint{Token: token, Amount: 1, Metadata: [][]byte{{1}}}, types.ErrConflictingOrBlankUpdate},
		{TokenBurn{Token: token, Serials: []int64{0}}, types.ErrOutOfRangeValue},
		{TokenAssociate{Account: bob}, types.ErrMissingRequiredField},
		{TokenAssociate{Account: bob, Tokens: []types.Address{token, token}}, types.ErrConflictingOrBlankUpdate},
		{TokenReject{}, types.ErrMissingRequiredField},
		{TokenReject{Tokens: make([]types.Address, 11)}, types.ErrOutOfRangeValue},
		{TokenCancelAirdrop{}, types.ErrMissingRequiredField},
		{TokenClaimAirdrop{Airdrops: make([]PendingAirdrop, 11)}, types.ErrOutOfRangeValue},
		{Prng{Range: -1}, types.ErrOutOfRangeValue},
		{UncheckedSubmit{}, types.ErrMissingRequiredField},
		{NodeCreate{Account: alice, AdminKey: randomKey(), GossipCACertificate: []byte{1}}, types.ErrMissingRequiredField},
		{NodeCreate{
			Account:             alice,
			AdminKey:            randomKey(),
			GossipCACertificate: []byte{1},
			GossipEndpoints:     []Endpoint{{IP: net.ParseIP("::1"), Port: 1}},
			ServiceEndpoints:    []Endpoint{{Domain: "a", Port: 1}},
		}, types.ErrOutOfRangeValue},
		{NodeUpdate{Node: 1, ServiceEndpoints: []Endpoint{{IP: net.IPv4(1, 2, 3, 4), Domain: "a"}}}, types.ErrConflictingOrBlankUpdate},
	}
	for i, test := range tests {
		_, err := Build(test.tx)
		if !errors.Is(err, test.err) {
			t.Errorf("%d (%v): expected %v, got %v", i, test.tx.Tag(), test.err, err)
		} else if !strings.HasPrefix(err.Error(), test.tx.Tag().String()+": ") {
			t.Errorf("%d: error %q does not name the variant", i, err)
		}
	}
}

func TestQueries(t *testing.T) {
	payment := &wire.Transaction{SignedTransactionBytes: []byte{1}}
	for _, q := range sampleQueries() {
		qb, err := BuildQuery(q)
		if err != nil {
			t.Errorf("%v: %v", q.Tag(), err)
			continue
		}
		env := qb.Envelope(&wire.QueryHeader{Payment: payment, ResponseType: wire.CostAnswer})
		m, err := QueryMethod(env)
		if err != nil {
			t.Errorf("%v: %v", q.Tag(), err)
		} else if m != q.Tag().Method() {
			t.Errorf("%v: expected %v, got %v", q.Tag(), q.Tag().Method(), m)
		}

		// the header is the first field of every query body
		d := wire.NewDecoder(wire.Marshal(env.Data.Msg))
		if !d.Next() || d.Field() != 1 {
			t.Errorf("%v: header not encoded first", q.Tag())
		}
	}

	for _, q := range []Query{
		AccountBalance{},
		AccountBalance{Account: alice, Contract: contract},
		AccountInfo{},
		TransactionReceipt{},
		ContractCallLocal{Contract: contract},
		TokenNftInfo{Nft: types.NftID{Token: token}},
	} {
		if _, err := BuildQuery(q); err == nil {
			t.Errorf("%v: expected error", q.Tag())
		}
	}
}

func TestQueryIsFree(t *testing.T) {
	for _, q := range sampleQueries() {
		qb, err := BuildQuery(q)
		if err != nil {
			t.Fatal(err)
		}
		free := q.Tag() == TagAccountBalance || q.Tag() == TagTransactionReceipt
		if qb.IsFree() != free {
			t.Errorf("%v: expected free=%v", q.Tag(), free)
		}
	}
}

func TestQueryEnvelopeCopies(t *testing.T) {
	for _, q := range sampleQueries() {
		qb, err := BuildQuery(q)
		if err != nil {
			t.Fatal(err)
		}
		before := wire.Marshal(qb.Msg)
		first := qb.Envelope(&wire.QueryHeader{ResponseType: wire.AnswerOnly})
		firstBytes := wire.Marshal(first)
		second := qb.Envelope(&wire.QueryHeader{ResponseType: wire.CostAnswer})
		if !bytes.Equal(wire.Marshal(first), firstBytes) {
			t.Errorf("%v: later envelope changed an earlier one", q.Tag())
		} else if bytes.Equal(wire.Marshal(second), firstBytes) {
			t.Errorf("%v: envelopes with different headers encode the same", q.Tag())
		} else if !bytes.Equal(wire.Marshal(qb.Msg), before) {
			t.Errorf("%v: envelope modified the body", q.Tag())
		}
	}
}

func TestIsPending(t *testing.T) {
	for _, s := range []types.Status{wire.ResponseUnknown, wire.ResponseBusy, wire.ResponseReceiptNotFound, wire.ResponseRecordNotFound, wire.ResponseOK} {
		if !IsPending(s) {
			t.Errorf("%v should be pending", s)
		}
	}
	for _, s := range []types.Status{wire.ResponseSuccess, wire.ResponseInvalidSignature, wire.ResponseDuplicateTransaction} {
		if IsPending(s) {
			t.Errorf("%v should not be pending", s)
		}
	}
}
