package types

import (
	"reflect"
	"testing"
	"time"

	"go.hashgraph.tech/core/wire"
)

func TestReceiptFromWire(t *testing.T) {
	id := NewTransactionID(NewAddress(0, 0, 2))
	account := &wire.AccountID{AccountNum: 1001}
	file := &wire.FileID{EntityNum: 150}
	topic := &wire.TopicID{EntityNum: 77}
	contract := &wire.ContractID{ContractNum: 5005}

	tests := []struct {
		w   *wire.TransactionReceipt
		exp any
	}{
		{&wire.TransactionReceipt{AccountID: account}, ReceiptAccountCreated{NewAddress(0, 0, 1001)}},
		{&wire.TransactionReceipt{FileID: file}, ReceiptFileCreated{NewAddress(0, 0, 150)}},
		{&wire.TransactionReceipt{TopicID: topic}, ReceiptTopicCreated{NewAddress(0, 0, 77)}},
		{&wire.TransactionReceipt{ContractID: contract}, ReceiptContractCreated{NewAddress(0, 0, 5005)}},
		{
			&wire.TransactionReceipt{TopicSequenceNumber: 3, TopicRunningHash: []byte{1, 2, 3}, TopicRunningHashVersion: 3},
			ReceiptMessageSubmitted{3, []byte{1, 2, 3}, 3},
		},
		{&wire.TransactionReceipt{TopicSequenceNumber: 3}, nil},
		// ties are broken by priority
		{&wire.TransactionReceipt{FileID: file, AccountID: account}, ReceiptAccountCreated{NewAddress(0, 0, 1001)}},
		{&wire.TransactionReceipt{ContractID: contract, TopicID: topic}, ReceiptTopicCreated{NewAddress(0, 0, 77)}},
		{&wire.TransactionReceipt{ContractID: contract, TopicRunningHash: []byte{1}}, ReceiptContractCreated{NewAddress(0, 0, 5005)}},
	}
	for i, test := range tests {
		r := ReceiptFromWire(id, roundtrip(t, test.w))
		var got any
		if r.Result != nil {
			got = r.Result
		}
		if !reflect.DeepEqual(got, test.exp) {
			t.Errorf("%d: expected %#v, got %#v", i, test.exp, got)
		} else if r.TransactionID != id {
			t.Errorf("%d: expected transaction ID %v, got %v", i, id, r.TransactionID)
		}
	}
}

func TestReceiptTopicOnly(t *testing.T) {
	w := &wire.TransactionReceipt{
		Status:  wire.ResponseSuccess,
		TopicID: &wire.TopicID{ShardNum: 0, RealmNum: 0, EntityNum: 42},
	}
	r := ReceiptFromWire(TransactionID{}, roundtrip(t, w))
	res, ok := r.Result.(ReceiptTopicCreated)
	if !ok {
		t.Fatalf("expected topic result, got %T", r.Result)
	} else if res.Topic != NewAddress(0, 0, 42) {
		t.Fatalf("expected topic 0.0.42, got %v", res.Topic)
	} else if r.Status != wire.ResponseSuccess {
		t.Fatalf("expected SUCCESS, got %v", r.Status)
	} else if !r.Token.IsNone() || !r.Schedule.IsNone() {
		t.Fatal("expected no other identifiers")
	}
}

func TestReceiptCommonFields(t *testing.T) {
	expiry := time.Unix(1700000000, 0).UTC()
	w := &wire.TransactionReceipt{
		Status: wire.ResponseSuccess,
		ExchangeRate: &wire.ExchangeRateSet{
			CurrentRate: &wire.ExchangeRate{HbarEquiv: 1, CentEquiv: 12, ExpirationTime: &wire.TimestampSeconds{Seconds: expiry.Unix()}},
			NextRate:    &wire.ExchangeRate{HbarEquiv: 1, CentEquiv: 13},
		},
		TokenID:        &wire.TokenID{EntityNum: 9},
		NewTotalSupply: 1000,
		SerialNumbers:  []int64{1, 2, 3},
	}
	r := ReceiptFromWire(TransactionID{}, roundtrip(t, w))
	if r.CurrentRate == nil || *r.CurrentRate != (ExchangeRate{1, 12, expiry}) {
		t.Fatalf("unexpected current rate %+v", r.CurrentRate)
	} else if r.NextRate == nil || r.NextRate.Cents != 13 || !r.NextRate.Expiration.IsZero() {
		t.Fatalf("unexpected next rate %+v", r.NextRate)
	} else if r.Token != NewAddress(0, 0, 9) || r.NewTotalSupply != 1000 {
		t.Fatalf("unexpected token fields %v %v", r.Token, r.NewTotalSupply)
	} else if !reflect.DeepEqual(r.Serials, []int64{1, 2, 3}) {
		t.Fatalf("unexpected serials %v", r.Serials)
	} else if r.Result != nil {
		t.Fatalf("expected generic receipt, got %T", r.Result)
	}
}

func TestRecordFromWire(t *testing.T) {
	payer := NewAddress(0, 0, 2)
	id := NewTransactionID(payer)
	wid, err := TransactionIDToWire(id)
	if err != nil {
		t.Fatal(err)
	}
	prng := int32(7)
	w := &wire.TransactionRecord{
		Receipt:            &wire.TransactionReceipt{Status: wire.ResponseSuccess, AccountID: &wire.AccountID{AccountNum: 1001}},
		TransactionHash:    []byte{0xAA, 0xBB},
		ConsensusTimestamp: &wire.Timestamp{Seconds: 1700000000, Nanos: 5},
		TransactionID:      wid,
		Memo:               "hello",
		TransactionFee:     1234,
		TransferList: &wire.TransferList{AccountAmounts: []*wire.AccountAmount{
			{AccountID: &wire.AccountID{AccountNum: 2}, Amount: -1000},
			{AccountID: &wire.AccountID{AccountNum: 3}, Amount: 100},
			{AccountID: &wire.AccountID{AccountNum: 1001}, Amount: 900},
		}},
		TokenTransferLists: []*wire.TokenTransferList{{
			Token: &wire.TokenID{EntityNum: 9},
			Transfers: []*wire.AccountAmount{
				{AccountID: &wire.AccountID{AccountNum: 2}, Amount: -5},
				{AccountID: &wire.AccountID{AccountNum: 1001}, Amount: 5},
			},
			NftTransfers: []*wire.NftTransfer{{
				SenderAccountID:   &wire.AccountID{AccountNum: 2},
				ReceiverAccountID: &wire.AccountID{AccountNum: 1001},
				SerialNumber:      4,
			}},
		}},
		AssessedCustomFees: []*wire.AssessedCustomFee{{
			Amount:                1,
			FeeCollectorAccountID: &wire.AccountID{AccountNum: 98},
			EffectivePayers:       []*wire.AccountID{{AccountNum: 2}},
		}},
		PrngNumber: &prng,
	}
	r := RecordFromWire(TransactionID{}, roundtrip(t, w))

	if !r.TransactionID.ValidStart.Equal(id.ValidStart) || r.TransactionID.Account != payer {
		t.Fatalf("expected transaction ID %v, got %v", id, r.TransactionID)
	} else if _, ok := r.Result.(ReceiptAccountCreated); !ok {
		t.Fatalf("expected account result, got %T", r.Result)
	} else if r.Memo != "hello" || r.Fee != 1234 {
		t.Fatalf("unexpected memo or fee: %q %v", r.Memo, r.Fee)
	} else if !r.ConsensusTime.Equal(time.Unix(1700000000, 5)) {
		t.Fatalf("unexpected consensus time %v", r.ConsensusTime)
	}
	expTransfers := map[Address]Hbar{
		NewAddress(0, 0, 2):    -1000,
		NewAddress(0, 0, 3):    100,
		NewAddress(0, 0, 1001): 900,
	}
	if !reflect.DeepEqual(r.Transfers, expTransfers) {
		t.Fatalf("expected %v, got %v", expTransfers, r.Transfers)
	}
	expTokens := map[Address]map[Address]int64{
		NewAddress(0, 0, 9): {
			NewAddress(0, 0, 2):    -5,
			NewAddress(0, 0, 1001): 5,
		},
	}
	if !reflect.DeepEqual(r.TokenTransfers, expTokens) {
		t.Fatalf("expected %v, got %v", expTokens, r.TokenTransfers)
	}
	expNft := []NftTransfer{{NewAddress(0, 0, 9), 4, NewAddress(0, 0, 2), NewAddress(0, 0, 1001), false}}
	if !reflect.DeepEqual(r.NftTransfers, expNft) {
		t.Fatalf("expected %v, got %v", expNft, r.NftTransfers)
	}
	if len(r.AssessedFees) != 1 || r.AssessedFees[0].Collector != NewAddress(0, 0, 98) || len(r.AssessedFees[0].Payers) != 1 {
		t.Fatalf("unexpected assessed fees %v", r.AssessedFees)
	} else if r.PrngNumber == nil || *r.PrngNumber != 7 || r.PrngBytes != nil {
		t.Fatal("expected PRNG number")
	}
}
