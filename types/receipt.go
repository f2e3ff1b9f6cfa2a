package types

import (
	"time"

	"go.hashgraph.tech/core/wire"
)

// An ExchangeRate is the price of hbar in US cents, valid until Expiration.
type ExchangeRate struct {
	Hbar       int32
	Cents      int32
	Expiration time.Time
}

// ExchangeRateFromWire decodes an exchange rate. A nil rate decodes to nil.
func ExchangeRateFromWire(r *wire.ExchangeRate) *ExchangeRate {
	if r == nil {
		return nil
	}
	er := &ExchangeRate{Hbar: r.HbarEquiv, Cents: r.CentEquiv}
	if r.ExpirationTime != nil {
		er.Expiration = time.Unix(r.ExpirationTime.Seconds, 0).UTC()
	}
	return er
}

// A Receipt is the outcome of an executed transaction. Result holds the
// variant-specific part, if any.
type Receipt struct {
	TransactionID          TransactionID
	Status                 Status
	CurrentRate            *ExchangeRate
	NextRate               *ExchangeRate
	Token                  Address
	NewTotalSupply         uint64
	Serials                []int64
	Schedule               Address
	ScheduledTransactionID TransactionID
	NodeID                 uint64

	Result interface{ isReceiptResult() }
}

// ReceiptAccountCreated is the result of creating an account.
type ReceiptAccountCreated struct {
	Account Address
}

// ReceiptFileCreated is the result of creating a file.
type ReceiptFileCreated struct {
	File Address
}

// ReceiptTopicCreated is the result of creating a topic.
type ReceiptTopicCreated struct {
	Topic Address
}

// ReceiptContractCreated is the result of deploying a contract.
type ReceiptContractCreated struct {
	Contract Address
}

// ReceiptMessageSubmitted is the result of submitting a topic message.
type ReceiptMessageSubmitted struct {
	SequenceNumber     uint64
	RunningHash        []byte
	RunningHashVersion uint64
}

func (ReceiptAccountCreated) isReceiptResult()   {}
func (ReceiptFileCreated) isReceiptResult()      {}
func (ReceiptTopicCreated) isReceiptResult()     {}
func (ReceiptContractCreated) isReceiptResult()  {}
func (ReceiptMessageSubmitted) isReceiptResult() {}

// ReceiptFromWire decodes the receipt of the transaction id. The result
// variant is chosen by the first populated field in the order account, file,
// topic, contract, running hash; a receipt with none of them has a nil
// Result.
func ReceiptFromWire(id TransactionID, w *wire.TransactionReceipt) Receipt {
	r := Receipt{TransactionID: id}
	if w == nil {
		return r
	}
	r.Status = w.Status
	if w.ExchangeRate != nil {
		r.CurrentRate = ExchangeRateFromWire(w.ExchangeRate.CurrentRate)
		r.NextRate = ExchangeRateFromWire(w.ExchangeRate.NextRate)
	}
	r.Token = EntityIDFromWire(w.TokenID)
	r.NewTotalSupply = w.NewTotalSupply
	r.Serials = w.SerialNumbers
	r.Schedule = EntityIDFromWire(w.ScheduleID)
	r.ScheduledTransactionID = TransactionIDFromWire(w.ScheduledTransactionID)
	r.NodeID = w.NodeID

	switch {
	case w.AccountID != nil:
		r.Result = ReceiptAccountCreated{AccountIDFromWire(w.AccountID)}
	case w.FileID != nil:
		r.Result = ReceiptFileCreated{EntityIDFromWire(w.FileID)}
	case w.TopicID != nil:
		r.Result = ReceiptTopicCreated{EntityIDFromWire(w.TopicID)}
	case w.ContractID != nil:
		r.Result = ReceiptContractCreated{ContractIDFromWire(w.ContractID)}
	case len(w.TopicRunningHash) > 0:
		r.Result = ReceiptMessageSubmitted{
			SequenceNumber:     w.TopicSequenceNumber,
			RunningHash:        w.TopicRunningHash,
			RunningHashVersion: w.TopicRunningHashVersion,
		}
	}
	return r
}

// A ContractCallResult is the outcome of executing contract code.
type ContractCallResult struct {
	Contract   Address
	Result     []byte
	Error      string
	Bloom      []byte
	GasUsed    uint64
	EVMAddress []byte
	Gas        int64
	Amount     Hbar
	Parameters []byte
	Sender     Address
}

// ContractCallResultFromWire decodes a contract function result. A nil result
// decodes to nil.
func ContractCallResultFromWire(w *wire.ContractFunctionResult) *ContractCallResult {
	if w == nil {
		return nil
	}
	r := &ContractCallResult{
		Contract:   ContractIDFromWire(w.ContractID),
		Result:     w.ContractCallResult,
		Error:      w.ErrorMessage,
		Bloom:      w.Bloom,
		GasUsed:    w.GasUsed,
		Gas:        w.Gas,
		Amount:     Hbar(w.Amount),
		Parameters: w.FunctionParameters,
		Sender:     AccountIDFromWire(w.SenderID),
	}
	if w.EVMAddress != nil {
		r.EVMAddress = w.EVMAddress.Value
	}
	return r
}

// A Record is the detailed outcome of an executed transaction: its receipt
// plus the fees charged and the value it moved.
type Record struct {
	Receipt

	Hash          []byte
	ConsensusTime time.Time
	Memo          string
	Fee           Hbar
	// Transfers maps each account to its net hbar movement.
	Transfers map[Address]Hbar
	// TokenTransfers maps each token to its per-account net movement.
	TokenTransfers map[Address]map[Address]int64
	NftTransfers   []NftTransfer
	AssessedFees   []AssessedFee
	ScheduleRef    Address
	ParentTime     time.Time
	Alias          []byte
	EthereumHash   []byte
	EVMAddress     []byte

	// At most one of CallResult and CreateResult is set.
	CallResult   *ContractCallResult
	CreateResult *ContractCallResult

	// At most one of PrngBytes and PrngNumber is set.
	PrngBytes  []byte
	PrngNumber *int32
}

// RecordFromWire decodes a transaction record. The receipt part is decoded
// as in ReceiptFromWire; the transaction ID embedded in the record takes
// precedence over id.
func RecordFromWire(id TransactionID, w *wire.TransactionRecord) Record {
	if w == nil {
		return Record{Receipt: Receipt{TransactionID: id}}
	}
	if w.TransactionID != nil {
		id = TransactionIDFromWire(w.TransactionID)
	}
	r := Record{
		Receipt:       ReceiptFromWire(id, w.Receipt),
		Hash:          w.TransactionHash,
		ConsensusTime: TimestampFromWire(w.ConsensusTimestamp),
		Memo:          w.Memo,
		Fee:           Hbar(w.TransactionFee),
		ScheduleRef:   EntityIDFromWire(w.ScheduleRef),
		ParentTime:    TimestampFromWire(w.ParentConsensusTimestamp),
		Alias:         w.Alias,
		EthereumHash:  w.EthereumHash,
		EVMAddress:    w.EVMAddress,
		CallResult:    ContractCallResultFromWire(w.ContractCallResult),
		CreateResult:  ContractCallResultFromWire(w.ContractCreateResult),
		PrngBytes:     w.PrngBytes,
		PrngNumber:    w.PrngNumber,
	}
	if w.TransferList != nil {
		r.Transfers = make(map[Address]Hbar)
		for _, aa := range w.TransferList.AccountAmounts {
			r.Transfers[AccountIDFromWire(aa.AccountID)] += Hbar(aa.Amount)
		}
	}
	for _, tl := range w.TokenTransferLists {
		token := EntityIDFromWire(tl.Token)
		if len(tl.Transfers) > 0 {
			if r.TokenTransfers == nil {
				r.TokenTransfers = make(map[Address]map[Address]int64)
			}
			m := r.TokenTransfers[token]
			if m == nil {
				m = make(map[Address]int64)
				r.TokenTransfers[token] = m
			}
			for _, aa := range tl.Transfers {
				m[AccountIDFromWire(aa.AccountID)] += aa.Amount
			}
		}
		for _, nt := range tl.NftTransfers {
			r.NftTransfers = append(r.NftTransfers, NftTransfer{
				Token:    token,
				Serial:   nt.SerialNumber,
				Sender:   AccountIDFromWire(nt.SenderAccountID),
				Receiver: AccountIDFromWire(nt.ReceiverAccountID),
				Approved: nt.IsApproval,
			})
		}
	}
	for _, f := range w.AssessedCustomFees {
		r.AssessedFees = append(r.AssessedFees, AssessedFeeFromWire(f))
	}
	return r
}
