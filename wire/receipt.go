package wire

import "google.golang.org/protobuf/types/known/wrapperspb"

// A TransactionReceipt is the network's minimal report of a transaction's
// outcome.
type TransactionReceipt struct {
	Status                  ResponseCode
	AccountID               *AccountID
	FileID                  *FileID
	ContractID              *ContractID
	ExchangeRate            *ExchangeRateSet
	TopicID                 *TopicID
	TopicSequenceNumber     uint64
	TopicRunningHash        []byte
	TopicRunningHashVersion uint64
	TokenID                 *TokenID
	NewTotalSupply          uint64
	ScheduleID              *ScheduleID
	ScheduledTransactionID  *TransactionID
	SerialNumbers           []int64
	NodeID                  uint64
}

// EncodeTo implements Message.
func (r *TransactionReceipt) EncodeTo(e *Encoder) {
	e.WriteInt32(1, int32(r.Status))
	EncodeMessage(e, 2, r.AccountID)
	EncodeMessage(e, 3, r.FileID)
	EncodeMessage(e, 4, r.ContractID)
	EncodeMessage(e, 5, r.ExchangeRate)
	EncodeMessage(e, 6, r.TopicID)
	e.WriteUint64(7, r.TopicSequenceNumber)
	e.WriteBytes(8, r.TopicRunningHash)
	e.WriteUint64(9, r.TopicRunningHashVersion)
	EncodeMessage(e, 10, r.TokenID)
	e.WriteUint64(11, r.NewTotalSupply)
	EncodeMessage(e, 12, r.ScheduleID)
	EncodeMessage(e, 13, r.ScheduledTransactionID)
	e.WritePackedInt64(14, r.SerialNumbers)
	e.WriteUint64(15, r.NodeID)
}

// DecodeFrom implements DecoderFrom.
func (r *TransactionReceipt) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			r.Status = ResponseCode(d.ReadInt32())
		case 2:
			DecodeMessage(d, &r.AccountID)
		case 3:
			DecodeMessage(d, &r.FileID)
		case 4:
			DecodeMessage(d, &r.ContractID)
		case 5:
			DecodeMessage(d, &r.ExchangeRate)
		case 6:
			DecodeMessage(d, &r.TopicID)
		case 7:
			r.TopicSequenceNumber = d.ReadUint64()
		case 8:
			r.TopicRunningHash = d.ReadBytes()
		case 9:
			r.TopicRunningHashVersion = d.ReadUint64()
		case 10:
			DecodeMessage(d, &r.TokenID)
		case 11:
			r.NewTotalSupply = d.ReadUint64()
		case 12:
			DecodeMessage(d, &r.ScheduleID)
		case 13:
			DecodeMessage(d, &r.ScheduledTransactionID)
		case 14:
			r.SerialNumbers = d.ReadPackedInt64(r.SerialNumbers)
		case 15:
			r.NodeID = d.ReadUint64()
		default:
			d.Skip()
		}
	}
}

// A ContractFunctionResult is the outcome of a contract call or deployment.
type ContractFunctionResult struct {
	ContractID         *ContractID
	ContractCallResult []byte
	ErrorMessage       string
	Bloom              []byte
	GasUsed            uint64
	EVMAddress         *wrapperspb.BytesValue
	Gas                int64
	Amount             int64
	FunctionParameters []byte
	SenderID           *AccountID
}

// EncodeTo implements Message.
func (r *ContractFunctionResult) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, r.ContractID)
	e.WriteBytes(2, r.ContractCallResult)
	e.WriteString(3, r.ErrorMessage)
	e.WriteBytes(4, r.Bloom)
	e.WriteUint64(5, r.GasUsed)
	e.WriteWrapper(9, r.EVMAddress)
	e.WriteInt64(10, r.Gas)
	e.WriteInt64(11, r.Amount)
	e.WriteBytes(12, r.FunctionParameters)
	EncodeMessage(e, 13, r.SenderID)
}

// DecodeFrom implements DecoderFrom.
func (r *ContractFunctionResult) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.ContractID)
		case 2:
			r.ContractCallResult = d.ReadBytes()
		case 3:
			r.ErrorMessage = d.ReadString()
		case 4:
			r.Bloom = d.ReadBytes()
		case 5:
			r.GasUsed = d.ReadUint64()
		case 9:
			r.EVMAddress = new(wrapperspb.BytesValue)
			d.ReadWrapper(r.EVMAddress)
		case 10:
			r.Gas = d.ReadInt64()
		case 11:
			r.Amount = d.ReadInt64()
		case 12:
			r.FunctionParameters = d.ReadBytes()
		case 13:
			DecodeMessage(d, &r.SenderID)
		default:
			d.Skip()
		}
	}
}

// A TransactionRecord is the network's extended report of a transaction's
// outcome.
type TransactionRecord struct {
	Receipt                  *TransactionReceipt
	TransactionHash          []byte
	ConsensusTimestamp       *Timestamp
	TransactionID            *TransactionID
	Memo                     string
	TransactionFee           uint64
	ContractCallResult       *ContractFunctionResult
	ContractCreateResult     *ContractFunctionResult
	TransferList             *TransferList
	TokenTransferLists       []*TokenTransferList
	ScheduleRef              *ScheduleID
	AssessedCustomFees       []*AssessedCustomFee
	ParentConsensusTimestamp *Timestamp
	Alias                    []byte
	EthereumHash             []byte
	PrngBytes                []byte
	PrngNumber               *int32
	EVMAddress               []byte
}

// EncodeTo implements Message.
func (r *TransactionRecord) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, r.Receipt)
	e.WriteBytes(2, r.TransactionHash)
	EncodeMessage(e, 3, r.ConsensusTimestamp)
	EncodeMessage(e, 4, r.TransactionID)
	e.WriteString(5, r.Memo)
	e.WriteUint64(6, r.TransactionFee)
	if r.ContractCallResult != nil {
		e.AppendMessage(7, r.ContractCallResult)
	} else if r.ContractCreateResult != nil {
		e.AppendMessage(8, r.ContractCreateResult)
	}
	EncodeMessage(e, 10, r.TransferList)
	EncodeRepeated(e, 11, r.TokenTransferLists)
	EncodeMessage(e, 12, r.ScheduleRef)
	EncodeRepeated(e, 13, r.AssessedCustomFees)
	EncodeMessage(e, 15, r.ParentConsensusTimestamp)
	e.WriteBytes(16, r.Alias)
	e.WriteBytes(17, r.EthereumHash)
	if r.PrngBytes != nil {
		e.AppendBytes(19, r.PrngBytes)
	} else if r.PrngNumber != nil {
		e.AppendVarint(20, uint64(int64(*r.PrngNumber)))
	}
	e.WriteBytes(21, r.EVMAddress)
}

// DecodeFrom implements DecoderFrom.
func (r *TransactionRecord) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Receipt)
		case 2:
			r.TransactionHash = d.ReadBytes()
		case 3:
			DecodeMessage(d, &r.ConsensusTimestamp)
		case 4:
			DecodeMessage(d, &r.TransactionID)
		case 5:
			r.Memo = d.ReadString()
		case 6:
			r.TransactionFee = d.ReadUint64()
		case 7:
			r.ContractCreateResult = nil
			DecodeMessage(d, &r.ContractCallResult)
		case 8:
			r.ContractCallResult = nil
			DecodeMessage(d, &r.ContractCreateResult)
		case 10:
			DecodeMessage(d, &r.TransferList)
		case 11:
			DecodeRepeated(d, &r.TokenTransferLists)
		case 12:
			DecodeMessage(d, &r.ScheduleRef)
		case 13:
			DecodeRepeated(d, &r.AssessedCustomFees)
		case 15:
			DecodeMessage(d, &r.ParentConsensusTimestamp)
		case 16:
			r.Alias = d.ReadBytes()
		case 17:
			r.EthereumHash = d.ReadBytes()
		case 19:
			r.PrngBytes, r.PrngNumber = d.ReadBytes(), nil
		case 20:
			n := d.ReadInt32()
			r.PrngNumber, r.PrngBytes = &n, nil
		case 21:
			r.EVMAddress = d.ReadBytes()
		default:
			d.Skip()
		}
	}
}
