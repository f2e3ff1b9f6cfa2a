package ops

import (
	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// unmarshalAnswer decodes the answer of a query into m.
func unmarshalAnswer(t Tag, raw wire.RawMessage, m wire.DecoderFrom) error {
	if err := wire.Unmarshal(raw, m); err != nil {
		return errProtocol("%v: malformed answer: %v", t, err)
	}
	return nil
}

// Decode decodes the answer of a balance query.
func (q AccountBalance) Decode(raw wire.RawMessage) (types.AccountBalance, error) {
	var r wire.CryptoGetAccountBalanceResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.AccountBalance{}, err
	}
	return types.AccountBalanceFromWire(&r), nil
}

// Decode decodes the answer of an account info query.
func (q AccountInfo) Decode(raw wire.RawMessage) (types.AccountInfo, error) {
	var r wire.CryptoGetInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.AccountInfo{}, err
	}
	return types.AccountInfoFromWire(r.AccountInfo)
}

// Decode decodes the answer of an account records query.
func (q AccountRecords) Decode(raw wire.RawMessage) ([]types.Record, error) {
	var r wire.CryptoGetAccountRecordsResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return nil, err
	}
	records := make([]types.Record, len(r.Records))
	for i, w := range r.Records {
		records[i] = types.RecordFromWire(types.TransactionID{}, w)
	}
	return records, nil
}

// A ReceiptAnswer is the answer of a receipt query. Duplicates and
// Children are populated only when requested.
type ReceiptAnswer struct {
	Receipt    types.Receipt
	Duplicates []types.Receipt
	Children   []types.Receipt
}

// childID returns the ID of the i'th child of id.
func childID(id types.TransactionID, i int) types.TransactionID {
	id.Nonce = int32(i + 1)
	return id
}

// Decode decodes the answer of a receipt query.
func (q TransactionReceipt) Decode(raw wire.RawMessage) (ReceiptAnswer, error) {
	var r wire.TransactionGetReceiptResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return ReceiptAnswer{}, err
	} else if r.Receipt == nil {
		return ReceiptAnswer{}, errProtocol("%v: missing receipt", q.Tag())
	}
	a := ReceiptAnswer{Receipt: types.ReceiptFromWire(q.TransactionID, r.Receipt)}
	for _, w := range r.DuplicateReceipts {
		a.Duplicates = append(a.Duplicates, types.ReceiptFromWire(q.TransactionID, w))
	}
	for i, w := range r.ChildReceipts {
		a.Children = append(a.Children, types.ReceiptFromWire(childID(q.TransactionID, i), w))
	}
	return a, nil
}

// A RecordAnswer is the answer of a record query. Duplicates and Children
// are populated only when requested.
type RecordAnswer struct {
	Record     types.Record
	Duplicates []types.Record
	Children   []types.Record
}

// Decode decodes the answer of a record query.
func (q TransactionRecord) Decode(raw wire.RawMessage) (RecordAnswer, error) {
	var r wire.TransactionGetRecordResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return RecordAnswer{}, err
	} else if r.TransactionRecord == nil {
		return RecordAnswer{}, errProtocol("%v: missing record", q.Tag())
	}
	a := RecordAnswer{Record: types.RecordFromWire(q.TransactionID, r.TransactionRecord)}
	for _, w := range r.DuplicateTransactionRecords {
		a.Duplicates = append(a.Duplicates, types.RecordFromWire(q.TransactionID, w))
	}
	for i, w := range r.ChildTransactionRecords {
		a.Children = append(a.Children, types.RecordFromWire(childID(q.TransactionID, i), w))
	}
	return a, nil
}

// Decode decodes the answer of a file contents query.
func (q FileContents) Decode(raw wire.RawMessage) ([]byte, error) {
	var r wire.FileGetContentsResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return nil, err
	} else if r.FileContents == nil {
		return nil, errProtocol("%v: missing contents", q.Tag())
	}
	return r.FileContents.Contents, nil
}

// Decode decodes the answer of a file info query.
func (q FileInfo) Decode(raw wire.RawMessage) (types.FileInfo, error) {
	var r wire.FileGetInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.FileInfo{}, err
	}
	return types.FileInfoFromWire(r.FileInfo)
}

// Decode decodes the answer of a contract info query.
func (q ContractInfo) Decode(raw wire.RawMessage) (types.ContractInfo, error) {
	var r wire.ContractGetInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.ContractInfo{}, err
	}
	return types.ContractInfoFromWire(r.ContractInfo)
}

// Decode decodes the answer of a bytecode query.
func (q ContractBytecode) Decode(raw wire.RawMessage) ([]byte, error) {
	var r wire.ContractGetBytecodeResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return nil, err
	}
	return r.Bytecode, nil
}

// Decode decodes the answer of a local contract call.
func (q ContractCallLocal) Decode(raw wire.RawMessage) (*types.ContractCallResult, error) {
	var r wire.ContractCallLocalResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return nil, err
	} else if r.FunctionResult == nil {
		return nil, errProtocol("%v: missing function result", q.Tag())
	}
	return types.ContractCallResultFromWire(r.FunctionResult), nil
}

// Decode decodes the answer of a topic info query.
func (q TopicInfo) Decode(raw wire.RawMessage) (types.TopicInfo, error) {
	var r wire.ConsensusGetTopicInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.TopicInfo{}, err
	}
	return types.TopicInfoFromWire(r.TopicID, r.TopicInfo)
}

// Decode decodes the answer of a token info query.
func (q TokenInfo) Decode(raw wire.RawMessage) (types.TokenInfo, error) {
	var r wire.TokenGetInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.TokenInfo{}, err
	}
	return types.TokenInfoFromWire(r.TokenInfo)
}

// Decode decodes the answer of an NFT info query.
func (q TokenNftInfo) Decode(raw wire.RawMessage) (types.NftInfo, error) {
	var r wire.TokenGetNftInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.NftInfo{}, err
	}
	return types.NftInfoFromWire(r.Nft)
}

// Decode decodes the answer of a schedule info query.
func (q ScheduleInfo) Decode(raw wire.RawMessage) (types.ScheduleInfo, error) {
	var r wire.ScheduleGetInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.ScheduleInfo{}, err
	}
	return types.ScheduleInfoFromWire(r.ScheduleInfo)
}

// Decode decodes the answer of a version query.
func (q NetworkVersionInfo) Decode(raw wire.RawMessage) (types.VersionInfo, error) {
	var r wire.NetworkGetVersionInfoResponse
	if err := unmarshalAnswer(q.Tag(), raw, &r); err != nil {
		return types.VersionInfo{}, err
	}
	return types.VersionInfo{
		Protocol: types.SemanticVersionFromWire(r.HapiProtoVersion),
		Services: types.SemanticVersionFromWire(r.HederaServicesVersion),
	}, nil
}
