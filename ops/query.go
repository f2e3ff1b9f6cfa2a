package ops

import (
	"fmt"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// A Query holds the parameters of one query variant.
type Query interface {
	Tag() Tag
	buildQuery() (wire.QueryBody, error)
}

// A QueryBody is a validated query, ready to be enveloped.
type QueryBody struct {
	Tag Tag
	Msg wire.QueryBody
	// tolerated lists precheck statuses, other than OK, that still carry
	// an answer.
	tolerated []types.Status
}

// BuildQuery validates q and returns its body.
func BuildQuery(q Query) (QueryBody, error) {
	msg, err := q.buildQuery()
	if err != nil {
		return QueryBody{}, fmt.Errorf("%v: %w", q.Tag(), err)
	}
	qb := QueryBody{Tag: q.Tag(), Msg: msg}
	if ccl, ok := q.(ContractCallLocal); ok && ccl.AllowRevert {
		qb.tolerated = append(qb.tolerated, wire.ResponseContractRevertExecuted)
	}
	return qb, nil
}

// IsFree reports whether the network answers the query without payment.
func (qb QueryBody) IsFree() bool {
	return qb.Tag == TagAccountBalance || qb.Tag == TagTransactionReceipt
}

// Envelope wraps a copy of the body carrying h in a Query. qb is not
// modified, so earlier envelopes keep their headers.
func (qb QueryBody) Envelope(h *wire.QueryHeader) *wire.Query {
	return &wire.Query{Data: wire.Oneof{Field: qb.Tag.desc().field, Msg: qb.Msg.WithHeader(h)}}
}

// QueryMethod selects the remote method for q.
func QueryMethod(q *wire.Query) (RemoteMethod, error) {
	if q == nil || q.Data.Msg == nil {
		return RemoteMethod{}, errMissing("query is empty")
	}
	t, ok := byField[1][q.Data.Field]
	if !ok {
		return RemoteMethod{}, errProtocol("unknown query field %d", q.Data.Field)
	}
	return t.desc().method, nil
}

// Answer extracts the member of resp answering the query, along with its
// header.
func (qb QueryBody) Answer(resp *wire.Response) (wire.RawMessage, *wire.ResponseHeader, error) {
	if resp == nil || resp.Data.Msg == nil {
		return nil, nil, errProtocol("%v: empty response", qb.Tag)
	} else if resp.Data.Field != qb.Tag.desc().field {
		return nil, nil, errProtocol("%v: response carries field %d, expected %d", qb.Tag, resp.Data.Field, qb.Tag.desc().field)
	}
	raw, ok := resp.Data.Msg.(wire.RawMessage)
	if !ok {
		raw = wire.Marshal(resp.Data.Msg)
	}
	h, err := wire.ResponseHeaderOf(raw)
	if err != nil {
		return nil, nil, errProtocol("%v: invalid response header: %v", qb.Tag, err)
	}
	return raw, h, nil
}

// ValidateResponse checks the precheck status of a query response. id is
// the ID of the payment transaction, if any.
func (qb QueryBody) ValidateResponse(id types.TransactionID, h *wire.ResponseHeader) error {
	if h == nil {
		return errProtocol("%v: missing response header", qb.Tag)
	} else if h.NodeTransactionPrecheckCode == wire.ResponseOK {
		return nil
	}
	for _, s := range qb.tolerated {
		if h.NodeTransactionPrecheckCode == s {
			return nil
		}
	}
	return fmt.Errorf("%v: %w", qb.Tag, &types.PrecheckError{
		TransactionID: id,
		Status:        h.NodeTransactionPrecheckCode,
		Cost:          types.Hbar(h.Cost),
	})
}

// ValidateReceipt checks the status of a receipt returned by a receipt or
// record query. The record query tolerates DUPLICATE_TRANSACTION, since
// the record of the original transaction is still returned.
func (qb QueryBody) ValidateReceipt(r types.Receipt) error {
	switch {
	case r.Status == wire.ResponseSuccess:
		return nil
	case qb.Tag == TagTransactionRecord && r.Status == wire.ResponseDuplicateTransaction:
		return nil
	}
	return &types.ExecutionError{
		TransactionID: r.TransactionID,
		Status:        r.Status,
		Message:       qb.Tag.FailureMessage(r.Status),
	}
}

// IsPending reports whether a receipt status means the transaction has not
// reached consensus yet.
func IsPending(s types.Status) bool {
	switch s {
	case wire.ResponseOK, wire.ResponseUnknown, wire.ResponseBusy, wire.ResponseReceiptNotFound, wire.ResponseRecordNotFound:
		return true
	}
	return false
}

func idQuery(id wire.Message) *wire.IDQuery { return &wire.IDQuery{ID: id} }

// AccountBalance queries the balance of exactly one of an account and a
// contract.
type AccountBalance struct {
	Account  types.Address
	Contract types.Address
}

// Tag implements Query.
func (AccountBalance) Tag() Tag { return TagAccountBalance }

func (p AccountBalance) buildQuery() (wire.QueryBody, error) {
	switch {
	case p.Account.IsNone() && p.Contract.IsNone():
		return nil, errMissing("account or contract is required")
	case !p.Account.IsNone() && !p.Contract.IsNone():
		return nil, errConflict("account and contract are mutually exclusive")
	}
	var b builder
	q := &wire.CryptoGetAccountBalanceQuery{
		AccountID:  b.optAccount("account", p.Account),
		ContractID: b.optContract("contract", p.Contract),
	}
	return q, b.err
}

// AccountInfo queries the properties of an account.
type AccountInfo struct {
	Account types.Address
}

// Tag implements Query.
func (AccountInfo) Tag() Tag { return TagAccountInfo }

func (p AccountInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.account("account", p.Account)
	return idQuery(id), b.err
}

// AccountRecords queries the recent records of an account.
type AccountRecords struct {
	Account types.Address
}

// Tag implements Query.
func (AccountRecords) Tag() Tag { return TagAccountRecords }

func (p AccountRecords) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.account("account", p.Account)
	return idQuery(id), b.err
}

// TransactionReceipt queries the receipt of a transaction.
type TransactionReceipt struct {
	TransactionID     types.TransactionID
	IncludeDuplicates bool
	IncludeChildren   bool
}

// Tag implements Query.
func (TransactionReceipt) Tag() Tag { return TagTransactionReceipt }

func (p TransactionReceipt) buildQuery() (wire.QueryBody, error) {
	id, err := types.TransactionIDToWire(p.TransactionID)
	if err != nil {
		return nil, err
	}
	return &wire.TransactionGetReceiptQuery{
		TransactionID:     id,
		IncludeDuplicates: p.IncludeDuplicates,
		IncludeChildren:   p.IncludeChildren,
	}, nil
}

// TransactionRecord queries the record of a transaction.
type TransactionRecord struct {
	TransactionID     types.TransactionID
	IncludeDuplicates bool
	IncludeChildren   bool
}

// Tag implements Query.
func (TransactionRecord) Tag() Tag { return TagTransactionRecord }

func (p TransactionRecord) buildQuery() (wire.QueryBody, error) {
	return TransactionReceipt(p).buildQuery()
}

// FileContents queries the contents of a file.
type FileContents struct {
	File types.Address
}

// Tag implements Query.
func (FileContents) Tag() Tag { return TagFileContents }

func (p FileContents) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.file("file", p.File)
	return idQuery(id), b.err
}

// FileInfo queries the properties of a file.
type FileInfo struct {
	File types.Address
}

// Tag implements Query.
func (FileInfo) Tag() Tag { return TagFileInfo }

func (p FileInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.file("file", p.File)
	return idQuery(id), b.err
}

// ContractInfo queries the properties of a contract.
type ContractInfo struct {
	Contract types.Address
}

// Tag implements Query.
func (ContractInfo) Tag() Tag { return TagContractInfo }

func (p ContractInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.contract("contract", p.Contract)
	return idQuery(id), b.err
}

// ContractBytecode queries the runtime bytecode of a contract.
type ContractBytecode struct {
	Contract types.Address
}

// Tag implements Query.
func (ContractBytecode) Tag() Tag { return TagContractBytecode }

func (p ContractBytecode) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.contract("contract", p.Contract)
	return idQuery(id), b.err
}

// ContractCallLocal runs a read-only contract call on a single node.
type ContractCallLocal struct {
	Contract   types.Address
	Gas        int64
	Parameters []byte
	Sender     types.Address
	// AllowRevert accepts a CONTRACT_REVERT_EXECUTED precheck status, so
	// that the revert reason can be read from the result.
	AllowRevert bool
}

// Tag implements Query.
func (ContractCallLocal) Tag() Tag { return TagContractCallLocal }

func (p ContractCallLocal) buildQuery() (wire.QueryBody, error) {
	if p.Gas <= 0 {
		return nil, errRange("gas must be positive, got %d", p.Gas)
	}
	var b builder
	q := &wire.ContractCallLocalQuery{
		ContractID:         b.contract("contract", p.Contract),
		Gas:                p.Gas,
		FunctionParameters: p.Parameters,
		SenderID:           b.optAccount("sender", p.Sender),
	}
	return q, b.err
}

// TopicInfo queries the properties of a topic.
type TopicInfo struct {
	Topic types.Address
}

// Tag implements Query.
func (TopicInfo) Tag() Tag { return TagTopicInfo }

func (p TopicInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.topic("topic", p.Topic)
	return idQuery(id), b.err
}

// TokenInfo queries the properties of a token.
type TokenInfo struct {
	Token types.Address
}

// Tag implements Query.
func (TokenInfo) Tag() Tag { return TagTokenInfo }

func (p TokenInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.token("token", p.Token)
	return idQuery(id), b.err
}

// TokenNftInfo queries a single NFT.
type TokenNftInfo struct {
	Nft types.NftID
}

// Tag implements Query.
func (TokenNftInfo) Tag() Tag { return TagTokenNftInfo }

func (p TokenNftInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.nft("NFT", p.Nft)
	return idQuery(id), b.err
}

// ScheduleInfo queries the properties of a schedule.
type ScheduleInfo struct {
	Schedule types.Address
}

// Tag implements Query.
func (ScheduleInfo) Tag() Tag { return TagScheduleInfo }

func (p ScheduleInfo) buildQuery() (wire.QueryBody, error) {
	var b builder
	id := b.schedule("schedule", p.Schedule)
	return idQuery(id), b.err
}

// NetworkVersionInfo queries the versions of the network software.
type NetworkVersionInfo struct{}

// Tag implements Query.
func (NetworkVersionInfo) Tag() Tag { return TagNetworkVersionInfo }

func (NetworkVersionInfo) buildQuery() (wire.QueryBody, error) { return idQuery(nil), nil }
