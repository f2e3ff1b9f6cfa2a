package wire

// Response types requested by a QueryHeader.
const (
	AnswerOnly           int32 = 0
	AnswerStateProof     int32 = 1
	CostAnswer           int32 = 2
	CostAnswerStateProof int32 = 3
)

// A QueryHeader carries the payment for a query and the kind of answer
// requested.
type QueryHeader struct {
	Payment      *Transaction
	ResponseType int32
}

// EncodeTo implements Message.
func (h *QueryHeader) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, h.Payment)
	e.WriteInt32(2, h.ResponseType)
}

// A QueryBody is a query request that carries a QueryHeader at field 1.
type QueryBody interface {
	Message
	// WithHeader returns a copy of the query carrying h.
	WithHeader(h *QueryHeader) QueryBody
}

// A Query is the outer envelope of a query request.
type Query struct {
	Data Oneof
}

// EncodeTo implements Message.
func (q *Query) EncodeTo(e *Encoder) {
	if q.Data.Msg != nil {
		e.AppendMessage(q.Data.Field, q.Data.Msg)
	}
}

// IDQuery is the layout shared by queries that name a single entity at
// field 2. A nil ID encodes a header-only query.
type IDQuery struct {
	Header *QueryHeader
	ID     Message
}

// WithHeader implements QueryBody.
func (q *IDQuery) WithHeader(h *QueryHeader) QueryBody {
	c := *q
	c.Header = h
	return &c
}

// EncodeTo implements Message.
func (q *IDQuery) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, q.Header)
	if q.ID != nil {
		e.AppendMessage(2, q.ID)
	}
}

// CryptoGetAccountBalanceQuery requests the balance of an account or
// contract.
type CryptoGetAccountBalanceQuery struct {
	Header     *QueryHeader
	AccountID  *AccountID
	ContractID *ContractID
}

// WithHeader implements QueryBody.
func (q *CryptoGetAccountBalanceQuery) WithHeader(h *QueryHeader) QueryBody {
	c := *q
	c.Header = h
	return &c
}

// EncodeTo implements Message.
func (q *CryptoGetAccountBalanceQuery) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, q.Header)
	if q.AccountID != nil {
		e.AppendMessage(2, q.AccountID)
	} else if q.ContractID != nil {
		e.AppendMessage(3, q.ContractID)
	}
}

// TransactionGetReceiptQuery requests the receipt of a transaction. The
// record query shares its layout.
type TransactionGetReceiptQuery struct {
	Header            *QueryHeader
	TransactionID     *TransactionID
	IncludeDuplicates bool
	IncludeChildren   bool
}

// WithHeader implements QueryBody.
func (q *TransactionGetReceiptQuery) WithHeader(h *QueryHeader) QueryBody {
	c := *q
	c.Header = h
	return &c
}

// EncodeTo implements Message.
func (q *TransactionGetReceiptQuery) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, q.Header)
	EncodeMessage(e, 2, q.TransactionID)
	e.WriteBool(3, q.IncludeDuplicates)
	e.WriteBool(4, q.IncludeChildren)
}

// ContractCallLocalQuery executes a read-only contract call on a single
// node.
type ContractCallLocalQuery struct {
	Header             *QueryHeader
	ContractID         *ContractID
	Gas                int64
	FunctionParameters []byte
	SenderID           *AccountID
}

// WithHeader implements QueryBody.
func (q *ContractCallLocalQuery) WithHeader(h *QueryHeader) QueryBody {
	c := *q
	c.Header = h
	return &c
}

// EncodeTo implements Message.
func (q *ContractCallLocalQuery) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, q.Header)
	EncodeMessage(e, 2, q.ContractID)
	e.WriteInt64(3, q.Gas)
	e.WriteBytes(4, q.FunctionParameters)
	EncodeMessage(e, 6, q.SenderID)
}
