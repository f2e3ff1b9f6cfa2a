package wire

// A ResponseHeader reports the precheck outcome and cost of a query.
type ResponseHeader struct {
	NodeTransactionPrecheckCode ResponseCode
	ResponseType                int32
	Cost                        uint64
	StateProof                  []byte
}

// EncodeTo implements Message.
func (h *ResponseHeader) EncodeTo(e *Encoder) {
	e.WriteInt32(1, int32(h.NodeTransactionPrecheckCode))
	e.WriteInt32(2, h.ResponseType)
	e.WriteUint64(3, h.Cost)
	e.WriteBytes(4, h.StateProof)
}

// DecodeFrom implements DecoderFrom.
func (h *ResponseHeader) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			h.NodeTransactionPrecheckCode = ResponseCode(d.ReadInt32())
		case 2:
			h.ResponseType = d.ReadInt32()
		case 3:
			h.Cost = d.ReadUint64()
		case 4:
			h.StateProof = d.ReadBytes()
		default:
			d.Skip()
		}
	}
}

// A Response is the outer envelope of a query answer. Its populated member
// is decoded as a RawMessage and shares its field number with the matching
// Query member.
type Response struct {
	Data Oneof
}

// EncodeTo implements Message.
func (r *Response) EncodeTo(e *Encoder) {
	if r.Data.Msg != nil {
		e.AppendMessage(r.Data.Field, r.Data.Msg)
	}
}

// DecodeFrom implements DecoderFrom.
func (r *Response) DecodeFrom(d *Decoder) {
	for d.Next() {
		r.Data = Oneof{Field: d.Field(), Msg: RawMessage(d.ReadBytes())}
	}
}

// ResponseHeaderOf extracts the header (field 1) of an encoded query
// response body.
func ResponseHeaderOf(body []byte) (*ResponseHeader, error) {
	h := new(ResponseHeader)
	d := NewDecoder(body)
	for d.Next() {
		if d.Field() == 1 {
			d.ReadMessage(h)
		} else {
			d.Skip()
		}
	}
	return h, d.Err()
}

// A TokenBalance is an account's balance of a single token.
type TokenBalance struct {
	TokenID  *TokenID
	Balance  uint64
	Decimals uint32
}

// EncodeTo implements Message.
func (b *TokenBalance) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.TokenID)
	e.WriteUint64(2, b.Balance)
	e.WriteUint32(3, b.Decimals)
}

// DecodeFrom implements DecoderFrom.
func (b *TokenBalance) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &b.TokenID)
		case 2:
			b.Balance = d.ReadUint64()
		case 3:
			b.Decimals = d.ReadUint32()
		default:
			d.Skip()
		}
	}
}

// CryptoGetAccountBalanceResponse answers a balance query.
type CryptoGetAccountBalanceResponse struct {
	Header        *ResponseHeader
	AccountID     *AccountID
	Balance       uint64
	TokenBalances []*TokenBalance
}

// EncodeTo implements Message.
func (r *CryptoGetAccountBalanceResponse) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, r.Header)
	EncodeMessage(e, 2, r.AccountID)
	e.WriteUint64(3, r.Balance)
	EncodeRepeated(e, 4, r.TokenBalances)
}

// DecodeFrom implements DecoderFrom.
func (r *CryptoGetAccountBalanceResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.AccountID)
		case 3:
			r.Balance = d.ReadUint64()
		case 4:
			DecodeRepeated(d, &r.TokenBalances)
		default:
			d.Skip()
		}
	}
}

// AccountInfo describes an account.
type AccountInfo struct {
	AccountID                     *AccountID
	ContractAccountID             string
	Deleted                       bool
	Key                           *Key
	Balance                       uint64
	ReceiverSigRequired           bool
	ExpirationTime                *Timestamp
	AutoRenewPeriod               *Duration
	Memo                          string
	OwnedNfts                     int64
	MaxAutomaticTokenAssociations int32
	Alias                         []byte
	LedgerID                      []byte
	EthereumNonce                 int64
}

// DecodeFrom implements DecoderFrom.
func (a *AccountInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &a.AccountID)
		case 2:
			a.ContractAccountID = d.ReadString()
		case 3:
			a.Deleted = d.ReadBool()
		case 7:
			DecodeMessage(d, &a.Key)
		case 8:
			a.Balance = d.ReadUint64()
		case 11:
			a.ReceiverSigRequired = d.ReadBool()
		case 12:
			DecodeMessage(d, &a.ExpirationTime)
		case 13:
			DecodeMessage(d, &a.AutoRenewPeriod)
		case 16:
			a.Memo = d.ReadString()
		case 17:
			a.OwnedNfts = d.ReadInt64()
		case 18:
			a.MaxAutomaticTokenAssociations = d.ReadInt32()
		case 19:
			a.Alias = d.ReadBytes()
		case 20:
			a.LedgerID = d.ReadBytes()
		case 21:
			a.EthereumNonce = d.ReadInt64()
		default:
			d.Skip()
		}
	}
}

// CryptoGetInfoResponse answers an account info query.
type CryptoGetInfoResponse struct {
	Header      *ResponseHeader
	AccountInfo *AccountInfo
}

// DecodeFrom implements DecoderFrom.
func (r *CryptoGetInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.AccountInfo)
		default:
			d.Skip()
		}
	}
}

// CryptoGetAccountRecordsResponse answers an account records query.
type CryptoGetAccountRecordsResponse struct {
	Header    *ResponseHeader
	AccountID *AccountID
	Records   []*TransactionRecord
}

// DecodeFrom implements DecoderFrom.
func (r *CryptoGetAccountRecordsResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.AccountID)
		case 3:
			DecodeRepeated(d, &r.Records)
		default:
			d.Skip()
		}
	}
}

// TransactionGetReceiptResponse answers a receipt query.
type TransactionGetReceiptResponse struct {
	Header            *ResponseHeader
	Receipt           *TransactionReceipt
	DuplicateReceipts []*TransactionReceipt
	ChildReceipts     []*TransactionReceipt
}

// EncodeTo implements Message.
func (r *TransactionGetReceiptResponse) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, r.Header)
	EncodeMessage(e, 2, r.Receipt)
	EncodeRepeated(e, 4, r.DuplicateReceipts)
	EncodeRepeated(e, 5, r.ChildReceipts)
}

// DecodeFrom implements DecoderFrom.
func (r *TransactionGetReceiptResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.Receipt)
		case 4:
			DecodeRepeated(d, &r.DuplicateReceipts)
		case 5:
			DecodeRepeated(d, &r.ChildReceipts)
		default:
			d.Skip()
		}
	}
}

// TransactionGetRecordResponse answers a record query.
type TransactionGetRecordResponse struct {
	Header                      *ResponseHeader
	TransactionRecord           *TransactionRecord
	DuplicateTransactionRecords []*TransactionRecord
	ChildTransactionRecords     []*TransactionRecord
}

// EncodeTo implements Message.
func (r *TransactionGetRecordResponse) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, r.Header)
	EncodeMessage(e, 3, r.TransactionRecord)
	EncodeRepeated(e, 4, r.DuplicateTransactionRecords)
	EncodeRepeated(e, 5, r.ChildTransactionRecords)
}

// DecodeFrom implements DecoderFrom.
func (r *TransactionGetRecordResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 3:
			DecodeMessage(d, &r.TransactionRecord)
		case 4:
			DecodeRepeated(d, &r.DuplicateTransactionRecords)
		case 5:
			DecodeRepeated(d, &r.ChildTransactionRecords)
		default:
			d.Skip()
		}
	}
}

// FileContents holds the contents of a file.
type FileContents struct {
	FileID   *FileID
	Contents []byte
}

// DecodeFrom implements DecoderFrom.
func (c *FileContents) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &c.FileID)
		case 2:
			c.Contents = d.ReadBytes()
		default:
			d.Skip()
		}
	}
}

// FileGetContentsResponse answers a file contents query.
type FileGetContentsResponse struct {
	Header       *ResponseHeader
	FileContents *FileContents
}

// DecodeFrom implements DecoderFrom.
func (r *FileGetContentsResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.FileContents)
		default:
			d.Skip()
		}
	}
}

// FileInfo describes a file.
type FileInfo struct {
	FileID         *FileID
	Size           int64
	ExpirationTime *Timestamp
	Deleted        bool
	Keys           *KeyList
	Memo           string
	LedgerID       []byte
}

// DecodeFrom implements DecoderFrom.
func (f *FileInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &f.FileID)
		case 2:
			f.Size = d.ReadInt64()
		case 3:
			DecodeMessage(d, &f.ExpirationTime)
		case 4:
			f.Deleted = d.ReadBool()
		case 5:
			DecodeMessage(d, &f.Keys)
		case 6:
			f.Memo = d.ReadString()
		case 7:
			f.LedgerID = d.ReadBytes()
		default:
			d.Skip()
		}
	}
}

// FileGetInfoResponse answers a file info query.
type FileGetInfoResponse struct {
	Header   *ResponseHeader
	FileInfo *FileInfo
}

// DecodeFrom implements DecoderFrom.
func (r *FileGetInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.FileInfo)
		default:
			d.Skip()
		}
	}
}

// ContractInfo describes a contract.
type ContractInfo struct {
	ContractID                    *ContractID
	AccountID                     *AccountID
	ContractAccountID             string
	AdminKey                      *Key
	ExpirationTime                *Timestamp
	AutoRenewPeriod               *Duration
	Storage                       int64
	Memo                          string
	Balance                       uint64
	Deleted                       bool
	LedgerID                      []byte
	AutoRenewAccountID            *AccountID
	MaxAutomaticTokenAssociations int32
}

// DecodeFrom implements DecoderFrom.
func (c *ContractInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &c.ContractID)
		case 2:
			DecodeMessage(d, &c.AccountID)
		case 3:
			c.ContractAccountID = d.ReadString()
		case 4:
			DecodeMessage(d, &c.AdminKey)
		case 5:
			DecodeMessage(d, &c.ExpirationTime)
		case 6:
			DecodeMessage(d, &c.AutoRenewPeriod)
		case 7:
			c.Storage = d.ReadInt64()
		case 8:
			c.Memo = d.ReadString()
		case 9:
			c.Balance = d.ReadUint64()
		case 10:
			c.Deleted = d.ReadBool()
		case 12:
			c.LedgerID = d.ReadBytes()
		case 13:
			DecodeMessage(d, &c.AutoRenewAccountID)
		case 14:
			c.MaxAutomaticTokenAssociations = d.ReadInt32()
		default:
			d.Skip()
		}
	}
}

// ContractGetInfoResponse answers a contract info query.
type ContractGetInfoResponse struct {
	Header       *ResponseHeader
	ContractInfo *ContractInfo
}

// DecodeFrom implements DecoderFrom.
func (r *ContractGetInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.ContractInfo)
		default:
			d.Skip()
		}
	}
}

// ContractGetBytecodeResponse answers a bytecode query.
type ContractGetBytecodeResponse struct {
	Header   *ResponseHeader
	Bytecode []byte
}

// DecodeFrom implements DecoderFrom.
func (r *ContractGetBytecodeResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 6:
			r.Bytecode = d.ReadBytes()
		default:
			d.Skip()
		}
	}
}

// ContractCallLocalResponse answers a local contract call.
type ContractCallLocalResponse struct {
	Header         *ResponseHeader
	FunctionResult *ContractFunctionResult
}

// EncodeTo implements Message.
func (r *ContractCallLocalResponse) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, r.Header)
	EncodeMessage(e, 2, r.FunctionResult)
}

// DecodeFrom implements DecoderFrom.
func (r *ContractCallLocalResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.FunctionResult)
		default:
			d.Skip()
		}
	}
}

// ConsensusTopicInfo describes a topic.
type ConsensusTopicInfo struct {
	Memo             string
	RunningHash      []byte
	SequenceNumber   uint64
	ExpirationTime   *Timestamp
	AdminKey         *Key
	SubmitKey        *Key
	AutoRenewPeriod  *Duration
	AutoRenewAccount *AccountID
	LedgerID         []byte
}

// DecodeFrom implements DecoderFrom.
func (t *ConsensusTopicInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			t.Memo = d.ReadString()
		case 2:
			t.RunningHash = d.ReadBytes()
		case 3:
			t.SequenceNumber = d.ReadUint64()
		case 4:
			DecodeMessage(d, &t.ExpirationTime)
		case 5:
			DecodeMessage(d, &t.AdminKey)
		case 6:
			DecodeMessage(d, &t.SubmitKey)
		case 7:
			DecodeMessage(d, &t.AutoRenewPeriod)
		case 8:
			DecodeMessage(d, &t.AutoRenewAccount)
		case 9:
			t.LedgerID = d.ReadBytes()
		default:
			d.Skip()
		}
	}
}

// ConsensusGetTopicInfoResponse answers a topic info query.
type ConsensusGetTopicInfoResponse struct {
	Header    *ResponseHeader
	TopicID   *TopicID
	TopicInfo *ConsensusTopicInfo
}

// DecodeFrom implements DecoderFrom.
func (r *ConsensusGetTopicInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.TopicID)
		case 5:
			DecodeMessage(d, &r.TopicInfo)
		default:
			d.Skip()
		}
	}
}

// TokenInfo describes a token.
type TokenInfo struct {
	TokenID             *TokenID
	Name                string
	Symbol              string
	Decimals            uint32
	TotalSupply         uint64
	Treasury            *AccountID
	AdminKey            *Key
	KycKey              *Key
	FreezeKey           *Key
	WipeKey             *Key
	SupplyKey           *Key
	DefaultFreezeStatus int32
	DefaultKycStatus    int32
	Deleted             bool
	AutoRenewAccount    *AccountID
	AutoRenewPeriod     *Duration
	Expiry              *Timestamp
	Memo                string
	TokenType           int32
	SupplyType          int32
	MaxSupply           int64
	FeeScheduleKey      *Key
	CustomFees          []*CustomFee
	PauseKey            *Key
	PauseStatus         int32
	LedgerID            []byte
	Metadata            []byte
	MetadataKey         *Key
}

// DecodeFrom implements DecoderFrom.
func (t *TokenInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &t.TokenID)
		case 2:
			t.Name = d.ReadString()
		case 3:
			t.Symbol = d.ReadString()
		case 4:
			t.Decimals = d.ReadUint32()
		case 5:
			t.TotalSupply = d.ReadUint64()
		case 6:
			DecodeMessage(d, &t.Treasury)
		case 7:
			DecodeMessage(d, &t.AdminKey)
		case 8:
			DecodeMessage(d, &t.KycKey)
		case 9:
			DecodeMessage(d, &t.FreezeKey)
		case 10:
			DecodeMessage(d, &t.WipeKey)
		case 11:
			DecodeMessage(d, &t.SupplyKey)
		case 12:
			t.DefaultFreezeStatus = d.ReadInt32()
		case 13:
			t.DefaultKycStatus = d.ReadInt32()
		case 14:
			t.Deleted = d.ReadBool()
		case 15:
			DecodeMessage(d, &t.AutoRenewAccount)
		case 16:
			DecodeMessage(d, &t.AutoRenewPeriod)
		case 17:
			DecodeMessage(d, &t.Expiry)
		case 18:
			t.Memo = d.ReadString()
		case 19:
			t.TokenType = d.ReadInt32()
		case 20:
			t.SupplyType = d.ReadInt32()
		case 21:
			t.MaxSupply = d.ReadInt64()
		case 22:
			DecodeMessage(d, &t.FeeScheduleKey)
		case 23:
			DecodeRepeated(d, &t.CustomFees)
		case 24:
			DecodeMessage(d, &t.PauseKey)
		case 25:
			t.PauseStatus = d.ReadInt32()
		case 26:
			t.LedgerID = d.ReadBytes()
		case 27:
			t.Metadata = d.ReadBytes()
		case 28:
			DecodeMessage(d, &t.MetadataKey)
		default:
			d.Skip()
		}
	}
}

// TokenGetInfoResponse answers a token info query.
type TokenGetInfoResponse struct {
	Header    *ResponseHeader
	TokenInfo *TokenInfo
}

// DecodeFrom implements DecoderFrom.
func (r *TokenGetInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.TokenInfo)
		default:
			d.Skip()
		}
	}
}

// TokenNftInfo describes a single NFT.
type TokenNftInfo struct {
	NftID        *NftID
	AccountID    *AccountID
	CreationTime *Timestamp
	Metadata     []byte
	LedgerID     []byte
	SpenderID    *AccountID
}

// DecodeFrom implements DecoderFrom.
func (n *TokenNftInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &n.NftID)
		case 2:
			DecodeMessage(d, &n.AccountID)
		case 3:
			DecodeMessage(d, &n.CreationTime)
		case 4:
			n.Metadata = d.ReadBytes()
		case 5:
			n.LedgerID = d.ReadBytes()
		case 6:
			DecodeMessage(d, &n.SpenderID)
		default:
			d.Skip()
		}
	}
}

// TokenGetNftInfoResponse answers an NFT info query.
type TokenGetNftInfoResponse struct {
	Header *ResponseHeader
	Nft    *TokenNftInfo
}

// DecodeFrom implements DecoderFrom.
func (r *TokenGetNftInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.Nft)
		default:
			d.Skip()
		}
	}
}

// ScheduleInfo describes a schedule.
type ScheduleInfo struct {
	ScheduleID               *ScheduleID
	DeletionTime             *Timestamp
	ExecutionTime            *Timestamp
	ExpirationTime           *Timestamp
	ScheduledTransactionBody *SchedulableTransactionBody
	Memo                     string
	AdminKey                 *Key
	Signers                  *KeyList
	CreatorAccountID         *AccountID
	PayerAccountID           *AccountID
	ScheduledTransactionID   *TransactionID
	LedgerID                 []byte
	WaitForExpiry            bool
}

// DecodeFrom implements DecoderFrom.
func (s *ScheduleInfo) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &s.ScheduleID)
		case 2:
			s.ExecutionTime = nil
			DecodeMessage(d, &s.DeletionTime)
		case 3:
			s.DeletionTime = nil
			DecodeMessage(d, &s.ExecutionTime)
		case 4:
			DecodeMessage(d, &s.ExpirationTime)
		case 5:
			DecodeMessage(d, &s.ScheduledTransactionBody)
		case 6:
			s.Memo = d.ReadString()
		case 7:
			DecodeMessage(d, &s.AdminKey)
		case 8:
			DecodeMessage(d, &s.Signers)
		case 9:
			DecodeMessage(d, &s.CreatorAccountID)
		case 10:
			DecodeMessage(d, &s.PayerAccountID)
		case 11:
			DecodeMessage(d, &s.ScheduledTransactionID)
		case 12:
			s.LedgerID = d.ReadBytes()
		case 13:
			s.WaitForExpiry = d.ReadBool()
		default:
			d.Skip()
		}
	}
}

// ScheduleGetInfoResponse answers a schedule info query.
type ScheduleGetInfoResponse struct {
	Header       *ResponseHeader
	ScheduleInfo *ScheduleInfo
}

// DecodeFrom implements DecoderFrom.
func (r *ScheduleGetInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.ScheduleInfo)
		default:
			d.Skip()
		}
	}
}

// NetworkGetVersionInfoResponse answers a version query.
type NetworkGetVersionInfoResponse struct {
	Header                *ResponseHeader
	HapiProtoVersion      *SemanticVersion
	HederaServicesVersion *SemanticVersion
}

// DecodeFrom implements DecoderFrom.
func (r *NetworkGetVersionInfoResponse) DecodeFrom(d *Decoder) {
	for d.Next() {
		switch d.Field() {
		case 1:
			DecodeMessage(d, &r.Header)
		case 2:
			DecodeMessage(d, &r.HapiProtoVersion)
		case 3:
			DecodeMessage(d, &r.HederaServicesVersion)
		default:
			d.Skip()
		}
	}
}
