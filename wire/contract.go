package wire

import "google.golang.org/protobuf/types/known/wrapperspb"

// ContractCreateTransactionBody deploys a contract from a file or from
// inline initcode.
type ContractCreateTransactionBody struct {
	FileID                        *FileID
	AdminKey                      *Key
	Gas                           int64
	InitialBalance                int64
	AutoRenewPeriod               *Duration
	ConstructorParameters         []byte
	Memo                          string
	MaxAutomaticTokenAssociations int32
	AutoRenewAccountID            *AccountID
	InitCode                      []byte
	StakedAccountID               *AccountID
	StakedNodeID                  *int64
	DeclineReward                 bool
}

// EncodeTo implements Message.
func (b *ContractCreateTransactionBody) EncodeTo(e *Encoder) {
	if b.FileID != nil {
		e.AppendMessage(1, b.FileID)
	}
	EncodeMessage(e, 3, b.AdminKey)
	e.WriteInt64(4, b.Gas)
	e.WriteInt64(5, b.InitialBalance)
	EncodeMessage(e, 8, b.AutoRenewPeriod)
	e.WriteBytes(9, b.ConstructorParameters)
	e.WriteString(13, b.Memo)
	e.WriteInt32(14, b.MaxAutomaticTokenAssociations)
	EncodeMessage(e, 15, b.AutoRenewAccountID)
	if b.FileID == nil && b.InitCode != nil {
		e.AppendBytes(16, b.InitCode)
	}
	encodeStake(e, 17, b.StakedAccountID, b.StakedNodeID)
	e.WriteBool(19, b.DeclineReward)
}

// ContractUpdateTransactionBody modifies a contract.
type ContractUpdateTransactionBody struct {
	ContractID                    *ContractID
	ExpirationTime                *Timestamp
	AdminKey                      *Key
	AutoRenewPeriod               *Duration
	Memo                          *wrapperspb.StringValue
	MaxAutomaticTokenAssociations *wrapperspb.Int32Value
	AutoRenewAccountID            *AccountID
	StakedAccountID               *AccountID
	StakedNodeID                  *int64
	DeclineReward                 *wrapperspb.BoolValue
}

// EncodeTo implements Message.
func (b *ContractUpdateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.ContractID)
	EncodeMessage(e, 2, b.ExpirationTime)
	EncodeMessage(e, 3, b.AdminKey)
	EncodeMessage(e, 7, b.AutoRenewPeriod)
	e.WriteWrapper(10, b.Memo)
	e.WriteWrapper(11, b.MaxAutomaticTokenAssociations)
	EncodeMessage(e, 12, b.AutoRenewAccountID)
	encodeStake(e, 13, b.StakedAccountID, b.StakedNodeID)
	e.WriteWrapper(15, b.DeclineReward)
}

// ContractCallTransactionBody calls a contract function.
type ContractCallTransactionBody struct {
	ContractID         *ContractID
	Gas                int64
	Amount             int64
	FunctionParameters []byte
}

// EncodeTo implements Message.
func (b *ContractCallTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.ContractID)
	e.WriteInt64(2, b.Gas)
	e.WriteInt64(3, b.Amount)
	e.WriteBytes(4, b.FunctionParameters)
}

// ContractDeleteTransactionBody deletes a contract, moving its balance to an
// account or another contract.
type ContractDeleteTransactionBody struct {
	ContractID         *ContractID
	TransferAccountID  *AccountID
	TransferContractID *ContractID
	PermanentRemoval   bool
}

// EncodeTo implements Message.
func (b *ContractDeleteTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.ContractID)
	if b.TransferAccountID != nil {
		e.AppendMessage(2, b.TransferAccountID)
	} else if b.TransferContractID != nil {
		e.AppendMessage(3, b.TransferContractID)
	}
	e.WriteBool(4, b.PermanentRemoval)
}

// EthereumTransactionBody submits an RLP-encoded Ethereum transaction.
type EthereumTransactionBody struct {
	EthereumData    []byte
	CallData        *FileID
	MaxGasAllowance int64
}

// EncodeTo implements Message.
func (b *EthereumTransactionBody) EncodeTo(e *Encoder) {
	e.WriteBytes(1, b.EthereumData)
	EncodeMessage(e, 2, b.CallData)
	e.WriteInt64(3, b.MaxGasAllowance)
}
