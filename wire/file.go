package wire

import "google.golang.org/protobuf/types/known/wrapperspb"

// FileCreateTransactionBody creates a file.
type FileCreateTransactionBody struct {
	ExpirationTime *Timestamp
	Keys           *KeyList
	Contents       []byte
	Memo           string
}

// EncodeTo implements Message.
func (b *FileCreateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 2, b.ExpirationTime)
	EncodeMessage(e, 3, b.Keys)
	e.WriteBytes(4, b.Contents)
	e.WriteString(8, b.Memo)
}

// FileUpdateTransactionBody modifies a file.
type FileUpdateTransactionBody struct {
	FileID         *FileID
	ExpirationTime *Timestamp
	Keys           *KeyList
	Contents       []byte
	Memo           *wrapperspb.StringValue
}

// EncodeTo implements Message.
func (b *FileUpdateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.FileID)
	EncodeMessage(e, 2, b.ExpirationTime)
	EncodeMessage(e, 3, b.Keys)
	if b.Contents != nil {
		e.AppendBytes(4, b.Contents)
	}
	e.WriteWrapper(5, b.Memo)
}

// FileAppendTransactionBody appends to a file.
type FileAppendTransactionBody struct {
	FileID   *FileID
	Contents []byte
}

// EncodeTo implements Message.
func (b *FileAppendTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 2, b.FileID)
	e.WriteBytes(4, b.Contents)
}

// FileDeleteTransactionBody deletes a file.
type FileDeleteTransactionBody struct {
	FileID *FileID
}

// EncodeTo implements Message.
func (b *FileDeleteTransactionBody) EncodeTo(e *Encoder) { EncodeMessage(e, 2, b.FileID) }

// SystemDeleteTransactionBody deletes a file or contract with administrative
// privileges.
type SystemDeleteTransactionBody struct {
	FileID         *FileID
	ContractID     *ContractID
	ExpirationTime *TimestampSeconds
}

// EncodeTo implements Message.
func (b *SystemDeleteTransactionBody) EncodeTo(e *Encoder) {
	if b.FileID != nil {
		e.AppendMessage(1, b.FileID)
	} else if b.ContractID != nil {
		e.AppendMessage(2, b.ContractID)
	}
	EncodeMessage(e, 3, b.ExpirationTime)
}

// SystemUndeleteTransactionBody restores a system-deleted file or contract.
type SystemUndeleteTransactionBody struct {
	FileID     *FileID
	ContractID *ContractID
}

// EncodeTo implements Message.
func (b *SystemUndeleteTransactionBody) EncodeTo(e *Encoder) {
	if b.FileID != nil {
		e.AppendMessage(1, b.FileID)
	} else if b.ContractID != nil {
		e.AppendMessage(2, b.ContractID)
	}
}
