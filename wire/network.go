package wire

import "google.golang.org/protobuf/types/known/wrapperspb"

// ScheduleCreateTransactionBody creates a schedule holding a deferred body.
type ScheduleCreateTransactionBody struct {
	ScheduledTransactionBody *SchedulableTransactionBody
	Memo                     string
	AdminKey                 *Key
	PayerAccountID           *AccountID
	ExpirationTime           *Timestamp
	WaitForExpiry            bool
}

// EncodeTo implements Message.
func (b *ScheduleCreateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.ScheduledTransactionBody)
	e.WriteString(2, b.Memo)
	EncodeMessage(e, 3, b.AdminKey)
	EncodeMessage(e, 4, b.PayerAccountID)
	EncodeMessage(e, 5, b.ExpirationTime)
	e.WriteBool(13, b.WaitForExpiry)
}

// ScheduleIDTransactionBody is the layout shared by schedule sign and
// schedule delete.
type ScheduleIDTransactionBody struct {
	ScheduleID *ScheduleID
}

// EncodeTo implements Message.
func (b *ScheduleIDTransactionBody) EncodeTo(e *Encoder) { EncodeMessage(e, 1, b.ScheduleID) }

// Freeze types.
const (
	FreezeUnknown          int32 = 0
	FreezeOnly             int32 = 1
	FreezePrepareUpgrade   int32 = 2
	FreezeUpgrade          int32 = 3
	FreezeAbort            int32 = 4
	FreezeTelemetryUpgrade int32 = 5
)

// FreezeTransactionBody schedules a network freeze or upgrade.
type FreezeTransactionBody struct {
	UpdateFile *FileID
	FileHash   []byte
	StartTime  *Timestamp
	FreezeType int32
}

// EncodeTo implements Message.
func (b *FreezeTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 5, b.UpdateFile)
	e.WriteBytes(6, b.FileHash)
	EncodeMessage(e, 7, b.StartTime)
	e.WriteInt32(8, b.FreezeType)
}

// UtilPrngTransactionBody requests a pseudorandom number or bytes.
type UtilPrngTransactionBody struct {
	Range int32
}

// EncodeTo implements Message.
func (b *UtilPrngTransactionBody) EncodeTo(e *Encoder) { e.WriteInt32(1, b.Range) }

// UncheckedSubmitBody submits raw transaction bytes without validation.
type UncheckedSubmitBody struct {
	TransactionBytes []byte
}

// EncodeTo implements Message.
func (b *UncheckedSubmitBody) EncodeTo(e *Encoder) { e.WriteBytes(1, b.TransactionBytes) }

// NodeCreateTransactionBody adds a consensus node to the address book.
type NodeCreateTransactionBody struct {
	AccountID           *AccountID
	Description         string
	GossipEndpoint      []*ServiceEndpoint
	ServiceEndpoint     []*ServiceEndpoint
	GossipCACertificate []byte
	GRPCCertificateHash []byte
	AdminKey            *Key
	DeclineReward       bool
}

// EncodeTo implements Message.
func (b *NodeCreateTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.AccountID)
	e.WriteString(2, b.Description)
	EncodeRepeated(e, 3, b.GossipEndpoint)
	EncodeRepeated(e, 4, b.ServiceEndpoint)
	e.WriteBytes(5, b.GossipCACertificate)
	e.WriteBytes(6, b.GRPCCertificateHash)
	EncodeMessage(e, 7, b.AdminKey)
	e.WriteBool(8, b.DeclineReward)
}

// NodeUpdateTransactionBody modifies an address book entry.
type NodeUpdateTransactionBody struct {
	NodeID              uint64
	AccountID           *AccountID
	Description         *wrapperspb.StringValue
	GossipEndpoint      []*ServiceEndpoint
	ServiceEndpoint     []*ServiceEndpoint
	GossipCACertificate *wrapperspb.BytesValue
	GRPCCertificateHash *wrapperspb.BytesValue
	AdminKey            *Key
}

// EncodeTo implements Message.
func (b *NodeUpdateTransactionBody) EncodeTo(e *Encoder) {
	e.WriteUint64(1, b.NodeID)
	EncodeMessage(e, 2, b.AccountID)
	e.WriteWrapper(3, b.Description)
	EncodeRepeated(e, 4, b.GossipEndpoint)
	EncodeRepeated(e, 5, b.ServiceEndpoint)
	e.WriteWrapper(6, b.GossipCACertificate)
	e.WriteWrapper(7, b.GRPCCertificateHash)
	EncodeMessage(e, 8, b.AdminKey)
}

// NodeDeleteTransactionBody removes a node from the address book.
type NodeDeleteTransactionBody struct {
	NodeID uint64
}

// EncodeTo implements Message.
func (b *NodeDeleteTransactionBody) EncodeTo(e *Encoder) { e.WriteUint64(1, b.NodeID) }
