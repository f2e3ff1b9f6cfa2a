package wire

import "google.golang.org/protobuf/types/known/wrapperspb"

// ConsensusCreateTopicTransactionBody creates a topic.
type ConsensusCreateTopicTransactionBody struct {
	Memo             string
	AdminKey         *Key
	SubmitKey        *Key
	AutoRenewPeriod  *Duration
	AutoRenewAccount *AccountID
}

// EncodeTo implements Message.
func (b *ConsensusCreateTopicTransactionBody) EncodeTo(e *Encoder) {
	e.WriteString(1, b.Memo)
	EncodeMessage(e, 2, b.AdminKey)
	EncodeMessage(e, 3, b.SubmitKey)
	EncodeMessage(e, 6, b.AutoRenewPeriod)
	EncodeMessage(e, 7, b.AutoRenewAccount)
}

// ConsensusUpdateTopicTransactionBody modifies a topic.
type ConsensusUpdateTopicTransactionBody struct {
	TopicID          *TopicID
	Memo             *wrapperspb.StringValue
	ExpirationTime   *Timestamp
	AdminKey         *Key
	SubmitKey        *Key
	AutoRenewPeriod  *Duration
	AutoRenewAccount *AccountID
}

// EncodeTo implements Message.
func (b *ConsensusUpdateTopicTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.TopicID)
	e.WriteWrapper(2, b.Memo)
	EncodeMessage(e, 4, b.ExpirationTime)
	EncodeMessage(e, 6, b.AdminKey)
	EncodeMessage(e, 7, b.SubmitKey)
	EncodeMessage(e, 8, b.AutoRenewPeriod)
	EncodeMessage(e, 9, b.AutoRenewAccount)
}

// ConsensusDeleteTopicTransactionBody deletes a topic.
type ConsensusDeleteTopicTransactionBody struct {
	TopicID *TopicID
}

// EncodeTo implements Message.
func (b *ConsensusDeleteTopicTransactionBody) EncodeTo(e *Encoder) { EncodeMessage(e, 1, b.TopicID) }

// ConsensusMessageChunkInfo places a message within a chunked submission.
type ConsensusMessageChunkInfo struct {
	InitialTransactionID *TransactionID
	Total                int32
	Number               int32
}

// EncodeTo implements Message.
func (c *ConsensusMessageChunkInfo) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, c.InitialTransactionID)
	e.WriteInt32(2, c.Total)
	e.WriteInt32(3, c.Number)
}

// ConsensusSubmitMessageTransactionBody submits a message to a topic.
type ConsensusSubmitMessageTransactionBody struct {
	TopicID   *TopicID
	Message   []byte
	ChunkInfo *ConsensusMessageChunkInfo
}

// EncodeTo implements Message.
func (b *ConsensusSubmitMessageTransactionBody) EncodeTo(e *Encoder) {
	EncodeMessage(e, 1, b.TopicID)
	e.WriteBytes(2, b.Message)
	EncodeMessage(e, 3, b.ChunkInfo)
}
