package ops

import (
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// TopicCreate creates a consensus topic.
type TopicCreate struct {
	Memo             string
	AdminKey         types.Key
	SubmitKey        types.Key
	AutoRenewPeriod  time.Duration
	AutoRenewAccount types.Address
}

// Tag implements Transaction.
func (TopicCreate) Tag() Tag { return TagTopicCreate }

func (p TopicCreate) buildBody() (wire.Message, error) {
	if err := checkMemo(p.Memo); err != nil {
		return nil, err
	} else if err := checkAutoRenew(p.AutoRenewPeriod); err != nil {
		return nil, err
	} else if !p.AutoRenewAccount.IsNone() && p.AdminKey.IsNone() {
		return nil, errMissing("an auto-renew account requires an admin key")
	}
	var b builder
	body := &wire.ConsensusCreateTopicTransactionBody{
		Memo:             p.Memo,
		AdminKey:         b.optKey("admin key", p.AdminKey),
		SubmitKey:        b.optKey("submit key", p.SubmitKey),
		AutoRenewPeriod:  types.DurationToWire(p.AutoRenewPeriod),
		AutoRenewAccount: b.optAccount("auto-renew account", p.AutoRenewAccount),
	}
	return body, b.err
}

// TopicUpdate changes a topic. Zero or nil fields are left unchanged.
type TopicUpdate struct {
	Topic            types.Address
	Memo             *string
	Expiration       time.Time
	AdminKey         types.Key
	SubmitKey        types.Key
	AutoRenewPeriod  time.Duration
	AutoRenewAccount types.Address
}

// Tag implements Transaction.
func (TopicUpdate) Tag() Tag { return TagTopicUpdate }

func (p TopicUpdate) buildBody() (wire.Message, error) {
	if !anySet(p.Memo != nil, !p.Expiration.IsZero(), !p.AdminKey.IsNone(), !p.SubmitKey.IsNone(),
		p.AutoRenewPeriod != 0, !p.AutoRenewAccount.IsNone()) {
		return nil, errConflict(errBlankUpdate)
	} else if err := checkAutoRenew(p.AutoRenewPeriod); err != nil {
		return nil, err
	}
	if p.Memo != nil {
		if err := checkMemo(*p.Memo); err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.ConsensusUpdateTopicTransactionBody{
		TopicID:          b.topic("topic", p.Topic),
		Memo:             optionalString(p.Memo),
		ExpirationTime:   types.OptionalTimestamp(p.Expiration),
		AdminKey:         b.optKey("admin key", p.AdminKey),
		SubmitKey:        b.optKey("submit key", p.SubmitKey),
		AutoRenewPeriod:  types.DurationToWire(p.AutoRenewPeriod),
		AutoRenewAccount: b.optAccount("auto-renew account", p.AutoRenewAccount),
	}
	return body, b.err
}

// TopicDelete deletes a topic.
type TopicDelete struct {
	Topic types.Address
}

// Tag implements Transaction.
func (TopicDelete) Tag() Tag { return TagTopicDelete }

func (p TopicDelete) buildBody() (wire.Message, error) {
	var b builder
	body := &wire.ConsensusDeleteTopicTransactionBody{TopicID: b.topic("topic", p.Topic)}
	return body, b.err
}

// TopicMessageSubmit submits a single-chunk message to a topic.
type TopicMessageSubmit struct {
	Topic   types.Address
	Message []byte
}

// Tag implements Transaction.
func (TopicMessageSubmit) Tag() Tag { return TagTopicMessageSubmit }

func (p TopicMessageSubmit) buildBody() (wire.Message, error) {
	switch {
	case len(p.Message) == 0:
		return nil, errMissing("message is required")
	case len(p.Message) > maxTopicMessageBytes:
		return nil, errRange("message must not exceed %d bytes, got %d", maxTopicMessageBytes, len(p.Message))
	}
	var b builder
	body := &wire.ConsensusSubmitMessageTransactionBody{
		TopicID: b.topic("topic", p.Topic),
		Message: p.Message,
	}
	return body, b.err
}
