package ops

import (
	"fmt"
	"net"
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// ScheduleCreate creates a schedule that executes Transaction once it has
// collected the required signatures.
type ScheduleCreate struct {
	Transaction Transaction
	// MaxFee and TransactionMemo populate the scheduled body.
	MaxFee          types.Hbar
	TransactionMemo string

	Memo          string
	AdminKey      types.Key
	Payer         types.Address // None means the schedule's payer
	Expiration    time.Time
	WaitForExpiry bool
}

// Tag implements Transaction.
func (ScheduleCreate) Tag() Tag { return TagScheduleCreate }

func (p ScheduleCreate) buildBody() (wire.Message, error) {
	if p.Transaction == nil {
		return nil, errMissing("scheduled transaction is required")
	} else if err := checkMemo(p.Memo); err != nil {
		return nil, err
	} else if p.WaitForExpiry && p.Expiration.IsZero() {
		return nil, errMissing("waiting for expiry requires an expiration")
	}
	inner, err := Build(p.Transaction)
	if err != nil {
		return nil, fmt.Errorf("scheduled transaction: %w", err)
	}
	scheduled, err := inner.Schedulable(p.MaxFee, p.TransactionMemo)
	if err != nil {
		return nil, fmt.Errorf("scheduled transaction: %w", err)
	}
	var b builder
	body := &wire.ScheduleCreateTransactionBody{
		ScheduledTransactionBody: scheduled,
		Memo:                     p.Memo,
		AdminKey:                 b.optKey("admin key", p.AdminKey),
		PayerAccountID:           b.optAccount("payer", p.Payer),
		ExpirationTime:           types.OptionalTimestamp(p.Expiration),
		WaitForExpiry:            p.WaitForExpiry,
	}
	return body, b.err
}

// ScheduleSign adds the transaction's signatures to a schedule.
type ScheduleSign struct {
	Schedule types.Address
}

// Tag implements Transaction.
func (ScheduleSign) Tag() Tag { return TagScheduleSign }

func (p ScheduleSign) buildBody() (wire.Message, error) {
	var b builder
	body := &wire.ScheduleIDTransactionBody{ScheduleID: b.schedule("schedule", p.Schedule)}
	return body, b.err
}

// ScheduleDelete deletes a schedule before it executes.
type ScheduleDelete struct {
	Schedule types.Address
}

// Tag implements Transaction.
func (ScheduleDelete) Tag() Tag { return TagScheduleDelete }

func (p ScheduleDelete) buildBody() (wire.Message, error) {
	var b builder
	body := &wire.ScheduleIDTransactionBody{ScheduleID: b.schedule("schedule", p.Schedule)}
	return body, b.err
}

// Prng requests a pseudorandom number in [0, Range), or 384 random bits if
// Range is zero.
type Prng struct {
	Range int32
}

// Tag implements Transaction.
func (Prng) Tag() Tag { return TagPrng }

func (p Prng) buildBody() (wire.Message, error) {
	if p.Range < 0 {
		return nil, errRange("range must not be negative, got %d", p.Range)
	}
	return &wire.UtilPrngTransactionBody{Range: p.Range}, nil
}

// UncheckedSubmit submits an encoded Transaction without precheck.
type UncheckedSubmit struct {
	Transaction []byte
}

// Tag implements Transaction.
func (UncheckedSubmit) Tag() Tag { return TagUncheckedSubmit }

func (p UncheckedSubmit) buildBody() (wire.Message, error) {
	if len(p.Transaction) == 0 {
		return nil, errMissing("transaction bytes are required")
	}
	return &wire.UncheckedSubmitBody{TransactionBytes: p.Transaction}, nil
}

// A FreezeType selects the network administration action of a Freeze.
type FreezeType int32

// Freeze types.
const (
	FreezeOnly             = FreezeType(wire.FreezeOnly)
	FreezePrepareUpgrade   = FreezeType(wire.FreezePrepareUpgrade)
	FreezeUpgrade          = FreezeType(wire.FreezeUpgrade)
	FreezeAbort            = FreezeType(wire.FreezeAbort)
	FreezeTelemetryUpgrade = FreezeType(wire.FreezeTelemetryUpgrade)
)

// Freeze freezes or upgrades the network.
type Freeze struct {
	Type       FreezeType
	StartTime  time.Time
	UpdateFile types.Address
	FileHash   []byte
}

// Tag implements Transaction.
func (Freeze) Tag() Tag { return TagFreeze }

func (p Freeze) buildBody() (wire.Message, error) {
	needsStart, needsFile := false, false
	switch p.Type {
	case FreezeOnly, FreezeUpgrade:
		needsStart = true
	case FreezePrepareUpgrade:
		needsFile = true
	case FreezeTelemetryUpgrade:
		needsStart, needsFile = true, true
	case FreezeAbort:
	default:
		return nil, errRange("unknown freeze type %d", p.Type)
	}
	switch {
	case needsStart && p.StartTime.IsZero():
		return nil, errMissing("start time is required")
	case needsFile && p.UpdateFile.IsNone():
		return nil, errMissing("update file is required")
	case needsFile && len(p.FileHash) == 0:
		return nil, errMissing("file hash is required")
	}
	var b builder
	body := &wire.FreezeTransactionBody{
		UpdateFile: b.optFile("update file", p.UpdateFile),
		FileHash:   p.FileHash,
		StartTime:  types.OptionalTimestamp(p.StartTime),
		FreezeType: int32(p.Type),
	}
	return body, b.err
}

// An Endpoint is the address of a node service, given by exactly one of an
// IPv4 address and a domain name.
type Endpoint struct {
	IP     net.IP
	Domain string
	Port   int32
}

func endpointsToWire(eps []Endpoint) ([]*wire.ServiceEndpoint, error) {
	ws := make([]*wire.ServiceEndpoint, len(eps))
	for i, ep := range eps {
		ip4 := ep.IP.To4()
		switch {
		case ep.IP == nil && ep.Domain == "":
			return nil, errMissing("endpoint %d requires an IP address or domain name", i)
		case ep.IP != nil && ep.Domain != "":
			return nil, errConflict("endpoint %d has both an IP address and a domain name", i)
		case ep.IP != nil && ip4 == nil:
			return nil, errRange("endpoint %d: %v is not an IPv4 address", i, ep.IP)
		case ep.Port < 0 || ep.Port > maxPort:
			return nil, errRange("endpoint %d: invalid port %d", i, ep.Port)
		}
		ws[i] = &wire.ServiceEndpoint{Port: ep.Port, DomainName: ep.Domain}
		if ip4 != nil {
			ws[i].IPAddressV4 = []byte(ip4)
		}
	}
	return ws, nil
}

// NodeCreate adds a consensus node to the address book.
type NodeCreate struct {
	Account             types.Address
	Description         string
	GossipEndpoints     []Endpoint
	ServiceEndpoints    []Endpoint
	GossipCACertificate []byte
	GRPCCertificateHash []byte
	AdminKey            types.Key
	DeclineReward       bool
}

// Tag implements Transaction.
func (NodeCreate) Tag() Tag { return TagNodeCreate }

func (p NodeCreate) buildBody() (wire.Message, error) {
	switch {
	case len(p.Description) > maxMemoBytes:
		return nil, errRange("description must not exceed %d bytes", maxMemoBytes)
	case len(p.GossipEndpoints) == 0:
		return nil, errMissing("at least one gossip endpoint is required")
	case len(p.ServiceEndpoints) == 0:
		return nil, errMissing("at least one service endpoint is required")
	case len(p.GossipCACertificate) == 0:
		return nil, errMissing("gossip CA certificate is required")
	case p.AdminKey.IsNone():
		return nil, errMissing("admin key is required")
	}
	gossip, err := endpointsToWire(p.GossipEndpoints)
	if err != nil {
		return nil, fmt.Errorf("gossip endpoints: %w", err)
	}
	service, err := endpointsToWire(p.ServiceEndpoints)
	if err != nil {
		return nil, fmt.Errorf("service endpoints: %w", err)
	}
	var b builder
	body := &wire.NodeCreateTransactionBody{
		AccountID:           b.account("account", p.Account),
		Description:         p.Description,
		GossipEndpoint:      gossip,
		ServiceEndpoint:     service,
		GossipCACertificate: p.GossipCACertificate,
		GRPCCertificateHash: p.GRPCCertificateHash,
		AdminKey:            b.key("admin key", p.AdminKey),
		DeclineReward:       p.DeclineReward,
	}
	return body, b.err
}

// NodeUpdate changes a node's address book entry. Zero or nil fields are
// left unchanged.
type NodeUpdate struct {
	Node                uint64
	Account             types.Address
	Description         *string
	GossipEndpoints     []Endpoint
	ServiceEndpoints    []Endpoint
	GossipCACertificate []byte
	GRPCCertificateHash []byte
	AdminKey            types.Key
}

// Tag implements Transaction.
func (NodeUpdate) Tag() Tag { return TagNodeUpdate }

func (p NodeUpdate) buildBody() (wire.Message, error) {
	if !anySet(!p.Account.IsNone(), p.Description != nil, len(p.GossipEndpoints) > 0, len(p.ServiceEndpoints) > 0,
		p.GossipCACertificate != nil, p.GRPCCertificateHash != nil, !p.AdminKey.IsNone()) {
		return nil, errConflict(errBlankUpdate)
	} else if p.Description != nil && len(*p.Description) > maxMemoBytes {
		return nil, errRange("description must not exceed %d bytes", maxMemoBytes)
	}
	gossip, err := endpointsToWire(p.GossipEndpoints)
	if err != nil {
		return nil, fmt.Errorf("gossip endpoints: %w", err)
	}
	service, err := endpointsToWire(p.ServiceEndpoints)
	if err != nil {
		return nil, fmt.Errorf("service endpoints: %w", err)
	}
	var b builder
	body := &wire.NodeUpdateTransactionBody{
		NodeID:              p.Node,
		AccountID:           b.optAccount("account", p.Account),
		Description:         optionalString(p.Description),
		GossipEndpoint:      gossip,
		ServiceEndpoint:     service,
		GossipCACertificate: optionalBytes(p.GossipCACertificate),
		GRPCCertificateHash: optionalBytes(p.GRPCCertificateHash),
		AdminKey:            b.optKey("admin key", p.AdminKey),
	}
	return body, b.err
}

// NodeDelete removes a node from the address book.
type NodeDelete struct {
	Node uint64
}

// Tag implements Transaction.
func (NodeDelete) Tag() Tag { return TagNodeDelete }

func (p NodeDelete) buildBody() (wire.Message, error) {
	return &wire.NodeDeleteTransactionBody{NodeID: p.Node}, nil
}
