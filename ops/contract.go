package ops

import (
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// ContractCreate deploys a contract. Exactly one of Bytecode and
// BytecodeFile must be set.
type ContractCreate struct {
	Bytecode                      []byte
	BytecodeFile                  types.Address
	AdminKey                      types.Key
	Gas                           int64
	InitialBalance                types.Hbar
	AutoRenewPeriod               time.Duration
	ConstructorParameters         []byte
	Memo                          string
	MaxAutomaticTokenAssociations int32
	AutoRenewAccount              types.Address
	StakedAccount                 types.Address
	StakedNode                    *int64
	DeclineStakingReward          bool
}

// Tag implements Transaction.
func (ContractCreate) Tag() Tag { return TagContractCreate }

func (p ContractCreate) buildBody() (wire.Message, error) {
	switch {
	case len(p.Bytecode) == 0 && p.BytecodeFile.IsNone():
		return nil, errMissing("bytecode or bytecode file is required")
	case len(p.Bytecode) > 0 && !p.BytecodeFile.IsNone():
		return nil, errConflict("bytecode and bytecode file are mutually exclusive")
	case p.Gas <= 0:
		return nil, errRange("gas must be positive, got %d", p.Gas)
	case p.InitialBalance < 0:
		return nil, errRange("initial balance must not be negative, got %v", p.InitialBalance)
	}
	for _, err := range []error{
		checkAutoRenew(p.AutoRenewPeriod),
		checkMemo(p.Memo),
		checkMaxAssociations(p.MaxAutomaticTokenAssociations),
		checkStaking(p.StakedAccount, p.StakedNode),
	} {
		if err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.ContractCreateTransactionBody{
		FileID:                        b.optFile("bytecode file", p.BytecodeFile),
		AdminKey:                      b.optKey("admin key", p.AdminKey),
		Gas:                           p.Gas,
		InitialBalance:                int64(p.InitialBalance),
		AutoRenewPeriod:               types.DurationToWire(p.AutoRenewPeriod),
		ConstructorParameters:         p.ConstructorParameters,
		Memo:                          p.Memo,
		MaxAutomaticTokenAssociations: p.MaxAutomaticTokenAssociations,
		AutoRenewAccountID:            b.optAccount("auto-renew account", p.AutoRenewAccount),
		InitCode:                      p.Bytecode,
		StakedAccountID:               b.optAccount("staked account", p.StakedAccount),
		StakedNodeID:                  p.StakedNode,
		DeclineReward:                 p.DeclineStakingReward,
	}
	return body, b.err
}

// ContractUpdate changes the properties of a contract. Zero or nil fields
// are left unchanged.
type ContractUpdate struct {
	Contract                      types.Address
	Expiration                    time.Time
	AdminKey                      types.Key
	AutoRenewPeriod               time.Duration
	Memo                          *string
	MaxAutomaticTokenAssociations *int32
	AutoRenewAccount              types.Address
	StakedAccount                 types.Address
	StakedNode                    *int64
	DeclineStakingReward          *bool
}

// Tag implements Transaction.
func (ContractUpdate) Tag() Tag { return TagContractUpdate }

func (p ContractUpdate) buildBody() (wire.Message, error) {
	if !anySet(!p.Expiration.IsZero(), !p.AdminKey.IsNone(), p.AutoRenewPeriod != 0, p.Memo != nil,
		p.MaxAutomaticTokenAssociations != nil, !p.AutoRenewAccount.IsNone(), !p.StakedAccount.IsNone(),
		p.StakedNode != nil, p.DeclineStakingReward != nil) {
		return nil, errConflict(errBlankUpdate)
	} else if err := checkAutoRenew(p.AutoRenewPeriod); err != nil {
		return nil, err
	} else if err := checkStaking(p.StakedAccount, p.StakedNode); err != nil {
		return nil, err
	}
	if p.Memo != nil {
		if err := checkMemo(*p.Memo); err != nil {
			return nil, err
		}
	}
	if p.MaxAutomaticTokenAssociations != nil {
		if err := checkMaxAssociations(*p.MaxAutomaticTokenAssociations); err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.ContractUpdateTransactionBody{
		ContractID:                    b.contract("contract", p.Contract),
		ExpirationTime:                types.OptionalTimestamp(p.Expiration),
		AdminKey:                      b.optKey("admin key", p.AdminKey),
		AutoRenewPeriod:               types.DurationToWire(p.AutoRenewPeriod),
		Memo:                          optionalString(p.Memo),
		MaxAutomaticTokenAssociations: optionalInt32(p.MaxAutomaticTokenAssociations),
		AutoRenewAccountID:            b.optAccount("auto-renew account", p.AutoRenewAccount),
		StakedAccountID:               b.optAccount("staked account", p.StakedAccount),
		StakedNodeID:                  p.StakedNode,
		DeclineReward:                 optionalBool(p.DeclineStakingReward),
	}
	return body, b.err
}

// ContractExecute calls a contract function.
type ContractExecute struct {
	Contract   types.Address
	Gas        int64
	Amount     types.Hbar
	Parameters []byte
}

// Tag implements Transaction.
func (ContractExecute) Tag() Tag { return TagContractExecute }

func (p ContractExecute) buildBody() (wire.Message, error) {
	switch {
	case p.Gas <= 0:
		return nil, errRange("gas must be positive, got %d", p.Gas)
	case p.Amount < 0:
		return nil, errRange("amount must not be negative, got %v", p.Amount)
	}
	var b builder
	body := &wire.ContractCallTransactionBody{
		ContractID:         b.contract("contract", p.Contract),
		Gas:                p.Gas,
		Amount:             int64(p.Amount),
		FunctionParameters: p.Parameters,
	}
	return body, b.err
}

// ContractDelete deletes a contract, moving its balance to exactly one of
// TransferAccount and TransferContract.
type ContractDelete struct {
	Contract         types.Address
	TransferAccount  types.Address
	TransferContract types.Address
	PermanentRemoval bool
}

// Tag implements Transaction.
func (ContractDelete) Tag() Tag { return TagContractDelete }

func (p ContractDelete) buildBody() (wire.Message, error) {
	switch {
	case p.TransferAccount.IsNone() && p.TransferContract.IsNone():
		return nil, errMissing("transfer account or transfer contract is required")
	case !p.TransferAccount.IsNone() && !p.TransferContract.IsNone():
		return nil, errConflict("transfer account and transfer contract are mutually exclusive")
	case !p.Contract.IsNone() && p.Contract == p.TransferContract:
		return nil, errConflict("transfer contract must differ from the deleted contract")
	}
	var b builder
	body := &wire.ContractDeleteTransactionBody{
		ContractID:         b.contract("contract", p.Contract),
		TransferAccountID:  b.optAccount("transfer account", p.TransferAccount),
		TransferContractID: b.optContract("transfer contract", p.TransferContract),
		PermanentRemoval:   p.PermanentRemoval,
	}
	return body, b.err
}

// Ethereum submits a raw, RLP-encoded Ethereum transaction. Call data too
// large to inline may be stored in CallDataFile.
type Ethereum struct {
	Data            []byte
	CallDataFile    types.Address
	MaxGasAllowance types.Hbar
}

// Tag implements Transaction.
func (Ethereum) Tag() Tag { return TagEthereum }

func (p Ethereum) buildBody() (wire.Message, error) {
	switch {
	case len(p.Data) == 0:
		return nil, errMissing("ethereum data is required")
	case p.MaxGasAllowance < 0:
		return nil, errRange("max gas allowance must not be negative, got %v", p.MaxGasAllowance)
	}
	var b builder
	body := &wire.EthereumTransactionBody{
		EthereumData:    p.Data,
		CallData:        b.optFile("call data file", p.CallDataFile),
		MaxGasAllowance: int64(p.MaxGasAllowance),
	}
	return body, b.err
}
