package ops

import (
	"time"

	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
)

// FileCreate creates a file. A file with no keys is immutable.
type FileCreate struct {
	Keys       []types.Key
	Contents   []byte
	Expiration time.Time
	Memo       string
}

// Tag implements Transaction.
func (FileCreate) Tag() Tag { return TagFileCreate }

func (p FileCreate) buildBody() (wire.Message, error) {
	if err := checkMemo(p.Memo); err != nil {
		return nil, err
	}
	keys, err := types.KeyListToWire(p.Keys)
	if err != nil {
		return nil, err
	}
	return &wire.FileCreateTransactionBody{
		ExpirationTime: types.OptionalTimestamp(p.Expiration),
		Keys:           keys,
		Contents:       p.Contents,
		Memo:           p.Memo,
	}, nil
}

// FileUpdate changes a file. Zero or nil fields are left unchanged; a
// non-nil empty Keys makes the file immutable.
type FileUpdate struct {
	File       types.Address
	Keys       []types.Key
	Contents   []byte
	Expiration time.Time
	Memo       *string
}

// Tag implements Transaction.
func (FileUpdate) Tag() Tag { return TagFileUpdate }

func (p FileUpdate) buildBody() (wire.Message, error) {
	if !anySet(p.Keys != nil, len(p.Contents) > 0, !p.Expiration.IsZero(), p.Memo != nil) {
		return nil, errConflict(errBlankUpdate)
	} else if p.Memo != nil {
		if err := checkMemo(*p.Memo); err != nil {
			return nil, err
		}
	}
	var b builder
	body := &wire.FileUpdateTransactionBody{
		FileID:         b.file("file", p.File),
		ExpirationTime: types.OptionalTimestamp(p.Expiration),
		Contents:       p.Contents,
		Memo:           optionalString(p.Memo),
	}
	if p.Keys != nil {
		kl, err := types.KeyListToWire(p.Keys)
		b.check("keys", err)
		body.Keys = kl
	}
	return body, b.err
}

// FileAppend appends a single chunk to a file.
type FileAppend struct {
	File     types.Address
	Contents []byte
}

// Tag implements Transaction.
func (FileAppend) Tag() Tag { return TagFileAppend }

func (p FileAppend) buildBody() (wire.Message, error) {
	switch {
	case len(p.Contents) == 0:
		return nil, errMissing("contents are required")
	case len(p.Contents) > maxFileAppendBytes:
		return nil, errRange("contents must not exceed %d bytes, got %d", maxFileAppendBytes, len(p.Contents))
	}
	var b builder
	body := &wire.FileAppendTransactionBody{
		FileID:   b.file("file", p.File),
		Contents: p.Contents,
	}
	return body, b.err
}

// FileDelete deletes a file.
type FileDelete struct {
	File types.Address
}

// Tag implements Transaction.
func (FileDelete) Tag() Tag { return TagFileDelete }

func (p FileDelete) buildBody() (wire.Message, error) {
	var b builder
	body := &wire.FileDeleteTransactionBody{FileID: b.file("file", p.File)}
	return body, b.err
}

// SystemDelete is an administrative delete of a file or a contract. Exactly
// one of File and Contract must be set.
type SystemDelete struct {
	File       types.Address
	Contract   types.Address
	Expiration time.Time
}

// Tag implements Transaction.
func (SystemDelete) Tag() Tag { return TagSystemDelete }

func (p SystemDelete) buildBody() (wire.Message, error) {
	if err := checkFileOrContract(p.File, p.Contract); err != nil {
		return nil, err
	} else if p.Expiration.IsZero() {
		return nil, errMissing("expiration is required")
	}
	var b builder
	body := &wire.SystemDeleteTransactionBody{
		FileID:         b.optFile("file", p.File),
		ContractID:     b.optContract("contract", p.Contract),
		ExpirationTime: &wire.TimestampSeconds{Seconds: p.Expiration.Unix()},
	}
	return body, b.err
}

// SystemUndelete reverses a SystemDelete. Exactly one of File and Contract
// must be set.
type SystemUndelete struct {
	File     types.Address
	Contract types.Address
}

// Tag implements Transaction.
func (SystemUndelete) Tag() Tag { return TagSystemUndelete }

func (p SystemUndelete) buildBody() (wire.Message, error) {
	if err := checkFileOrContract(p.File, p.Contract); err != nil {
		return nil, err
	}
	var b builder
	body := &wire.SystemUndeleteTransactionBody{
		FileID:     b.optFile("file", p.File),
		ContractID: b.optContract("contract", p.Contract),
	}
	return body, b.err
}

func checkFileOrContract(file, contract types.Address) error {
	switch {
	case file.IsNone() && contract.IsNone():
		return errMissing("file or contract is required")
	case !file.IsNone() && !contract.IsNone():
		return errConflict("file and contract are mutually exclusive")
	}
	return nil
}
