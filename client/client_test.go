package client

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/sha512"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"go.hashgraph.tech/core/ops"
	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/sha3"
	"google.golang.org/protobuf/encoding/protowire"
	"lukechampine.com/frand"
)

var (
	operator = types.NewAddress(0, 0, 1001)
	bob      = types.NewAddress(0, 0, 1002)
	contract = types.NewAddress(0, 0, 2001)
)

var errUnreachable = errors.New("node unreachable")

// Query fields of the Response envelope exercised by these tests.
const (
	fieldContractCallLocal  protowire.Number = 3
	fieldAccountBalance     protowire.Number = 7
	fieldTransactionReceipt protowire.Number = 14
)

// A fakeNode answers requests the way a network node would.
type fakeNode struct {
	t       *testing.T
	account types.Address
	pub     ed25519.PublicKey

	mu sync.Mutex
	// precheck is returned to every submitted transaction.
	precheck wire.ResponseCode
	// receipts are returned to successive receipt polls; the last one
	// repeats.
	receipts []wire.ResponseCode
	// queryPrecheck is returned in the header of every other query.
	queryPrecheck wire.ResponseCode
	err           error

	submitted []*wire.Transaction
	bodies    []*wire.TransactionBody
	polls     int
	payments  []*wire.TransactionBody
}

func newFakeNode(t *testing.T, num uint64, pub ed25519.PublicKey) *fakeNode {
	return &fakeNode{t: t, account: types.NewAddress(0, 0, num), pub: pub, receipts: []wire.ResponseCode{wire.ResponseSuccess}}
}

// openTransaction verifies the signature of txn and decodes its body.
func (n *fakeNode) openTransaction(b []byte) (*wire.Transaction, *wire.TransactionBody) {
	n.t.Helper()
	var txn wire.Transaction
	var signed wire.SignedTransaction
	var body wire.TransactionBody
	if err := wire.Unmarshal(b, &txn); err != nil {
		n.t.Fatal(err)
	} else if err := wire.Unmarshal(txn.SignedTransactionBytes, &signed); err != nil {
		n.t.Fatal(err)
	} else if err := wire.Unmarshal(signed.BodyBytes, &body); err != nil {
		n.t.Fatal(err)
	} else if signed.SigMap == nil || len(signed.SigMap.SigPair) != 1 {
		n.t.Fatal("expected exactly one signature")
	}
	sp := signed.SigMap.SigPair[0]
	if sp.Kind != wire.SignatureEd25519 || !bytes.Equal(sp.PubKeyPrefix, n.pub) {
		n.t.Fatalf("unexpected signature pair %+v", sp)
	} else if !ed25519.Verify(n.pub, signed.BodyBytes, sp.Signature) {
		n.t.Fatal("invalid signature")
	}
	return &txn, &body
}

// splitQuery returns the field and header of an encoded query.
func splitQuery(t *testing.T, b []byte) (field protowire.Number, payment []byte) {
	t.Helper()
	d := wire.NewDecoder(b)
	if !d.Next() {
		t.Fatal("empty query")
	}
	field = d.Field()
	inner := wire.NewDecoder(d.ReadBytes())
	for inner.Next() {
		if inner.Field() != 1 {
			inner.Skip()
			continue
		}
		h := wire.NewDecoder(inner.ReadBytes())
		for h.Next() {
			if h.Field() == 1 {
				payment = h.ReadBytes()
			} else {
				h.Skip()
			}
		}
	}
	return field, payment
}

func (n *fakeNode) Invoke(ctx context.Context, method ops.RemoteMethod, req []byte) ([]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return nil, n.err
	}

	switch method {
	case ops.TagTransfer.Method(), ops.TagAccountCreate.Method():
		txn, body := n.openTransaction(req)
		n.submitted = append(n.submitted, txn)
		n.bodies = append(n.bodies, body)
		return wire.Marshal(&wire.TransactionResponse{NodeTransactionPrecheckCode: n.precheck}), nil
	}

	field, payment := splitQuery(n.t, req)
	if payment != nil {
		_, body := n.openTransaction(payment)
		n.payments = append(n.payments, body)
	}
	var resp wire.Message
	switch field {
	case fieldTransactionReceipt:
		status := n.receipts[min(n.polls, len(n.receipts)-1)]
		n.polls++
		resp = &wire.TransactionGetReceiptResponse{
			Header:  &wire.ResponseHeader{},
			Receipt: &wire.TransactionReceipt{Status: status},
		}
	case fieldAccountBalance:
		id, _ := types.AccountIDToWire(operator)
		resp = &wire.CryptoGetAccountBalanceResponse{
			Header:    &wire.ResponseHeader{NodeTransactionPrecheckCode: n.queryPrecheck},
			AccountID: id,
			Balance:   uint64(types.NewHbar(5)),
		}
	case fieldContractCallLocal:
		id, _ := types.ContractIDToWire(contract)
		resp = &wire.ContractCallLocalResponse{
			Header:         &wire.ResponseHeader{NodeTransactionPrecheckCode: n.queryPrecheck},
			FunctionResult: &wire.ContractFunctionResult{ContractID: id, ContractCallResult: []byte{7}},
		}
	default:
		n.t.Fatalf("unexpected query field %d", field)
	}
	return wire.Marshal(&wire.Response{Data: wire.Oneof{Field: field, Msg: resp}}), nil
}

func newTestClient(t *testing.T, nodes []*fakeNode, sk ed25519.PrivateKey, opts ...Option) *Client {
	t.Helper()
	var cn []Node
	for _, n := range nodes {
		cn = append(cn, Node{Account: n.account, Dispatcher: n})
	}
	opts = append([]Option{WithLogger(zaptest.NewLogger(t)), WithReceiptPolling(time.Millisecond, 3)}, opts...)
	c, err := New(operator, Ed25519Signer(sk), cn, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pk, sk, _ := ed25519.GenerateKey(frand.Reader)
	return pk, sk
}

func transfer() ops.Transfer {
	return ops.Transfer{Hbar: []types.HbarTransfer{
		{Account: operator, Amount: -10},
		{Account: bob, Amount: 10},
	}}
}

type fixedFees map[ops.Tag]types.Hbar

func (f fixedFees) MaxTransactionFee(t ops.Tag) (types.Hbar, bool) {
	fee, ok := f[t]
	return fee, ok
}

func TestNew(t *testing.T) {
	_, sk := newKey()
	node := Node{Account: types.NewAddress(0, 0, 3), Dispatcher: &fakeNode{}}
	alias := types.NewAliasAddress(0, 0, types.EVMAddress{1})
	tests := []struct {
		desc     string
		operator types.Address
		signer   Signer
		nodes    []Node
		opts     []Option
		kind     types.ErrorKind
	}{
		{"no operator", types.Address{}, Ed25519Signer(sk), []Node{node}, nil, types.ErrorKindMissingRequiredField},
		{"alias operator", alias, Ed25519Signer(sk), []Node{node}, nil, types.ErrorKindOutOfRangeValue},
		{"no signer", operator, nil, []Node{node}, nil, types.ErrorKindMissingRequiredField},
		{"no nodes", operator, Ed25519Signer(sk), nil, nil, types.ErrorKindMissingRequiredField},
		{"no dispatcher", operator, Ed25519Signer(sk), []Node{{Account: node.Account}}, nil, types.ErrorKindOutOfRangeValue},
		{"no polls", operator, Ed25519Signer(sk), []Node{node}, []Option{WithReceiptPolling(time.Second, 0)}, types.ErrorKindOutOfRangeValue},
	}
	for _, test := range tests {
		if _, err := New(test.operator, test.signer, test.nodes, test.opts...); types.KindOf(err) != test.kind {
			t.Errorf("%s: expected %v, got %v", test.desc, test.kind, err)
		}
	}
	if _, err := New(operator, Ed25519Signer(sk), []Node{node}); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteSucceeded(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	node.receipts = []wire.ResponseCode{wire.ResponseUnknown, wire.ResponseSuccess}
	c := newTestClient(t, []*fakeNode{node}, sk, WithFeeSchedule(fixedFees{ops.TagTransfer: 12345}))

	e, err := c.Execute(context.Background(), transfer(), Memo("rent"))
	if err != nil {
		t.Fatal(err)
	}
	switch {
	case e.State != StateSucceeded:
		t.Fatalf("expected succeeded, got %v", e.State)
	case e.Node != node.account:
		t.Fatalf("expected node %v, got %v", node.account, e.Node)
	case e.Receipt == nil || e.Receipt.Status != wire.ResponseSuccess:
		t.Fatalf("unexpected receipt %+v", e.Receipt)
	case e.TransactionID.Account != operator:
		t.Fatalf("unexpected transaction ID %v", e.TransactionID)
	case node.polls != 2:
		t.Fatalf("expected 2 receipt polls, got %d", node.polls)
	case len(node.bodies) != 1:
		t.Fatalf("expected 1 submission, got %d", len(node.bodies))
	}

	body := node.bodies[0]
	if body.Memo != "rent" || body.TransactionFee != 12345 {
		t.Fatalf("unexpected envelope memo %q fee %d", body.Memo, body.TransactionFee)
	} else if tag, err := ops.TagOf(body); err != nil || tag != ops.TagTransfer {
		t.Fatalf("unexpected tag %v (%v)", tag, err)
	} else if types.AccountIDFromWire(body.NodeAccountID) != node.account {
		t.Fatalf("unexpected node account %v", body.NodeAccountID)
	}
	hash := sha512.Sum384(node.submitted[0].SignedTransactionBytes)
	if !bytes.Equal(e.Hash, hash[:]) {
		t.Fatal("hash should cover the signed transaction bytes")
	}
}

func TestExecutePrecheckFailed(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	node.precheck = wire.ResponseInsufficientTxFee
	c := newTestClient(t, []*fakeNode{node}, sk)

	e, err := c.Execute(context.Background(), transfer())
	var pe *types.PrecheckError
	if !errors.As(err, &pe) || pe.Status != wire.ResponseInsufficientTxFee {
		t.Fatalf("expected precheck error, got %v", err)
	} else if e.State != StatePrecheckFailed || e.Err != err {
		t.Fatalf("unexpected execution %+v", e)
	} else if e.Receipt != nil || node.polls != 0 {
		t.Fatal("precheck failure should not poll for a receipt")
	}
}

func TestExecuteBusyNode(t *testing.T) {
	pk, sk := newKey()
	busy := newFakeNode(t, 3, pk)
	busy.precheck = wire.ResponseBusy
	idle := newFakeNode(t, 4, pk)
	c := newTestClient(t, []*fakeNode{busy, idle}, sk)

	e, err := c.Execute(context.Background(), transfer())
	if err != nil {
		t.Fatal(err)
	} else if e.State != StateSucceeded || e.Node != idle.account {
		t.Fatalf("expected success on %v, got %v on %v", idle.account, e.State, e.Node)
	}
	// both nodes saw the same transaction ID, each addressed to itself
	b0, b1 := busy.bodies[0], idle.bodies[0]
	if !bytes.Equal(wire.Marshal(b0.TransactionID), wire.Marshal(b1.TransactionID)) {
		t.Fatal("retry should reuse the transaction ID")
	} else if types.AccountIDFromWire(b1.NodeAccountID) != idle.account {
		t.Fatal("retry should address the new node")
	}

	// every node busy
	idle.precheck = wire.ResponseBusy
	e, err = c.Execute(context.Background(), transfer())
	if !errors.Is(err, types.ErrNetworkPrecheckFailure) || e.State != StatePrecheckFailed {
		t.Fatalf("expected precheck failure, got %v in state %v", err, e.State)
	}
}

func TestExecuteExecutionFailed(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	node.receipts = []wire.ResponseCode{wire.ResponseInvalidSignature}
	c := newTestClient(t, []*fakeNode{node}, sk)

	e, err := c.Execute(context.Background(), transfer())
	var ee *types.ExecutionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected execution error, got %v", err)
	} else if ee.Message != "Unable to transfer, status: INVALID_SIGNATURE" {
		t.Fatalf("unexpected message %q", ee.Message)
	} else if e.State != StateExecutionFailed || e.Receipt == nil {
		t.Fatalf("unexpected execution %+v", e)
	}
}

func TestExecuteInvalid(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	c := newTestClient(t, []*fakeNode{node}, sk)

	e, err := c.Execute(context.Background(), ops.AccountDelete{})
	if types.KindOf(err) != types.ErrorKindMissingRequiredField {
		t.Fatalf("expected missing field, got %v", err)
	} else if e.State != StateUnvalidated || len(node.bodies) != 0 {
		t.Fatalf("invalid transaction should not be submitted (state %v)", e.State)
	}

	e, err = c.Execute(context.Background(), transfer(), Memo(string(make([]byte, 101))))
	if !errors.Is(err, types.ErrOutOfRangeValue) || e.State != StateValidated {
		t.Fatalf("expected out of range memo in validated state, got %v in %v", err, e.State)
	}
}

func TestExecuteReceiptUnavailable(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	node.receipts = []wire.ResponseCode{wire.ResponseUnknown}
	c := newTestClient(t, []*fakeNode{node}, sk)

	e, err := c.Execute(context.Background(), transfer())
	if !errors.Is(err, ErrReceiptUnavailable) {
		t.Fatalf("expected unavailable receipt, got %v", err)
	} else if e.State != StateDispatched || node.polls != 3 {
		t.Fatalf("expected 3 polls in dispatched state, got %d in %v", node.polls, e.State)
	}
}

func TestExecuteTransportError(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	node.err = errUnreachable
	c := newTestClient(t, []*fakeNode{node}, sk)

	e, err := c.Execute(context.Background(), transfer())
	if !errors.Is(err, errUnreachable) {
		t.Fatalf("expected transport error, got %v", err)
	} else if e.State != StateEnveloped || len(e.Hash) != sha512.Size384 {
		t.Fatalf("unexpected execution state %v", e.State)
	}
}

func TestQuery(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	c := newTestClient(t, []*fakeNode{node}, sk, WithMaxQueryPayment(types.NewHbar(2)))

	bal, err := Ask[types.AccountBalance](context.Background(), c, ops.AccountBalance{Account: operator})
	if err != nil {
		t.Fatal(err)
	} else if bal.Account != operator || bal.Hbar != types.NewHbar(5) {
		t.Fatalf("unexpected balance %+v", bal)
	} else if len(node.payments) != 0 {
		t.Fatal("balance queries are free")
	}

	res, err := Ask[*types.ContractCallResult](context.Background(), c, ops.ContractCallLocal{Contract: contract, Gas: 30_000})
	if err != nil {
		t.Fatal(err)
	} else if res.Contract != contract || !bytes.Equal(res.Result, []byte{7}) {
		t.Fatalf("unexpected result %+v", res)
	} else if len(node.payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(node.payments))
	}
	payment := node.payments[0]
	if tag, _ := ops.TagOf(payment); tag != ops.TagTransfer {
		t.Fatalf("payment should be a transfer, got %v", tag)
	}
	// the hbar transfer list is field 1 of the transfer body
	var tl wire.TransferList
	d := wire.NewDecoder(wire.Marshal(payment.Data.Msg))
	for d.Next() {
		if d.Field() == 1 {
			d.ReadMessage(&tl)
		} else {
			d.Skip()
		}
	}
	if d.Err() != nil {
		t.Fatal(d.Err())
	} else if len(tl.AccountAmounts) != 2 {
		t.Fatalf("unexpected payment transfers %+v", tl.AccountAmounts)
	}
	for _, aa := range tl.AccountAmounts {
		acct := types.AccountIDFromWire(aa.AccountID)
		if (acct == operator && aa.Amount != -int64(types.NewHbar(2))) || (acct == node.account && aa.Amount != int64(types.NewHbar(2))) {
			t.Fatalf("unexpected payment leg %v %d", acct, aa.Amount)
		}
	}
}

func TestQueryPrecheck(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	node.queryPrecheck = wire.ResponseInvalidAccountID
	c := newTestClient(t, []*fakeNode{node}, sk)

	_, err := Ask[types.AccountBalance](context.Background(), c, ops.AccountBalance{Account: operator})
	var pe *types.PrecheckError
	if !errors.As(err, &pe) || pe.Status != wire.ResponseInvalidAccountID {
		t.Fatalf("expected precheck error, got %v", err)
	}

	node.queryPrecheck = wire.ResponseContractRevertExecuted
	if _, err := c.Query(context.Background(), ops.ContractCallLocal{Contract: contract, Gas: 1}); !errors.Is(err, types.ErrNetworkPrecheckFailure) {
		t.Fatalf("expected precheck failure, got %v", err)
	} else if _, err := c.Query(context.Background(), ops.ContractCallLocal{Contract: contract, Gas: 1, AllowRevert: true}); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Query(context.Background(), ops.AccountBalance{}); types.KindOf(err) != types.ErrorKindMissingRequiredField {
		t.Fatalf("expected missing field, got %v", err)
	}
}

func TestMetrics(t *testing.T) {
	pk, sk := newKey()
	node := newFakeNode(t, 3, pk)
	c := newTestClient(t, []*fakeNode{node}, sk, WithMetricsNamespace("test"))
	if _, err := c.Execute(context.Background(), transfer()); err != nil {
		t.Fatal(err)
	}

	mfs, err := c.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := make(map[string]bool)
	for _, mf := range mfs {
		found[mf.GetName()] = true
		if mf.GetName() != "test_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string)
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["tag"] == "Transfer" && labels["outcome"] != outcomeSucceeded {
				t.Fatalf("unexpected outcome %q", labels["outcome"])
			}
		}
	}
	if !found["test_client_requests_total"] || !found["test_client_dispatch_duration_seconds"] {
		t.Fatalf("missing metrics: %v", found)
	}
}

func TestStateTransitions(t *testing.T) {
	e := &Execution{}
	e.advance(StateValidated)
	e.advance(StateDispatched)
	for _, s := range []State{StateUnvalidated, StateEnveloped, StateDispatched} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic moving from %v to %v", e.State, s)
				}
			}()
			e.advance(s)
		}()
	}
	e.advance(StateSucceeded)
	if !e.State.Terminal() {
		t.Fatal("succeeded should be terminal")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic leaving a terminal state")
			}
		}()
		e.advance(StateExecutionFailed)
	}()
}

func TestSecp256k1Signer(t *testing.T) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	s := Secp256k1Signer(sk)
	msg := frand.Bytes(64)
	sig, err := s.Sign(msg)
	if err != nil {
		t.Fatal(err)
	} else if len(sig) != 64 {
		t.Fatalf("expected 64-byte signature, got %d bytes", len(sig))
	}

	var r, ss secp256k1.ModNScalar
	r.SetByteSlice(sig[:32])
	ss.SetByteSlice(sig[32:])
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	if !ecdsa.NewSignature(&r, &ss).Verify(h.Sum(nil), sk.PubKey()) {
		t.Fatal("signature should verify against the Keccak-256 hash")
	}

	sp, err := signaturePair(s.PublicKey(), sig)
	if err != nil {
		t.Fatal(err)
	} else if sp.Kind != wire.SignatureECDSASecp256k1 || !bytes.Equal(sp.PubKeyPrefix, sk.PubKey().SerializeCompressed()) {
		t.Fatalf("unexpected signature pair %+v", sp)
	}
	if _, err := signaturePair(types.KeyContract(contract), sig); !errors.Is(err, types.ErrUnsupportedOperationVariant) {
		t.Fatalf("expected unsupported key, got %v", err)
	}
}
