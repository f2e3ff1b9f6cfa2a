// Package client submits transactions and queries to network nodes. It
// drives each transaction through validation, signing, dispatch and receipt
// polling, recording the progress in an Execution.
package client

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.hashgraph.tech/core/ops"
	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
	"go.uber.org/zap"
)

// ErrReceiptUnavailable is returned when a transaction's receipt is still
// pending after the configured number of polls.
var ErrReceiptUnavailable = errors.New("receipt unavailable")

// A Dispatcher sends an encoded request to a single node and returns the
// encoded response.
type Dispatcher interface {
	Invoke(ctx context.Context, method ops.RemoteMethod, req []byte) ([]byte, error)
}

// A FeeSchedule supplies per-variant maximum transaction fees.
type FeeSchedule interface {
	MaxTransactionFee(t ops.Tag) (types.Hbar, bool)
}

// A Node is a network node and the Dispatcher that reaches it.
type Node struct {
	Account    types.Address
	Dispatcher Dispatcher
}

// Defaults used when no option overrides them.
const (
	DefaultMaxTransactionFee = 2 * types.HbarUnit
	DefaultMaxQueryPayment   = 1 * types.HbarUnit
	DefaultPollInterval      = 500 * time.Millisecond
	DefaultPollAttempts      = 20
)

// A Client submits requests on behalf of a single operator account. It is
// safe for concurrent use.
type Client struct {
	operator types.Address
	signer   Signer
	nodes    []Node

	log       *zap.Logger
	namespace string
	metrics   *metrics
	fees      FeeSchedule

	maxFee          types.Hbar
	maxQueryPayment types.Hbar
	validDuration   time.Duration
	pollInterval    time.Duration
	pollAttempts    int

	mu   sync.Mutex
	next int
}

// An Option configures a Client.
type Option func(*Client)

// WithLogger sets the client's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetricsNamespace sets the namespace of the client's metrics.
func WithMetricsNamespace(ns string) Option {
	return func(c *Client) { c.namespace = ns }
}

// WithFeeSchedule sets a schedule consulted for the maximum fee of each
// transaction variant. Variants missing from the schedule use the client's
// default maximum fee.
func WithFeeSchedule(fs FeeSchedule) Option {
	return func(c *Client) { c.fees = fs }
}

// WithMaxTransactionFee sets the default maximum transaction fee.
func WithMaxTransactionFee(h types.Hbar) Option {
	return func(c *Client) { c.maxFee = h }
}

// WithMaxQueryPayment sets the amount paid to a node for a paid query.
func WithMaxQueryPayment(h types.Hbar) Option {
	return func(c *Client) { c.maxQueryPayment = h }
}

// WithValidDuration sets the validity window of submitted transactions.
func WithValidDuration(d time.Duration) Option {
	return func(c *Client) { c.validDuration = d }
}

// WithReceiptPolling sets how often, and how many times, the client polls
// for a receipt.
func WithReceiptPolling(interval time.Duration, attempts int) Option {
	return func(c *Client) {
		c.pollInterval = interval
		c.pollAttempts = attempts
	}
}

// New returns a Client that pays for requests from operator, signing with
// signer, and spreads them across nodes.
func New(operator types.Address, signer Signer, nodes []Node, opts ...Option) (*Client, error) {
	switch {
	case operator.IsNone():
		return nil, types.NewError(types.ErrorKindMissingRequiredField, "operator account is required")
	case operator.IsAlias():
		return nil, types.NewError(types.ErrorKindOutOfRangeValue, "operator account must be numeric, got %v", operator)
	case signer == nil:
		return nil, types.NewError(types.ErrorKindMissingRequiredField, "signer is required")
	case len(nodes) == 0:
		return nil, types.NewError(types.ErrorKindMissingRequiredField, "at least one node is required")
	}
	for _, n := range nodes {
		if n.Account.IsNone() || n.Account.IsAlias() || n.Dispatcher == nil {
			return nil, types.NewError(types.ErrorKindOutOfRangeValue, "node %v must have a numeric account and a dispatcher", n.Account)
		}
	}

	c := &Client{
		operator:        operator,
		signer:          signer,
		nodes:           append([]Node(nil), nodes...),
		log:             zap.NewNop(),
		namespace:       "hashgraph",
		maxFee:          DefaultMaxTransactionFee,
		maxQueryPayment: DefaultMaxQueryPayment,
		validDuration:   ops.DefaultValidDuration,
		pollInterval:    DefaultPollInterval,
		pollAttempts:    DefaultPollAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.pollAttempts < 1 {
		return nil, types.NewError(types.ErrorKindOutOfRangeValue, "receipt poll attempts must be positive, got %d", c.pollAttempts)
	}
	c.metrics = newMetrics(c.namespace)
	return c, nil
}

// Registry returns the registry holding the client's metrics.
func (c *Client) Registry() *prometheus.Registry { return c.metrics.registry }

// Operator returns the account that pays for the client's requests.
func (c *Client) Operator() types.Address { return c.operator }

// nodeOrder returns the nodes in the order they should be tried, rotating
// the starting node on each call.
func (c *Client) nodeOrder() []Node {
	c.mu.Lock()
	start := c.next
	c.next = (c.next + 1) % len(c.nodes)
	c.mu.Unlock()
	order := make([]Node, 0, len(c.nodes))
	order = append(order, c.nodes[start:]...)
	return append(order, c.nodes[:start]...)
}

func (c *Client) maxTransactionFee(t ops.Tag) types.Hbar {
	if c.fees != nil {
		if fee, ok := c.fees.MaxTransactionFee(t); ok {
			return fee
		}
	}
	return c.maxFee
}

// sign signs env with the operator's key, returning the transaction and the
// hash of its signed bytes.
func (c *Client) sign(env *wire.TransactionBody) (*wire.Transaction, []byte, error) {
	bodyBytes := wire.Marshal(env)
	sig, err := c.signer.Sign(bodyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	sp, err := signaturePair(c.signer.PublicKey(), sig)
	if err != nil {
		return nil, nil, err
	}
	signed := wire.Marshal(&wire.SignedTransaction{
		BodyBytes: bodyBytes,
		SigMap:    &wire.SignatureMap{SigPair: []*wire.SignaturePair{sp}},
	})
	hash := sha512.Sum384(signed)
	return &wire.Transaction{SignedTransactionBytes: signed}, hash[:], nil
}

func (c *Client) invoke(ctx context.Context, n Node, method ops.RemoteMethod, req []byte) ([]byte, error) {
	start := time.Now()
	resp, err := n.Dispatcher.Invoke(ctx, method, req)
	c.metrics.dispatch(method.FullName(), time.Since(start))
	if err != nil {
		c.log.Warn("remote call failed", zap.Stringer("node", n.Account), zap.Stringer("method", method), zap.Error(err))
		return nil, fmt.Errorf("%v: %w", method, err)
	}
	c.log.Debug("remote call", zap.Stringer("node", n.Account), zap.Stringer("method", method), zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}

func isBusy(err error) bool {
	var pe *types.PrecheckError
	return errors.As(err, &pe) && pe.Status == wire.ResponseBusy
}

type callOptions struct {
	memo   string
	maxFee *types.Hbar
}

// A CallOption configures a single transaction.
type CallOption func(*callOptions)

// Memo attaches a memo to the transaction.
func Memo(s string) CallOption {
	return func(o *callOptions) { o.memo = s }
}

// MaxFee overrides the maximum fee of the transaction.
func MaxFee(h types.Hbar) CallOption {
	return func(o *callOptions) { o.maxFee = &h }
}

// Execute validates, signs and submits tx, then polls for its receipt. The
// returned Execution is never nil and records how far the transaction got;
// if the error is non-nil, it is also stored in the Execution.
func (c *Client) Execute(ctx context.Context, tx ops.Transaction, opts ...CallOption) (*Execution, error) {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	e := &Execution{Tag: tx.Tag()}
	log := c.log.With(zap.Stringer("tag", e.Tag))
	outcome := func(o string) { c.metrics.request(e.Tag.String(), o) }

	body, err := ops.Build(tx)
	if err != nil {
		log.Warn("invalid transaction", zap.Error(err))
		outcome(outcomeInvalid)
		e.Err = err
		return e, err
	}
	e.advance(StateValidated)

	fee := c.maxTransactionFee(e.Tag)
	if co.maxFee != nil {
		fee = *co.maxFee
	}
	e.TransactionID = types.NewTransactionID(c.operator)
	log = log.With(zap.Stringer("transactionID", e.TransactionID))

	var node Node
	var lastErr error
	accepted := false
	for _, n := range c.nodeOrder() {
		h, err := ops.NewHeader(e.TransactionID, n.Account, fee, c.validDuration, co.memo)
		if err != nil {
			log.Warn("invalid transaction header", zap.Error(err))
			outcome(outcomeInvalid)
			e.Err = err
			return e, err
		}
		env := body.Envelope(h)
		method, err := ops.Method(env)
		if err != nil {
			outcome(outcomeProtocol)
			e.Err = err
			return e, err
		}
		txn, hash, err := c.sign(env)
		if err != nil {
			log.Warn("failed to sign transaction", zap.Error(err))
			outcome(outcomeInvalid)
			e.Err = err
			return e, err
		}
		if e.State < StateEnveloped {
			e.advance(StateEnveloped)
		}
		e.Hash = hash

		log.Debug("submitting transaction", zap.Stringer("node", n.Account), zap.Stringer("method", method))
		respBytes, err := c.invoke(ctx, n, method, wire.Marshal(txn))
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if e.State < StateDispatched {
			e.advance(StateDispatched)
		}
		e.Node = n.Account

		var resp wire.TransactionResponse
		if err := wire.Unmarshal(respBytes, &resp); err != nil {
			err = types.NewError(types.ErrorKindProtocolMismatch, "%v: malformed transaction response: %v", e.Tag, err)
			outcome(outcomeProtocol)
			e.Err = err
			return e, err
		}
		if err := ops.ValidatePrecheck(e.Tag, e.TransactionID, &resp); isBusy(err) {
			log.Debug("node busy", zap.Stringer("node", n.Account))
			lastErr = err
			continue
		} else if err != nil {
			log.Warn("transaction failed precheck", zap.Stringer("status", resp.NodeTransactionPrecheckCode))
			outcome(outcomePrecheckFailed)
			return e, e.fail(StatePrecheckFailed, err)
		}
		node, accepted = n, true
		break
	}
	if !accepted {
		if isBusy(lastErr) {
			outcome(outcomePrecheckFailed)
			return e, e.fail(StatePrecheckFailed, lastErr)
		}
		outcome(outcomeTransport)
		e.Err = lastErr
		return e, lastErr
	}

	r, err := c.pollReceipt(ctx, node, e.TransactionID)
	if err != nil {
		log.Warn("failed to fetch receipt", zap.Error(err))
		outcome(outcomeTransport)
		e.Err = err
		return e, err
	}
	e.Receipt = &r
	if err := ops.ValidateReceipt(e.Tag, r); err != nil {
		log.Warn("transaction failed", zap.Stringer("status", r.Status))
		outcome(outcomeExecutionFailed)
		return e, e.fail(StateExecutionFailed, err)
	}
	log.Debug("transaction succeeded")
	outcome(outcomeSucceeded)
	e.advance(StateSucceeded)
	return e, nil
}

// pollReceipt asks n for the receipt of id until it is no longer pending.
func (c *Client) pollReceipt(ctx context.Context, n Node, id types.TransactionID) (types.Receipt, error) {
	q := ops.TransactionReceipt{TransactionID: id}
	qb, err := ops.BuildQuery(q)
	if err != nil {
		return types.Receipt{}, err
	}
	for attempt := 0; attempt < c.pollAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return types.Receipt{}, ctx.Err()
			case <-time.After(c.pollInterval):
			}
		}
		raw, h, _, err := c.ask(ctx, n, qb)
		if err != nil {
			return types.Receipt{}, err
		} else if pendingHeader(h) {
			continue
		} else if err := qb.ValidateResponse(id, h); err != nil {
			return types.Receipt{}, err
		}
		a, err := q.Decode(raw)
		if err != nil {
			return types.Receipt{}, err
		} else if !ops.IsPending(a.Receipt.Status) {
			return a.Receipt, nil
		}
	}
	return types.Receipt{}, fmt.Errorf("%v after %d attempts: %w", id, c.pollAttempts, ErrReceiptUnavailable)
}

// pendingHeader reports whether a receipt query's precheck status means
// the receipt may become available later.
func pendingHeader(h *wire.ResponseHeader) bool {
	return h != nil && h.NodeTransactionPrecheckCode != wire.ResponseOK && ops.IsPending(h.NodeTransactionPrecheckCode)
}

// payment returns a signed transfer paying n for a query.
func (c *Client) payment(n Node) (*wire.Transaction, types.TransactionID, error) {
	body, err := ops.Build(ops.Transfer{Hbar: []types.HbarTransfer{
		{Account: c.operator, Amount: -c.maxQueryPayment},
		{Account: n.Account, Amount: c.maxQueryPayment},
	}})
	if err != nil {
		return nil, types.TransactionID{}, err
	}
	id := types.NewTransactionID(c.operator)
	h, err := ops.NewHeader(id, n.Account, c.maxFee, c.validDuration, "")
	if err != nil {
		return nil, types.TransactionID{}, err
	}
	txn, _, err := c.sign(body.Envelope(h))
	return txn, id, err
}

// ask sends qb to n, attaching a payment unless the query is free. It
// returns the answer, its header, and the ID of the payment.
func (c *Client) ask(ctx context.Context, n Node, qb ops.QueryBody) (wire.RawMessage, *wire.ResponseHeader, types.TransactionID, error) {
	header := &wire.QueryHeader{ResponseType: wire.AnswerOnly}
	var paymentID types.TransactionID
	if !qb.IsFree() {
		txn, id, err := c.payment(n)
		if err != nil {
			return nil, nil, types.TransactionID{}, fmt.Errorf("failed to build query payment: %w", err)
		}
		header.Payment, paymentID = txn, id
	}
	q := qb.Envelope(header)
	method, err := ops.QueryMethod(q)
	if err != nil {
		return nil, nil, paymentID, err
	}
	respBytes, err := c.invoke(ctx, n, method, wire.Marshal(q))
	if err != nil {
		return nil, nil, paymentID, err
	}
	var resp wire.Response
	if err := wire.Unmarshal(respBytes, &resp); err != nil {
		return nil, nil, paymentID, types.NewError(types.ErrorKindProtocolMismatch, "%v: malformed response: %v", qb.Tag, err)
	}
	raw, h, err := qb.Answer(&resp)
	return raw, h, paymentID, err
}

// Query validates and submits q, returning the encoded answer once it
// passes precheck. Busy nodes are skipped in favor of the next node.
func (c *Client) Query(ctx context.Context, q ops.Query) (wire.RawMessage, error) {
	tag := q.Tag()
	log := c.log.With(zap.Stringer("tag", tag))
	qb, err := ops.BuildQuery(q)
	if err != nil {
		log.Warn("invalid query", zap.Error(err))
		c.metrics.request(tag.String(), outcomeInvalid)
		return nil, err
	}

	var lastErr error
	for _, n := range c.nodeOrder() {
		raw, h, paymentID, err := c.ask(ctx, n, qb)
		if err != nil {
			lastErr = err
			if types.KindOf(err) == types.ErrorKindProtocolMismatch {
				c.metrics.request(tag.String(), outcomeProtocol)
				return nil, err
			} else if ctx.Err() != nil {
				break
			}
			continue
		}
		if err := qb.ValidateResponse(paymentID, h); isBusy(err) {
			lastErr = err
			continue
		} else if err != nil {
			log.Warn("query failed precheck", zap.Stringer("status", h.NodeTransactionPrecheckCode))
			c.metrics.request(tag.String(), outcomePrecheckFailed)
			return nil, err
		}
		log.Debug("query answered", zap.Stringer("node", n.Account))
		c.metrics.request(tag.String(), outcomeSucceeded)
		return raw, nil
	}
	if isBusy(lastErr) {
		c.metrics.request(tag.String(), outcomePrecheckFailed)
	} else {
		c.metrics.request(tag.String(), outcomeTransport)
	}
	return nil, lastErr
}

// An Answerer is a query that can decode its own answer.
type Answerer[R any] interface {
	ops.Query
	Decode(raw wire.RawMessage) (R, error)
}

// Ask submits q and decodes its answer.
func Ask[R any, Q Answerer[R]](ctx context.Context, c *Client, q Q) (R, error) {
	raw, err := c.Query(ctx, q)
	if err != nil {
		var zero R
		return zero, err
	}
	return q.Decode(raw)
}
