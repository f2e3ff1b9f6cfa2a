// Package dispatch carries encoded requests to network nodes over gRPC.
package dispatch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"go.hashgraph.tech/core/client"
	"go.hashgraph.tech/core/config"
	"go.hashgraph.tech/core/ops"
	"go.hashgraph.tech/core/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// A Conn dispatches requests to a single node. It implements
// client.Dispatcher.
type Conn struct {
	cc     grpc.ClientConnInterface
	closer func() error

	// Timeout applies per call when non-zero.
	Timeout time.Duration
}

// DialOptions configure a connection to a node.
type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
	// CallTimeout applies per call when non-zero.
	CallTimeout time.Duration
	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
	// TLS enables transport security. Connections are plaintext when nil.
	TLS *tls.Config
	// Dialer replaces the default network dialer.
	Dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// NewConn wraps an existing client connection.
func NewConn(cc grpc.ClientConnInterface) *Conn {
	return &Conn{cc: cc, closer: func() error { return nil }}
}

// Dial connects to the node at target.
func Dial(target string, opts DialOptions) (*Conn, error) {
	creds := insecure.NewCredentials()
	if opts.TLS != nil {
		creds = credentials.NewTLS(opts.TLS)
	}
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}
	if opts.Dialer != nil {
		dialOpts = append(dialOpts, grpc.WithContextDialer(opts.Dialer))
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %q: %w", target, err)
	}
	return &Conn{cc: cc, closer: cc.Close, Timeout: opts.CallTimeout}, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	return c.closer()
}

// Invoke implements client.Dispatcher.
func (c *Conn) Invoke(ctx context.Context, method ops.RemoteMethod, req []byte) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	in, out := frame(req), new(frame)
	if err := c.cc.Invoke(ctx, method.FullName(), &in, out, grpc.ForceCodec(codec{})); err != nil {
		return nil, mapRPC(method, err)
	}
	return *out, nil
}

// mapRPC translates gRPC status errors. A node that does not serve the
// method speaks a different protocol version.
func mapRPC(method ops.RemoteMethod, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unimplemented:
		return types.NewError(types.ErrorKindProtocolMismatch, "node does not serve %v: %v", method, st.Message())
	case codes.InvalidArgument:
		return types.NewError(types.ErrorKindProtocolMismatch, "node rejected the encoding of %v: %v", method, st.Message())
	default:
		return err
	}
}

// A Network is a set of connected nodes.
type Network struct {
	Nodes []client.Node
	conns []*Conn
}

// DialNetwork connects to every node in nodes. If any dial fails, the
// connections already made are closed.
func DialNetwork(nodes []config.Node, opts DialOptions) (*Network, error) {
	n := new(Network)
	for _, cn := range nodes {
		conn, err := Dial(cn.Address, opts)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("node %v: %w", cn.Account, err), n.Close())
		}
		n.conns = append(n.conns, conn)
		n.Nodes = append(n.Nodes, client.Node{Account: cn.Account, Dispatcher: conn})
	}
	return n, nil
}

// Close closes every connection in the network.
func (n *Network) Close() error {
	var errs []error
	for _, c := range n.conns {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	n.conns, n.Nodes = nil, nil
	return errors.Join(errs...)
}

// Open dials the nodes named by cfg and returns a client configured from it,
// along with the network to close when done.
func Open(cfg config.Config, dopts DialOptions, copts ...client.Option) (*client.Client, *Network, error) {
	signer, err := cfg.Operator.Signer()
	if err != nil {
		return nil, nil, fmt.Errorf("operator key: %w", err)
	}
	n, err := DialNetwork(cfg.Nodes, dopts)
	if err != nil {
		return nil, nil, err
	}
	c, err := client.New(cfg.Operator.Account, signer, n.Nodes, append(cfg.ClientOptions(), copts...)...)
	if err != nil {
		return nil, nil, errors.Join(err, n.Close())
	}
	return c, n, nil
}
