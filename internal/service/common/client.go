//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	api "github.com/oshokin/panic-button/internal/api/grpc/status"
	"github.com/oshokin/panic-button/internal/config"
	pb "github.com/oshokin/panic-button/internal/pb/v1"
)

// Client wraps the StatusService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the panic server.
	conn *grpc.ClientConn
	// api is the StatusService client.
	api pb.StatusServiceClient

	// token is sent as a bearer token with every call.
	token string
	// callTimeout bounds one RPC call, the server's alert fan-out included.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithToken sets the session token presented to the server.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errTokenRequired is returned when a call needs a session token and none is set.
	errTokenRequired = errors.New("session token must be provided")
)

// Dial creates a client for the panic server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial panic server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewStatusServiceClient(conn),
		callTimeout: config.DefaultRPCTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ChangeStatus declares panic or safe.
//
// The call waits for the server to become reachable within the call timeout;
// once the server answers, the answer is final and the call is never repeated.
func (c *Client) ChangeStatus(ctx context.Context, request *pb.ChangeStatusRequest) (*pb.ChangeStatusResponse, error) {
	callCtx, cancel, err := c.callContext(ctx)
	if err != nil {
		return nil, err
	}

	defer cancel()

	response, err := c.api.ChangeStatus(callCtx, request, grpc.WaitForReady(true))
	if err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}

	return response, nil
}

// GetStatus returns the caller's stored status.
func (c *Client) GetStatus(ctx context.Context) (*pb.GetStatusResponse, error) {
	callCtx, cancel, err := c.callContext(ctx)
	if err != nil {
		return nil, err
	}

	defer cancel()

	response, err := c.api.GetStatus(callCtx, new(pb.GetStatusRequest), grpc.WaitForReady(true))
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return response, nil
}

// ListContacts returns the caller's contacts in list order.
func (c *Client) ListContacts(ctx context.Context) ([]*pb.Contact, error) {
	callCtx, cancel, err := c.callContext(ctx)
	if err != nil {
		return nil, err
	}

	defer cancel()

	response, err := c.api.ListContacts(callCtx, new(pb.ListContactsRequest), grpc.WaitForReady(true))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return response.GetContacts(), nil
}

// AddContact appends a contact to the caller's list.
func (c *Client) AddContact(ctx context.Context, name, phone string) (*pb.Contact, error) {
	callCtx, cancel, err := c.callContext(ctx)
	if err != nil {
		return nil, err
	}

	defer cancel()

	request := &pb.AddContactRequest{
		Name:  name,
		Phone: phone,
	}

	contact, err := c.api.AddContact(callCtx, request, grpc.WaitForReady(true))
	if err != nil {
		return nil, fmt.Errorf("add contact: %w", err)
	}

	return contact, nil
}

// callContext returns an authorized context with the client's call timeout if
// configured, otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if c.token == "" {
		return nil, nil, errTokenRequired
	}

	ctx = api.WithToken(ctx, c.token)

	if c.callTimeout <= 0 {
		callCtx, cancel := context.WithCancel(ctx)

		return callCtx, cancel, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)

	return callCtx, cancel, nil
}
