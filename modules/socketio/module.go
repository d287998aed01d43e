package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/configo/conf"
	"github.com/vk/configo/internal/ctxlog"
	"github.com/vk/configo/param"
	"github.com/vk/configo/registry"
	"github.com/vk/configo/regkey"
	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Client connects to a socket.io server over websocket. Connection settings
// come from the validated configuration.
type Client struct {
	URL                string `conf:"url"`
	Namespace          string `conf:"namespace"`
	InsecureSkipVerify bool   `conf:"insecure_skip_verify"`
	ConnectTimeoutS    int    `conf:"connect_timeout_s"`

	timeout time.Duration
}

// Init derives the connect timeout.
func (c *Client) Init(cfg *conf.Config) error {
	c.timeout = time.Duration(c.ConnectTimeoutS) * time.Second
	return nil
}

// Connect dials the configured server and blocks until the connection is
// established, the context is cancelled, or the connect timeout elapses.
func (c *Client) Connect(ctx context.Context) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx).With("url", c.URL)
	logger.Info("Creating new client instance...")

	parsedURL, err := url.Parse(c.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if c.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(c.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		connectChan <- nil
	})

	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errs[0].(error)
		connectChan <- err
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return io, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(c.timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", c.timeout)
	}
}

// Key is the registration key this module binds to.
func Key() regkey.Key {
	return regkey.MustNew("socketio_client", nil, "net")
}

// Config builds the default configuration.
func Config() *conf.Config {
	c := conf.New()
	c.Add(param.Parameter{
		Name:        "url",
		TypeHint:    cty.String,
		Description: "Server URL, including the engine.io path.",
		Required:    true,
		Range:       param.RangeNonEmpty,
	})
	c.Add(param.Parameter{
		Name:     "namespace",
		Value:    cty.StringVal("/"),
		TypeHint: cty.String,
	})
	c.Add(param.Parameter{
		Name:     "insecure_skip_verify",
		Value:    cty.False,
		TypeHint: cty.Bool,
	})
	c.Add(param.Parameter{
		Name:     "connect_timeout_s",
		Value:    cty.NumberIntVal(15),
		TypeHint: cty.Number,
		Range:    param.RangePositive,
	})
	return c
}

// Register adds the configuration and binds the component constructor.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterAndBind(Key(), Config, &registry.RegisteredComponent{
		New: func() any { return new(Client) },
	})
}
