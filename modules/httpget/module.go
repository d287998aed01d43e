package httpget

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/configo/conf"
	"github.com/vk/configo/internal/ctxlog"
	"github.com/vk/configo/param"
	"github.com/vk/configo/registry"
	"github.com/vk/configo/regkey"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Fetcher issues a single HTTP request and checks the response status. The
// method parameter declares variants, so registration produces one key per
// request method.
type Fetcher struct {
	URL            string `conf:"url"`
	Method         string `conf:"method"`
	TimeoutS       int    `conf:"timeout_s"`
	ExpectedStatus int    `conf:"expected_status"`

	client *http.Client
}

// Init builds the HTTP client from the injected timeout.
func (f *Fetcher) Init(cfg *conf.Config) error {
	f.client = &http.Client{Timeout: time.Duration(f.TimeoutS) * time.Second}
	return nil
}

// Do performs the request and fails when the response status does not match
// the expected one.
func (f *Fetcher) Do(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("method", f.Method, "url", f.URL)
	logger.Debug("Issuing request.")

	req, err := http.NewRequestWithContext(ctx, f.Method, f.URL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != f.ExpectedStatus {
		return fmt.Errorf("unexpected status: got %d, want %d", resp.StatusCode, f.ExpectedStatus)
	}
	logger.Debug("Request succeeded.", "status", resp.StatusCode)
	return nil
}

// BaseKey is the registration key before variant expansion.
func BaseKey() regkey.Key {
	return regkey.MustNew("http_get", nil, "net")
}

// Config builds the default configuration.
func Config() *conf.Config {
	c := conf.New()
	c.Add(param.Parameter{
		Name:        "url",
		TypeHint:    cty.String,
		Description: "Target URL.",
		Required:    true,
		Range:       param.RangeNonEmpty,
	})
	c.Add(param.Parameter{
		Name:     "method",
		Value:    cty.StringVal(http.MethodGet),
		TypeHint: cty.String,
		Variants: []cty.Value{cty.StringVal(http.MethodGet), cty.StringVal(http.MethodHead)},
	})
	c.Add(param.Parameter{
		Name:     "timeout_s",
		Value:    cty.NumberIntVal(5),
		TypeHint: cty.Number,
		Range:    param.RangePositive,
	})
	c.Add(param.Parameter{
		Name:     "expected_status",
		Value:    cty.NumberIntVal(http.StatusOK),
		TypeHint: cty.Number,
		Range:    param.RangeHTTPStatus,
	})
	return c
}

// Register expands the method variants and binds every generated key to the
// fetcher constructor.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.RegisterAndBindVariants(BaseKey(), Config, &registry.RegisteredComponent{
		New: func() any { return new(Fetcher) },
	})
	return err
}
