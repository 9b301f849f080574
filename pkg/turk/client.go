package turk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client is a Mechanical Turk Requester API client. A client is bound to one
// mode; Sandbox and Production return new clients rather than mutating
// shared state, so a client value is safe to share across goroutines.
type Client struct {
	cfg        ClientConfig
	creds      Credentials
	mode       Mode
	endpoint   string
	defaults   Params
	httpClient *http.Client
}

// NewClient creates a new requester client. With a zero Mode the client
// points at the production endpoint.
func NewClient(cfg *ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{
		cfg:        *cfg,
		creds:      cfg.Credentials,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	mode := cfg.Mode
	if mode == "" {
		mode = ModeProduction
	}
	c.configure(mode)
	return c
}

// NewClientWithHTTPClient creates a requester client with a custom HTTP
// client, e.g. a retrying transport.
func NewClientWithHTTPClient(cfg *ClientConfig, httpClient *http.Client) *Client {
	c := NewClient(cfg)
	c.httpClient = httpClient
	return c
}

// configure points the client at the endpoint and default-parameter set for
// the given mode. Sandbox defaults are layered over the production defaults;
// production defaults alone apply in production mode.
func (c *Client) configure(mode Mode) {
	c.mode = mode
	switch mode {
	case ModeSandbox:
		c.endpoint = c.cfg.SandboxURL
		if c.endpoint == "" {
			c.endpoint = SandboxURL
		}
		c.defaults = mergeParams(c.cfg.ProductionDefaults, c.cfg.SandboxDefaults)
	default:
		c.endpoint = c.cfg.ProductionURL
		if c.endpoint == "" {
			c.endpoint = ProductionURL
		}
		c.defaults = mergeParams(nil, c.cfg.ProductionDefaults)
	}
}

// Sandbox returns a copy of the client pointed at the sandbox endpoint.
func (c *Client) Sandbox() *Client {
	return c.withMode(ModeSandbox)
}

// Production returns a copy of the client pointed at the production
// endpoint.
func (c *Client) Production() *Client {
	return c.withMode(ModeProduction)
}

func (c *Client) withMode(mode Mode) *Client {
	nc := &Client{
		cfg:        c.cfg,
		creds:      c.creds,
		httpClient: c.httpClient,
	}
	nc.configure(mode)
	return nc
}

// Mode reports which endpoint the client is bound to.
func (c *Client) Mode() Mode { return c.mode }

// Endpoint returns the base URL the client sends requests to.
func (c *Client) Endpoint() string { return c.endpoint }

// call performs one synchronous request/response cycle: build and sign the
// query, GET it, decode the XML body, and classify the outcome. Validation
// failures surface before any network traffic.
func (c *Client) call(ctx context.Context, spec operationSpec, params Params) (*Node, error) {
	qs, err := c.buildQuery(spec, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+qs, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure before any response; the underlying error stays
		// reachable through Unwrap.
		return nil, &UnclassifiedError{Err: err}
	}
	defer resp.Body.Close()

	tree, err := DecodeResponse(resp.Body)
	if err != nil {
		// Response arrived but carried no decodable body.
		return nil, &UnclassifiedError{StatusCode: resp.StatusCode, Err: err}
	}

	return classify(resp.StatusCode, tree, spec.resultKey)
}
