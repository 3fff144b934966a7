package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/storefrontkit/checkout/pkg/logging"
	"github.com/storefrontkit/checkout/pkg/mockapi"
)

// Transport errors.
var (
	// ErrEmptyResponse is returned when a query yields no data: the HTTP
	// body had no data object, or the mock rejected the request.
	ErrEmptyResponse = errors.New("empty response")
	// ErrGraphqlErrors is returned when the response carries a top-level
	// errors or userErrors list.
	ErrGraphqlErrors = errors.New("graphql errors")
)

const defaultHTTPTimeout = 30 * time.Second

// Client runs GraphQL documents against a shop, over HTTP or against an
// in-process mock router. The mock path is selected by WithMockRouter and
// exercises the exact same documents and variable shapes as the HTTP path.
//
// A Client is not safe for concurrent use; LastError and LastResponse refer
// to the most recent Query call.
type Client struct {
	context       *Context
	storefrontAPI bool
	httpClient    *http.Client
	router        *mockapi.Router
	logger        *slog.Logger

	lastError    any
	lastResponse map[string]any
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithMockRouter routes every query through the given mock router instead
// of HTTP.
func WithMockRouter(router *mockapi.Router) ClientOption {
	return func(c *Client) { c.router = router }
}

// WithLogger sets the client logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for ctx. storefrontAPI selects between the
// Storefront API and the admin API, which differ in endpoint path and
// authentication header.
func NewClient(ctx *Context, storefrontAPI bool, opts ...ClientOption) *Client {
	c := &Client{
		context:       ctx,
		storefrontAPI: storefrontAPI,
		httpClient:    &http.Client{Timeout: defaultHTTPTimeout},
		logger:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIPath returns the endpoint URL queries are posted to.
func (c *Client) APIPath() string {
	return c.context.APIPath(c.storefrontAPI)
}

// Mocked reports whether the client dispatches to a mock router.
func (c *Client) Mocked() bool { return c.router != nil }

// headers returns the HTTP headers for a query request.
func (c *Client) headers() map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	if c.storefrontAPI {
		headers["X-Shopify-Storefront-Access-Token"] = c.context.StorefrontToken
	} else {
		headers["X-Shopify-Access-Token"] = c.context.AdminToken
	}
	return headers
}

// Query runs a GraphQL document and returns the data object. A response
// carrying top-level errors or userErrors fails with ErrGraphqlErrors and
// records them for LastError.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	c.lastError = nil
	c.lastResponse = nil

	if c.router != nil {
		return c.mockQuery(query, variables)
	}
	return c.httpQuery(ctx, query, variables)
}

func (c *Client) mockQuery(query string, variables map[string]any) (map[string]any, error) {
	data, err := c.router.Dispatch(query, variables)
	if err != nil {
		return nil, err
	}
	if err := c.validate(data); err != nil {
		return nil, err
	}
	c.lastResponse = data
	return data, nil
}

func (c *Client) httpQuery(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(map[string]any{
		"query":     strings.TrimSpace(query),
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIPath(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, value := range c.headers() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("graphql request failed", "url", c.APIPath(), "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	c.lastResponse = envelope

	if err := c.validate(envelope); err != nil {
		return nil, err
	}

	data, _ := envelope["data"].(map[string]any)
	if data == nil {
		return nil, ErrEmptyResponse
	}
	return data, nil
}

// validate rejects empty responses and responses carrying top-level errors
// or userErrors, recording them for LastError.
func (c *Client) validate(response map[string]any) error {
	if response == nil {
		return ErrEmptyResponse
	}
	if errs, ok := response["errors"]; ok {
		c.lastError = errs
		return fmt.Errorf("%w: %s", ErrGraphqlErrors, encodeErrors(errs))
	}
	if errs, ok := response["userErrors"]; ok {
		c.lastError = errs
		return fmt.Errorf("%w: %s", ErrGraphqlErrors, encodeErrors(errs))
	}
	return nil
}

func encodeErrors(errs any) string {
	data, err := json.Marshal(errs)
	if err != nil {
		return fmt.Sprintf("%v", errs)
	}
	return string(data)
}

// LastError returns the errors of the most recent failed query, or nil.
func (c *Client) LastError() any { return c.lastError }

// LastResponse returns the raw response of the most recent query, or nil.
func (c *Client) LastResponse() map[string]any { return c.lastResponse }

// decodePayload converts a loosely-typed response value into out via a JSON
// round trip. The mock path hands back typed structs and the HTTP path plain
// maps; both marshal to the same wire shape.
func decodePayload(v, out any) error {
	if v == nil {
		return ErrEmptyResponse
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
