// Package enoki is a client of the hosted sponsorship API that co-signs and submits
// transactions on behalf of voters.
package enoki

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/log"
)

const (
	sponsorPath = "/v1/transaction-blocks/sponsor"

	// DefaultURL is the hosted sponsorship API.
	DefaultURL = "https://api.enoki.mystenlabs.com"
	// APIKeyEnv is the environment variable holding the private api key.
	APIKeyEnv = "ENOKI_PRIVATE_API_KEY"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrUnavailable    = errors.New("service unavailable")
)

// APIError is a non 2xx answer of the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%v: status %d: %s: %s", e.kind, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// SponsorRequest asks the service to wrap transaction kind bytes into a gas paid transaction.
type SponsorRequest struct {
	Network                   string   `json:"network"`
	TransactionBlockKindBytes string   `json:"transactionBlockKindBytes"`
	Sender                    string   `json:"sender"`
	AllowedAddresses          []string `json:"allowedAddresses,omitempty"`
	AllowedMoveCallTargets    []string `json:"allowedMoveCallTargets,omitempty"`
}

// SponsoredTransaction is the sponsor signed transaction the sender must sign too.
type SponsoredTransaction struct {
	Bytes  string `json:"bytes"`
	Digest string `json:"digest"`
}

// ExecuteRequest submits the sender signature for a sponsored transaction.
type ExecuteRequest struct {
	Signature string `json:"signature"`
}

// ExecutionStatus is the on-chain status block of transaction effects.
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Effects is the subset of transaction effects callers look at.
type Effects struct {
	Status ExecutionStatus `json:"status"`
}

// ExecutedTransaction is returned once the transaction was submitted.
type ExecutedTransaction struct {
	Digest  string   `json:"digest"`
	Effects *Effects `json:"effects,omitempty"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type apiErrors struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Config of the upstream client.
type Config struct {
	URL            string        `mapstructure:"api-url"`
	APIKey         string        `mapstructure:"api-key"`
	Network        string        `mapstructure:"network"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
}

func DefaultConfig() Config {
	return Config{
		URL:            DefaultURL,
		Network:        "testnet",
		RequestTimeout: 30 * time.Second,
	}
}

// Client talks to the sponsorship API. Requests are never retried: a sponsorship and an
// execution are single use.
type Client struct {
	baseURL *url.URL
	apiKey  string
	network string
	client  *retryablehttp.Client
	logger  *zap.Logger
}

type ClientOpt func(*Client)

func WithLogger(logger *zap.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
		c.client.Logger = &log.RetryableHTTPLogger{Inner: logger}
		c.client.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
			c.logger.Debug(
				"response received",
				zap.Stringer("url", resp.Request.URL),
				zap.Int("status", resp.StatusCode),
			)
		}
	}
}

func withCustomHttpClient(client *http.Client) ClientOpt {
	return func(c *Client) {
		c.client.HTTPClient = client
	}
}

// NewClient creates a client of the API at cfg.URL.
func NewClient(cfg Config, opts ...ClientOpt) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is empty", ErrUnauthorized)
	}
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing address: %w", err)
	}
	if baseURL.Scheme == "" {
		baseURL.Scheme = "https"
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.RequestTimeout
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		network: cfg.Network,
		client:  client,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Info("created sponsorship client",
		zap.Stringer("url", baseURL),
		zap.String("network", cfg.Network),
	)
	return c, nil
}

// Network returns the network the client sponsors on.
func (c *Client) Network() string {
	return c.network
}

// CreateSponsoredTransaction asks for a sponsorship. Network is filled in when empty.
func (c *Client) CreateSponsoredTransaction(ctx context.Context, req SponsorRequest) (*SponsoredTransaction, error) {
	if req.Network == "" {
		req.Network = c.network
	}
	var res envelope[SponsoredTransaction]
	if err := c.req(ctx, sponsorPath, &req, &res); err != nil {
		return nil, fmt.Errorf("creating sponsored transaction: %w", err)
	}
	return &res.Data, nil
}

// ExecuteSponsoredTransaction submits the sender signature for digest.
func (c *Client) ExecuteSponsoredTransaction(ctx context.Context, digest, signature string) (*ExecutedTransaction, error) {
	var res envelope[ExecutedTransaction]
	path := sponsorPath + "/" + url.PathEscape(digest)
	if err := c.req(ctx, path, &ExecuteRequest{Signature: signature}, &res); err != nil {
		return nil, fmt.Errorf("executing sponsored transaction %s: %w", digest, err)
	}
	return &res.Data, nil
}

func (c *Client) req(ctx context.Context, path string, reqBody, resBody any) error {
	jsonReqBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL.JoinPath(path).String(), jsonReqBody,
	)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if id, ok := log.ExtractRequestID(ctx); ok {
		req.Header.Set("X-Request-Id", id)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: doing request: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if res.StatusCode/100 != 2 {
		c.logger.Debug("sponsorship request failed",
			log.ZContext(ctx),
			zap.String("status", res.Status),
			zap.String("body", string(data)),
		)
		return parseError(res.StatusCode, data)
	}

	if err := json.NewDecoder(bytes.NewReader(data)).Decode(resBody); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

func parseError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		apiErr.kind = ErrInvalidRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		apiErr.kind = ErrUnauthorized
	case status == http.StatusNotFound:
		apiErr.kind = ErrNotFound
	default:
		apiErr.kind = ErrUnavailable
	}
	var parsed apiErrors
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		apiErr.Code = parsed.Errors[0].Code
		apiErr.Message = parsed.Errors[0].Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
