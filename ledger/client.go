// Package ledger reads poll state from a ledger full node over JSON-RPC.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/log"
)

// DefaultURL is the public testnet full node.
const DefaultURL = "https://fullnode.testnet.sui.io:443"

var ErrUnexpectedStatus = errors.New("unexpected response status")

// RPCError is an error object of a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// Config of the full node client.
type Config struct {
	URL        string        `mapstructure:"rpc-url"`
	MaxRetries int           `mapstructure:"max-retries"`
	RetryDelay time.Duration `mapstructure:"retry-delay"`
}

func DefaultConfig() Config {
	return Config{
		URL:        DefaultURL,
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Client is a JSON-RPC client. Reads are idempotent so failed requests are retried.
type Client struct {
	baseURL *url.URL
	client  *retryablehttp.Client
	logger  *zap.Logger
	nextID  atomic.Uint64
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

// NewClient creates a client of the node at cfg.URL.
func NewClient(cfg Config, opts ...ClientOpt) (*Client, error) {
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing address: %w", err)
	}
	if baseURL.Scheme == "" {
		baseURL.Scheme = "http"
	}
	c := &Client{
		baseURL: baseURL,
		client: &retryablehttp.Client{
			HTTPClient:   retryablehttp.NewClient().HTTPClient,
			RetryMax:     cfg.MaxRetries,
			RetryWaitMin: cfg.RetryDelay,
			RetryWaitMax: 2 * cfg.RetryDelay,
			Backoff:      retryablehttp.LinearJitterBackoff,
			CheckRetry:   retryablehttp.DefaultRetryPolicy,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Info("created ledger client",
		zap.Stringer("url", baseURL),
		zap.Int("max retries", c.client.RetryMax),
		zap.Duration("min retry wait", c.client.RetryWaitMin),
	)
	return c, nil
}

// Call invokes method with params and decodes the result into result.
func (c *Client) Call(ctx context.Context, method string, params []any, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.String(), body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, method, res.Status)
	}

	var rpcRes rpcResponse
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&rpcRes); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if rpcRes.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcRes.Error)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(rpcRes.Result, result); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}
