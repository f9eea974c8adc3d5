package sponsor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/voting"
)

// ServiceError is a failure reported by the sponsor service, carrying the phase that failed.
type ServiceError struct {
	Status  int
	Phase   string
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s (phase %s, code %s, status %d)", e.Message, e.Phase, e.Code, e.Status)
}

// Unwrap exposes the cause by code and the failed phase as a voting error kind.
func (e *ServiceError) Unwrap() []error {
	errs := make([]error, 0, 2)
	switch e.Code {
	case CodeMalformedRequest:
		errs = append(errs, ErrMalformedRequest)
	case CodeRateLimited:
		errs = append(errs, ErrRateLimited)
	case CodeReplayedDigest:
		errs = append(errs, ErrReplayedDigest)
	default:
		errs = append(errs, ErrUpstream)
	}
	switch e.Phase {
	case phaseSponsor:
		errs = append(errs, voting.ErrSponsorship)
	case phaseExecute:
		errs = append(errs, voting.ErrExecution)
	}
	return errs
}

type ClientOpt func(*Client)

func WithClientLogger(logger *zap.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
		c.client.Logger = &log.RetryableHTTPLogger{Inner: logger}
	}
}

func withHTTPClient(client *http.Client) ClientOpt {
	return func(c *Client) {
		c.client.HTTPClient = client
	}
}

// Client is the voter side of the sponsor service. It issues exactly one request per call.
type Client struct {
	baseURL *url.URL
	client  *retryablehttp.Client
	logger  *zap.Logger
}

// NewClient creates a client of the sponsor service at address.
func NewClient(address string, opts ...ClientOpt) (*Client, error) {
	baseURL, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("parsing address: %w", err)
	}
	if baseURL.Scheme == "" {
		baseURL.Scheme = "http"
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	client.HTTPClient.Timeout = time.Minute
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL: baseURL,
		client:  client,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Sponsor requests a sponsorship of ballot sent by sender.
func (c *Client) Sponsor(ctx context.Context, ballot types.UnsignedBallot, sender types.Address) (types.SponsoredBallot, error) {
	var res transactionResponse
	req := transactionRequest{
		TransactionKindBytes: base64.StdEncoding.EncodeToString(ballot),
		Sender:               sender.String(),
	}
	if err := c.post(ctx, "/sponsor/transaction", &req, &res); err != nil {
		return types.SponsoredBallot{}, fmt.Errorf("sponsor transaction: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(res.Bytes)
	if err != nil {
		return types.SponsoredBallot{}, fmt.Errorf("decode sponsored bytes: %w", err)
	}
	if len(raw) == 0 || res.Digest == "" {
		return types.SponsoredBallot{}, errors.New("empty sponsorship")
	}
	return types.SponsoredBallot{Bytes: raw, Digest: types.Digest(res.Digest)}, nil
}

// Execute submits the voter signature for digest.
func (c *Client) Execute(ctx context.Context, digest types.Digest, sig types.Signature) (types.ExecutionResult, error) {
	var res executeResponse
	req := executeRequest{Digest: digest.String(), Signature: sig.String()}
	if err := c.post(ctx, "/sponsor/execute", &req, &res); err != nil {
		return types.ExecutionResult{}, fmt.Errorf("execute transaction: %w", err)
	}
	result := types.ExecutionResult{Digest: types.Digest(res.Digest), Status: types.ExecutionSuccess}
	if res.Effects != nil && res.Effects.Status.Status == string(types.ExecutionFailure) {
		result.Status = types.ExecutionFailure
		result.Error = res.Effects.Status.Error
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody, resBody any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		svcErr := &ServiceError{Status: res.StatusCode, Message: res.Status}
		var parsed errorResponse
		if json.Unmarshal(data, &parsed) == nil && parsed.Error != "" {
			svcErr.Message = parsed.Error
			svcErr.Phase = parsed.Phase
			svcErr.Code = parsed.Code
		}
		c.logger.Debug("sponsor service request failed",
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.String("code", svcErr.Code),
		)
		return svcErr
	}
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(resBody); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
