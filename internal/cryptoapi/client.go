// Package cryptoapi talks to the cryptography service that answers the
// exercise forms. The endpoints and payloads are fixed by that service.
package cryptoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is where the service listens unless configured otherwise.
const DefaultBaseURL = "http://127.0.0.1:8080"

// Recorder observes every call's outcome ("ok", "error").
type Recorder interface {
	ServiceCall(endpoint, outcome string)
}

// Client calls the cryptography service.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	maxRetries  int
	backoffBase time.Duration
	log         *slog.Logger
	recorder    Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. A client passed to
// WithHTTPClient is copied first and never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMaxRetries sets how many times transient failures are retried.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBackoffBase sets the first retry delay.
func WithBackoffBase(d time.Duration) Option {
	return func(c *Client) { c.backoffBase = d }
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRecorder reports call outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		maxRetries:  DefaultMaxRetries,
		backoffBase: 250 * time.Millisecond,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.httpClient.Timeout != c.timeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// VerifyISBN checks an ISBN-10 via GET /isbn/{isbn}.
func (c *Client) VerifyISBN(ctx context.Context, isbn string) (string, error) {
	return c.getText(ctx, "isbn", "/isbn/"+url.PathEscape(isbn))
}

// VerifyCCN checks a credit card number via GET /ccn/{ccn}.
func (c *Client) VerifyCCN(ctx context.Context, ccn string) (string, error) {
	return c.getText(ctx, "ccn", "/ccn/"+url.PathEscape(ccn))
}

// HammingCheckDigits extends six digits with four check digits.
func (c *Client) HammingCheckDigits(ctx context.Context, input string) (string, error) {
	return c.getText(ctx, "hamming_checkdigits", "/hamming/checkdigits/"+url.PathEscape(input))
}

// HammingSyndromes computes the syndrome vector of a ten digit word.
func (c *Client) HammingSyndromes(ctx context.Context, input string) (string, error) {
	return c.getText(ctx, "hamming_syndromes", "/hamming/syndromes/"+url.PathEscape(input))
}

// VerifyBCH checks and corrects a BCH (10,6) word.
func (c *Client) VerifyBCH(ctx context.Context, input string) (string, error) {
	return c.getText(ctx, "bch", "/bch/"+url.PathEscape(input))
}

// Hash returns the SHA1 digest of input.
func (c *Client) Hash(ctx context.Context, input string) (string, error) {
	return c.getText(ctx, "hash", "/hash/"+url.PathEscape(input))
}

// Crack brute forces each SHA1 hash. Answers are positional; an empty answer
// means no password was found.
func (c *Client) Crack(ctx context.Context, hashes []string) ([]string, error) {
	return c.postList(ctx, "crack", "/crack/", hashes)
}

// CrackBCH finds the BCH input behind each hash.
func (c *Client) CrackBCH(ctx context.Context, hashes []string) ([]string, error) {
	return c.postList(ctx, "crackbch", "/crackbch/", hashes)
}

func (c *Client) getText(ctx context.Context, endpoint, path string) (string, error) {
	var text string
	err := c.do(ctx, endpoint, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	}, func(body []byte) error {
		text = string(body)
		return nil
	})
	return text, err
}

func (c *Client) postList(ctx context.Context, endpoint, path string, items []string) ([]string, error) {
	if items == nil {
		items = []string{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal %s body: %w", endpoint, err)
	}

	var out []string
	err = c.do(ctx, endpoint, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}, func(body []byte) error {
		if err := json.Unmarshal(body, &out); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
		return nil
	})
	return out, err
}

// do sends the request built by newReq, retrying transient failures, and
// hands a successful body to decode.
func (c *Client) do(ctx context.Context, endpoint string, newReq func() (*http.Request, error), decode func([]byte) error) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := Backoff(attempt-1, c.backoffBase)
			c.log.Debug("retrying crypto service call", "endpoint", endpoint, "attempt", attempt, "wait", wait, "error", lastErr)
			select {
			case <-ctx.Done():
				c.record(endpoint, "error")
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		body, err := c.once(endpoint, newReq)
		if err == nil {
			if err := decode(body); err != nil {
				c.record(endpoint, "error")
				return err
			}
			c.record(endpoint, "ok")
			return nil
		}
		lastErr = err
		if !IsRetryable(err) || ctx.Err() != nil {
			break
		}
	}
	c.record(endpoint, "error")
	return lastErr
}

func (c *Client) once(endpoint string, newReq func() (*http.Request, error)) ([]byte, error) {
	req, err := newReq()
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("%s: %w", endpoint, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read %s response: %w", endpoint, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
		if resp.StatusCode >= 500 {
			return nil, &RetryableError{Err: statusErr}
		}
		return nil, statusErr
	}
	return body, nil
}

func (c *Client) record(endpoint, outcome string) {
	if c.recorder != nil {
		c.recorder.ServiceCall(endpoint, outcome)
	}
}
