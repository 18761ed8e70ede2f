// Package docscanio provides a scanengine.Client implementation backed by the
// docscan.io contract analysis API.
package docscanio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"contractscan/pkg/scanengine"
	"contractscan/pkg/serrors"
)

// Client talks to the docscan.io REST API and fulfills the scanengine.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the engine
	baseURL    string       // baseURL is the engine API root, without trailing slash
	token      string       // token is the API key
}

// ParseRateLimit extracts the engine's rate-limit information from HTTP
// response headers and converts it into a scanengine.RateLimitStatus.
func ParseRateLimit(h http.Header) (scanengine.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	limit := atoi(h.Get("X-Rate-Limit-Limit"))
	remaining := atoi(h.Get("X-Rate-Limit-Remaining"))

	resetStr := h.Get("X-Rate-Limit-Reset")
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return scanengine.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	return scanengine.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}, nil
}

// SubmitDocument submits the document content for contract analysis.
// It returns the engine job identifier, the parsed rate-limit status from the
// response headers, and an error if the submission failed.
func (c *Client) SubmitDocument(ctx context.Context,
	doc scanengine.Document) (scanengine.SubmitRes, scanengine.RateLimitStatus, error) {
	type submitReq struct {
		Filename    string `json:"filename"`
		ContentType string `json:"content-type"`
		Content     string `json:"content"`
	}
	bodyBytes, err := json.Marshal(submitReq{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Content:     base64.StdEncoding.EncodeToString(doc.Content),
	})
	if err != nil {
		return scanengine.SubmitRes{}, scanengine.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/api/v1/scans",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return scanengine.SubmitRes{}, scanengine.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scanengine.SubmitRes{}, scanengine.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return scanengine.SubmitRes{}, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return scanengine.SubmitRes{}, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return scanengine.SubmitRes{},
			rl,
			serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return scanengine.SubmitRes{}, rl, fmt.Errorf("submit failed: %s", strings.TrimSpace(string(b)))
	}

	var submitResp struct {
		UUID string `json:"uuid"`
	}
	if err := json.Unmarshal(b, &submitResp); err != nil {
		return scanengine.SubmitRes{}, rl, fmt.Errorf("could not decode response: %w", err)
	}

	return scanengine.SubmitRes{ID: submitResp.UUID}, rl, nil
}

// Result fetches the raw scan result payload for the given scanID. The body
// is returned verbatim without decoding; the extraction package owns the
// payload format. ErrNotFound is returned while the engine has not finished
// the scan. The rate-limit status is parsed from every response, including
// error responses, so callers can feed it back into their request pacing.
func (c *Client) Result(ctx context.Context, scanID string) (string, scanengine.RateLimitStatus, error) {
	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet,
		c.baseURL+"/api/v1/scans/"+scanID+"/result",
		nil)
	if err != nil {
		return "", scanengine.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Api-Key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", scanengine.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return "", rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return "", rl, serrors.With(serrors.ErrNotFound, "result not ready")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", rl, fmt.Errorf("get result failed: %s", strings.TrimSpace(string(b)))
	}

	return string(b), rl, nil
}

// Ensure Client conforms to the scanengine.Client interface at compile time.
var _ scanengine.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API base URL
// and API token to interact with docscan.io.
func New(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}
