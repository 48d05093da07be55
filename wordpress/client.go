package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Headers is the header set attached verbatim to every outgoing request.
// It must contain at least Content-Type and Authorization.
type Headers map[string]string

// BasicAuth builds the standard header set from a username and an
// application password.
func BasicAuth(username, password string) Headers {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return Headers{
		"Content-Type":  "application/json",
		"Authorization": "Basic " + token,
	}
}

// Client wraps the WordPress REST API. It is immutable after construction;
// concurrent use from multiple goroutines is safe.
type Client struct {
	baseURL    string
	headers    Headers
	httpClient *http.Client
	pageSize   int
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new WordPress client
func NewClient(serverAddress string, headers Headers, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if serverAddress == "" {
		return nil, fmt.Errorf("wordpress server address is required")
	}
	if headers["Authorization"] == "" {
		return nil, fmt.Errorf("wordpress Authorization header is required")
	}
	if headers["Content-Type"] == "" {
		return nil, fmt.Errorf("wordpress Content-Type header is required")
	}

	client := &Client{
		baseURL:  strings.TrimRight(serverAddress, "/"),
		headers:  headers,
		pageSize: defaultPageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// doRequest performs an HTTP request against a /wp-json route and returns
// the response body and headers. Non-success statuses are returned as an
// *APIError carrying the server-reported error code.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, http.Header, error) {
	requestURL := fmt.Sprintf("%s/wp-json%s", c.baseURL, endpoint)
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
		// WordPress wraps errors in a {code, message, data} envelope.
		var we wireError
		if json.Unmarshal(body, &we) == nil && we.Code != "" {
			apiErr.Code = we.Code
			apiErr.Message = we.Message
		}
		return nil, resp.Header, apiErr
	}

	return body, resp.Header, nil
}

// CheckConnection probes the API root and classifies the outcome.
//
// A success status returns true. A rejected credential (server code
// incorrect_password or invalid_username) fails with AuthenticationError:
// authentication problems are actionable and must interrupt caller flow.
// Any other non-success status returns false with a nil error, since
// generic unreachability is a transient condition callers poll for.
// A network or name resolution failure fails with InvalidURLError;
// caller cancellation propagates unchanged.
func (c *Client) CheckConnection(ctx context.Context) (bool, error) {
	_, _, err := c.doRequest(ctx, http.MethodGet, "/", nil, nil)
	if err == nil {
		c.logger.Debug().Str("url", c.baseURL).Msg("Connection to WordPress verified")
		return true, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case CodeIncorrectPassword, CodeInvalidUsername:
			return false, &AuthenticationError{Reason: apiErr.Code}
		}
		c.logger.Debug().
			Int("status", apiErr.StatusCode).
			Str("code", apiErr.Code).
			Msg("WordPress probe returned a non-success status")
		return false, nil
	}

	// The http client wraps caller cancellation in *url.Error too; it is
	// not an address problem and must surface as what it is.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, err
	}

	var urlErr *url.Error
	var dnsErr *net.DNSError
	if errors.As(err, &urlErr) || errors.As(err, &dnsErr) {
		return false, &InvalidURLError{URL: c.baseURL, Err: err}
	}

	return false, err
}
