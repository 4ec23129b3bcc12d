// Package apiclient is the HTTP client for the companion backend. It owns the bearer
// token, attaches it to every request, retries transient failures with a fixed backoff,
// and evicts the token when the backend reports an authorization failure.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strings"
	"time"

	apperrors "github.com/tijaniyah/companion/internal/errors"
	obserrors "github.com/tijaniyah/companion/internal/observability/errors"
	"github.com/tijaniyah/companion/internal/ports"
	"golang.org/x/net/publicsuffix"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultRetryBackoff = time.Second
	maxErrorBodyBytes   = 64 << 10
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures a Client.
type Options struct {
	// BaseURL is the backend origin; endpoint paths are appended to it. Required.
	BaseURL string
	// HTTPClient overrides the transport. A client with Timeout and a cookie jar is built when nil.
	HTTPClient *http.Client
	Timeout    time.Duration
	// Store persists the bearer token. Required.
	Store ports.KeyValueStore
	// RetryLimit is the number of retries after the first attempt. Negative values mean none.
	RetryLimit int
	// RetryBackoff is the fixed wait between attempts; 1s when zero.
	RetryBackoff time.Duration
	// RetryStatuses are the response codes treated as transient; {503} when empty.
	RetryStatuses []int
	// AuthFailureStatuses are the response codes that evict the token; {401} when empty.
	AuthFailureStatuses []int
	Logger              *slog.Logger
	// Sleep replaces the backoff wait in tests.
	Sleep SleepFunc
}

// Client performs authenticated requests against the backend.
type Client struct {
	baseURL       *url.URL
	http          *http.Client
	tokens        *TokenHolder
	retryLimit    int
	backoff       time.Duration
	retryStatuses []int
	authStatuses  []int
	sleep         SleepFunc
	logger        *slog.Logger
}

// New constructs a Client from Options. The token is not loaded until LoadToken is called.
func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return nil, apperrors.Validation("api base url is required")
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apperrors.Validationf("invalid api base url %q", base)
	}
	if opts.Store == nil {
		return nil, apperrors.Validation("token store is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc, err = newHTTPClient(opts.Timeout)
		if err != nil {
			return nil, err
		}
	}

	retries := opts.RetryLimit
	if retries < 0 {
		retries = 0
	}
	backoff := opts.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	retryStatuses := opts.RetryStatuses
	if len(retryStatuses) == 0 {
		retryStatuses = []int{http.StatusServiceUnavailable}
	}
	authStatuses := opts.AuthFailureStatuses
	if len(authStatuses) == 0 {
		authStatuses = []int{http.StatusUnauthorized}
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	return &Client{
		baseURL:       u,
		http:          hc,
		tokens:        NewTokenHolder(opts.Store, logger),
		retryLimit:    retries,
		backoff:       backoff,
		retryStatuses: slices.Clone(retryStatuses),
		authStatuses:  slices.Clone(authStatuses),
		sleep:         sleep,
		logger:        logger,
	}, nil
}

func newHTTPClient(timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &http.Client{Timeout: timeout, Jar: jar}, nil
}

// Tokens exposes the token holder owned by this client.
func (c *Client) Tokens() *TokenHolder { return c.tokens }

// LoadToken restores the persisted token. It is called once at startup.
func (c *Client) LoadToken(ctx context.Context) {
	c.tokens.Load(ctx)
}

// ClearToken discards the in-memory and persisted token.
func (c *Client) ClearToken(ctx context.Context) error {
	return c.tokens.Clear(ctx)
}

// Request describes one API call.
type Request struct {
	Method string
	// Path is relative to the base URL and must already be escaped.
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body   any
	Header http.Header
}

// Response is a successful (2xx) API response with its body fully read.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the response declared a JSON content type.
func (r *Response) IsJSON() bool {
	mt, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// Text returns the raw body.
func (r *Response) Text() string { return string(r.Body) }

// Decode unmarshals a JSON body into out. A non-JSON body is assigned to out when it is
// a *string; otherwise it is an error unless empty.
func (r *Response) Decode(out any) error {
	if out == nil {
		return nil
	}
	if r.IsJSON() {
		if len(bytes.TrimSpace(r.Body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(r.Body, out); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode response")
		}
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = r.Text()
		return nil
	}
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	return apperrors.Internal(fmt.Sprintf("unexpected response content type %q", r.ContentType))
}

// Do performs req, retrying transient failures. The returned error is an *errors.AppError
// whose code follows the client taxonomy; HTTP failures wrap a *StatusError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var payload []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
		}
		payload = b
	}

	for attempt := 0; ; attempt++ {
		resp, err := c.send(ctx, req, payload)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, apperrors.Wrap(ctxErr, apperrors.ErrCodeTransport, "request canceled")
			}
			if attempt < c.retryLimit {
				c.logRetry(ctx, req, attempt, "error", err)
				if waitErr := c.sleep(ctx, c.backoff); waitErr != nil {
					return nil, apperrors.Wrap(waitErr, apperrors.ErrCodeTransport, "request canceled")
				}
				continue
			}
			c.logFailure(ctx, req, attempt, err)
			return nil, apperrors.Wrap(err, apperrors.ErrCodeTransport, "network request failed")
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		if slices.Contains(c.authStatuses, resp.StatusCode) {
			if clearErr := c.tokens.Clear(ctx); clearErr != nil {
				c.logger.WarnContext(ctx, "clear token after auth failure", "error", clearErr)
			}
			err = statusFailure(resp, apperrors.ErrCodeUnauthorized)
			c.logFailure(ctx, req, attempt, err)
			return nil, err
		}

		if slices.Contains(c.retryStatuses, resp.StatusCode) {
			if attempt < c.retryLimit {
				c.logRetry(ctx, req, attempt, "status", resp.StatusCode)
				if waitErr := c.sleep(ctx, c.backoff); waitErr != nil {
					return nil, apperrors.Wrap(waitErr, apperrors.ErrCodeTransport, "request canceled")
				}
				continue
			}
			err = statusFailure(resp, apperrors.ErrCodeTransient)
			c.logFailure(ctx, req, attempt, err)
			return nil, err
		}

		err = statusFailure(resp, apperrors.ErrCodeHTTP)
		c.logFailure(ctx, req, attempt, err)
		return nil, err
	}
}

func (c *Client) send(ctx context.Context, req Request, payload []byte) (*Response, error) {
	u := c.endpoint(req.Path, req.Query)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vals := range req.Header {
		for _, v := range vals {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if tok := c.tokens.Token(); tok != nil {
		tok.SetAuthHeader(httpReq)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        b,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.RawPath = ""
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if ue, err := url.PathUnescape(u.Path); err == nil && ue != u.Path {
		u.RawPath = u.Path
		u.Path = ue
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) logRetry(ctx context.Context, req Request, attempt int, key string, value any) {
	c.logger.WarnContext(ctx, "retrying api request",
		"method", req.Method,
		"path", req.Path,
		"attempt", attempt+1,
		"backoff", c.backoff,
		key, value,
	)
}

func (c *Client) logFailure(ctx context.Context, req Request, attempt int, err error) {
	c.logger.DebugContext(ctx, "api request failed",
		"method", req.Method,
		"path", req.Path,
		"attempts", attempt+1,
		"error", err,
		"error_class", obserrors.Classify(err),
	)
}

// get, post, patch and del are thin typed helpers around Do.

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.call(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

func (c *Client) call(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// sleepContext waits for d, returning early with ctx.Err() when ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
