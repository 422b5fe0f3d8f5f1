package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/piresc/guestportal/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/pkg/retry"
)

const maxBodyBytes = 64 << 10

// HTTPError is returned for 5xx responses, which count against the breaker
// and are retried.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Cookies    []*http.Cookie
}

// EnhancedClient wraps http.Client with retry and per-host circuit breaking.
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
}

// NewEnhancedClient creates a client. The per-call deadline comes from ctx.
func NewEnhancedClient(client *http.Client, retrier *retry.Retrier, breakers *circuitbreaker.Manager) *EnhancedClient {
	if client == nil {
		client = &http.Client{}
	}
	if retrier == nil {
		retrier = retry.NewWithDefaults()
	}
	if breakers == nil {
		breakers = circuitbreaker.NewManager(circuitbreaker.DefaultConfig(""))
	}
	return &EnhancedClient{client: client, retrier: retrier, circuitManager: breakers}
}

// PostJSON sends body as JSON to url. Non-5xx responses, including 4xx, are
// returned without error.
func (c *EnhancedClient) PostJSON(ctx context.Context, url string, body interface{}, header http.Header) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	var out *Response
	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	probe, err := build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	host := probe.URL.Host
	if host == "" {
		host = "unknown"
	}

	err = c.circuitManager.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := build(ctx)
			if err != nil {
				return err
			}
			resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req)
			})
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			if err != nil {
				return fmt.Errorf("failed to read response body: %w", err)
			}
			if resp.StatusCode >= 500 {
				return &HTTPError{StatusCode: resp.StatusCode, Message: "server error"}
			}
			out = &Response{StatusCode: resp.StatusCode, Body: data, Cookies: resp.Cookies()}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IsTimeout reports whether err came from a deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
