package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// response is a fully-read backend answer. The body is drained before the
// attempt's context is released, so callers never race the cancellation.
type response struct {
	status     int
	statusText string
	body       []byte
	requestID  string
}

func (r *response) success() bool { return r.status >= 200 && r.status < 300 }

// timeoutError marks an attempt that hit the per-attempt deadline. Timeouts
// are never retried: a backend that is slow once will be slow thrice, and
// three 30s waits is a frozen screen.
type timeoutError struct {
	bound time.Duration
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.bound)
}

// do performs one logical request: up to maxRetries+1 attempts, each under
// the per-attempt timeout, with linear backoff (1s, 2s, ...) between
// transport failures. One request id correlates every attempt in the logs.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*response, error) {
	requestID := uuid.NewString()
	url := c.baseURL + path

	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("cannot encode request body: %w", err)
		}
	}

	attempts := c.maxRetries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * time.Second
			c.log.Warn("retrying request",
				"request_id", requestID, "method", method, "path", path,
				"attempt", attempt, "delay", delay, "cause", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		c.log.Info("request start",
			"request_id", requestID, "method", method, "path", path, "attempt", attempt)

		rsp, err := c.attempt(ctx, method, url, body, requestID)
		if err == nil {
			c.log.Info("request done",
				"request_id", requestID, "method", method, "path", path,
				"status", rsp.status, "attempt", attempt)
			return rsp, nil
		}

		var te *timeoutError
		if errors.As(err, &te) {
			c.log.Error("request timed out",
				"request_id", requestID, "method", method, "path", path,
				"timeout", te.bound, "attempt", attempt)
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	c.log.Error("request failed",
		"request_id", requestID, "method", method, "path", path,
		"attempts", attempts, "cause", lastErr)
	return nil, fmt.Errorf("request failed after %d attempts: %w", attempts, lastErr)
}

// attempt runs a single try under its own deadline and drains the body.
func (c *Client) attempt(ctx context.Context, method, url string, body []byte, requestID string) (*response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Distinguish our per-attempt deadline from the caller's context.
		if attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return nil, &timeoutError{bound: c.timeout}
		}
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return nil, &timeoutError{bound: c.timeout}
		}
		return nil, fmt.Errorf("cannot read response body: %w", err)
	}

	return &response{
		status:     resp.StatusCode,
		statusText: resp.Status,
		body:       content,
		requestID:  requestID,
	}, nil
}
