package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// BackoffConfig controls exponential backoff between attempts of the same request.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// delay returns the wait before retry number n (0-based).
func (b *BackoffConfig) delay(n int) time.Duration {
	d := b.InitialInterval << n
	if d <= 0 || (b.MaxInterval > 0 && d > b.MaxInterval) {
		d = b.MaxInterval
	}
	return d
}

// retryable reports whether a failed attempt may succeed if sent again.
// Transport failures, 429 and 5xx are retried; 4xx and decode failures are not.
func (a attempt) retryable(ctx context.Context) bool {
	if a.err == nil || ctx.Err() != nil {
		return false
	}
	if errors.Is(a.err, ErrDecodeResponse) {
		return false
	}
	if a.status == 0 {
		return true
	}
	return a.status == http.StatusTooManyRequests || a.status >= 500
}

// doRequestWithBackoff sends the request, retrying with exponential delay when a backoff is configured.
// The request level backoff wins over the client default.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.backoff
	}

	a := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	if backoff == nil {
		return a.successResp, a.errorResp, a.status, a.err
	}

	for retry := 0; retry < backoff.MaxRetries && a.retryable(ctx); retry++ {
		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, "", a.status, a.responseBody, 0, a.err, retry+1, backoff.MaxRetries)
		}

		timer := time.NewTimer(backoff.delay(retry))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, a.status, ctx.Err()
		case <-timer.C:
		}

		a = hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	}

	return a.successResp, a.errorResp, a.status, a.err
}
