package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// getWithRetry issues one GET and retries exactly once on a transient
// transport failure (reset connection, timeout). Application-level failures
// (any HTTP status) are never retried. The returned response body is open;
// callers own closing it.
func getWithRetry(ctx context.Context, client *http.Client, rawURL string) (*http.Response, *ApiError) {
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, newApiError(KindNetwork, "build request", err)
		}

		resp, err := client.Do(req)
		if err == nil {
			if apiErr := classifyStatus(resp); apiErr != nil {
				resp.Body.Close()
				return nil, apiErr
			}
			return resp, nil
		}
		lastErr = err
	}

	return nil, classifyTransportError(lastErr)
}

func classifyStatus(resp *http.Response) *ApiError {
	switch {
	case resp.StatusCode/100 == 2:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return newApiError(KindAuth, fmt.Sprintf("provider rejected credentials: %s", resp.Status), nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return newApiError(KindQuota, fmt.Sprintf("provider quota exhausted: %s", resp.Status), nil)
	default:
		return newApiError(KindNetwork, fmt.Sprintf("provider bad status: %s", resp.Status), nil)
	}
}

func classifyTransportError(err error) *ApiError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return newApiError(KindTimeout, "provider request timed out", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newApiError(KindTimeout, "provider request timed out", err)
	}
	return newApiError(KindNetwork, "provider unreachable", err)
}
