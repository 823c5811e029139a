package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/champlain/campus/internal/pkg/logger"
)

// maxErrorBody caps how much of a failed response body ends up in an error.
const maxErrorBody = 512

// StatusError is returned for remote statuses other than 2xx and 404.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
}

// remote issues GET requests against one service base URL.
type remote struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func newRemote(baseURL string, httpClient *http.Client, timeout time.Duration) remote {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		timeout: timeout,
	}
}

// get fetches {baseURL}{path}/{id} and decodes a 2xx body into T.
func get[T any](ctx context.Context, r remote, path, id string) Result[T] {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	target := r.baseURL + path + "/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return ErrorResult[T](fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.http.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("url", target).Msg("Remote lookup failed")
		return ErrorResult[T](fmt.Errorf("GET %s: %w", target, err))
	}
	defer resp.Body.Close()

	logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Remote lookup")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NotFoundResult[T]()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return ErrorResult[T](&StatusError{URL: target, StatusCode: resp.StatusCode, Body: string(body)})
	}

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return ErrorResult[T](fmt.Errorf("decoding response from %s: %w", target, err))
	}
	return FoundResult(&v)
}
