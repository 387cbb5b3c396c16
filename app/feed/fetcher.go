package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const acceptHeader = "application/rss+xml, application/xml, text/xml, */*"

// statusSnippetLimit caps how much of an error response body is carried in
// a StatusError for diagnostics.
const statusSnippetLimit = 512

// StatusError is returned for non-2xx responses. It carries enough of the
// response to surface upstream feed problems in logs without re-fetching.
type StatusError struct {
	Status  int
	Headers http.Header
	Snippet string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Status)
}

// Fetcher performs the HTTP GET against a feed URL. It does no parsing;
// retries are the caller's responsibility.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func NewFetcher(client *http.Client, userAgent string, timeout time.Duration) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}

	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (f *Fetcher) Run(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, statusSnippetLimit))
		return nil, &StatusError{
			Status:  resp.StatusCode,
			Headers: resp.Header,
			Snippet: string(snippet),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
