package lists

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rangekit/rangefetch/internal/config"
	"github.com/rangekit/rangefetch/internal/utils"
)

// Fetcher retrieves raw feed text from a URL. The production implementation
// is HTTPFetcher; tests substitute their own.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// HTTPFetcher fetches feeds over HTTP with a fixed timeout and User-Agent.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher configured from the general config section.
func NewHTTPFetcher(cfg *config.Config) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.General.FetchTimeoutSec) * time.Second,
		},
		userAgent: cfg.General.UserAgent,
	}
}

// Fetch performs a GET request and returns the response body as text.
// Any non-200 status is an error.
func (f *HTTPFetcher) Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	return string(content), nil
}
