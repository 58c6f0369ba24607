package analysis

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"newscred/internal/ports"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPFetcher downloads search-result pages and extracts their visible text.
type HTTPFetcher struct {
	client *http.Client
}

var _ ports.PageFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher wires an HTTP client; per-request deadlines come from the
// caller's context, so the client itself carries no timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFetcher{client: client}
}

// FetchText GETs the page with a browser-like User-Agent and returns the
// document text. Non-200 responses are errors.
func (f *HTTPFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned %s", req.URL.Host, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	return doc.Text(), nil
}
