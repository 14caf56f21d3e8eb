package content

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"

	"github.com/nwebcraft/reghawk/pkg/config"
)

// truncationMarker is appended when extracted text is cut to the budget
const truncationMarker = "..."

// Extractor fetches article detail pages and reduces them to plain text
// bounded by a character budget, for downstream impact analysis.
type Extractor struct {
	client    *http.Client
	stripper  *bluemonday.Policy
	userAgent string
	maxChars  int
}

// NewExtractor creates a detail page extractor
func NewExtractor(cfg config.ExtractionConfig) *Extractor {
	return &Extractor{
		client:    &http.Client{Timeout: cfg.Timeout},
		stripper:  bluemonday.StrictPolicy(),
		userAgent: cfg.UserAgent,
		maxChars:  cfg.MaxChars,
	}
}

// Extract retrieves the page at urlStr and returns its main text content,
// truncated to the configured character budget. When trafilatura cannot
// locate main content the whole document is tag-stripped instead, so
// sparse government pages still produce something to analyze.
func (e *Extractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body from %s: %w", urlStr, err)
	}

	text := e.mainText(raw, parsedURL)
	if text == "" {
		return "", fmt.Errorf("no text content extracted from %s", urlStr)
	}

	return e.truncate(text), nil
}

// mainText runs trafilatura extraction, falling back to a strict tag strip
func (e *Extractor) mainText(raw []byte, pageURL *url.URL) string {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(raw), opts)
	if err == nil && result != nil && strings.TrimSpace(result.ContentText) != "" {
		return strings.TrimSpace(result.ContentText)
	}

	stripped := e.stripper.Sanitize(string(raw))
	stripped = html.UnescapeString(stripped)
	return strings.Join(strings.Fields(stripped), " ")
}

func (e *Extractor) truncate(text string) string {
	if e.maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= e.maxChars {
		return text
	}
	return string(runes[:e.maxChars]) + truncationMarker
}
