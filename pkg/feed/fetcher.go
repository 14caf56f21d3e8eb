package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

const maxRedirects = 3

// Fetcher retrieves and parses syndication feeds (RSS/RDF/Atom)
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a feed fetcher with a bounded per-call timeout.
// Redirects are followed up to maxRedirects, then treated as a fetch error.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves a feed from the given URL and parses it into flat entries.
// A document gofeed cannot recognize as a feed yields an empty slice, not an
// error; transport failures and non-200 statuses are errors.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]domain.FeedItem, error) {
	body, err := f.get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
			return []domain.FeedItem{}, nil
		}
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		parsed := domain.FeedItem{
			Title: strings.TrimSpace(item.Title),
			URL:   strings.TrimSpace(item.Link),
		}
		if parsed.URL == "" {
			continue // nothing to dedupe on, skip
		}

		if item.PublishedParsed != nil {
			parsed.PublishedAt = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			parsed.PublishedAt = item.UpdatedParsed
		}

		items = append(items, parsed)
	}

	return items, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
