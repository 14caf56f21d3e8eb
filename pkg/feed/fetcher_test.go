package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>新着情報</title>
    <link>https://example.go.jp/</link>
    <item>
      <title>  暗号資産交換業者の登録について  </title>
      <link>https://example.go.jp/news/1.html</link>
      <pubDate>Mon, 02 Jun 2025 09:00:00 +0900</pubDate>
    </item>
    <item>
      <title>リンクのない項目</title>
      <link></link>
    </item>
    <item>
      <title>日付のない項目</title>
      <link>https://example.go.jp/news/2.html</link>
    </item>
  </channel>
</rss>`

const rdfFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns="http://purl.org/rss/1.0/"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel rdf:about="https://example.go.jp/">
    <title>報道発表</title>
    <link>https://example.go.jp/</link>
  </channel>
  <item rdf:about="https://example.go.jp/press/1.html">
    <title>省令の一部改正について</title>
    <link>https://example.go.jp/press/1.html</link>
    <dc:date>2025-06-02T10:00:00+09:00</dc:date>
  </item>
</rdf:RDF>`

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TestAgent/1.0", r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "application/rss+xml")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "TestAgent/1.0")

	items, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 2, "entry without a link is skipped")

	assert.Equal(t, "暗号資産交換業者の登録について", items[0].Title, "title whitespace trimmed")
	assert.Equal(t, "https://example.go.jp/news/1.html", items[0].URL)
	require.NotNil(t, items[0].PublishedAt)
	assert.Equal(t, 2025, items[0].PublishedAt.Year())

	assert.Equal(t, "日付のない項目", items[1].Title)
	assert.Nil(t, items[1].PublishedAt)
}

func TestFetcher_Fetch_RDF(t *testing.T) {
	// several ministries still publish RSS 1.0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rdfFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "TestAgent/1.0")

	items, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "省令の一部改正について", items[0].Title)
	require.NotNil(t, items[0].PublishedAt)
}

func TestFetcher_Fetch_NotAFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>maintenance page</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "TestAgent/1.0")

	items, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err, "an unrecognized document is an empty feed, not a failure")
	assert.Empty(t, items)
}

func TestFetcher_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "TestAgent/1.0")

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 503")
}

func TestFetcher_Fetch_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	fetcher := NewFetcher(time.Second, "TestAgent/1.0")

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
}

func TestFetcher_Fetch_TooManyRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "TestAgent/1.0")

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirects")
}

func TestFetcher_Fetch_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "TestAgent/1.0")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := fetcher.Fetch(ctx, server.URL)
	require.Error(t, err)
}
