package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autonews/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssDocument = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <link>https://example.com</link>
    <description>News from Example</description>
    <item>
      <title>Big Announcement</title>
      <link>https://example.com/big-announcement</link>
      <description>Something big happened.</description>
      <pubDate>Fri, 01 Mar 2024 10:30:00 +0000</pubDate>
      <guid>https://example.com/big-announcement</guid>
    </item>
  </channel>
</rss>`

const atomDocument = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example News</title>
  <link href="https://example.com"/>
  <id>urn:uuid:feed</id>
  <updated>2024-03-01T10:30:00Z</updated>
  <entry>
    <title>Big Announcement</title>
    <link href="https://example.com/big-announcement"/>
    <id>https://example.com/big-announcement</id>
    <updated>2024-03-01T10:30:00Z</updated>
    <published>2024-03-01T10:30:00Z</published>
    <summary>Something big happened.</summary>
  </entry>
</feed>`

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFeedFetcher_RSSAndAtomAreEquivalent(t *testing.T) {
	fetcher := NewFeedFetcher(testConfig(), testLogger())

	rssServer := serveFeed(t, rssDocument)
	atomServer := serveFeed(t, atomDocument)

	rssFeed, err := fetcher.Fetch(context.Background(), rssServer.URL)
	require.NoError(t, err)

	atomFeed, err := fetcher.Fetch(context.Background(), atomServer.URL)
	require.NoError(t, err)

	require.Len(t, rssFeed.Items, 1)
	require.Len(t, atomFeed.Items, 1)

	// The same story in either format yields the same normalized item.
	rssItem := rssFeed.Items[0]
	atomItem := atomFeed.Items[0]

	assert.Equal(t, rssItem.Title, atomItem.Title)
	assert.Equal(t, rssItem.Link, atomItem.Link)
	assert.True(t, rssItem.PublishedAt.Equal(atomItem.PublishedAt),
		"rss %v vs atom %v", rssItem.PublishedAt, atomItem.PublishedAt)

	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	assert.True(t, want.Equal(rssItem.PublishedAt))
}

func TestFeedFetcher_EmptyFeed(t *testing.T) {
	fetcher := NewFeedFetcher(testConfig(), testLogger())

	server := serveFeed(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Empty</title></channel></rss>`)

	_, err := fetcher.Fetch(context.Background(), server.URL)

	assert.ErrorIs(t, err, domain.ErrEmptyFeed)
}

func TestFeedFetcher_NotAFeed(t *testing.T) {
	fetcher := NewFeedFetcher(testConfig(), testLogger())

	server := serveFeed(t, "<html><body>not a feed</body></html>")

	_, err := fetcher.Fetch(context.Background(), server.URL)

	assert.Error(t, err)
}
