package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/security_intel_system/internal/config"
)

const rssFeedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://feed.example</link>
    <description>Test</description>
    %s
  </channel>
</rss>`

func rssItem(title, link, description, pubDate string) string {
	return fmt.Sprintf(`<item>
  <title>%s</title>
  <link>%s</link>
  <description>%s</description>
  <pubDate>%s</pubDate>
</item>`, title, link, description, pubDate)
}

func newTestRSS(t *testing.T, feedXML string) *RSS {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	p := NewRSS(&config.Config{RSSTimeout: 5 * time.Second, UserAgent: "TestAgent/1.0"}, logger)
	p.now = func() time.Time { return time.Date(2025, 1, 30, 12, 0, 0, 0, time.UTC) }
	p.feeds = map[string][]Feed{
		"FR":      {{Name: "Test Feed", URL: server.URL}},
		"DEFAULT": {{Name: "Test Feed", URL: server.URL}},
	}
	return p
}

func TestRSS_FeedsForCountry(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	p := NewRSS(&config.Config{RSSTimeout: time.Second}, logger)

	// Алиасы стран приводятся к коду
	feeds := p.feedsForCountry("France")
	require.NotEmpty(t, feeds)
	assert.Equal(t, "Le Monde", feeds[0].Name)

	feeds = p.feedsForCountry("United Kingdom")
	require.NotEmpty(t, feeds)
	assert.Equal(t, "BBC News", feeds[0].Name)

	// Неизвестная страна получает DEFAULT набор
	feeds = p.feedsForCountry("Atlantis")
	require.NotEmpty(t, feeds)
	assert.Equal(t, "Reuters", feeds[0].Name)
}

func TestRSS_HomicideArticles_FiltersByCityAndKeywords(t *testing.T) {
	feedXML := fmt.Sprintf(rssFeedTemplate,
		rssItem("Man killed in Paris stabbing", "https://feed.example/1", "<p>A man was stabbed</p>", "Tue, 28 Jan 2025 10:00:00 GMT")+
			rssItem("Paris bakery wins award", "https://feed.example/2", "Croissants", "Tue, 28 Jan 2025 11:00:00 GMT")+
			rssItem("Murder in Lyon", "https://feed.example/3", "Investigation ongoing", "Tue, 28 Jan 2025 12:00:00 GMT"))

	p := newTestRSS(t, feedXML)
	result := p.HomicideArticles(context.Background(), "Paris", "FR", 7)

	require.True(t, result.Success)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "Man killed in Paris stabbing", result.Articles[0].Title)
	assert.Equal(t, "Test Feed", result.Articles[0].Source)
	assert.Equal(t, "2025-01-28", result.Articles[0].Date)
	// HTML-теги вычищены из сниппета
	assert.Equal(t, "A man was stabbed", result.Articles[0].Snippet)
}

func TestRSS_FetchArticles_CutsOffOldEntries(t *testing.T) {
	feedXML := fmt.Sprintf(rssFeedTemplate,
		rssItem("Protest in Paris today", "https://feed.example/1", "March downtown", "Tue, 28 Jan 2025 10:00:00 GMT")+
			rssItem("Protest in Paris last year", "https://feed.example/2", "Old march", "Sun, 28 Jan 2024 10:00:00 GMT"))

	p := newTestRSS(t, feedXML)
	result := p.DemonstrationArticles(context.Background(), "Paris", "FR", 14)

	require.True(t, result.Success)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "Protest in Paris today", result.Articles[0].Title)
}

func TestRSS_FetchArticles_UnreachableFeedIsEmptySuccess(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	p := NewRSS(&config.Config{RSSTimeout: time.Second, UserAgent: "TestAgent/1.0"}, logger)
	p.feeds = map[string][]Feed{
		"FR": {{Name: "Dead Feed", URL: "http://127.0.0.1:1/feed.xml"}},
	}

	result := p.CrimeArticles(context.Background(), "Paris", "FR", 7)
	assert.True(t, result.Success)
	assert.Empty(t, result.Articles)
}

func TestMatchesKeywords(t *testing.T) {
	assert.True(t, matchesKeywords("Une manifestation bloque le centre", "demonstration"))
	assert.True(t, matchesKeywords("Robbery at the station", "crime"))
	assert.False(t, matchesKeywords("Sunny weather expected", "homicide"))
	assert.False(t, matchesKeywords("anything", "nonexistent-category"))
}
