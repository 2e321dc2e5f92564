package provider

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/security_intel_system/internal/config"
)

func newTestGDELT(t *testing.T, handler http.HandlerFunc) *GDELT {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	p := NewGDELT(&config.Config{GDELTTimeout: 5 * time.Second, UserAgent: "TestAgent/1.0"}, logger)
	p.BaseURL = server.URL
	return p
}

func TestBuildQuery(t *testing.T) {
	q := buildQuery("Paris", "France", []string{"Paname", "paris"}, []string{"murder", "shooting"})
	assert.Equal(t, `"France" AND ("Paris" OR "Paname") AND ("murder" OR "shooting")`, q)

	// Без города остается только страна и ключевые слова
	q = buildQuery("", "France", nil, []string{"protest"})
	assert.Equal(t, `"France" AND ("protest")`, q)

	// Без локации запрос состоит из одних ключевых слов
	q = buildQuery("", "", nil, []string{"protest"})
	assert.Equal(t, `("protest")`, q)
}

func TestTimespanFor(t *testing.T) {
	assert.Equal(t, "24h", timespanFor(1))
	assert.Equal(t, "3d", timespanFor(3))
	assert.Equal(t, "7d", timespanFor(7))
	assert.Equal(t, "1m", timespanFor(30))
	assert.Equal(t, "3m", timespanFor(90))
	assert.Equal(t, "1y", timespanFor(365))
}

func TestGDELT_FetchArticles_Success(t *testing.T) {
	body := `{"articles": [
		{"title": "Shooting in Paris suburb", "url": "https://example.com/a", "seendate": "20250128T120000Z", "domain": "example.com", "language": "English"},
		{"title": "Shooting in Paris suburb", "url": "https://example.com/b", "seendate": "20250128T130000Z", "domain": "example.com"},
		{"title": "", "url": "https://example.com/c"}
	]}`

	var gotUA string
	p := newTestGDELT(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "artlist", r.URL.Query().Get("mode"))
		assert.Equal(t, "1m", r.URL.Query().Get("timespan"))
		w.Write([]byte(body))
	})

	result := p.HomicideArticles(context.Background(), "Paris", "France", 30, nil)

	require.True(t, result.Success)
	// Дубль по заголовку и запись без заголовка отброшены
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "Shooting in Paris suburb", result.Articles[0].Title)
	assert.Equal(t, "2025-01-28", result.Articles[0].Date)
	assert.Equal(t, "example.com", result.Articles[0].Source)
	assert.Equal(t, "TestAgent/1.0", gotUA)
}

func TestGDELT_FetchArticles_EmptyBodyIsSuccess(t *testing.T) {
	p := newTestGDELT(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(""))
	})

	result := p.CrimeArticles(context.Background(), "Paris", "France", 7, nil)
	assert.True(t, result.Success)
	assert.Empty(t, result.Articles)
}

func TestGDELT_FetchArticles_NonJSONBodyIsSuccess(t *testing.T) {
	p := newTestGDELT(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Timespan is invalid."))
	})

	result := p.DemonstrationArticles(context.Background(), "Paris", "France", 14, nil)
	assert.True(t, result.Success)
	assert.Empty(t, result.Articles)
}

func TestGDELT_FetchArticles_ServerError(t *testing.T) {
	p := newTestGDELT(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result := p.HomicideArticles(context.Background(), "Paris", "France", 30, nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err, "502")
}

func TestParseGDELTArticles_MultibyteSnippetStaysValidUTF8(t *testing.T) {
	// Французский заголовок длиннее 200 рун: усечение сниппета не должно
	// разрезать "é" посередине
	title := strings.Repeat("a", 199) + "événement répété"
	articles := parseGDELTArticles(gdeltResponse{Articles: []gdeltArticle{
		{Title: title, URL: "https://a.example/long", SeenDate: "20250128T120000Z"},
	}})

	require.Len(t, articles, 1)
	assert.True(t, utf8.ValidString(articles[0].Snippet))
	assert.Equal(t, 200, utf8.RuneCountInString(articles[0].Snippet))
}

func TestDedupeArticles(t *testing.T) {
	articles := parseGDELTArticles(gdeltResponse{Articles: []gdeltArticle{
		{Title: "Same story", URL: "https://a.example/1"},
		{Title: "Same story", URL: "https://a.example/2"},
		{Title: "Other story", URL: "https://a.example/1"},
		{Title: "Fresh story", URL: "https://a.example/3"},
	}})

	unique := dedupeArticles(articles)
	require.Len(t, unique, 2)
	assert.Equal(t, "Same story", unique[0].Title)
	assert.Equal(t, "Fresh story", unique[1].Title)
}
