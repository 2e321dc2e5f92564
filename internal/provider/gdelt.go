package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/models"
)

const gdeltBaseURL = "https://api.gdeltproject.org/api/v2/doc/doc"

// GDELT - бесплатный провайдер глобального новостного поиска (DOC 2.0 API).
// Ключ не требуется.
type GDELT struct {
	BaseURL string

	httpClient *http.Client
	userAgent  string
	logger     *logrus.Logger
}

// NewGDELT создает провайдера GDELT
func NewGDELT(cfg *config.Config, logger *logrus.Logger) *GDELT {
	return &GDELT{
		BaseURL: gdeltBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.GDELTTimeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// buildQuery собирает усиленный запрос:
// "Country" AND ("City" OR "Alias"...) AND ("kw1" OR "kw2"...)
func buildQuery(city, country string, aliases, keywords []string) string {
	var locationTerms []string

	if country != "" {
		locationTerms = append(locationTerms, `"`+country+`"`)
	}

	var cityTerms []string
	if city != "" {
		cityTerms = append(cityTerms, `"`+city+`"`)
		for _, alias := range aliases {
			if alias != "" && !strings.EqualFold(alias, city) {
				cityTerms = append(cityTerms, `"`+alias+`"`)
			}
		}
	}
	if len(cityTerms) > 0 {
		locationTerms = append(locationTerms, "("+strings.Join(cityTerms, " OR ")+")")
	}

	locationQuery := strings.Join(locationTerms, " AND ")

	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		quoted = append(quoted, `"`+kw+`"`)
	}
	keywordQuery := "(" + strings.Join(quoted, " OR ") + ")"

	switch {
	case locationQuery != "" && len(keywords) > 0:
		return locationQuery + " AND " + keywordQuery
	case locationQuery != "":
		return locationQuery
	default:
		return keywordQuery
	}
}

// timespanFor отображает окно в днях на ближайший поддерживаемый GDELT бакет
func timespanFor(days int) string {
	switch {
	case days <= 1:
		return "24h"
	case days <= 3:
		return "3d"
	case days <= 7:
		return "7d"
	case days <= 30:
		return "1m"
	case days <= 90:
		return "3m"
	default:
		return "1y"
	}
}

type gdeltArticle struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	SeenDate string `json:"seendate"`
	Domain   string `json:"domain"`
	Language string `json:"language"`
}

type gdeltResponse struct {
	Articles []gdeltArticle `json:"articles"`
}

func parseGDELTArticles(data gdeltResponse) []models.Article {
	var articles []models.Article
	for _, a := range data.Articles {
		title := strings.TrimSpace(a.Title)
		if title == "" || a.URL == "" {
			continue
		}
		// seendate приходит компактным: 20250128T120000Z
		date := ""
		if len(a.SeenDate) >= 8 {
			date = a.SeenDate[:4] + "-" + a.SeenDate[4:6] + "-" + a.SeenDate[6:8]
		}
		snippet := models.Truncate(title, 200)
		lang := a.Language
		if lang == "" {
			lang = "en"
		}
		articles = append(articles, models.Article{
			Title:    title,
			URL:      a.URL,
			Date:     date,
			Source:   a.Domain,
			Snippet:  snippet,
			Language: lang,
		})
	}
	return articles
}

// dedupeArticles убирает дубли по URL и по усеченному префиксу заголовка
func dedupeArticles(articles []models.Article) []models.Article {
	seenURLs := make(map[string]struct{})
	seenTitles := make(map[string]struct{})
	var unique []models.Article

	for _, a := range articles {
		titleKey := models.Truncate(strings.ToLower(a.Title), 50)
		if _, ok := seenURLs[a.URL]; ok {
			continue
		}
		if _, ok := seenTitles[titleKey]; ok {
			continue
		}
		seenURLs[a.URL] = struct{}{}
		seenTitles[titleKey] = struct{}{}
		unique = append(unique, a)
	}
	return unique
}

// FetchArticles запрашивает статьи по локации и набору ключевых слов
func (p *GDELT) FetchArticles(ctx context.Context, city, country string, keywords []string, days, maxRecords int, aliases []string) models.ArticleResult {
	params := url.Values{}
	params.Set("query", buildQuery(city, country, aliases, keywords))
	params.Set("mode", "artlist")
	params.Set("maxrecords", strconv.Itoa(maxRecords))
	params.Set("format", "json")
	params.Set("timespan", timespanFor(days))
	params.Set("sort", "DateDesc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("GDELT request build error: %v", err)}
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return models.ArticleResult{Success: false, Err: "GDELT request timed out"}
		}
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("Network error: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("GDELT API returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("GDELT read error: %v", err)}
	}

	// GDELT иногда отдает пустое тело или не-JSON при отсутствии результатов;
	// это считается успешным пустым ответом
	text := strings.TrimSpace(string(body))
	if text == "" {
		return models.ArticleResult{Success: true}
	}
	var data gdeltResponse
	if err := json.Unmarshal(body, &data); err != nil {
		p.logger.WithField("provider", "gdelt").Debug("Non-JSON GDELT body treated as empty result")
		return models.ArticleResult{Success: true}
	}

	articles := dedupeArticles(parseGDELTArticles(data))
	return models.ArticleResult{Success: true, Articles: articles}
}

// HomicideArticles запрашивает статьи о насильственных инцидентах
func (p *GDELT) HomicideArticles(ctx context.Context, city, country string, days int, aliases []string) models.ArticleResult {
	return p.FetchArticles(ctx, city, country, AllKeywords(HomicideKeywords), days, 50, aliases)
}

// DemonstrationArticles запрашивает статьи о демонстрациях и протестах
func (p *GDELT) DemonstrationArticles(ctx context.Context, city, country string, days int, aliases []string) models.ArticleResult {
	return p.FetchArticles(ctx, city, country, AllKeywords(DemonstrationKeywords), days, 50, aliases)
}

// CrimeArticles запрашивает статьи об общей преступности
func (p *GDELT) CrimeArticles(ctx context.Context, city, country string, days int, aliases []string) models.ArticleResult {
	return p.FetchArticles(ctx, city, country, AllKeywords(CrimeKeywords), days, 50, aliases)
}
