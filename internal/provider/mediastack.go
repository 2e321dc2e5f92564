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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/models"
)

const mediaStackBaseURL = "http://api.mediastack.com/v1/news"

// Наборы ключевых слов платного провайдера (однофразовый поиск,
// используются только верхние слова списка)
var (
	mediaStackSecurityKeywords = []string{
		"crime", "attack", "violence", "murder", "assault", "robbery",
		"protest", "demonstration", "riot", "unrest", "strike",
		"terrorism", "explosion", "shooting", "stabbing", "kidnapping",
	}
	mediaStackIncidentKeywords = []string{
		"crime", "violence", "attack", "shooting", "murder",
		"assault", "stabbing", "killed", "death", "fatal",
	}
	mediaStackDemoKeywords = []string{
		"protest", "strike", "demonstration", "rally", "march",
		"riot", "unrest", "blockade", "uprising",
	}
)

// MediaStack - платный новостной провайдер (опциональный ключ).
// Различает 401 (плохой ключ), 422 (квота/параметры) и прочие статусы.
type MediaStack struct {
	BaseURL string

	apiKey     string
	httpClient *http.Client
	userAgent  string
	logger     *logrus.Logger
}

// NewMediaStack создает провайдера MediaStack
func NewMediaStack(cfg *config.Config, logger *logrus.Logger) *MediaStack {
	return &MediaStack{
		BaseURL: mediaStackBaseURL,
		apiKey:  cfg.MediaStackAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.MediaStackTimeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Configured проверяет наличие API ключа
func (p *MediaStack) Configured() bool {
	return p.apiKey != ""
}

type mediaStackArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

type mediaStackResponse struct {
	Data  []mediaStackArticle `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseMediaStackDate(publishedAt string) string {
	if publishedAt == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, strings.Replace(publishedAt, "Z", "+00:00", 1)); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02T15:04:05-07:00", publishedAt); err == nil {
		return t.Format("2006-01-02")
	}
	if len(publishedAt) >= 10 {
		return publishedAt[:10]
	}
	return ""
}

func parseMediaStackArticles(data mediaStackResponse) []models.Article {
	var articles []models.Article
	for _, a := range data.Data {
		title := strings.TrimSpace(a.Title)
		if title == "" || a.URL == "" {
			continue
		}
		lang := a.Language
		if lang == "" {
			lang = "en"
		}
		articles = append(articles, models.Article{
			Title:       title,
			Description: strings.TrimSpace(a.Description),
			URL:         a.URL,
			Date:        parseMediaStackDate(a.PublishedAt),
			Source:      a.Source,
			Category:    a.Category,
			Language:    lang,
		})
	}
	return articles
}

// filterByCityMention оставляет статьи, упоминающие город в заголовке или описании
func filterByCityMention(articles []models.Article, city string) []models.Article {
	if city == "" {
		return articles
	}
	cityLower := strings.ToLower(city)
	var filtered []models.Article
	for _, a := range articles {
		text := strings.ToLower(a.Title + " " + a.Description)
		if strings.Contains(text, cityLower) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FetchNews выполняет однофразовый поиск "<локация> <ключевое слово>"
func (p *MediaStack) FetchNews(ctx context.Context, keywords []string, country, city string, limit int) models.ArticleResult {
	if !p.Configured() {
		return models.ArticleResult{Success: false, Err: "MediaStack API key not configured"}
	}

	location := city
	if location == "" {
		location = country
	}
	if location == "" {
		return models.ArticleResult{Success: false, Err: "City or country required for MediaStack search"}
	}

	keywordPhrase := location
	if len(keywords) > 0 {
		keywordPhrase = location + " " + keywords[0]
	}

	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("access_key", p.apiKey)
	params.Set("keywords", keywordPhrase)
	params.Set("languages", "en")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "published_desc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("MediaStack request build error: %v", err)}
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return models.ArticleResult{Success: false, Err: "MediaStack request timed out"}
		}
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("Network error: %v", err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// разбор ниже
	case http.StatusUnauthorized:
		return models.ArticleResult{Success: false, Err: "MediaStack API key is invalid"}
	case http.StatusUnprocessableEntity:
		return models.ArticleResult{Success: false, Err: "MediaStack request limit exceeded or invalid parameters"}
	default:
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("MediaStack API returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("MediaStack read error: %v", err)}
	}

	var data mediaStackResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return models.ArticleResult{Success: false, Err: fmt.Sprintf("MediaStack malformed response: %v", err)}
	}
	if data.Error != nil {
		return models.ArticleResult{Success: false, Err: "MediaStack error: " + data.Error.Message}
	}

	return models.ArticleResult{Success: true, Articles: parseMediaStackArticles(data)}
}

// IncidentArticles запрашивает статьи о насильственных инцидентах
func (p *MediaStack) IncidentArticles(ctx context.Context, city, country string, limit int) models.ArticleResult {
	return p.FetchNews(ctx, mediaStackIncidentKeywords[:3], country, city, limit)
}

// DemonstrationArticles запрашивает статьи о протестах и демонстрациях
func (p *MediaStack) DemonstrationArticles(ctx context.Context, city, country string, limit int) models.ArticleResult {
	return p.FetchNews(ctx, mediaStackDemoKeywords[:3], country, city, limit)
}

// SecurityArticles запрашивает общий новостной security-контекст
// с пост-фильтрацией по упоминанию города
func (p *MediaStack) SecurityArticles(ctx context.Context, city, country string, limit int) models.ArticleResult {
	result := p.FetchNews(ctx, mediaStackSecurityKeywords[:3], country, city, limit)
	if result.Success && city != "" {
		result.Articles = filterByCityMention(result.Articles, city)
	}
	return result
}
