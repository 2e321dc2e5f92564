package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/models"
)

const (
	policeUKBaseURL = "https://data.police.uk/api/crimes-street/all-crime"
	govUKSearchURL  = "https://www.gov.uk/search/news-and-communications.json"
)

// Паттерны анонсов демонстраций в официальных сообщениях
var officialDemoPatterns = map[string][]*regexp.Regexp{
	"fr": compilePatterns("manifestation", "rassemblement", "arrêté", "fermeture", "cortège"),
	"en": compilePatterns("demonstration", "protest", "road closure", "public gathering"),
	"de": compilePatterns("demonstration", "kundgebung", "sperrung", "versammlung"),
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

var officialCountryAliases = map[string]string{
	"FRANCE": "FR", "GERMANY": "DE", "DEUTSCHLAND": "DE",
	"UNITED KINGDOM": "UK", "ENGLAND": "UK", "GB": "UK",
}

// Official - best-effort провайдер официальных государственных источников.
// Никогда не является единственным источником истины; при недоступности
// честно сообщает "sources unavailable".
type Official struct {
	PoliceUKURL string
	GovUKURL    string

	httpClient *http.Client
	userAgent  string
	logger     *logrus.Logger
}

// NewOfficial создает провайдера официальных источников
func NewOfficial(cfg *config.Config, logger *logrus.Logger) *Official {
	return &Official{
		PoliceUKURL: policeUKBaseURL,
		GovUKURL:    govUKSearchURL,
		httpClient: &http.Client{
			Timeout: cfg.OfficialTimeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

func officialCountryCode(country string) string {
	upper := strings.ToUpper(strings.TrimSpace(country))
	if code, ok := officialCountryAliases[upper]; ok {
		return code
	}
	if len(upper) > 2 {
		return upper[:2]
	}
	return upper
}

func (p *Official) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

type policeUKCrime struct {
	Category string `json:"category"`
}

// fetchUKPoliceData агрегирует уличную преступность Police.uk по категориям.
// Требует координаты; без них источник пропускается.
func (p *Official) fetchUKPoliceData(ctx context.Context, lat, lon *float64) ([]models.CrimeCount, string) {
	if lat == nil || lon == nil {
		return nil, "Coordinates required for UK Police data"
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", *lat))
	params.Set("lng", fmt.Sprintf("%f", *lon))

	var crimes []policeUKCrime
	if err := p.getJSON(ctx, p.PoliceUKURL+"?"+params.Encode(), &crimes); err != nil {
		return nil, "Police.uk error: " + err.Error()
	}

	summary := make(map[string]int)
	var order []string
	for i, crime := range crimes {
		if i >= 100 {
			break
		}
		category := crime.Category
		if category == "" {
			category = "unknown"
		}
		if _, ok := summary[category]; !ok {
			order = append(order, category)
		}
		summary[category]++
	}

	counts := make([]models.CrimeCount, 0, len(order))
	for _, category := range order {
		counts = append(counts, models.CrimeCount{Category: category, Count: summary[category]})
	}
	return counts, ""
}

type govUKResult struct {
	Title           string `json:"title"`
	Link            string `json:"link"`
	Description     string `json:"description"`
	PublicTimestamp string `json:"public_timestamp"`
}

type govUKResponse struct {
	Results []govUKResult `json:"results"`
}

// searchGovUK ищет официальные сообщения GOV.UK по городу
func (p *Official) searchGovUK(ctx context.Context, city string) ([]models.Article, bool) {
	params := url.Values{}
	params.Set("keywords", city+" security")
	params.Set("count", "10")

	var data govUKResponse
	if err := p.getJSON(ctx, p.GovUKURL+"?"+params.Encode(), &data); err != nil {
		return nil, false
	}

	var articles []models.Article
	for _, r := range data.Results {
		date := ""
		if len(r.PublicTimestamp) >= 10 {
			date = r.PublicTimestamp[:10]
		}
		snippet := models.Truncate(r.Description, 200)
		articles = append(articles, models.Article{
			Title:   r.Title,
			URL:     "https://www.gov.uk" + r.Link,
			Date:    date,
			Source:  "GOV.UK",
			Snippet: snippet,
		})
	}
	return articles, true
}

// FetchOfficial опрашивает официальные источники по стране.
// Деградирует мягко: при недоступности возвращает success=false с пометкой.
func (p *Official) FetchOfficial(ctx context.Context, city, country string, lat, lon *float64) models.OfficialResult {
	result := models.OfficialResult{
		CrimeData:     []models.CrimeCount{},
		Announcements: []models.Article{},
	}

	if officialCountryCode(country) == "UK" {
		crimeData, errStr := p.fetchUKPoliceData(ctx, lat, lon)
		result.SourcesChecked = append(result.SourcesChecked, "Police.uk")
		if errStr == "" {
			result.CrimeData = crimeData
			result.SourcesAvailable = append(result.SourcesAvailable, models.SourceRef{
				Name: "Police.uk", URL: "https://data.police.uk/",
			})
			result.Success = true
		}

		announcements, ok := p.searchGovUK(ctx, city)
		result.SourcesChecked = append(result.SourcesChecked, "GOV.UK")
		if ok {
			result.Announcements = announcements
			result.SourcesAvailable = append(result.SourcesAvailable, models.SourceRef{
				Name: "GOV.UK", URL: "https://www.gov.uk/",
			})
			result.Success = true
		}
	}

	if !result.Success {
		result.Err = "Official sources unavailable for this location. Using alternative sources."
		result.Note = "Official sources unavailable"
	} else {
		result.Note = "Official sources checked"
	}
	return result
}

// DemonstrationAlerts фильтрует официальные сообщения по паттернам анонсов
// демонстраций. Best-effort: пустой результат - штатная ситуация.
func (p *Official) DemonstrationAlerts(ctx context.Context, city, country string, lat, lon *float64) models.OfficialResult {
	official := p.FetchOfficial(ctx, city, country, lat, lon)

	var demos []models.Article
	for _, announcement := range official.Announcements {
		text := strings.ToLower(announcement.Title + " " + announcement.Snippet)
		matched := false
		for _, patterns := range officialDemoPatterns {
			for _, pattern := range patterns {
				if pattern.MatchString(text) {
					demos = append(demos, announcement)
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}

	official.Announcements = demos
	official.Success = len(demos) > 0 || official.Success
	return official
}
