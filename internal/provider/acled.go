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

const acledBaseURL = "https://api.acleddata.com/acled/read"

// Допустимые типы событий по классам запроса
var (
	acledViolentTypes       = []string{"Battles", "Explosions/Remote violence", "Violence against civilians"}
	acledDemonstrationTypes = []string{"Protests", "Riots"}
)

// ACLED - первичный структурированный провайдер конфликтных событий.
// Требует креденшелы; без них пропускается и цепочка уходит в fallback.
type ACLED struct {
	BaseURL string

	email      string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
	now        func() time.Time
}

// NewACLED создает провайдера ACLED
func NewACLED(cfg *config.Config, logger *logrus.Logger) *ACLED {
	return &ACLED{
		BaseURL: acledBaseURL,
		email:   cfg.ACLEDEmail,
		apiKey:  cfg.ACLEDAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.ACLEDTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Configured проверяет наличие креденшелов
func (p *ACLED) Configured() bool {
	return p.email != "" && p.apiKey != ""
}

// flexInt разбирает числовые поля, которые ACLED отдает то числом, то строкой
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(v)
	return nil
}

// flexFloat аналогично для координат
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

type acledEvent struct {
	EventIDCnty  string    `json:"event_id_cnty"`
	EventDate    string    `json:"event_date"`
	EventType    string    `json:"event_type"`
	SubEventType string    `json:"sub_event_type"`
	Location     string    `json:"location"`
	Admin1       string    `json:"admin1"`
	Admin2       string    `json:"admin2"`
	Admin3       string    `json:"admin3"`
	Fatalities   flexInt   `json:"fatalities"`
	Notes        string    `json:"notes"`
	Source       string    `json:"source"`
	SourceScale  string    `json:"source_scale"`
	Latitude     flexFloat `json:"latitude"`
	Longitude    flexFloat `json:"longitude"`
	Actor1       string    `json:"actor1"`
	Actor2       string    `json:"actor2"`
}

type acledResponse struct {
	Success *bool        `json:"success"`
	Data    []acledEvent `json:"data"`
	Count   int          `json:"count"`
	Error   string       `json:"error"`
}

// request выполняет один запрос к ACLED API.
// Ошибки не пробрасываются: возвращается пустой список и текст ошибки.
func (p *ACLED) request(ctx context.Context, params url.Values) ([]acledEvent, string) {
	if !p.Configured() {
		return nil, "ACLED API not configured. Set ACLED_EMAIL and ACLED_API_KEY."
	}

	params.Set("email", p.email)
	params.Set("key", p.apiKey)
	params.Set("_format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Sprintf("ACLED request build error: %v", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, "ACLED API timeout"
		}
		p.logger.WithError(err).Error("ACLED request error")
		return nil, err.Error()
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// разбор ниже
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, "ACLED authentication failed. Check your API key."
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, "ACLED rate limit exceeded."
	default:
		return nil, fmt.Sprintf("ACLED API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Sprintf("ACLED read error: %v", err)
	}

	var parsed acledResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Sprintf("ACLED malformed response: %v", err)
	}
	if parsed.Success != nil && !*parsed.Success {
		if parsed.Error != "" {
			return nil, parsed.Error
		}
		return nil, "Unknown ACLED error"
	}
	return parsed.Data, ""
}

func (p *ACLED) dateRange(days int) string {
	end := p.now()
	start := end.AddDate(0, 0, -days)
	return start.Format("2006-01-02") + ":" + end.Format("2006-01-02")
}

// filterByCity пост-фильтрует события по подстроке города в административных
// полях. Если городская выборка пуста, возвращается полная страновая выборка
// с соответствующей пометкой scope.
func filterByCity(events []acledEvent, city string) ([]acledEvent, string) {
	if city == "" {
		return events, "Country"
	}
	cityLower := strings.ToLower(city)
	var cityEvents []acledEvent
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Admin1), cityLower) ||
			strings.Contains(strings.ToLower(e.Admin2), cityLower) ||
			strings.Contains(strings.ToLower(e.Admin3), cityLower) ||
			strings.Contains(strings.ToLower(e.Location), cityLower) {
			cityEvents = append(cityEvents, e)
		}
	}
	if len(cityEvents) > 0 {
		return cityEvents, "City"
	}
	return events, "Country (city-level data not available)"
}

func (p *ACLED) toEvent(e acledEvent) models.Event {
	ev := models.Event{
		Title:        e.Notes,
		Datetime:     e.EventDate,
		EventType:    e.EventType,
		SubEventType: e.SubEventType,
		Location:     e.Location,
		Admin1:       e.Admin1,
		Source:       e.Source,
		Actor:        e.Actor1,
		Fatalities:   int(e.Fatalities),
	}
	ev.Title = models.Truncate(ev.Title, 200)
	if e.Latitude != 0 || e.Longitude != 0 {
		lat := float64(e.Latitude)
		lon := float64(e.Longitude)
		ev.Latitude = &lat
		ev.Longitude = &lon
	}
	ev.EventHash = models.EventHash(ev.Title, ev.Datetime, ev.Source, ev.URL)
	return ev
}

// ViolentIncidents запрашивает насильственные инциденты по стране за окно дней
func (p *ACLED) ViolentIncidents(ctx context.Context, country, city string, days int) models.IncidentResult {
	params := url.Values{}
	params.Set("country", country)
	params.Set("event_date_where", "BETWEEN")
	params.Set("event_date", p.dateRange(days))
	params.Set("event_type", strings.Join(acledViolentTypes, "|"))
	params.Set("limit", "500")

	events, errStr := p.request(ctx, params)
	if errStr != "" {
		return models.IncidentResult{
			Success: false,
			Err:     errStr,
			Trend:   models.TrendUnknown,
			Scope:   "N/A",
			Source:  "ACLED",
		}
	}

	events, scope := filterByCity(events, city)

	totalFatalities := 0
	for _, e := range events {
		totalFatalities += int(e.Fatalities)
	}

	var incidents []models.Event
	for i, e := range events {
		if i >= 20 {
			break
		}
		incidents = append(incidents, p.toEvent(e))
	}

	return models.IncidentResult{
		Success:         true,
		Incidents:       incidents,
		TotalIncidents:  len(events),
		TotalFatalities: totalFatalities,
		Trend:           p.calculateTrend(events, days),
		Scope:           scope,
		Source:          "ACLED",
	}
}

// Demonstrations запрашивает демонстрации и протесты по стране за окно дней
func (p *ACLED) Demonstrations(ctx context.Context, country, city string, days int) models.DemonstrationResult {
	params := url.Values{}
	params.Set("country", country)
	params.Set("event_date_where", "BETWEEN")
	params.Set("event_date", p.dateRange(days))
	params.Set("event_type", strings.Join(acledDemonstrationTypes, "|"))
	params.Set("limit", "500")

	events, errStr := p.request(ctx, params)
	if errStr != "" {
		return models.DemonstrationResult{
			Success: false,
			Err:     errStr,
			Scope:   "N/A",
			Source:  "ACLED",
		}
	}

	events, scope := filterByCity(events, city)

	var demos []models.Event
	protests, riots := 0, 0
	for _, e := range events {
		switch e.EventType {
		case "Protests":
			protests++
		case "Riots":
			riots++
		}
	}
	for i, e := range events {
		if i >= 15 {
			break
		}
		ev := p.toEvent(e)
		if e.EventType == "Riots" {
			ev.Category = models.CategoryRiot
		} else {
			ev.Category = models.CategoryProtest
		}
		demos = append(demos, ev)
	}

	return models.DemonstrationResult{
		Success:        true,
		Demonstrations: demos,
		TotalCount:     len(events),
		ProtestsCount:  protests,
		RiotsCount:     riots,
		Scope:          scope,
		Source:         "ACLED",
	}
}

// CountrySummary - сводка по стране без городского фильтра
func (p *ACLED) CountrySummary(ctx context.Context, country string) models.CountrySummary {
	incidents := p.ViolentIncidents(ctx, country, "", 30)
	demos := p.Demonstrations(ctx, country, "", 14)

	return models.CountrySummary{
		Country:             country,
		ViolentIncidents30d: incidents.TotalIncidents,
		Fatalities30d:       incidents.TotalFatalities,
		Demonstrations14d:   demos.TotalCount,
		Trend:               incidents.Trend,
		PrimaryAvailable:    incidents.Success,
	}
}

// calculateTrend сравнивает плотность событий в первой и второй половине окна.
// Отношение > 1.3 - рост, < 0.7 - спад, иначе stable. Пустая первая половина
// дает increasing только при непустой второй.
func (p *ACLED) calculateTrend(events []acledEvent, days int) string {
	if len(events) < 2 {
		return models.TrendStable
	}

	midDate := p.now().AddDate(0, 0, -days/2)

	firstHalf, secondHalf := 0, 0
	for _, e := range events {
		eventDate, err := time.Parse("2006-01-02", e.EventDate)
		if err != nil {
			continue
		}
		if !eventDate.Before(midDate) {
			secondHalf++
		} else {
			firstHalf++
		}
	}

	if firstHalf == 0 {
		if secondHalf > 0 {
			return models.TrendIncreasing
		}
		return models.TrendStable
	}

	ratio := float64(secondHalf) / float64(firstHalf)
	switch {
	case ratio > 1.3:
		return models.TrendIncreasing
	case ratio < 0.7:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}
