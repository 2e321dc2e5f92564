package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/intel"
	"github.com/tourops/security_intel_system/internal/models"
	"github.com/tourops/security_intel_system/internal/webhook"
)

// ConflictEventSource определяет контракт первичного структурированного
// провайдера событий (ACLED)
type ConflictEventSource interface {
	Configured() bool
	ViolentIncidents(ctx context.Context, country, city string, days int) models.IncidentResult
	Demonstrations(ctx context.Context, country, city string, days int) models.DemonstrationResult
	CountrySummary(ctx context.Context, country string) models.CountrySummary
}

// NewsSearchSource определяет контракт бесплатного новостного поиска (GDELT)
type NewsSearchSource interface {
	HomicideArticles(ctx context.Context, city, country string, days int, aliases []string) models.ArticleResult
	DemonstrationArticles(ctx context.Context, city, country string, days int, aliases []string) models.ArticleResult
	CrimeArticles(ctx context.Context, city, country string, days int, aliases []string) models.ArticleResult
}

// PaidNewsSource определяет контракт платного новостного провайдера (MediaStack)
type PaidNewsSource interface {
	Configured() bool
	IncidentArticles(ctx context.Context, city, country string, limit int) models.ArticleResult
	DemonstrationArticles(ctx context.Context, city, country string, limit int) models.ArticleResult
	SecurityArticles(ctx context.Context, city, country string, limit int) models.ArticleResult
}

// FeedSource определяет контракт агрегатора RSS-лент
type FeedSource interface {
	HomicideArticles(ctx context.Context, city, country string, days int) models.ArticleResult
	DemonstrationArticles(ctx context.Context, city, country string, days int) models.ArticleResult
	CrimeArticles(ctx context.Context, city, country string, days int) models.ArticleResult
}

// OfficialSource определяет контракт официальных государственных источников
type OfficialSource interface {
	DemonstrationAlerts(ctx context.Context, city, country string, lat, lon *float64) models.OfficialResult
}

// Geocoder определяет контракт геокодирования города
type Geocoder interface {
	Geocode(ctx context.Context, city, country string) *models.GeoPoint
}

// IntelCache определяет контракт для работы с кешем сводок
type IntelCache interface {
	Get(ctx context.Context, key string) (*models.IntelReport, error)
	GetStale(ctx context.Context, key string) (*models.IntelReport, error)
	Set(ctx context.Context, key string, report *models.IntelReport, ttl time.Duration) error
	SaveEvents(ctx context.Context, city, country string, events []models.Event) error
	Stats(ctx context.Context) (*models.CacheStats, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

// PipelineMetrics определяет контракт для метрик пайплайна
type PipelineMetrics interface {
	ProviderRequest(provider string, success bool)
	CacheLookup(result string)
	ReportBuilt(duration time.Duration, riskLevel string)
}

// SecurityIntelService определяет контракт бизнес-логики разведсводок
type SecurityIntelService interface {
	FullIntel(ctx context.Context, query models.IntelQuery) (*models.IntelReport, error)
	CountrySummary(ctx context.Context, country string) models.CountrySummary
	CacheStats(ctx context.Context) (*models.CacheStats, error)
	PurgeExpiredCache(ctx context.Context) (int64, error)
}

type securityIntelService struct {
	acled      ConflictEventSource
	gdelt      NewsSearchSource
	mediastack PaidNewsSource
	rss        FeedSource
	official   OfficialSource
	geocoder   Geocoder
	cache      IntelCache
	publisher  webhook.AlertPublisher
	logger     *logrus.Logger
	cfg        *config.Config
	metrics    PipelineMetrics
	now        func() time.Time
}

func NewSecurityIntelService(
	acled ConflictEventSource,
	gdelt NewsSearchSource,
	mediastack PaidNewsSource,
	rss FeedSource,
	official OfficialSource,
	geocoder Geocoder,
	cache IntelCache,
	publisher webhook.AlertPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
	metrics PipelineMetrics,
) SecurityIntelService {
	return &securityIntelService{
		acled:      acled,
		gdelt:      gdelt,
		mediastack: mediastack,
		rss:        rss,
		official:   official,
		geocoder:   geocoder,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		metrics:    metrics,
		now:        time.Now,
	}
}

// cacheKey строит нормализованный ключ кеша по запросу
func cacheKey(city, country string, incidentDays, demoDays int) string {
	return fmt.Sprintf("intel|%s|%s|%d-%d",
		strings.ToLower(strings.TrimSpace(city)),
		strings.ToLower(strings.TrimSpace(country)),
		incidentDays, demoDays,
	)
}

// FullIntel строит полную разведсводку по локации.
// Стадии: GEOCODING -> FETCHING -> DEDUP -> ENRICH -> CACHE_WRITE -> SCORING.
// Полный отказ всех провайдеров не является ошибкой: наружу уходит
// структурированный Unknown-ответ с предупреждением.
func (s *securityIntelService) FullIntel(ctx context.Context, query models.IntelQuery) (*models.IntelReport, error) {
	started := s.now()

	city := strings.TrimSpace(query.City)
	country := intel.ConvertISO2(strings.TrimSpace(query.Country))

	incidentDays := query.IncidentDays
	if incidentDays <= 0 {
		incidentDays = s.cfg.IncidentDays
	}
	demoDays := query.DemoDays
	if demoDays <= 0 {
		demoDays = s.cfg.DemoDays
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "intel",
		"method":  "FullIntel",
		"city":    city,
		"country": country,
	})
	log.Info("Building security intel report")

	key := cacheKey(city, country, incidentDays, demoDays)

	// Кеш опрашивается один раз в самом начале и при свежем попадании
	// обрывает весь пайплайн
	if query.UseCache {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Cache read failed, continuing with live fetch")
		}
		if cached != nil {
			s.metrics.CacheLookup("hit")
			cached.Meta.FromCache = true
			cached.Meta.OfflineMode = query.Offline
			log.Info("Serving intel report from cache")
			return cached, nil
		}
		s.metrics.CacheLookup("miss")
	}

	// Offline: живые запросы запрещены, допустимо только stale-чтение
	if query.Offline {
		stale, err := s.cache.GetStale(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Stale cache read failed in offline mode")
		}
		if stale != nil {
			s.metrics.CacheLookup("stale")
			stale.Meta.FromCache = true
			stale.Meta.StaleCache = true
			stale.Meta.OfflineMode = true
			log.Info("Serving stale intel report in offline mode")
			return stale, nil
		}
		log.Warn("Offline mode requested but cache is empty")
		return nil, models.ErrOfflineNoCache
	}

	// GEOCODING: best-effort, без координат сводка просто беднее
	var userLat, userLon *float64
	if point := s.geocoder.Geocode(ctx, city, country); point != nil {
		userLat, userLon = &point.Lat, &point.Lon
	}

	// FETCHING: категории независимы и опрашиваются параллельно,
	// fallback-цепочка внутри каждой категории строго последовательная
	var (
		incidents models.IncidentResult
		demos     models.DemonstrationResult
		wg        sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		incidents = s.fetchIncidents(ctx, city, country, incidentDays)
	}()
	go func() {
		defer wg.Done()
		demos = s.fetchDemonstrations(ctx, city, country, demoDays, userLat, userLon)
	}()
	wg.Wait()

	// Полный отказ обеих категорий: последняя попытка - stale из кеша
	if !incidents.Success && !demos.Success {
		stale, err := s.cache.GetStale(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Stale cache read failed")
		}
		if stale != nil {
			s.metrics.CacheLookup("stale")
			stale.Meta.FromCache = true
			stale.Meta.StaleCache = true
			stale.RiskAssessment.Warnings = append(stale.RiskAssessment.Warnings,
				"Serving stale cached data - live sources unavailable")
			log.Warn("All providers failed, serving stale cached report")
			return stale, nil
		}
	}

	// DEDUP + ENRICH
	incidentItems := s.prepareEvents(incidents.Incidents, userLat, userLon, incidents.Source)
	demoItems := s.prepareEvents(demos.Demonstrations, userLat, userLon, demos.Source)

	// Новостной контекст и анонсы будущих акций
	newsItems, newsSource := s.newsContext(ctx, city, country)
	plannedDemos := intel.DetectPlannedDemos(newsItems)

	// SCORING
	risk := intel.ScoreRisk(intel.RiskInput{
		IncidentCount:    incidents.TotalIncidents,
		FatalityCount:    incidents.TotalFatalities,
		DemoCount:        demos.TotalCount,
		RiotsCount:       demos.RiotsCount,
		Trend:            incidents.Trend,
		IncidentsSource:  incidents.Source,
		DemosSource:      demos.Source,
		IncidentsSuccess: incidents.Success,
		DemosSuccess:     demos.Success,
		IncidentDays:     incidentDays,
		DemoDays:         demoDays,
	})

	report := s.assembleReport(query, city, country, userLat, userLon,
		incidents, demos, incidentItems, demoItems, risk, newsItems, newsSource, plannedDemos)

	// CACHE_WRITE: только при успешном исходе с данными
	if query.UseCache && (incidents.Success || demos.Success) {
		ttl := s.cfg.NewsCacheTTL
		if incidents.Source == "ACLED" {
			ttl = s.cfg.PrimaryCacheTTL
		}
		if err := s.cache.Set(ctx, key, report, ttl); err != nil {
			log.WithError(err).Warn("Failed to write intel report to cache")
		}
		allEvents := append(append([]models.Event{}, incidentItems...), demoItems...)
		if err := s.cache.SaveEvents(ctx, city, country, allEvents); err != nil {
			log.WithError(err).Warn("Failed to persist intel events")
		}
	}

	// Алерт по High-риску уходит в очередь асинхронной доставки
	if risk.RiskLevel == "High" && s.publisher != nil {
		alert := webhook.NewRiskAlert(city, country, risk.RiskLevel, risk.RiskScore, risk.Drivers)
		if err := s.publisher.Publish(ctx, alert); err != nil {
			log.WithError(err).Error("Failed to publish high risk alert")
		}
	}

	s.metrics.ReportBuilt(s.now().Sub(started), risk.RiskLevel)
	log.WithFields(logrus.Fields{
		"risk_level": risk.RiskLevel,
		"incidents":  incidents.TotalIncidents,
		"demos":      demos.TotalCount,
	}).Info("Security intel report built")
	return report, nil
}

// fetchIncidents реализует fallback-цепочку насильственных инцидентов:
// ACLED -> MediaStack -> GDELT+RSS. Каждый следующий источник пробуется
// только после отказа предыдущего.
func (s *securityIntelService) fetchIncidents(ctx context.Context, city, country string, days int) models.IncidentResult {
	if s.acled.Configured() {
		result := s.acled.ViolentIncidents(ctx, country, city, days)
		s.metrics.ProviderRequest("acled", result.Success)
		if result.Success {
			result.Source = "ACLED"
			return result
		}
		s.logger.WithField("error", result.Err).Warn("ACLED failed, falling back to news sources")
	}

	normalized := intel.NormalizeCityCountry(city, country)

	var articles []models.Article
	sourceName := ""
	anySuccess := false

	if s.mediastack.Configured() {
		msResult := s.mediastack.IncidentArticles(ctx, normalized.City, normalized.Country, 50)
		s.metrics.ProviderRequest("mediastack", msResult.Success)
		if msResult.Success {
			anySuccess = true
		}
		if msResult.Success && len(msResult.Articles) > 0 {
			articles = append(articles, msResult.Articles...)
			sourceName = "MediaStack"
		}
	}

	if len(articles) == 0 {
		gdeltResult := s.gdelt.HomicideArticles(ctx, normalized.City, normalized.Country, days, normalized.Aliases)
		s.metrics.ProviderRequest("gdelt", gdeltResult.Success)
		if gdeltResult.Success {
			anySuccess = true
			articles = append(articles, gdeltResult.Articles...)
		}

		rssResult := s.rss.HomicideArticles(ctx, normalized.City, normalized.Country, days)
		s.metrics.ProviderRequest("rss", rssResult.Success)
		if rssResult.Success {
			anySuccess = true
			articles = append(articles, rssResult.Articles...)
		}
		sourceName = "GDELT+RSS"
	}

	unique := dedupeByURL(articles)

	events := make([]models.Event, 0, 15)
	for i, article := range unique {
		if i >= 15 {
			break
		}
		events = append(events, newsEvent(article, normalized.City, "News-based incident"))
	}

	return models.IncidentResult{
		Success:         anySuccess,
		Incidents:       events,
		TotalIncidents:  len(unique),
		TotalFatalities: 0,
		Trend:           models.TrendUnknown,
		Scope:           newsScope(unique, normalized.City),
		Source:          sourceName,
		Disclaimer:      "News-based count (not official statistics)",
	}
}

// fetchDemonstrations реализует fallback-цепочку демонстраций:
// ACLED -> MediaStack -> GDELT+RSS, с подмешиванием официальных анонсов
func (s *securityIntelService) fetchDemonstrations(ctx context.Context, city, country string, days int, lat, lon *float64) models.DemonstrationResult {
	if s.acled.Configured() {
		result := s.acled.Demonstrations(ctx, country, city, days)
		s.metrics.ProviderRequest("acled", result.Success)
		if result.Success {
			result.Source = "ACLED"
			return result
		}
		s.logger.WithField("error", result.Err).Warn("ACLED demos failed, falling back to news sources")
	}

	normalized := intel.NormalizeCityCountry(city, country)

	var articles []models.Article
	sourceName := ""
	anySuccess := false

	if s.mediastack.Configured() {
		msResult := s.mediastack.DemonstrationArticles(ctx, normalized.City, normalized.Country, 50)
		s.metrics.ProviderRequest("mediastack", msResult.Success)
		if msResult.Success {
			anySuccess = true
		}
		if msResult.Success && len(msResult.Articles) > 0 {
			articles = append(articles, msResult.Articles...)
			sourceName = "MediaStack"
		}
	}

	if len(articles) == 0 {
		gdeltResult := s.gdelt.DemonstrationArticles(ctx, normalized.City, normalized.Country, days, normalized.Aliases)
		s.metrics.ProviderRequest("gdelt", gdeltResult.Success)
		if gdeltResult.Success {
			anySuccess = true
			articles = append(articles, gdeltResult.Articles...)
		}

		rssResult := s.rss.DemonstrationArticles(ctx, normalized.City, normalized.Country, days)
		s.metrics.ProviderRequest("rss", rssResult.Success)
		if rssResult.Success {
			anySuccess = true
			articles = append(articles, rssResult.Articles...)
		}
		sourceName = "GDELT+RSS"
	}

	// Официальные анонсы дорог и собраний - best-effort дополнение
	official := s.official.DemonstrationAlerts(ctx, normalized.City, normalized.Country, lat, lon)
	s.metrics.ProviderRequest("official", official.Success)
	if official.Success {
		anySuccess = true
	}
	articles = append(articles, official.Announcements...)

	unique := dedupeByURL(articles)

	events := make([]models.Event, 0, 10)
	for i, article := range unique {
		if i >= 10 {
			break
		}
		events = append(events, newsEvent(article, normalized.City, "Protest (news-based)"))
	}

	return models.DemonstrationResult{
		Success:        anySuccess,
		Demonstrations: events,
		TotalCount:     len(unique),
		ProtestsCount:  len(unique),
		RiotsCount:     0,
		Scope:          newsScope(unique, normalized.City),
		Source:         sourceName,
		Disclaimer:     "News-based count (not official statistics)",
	}
}

// prepareEvents прогоняет сырые события через обогащение, дедупликацию
// и сортировку по близости
func (s *securityIntelService) prepareEvents(events []models.Event, lat, lon *float64, fallbackSource string) []models.Event {
	if len(events) > 10 {
		events = events[:10]
	}
	prepared := make([]models.Event, len(events))
	copy(prepared, events)

	intel.Enrich(prepared, lat, lon, fallbackSource)
	prepared = intel.Deduplicate(prepared)
	intel.SortEvents(prepared)
	return prepared
}

// newsContext собирает новостной фон: MediaStack при наличии ключа,
// иначе GDELT и RSS по общей преступности за неделю с дедупликацией по URL
func (s *securityIntelService) newsContext(ctx context.Context, city, country string) ([]models.Article, string) {
	if s.mediastack.Configured() {
		result := s.mediastack.SecurityArticles(ctx, city, country, 10)
		s.metrics.ProviderRequest("mediastack", result.Success)
		if result.Success && len(result.Articles) > 0 {
			return result.Articles, "MediaStack"
		}
	}

	var articles []models.Article

	gdeltResult := s.gdelt.CrimeArticles(ctx, city, country, 7, nil)
	s.metrics.ProviderRequest("gdelt", gdeltResult.Success)
	if gdeltResult.Success {
		articles = append(articles, gdeltResult.Articles...)
	}

	rssResult := s.rss.CrimeArticles(ctx, city, country, 7)
	s.metrics.ProviderRequest("rss", rssResult.Success)
	if rssResult.Success {
		articles = append(articles, rssResult.Articles...)
	}

	if len(articles) == 0 {
		return nil, "GDELT+RSS"
	}
	return dedupeByURL(articles), "GDELT+RSS"
}

func (s *securityIntelService) assembleReport(
	query models.IntelQuery,
	city, country string,
	userLat, userLon *float64,
	incidents models.IncidentResult,
	demos models.DemonstrationResult,
	incidentItems, demoItems []models.Event,
	risk models.RiskAssessment,
	newsItems []models.Article,
	newsSource string,
	plannedDemos []models.PlannedDemo,
) *models.IntelReport {
	overallConfidence := "Low"
	switch {
	case incidents.Source == "ACLED":
		overallConfidence = "High"
	case incidents.Success && demos.Success:
		overallConfidence = "Medium"
	}

	dataSources := collectDataSources(incidents.Source, demos.Source)
	isNewsBased := incidents.Source != "ACLED"

	display := strings.Join(dataSources, "+")
	if isNewsBased && !containsString(dataSources, "ACLED") {
		display += " (news-based)"
	}

	disclaimer := ""
	if isNewsBased {
		disclaimer = "Data is aggregated from news sources and may not reflect official statistics. " +
			"Events are filtered by keyword matching and may include false positives."
	}

	contextItems := newsItems
	if len(contextItems) > 5 {
		contextItems = contextItems[:5]
	}
	if contextItems == nil {
		contextItems = []models.Article{}
	}
	if plannedDemos == nil {
		plannedDemos = []models.PlannedDemo{}
	}

	return &models.IntelReport{
		Meta: models.ReportMeta{
			UpdatedAt:          s.now().Format(time.RFC3339),
			City:               city,
			Country:            country,
			UserLat:            userLat,
			UserLon:            userLon,
			ScopeUsed:          incidents.Scope,
			Confidence:         overallConfidence,
			OfflineMode:        query.Offline,
			PrimarySource:      incidents.Source,
			PrimaryAvailable:   s.acled.Configured(),
			DataSources:        dataSources,
			DataSourcesDisplay: display,
			IsNewsBased:        isNewsBased,
			Disclaimer:         disclaimer,
		},
		Incidents: models.IncidentsBlock{
			TotalCount:      incidents.TotalIncidents,
			TotalFatalities: incidents.TotalFatalities,
			Trend:           trendOrUnknown(incidents.Trend),
			Summary:         fmt.Sprintf("%d incident(s), %d fatalities", incidents.TotalIncidents, incidents.TotalFatalities),
			Items:           incidentItems,
			Scope:           incidents.Scope,
			Source:          incidents.Source,
			Disclaimer:      incidents.Disclaimer,
		},
		RiskAssessment: risk,
		Demonstrations: models.DemonstrationsBlock{
			TotalCount:    demos.TotalCount,
			ProtestsCount: demos.ProtestsCount,
			RiotsCount:    demos.RiotsCount,
			Summary:       fmt.Sprintf("%d demonstration(s)", demos.TotalCount),
			Items:         demoItems,
			PlannedDemos:  plannedDemos,
			Scope:         demos.Scope,
			Source:        demos.Source,
		},
		NewsContext: models.NewsContextBlock{
			Items:      contextItems,
			TotalCount: len(newsItems),
			Source:     newsSource,
		},
	}
}

// CountrySummary возвращает сводную статистику по стране от первичного провайдера
func (s *securityIntelService) CountrySummary(ctx context.Context, country string) models.CountrySummary {
	country = intel.ConvertISO2(strings.TrimSpace(country))
	summary := s.acled.CountrySummary(ctx, country)
	s.metrics.ProviderRequest("acled", summary.PrimaryAvailable)
	return summary
}

// CacheStats возвращает статистику кеша
func (s *securityIntelService) CacheStats(ctx context.Context) (*models.CacheStats, error) {
	stats, err := s.cache.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get cache stats: %w", err)
	}
	return stats, nil
}

// PurgeExpiredCache удаляет истекшие строки кеша
func (s *securityIntelService) PurgeExpiredCache(ctx context.Context) (int64, error) {
	purged, err := s.cache.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: could not purge expired cache: %w", err)
	}
	s.logger.WithField("purged", purged).Info("Expired cache entries purged")
	return purged, nil
}

func dedupeByURL(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if _, ok := seen[article.URL]; ok {
			continue
		}
		seen[article.URL] = struct{}{}
		unique = append(unique, article)
	}
	return unique
}

// newsScope определяет охват новостной выборки: если больше 30% статей
// упоминают город, данные считаются городскими
func newsScope(articles []models.Article, city string) string {
	cityLower := strings.ToLower(city)
	matches := 0
	for _, article := range articles {
		if strings.Contains(strings.ToLower(article.Title+" "+article.Snippet), cityLower) {
			matches++
		}
	}
	if len(articles) > 0 && float64(matches) > float64(len(articles))*0.3 {
		return "City"
	}
	return "Country (news-based)"
}

func newsEvent(article models.Article, city, eventType string) models.Event {
	title := article.Title
	if title == "" {
		title = article.Snippet
	}
	title = models.Truncate(title, 200)
	return models.Event{
		Title:     title,
		Datetime:  article.Date,
		EventType: eventType,
		Location:  city,
		Source:    article.Source,
		URL:       article.URL,
		Summary:   article.Snippet,
	}
}

func collectDataSources(incidentsSource, demosSource string) []string {
	var sources []string
	appendSource := func(name string) {
		if !containsString(sources, name) {
			sources = append(sources, name)
		}
	}

	switch incidentsSource {
	case "ACLED":
		appendSource("ACLED")
	case "MediaStack":
		appendSource("MediaStack")
	case "GDELT", "GDELT+RSS":
		appendSource("GDELT")
		appendSource("RSS")
	}
	switch demosSource {
	case "ACLED":
		appendSource("ACLED")
	case "MediaStack":
		appendSource("MediaStack")
	case "GDELT", "GDELT+RSS":
		appendSource("GDELT")
		appendSource("RSS")
	}

	if len(sources) == 0 {
		if incidentsSource != "" {
			sources = append(sources, incidentsSource)
		} else {
			sources = append(sources, "Unknown")
		}
	}
	return sources
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func trendOrUnknown(trend string) string {
	if trend == "" {
		return models.TrendUnknown
	}
	return trend
}
