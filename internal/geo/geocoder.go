package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/models"
)

const nominatimSearchURL = "https://nominatim.openstreetmap.org/search"

// Geocoder - клиент Nominatim с внутрипроцессной мемоизацией.
// Кеш живет до перезапуска процесса, вытеснения нет: множество уникальных
// городов за жизнь процесса заведомо мало.
type Geocoder struct {
	BaseURL string

	httpClient *http.Client
	userAgent  string
	logger     *logrus.Logger

	mu    sync.RWMutex
	cache map[string]*models.GeoPoint
}

// NewGeocoder создает геокодер
func NewGeocoder(cfg *config.Config, logger *logrus.Logger) *Geocoder {
	return &Geocoder{
		BaseURL: nominatimSearchURL,
		httpClient: &http.Client{
			Timeout: cfg.GeocodeTimeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
		cache:     make(map[string]*models.GeoPoint),
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode возвращает координаты города. nil без ошибки означает
// "не нашли / сервис недоступен" - вызывающий код продолжает без координат.
func (g *Geocoder) Geocode(ctx context.Context, city, country string) *models.GeoPoint {
	key := city + "|" + country

	g.mu.RLock()
	cached, ok := g.cache[key]
	g.mu.RUnlock()
	if ok {
		return cached
	}

	point := g.fetch(ctx, city, country)
	if point == nil {
		return nil
	}

	g.mu.Lock()
	g.cache[key] = point
	g.mu.Unlock()
	return point
}

func (g *Geocoder) fetch(ctx context.Context, city, country string) *models.GeoPoint {
	query := city
	if country != "" {
		query = city + ", " + country
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.WithFields(logrus.Fields{"city": city, "country": country}).
			WithError(err).Warn("Geocoding request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.WithFields(logrus.Fields{"city": city, "status": resp.StatusCode}).
			Warn("Geocoding returned non-OK status")
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		g.logger.Warn(fmt.Sprintf("Geocoding returned unparseable coordinates for %s", query))
		return nil
	}

	return &models.GeoPoint{
		Lat:         lat,
		Lon:         lon,
		DisplayName: results[0].DisplayName,
	}
}
