package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Category - операционная категория события
type Category string

const (
	CategoryHomicide Category = "HOMICIDE"
	CategoryProtest  Category = "PROTEST"
	CategoryRiot     Category = "RIOT"
	CategoryAccident Category = "SERIOUS ACCIDENT"
	CategoryUnknown  Category = "UNKNOWN"
)

// Trend values compared between the two halves of a lookback window.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
	TrendUnknown    = "unknown"
)

// Event представляет одно зафиксированное происшествие, протест или демонстрацию.
// Datetime хранится как ISO-8601 строка; пустая строка означает неизвестную дату.
type Event struct {
	Title          string   `json:"title"`
	Datetime       string   `json:"datetime"`
	EventType      string   `json:"event_type,omitempty"`
	SubEventType   string   `json:"sub_event_type,omitempty"`
	Category       Category `json:"category"`
	Location       string   `json:"location"`
	Admin1         string   `json:"admin1,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Source         string   `json:"source"`
	URL            string   `json:"url,omitempty"`
	Actor          string   `json:"actor,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Fatalities     int      `json:"fatalities"`
	Confidence     float64  `json:"confidence"`
	DistanceKm     *float64 `json:"distance_km,omitempty"`
	ProximityLevel string   `json:"proximity_level,omitempty"`
	EventHash      string   `json:"event_hash,omitempty"`
}

// Day возвращает календарный день события (YYYY-MM-DD), пустую строку если дата неизвестна
func (e *Event) Day() string {
	if len(e.Datetime) >= 10 {
		return e.Datetime[:10]
	}
	return ""
}

// EventHash вычисляет стабильный контентный хеш события.
// Детерминирован по (title, datetime, source, url) - одинаковые входы всегда
// дают одинаковый хеш, что обеспечивает идемпотентный upsert в кеш.
func EventHash(title, datetime, source, url string) string {
	base := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%s|%s|%s|%s", title, datetime, source, url)))
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])
}

// Truncate обрезает строку до limit рун. Срез по рунам, а не по байтам:
// многобайтовые символы в заголовках не разрываются посередине.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// Article - сырая новостная запись, полученная от новостного провайдера
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	Source      string `json:"source"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
}

// GeoPoint - результат геокодирования
type GeoPoint struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name,omitempty"`
}
