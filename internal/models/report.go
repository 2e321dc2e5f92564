package models

import "errors"

// ErrOfflineNoCache возвращается оркестратором, когда запрошен offline-режим,
// а в кеше нет данных по этому ключу.
var ErrOfflineNoCache = errors.New("offline mode - no cached data available")

// IntelQuery - параметры одного запроса разведсводки
type IntelQuery struct {
	City         string
	Country      string
	IncidentDays int
	DemoDays     int
	Offline      bool
	UseCache     bool
}

// ReportMeta - метаданные сводки
type ReportMeta struct {
	UpdatedAt          string   `json:"updated_at"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	UserLat            *float64 `json:"user_lat"`
	UserLon            *float64 `json:"user_lon"`
	ScopeUsed          string   `json:"scope_used"`
	Confidence         string   `json:"confidence"`
	OfflineMode        bool     `json:"offline_mode"`
	PrimarySource      string   `json:"primary_source"`
	PrimaryAvailable   bool     `json:"primary_available"`
	DataSources        []string `json:"data_sources"`
	DataSourcesDisplay string   `json:"data_sources_display"`
	IsNewsBased        bool     `json:"is_news_based"`
	Disclaimer         string   `json:"disclaimer,omitempty"`
	FromCache          bool     `json:"from_cache,omitempty"`
	StaleCache         bool     `json:"stale_cache,omitempty"`
}

// IncidentsBlock - блок насильственных инцидентов за окно просмотра
type IncidentsBlock struct {
	TotalCount      int     `json:"total_count"`
	TotalFatalities int     `json:"total_fatalities"`
	Trend           string  `json:"trend"`
	Summary         string  `json:"summary"`
	Items           []Event `json:"items"`
	Scope           string  `json:"scope"`
	Source          string  `json:"source"`
	Disclaimer      string  `json:"disclaimer,omitempty"`
}

// PlannedDemo - анонсированная в СМИ демонстрация (неверифицированная)
type PlannedDemo struct {
	Title         string `json:"title"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	ExtractedDate string `json:"extracted_date"`
	Label         string `json:"label"`
	Confidence    string `json:"confidence"`
}

// DemonstrationsBlock - блок демонстраций за окно просмотра
type DemonstrationsBlock struct {
	TotalCount    int           `json:"total_count"`
	ProtestsCount int           `json:"protests_count"`
	RiotsCount    int           `json:"riots_count"`
	Summary       string        `json:"summary"`
	Items         []Event       `json:"items"`
	PlannedDemos  []PlannedDemo `json:"planned_demos"`
	Scope         string        `json:"scope"`
	Source        string        `json:"source"`
}

// RiskDataSources - источники, на которых построена оценка
type RiskDataSources struct {
	Incidents      string `json:"incidents"`
	Demonstrations string `json:"demonstrations"`
}

// RiskAssessment - детерминированная оценка риска.
// Производная сущность: пересчитывается заново при каждом запросе
// из агрегатов по событиям, отдельно не персистится.
type RiskAssessment struct {
	RiskLevel        string          `json:"risk_level"`
	RiskScore        int             `json:"risk_score"`
	Trend            string          `json:"trend"`
	Confidence       string          `json:"confidence"`
	Drivers          []string        `json:"drivers"`
	OperationalNotes []string        `json:"operational_notes"`
	Warnings         []string        `json:"warnings"`
	DataSources      RiskDataSources `json:"data_sources"`
	Disclaimer       string          `json:"disclaimer"`
}

// NewsContextBlock - новостной контекст по локации
type NewsContextBlock struct {
	Items      []Article `json:"items"`
	TotalCount int       `json:"total_count"`
	Source     string    `json:"source"`
}

// IntelReport - итоговая полезная нагрузка разведсводки, отдаваемая наружу
// и целиком сохраняемый в кеш.
type IntelReport struct {
	Meta           ReportMeta          `json:"meta"`
	Incidents      IncidentsBlock      `json:"incidents_30d"`
	RiskAssessment RiskAssessment      `json:"risk_assessment"`
	Demonstrations DemonstrationsBlock `json:"demonstrations_14d"`
	NewsContext    NewsContextBlock    `json:"news_context"`
}

// CacheStats - статистика кеша для эксплуатационных ручек
type CacheStats struct {
	TotalEntries   int64 `json:"total_entries"`
	ExpiredEntries int64 `json:"expired_entries"`
	ValidEntries   int64 `json:"valid_entries"`
	EventRows      int64 `json:"event_rows"`
}
