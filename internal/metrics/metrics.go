package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики пайплайна разведсводок.
// Регистрация в конструкторе, инкременты - из сервиса.
type Metrics struct {
	providerRequests *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	reportDuration   prometheus.Summary
	riskLevels       *prometheus.CounterVec
}

// New создает и регистрирует метрики в реестре по умолчанию
func New() *Metrics {
	m := &Metrics{}

	m.providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "security_intel",
		Name:      "provider_requests_total",
		Help:      "Number of provider requests by provider and outcome",
	}, []string{"provider", "outcome"})

	m.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "security_intel",
		Name:      "cache_lookups_total",
		Help:      "Number of intel cache lookups by result",
	}, []string{"result"})

	m.reportDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "security_intel",
		Name:      "report_duration_seconds",
		Help:      "Time spent building a full intel report",
	})

	m.riskLevels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "security_intel",
		Name:      "risk_levels_total",
		Help:      "Number of produced assessments by risk level",
	}, []string{"level"})

	prometheus.MustRegister(
		m.providerRequests, m.cacheLookups, m.reportDuration, m.riskLevels,
	)
	return m
}

// ProviderRequest учитывает один вызов провайдера
func (m *Metrics) ProviderRequest(provider string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.providerRequests.WithLabelValues(provider, outcome).Inc()
}

// CacheLookup учитывает обращение к кешу: hit, miss или stale
func (m *Metrics) CacheLookup(result string) {
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ReportBuilt учитывает построение одной сводки
func (m *Metrics) ReportBuilt(duration time.Duration, riskLevel string) {
	m.reportDuration.Observe(duration.Seconds())
	m.riskLevels.WithLabelValues(riskLevel).Inc()
}
