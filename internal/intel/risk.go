package intel

import (
	"fmt"
	"strings"

	"github.com/tourops/security_intel_system/internal/models"
)

// Пороговые значения уровня риска по суммарному баллу
const (
	riskScoreHigh   = 60
	riskScoreMedium = 30
)

// RiskInput - агрегаты для оценки риска. Отсутствующие числовые поля
// остаются нулями - скоринг никогда не падает на неполных данных.
type RiskInput struct {
	IncidentCount int
	FatalityCount int
	DemoCount     int
	RiotsCount    int
	Trend         string

	IncidentsSource  string
	DemosSource      string
	IncidentsSuccess bool
	DemosSuccess     bool

	IncidentDays int
	DemoDays     int
}

// ScoreRisk - детерминированная оценка риска по аддитивной балльной шкале.
// Чистая функция: без I/O, без случайности, один и тот же вход всегда дает
// один и тот же результат.
func ScoreRisk(in RiskInput) models.RiskAssessment {
	trend := in.Trend
	if trend == "" {
		trend = models.TrendUnknown
	}

	hasPrimary := in.IncidentsSource == "ACLED" || in.DemosSource == "ACLED"
	hasAnyData := in.IncidentCount > 0 || in.DemoCount > 0
	bothFailed := !in.IncidentsSuccess && !in.DemosSuccess

	score := 0

	// Каждый блок добавляет только старший сработавший уровень
	switch {
	case in.IncidentCount >= 50:
		score += 40
	case in.IncidentCount >= 20:
		score += 30
	case in.IncidentCount >= 5:
		score += 20
	case in.IncidentCount >= 1:
		score += 10
	}

	switch {
	case in.FatalityCount >= 50:
		score += 25
	case in.FatalityCount >= 20:
		score += 15
	case in.FatalityCount >= 5:
		score += 10
	case in.FatalityCount >= 1:
		score += 5
	}

	switch {
	case in.DemoCount >= 20:
		score += 20
	case in.DemoCount >= 5:
		score += 15
	case in.DemoCount >= 1:
		score += 10
	}

	switch {
	case in.RiotsCount >= 5:
		score += 15
	case in.RiotsCount >= 1:
		score += 10
	}

	switch trend {
	case models.TrendIncreasing:
		score += 10
	case models.TrendDecreasing:
		score -= 5
	}

	var (
		level      string
		confidence string
		warnings   []string
	)

	switch {
	case bothFailed:
		level = "Unknown"
		confidence = "Low"
		warnings = append(warnings, "Data sources unavailable - unable to assess risk")
	case !hasPrimary && !hasAnyData:
		level = "Unknown"
		confidence = "Low"
		warnings = append(warnings, "Insufficient data coverage - risk cannot be determined")
	case score >= riskScoreHigh:
		level = "High"
		confidence = confidenceForSources(hasPrimary)
	case score >= riskScoreMedium:
		level = "Medium"
		confidence = confidenceForSources(hasPrimary)
	default:
		if hasPrimary {
			level = "Low"
			confidence = "High"
		} else if hasAnyData {
			level = "Low"
			confidence = "Medium"
			warnings = append(warnings, "Low risk based on limited data sources")
		} else {
			level = "Unknown"
			confidence = "Low"
			warnings = append(warnings, "No verified data available for this location")
		}
	}

	drivers := buildDrivers(in, trend, level)
	notes := buildOperationalNotes(in, trend, level)

	if warnings == nil {
		warnings = []string{}
	}

	return models.RiskAssessment{
		RiskLevel:        level,
		RiskScore:        score,
		Trend:            trend,
		Confidence:       confidence,
		Drivers:          drivers,
		OperationalNotes: notes,
		Warnings:         warnings,
		DataSources: models.RiskDataSources{
			Incidents:      sourceOrUnknown(in.IncidentsSource),
			Demonstrations: sourceOrUnknown(in.DemosSource),
		},
		Disclaimer: "Assessment based on recorded events data",
	}
}

func confidenceForSources(hasPrimary bool) string {
	if hasPrimary {
		return "High"
	}
	return "Medium"
}

func sourceOrUnknown(source string) string {
	if source == "" {
		return "Unknown"
	}
	return source
}

// buildDrivers формирует до трех объясняющих факторов в порядке приоритета:
// инциденты с жертвами, демонстрации с беспорядками, тренд.
func buildDrivers(in RiskInput, trend, level string) []string {
	var drivers []string

	if in.IncidentCount > 0 {
		text := fmt.Sprintf("%d violent incident(s) recorded", in.IncidentCount)
		if in.FatalityCount > 0 {
			text += fmt.Sprintf(" with %d fatalities", in.FatalityCount)
		}
		text += fmt.Sprintf(" (past %d days)", in.IncidentDays)
		drivers = append(drivers, text)
	}

	if in.DemoCount > 0 {
		text := fmt.Sprintf("%d demonstration(s) recorded", in.DemoCount)
		if in.RiotsCount > 0 {
			text += fmt.Sprintf(" including %d riot(s)", in.RiotsCount)
		}
		text += fmt.Sprintf(" (past %d days)", in.DemoDays)
		drivers = append(drivers, text)
	}

	if trend == models.TrendIncreasing || trend == models.TrendDecreasing {
		drivers = append(drivers, "Trend: "+capitalize(trend)+" incident activity")
	}

	if len(drivers) == 0 {
		if level == "Unknown" {
			drivers = append(drivers, "Insufficient data to identify threats")
		} else {
			drivers = append(drivers, "No significant security incidents recorded")
		}
	}

	if len(drivers) > 3 {
		drivers = drivers[:3]
	}
	return drivers
}

// buildOperationalNotes формирует до четырех рекомендаций по уровню риска
func buildOperationalNotes(in RiskInput, trend, level string) []string {
	var notes []string

	if level == "Unknown" {
		notes = append(notes,
			"Exercise standard precautions - data coverage limited",
			"Consult local sources for current conditions",
		)
	} else {
		if in.FatalityCount > 0 {
			notes = append(notes, "Heightened awareness recommended, especially in evening hours")
		}
		if in.DemoCount > 0 {
			notes = append(notes, "Monitor local news for demonstration routes and timing")
			if in.RiotsCount > 0 {
				notes = append(notes, "Avoid areas with reported unrest")
			}
		}
		if trend == models.TrendIncreasing {
			notes = append(notes, "Security situation deteriorating - plan contingencies")
		}
		if len(notes) == 0 {
			notes = append(notes,
				"Standard security precautions recommended",
				"Keep emergency contacts readily available",
			)
		}
	}

	if len(notes) > 4 {
		notes = notes[:4]
	}
	return notes
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
