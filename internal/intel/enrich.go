package intel

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tourops/security_intel_system/internal/models"
)

const earthRadiusKm = 6371.0088

// HaversineKm - расстояние между двумя точками по формуле гаверсинусов
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dphi := (lat2 - lat1) * math.Pi / 180
	dlambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dphi/2)*math.Sin(dphi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlambda/2)*math.Sin(dlambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// ProximityLevel - операционный уровень близости по расстоянию до точки отсчета
func ProximityLevel(distanceKm *float64) string {
	if distanceKm == nil {
		return "UNKNOWN"
	}
	switch {
	case *distanceKm < 1:
		return "IMMEDIATE"
	case *distanceKm < 5:
		return "NEARBY"
	case *distanceKm < 15:
		return "LOCAL"
	default:
		return "DISTANT"
	}
}

// ConfidenceScore - уверенность [0,1] по надежности источника,
// не статистическая достоверность
func ConfidenceScore(source string) float64 {
	if source == "" {
		return 0.5
	}
	src := strings.ToUpper(source)
	switch {
	case src == "ACLED":
		return 0.9
	case strings.Contains(src, "GDELT"):
		return 0.7
	case strings.Contains(src, "RSS"):
		return 0.5
	case strings.Contains(src, "POLICE"), strings.Contains(src, "GOV"):
		return 0.85
	default:
		return 0.6
	}
}

// Enrich дополняет событие расстоянием до точки отсчета, категорией
// (если не проставлена) и confidence по источнику. Исходный слайс
// модифицируется на месте.
func Enrich(events []models.Event, refLat, refLon *float64, fallbackSource string) {
	for i := range events {
		e := &events[i]

		if e.Source == "" {
			e.Source = fallbackSource
		}

		if refLat != nil && refLon != nil && e.Latitude != nil && e.Longitude != nil {
			d := HaversineKm(*refLat, *refLon, *e.Latitude, *e.Longitude)
			e.DistanceKm = &d
		}

		if e.Category == "" || e.Category == models.CategoryUnknown {
			e.Category = classifyFromEventType(e.EventType, e.Fatalities, e.Title)
		}

		e.Confidence = ConfidenceScore(e.Source)
		e.ProximityLevel = ProximityLevel(e.DistanceKm)

		if e.EventHash == "" {
			e.EventHash = models.EventHash(e.Title, e.Datetime, e.Source, e.URL)
		}
	}
}

// classifyFromEventType отображает типы событий провайдеров на категории.
// Ненулевые жертвы дают HOMICIDE даже при нейтральном типе.
func classifyFromEventType(eventType string, fatalities int, title string) models.Category {
	t := strings.ToLower(eventType)
	switch {
	case strings.Contains(t, "homicide"), strings.Contains(t, "murder"),
		strings.Contains(t, "killing"), strings.Contains(t, "violence against civilians"):
		return models.CategoryHomicide
	case fatalities > 0:
		return models.CategoryHomicide
	case strings.Contains(t, "riot"):
		return models.CategoryRiot
	case strings.Contains(t, "protest"), strings.Contains(t, "demonstration"),
		strings.Contains(t, "strike"):
		return models.CategoryProtest
	case strings.Contains(t, "explosion"), strings.Contains(t, "battle"),
		strings.Contains(t, "attack"), strings.Contains(t, "armed"):
		return models.CategoryAccident
	}
	if cat := ClassifyEvent(title, "", fatalities); cat != models.CategoryUnknown {
		return cat
	}
	return models.CategoryAccident
}

// SortEvents упорядочивает события: ближайшие первыми, при равном
// расстоянии - более свежие первыми
func SortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := math.Inf(1), math.Inf(1)
		if events[i].DistanceKm != nil {
			di = *events[i].DistanceKm
		}
		if events[j].DistanceKm != nil {
			dj = *events[j].DistanceKm
		}
		if di != dj {
			return di < dj
		}
		return eventTimestamp(events[i].Datetime) > eventTimestamp(events[j].Datetime)
	})
}

func eventTimestamp(datetime string) int64 {
	if datetime == "" {
		return 0
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, datetime); err == nil {
			return t.Unix()
		}
	}
	return 0
}
