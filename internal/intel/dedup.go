package intel

import "github.com/tourops/security_intel_system/internal/models"

// TitleSimilarityThreshold - порог похожести заголовков для склейки дублей
const TitleSimilarityThreshold = 0.86

// Deduplicate склеивает почти-дубликаты: одинаковый календарный день,
// одинаковая категория и похожесть заголовков >= порога. Побеждает запись
// с большей confidence, поля победителя записываются в уже занятый слот.
// Порядок значим: первая встреченная запись занимает слот, более поздний
// дубль с большей confidence перезаписывает его на месте.
func Deduplicate(events []models.Event) []models.Event {
	var kept []models.Event

	for _, e := range events {
		merged := false
		for i := range kept {
			k := &kept[i]
			if k.Day() == e.Day() && k.Category == e.Category &&
				Similarity(e.Title, k.Title) >= TitleSimilarityThreshold {
				if e.Confidence > k.Confidence {
					*k = e
				}
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, e)
		}
	}

	return kept
}
