package intel

import (
	"regexp"
	"strings"

	"github.com/tourops/security_intel_system/internal/models"
)

// Эвристика анонсов: статья считается анонсом демонстрации, если в тексте
// одновременно присутствует лексика будущего времени и лексика акций.
// Результат всегда помечается как media-announced (unverified).

var plannedFutureKeywords = []string{
	"planned", "announced", "scheduled", "upcoming", "will be held",
	"set to", "expected to", "due to take place", "organizers say",
	"calling for", "march on", "strike on", "protest on", "rally on",
	"will gather", "to protest", "to demonstrate",
}

var plannedEventKeywords = []string{
	"protest", "demonstration", "rally", "march", "strike", "blockade",
	"sit-in", "walkout", "occupation", "gathering",
}

var plannedDatePattern = regexp.MustCompile(
	`(?i)(\d{1,2}(?:st|nd|rd|th)?\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*(?:\d{4})?)|` +
		`((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:\s*,?\s*\d{4})?)|` +
		`(\d{1,2}/\d{1,2}(?:/\d{2,4})?)|` +
		`(tomorrow|next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|week))`,
)

// DetectPlannedDemos выделяет из новостных статей анонсы будущих акций.
// Возвращает не более пяти записей с низкой уверенностью.
func DetectPlannedDemos(articles []models.Article) []models.PlannedDemo {
	planned := []models.PlannedDemo{}

	for _, article := range articles {
		text := strings.ToLower(article.Title + " " + article.Snippet)

		if !containsAny(text, plannedFutureKeywords) || !containsAny(text, plannedEventKeywords) {
			continue
		}

		extractedDate := "date TBD"
		if match := plannedDatePattern.FindString(article.Title + " " + article.Snippet); match != "" {
			extractedDate = strings.TrimSpace(match)
		}

		source := article.Source
		if source == "" {
			source = "unknown"
		}

		planned = append(planned, models.PlannedDemo{
			Title:         article.Title,
			Source:        source,
			URL:           article.URL,
			ExtractedDate: extractedDate,
			Label:         "media-announced (unverified)",
			Confidence:    "low",
		})

		if len(planned) >= 5 {
			break
		}
	}

	return planned
}
