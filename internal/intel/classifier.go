package intel

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tourops/security_intel_system/internal/models"
)

// Классификация по упорядоченным спискам ключевых слов: сначала лексика
// убийств, затем протестов, затем аварий; первое совпадение выигрывает.
// Языковые списки объединены - французский и английский проверяются всегда.

var kwHomicide = []string{
	"homicide", "murder", "killed", "shot", "shooting", "stabbing", "dead", "fatal shooting",
	"violence against civilians",
	"meurtre", "tué", "abattu", "poignard", "assassinat",
	"mord", "getötet", "erschossen",
	"asesinato", "apuñalado", "tiroteo",
}

var kwProtest = []string{
	"protest", "demonstration", "demonstrators", "rally", "march", "strike", "blocked", "riot",
	"manifestation", "rassemblement", "cortège", "grève", "barricade", "émeute",
	"streik", "kundgebung",
	"huelga", "manifestación",
}

var kwAccident = []string{
	"crash", "collision", "accident", "serious accident", "fatal accident", "car crash",
	"explosion", "battle", "attack", "armed",
	"grave accident", "accident grave", "percuté", "heurté", "renversé", "blessé grave",
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classify относит сырой текст (заголовок + сниппет) к операционной категории.
// Чистая функция без I/O.
func Classify(title, snippet string) models.Category {
	text := strings.ToLower(title + " " + snippet)
	switch {
	case containsAny(text, kwHomicide):
		return models.CategoryHomicide
	case containsAny(text, kwProtest):
		return models.CategoryProtest
	case containsAny(text, kwAccident):
		return models.CategoryAccident
	default:
		return models.CategoryUnknown
	}
}

// ClassifyEvent как Classify, но количество жертв > 0 принудительно дает
// HOMICIDE независимо от лексики заголовка.
func ClassifyEvent(title, snippet string, fatalities int) models.Category {
	if fatalities > 0 {
		return models.CategoryHomicide
	}
	return Classify(title, snippet)
}

// Similarity - нормированная похожесть заголовков в [0,1]
// на основе редакционного расстояния по рунам.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
