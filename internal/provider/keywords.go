package provider

import "sort"

// Многоязычные наборы ключевых слов для новостных провайдеров.
// Списки всегда объединяются, а не выбираются по определенному языку:
// французская и английская таблицы проверяются одновременно.

// HomicideKeywords - лексика насильственных инцидентов по языкам
var HomicideKeywords = map[string][]string{
	"en": {"homicide", "murder", "killed", "stabbing", "shooting", "fatal", "death", "shot dead", "stabbed"},
	"fr": {"homicide", "meurtre", "tué", "tuée", "mort", "fusillade", "coup de couteau", "poignardé", "assassinat"},
	"de": {"mord", "getötet", "erschossen", "erstochen", "tödlich", "schießerei", "messerstecherei"},
	"es": {"homicidio", "asesinato", "matado", "apuñalado", "tiroteo", "baleado", "muerto"},
}

// DemonstrationKeywords - лексика демонстраций и протестов по языкам
var DemonstrationKeywords = map[string][]string{
	"en": {"protest", "demonstration", "rally", "march", "strike", "riot", "unrest", "blockade"},
	"fr": {"manifestation", "rassemblement", "grève", "marche", "blocage", "émeute", "protestation"},
	"de": {"demonstration", "protest", "streik", "kundgebung", "blockade", "unruhen"},
	"es": {"manifestación", "protesta", "huelga", "marcha", "bloqueo", "disturbios"},
}

// CrimeKeywords - лексика общей преступности по языкам
var CrimeKeywords = map[string][]string{
	"en": {"crime", "robbery", "assault", "theft", "burglary", "violence", "attack", "incident"},
	"fr": {"crime", "vol", "agression", "cambriolage", "violence", "attaque", "incident", "délinquance"},
	"de": {"verbrechen", "raub", "überfall", "diebstahl", "gewalt", "angriff"},
	"es": {"crimen", "robo", "asalto", "hurto", "violencia", "ataque"},
}

// AllKeywords сводит все языковые списки в один отсортированный набор без дублей.
// Сортировка дает детерминированные строки запросов.
func AllKeywords(byLang map[string][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, kws := range byLang {
		for _, kw := range kws {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}
