package intel

import "strings"

// Коррекция пользовательского ввода города/страны: туровые маршруты часто
// приходят как "Mexico"/"Mexico" или просто ISO2-код страны. Таблицы
// захардкожены как пакетные данные - меняются редко, конфигурации не требуют.

type cityCorrection struct {
	City    string
	Aliases []string
	Country string
}

var cityCorrections = map[string]cityCorrection{
	"mexico":     {City: "Mexico City", Aliases: []string{"Ciudad de México", "CDMX", "DF"}, Country: "Mexico"},
	"singapore":  {City: "Singapore", Aliases: []string{"Singapore City", "SG"}, Country: "Singapore"},
	"luxembourg": {City: "Luxembourg City", Aliases: []string{"Ville de Luxembourg"}, Country: "Luxembourg"},
	"monaco":     {City: "Monaco", Aliases: []string{"Monte Carlo", "Monaco-Ville"}, Country: "Monaco"},
	"panama":     {City: "Panama City", Aliases: []string{"Ciudad de Panamá"}, Country: "Panama"},
	"guatemala":  {City: "Guatemala City", Aliases: []string{"Ciudad de Guatemala"}, Country: "Guatemala"},
	"kuwait":     {City: "Kuwait City", Aliases: []string{"Al Kuwayt"}, Country: "Kuwait"},
	"djibouti":   {City: "Djibouti City", Aliases: []string{"Djibouti"}, Country: "Djibouti"},
}

var countryNames = map[string]struct{}{
	"mexico": {}, "singapore": {}, "luxembourg": {}, "monaco": {}, "panama": {},
	"guatemala": {}, "kuwait": {}, "djibouti": {}, "san marino": {}, "andorra": {},
	"liechtenstein": {}, "vatican": {}, "brazil": {}, "argentina": {}, "chile": {},
	"colombia": {}, "peru": {}, "venezuela": {}, "ecuador": {}, "bolivia": {},
	"paraguay": {}, "uruguay": {}, "france": {}, "germany": {}, "spain": {}, "italy": {},
	"portugal": {}, "netherlands": {}, "belgium": {}, "austria": {}, "switzerland": {},
	"poland": {}, "czech": {}, "hungary": {}, "greece": {}, "sweden": {}, "norway": {},
	"denmark": {}, "finland": {}, "ireland": {}, "united kingdom": {}, "uk": {},
	"russia": {}, "ukraine": {}, "turkey": {}, "egypt": {}, "morocco": {}, "algeria": {},
	"tunisia": {}, "south africa": {}, "nigeria": {}, "kenya": {}, "ethiopia": {},
	"japan": {}, "china": {}, "korea": {}, "india": {}, "thailand": {}, "vietnam": {},
	"indonesia": {}, "philippines": {}, "malaysia": {}, "australia": {}, "canada": {},
}

var iso2ToCountry = map[string]string{
	"AT": "Austria", "BE": "Belgium", "BG": "Bulgaria", "HR": "Croatia",
	"CZ": "Czech Republic", "DK": "Denmark", "EE": "Estonia", "FI": "Finland",
	"FR": "France", "DE": "Germany", "GR": "Greece", "HU": "Hungary",
	"IE": "Ireland", "IT": "Italy", "LV": "Latvia", "LT": "Lithuania",
	"NL": "Netherlands", "NO": "Norway", "PL": "Poland", "PT": "Portugal",
	"RO": "Romania", "SK": "Slovakia", "SI": "Slovenia", "ES": "Spain",
	"SE": "Sweden", "CH": "Switzerland", "GB": "United Kingdom",
	"US": "United States", "CA": "Canada", "AU": "Australia", "NZ": "New Zealand",
	"JP": "Japan", "CN": "China", "KR": "South Korea", "IN": "India",
	"BR": "Brazil", "AR": "Argentina", "MX": "Mexico", "CL": "Chile",
	"RU": "Russia", "UA": "Ukraine", "TR": "Turkey", "EG": "Egypt",
	"ZA": "South Africa", "NG": "Nigeria", "KE": "Kenya", "MA": "Morocco",
}

// ConvertISO2 разворачивает ISO2-код страны в полное название.
// Незнакомый ввод возвращается как есть.
func ConvertISO2(country string) string {
	if country == "" {
		return country
	}
	if full, ok := iso2ToCountry[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return full
	}
	return country
}

// NormalizedLocation - скорректированная пара город/страна с алиасами города
// для поисковых запросов провайдеров
type NormalizedLocation struct {
	City    string
	Country string
	Aliases []string
}

// NormalizeCityCountry исправляет вырожденные случаи ввода: город-государство
// ("Mexico"/"Mexico"), название страны на месте города и т.п.
func NormalizeCityCountry(city, country string) NormalizedLocation {
	cityLower := strings.ToLower(strings.TrimSpace(city))
	countryLower := strings.ToLower(strings.TrimSpace(country))

	if corr, ok := cityCorrections[cityLower]; ok {
		result := NormalizedLocation{City: corr.City, Country: corr.Country, Aliases: corr.Aliases}
		if country != "" {
			result.Country = country
		}
		return result
	}

	if cityLower == countryLower && cityLower != "" {
		return NormalizedLocation{
			City:    city,
			Country: country,
			Aliases: []string{city + " City", city},
		}
	}

	if _, isCountry := countryNames[cityLower]; isCountry && cityLower != countryLower {
		normalizedCity := city
		if !strings.HasSuffix(city, "City") {
			normalizedCity = city + " City"
		}
		result := NormalizedLocation{City: normalizedCity, Country: city, Aliases: []string{city}}
		if country != "" {
			result.Country = country
		}
		return result
	}

	return NormalizedLocation{City: city, Country: country}
}
