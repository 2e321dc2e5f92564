package models

// Результаты провайдеров оформлены как явные варианты успех/ошибка:
// сбой адаптера - это не error, а Success=false + текст в Err,
// пайплайн всегда продолжает работу.

// ArticleResult - результат одного запроса к новостному провайдеру
type ArticleResult struct {
	Success  bool      `json:"success"`
	Articles []Article `json:"articles"`
	Err      string    `json:"error,omitempty"`
}

// IncidentResult - результат запроса насильственных инцидентов
type IncidentResult struct {
	Success         bool    `json:"success"`
	Incidents       []Event `json:"incidents"`
	TotalIncidents  int     `json:"total_incidents"`
	TotalFatalities int     `json:"total_fatalities"`
	Trend           string  `json:"trend"`
	Scope           string  `json:"scope"`
	Source          string  `json:"source"`
	Disclaimer      string  `json:"disclaimer,omitempty"`
	Err             string  `json:"error,omitempty"`
}

// DemonstrationResult - результат запроса демонстраций и протестов
type DemonstrationResult struct {
	Success       bool    `json:"success"`
	Demonstrations []Event `json:"demonstrations"`
	TotalCount    int     `json:"total_count"`
	ProtestsCount int     `json:"protests_count"`
	RiotsCount    int     `json:"riots_count"`
	Scope         string  `json:"scope"`
	Source        string  `json:"source"`
	Disclaimer    string  `json:"disclaimer,omitempty"`
	Err           string  `json:"error,omitempty"`
}

// CrimeCount - агрегат по категории преступлений из официального источника
type CrimeCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SourceRef - ссылка на доступный официальный источник
type SourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// OfficialResult - результат опроса официальных государственных источников.
// Best-effort: success=false с заполненным Note - штатная ситуация.
type OfficialResult struct {
	Success          bool         `json:"success"`
	CrimeData        []CrimeCount `json:"crime_data"`
	Announcements    []Article    `json:"announcements"`
	SourcesChecked   []string     `json:"sources_checked"`
	SourcesAvailable []SourceRef  `json:"sources_available"`
	Note             string       `json:"note,omitempty"`
	Err              string       `json:"error,omitempty"`
}

// CountrySummary - сводная статистика по стране от структурированного провайдера
type CountrySummary struct {
	Country             string `json:"country"`
	ViolentIncidents30d int    `json:"violent_incidents_30d"`
	Fatalities30d       int    `json:"fatalities_30d"`
	Demonstrations14d   int    `json:"demonstrations_14d"`
	Trend               string `json:"trend"`
	PrimaryAvailable    bool   `json:"primary_available"`
}
