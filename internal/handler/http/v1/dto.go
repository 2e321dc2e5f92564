package v1

// IntelRequest DTO параметров запроса разведсводки
// @Description DTO параметров запроса разведсводки
type IntelRequest struct {
	City         string `form:"city" validate:"required,min=2,max=128"`
	Country      string `form:"country" validate:"required,min=2,max=128"`
	IncidentDays int    `form:"incident_days" validate:"omitempty,gte=1,lte=365"`
	DemoDays     int    `form:"demo_days" validate:"omitempty,gte=1,lte=365"`
	Offline      bool   `form:"offline"`
	NoCache      bool   `form:"no_cache"`
}

// PurgeResponse DTO результата очистки истекшего кеша
// @Description DTO результата очистки истекшего кеша
type PurgeResponse struct {
	Purged int64 `json:"purged"`
}
