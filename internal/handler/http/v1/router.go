package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Основной маршрут разведсводки по городу
	api.GET("/security-intel", h.getSecurityIntel)

	// Сводка по стране от первичного провайдера
	api.GET("/country-summary", h.getCountrySummary)

	// Маршруты управления кешем
	cache := api.Group("/cache")
	{
		cache.GET("/stats", h.getCacheStats)
		cache.DELETE("/expired", h.purgeExpiredCache)
	}
}

// RegisterSystemRoutes регистрирует открытые служебные маршруты,
// не требующие API-ключа
func (h *Handler) RegisterSystemRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)
}
