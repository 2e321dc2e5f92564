package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/models"
	"github.com/tourops/security_intel_system/internal/service"
)

type Handler struct {
	intelService service.SecurityIntelService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(intelService service.SecurityIntelService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		intelService: intelService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Get security intelligence report
// @Description Build a full security intelligence report for a city. Requires API key.
// @Tags Intel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city query string true "City name"
// @Param country query string true "Country name or ISO2 code"
// @Param incident_days query int false "Incident lookback window in days" default(30)
// @Param demo_days query int false "Demonstration lookback window in days" default(14)
// @Param offline query bool false "Serve only from cache, no live fetches"
// @Param no_cache query bool false "Bypass cache read"
// @Success 200 {object} models.IntelReport
// @Failure 400 {object} map[string]string "Missing or invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Offline mode with empty cache"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /security-intel [get]
func (h *Handler) getSecurityIntel(c *gin.Context) {
	var input IntelRequest
	log := h.logger.WithField("method", "getSecurityIntel")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := models.IntelQuery{
		City:         input.City,
		Country:      input.Country,
		IncidentDays: input.IncidentDays,
		DemoDays:     input.DemoDays,
		Offline:      input.Offline,
		UseCache:     !input.NoCache,
	}

	report, err := h.intelService.FullIntel(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, models.ErrOfflineNoCache) {
			c.JSON(http.StatusNotFound, gin.H{"error": models.ErrOfflineNoCache.Error()})
			return
		}
		log.WithError(err).Error("Failed to build intel report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get country-level summary
// @Description Get aggregate incident statistics for a country from the primary provider. Requires API key.
// @Tags Intel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param country query string true "Country name or ISO2 code"
// @Success 200 {object} models.CountrySummary
// @Failure 400 {object} map[string]string "Missing country parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /country-summary [get]
func (h *Handler) getCountrySummary(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country parameter is required"})
		return
	}

	summary := h.intelService.CountrySummary(c.Request.Context(), country)
	c.JSON(http.StatusOK, summary)
}

// @Summary Get cache statistics
// @Description Get intel cache statistics. Requires API key.
// @Tags Cache
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.CacheStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cache/stats [get]
func (h *Handler) getCacheStats(c *gin.Context) {
	log := h.logger.WithField("method", "getCacheStats")

	stats, err := h.intelService.CacheStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get cache stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Purge expired cache entries
// @Description Delete all TTL-expired cache rows. Requires API key.
// @Tags Cache
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PurgeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cache/expired [delete]
func (h *Handler) purgeExpiredCache(c *gin.Context) {
	log := h.logger.WithField("method", "purgeExpiredCache")

	purged, err := h.intelService.PurgeExpiredCache(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to purge expired cache in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, PurgeResponse{Purged: purged})
}

// @Summary Health check
// @Description Check service health.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
