package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cimar/ecare-legends/internal/http/middleware"
	"github.com/cimar/ecare-legends/internal/service"
)

type Handler struct {
	legends *service.LegendService
	log     zerolog.Logger
}

func NewHandler(legends *service.LegendService, log zerolog.Logger) *Handler {
	return &Handler{legends: legends, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", h.health)
	router.GET("/dashboard/overview", h.dashboardOverview)

	legends := router.Group("/legends")
	legends.GET("", h.listLegends)
	legends.GET("/summary", h.legendSummary)
	legends.GET("/export", h.exportLegends)
	legends.GET("/export/pdf", h.exportLegendsPDF)
	legends.GET("/:id", h.legendDetails)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) dashboardOverview(c *gin.Context) {
	overview, err := h.legends.DashboardOverview(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *Handler) listLegends(c *gin.Context) {
	page, err := service.ParsePageRequest(c.Query("page"), c.Query("pageSize"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.legends.ListLegends(c.Request.Context(), page)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) legendDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legend id"})
		return
	}

	details, err := h.legends.LegendDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) legendSummary(c *gin.Context) {
	rows, err := h.legends.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) exportLegends(c *gin.Context) {
	result, err := h.legends.ExportLegends(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportLegendsPDF(c *gin.Context) {
	result, err := h.legends.ExportLegendsPDF(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPageParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "legend not found"})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
