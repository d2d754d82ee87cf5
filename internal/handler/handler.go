package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"newsdash/config"
	"newsdash/internal/service"
)

type Handler struct {
	pipeline  *service.PipelineService
	store     *service.StoreService
	prefs     *service.PrefsService
	status    *service.StatusService
	sources   []config.Source
	scheduler interface {
		GetNextRefreshTime() time.Time
	}
}

func NewHandler(
	pipeline *service.PipelineService,
	store *service.StoreService,
	prefs *service.PrefsService,
	status *service.StatusService,
	sources []config.Source,
) *Handler {
	return &Handler{
		pipeline: pipeline,
		store:    store,
		prefs:    prefs,
		status:   status,
		sources:  sources,
	}
}

// SetScheduler hands the handler a way to report the next refresh time.
func (h *Handler) SetScheduler(scheduler interface {
	GetNextRefreshTime() time.Time
}) {
	h.scheduler = scheduler
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/news", h.LoadNews)
		api.POST("/news/refresh", h.RefreshNews)
		api.GET("/news/all", h.ListArticles)

		api.GET("/sources", h.ListSources)
		api.GET("/status", h.GetStatus)

		api.GET("/prefs/:key", h.GetPref)
		api.PUT("/prefs/:key", h.SetPref)
	}
}

// LoadNews serves the startup projection from persisted state. 204 means
// "no data yet": the UI shows its placeholder set.
func (h *Handler) LoadNews(c *gin.Context) {
	projection, err := h.pipeline.Load(c.Request.Context())
	if err != nil || projection == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, projection)
}

// RefreshNews runs one full ingestion cycle. Batch failures surface as 502
// so the UI keeps its last-known-good dataset and offers a retry.
func (h *Handler) RefreshNews(c *gin.Context) {
	projection, err := h.pipeline.Refresh(c.Request.Context())
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrNoArticles) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projection)
}

func (h *Handler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	articles, err := h.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *Handler) ListSources(c *gin.Context) {
	c.JSON(http.StatusOK, h.sources)
}

func (h *Handler) GetStatus(c *gin.Context) {
	var next time.Time
	if h.scheduler != nil {
		next = h.scheduler.GetNextRefreshTime()
	}

	status, err := h.status.GetSystemStatus(c.Request.Context(), next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *Handler) GetPref(c *gin.Context) {
	value, err := h.prefs.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := json.RawMessage(value)
	if value == "" {
		payload = json.RawMessage("null")
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": payload})
}

func (h *Handler) SetPref(c *gin.Context) {
	var body struct {
		Value json.RawMessage `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.prefs.Set(c.Request.Context(), c.Param("key"), string(body.Value)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": body.Value})
}
