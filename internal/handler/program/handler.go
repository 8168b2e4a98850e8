package program

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/middleware"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/service/program"
)

type Handler struct {
	service program.ProgramService
	cache   *middleware.ResponseCache
}

func NewHandler(service program.ProgramService, cache *middleware.ResponseCache) *Handler {
	return &Handler{service: service, cache: cache}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	programs := r.Group("/programs")
	{
		programs.POST("", h.Create)
		programs.GET("", h.cache.Cache(), h.List)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor := middleware.CurrentDoctor(c)

	created, err := h.service.Create(c.Request.Context(), doctor.ID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	// The list cache would otherwise serve the stale set for its TTL.
	h.cache.Flush()

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	programs, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(programs))
}
