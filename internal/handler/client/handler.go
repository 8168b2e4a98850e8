package client

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/middleware"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/service/client"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type Handler struct {
	service client.ClientService
}

func NewHandler(service client.ClientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	{
		clients.POST("/register", h.Register)
		clients.GET("", h.List)
		clients.GET("/search", h.Search)
		clients.GET("/:id", h.GetProfile)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor := middleware.CurrentDoctor(c)

	created, err := h.service.Register(c.Request.Context(), doctor.ID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clients))
}

func (h *Handler) Search(c *gin.Context) {
	matches, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(matches))
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.Error(c, apperrors.Validation("invalid client ID"))
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(profile))
}
