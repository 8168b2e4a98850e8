package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/validate", h.Validate)
	}
}

// Validate echoes the identity the guard resolved for the presented key.
func (h *Handler) Validate(c *gin.Context) {
	doctor := middleware.CurrentDoctor(c)
	if doctor == nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("internal server error"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"doctor": doctor}))
}
