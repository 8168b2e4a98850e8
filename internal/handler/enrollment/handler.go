package enrollment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/service/enrollment"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type Handler struct {
	service enrollment.EnrollmentService
}

func NewHandler(service enrollment.EnrollmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	enrollments := r.Group("/enrollments")
	{
		enrollments.POST("/:clientID", h.Enroll)
	}
}

func (h *Handler) Enroll(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientID"))
	if err != nil {
		handler.Error(c, apperrors.Validation("invalid client ID"))
		return
	}

	var req model.EnrollClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("program_ids must be a list of IDs"))
		return
	}

	created, err := h.service.Enroll(c.Request.Context(), clientID, req.ProgramIDs)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"enrollments": created}))
}
