package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/service/doctor"
)

type Handler struct {
	service doctor.DoctorService
}

func NewHandler(service doctor.DoctorService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already gated by the privileged tier.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.POST("/doctors", h.ProvisionDoctor)
	}
}

// ProvisionDoctor creates a clinician and issues its credential. The
// plaintext key only travels by email, never in the response.
func (h *Handler) ProvisionDoctor(c *gin.Context) {
	var req model.ProvisionDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Provision(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{"doctor": created}))
}
