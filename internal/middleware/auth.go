package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
)

const (
	// HeaderAPIKey is the request header carrying the bearer credential.
	HeaderAPIKey = "API-KEY"

	contextDoctor = "doctor"
)

type AuthMiddleware struct {
	keys    repository.APIKeyRepository
	doctors repository.DoctorRepository
}

func NewAuthMiddleware(keys repository.APIKeyRepository, doctors repository.DoctorRepository) *AuthMiddleware {
	return &AuthMiddleware{keys: keys, doctors: doctors}
}

// Authenticate resolves the API-KEY header to a doctor and stores it in the
// context. A missing key is 401; an unknown or revoked key is 403 with one
// shared message, so callers cannot tell which case they hit.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("API key required"))
			c.Abort()
			return
		}

		record, err := m.keys.Lookup(c.Request.Context(), key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("internal server error"))
			c.Abort()
			return
		}
		if record == nil || !record.IsActive {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("invalid or revoked API key"))
			c.Abort()
			return
		}

		doctor, err := m.doctors.Get(c.Request.Context(), record.DoctorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("internal server error"))
			c.Abort()
			return
		}

		c.Set(contextDoctor, doctor)
		c.Next()
	}
}

// RequireAdmin is the privileged tier: same resolution as Authenticate plus
// a super-admin check. Runs after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		doctor := CurrentDoctor(c)
		if doctor == nil || !doctor.IsAdmin {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("super-admin privileges required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentDoctor returns the authenticated doctor set by Authenticate.
func CurrentDoctor(c *gin.Context) *model.Doctor {
	v, ok := c.Get(contextDoctor)
	if !ok {
		return nil
	}
	doctor, _ := v.(*model.Doctor)
	return doctor
}
