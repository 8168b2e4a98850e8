package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// StatusOf maps an error's taxonomy code onto the HTTP status family.
func StatusOf(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrValidation:
		return http.StatusBadRequest
	case apperrors.ErrUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.ErrUnauthorized:
		return http.StatusForbidden
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes the canonical error envelope for err.
func Error(c *gin.Context, err error) {
	c.JSON(StatusOf(err), NewErrorResponse(apperrors.MessageOf(err)))
}
