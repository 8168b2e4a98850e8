package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the unguarded liveness endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"healthy": true}))
}
