package handlers

import (
	"net/http"

	"bestdental/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health with the janitor's latest snapshot. A degraded
// store still answers 200 because bookings keep working.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
