package handlers

import (
	"net/http"

	"vetly/utils"

	"github.com/gin-gonic/gin"
)

// GetHealth returns the latest snapshot from the background health monitor.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
