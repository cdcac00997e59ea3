package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is the GET / liveness check.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Career Code server is running")
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
