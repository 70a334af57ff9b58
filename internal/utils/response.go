// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func ConflictResponse(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"message": message})
}

// ValidationErrorResponse reports field failures as a list of
// human-readable messages.
func ValidationErrorResponse(c *gin.Context, errors []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
}

func ServiceUnavailableResponse(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"message": message})
}

// InternalErrorResponse logs the underlying fault and returns a generic
// failure message.
func InternalErrorResponse(c *gin.Context, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
