package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError writes err as a JSON error response. Unknown errors are
// treated as internal so repository details never leak to the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = Wrap(err, CodeInternalError, "internal server error", http.StatusInternalServerError)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(appErr.HTTPCode, gin.H{
		"error":   true,
		"message": appErr.Message,
	})
}
