package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/elsmrh/sami-yaya/pkg/errors"
)

// The wire format predates this rewrite: successes carry a top-level
// {"success":true} flag with optional extra fields, failures carry a bare
// {"error":"..."} message, and the admin listing returns a naked JSON array.
// Existing clients depend on these shapes, so the helpers preserve them.

// Success writes a JSON success body, merging any extra fields into the
// {"success":true} envelope.
func Success(c *gin.Context, statusCode int, extra gin.H) {
	body := gin.H{"success": true}
	for key, value := range extra {
		body[key] = value
	}
	c.JSON(statusCode, body)
}

// Raw writes the payload without an envelope.
func Raw(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Error renders an error as the legacy {"error": message} body, deriving the
// status code from the AppError taxonomy.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
