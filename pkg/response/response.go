package response

import (
	"errors"
	"net/http"

	"traveling-message/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// The wire shapes are fixed: accepted submissions answer {"ok": true},
// everything else answers {"error": <message>} with the mapped status.
// The static display site depends on these staying stable.

// OKResponse is the acceptance envelope.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the rejection envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK sends the 200 acceptance body.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// JSON sends a 200 response with an arbitrary document (log, stats).
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500. Internal detail (the
// wrapped error, the code) is never written to the body.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
