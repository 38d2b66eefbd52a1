package apperrors

import (
	"gymfit_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError translates any error into the standard JSON error response.
// Unknown errors are logged with context and masked as 500.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error",
			"error", appErr.Error(),
			"path", c.Request.URL.Path,
		)
		// Do not leak internals to the client.
		appErr = New(CodeInternalError, "Internal server error", appErr.HTTPCode)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
