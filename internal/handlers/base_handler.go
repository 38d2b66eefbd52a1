package handlers

import (
	"gymfit_backend/internal/apperrors"
	"gymfit_backend/internal/logger"
	"gymfit_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindJSON binds the request body and runs struct validation. On failure it
// writes the error response and returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "request validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			violations := make([]apperrors.FieldViolations, 0, len(vErr.Errors))
			for field, msg := range vErr.Errors {
				violations = append(violations, apperrors.FieldViolations{Field: field, Errors: []string{msg}})
			}
			apperrors.HandleError(c, apperrors.ValidationError(violations))
			return false
		}
		apperrors.HandleError(c, err)
		return false
	}

	return true
}

// HandleServiceError translates a service error into the HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
