package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/nmcleod/rollcall/internal/pkg/logger"
)

// HandleAPIError is the single translation point from service errors to HTTP
// responses. Services wrap every error in a sentinel kind; anything that
// doesn't carry one is an internal error.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrAuthRequired),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(apperrors.Message(err, "Authentication required")))
	case errors.Is(err, apperrors.ErrAccessDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(apperrors.Message(err, "Access denied")))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(apperrors.Message(err, "Conflict")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
