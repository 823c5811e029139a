package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/champlain/campus/internal/app/models/dto"
	"github.com/champlain/campus/internal/pkg/apperrors"
	"github.com/champlain/campus/internal/pkg/logger"
)

const internalServerErrorMessage = "Internal server error"

// HandleAPIError maps err to a status code and writes {"message": ...}.
// Errors without a known classification are logged and answered with 500.
func HandleAPIError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(status, dto.NewErrorResponse(internalServerErrorMessage))
		return
	}

	msg, _ := apperrors.MessageOf(err)
	c.JSON(status, dto.NewErrorResponse(msg))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrValidationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
