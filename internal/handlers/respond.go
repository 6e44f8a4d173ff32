package handlers

import (
	"errors"
	"net/http"

	"github.com/bukidworks/farm_ledger_app/internal/apperrors"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondOK writes a successful envelope.
func respondOK(c *gin.Context, httpStatus int, message string, data any) {
	c.JSON(httpStatus, dto.Envelope{Status: true, Message: message, Data: data})
}

// respondError maps an error to an HTTP status and writes a failed envelope.
// Data may carry a partial batch result so callers still see the breakdown.
func respondError(c *gin.Context, err error, data any) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
		status = appErr.Code
	}

	message := err.Error()
	if appErr != nil && appErr.Message != "" {
		message = appErr.Message
	}
	c.JSON(status, dto.Envelope{Status: false, Message: message, Data: data})
}

// respondBindError reports a malformed request body or query string.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Envelope{Status: false, Message: "invalid request format: " + err.Error(), Data: nil})
}
