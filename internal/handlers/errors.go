package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidRange),
		errors.Is(err, apperrors.ErrUnknownCurrency),
		errors.Is(err, apperrors.ErrUnclassifiable):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrPeriodClosed):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStatementUnavail):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrInternal):
		return http.StatusInternalServerError
	case errors.As(err, &appErr) && appErr.Code >= 400:
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError logs err and writes the matching JSON error body. Server
// errors hide their cause behind fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// requireUserID reads the acting user from the context, answering 401 when absent.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
