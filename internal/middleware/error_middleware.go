// Package middleware provides the cross-cutting gin handlers.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
)

// HandleAPIError maps an application error to the HTTP response. Unexpected
// errors are logged and surfaced as an opaque 500.
func HandleAPIError(c *gin.Context, err error) {
	var field string
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		field = custom.Field
	}

	status, code := classify(err)

	detail := dto.NewErrorDetail(code, publicMessage(err, code))
	if field != "" {
		detail = detail.WithField(field)
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse(detail))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrPhoneAlreadyExists),
		errors.Is(err, apperrors.ErrStudentIDAlreadyExists),
		errors.Is(err, apperrors.ErrOrgNameAlreadyExists),
		errors.Is(err, apperrors.ErrDuplicateKey):
		return http.StatusBadRequest, dto.ErrorCodeDuplicateEntry

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrOrganisationNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound),
		errors.Is(err, apperrors.ErrIndustryNotFound),
		errors.Is(err, apperrors.ErrSkillNotFound),
		errors.Is(err, apperrors.ErrPreferenceNotFound),
		errors.Is(err, apperrors.ErrLogbookNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden
	}
	return http.StatusInternalServerError, dto.ErrorCodeInternalServer
}

// publicMessage keeps internal error text out of 500 responses
func publicMessage(err error, code dto.ErrorCode) string {
	if code == dto.ErrorCodeInternalServer {
		return "An unexpected error occurred"
	}
	return err.Error()
}
