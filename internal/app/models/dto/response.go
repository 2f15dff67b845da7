package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope for every JSON response
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse wraps data in the response envelope
func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// ErrorResponse wraps an error detail in the response envelope
func ErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// HandleValidationError converts gin binding errors into a field-keyed
// validation error detail
func HandleValidationError(err error) *ErrorDetail {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Request validation failed")

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		detail.Message = err.Error()
		return detail
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = validationMessage(fieldError)
	}
	return detail.WithDetails(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is below the allowed minimum"
	case "max":
		return "Value is above the allowed maximum"
	case "gte":
		return "Value is below the allowed minimum"
	case "lte":
		return "Value is above the allowed maximum"
	default:
		return "Invalid value"
	}
}
