package dto

// ErrorCode is a machine-readable error classification
type ErrorCode string

// Error codes returned by the API
const (
	ErrorCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrorCodeResourceNotFound   ErrorCode = "RESOURCE_NOT_FOUND"
	ErrorCodeDuplicateEntry     ErrorCode = "DUPLICATE_ENTRY"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrorCodeInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail describes one API error
type ErrorDetail struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Field   string            `json:"field,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorDetail creates an error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField attaches the offending field name
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails attaches per-field messages
func (e *ErrorDetail) WithDetails(details map[string]string) *ErrorDetail {
	e.Details = details
	return e
}
