package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidMenuType = "INVALID_MENU_TYPE"
	ErrCodeInvalidLanguage = "INVALID_LANGUAGE"
	ErrCodeInvalidFile     = "INVALID_FILE"
	ErrCodeMenuNotFound    = "MENU_NOT_FOUND"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeStorageFailure  = "STORAGE_FAILURE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside the human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCredentials = NewDomainError(ErrCodeUnauthorised, "invalid credentials")
	ErrInvalidMenuType    = NewDomainError(ErrCodeInvalidMenuType, "invalid menu type or language")
	ErrMenuNotAvailable   = NewDomainError(ErrCodeMenuNotFound, "menu not available")
	ErrPdfNotFound        = NewDomainError(ErrCodeMenuNotFound, "PDF not found for this language")
	ErrNotPdf             = NewDomainError(ErrCodeInvalidFile, "only PDF files allowed")
	ErrFileTooLarge       = NewDomainError(ErrCodeInvalidFile, "file exceeds the 10MB limit")
	ErrUploadFailed       = NewDomainError(ErrCodeStorageFailure, "failed to upload to cloud storage")
)
