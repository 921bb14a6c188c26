package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthAccountLocked      ErrorCode = "AUTH_005"
	AuthEmailTaken         ErrorCode = "AUTH_006"
	AuthOAuthUnavailable   ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidID     ErrorCode = "VALIDATION_007"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryInvalidKind ErrorCode = "CATEGORY_002"
)

// Entry error codes (ENTRY_*), shared by income and purchases
const (
	EntryNotFound      ErrorCode = "ENTRY_001"
	EntryInvalidAmount ErrorCode = "ENTRY_002"
	EntryMissingName   ErrorCode = "ENTRY_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthAccountLocked:      "Account is locked or disabled",
	AuthEmailTaken:         "An account with this email already exists",
	AuthOAuthUnavailable:   "OAuth sign-in is not configured",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidID:     "Invalid identifier format",

	// Category errors
	CategoryNotFound:    "Category not found",
	CategoryInvalidKind: "Category type must be income or purchase",

	// Entry errors
	EntryNotFound:      "Entry not found",
	EntryInvalidAmount: "Entry amount must be a non-negative number",
	EntryMissingName:   "Purchase name is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
