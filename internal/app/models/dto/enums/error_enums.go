package enums

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeInvalidAccessCode       ErrorCode = "AUTH_001"
	ErrorCodeAccessCodeInactive      ErrorCode = "AUTH_002"
	ErrorCodeAccessCodeExpired       ErrorCode = "AUTH_003"
	ErrorCodeAccessCodeUsageExceeded ErrorCode = "AUTH_004"
	ErrorCodeUnauthenticated         ErrorCode = "AUTH_005"
	ErrorCodeUnauthorized            ErrorCode = "AUTH_006"
	ErrorCodeResourceNotFound        ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists   ErrorCode = "RES_002"
	ErrorCodeTestNotFound            ErrorCode = "RES_003"
	ErrorCodeValidationFailed        ErrorCode = "VAL_001"
	ErrorCodeInternalServer          ErrorCode = "SRV_001"
	ErrorCodeDatabaseError           ErrorCode = "SRV_002"
	ErrorCodeExternalServiceError    ErrorCode = "SRV_003"
	ErrorCodeContentNotConfigured    ErrorCode = "SRV_004"
	ErrorCodeGenerationFailed        ErrorCode = "SRV_005"
	ErrorCodeBadRequest              ErrorCode = "BAD_REQUEST"
	ErrorCodeRateLimited             ErrorCode = "RATE_LIMITED"
)
