package apperror

// ErrorCode is the general category of a failure, stable across endpoints.
type ErrorCode string

const (
	CodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// BusinessCode narrows an ErrorCode down to the specific reason.
type BusinessCode string

const (
	BusinessCodeGeneral              BusinessCode = "GENERAL"
	BusinessCodeMissingBody          BusinessCode = "MISSING_BODY"
	BusinessCodeMissingField         BusinessCode = "MISSING_FIELD"
	BusinessCodeInvalidSortField     BusinessCode = "INVALID_SORT_FIELD"
	BusinessCodeInvalidSortDirection BusinessCode = "INVALID_SORT_DIRECTION"
	BusinessCodeInvalidFormat        BusinessCode = "INVALID_FORMAT"
	BusinessCodePostNotFound         BusinessCode = "POST_NOT_FOUND"
)
