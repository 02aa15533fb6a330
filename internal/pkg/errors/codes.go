package errors

import "net/http"

// Error code constants. Errors carry code + message; handlers translate the
// HTTP status, backend logs stay in English.

// Entity error codes.
const (
	CodeProjectNotFound      = "PROJECT_NOT_FOUND"
	CodeSolutionNotFound     = "SOLUTION_NOT_FOUND"
	CodeSubcomponentNotFound = "SUBCOMPONENT_NOT_FOUND"
	CodeProjectExists        = "PROJECT_ALREADY_EXISTS"
	CodeSolutionExists       = "SOLUTION_ALREADY_EXISTS"
	CodeSubcomponentExists   = "SUBCOMPONENT_ALREADY_EXISTS"
)

// Phase and checklist error codes.
const (
	CodePhaseUnknown        = "PHASE_UNKNOWN"
	CodePhaseNotEnabled     = "PHASE_NOT_ENABLED"
	CodeChecklistRowUnknown = "CHECKLIST_ROW_UNKNOWN"
)

// RAG error codes.
const (
	CodeRagStatusRequired = "RAG_STATUS_REQUIRED"
	CodeRagReasonRequired = "RAG_REASON_REQUIRED"
)

// Concurrency error codes.
const (
	CodeWriteConflict = "WRITE_CONFLICT"
)

// Auth error codes.
const (
	CodeAuthFailed     = "AUTH_FAILED"
	CodeSessionExpired = "SESSION_EXPIRED"
	CodeSessionInvalid = "SESSION_INVALID"
	CodeAccountLocked  = "ACCOUNT_LOCKED"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeMalformedCSV        = "MALFORMED_CSV"
)

// Convenience constructors using predefined codes.

// ErrSolutionNotFound creates a solution not found error.
func ErrSolutionNotFound(solutionID string) *AppError {
	return &AppError{
		Code:       CodeSolutionNotFound,
		Message:    "solution not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"solution_id": solutionID},
	}
}

// ErrSubcomponentNotFound creates a subcomponent not found error.
func ErrSubcomponentNotFound(subcomponentID string) *AppError {
	return &AppError{
		Code:       CodeSubcomponentNotFound,
		Message:    "subcomponent not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"subcomponent_id": subcomponentID},
	}
}

// ErrPhaseUnknown creates a validation error for a phase id missing from the catalog.
func ErrPhaseUnknown(phaseID string) *AppError {
	return &AppError{
		Code:       CodePhaseUnknown,
		Message:    "phase " + phaseID + " does not exist",
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"phase_id": phaseID},
	}
}

// ErrWriteConflict creates a conflict error for a lost uniqueness race.
// The caller may retry the operation.
func ErrWriteConflict(entityType string) *AppError {
	return &AppError{
		Code:       CodeWriteConflict,
		Message:    "concurrent write conflict on " + entityType,
		HTTPStatus: http.StatusConflict,
	}
}
