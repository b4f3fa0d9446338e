package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/philly/posts-api/internal/adapters/api"
	"github.com/philly/posts-api/internal/platform/apperror"
)

// WriteJSONError writes a JSON error response in the same shape as
// rest.BaseHandler: the message under "error", the category under "code".
func WriteJSONError(w http.ResponseWriter, code apperror.ErrorCode, message string, status int) {
	WriteJSONErrorWithDetails(w, code, "", message, status, nil)
}

// WriteJSONErrorWithDetails writes a JSON error response with a business code
// and additional context. Empty values are left out of the body.
func WriteJSONErrorWithDetails(w http.ResponseWriter, code apperror.ErrorCode, bizCode apperror.BusinessCode, message string, status int, details map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := api.Error{
		Error:        message,
		Code:         string(code),
		BusinessCode: string(bizCode),
	}
	if len(details) > 0 {
		body.Context = details
	}

	// Ignore encoding errors here as we're already in error handling
	_ = json.NewEncoder(w).Encode(body)
}

// ParamErrorHandler reports parameter binding failures as 400s.
func ParamErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		WriteJSONErrorWithDetails(w, apperror.CodeInvalidParameter, apperror.BusinessCodeInvalidFormat,
			fmt.Sprintf("Invalid format for parameter %s", paramErr.ParamName),
			http.StatusBadRequest,
			map[string]any{"parameter": paramErr.ParamName},
		)
		return
	}
	WriteJSONError(w, apperror.CodeInvalidRequest, "Invalid request", http.StatusBadRequest)
}

// NotFound answers requests that match no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, apperror.CodeNotFound, "Resource not found", http.StatusNotFound)
}

// MethodNotAllowed answers requests whose path exists under another method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, apperror.CodeInvalidRequest, fmt.Sprintf("Method %s not allowed", r.Method), http.StatusMethodNotAllowed)
}
