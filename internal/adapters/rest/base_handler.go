package rest

import (
	"encoding/json"
	"net/http"

	"github.com/philly/posts-api/internal/adapters/api"
	"github.com/philly/posts-api/internal/platform/apperror"
	"github.com/philly/posts-api/internal/platform/logger"
)

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONError writes an api.Error response
func (h *BaseHandler) WriteJSONError(w http.ResponseWriter, r *http.Request, body api.Error, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error(r.Context(), "failed to encode error response",
			"error", err,
			"error_code", body.Code,
			"status_code", statusCode,
		)
	}
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError maps err onto a JSON error response. AppErrors keep their
// status and message; anything else is logged and reported as a 500.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.From(err)
	if !ok {
		h.logger.Error(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
		h.WriteJSONError(w, r, api.Error{
			Error: "Internal server error",
			Code:  string(apperror.CodeInternalError),
		}, http.StatusInternalServerError)
		return
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "error", appErr, "path", r.URL.Path)
	} else {
		h.logger.Debug(r.Context(), "request rejected",
			"code", appErr.Code,
			"business_code", appErr.BusinessCode,
			"path", r.URL.Path,
		)
	}

	h.WriteJSONError(w, r, api.Error{
		Error:        appErr.Message,
		Code:         string(appErr.Code),
		BusinessCode: string(appErr.BusinessCode),
		Context:      appErr.Details,
	}, appErr.HTTPStatus)
}
