// Package httputil centralizes JSON response envelopes so every handler
// speaks the same wire format.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "signup/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for all error responses. Internal errors
// omit the description so implementation detail never leaks to clients.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Field            string `json:"field,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP error response. Unknown
// error types collapse to a bare internal_error envelope.
func WriteError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: string(dErrors.CodeInternal)}
	status := http.StatusInternalServerError

	var de *dErrors.Error
	if errors.As(err, &de) {
		resp.Error = string(de.Code)
		status = toHTTPStatus(de.Code)
		if de.Code != dErrors.CodeInternal {
			resp.ErrorDescription = de.Message
			resp.Field = de.Field
		}
	}

	WriteJSON(w, status, resp)
}

func toHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
