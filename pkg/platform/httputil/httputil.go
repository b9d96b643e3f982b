// Package httputil centralizes the JSON response envelope so every handler
// emits errors the same way.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "mcomock/pkg/domain-errors"
)

// WriteJSON serializes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError translates a domain error into the JSON error envelope. Internal
// errors omit the description so defects never leak details to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) && de.Message != "" {
			body["error_description"] = de.Message
		}
	}
	WriteJSON(w, StatusOf(code), body)
}

// StatusOf maps an error code to its HTTP status.
func StatusOf(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeUnknownDimension:
		return http.StatusBadRequest
	case dErrors.CodeNoResult:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
