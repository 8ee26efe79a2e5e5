// Package shared holds helpers common to every HTTP handler.
package shared

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondJSON writes v with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondErrorStatus writes the error envelope for a status code.
func RespondErrorStatus(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil && status < http.StatusInternalServerError {
		msg = err.Error()
	}
	RespondJSON(w, status, ErrorBody{Error: msg})
}

// DecodeJSON decodes a request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
