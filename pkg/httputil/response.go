// Package httputil provides shared HTTP utilities for consistent response handling.
//
// Every writer sets Content-Length explicitly so clients never depend on
// chunked transfer encoding for these small responses.
package httputil

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// WriteText writes a plain-text response with the given status code.
func WriteText(w http.ResponseWriter, status int, body string) {
	writeBody(w, status, "text/plain", []byte(body))
}

// WriteHTML writes an HTML response with the given status code.
func WriteHTML(w http.ResponseWriter, status int, body []byte) {
	writeBody(w, status, "text/html; charset=utf-8", body)
}

// WriteJSON writes a JSON response with the given status code.
// Marshal errors surface as a 500 with a plain-text body.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		writeBody(w, http.StatusInternalServerError, "text/plain", []byte("Internal error"))
		return
	}
	writeBody(w, status, "application/json", body)
}

// WriteError writes a JSON error response with an error code and a
// human-readable message.
func WriteError(w http.ResponseWriter, status int, errCode, message string) {
	WriteJSON(w, status, map[string]string{
		"error":   errCode,
		"message": message,
	})
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
