package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/easyearn/admin-console/models"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most current data
	w.Header().Set("Cache-Control", "max-age=0")

	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// WriteData writes a successful envelope.
func WriteData(w http.ResponseWriter, statusCode int, data interface{}) {
	WriteResponse(w, statusCode, models.Response{Success: 1, Data: data})
}

// WriteError writes a failed envelope carrying the error details.
func WriteError(w http.ResponseWriter, statusCode int, code, details string) {
	WriteResponse(w, statusCode, models.Response{Success: 0, ErrorCode: code, ErrorDetails: details})
}

// UpstreamStatus maps an operation error to the JSON response status.
// Client errors reported by the admin API pass through; everything else is a
// bad gateway.
func UpstreamStatus(err error) int {
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status >= 400 && httpErr.Status < 500 {
		return httpErr.Status
	}
	return http.StatusBadGateway
}
