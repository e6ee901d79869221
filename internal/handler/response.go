package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

// writeJSON encodes before writing the header so an unencodable value
// becomes a 500 rather than an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to status codes; anything unknown
// becomes a 500 with fallback as message.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *domain.ValidationError
		predictionErr *domain.PredictionError
	)
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrEmptySelection):
		writeError(w, http.StatusUnprocessableEntity, "please select at least one symptom")
	case errors.As(err, &predictionErr):
		writeError(w, http.StatusBadGateway, predictionErr.Reason)
	case errors.Is(err, domain.ErrStorageUnavailable):
		writeError(w, http.StatusServiceUnavailable, fallback+": storage unavailable")
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
