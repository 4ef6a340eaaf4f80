package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondOK(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, Envelope{ErrMsg: "success", Data: data})
}

func respondError(w http.ResponseWriter, err Envelope) {
	respondJSON(w, err.ErrCode, err)
}

func badRequest(format string, args ...any) Envelope {
	return Envelope{
		ErrCode: http.StatusBadRequest,
		ErrMsg:  fmt.Sprintf(format, args...),
		ErrType: BADREQUEST,
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
