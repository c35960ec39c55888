package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, sonic.ConfigFastest, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.WriteHeader(statusCode)
		return
	}
	writeJSON(w, statusCode, sonic.ConfigDefault, body)
}

func writeJSON(w http.ResponseWriter, statusCode int, api sonic.API, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Error("writing response body error", slog.String("error", err.Error()))
	}
}
