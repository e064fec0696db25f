package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data"`
	Errors  map[string]string `json:"errors,omitempty"`
	Details string            `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := Envelope{
		Success: false,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	write(w, statusCode, resp)
}

func WriteValidationResponse(w http.ResponseWriter, message string, fields map[string]string) {
	write(w, http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	write(w, statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func write(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigDefault.NewEncoder(w).Encode(body)
}
