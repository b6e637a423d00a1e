package httpx

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope returned by every API endpoint.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Results *int              `json:"results,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope carrying data.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Status: "success", Data: data})
}

// WriteDataMessage writes a success envelope carrying a message and data.
func WriteDataMessage(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Response{Status: "success", Message: message, Data: data})
}

// WriteList writes a success envelope for list responses, including the
// result count alongside the data.
func WriteList(w http.ResponseWriter, status int, count int, data any) {
	WriteJSON(w, status, Response{Status: "success", Results: &count, Data: data})
}

// WriteMessage writes a success envelope with only a message.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Status: "success", Message: message})
}

// WriteError writes an error envelope with the given message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Status: "error", Message: message})
}

// WriteValidationError writes a 400 error envelope carrying per-field
// validation messages.
func WriteValidationError(w http.ResponseWriter, errs map[string]string) {
	WriteJSON(w, http.StatusBadRequest, Response{
		Status:  "error",
		Message: "Validation failed",
		Errors:  errs,
	})
}
