package api

import (
	"encoding/json"
	"net/http"
)

// ListResponse is the read envelope: { status, message, data }.
type ListResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ResultResponse is the mutation envelope: { success, message, data? }.
type ResultResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope: { status, message }.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// RespondData writes a read envelope with HTTP 200.
func RespondData(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, ListResponse{Status: http.StatusOK, Message: message, Data: data})
}

// RespondCreated writes a mutation envelope with HTTP 201.
func RespondCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, ResultResponse{Success: true, Data: data})
}

// RespondResult writes a mutation envelope with HTTP 200.
func RespondResult(w http.ResponseWriter, success bool, message string) {
	writeJSON(w, http.StatusOK, ResultResponse{Success: success, Message: message})
}

// RespondResultData writes a mutation envelope carrying a record.
func RespondResultData(w http.ResponseWriter, success bool, message string, data interface{}) {
	writeJSON(w, http.StatusOK, ResultResponse{Success: success, Message: message, Data: data})
}

// RespondError writes the failure envelope with the given code.
func RespondError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Status: code, Message: message})
}
