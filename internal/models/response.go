package models

// APIError is the error payload of an unsuccessful API response.
type APIError struct {
	Message string `json:"message"`
}

// APIResponse is the envelope every JSON endpoint responds with:
// {"success": true, "data": ...} or {"success": false, "error": {"message": ...}}.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail wraps an error message in an unsuccessful envelope.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Error: &APIError{Message: message}}
}
