package dto

// ErrorResponse is the standard error body: a short human-readable message,
// no structured codes beyond the HTTP status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// MessageResponse is the standard success body for mutations without payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMessageResponse creates a standard success response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
