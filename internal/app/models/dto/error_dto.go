package dto

// ErrorResponse is the body returned for every domain error.
type ErrorResponse struct {
	Message string `json:"message" example:"Course id not found: 9a29fff7-564a-4cc9-8fe1-36f6ca9bc223"`
}

// NewErrorResponse creates an error body carrying message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
