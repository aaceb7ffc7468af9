package dto

// ErrorResponse cuerpo de error para salidas estructuradas (CLI --output json).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
