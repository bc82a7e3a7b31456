package dto

// ErrorResponse is returned for every rejected request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
