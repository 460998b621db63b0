package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse body for operations that return the affected identifier.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse body for delete operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
