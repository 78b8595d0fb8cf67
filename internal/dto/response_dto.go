package dto

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is used for operations that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}
