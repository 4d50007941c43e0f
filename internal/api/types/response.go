// internal/api/types/response.go
package types

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CloseResponse acknowledges a closed account. There is no account left to render.
type CloseResponse struct {
	Closed bool `json:"closed"`
}
