package dto

// ErrorResponse is the uniform error payload. Code carries the domain error
// code so clients can match on it without parsing the message.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
