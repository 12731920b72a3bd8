package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Machine-readable error codes so API clients can branch on the failure
// kind without parsing the message.
const (
	CodeMalformedInput    = "malformed_input"
	CodeWrongLength       = "wrong_length"
	CodeInvalidPrivateKey = "invalid_private_key"
	CodeUnknownNetwork    = "unknown_network"
)
