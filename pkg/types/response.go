// Package types holds the wire envelopes shared by every endpoint.
package types

// SuccessEnvelope wraps successful payloads: listings, lookup results,
// health snapshots.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape. Details is populated only for codes
// whose metadata allows it (field-level validation messages today).
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps APIError under a fixed "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
