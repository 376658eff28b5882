package github

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/ghcount/pkg/errors"
)

// Result is the outcome of decoding an API response body. It is either
// [Success] or [*PlatformError]; callers switch on the concrete type.
type Result interface {
	isResult()
}

// Success carries the raw JSON payload of a non-error response.
type Success struct {
	Payload json.RawMessage
}

func (Success) isResult() {}

// PlatformError is GitHub's error envelope, e.g.
//
//	{"message": "Bad credentials", "documentation_url": "https://docs.github.com/rest"}
//
// It is returned as the error value of every gateway operation that received
// one.
type PlatformError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`

	// StatusCode is the HTTP status the envelope arrived with. It is
	// informational; detection never depends on it.
	StatusCode int `json:"-"`
}

func (*PlatformError) isResult() {}

// Error returns the platform's message verbatim.
func (e *PlatformError) Error() string { return e.Message }

// envelopeKeys are the only top-level keys an error envelope carries.
var envelopeKeys = map[string]bool{
	"message":           true,
	"documentation_url": true,
	"errors":            true,
	"status":            true,
}

// Decode classifies a response body.
//
// A body is a platform error iff it is a JSON object with a string
// "message" and no keys outside the envelope keys. Any other valid JSON,
// including resources that happen to have a "message" field, is a Success.
// A body that is not JSON at all fails with DECODE_ERROR.
func Decode(body []byte) (Result, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, errors.New(errors.ErrCodeDecode, "response body is not valid JSON")
	}

	if trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode response object")
		}
		if isEnvelope(fields) {
			var pe PlatformError
			if err := json.Unmarshal(trimmed, &pe); err != nil {
				return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode error envelope")
			}
			return &pe, nil
		}
	}
	return Success{Payload: json.RawMessage(trimmed)}, nil
}

func isEnvelope(fields map[string]json.RawMessage) bool {
	msg, ok := fields["message"]
	if !ok || len(msg) == 0 || msg[0] != '"' {
		return false
	}
	for k := range fields {
		if !envelopeKeys[k] {
			return false
		}
	}
	return true
}
