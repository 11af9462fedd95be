package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error codes the backend emits in error payloads.
const (
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// APIError is the backend's standardized error payload. Message is shown
// to the user verbatim; there is no automatic retry at this layer.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// StatusCode is the HTTP status the payload arrived with.
	StatusCode int `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// decodeError turns a non-2xx response into an *APIError. When the body
// is not the standard payload, a generic message carrying the HTTP status
// is returned instead.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr == nil && apiErr.Message != "" {
			return apiErr
		}
	}

	apiErr.Code = ErrCodeInternalError
	apiErr.Message = fmt.Sprintf("request failed: %s", resp.Status)
	return apiErr
}
