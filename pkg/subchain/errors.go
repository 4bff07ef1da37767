package subchain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed call against the SubChain API. Status is the
// HTTP status code, or 0 for network-level failures that never produced a
// response.
type APIError struct {
	Status  int    `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// GenericErrorMessage is used when the server gives no usable detail.
const GenericErrorMessage = "request failed"

// NetworkErrorMessage is used for connection-level failures.
const NetworkErrorMessage = "network request failed"

// errorBody mirrors the shapes the Django API uses for error payloads.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ExtractErrorMessage pulls a human-readable message out of an error body.
// Fields are consulted in priority order: detail, message, error. A body that
// is not JSON, or carries none of them, yields the generic message.
func ExtractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return GenericErrorMessage
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return GenericErrorMessage
	}

	switch {
	case parsed.Detail != "":
		return parsed.Detail
	case parsed.Message != "":
		return parsed.Message
	case parsed.Error != "":
		return parsed.Error
	default:
		return GenericErrorMessage
	}
}

// NewAPIError builds an APIError from a status code and raw response body.
func NewAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Message: ExtractErrorMessage(body)}
}

// NewNetworkError wraps a transport-level failure as a status-0 APIError.
func NewNetworkError(err error) *APIError {
	msg := NetworkErrorMessage
	if err != nil {
		msg = err.Error()
	}

	return &APIError{Status: 0, Message: msg}
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return false
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}

	return false
}

// IsNetworkError reports whether err never reached the API.
func IsNetworkError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0
	}

	return false
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrBaseURLRequired        = errors.New("base URL is required")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrNoRefreshToken         = errors.New("no refresh token held")
	ErrRefreshFailed          = errors.New("token refresh failed")
	ErrWalletAddressRequired  = errors.New("wallet address is required")
	ErrNoSubscriptionLoaded   = errors.New("no subscription loaded")
	ErrNoTokenStoreConfigured = errors.New("no token store configured")
	ErrStoreClosed            = errors.New("store is closed")
)
