package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Messages shown to the user when a stock lookup fails.
const (
	MsgRateLimited   = "Rate limit reached. Please wait a minute and try again."
	MsgNotFound      = "Stock symbol not found"
	MsgBadGateway    = "Upstream data unavailable. Please try again."
	MsgUnavailable   = "Service temporarily unavailable. Please try again shortly."
	MsgServerError   = "Server error occurred"
	MsgInvalid       = "Invalid request"
	MsgUnexpected    = "Unexpected response"
	MsgNetwork       = "Network connection failed"
	MsgFetchFailed   = "Failed to fetch stock data. Please try again."
	MsgInvalidSymbol = "Invalid company symbol"
)

var (
	// ErrNetwork means no HTTP response was received.
	ErrNetwork = errors.New(MsgNetwork)
	// ErrCompanies means the company directory could not be loaded.
	ErrCompanies = errors.New("companies failed to load")
	// ErrNoPrediction means the prediction response carried no numeric value.
	ErrNoPrediction = errors.New("prediction unavailable")
	// ErrEmptyResponse means the fetcher returned neither a series nor an error.
	ErrEmptyResponse = errors.New("empty stock response")
	// ErrInvalidSymbol is returned for blank symbols before any request is made.
	ErrInvalidSymbol = errors.New(MsgInvalidSymbol)
)

// APIError is a non-2xx response from the stock endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// StatusMessage returns the generic user-facing message for an HTTP status.
func StatusMessage(status int) string {
	switch {
	case status == http.StatusTooManyRequests:
		return MsgRateLimited
	case status == http.StatusNotFound:
		return MsgNotFound
	case status == http.StatusBadGateway:
		return MsgBadGateway
	case status == http.StatusServiceUnavailable:
		return MsgUnavailable
	case status >= 500:
		return MsgServerError
	case status >= 400:
		return MsgInvalid
	default:
		return MsgUnexpected
	}
}

// NewAPIError builds an APIError from a failed response body. For 4xx and 5xx
// the server's detail (JSON "detail" or the raw text) overrides the generic message.
func NewAPIError(status int, body []byte) *APIError {
	msg := StatusMessage(status)
	if status >= 400 {
		if detail := extractDetail(body); detail != "" {
			msg = detail
		}
	}
	return &APIError{Status: status, Message: msg}
}

// extractDetail returns the server's explanation. Raw text is used only when
// the body is not JSON; any JSON without a string "detail" yields "".
func extractDetail(body []byte) string {
	if !json.Valid(body) {
		return strings.TrimSpace(string(body))
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := obj["detail"].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// UserMessage maps any fetch error to the text shown in the chart banner.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrNetwork):
		return MsgNetwork
	case errors.Is(err, ErrInvalidSymbol):
		return MsgInvalidSymbol
	default:
		return MsgFetchFailed
	}
}
