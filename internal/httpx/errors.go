package httpx

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failed FMP request: a non-2xx status or an error envelope.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fmp %s: %d %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsUnauthorized reports an authentication or plan failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited reports that FMP rejected the request for exceeding the plan's limits.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsUnauthorized reports whether err wraps an APIError for which IsUnauthorized holds.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

// IsRateLimited reports whether err wraps an APIError for which IsRateLimited holds.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsRateLimited()
}
