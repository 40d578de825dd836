package api

import (
	"errors"
	"fmt"

	"github.com/casualjim/fmp/internal/httpx"
)

var (
	// ErrMissingAPIKey is returned by New when no api key is configured.
	ErrMissingAPIKey = errors.New("fmp: api key is required (set FMP_API_KEY or use api.APIKey)")
	// ErrInvalidArgument marks input rejected before any request is sent.
	ErrInvalidArgument = errors.New("fmp: invalid argument")
	// ErrNotFound is returned when FMP answers with an empty result for a single entity.
	ErrNotFound = errors.New("fmp: not found")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func notFound(subject string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, subject)
}

// IsUnauthorized reports whether err is an FMP 401 or 403: a wrong api key or an
// endpoint outside the plan.
func IsUnauthorized(err error) bool {
	return httpx.IsUnauthorized(err)
}

// IsRateLimited reports whether err is an FMP 429.
func IsRateLimited(err error) bool {
	return httpx.IsRateLimited(err)
}
