package internal

import (
	"context"
	"errors"
	"net"
	"net/url"
)

var (
	// ErrNetwork marks a transport level failure. Callers may retry.
	ErrNetwork = errors.New("network error")

	// ErrAuth marks a non-2xx answer from a provider.
	ErrAuth = errors.New("provider rejected request")

	// ErrMalformedResponse marks a provider body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed provider response")

	ErrMissingCredentials = errors.New("missing provider credentials")
	ErrEmptyQuery         = errors.New("empty search query")
)

// IsNetworkError reports whether err came from the transport rather than from
// the provider's answer.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
