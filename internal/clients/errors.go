package clients

import "errors"

var (
	// ErrNetwork wraps transport failures reaching an upstream service.
	ErrNetwork = errors.New("upstream unreachable")
	// ErrUpstreamStatus is returned for any non-2xx upstream response.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrFormatMismatch is returned when a body does not have the documented shape.
	ErrFormatMismatch = errors.New("unexpected upstream response shape")
)
