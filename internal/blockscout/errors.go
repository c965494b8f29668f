package blockscout

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an Adapter Client failure.
type Kind int

const (
	// KindTimeout means the request exceeded the configured timeout.
	KindTimeout Kind = iota + 1
	// KindConnection means the request never produced an HTTP response
	// (DNS failure, connection refused, connection reset).
	KindConnection
	// KindUpstream means the upstream answered with a non-2xx status.
	KindUpstream
	// KindMalformed means the response body was not valid JSON.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection failure"
	case KindUpstream:
		return "upstream error"
	case KindMalformed:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Error is the classified failure returned by Client.Get. For KindUpstream
// the Status and Body fields carry the upstream status code and the error
// body verbatim — upstream messages are wrapped, never reformatted.
type Error struct {
	Kind    Kind
	Status  int
	Body    []byte
	Timeout time.Duration
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("timeout: request exceeded %s", e.Timeout)
	case KindConnection:
		return fmt.Sprintf("connection failure: %v", e.Err)
	case KindUpstream:
		if len(e.Body) > 0 {
			return fmt.Sprintf("upstream error: status %d: %s", e.Status, e.Body)
		}
		return fmt.Sprintf("upstream error: status %d", e.Status)
	case KindMalformed:
		return "malformed response: body is not valid JSON"
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind returns the classification of err, or 0 when err is not an
// Adapter Client error.
func ErrorKind(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}
