package ports

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed fetch errors.
var (
	ErrTransport = errors.New("transport error")
	ErrDecode    = errors.New("decode error")
)

// TransportError reports that the request could not complete or the server
// did not answer with a usable JSON response.
type TransportError struct {
	// Op describes the failed step, e.g. "sending request".
	Op string
	// StatusCode is the HTTP status when one was received, zero otherwise.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("transport: %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("transport: %s (status %d)", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
	default:
		return "transport: " + e.Op
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrTransport) match any *TransportError.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError reports that the response body does not match the record schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) match any *DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ErrorKind classifies a fetch failure for logging.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		return "unknown"
	}
}
