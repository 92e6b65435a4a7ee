package swiftremote

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the server reports that the object does not
// exist at its URL.
var ErrNotFound = errors.New("object not found")

// UnexpectedStatusError is returned when the server answers a fetch with a
// status code that is neither 200 nor 404. No retry is attempted; the error
// propagates to the caller as-is.
type UnexpectedStatusError struct {
	Method     string
	URL        string
	Status     string
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.URL, e.Status)
}

// ChecksumError is returned by Content when verification is enabled and the
// digest of the fetched bytes does not match the object's etag. It carries
// both values for diagnostics. SetContentVerification(false) is the only
// sanctioned way to suppress this error kind.
type ChecksumError struct {
	Computed string
	Expected string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("content verification failed: computed etag %s, expected %s", e.Computed, e.Expected)
}
