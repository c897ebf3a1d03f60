package post

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is the single error kind returned by Client. Message holds
// the normalized text; StatusCode is 0 when no HTTP response was received.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is (or wraps) a RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// networkError normalizes a failure that happened before any HTTP status
// was received: dial errors, timeouts, cancelled contexts.
func networkError(err error) *RequestError {
	return &RequestError{
		Message: err.Error(),
		Err:     err,
	}
}

// statusError normalizes a non-2xx response.
func statusError(method, url string, statusCode int) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Message: formatStatusMessage(
			statusCode,
			fmt.Sprintf("Http failure response for %s: %d %s", url, statusCode, http.StatusText(statusCode)),
		),
		Err: fmt.Errorf("%s %s: unexpected status %d", method, url, statusCode),
	}
}

// parseError normalizes a successful response whose body could not be read
// or is not JSON.
func parseError(url string, statusCode int, err error) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Message:    formatStatusMessage(statusCode, fmt.Sprintf("Http failure during parsing for %s", url)),
		Err:        err,
	}
}

func formatStatusMessage(statusCode int, message string) string {
	return fmt.Sprintf("Error Code: %d\nMessage: %s", statusCode, message)
}
