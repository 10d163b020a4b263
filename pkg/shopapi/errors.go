package shopapi

import "fmt"

// ErrorKind classifies API failures for the error-reporting channel.
type ErrorKind string

const (
	// KindNetwork covers transport failures: the request never completed.
	KindNetwork ErrorKind = "NetworkError"
	// KindValidation covers 4xx responses: the backend rejected the request.
	KindValidation ErrorKind = "ValidationError"
	// KindServer covers 5xx responses and undecodable response bodies.
	KindServer ErrorKind = "ServerError"
)

// APIError is the typed error returned by every Client call. Retryable is
// true for transient failures (transport errors, 5xx) and false for
// business-rule rejections.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func networkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: err.Error(), Retryable: true}
}

func statusError(code int, msg string) *APIError {
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", code)
	}
	if code >= 500 {
		return &APIError{Kind: KindServer, StatusCode: code, Message: msg, Retryable: true}
	}
	return &APIError{Kind: KindValidation, StatusCode: code, Message: msg, Retryable: false}
}

func decodeError(err error) *APIError {
	return &APIError{Kind: KindServer, Message: "malformed response body: " + err.Error(), Retryable: false}
}
