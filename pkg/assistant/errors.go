package assistant

import "fmt"

type ErrorKind string

const (
	// ErrorKindUnavailable covers transport failures and timeouts.
	ErrorKindUnavailable ErrorKind = "unavailable"
	// ErrorKindRejectedByProvider covers non-2xx responses, including
	// safety blocks and input-size rejections.
	ErrorKindRejectedByProvider ErrorKind = "rejected_by_provider"
	// ErrorKindEmptyResponse covers well-formed responses carrying no
	// candidate text.
	ErrorKindEmptyResponse ErrorKind = "empty_response"
)

// ModelError is the only error type Generate returns; raw transport
// errors never escape the client.
type ModelError struct {
	Kind ErrorKind
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model call failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("model call failed (%s)", e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
