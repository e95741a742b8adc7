package casper

import "fmt"

// SystemCallError reports a failed privileged contract call: either the call
// itself failed or its result could not be decoded. Both cases are fatal to
// the operation that issued the call; the distinction is preserved only in
// the wrapped cause. No retries happen at this layer.
type SystemCallError struct {
	// Method is the contract method the call targeted.
	Method string
	// Err is the underlying cause.
	Err error
}

func (e *SystemCallError) Error() string {
	return fmt.Sprintf("failed system call %s: %v", e.Method, e.Err)
}

func (e *SystemCallError) Unwrap() error {
	return e.Err
}

func failedSystemCall(method string, err error) error {
	return &SystemCallError{Method: method, Err: err}
}
