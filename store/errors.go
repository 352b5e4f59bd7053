package store

import (
	"fmt"
	"net/http"
)

// OperationError wraps a storage backend failure with enough context to log
// it and map it to a response code.
type OperationError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (oe OperationError) Error() string {
	if oe.Key == "" {
		return fmt.Sprintf("storage %s failed for bucket %s: %v", oe.Op, oe.Bucket, oe.Err)
	}
	return fmt.Sprintf("storage %s failed for %s/%s: %v", oe.Op, oe.Bucket, oe.Key, oe.Err)
}

func (oe OperationError) Unwrap() error {
	return oe.Err
}

func (oe OperationError) StatusCode() int {
	return http.StatusInternalServerError
}
