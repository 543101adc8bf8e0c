package store

import (
	"fmt"
	"os"
)

// IOError reports a failed filesystem operation on the store file.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	if os.IsNotExist(e.Err) {
		return "File not found"
	}
	return fmt.Sprintf("IO error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports store file content that is not a valid JSON object of
// name to description pairs.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("JSON error: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// KeyNotFoundError reports a delete of a name that is not in the store.
type KeyNotFoundError struct {
	Name string
}

func (e *KeyNotFoundError) Error() string { return "Key not found: " + e.Name }
