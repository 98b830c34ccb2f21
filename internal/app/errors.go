package app

import (
	"errors"
	"fmt"
)

var (
	// ErrIO matches every failure to load the file being searched.
	ErrIO = errors.New("i/o error")
	// ErrInvalidEncoding is wrapped when the file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// IOError reports a failed read of the file being searched.
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause, e.g. fs.ErrNotExist.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports that every IOError is an ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
