package loader

import (
	"errors"
	"fmt"
)

// ErrTextNotSupported is returned by LoadText: free-text course lists have no
// parser yet.
var ErrTextNotSupported = errors.New("free-text course lists are not supported yet")

// IOError reports a resource that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not read course list %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports content that does not match the course list grammar.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid course list %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errEmptyInput = errors.New("empty input")
