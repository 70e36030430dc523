// Package errors provides structured error types for hopper.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindEncoding
	KindPattern
	KindParse
	KindConfig
	KindIO
	KindInvalid
	KindNotFound
	KindMux
)

func (k Kind) String() string {
	switch k {
	case KindEncoding:
		return "encoding error"
	case KindPattern:
		return "pattern error"
	case KindParse:
		return "parse error"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not found"
	case KindMux:
		return "multiplexer error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for hopper.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Entry errors
func PathNotUTF8(path string) error {
	return E(Op("entry.Expand"), KindEncoding, fmt.Sprintf("path %q is not valid utf-8", path))
}

func BadPattern(pattern string, err error) error {
	return E(Op("entry.Expand"), KindPattern, fmt.Sprintf("invalid glob pattern %q", pattern), err)
}

// Store errors
func StoreLoadFailed(path string, err error) error {
	return E(Op("store.Load"), KindConfig, fmt.Sprintf("failed to load entries from %s", path), err)
}

func StoreSaveFailed(path string, err error) error {
	return E(Op("store.Save"), KindConfig, fmt.Sprintf("failed to save entries to %s", path), err)
}

// Multiplexer errors
func ListSessionsFailed(err error) error {
	return E(Op("zellij.ListSessions"), KindMux, "failed to list sessions", err)
}

func ListingNotUTF8() error {
	return E(Op("zellij.ParseSessions"), KindEncoding, "session listing is not valid utf-8")
}
