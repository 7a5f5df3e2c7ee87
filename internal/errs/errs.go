// Package errs provides the error kinds surfaced by the summarization pipeline.
package errs

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitConfigError  = 2
)

// Kind classifies an error.
type Kind int

const (
	KindConfig Kind = iota + 1
	KindIO
	KindParse
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	case KindParse:
		return "parse error"
	case KindService:
		return "service error"
	default:
		return "error"
	}
}

// Error is a kind-tagged error. Path names the file involved, if any.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, &Error{Kind: KindConfig}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Path == "" && t.Err == nil
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if e.Kind == KindConfig {
		return ExitConfigError
	}
	return ExitRuntimeError
}

// Sentinels for errors.Is checks.
var (
	ErrConfig  = &Error{Kind: KindConfig}
	ErrIO      = &Error{Kind: KindIO}
	ErrParse   = &Error{Kind: KindParse}
	ErrService = &Error{Kind: KindService}
)

// Config creates a configuration error.
func Config(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Op: "configuration error", Err: fmt.Errorf(format, args...)}
}

// IO wraps err as an I/O error on path.
func IO(op, path string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// Parse wraps err as a parse error on path.
func Parse(path string, err error) *Error {
	return &Error{Kind: KindParse, Op: "parse", Path: path, Err: err}
}

// Service wraps err as a completion service error.
func Service(op string, err error) *Error {
	return &Error{Kind: KindService, Op: op, Err: err}
}

// ExitCode maps any error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitRuntimeError
}
