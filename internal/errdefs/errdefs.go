// Package errdefs classifies failures into the two categories the CLI
// distinguishes at exit: input problems (bad sources, missing credentials,
// malformed arguments) and transport problems (the generation API failed).
// Only cmd.Execute translates these into process exit codes.
package errdefs

import (
	"errors"
	"fmt"
)

// Exit codes reported by the imgx process.
const (
	ExitOK        = 0
	ExitTransport = 1
	ExitInput     = 2
)

// InputError marks a failure caused by what the user handed us: an
// unreadable or empty image source, a missing API key, bad arguments.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }

func (e *InputError) Unwrap() error { return e.Err }

// TransportError marks a failure talking to the generation service:
// network errors, non-success statuses, service-reported failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Input wraps err as an input-class error. A nil err stays nil.
func Input(err error) error {
	if err == nil {
		return nil
	}
	return &InputError{Err: err}
}

// Inputf formats an input-class error. The %w verb is supported.
func Inputf(format string, args ...any) error {
	return &InputError{Err: fmt.Errorf(format, args...)}
}

// Transport wraps err as a transport-class error. A nil err stays nil.
func Transport(err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Err: err}
}

// Transportf formats a transport-class error. The %w verb is supported.
func Transportf(format string, args ...any) error {
	return &TransportError{Err: fmt.Errorf(format, args...)}
}

// IsInput reports whether err is (or wraps) an InputError.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ExitCode maps an error to the process exit code. Unclassified errors
// count as transport-level failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsInput(err) {
		return ExitInput
	}
	return ExitTransport
}
