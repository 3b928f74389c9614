package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when ToBytes receives a value of an
	// unsupported type.
	//
	// This indicates a test authoring error. Commands and responses must be
	// byte slices, strings, int slices, numeric scalars, or nil.
	ErrInvalidInput = errors.New("invalid input type")

	// ErrExhausted is returned when more read or write activity is attempted
	// than the declared exchange sequence covers.
	ErrExhausted = errors.New("exchange sequence exhausted")

	// ErrMismatch is returned when the accumulated written bytes diverge from
	// the expected write of the current exchange.
	ErrMismatch = errors.New("written bytes do not match expected command")

	// ErrIncompleteWrite is returned when a one-shot WriteCommand did not
	// complete a full match.
	//
	// WriteCommand is an atomic full-command operation. Use WriteBytes to
	// exercise partial writes.
	ErrIncompleteWrite = errors.New("write did not complete the expected command")

	// ErrUnreadResponse is returned when a write completes a match while the
	// previous canned response was never fully read.
	ErrUnreadResponse = errors.New("unread response present when writing")

	// ErrUnexpectedRead is returned when a read is attempted while the current
	// exchange still expects a write first.
	ErrUnexpectedRead = errors.New("unexpected read without prior write")

	// ErrDecode is returned by ReadString when the buffered response bytes are
	// not valid UTF-8.
	ErrDecode = errors.New("response is not valid UTF-8")
)

// InvalidInputError reports the offending value handed to ToBytes.
type InvalidInputError struct {
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %T", ErrInvalidInput, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// ExhaustedError reports an access past the end of the exchange sequence.
type ExhaustedError struct {
	// Steps is the total number of declared exchanges.
	Steps int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v: all %d exchanges already completed", ErrExhausted, e.Steps)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// MismatchError reports a divergence between the bytes written so far and the
// expected write of the current exchange.
type MismatchError struct {
	Step     int
	Expected []byte
	Actual   []byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: step %d wrote %q, expected %q",
		ErrMismatch, e.Step, e.Actual, e.Expected)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// IncompleteWriteError reports leftover bytes after a one-shot WriteCommand.
type IncompleteWriteError struct {
	Step     int
	Expected []byte
	Written  []byte
}

func (e *IncompleteWriteError) Error() string {
	return fmt.Sprintf("%v: step %d wrote %q, expected %q",
		ErrIncompleteWrite, e.Step, e.Written, e.Expected)
}

func (e *IncompleteWriteError) Unwrap() error { return ErrIncompleteWrite }

// UnreadResponseError reports response bytes that were never consumed before
// the next write completed.
type UnreadResponseError struct {
	Step   int
	Unread []byte
}

func (e *UnreadResponseError) Error() string {
	return fmt.Sprintf("%v: step %d left %q unread",
		ErrUnreadResponse, e.Step, e.Unread)
}

func (e *UnreadResponseError) Unwrap() error { return ErrUnreadResponse }

// UnexpectedReadError reports a read attempted while a write was still due.
type UnexpectedReadError struct {
	Step     int
	Expected []byte
}

func (e *UnexpectedReadError) Error() string {
	return fmt.Sprintf("%v: step %d still expects write %q",
		ErrUnexpectedRead, e.Step, e.Expected)
}

func (e *UnexpectedReadError) Unwrap() error { return ErrUnexpectedRead }

// DecodeError reports response bytes that could not be decoded as UTF-8.
type DecodeError struct {
	Data []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrDecode, e.Data)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }
