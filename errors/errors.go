package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors shared by all extensions. Codes are part of the ABCI result
// and must never be renumbered.
var (
	// ErrUnauthorized is returned when the transaction signers are not
	// allowed to perform the operation.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned for messages that cannot be handled.
	ErrMsg = Register(4, "invalid message")

	// ErrModel is returned for entities that cannot be persisted.
	ErrModel = Register(5, "invalid model")

	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman marks a code path that is unreachable when the framework
	// is used correctly.
	ErrHuman = Register(7, "coding error")

	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when an entity is not in the state required by
	// the operation.
	ErrState = Register(10, "invalid state")

	ErrType = Register(11, "invalid type")

	// ErrInsufficientAmount is returned when a balance or allowance does
	// not cover the requested amount.
	ErrInsufficientAmount = Register(12, "insufficient amount")

	ErrAmount = Register(13, "invalid amount")

	ErrInput = Register(14, "invalid input")

	ErrExpired = Register(15, "expired")

	// ErrOverflow is returned when a computation result does not fit its
	// type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrCurrency is returned for unknown tickers and mixed currency
	// arithmetic.
	ErrCurrency = Register(17, "currency")

	// ErrDatabase wraps failures of the underlying storage.
	ErrDatabase = Register(19, "database")

	// ErrIteratorDone is returned by an iterator with no more elements.
	ErrIteratorDone = Register(20, "iterator done")

	ErrMetadata = Register(21, "metadata")

	// ErrPanic is set only by Recover. Its message is hidden from clients.
	ErrPanic = Register(111222, "panic")
)

// usedCodes guards code uniqueness. Code 1 is reserved for errors that do
// not come from this package.
var usedCodes = map[uint32]*Error{
	1: {code: 1, desc: internalABCILog},
}

// Register declares a new root error. It panics when code is taken, so call
// it only from package level variable declarations.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{code: code, desc: description}
	usedCodes[code] = err
	return err
}

// Error is a root error. Every error returned by a handler should wrap one
// of them so that the client receives a stable code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string    { return e.desc }
func (e Error) ABCICode() uint32 { return e.code }

// Is returns true if err is this root error, wraps it, or is a multi error
// containing it. A nil kind matches only nil errors, including typed nils.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return err == nil || reflect.ValueOf(err).IsNil()
	}
	for err != nil {
		if err == kind {
			return true
		}
		switch e := err.(type) {
		case unpacker:
			for _, inner := range e.Unpack() {
				if kind.Is(inner) {
					return true
				}
			}
			return false
		case causer:
			err = e.Cause()
		default:
			return false
		}
	}
	return false
}

// Wrap adds description to err. The innermost wrap records a stack trace.
// A nil err results in nil, so it can wrap a returned value directly.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string { return e.msg + ": " + e.parent.Error() }
func (e *wrappedError) Cause() error  { return e.parent }

// Recover converts a panic into ErrPanic assigned to err. It must be
// deferred directly.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type unpacker interface {
	Unpack() []error
}
