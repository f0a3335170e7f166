package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches a field path to err. The path uses Go names joined with
// dots, and slice elements are addressed by index, for example
// Recipients.2.Address. Returns nil when err is nil.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField appends a field error to errorsOrNil. A nil fieldErrOrNil
// leaves errorsOrNil untouched, so validation code can chain calls.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q: ", e.field)
	if e.desc != "" {
		msg += e.desc + ": "
	}
	return msg + e.parent.Error()
}

func (e *fieldError) Cause() error  { return e.parent }
func (e *fieldError) Field() string { return e.field }

type fielder interface {
	Field() string
}

// FieldErrors walks the error tree and returns every error created for
// fieldName. Once a match is found its children are not inspected.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(found, err)
		}
		switch e := err.(type) {
		case unpacker:
			for _, child := range e.Unpack() {
				found = append(found, FieldErrors(child, fieldName)...)
			}
			return found
		case causer:
			err = e.Cause()
		default:
			return found
		}
	}
	return found
}
