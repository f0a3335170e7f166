package errors

import "reflect"

const (
	// SuccessABCICode is the code of a successfully processed request.
	SuccessABCICode = 0

	// Errors that do not carry an ABCI code are reported with this code
	// and, outside of debug mode, with a generic log message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log to put in an ABCI response for err.
// Messages of internal errors are only exposed when debug is set. Format the
// error with %+v to log its stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	if code == internalABCICode && !debug {
		return code, internalABCILog
	}
	return code, err.Error()
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the first ABCI code found while unwrapping err.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		switch e := err.(type) {
		case coder:
			return e.ABCICode()
		case causer:
			err = e.Cause()
		default:
			return internalABCICode
		}
	}
	return SuccessABCICode
}

// errIsNil also treats a typed nil pointer as no error.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
