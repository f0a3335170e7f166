package errors

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found while unwrapping err.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return nil
}

// internalFrames are dropped from the top of a trace. They belong to the
// helpers creating the error or to the runtime handling a panic.
var internalFrames = []string{
	"github.com/iov-one/weave-collect/errors.Wrap",
	"github.com/iov-one/weave-collect/errors.Wrapf",
	"github.com/iov-one/weave-collect/errors.Field",
	"github.com/iov-one/weave-collect/errors.Recover",
	"runtime.",
	"/_test/",
}

// frameFunc returns the function of f. See pkg/errors Frame.pc for the
// offset.
func frameFunc(f errors.Frame) (*runtime.Func, uintptr) {
	pc := uintptr(f) - 1
	return runtime.FuncForPC(pc), pc
}

func frameName(f errors.Frame) string {
	fn, _ := frameFunc(f)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func framePosition(f errors.Frame) string {
	fn, pc := frameFunc(f)
	if fn == nil {
		return "unknown:0"
	}
	file, line := fn.FileLine(pc)
	if i := strings.Index(file, "github.com/"); i >= 0 {
		file = file[i+len("github.com/"):]
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// trimInternal removes helper frames from the top and the runtime and test
// runner frames from the bottom of st.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 1 && hasAnyPrefix(frameName(st[0]), internalFrames) {
		st = st[1:]
	}
	for len(st) > 1 && hasAnyPrefix(frameName(st[len(st)-1]), []string{"runtime.", "testing."}) {
		st = st[:len(st)-1]
	}
	return st
}

// Format prints the message for %s. %v adds the position of the innermost
// wrap and %+v prints the whole trace before the message.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	formatTraced(s, verb, e)
}

func (e *fieldError) Format(s fmt.State, verb rune) {
	formatTraced(s, verb, e)
}

func formatTraced(s fmt.State, verb rune, err error) {
	if verb != 'v' {
		fmt.Fprint(s, err.Error())
		return
	}
	stack := trimInternal(stackTrace(err))
	switch {
	case len(stack) == 0:
		fmt.Fprint(s, err.Error())
	case s.Flag('+'):
		fmt.Fprintf(s, "%+v\n%s", stack, err.Error())
	default:
		fmt.Fprintf(s, "%s [%s]", err.Error(), framePosition(stack[0]))
	}
}
