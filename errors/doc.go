/*
Package errors defines the root errors shared by all extensions and the
helpers used to wrap them.

Every error returned from a handler should wrap a root error, either one of
those declared here or one registered by an extension with Register. The
root error code is reported in the ABCI result, while the message of
anything that does not wrap a root error is hidden from the client.

	if p.Price.IsZero() {
		return errors.Wrap(errors.ErrAmount, "price")
	}

Validation code reports problems per field with Field and AppendField so that
clients can map an error back to the input. The innermost Wrap or Field call
records a stack trace, available when formatting:

	%s  message only
	%v  message followed by [file:line] of the innermost wrap
	%+v full stack trace followed by the message
*/
package errors
