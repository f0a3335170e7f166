package app

import (
	"reflect"

	weave "github.com/iov-one/weave-collect"
)

// Decorators is an ordered decorator stack waiting for its final handler.
// The first decorator runs first.
type Decorators []weave.Decorator

// ChainDecorators builds a stack. Nil decorators, including typed nil
// pointers, are skipped so optional decorators can be passed directly.
func ChainDecorators(ds ...weave.Decorator) Decorators {
	return Decorators(nil).Chain(ds...)
}

// Chain returns a new stack with ds appended.
func (d Decorators) Chain(ds ...weave.Decorator) Decorators {
	out := make(Decorators, 0, len(d)+len(ds))
	out = append(out, d...)
	for _, dec := range ds {
		if !isNilDecorator(dec) {
			out = append(out, dec)
		}
	}
	return out
}

func isNilDecorator(d weave.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack with h.
func (d Decorators) WithHandler(h weave.Handler) weave.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = decorated{dec: d[i], next: h}
	}
	return h
}

type decorated struct {
	dec  weave.Decorator
	next weave.Handler
}

func (s decorated) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s decorated) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
