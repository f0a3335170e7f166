package utils

import (
	"time"

	weave "github.com/iov-one/weave-collect"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one entry per processed transaction to the context logger.
// Failures are logged as errors, successful deliveries as info and
// successful checks as debug.
type Logging struct{}

var _ weave.Decorator = Logging{}

// NewLogging returns a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := txLogger(ctx, tx, start, err)
	switch {
	case err != nil:
		logger.Error("check failed")
	default:
		logger.Debug(res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := txLogger(ctx, tx, start, err)
	switch {
	case err != nil:
		logger.Error("deliver failed")
	default:
		logger.Info(res.Log)
	}
	return res, err
}

func txLogger(ctx weave.Context, tx weave.Tx, start time.Time, err error) log.Logger {
	logger := weave.GetLogger(ctx).With("duration", time.Since(start)/time.Microsecond)
	if tx != nil {
		if msg, merr := tx.GetMsg(); merr == nil && msg != nil {
			logger = logger.With("path", msg.Path())
		}
	}
	if err != nil {
		logger = logger.With("err", err)
	}
	return logger
}
