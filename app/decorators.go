package app

import (
	"time"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

// Logging reports every call with its message path and duration. Checks
// are logged at debug level, deliveries at info level and failures of
// either at error level.
type Logging struct{}

var _ mswallet.Decorator = Logging{}

// NewLogging returns a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx, next mswallet.Checker) (*mswallet.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	logResult(ctx, tx, "tx checked", start, err, true)
	return res, err
}

func (Logging) Deliver(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx, next mswallet.Deliverer) (*mswallet.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	logResult(ctx, tx, "tx delivered", start, err, false)
	return res, err
}

func logResult(ctx mswallet.Context, tx mswallet.Tx, msg string, start time.Time, err error, check bool) {
	logger := mswallet.GetLogger(ctx).With(
		"tx_path", mswallet.GetPath(tx),
		"duration_us", int64(time.Since(start)/time.Microsecond),
	)
	switch {
	case err != nil:
		logger.Error("tx failed", "err", err)
	case check:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

// Recovery converts a panic anywhere down the stack into an ErrPanic.
type Recovery struct{}

var _ mswallet.Decorator = Recovery{}

// NewRecovery returns a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx, next mswallet.Checker) (_ *mswallet.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx, next mswallet.Deliverer) (_ *mswallet.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
