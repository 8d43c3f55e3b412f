package app

import (
	"github.com/iov-one/mswallet"
)

// countingHandler counts calls and returns err from every one of them.
type countingHandler struct {
	calls int
	err   error
}

var _ mswallet.Handler = (*countingHandler)(nil)

func (h *countingHandler) Check(mswallet.Context, mswallet.KVStore, mswallet.Tx) (*mswallet.CheckResult, error) {
	h.calls++
	if h.err != nil {
		return nil, h.err
	}
	return &mswallet.CheckResult{}, nil
}

func (h *countingHandler) Deliver(mswallet.Context, mswallet.KVStore, mswallet.Tx) (*mswallet.DeliverResult, error) {
	h.calls++
	if h.err != nil {
		return nil, h.err
	}
	return &mswallet.DeliverResult{}, nil
}

// countingDecorator counts calls going in and coming out.
type countingDecorator struct {
	calls int
}

var _ mswallet.Decorator = (*countingDecorator)(nil)

func (d *countingDecorator) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx, next mswallet.Checker) (*mswallet.CheckResult, error) {
	d.calls++
	res, err := next.Check(ctx, db, tx)
	d.calls++
	return res, err
}

func (d *countingDecorator) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx, next mswallet.Deliverer) (*mswallet.DeliverResult, error) {
	d.calls++
	res, err := next.Deliver(ctx, db, tx)
	d.calls++
	return res, err
}

// panicAtHeight panics when the context height is at least the limit.
type panicAtHeight int64

var _ mswallet.Decorator = panicAtHeight(0)

func (p panicAtHeight) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx, next mswallet.Checker) (*mswallet.CheckResult, error) {
	if h, _ := mswallet.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p panicAtHeight) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx, next mswallet.Deliverer) (*mswallet.DeliverResult, error) {
	if h, _ := mswallet.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}

// writeHandler stores the path of every message and then fails if err is
// set.
type writeHandler struct {
	err error
}

func (h writeHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	if err := db.Set([]byte(mswallet.GetPath(tx)), []byte("checked")); err != nil {
		return nil, err
	}
	return &mswallet.CheckResult{GasAllocated: 5}, h.err
}

func (h writeHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	if err := db.Set([]byte(mswallet.GetPath(tx)), []byte("delivered")); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &mswallet.DeliverResult{Data: []byte("ok")}, nil
}
