package app

import (
	"github.com/iov-one/mswallet"
)

// Decorators is an ordered list of decorators waiting for the handler they
// will wrap. The first decorator sees a call first.
type Decorators struct {
	list []mswallet.Decorator
}

// ChainDecorators starts a list. Nil entries are dropped, so optional
// decorators can be passed unconditionally.
func ChainDecorators(decs ...mswallet.Decorator) Decorators {
	return Decorators{}.Chain(decs...)
}

// Chain returns a new list with decs appended. The receiver is not changed.
func (d Decorators) Chain(decs ...mswallet.Decorator) Decorators {
	list := append([]mswallet.Decorator(nil), d.list...)
	for _, dec := range decs {
		if dec != nil {
			list = append(list, dec)
		}
	}
	return Decorators{list: list}
}

// WithHandler closes the list around h.
func (d Decorators) WithHandler(h mswallet.Handler) mswallet.Handler {
	for i := len(d.list) - 1; i >= 0; i-- {
		h = decorated{dec: d.list[i], next: h}
	}
	return h
}

// decorated runs one decorator around the rest of the stack.
type decorated struct {
	dec  mswallet.Decorator
	next mswallet.Handler
}

var _ mswallet.Handler = decorated{}

func (s decorated) Check(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return s.dec.Check(ctx, store, tx, s.next)
}

func (s decorated) Deliver(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	return s.dec.Deliver(ctx, store, tx, s.next)
}
