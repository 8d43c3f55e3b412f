package app

import (
	"context"
	"testing"

	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/wallettest"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	good, bad, missing := "wallet/good", "wallet/bad", "wallet/missing"

	counter := &countingHandler{}
	r.Handle(good, counter)
	r.Handle(bad, &countingHandler{err: errors.ErrState})

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle(good, counter) })
	assert.Panics(t, func() { r.Handle("l:7", counter) })
	assert.Panics(t, func() { r.Handle("", counter) })

	ctx := context.Background()
	tx := func(path string) *wallettest.Tx {
		return &wallettest.Tx{Msg: &wallettest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, nil, tx(good))
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, tx(good))
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.calls)

	_, err = r.Deliver(ctx, nil, tx(bad))
	assert.True(t, errors.ErrState.Is(err))

	_, err = r.Deliver(ctx, nil, tx(missing))
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, nil, tx(missing))
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, counter.calls)

	// a transaction without a message never reaches a handler
	_, err = r.Deliver(ctx, nil, &wallettest.Tx{Err: errors.ErrMsg})
	assert.True(t, errors.ErrMsg.Is(err))
}
