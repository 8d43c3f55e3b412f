package mswallet

import (
	"encoding/json"
)

// Handler processes the messages registered for it.
type Handler interface {
	Checker
	Deliverer
}

// Checker runs a message without making changes. It fails exactly when
// Deliver would.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer runs a message and applies its changes to store.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around a handler and passes the call on to next.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds handlers to message paths.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the genesis app state, one JSON section per extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the section under key into obj. A missing section
// leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer loads an extension state from genesis.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers runs inits in order as a single Initializer.
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []Initializer
}

// FromGenesis passes the options to every initializer in order and stops at
// the first failure.
func (c chainInitializer) FromGenesis(opts Options, kv KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
