package app

import (
	"sync"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Executor runs transactions against a single store, one at a time. Each
// call gets its own cache wrap: DeliverTx writes it only when the handler
// succeeds, CheckTx always drops it.
//
// The context passed to every call is extended with the executor logger,
// the chain id and the current height. Authentication data is expected to
// be set by the caller. A caller context that already carries a height or
// a chain id is rejected with ErrState.
//
// Unless running in debug mode, errors without a registered code and
// panics are reported as internal errors. The full error is logged.
type Executor struct {
	mu sync.Mutex

	db      mswallet.CacheableKVStore
	handler mswallet.Handler
	init    mswallet.Initializer
	logger  log.Logger
	debug   bool

	chainID string
	height  int64
}

// NewExecutor returns an executor bound to given store. The chain id is
// loaded from the store if the chain was initialized before.
func NewExecutor(db mswallet.CacheableKVStore, handler mswallet.Handler, init mswallet.Initializer) (*Executor, error) {
	chainID, err := loadChainID(db)
	if err != nil {
		return nil, err
	}
	return &Executor{
		db:      db,
		handler: handler,
		init:    init,
		logger:  log.NewNopLogger(),
		chainID: chainID,
	}, nil
}

// WithLogger sets the logger and returns the executor, to make it easy to
// chain in initialization.
func (e *Executor) WithLogger(logger log.Logger) *Executor {
	e.logger = logger
	return e
}

// WithDebug controls whether full error information is returned in the
// responses log.
func (e *Executor) WithDebug(debug bool) *Executor {
	e.debug = debug
	return e
}

// ChainID returns the chain id, empty before InitChain.
func (e *Executor) ChainID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chainID
}

// InitChain stores the chain id and loads the genesis state. It can be
// called only once for a store. Nothing is written if any initializer fails.
func (e *Executor) InitChain(gen *Genesis) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", e.chainID)
	}
	cache := e.db.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if e.init != nil {
		if err := e.init.FromGenesis(gen.AppState, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	e.chainID = gen.ChainID
	e.logger.Info("chain initialized", "chain_id", gen.ChainID)
	return nil
}

// BeginBlock sets the height attached to the following transactions.
func (e *Executor) BeginBlock(height int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.height = height
}

// CheckTx runs the transaction without persisting any change.
func (e *Executor) CheckTx(ctx mswallet.Context, tx mswallet.Tx) abci.ResponseCheckTx {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	defer cache.Discard()

	res, err := e.check(ctx, cache, tx)
	return mswallet.CheckOrError(res, e.redact(err), e.debug)
}

// DeliverTx runs the transaction and persists its changes if it succeeds.
func (e *Executor) DeliverTx(ctx mswallet.Context, tx mswallet.Tx) abci.ResponseDeliverTx {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	res, err := e.deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return mswallet.DeliverTxError(e.redact(err), e.debug)
	}
	if err := cache.Write(); err != nil {
		return mswallet.DeliverTxError(errors.Wrap(errors.ErrDatabase, err.Error()), e.debug)
	}
	return res.ToABCI()
}

func (e *Executor) check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (_ *mswallet.CheckResult, err error) {
	defer errors.Recover(&err)
	ctx, err = e.context(ctx, "check_tx")
	if err != nil {
		return nil, err
	}
	return e.handler.Check(ctx, db, tx)
}

func (e *Executor) deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (_ *mswallet.DeliverResult, err error) {
	defer errors.Recover(&err)
	ctx, err = e.context(ctx, "deliver_tx")
	if err != nil {
		return nil, err
	}
	return e.handler.Deliver(ctx, db, tx)
}

// redact logs the full error and returns what may be exposed in a response.
func (e *Executor) redact(err error) error {
	if !e.debug && errors.ErrPanic.Is(err) {
		e.logger.Error("transaction panicked", "err", err)
	}
	return errors.Redact(err, e.debug)
}

// context extends ctx with the executor state. Must be called with the lock
// held.
func (e *Executor) context(ctx mswallet.Context, call string) (mswallet.Context, error) {
	if _, ok := mswallet.GetHeight(ctx); ok {
		return nil, errors.Wrap(errors.ErrState, "height already set in caller context")
	}
	if mswallet.HasChainID(ctx) {
		return nil, errors.Wrap(errors.ErrState, "chain id already set in caller context")
	}
	ctx = mswallet.WithLogger(ctx, e.logger)
	if e.chainID != "" {
		ctx = mswallet.WithChainID(ctx, e.chainID)
	}
	if e.height > 0 {
		ctx = mswallet.WithHeight(ctx, e.height)
	}
	return mswallet.WithLogInfo(ctx, "call", call), nil
}
