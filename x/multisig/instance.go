package multisig

import (
	"sync"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

// Instance is a single deployed wallet, bound to the store it lives in. It
// is safe for concurrent use.
//
// Mutating calls are serialized and each runs on its own cache wrap of the
// store, written only when the call succeeds. Read calls may run together
// and never observe a half applied mutation.
//
// The lock is per instance. Nothing else may write the store while an
// instance is in use from more than one goroutine.
type Instance struct {
	mu      sync.RWMutex
	db      mswallet.CacheableKVStore
	ctrl    *Controller
	address mswallet.Address
}

// Deploy creates a new wallet in db and returns the instance handling it.
func Deploy(ctx mswallet.Context, db mswallet.CacheableKVStore, ctrl *Controller, creator mswallet.Address, required uint32) (*Instance, error) {
	inst := &Instance{db: db, ctrl: ctrl}
	err := inst.update(func(db mswallet.KVStore) error {
		addr, err := ctrl.Create(ctx, db, creator, required)
		inst.address = addr
		return err
	})
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Open returns an instance for a wallet that already exists in db, such as
// one declared in the genesis file.
func Open(db mswallet.CacheableKVStore, ctrl *Controller, wallet mswallet.Address) (*Instance, error) {
	if _, err := ctrl.Wallet(db, wallet); err != nil {
		return nil, err
	}
	return &Instance{db: db, ctrl: ctrl, address: wallet}, nil
}

// Address returns the wallet address.
func (i *Instance) Address() mswallet.Address {
	return i.address
}

// InitOwner declares candidate the first owner. caller must be the creator.
func (i *Instance) InitOwner(ctx mswallet.Context, caller, candidate mswallet.Address) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.InitOwner(ctx, db, i.address, caller, candidate)
	})
}

// Configure closes the initialization phase. caller must be the creator.
func (i *Instance) Configure(ctx mswallet.Context, caller mswallet.Address) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.Configure(ctx, db, i.address, caller)
	})
}

// VoteAddOwner records the caller vote to add candidate.
func (i *Instance) VoteAddOwner(ctx mswallet.Context, caller, candidate mswallet.Address) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.VoteAddOwner(ctx, db, i.address, caller, candidate)
	})
}

// AddOwner adds candidate once enough owners voted for it.
func (i *Instance) AddOwner(ctx mswallet.Context, caller, candidate mswallet.Address, increaseRequired bool) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.AddOwner(ctx, db, i.address, caller, candidate, increaseRequired)
	})
}

// VoteRemoveOwner records the caller vote to remove candidate.
func (i *Instance) VoteRemoveOwner(ctx mswallet.Context, caller, candidate mswallet.Address) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.VoteRemoveOwner(ctx, db, i.address, caller, candidate)
	})
}

// RemoveOwner removes candidate once enough owners voted for it.
func (i *Instance) RemoveOwner(ctx mswallet.Context, caller, candidate mswallet.Address) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.RemoveOwner(ctx, db, i.address, caller, candidate)
	})
}

// AddTransaction proposes a call of method and returns the transaction id.
func (i *Instance) AddTransaction(ctx mswallet.Context, caller mswallet.Address, method string) (int64, error) {
	var id int64
	err := i.update(func(db mswallet.KVStore) error {
		var err error
		id, err = i.ctrl.AddTransaction(ctx, db, i.address, caller, method)
		return err
	})
	return id, err
}

// Approve adds the caller approval to the transaction.
func (i *Instance) Approve(ctx mswallet.Context, caller mswallet.Address, txID int64) error {
	return i.update(func(db mswallet.KVStore) error {
		return i.ctrl.Approve(ctx, db, i.address, caller, txID)
	})
}

// Execute runs the transaction on target and returns the target result.
// Contract state written by the target is dropped if the call fails.
func (i *Instance) Execute(ctx mswallet.Context, caller mswallet.Address, txID int64, target mswallet.Address) ([]byte, error) {
	var res []byte
	err := i.update(func(db mswallet.KVStore) error {
		var err error
		res, err = i.ctrl.Execute(ctx, db, i.address, caller, txID, target)
		return err
	})
	return res, err
}

// GetConfirmations returns the number of approvals of the transaction.
func (i *Instance) GetConfirmations(txID int64) (int64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ctrl.Confirmations(i.db, i.address, txID)
}

// Wallet returns a snapshot of the wallet state.
func (i *Instance) Wallet() (*Wallet, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ctrl.Wallet(i.db, i.address)
}

// Transaction returns a snapshot of the transaction.
func (i *Instance) Transaction(txID int64) (*Transaction, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ctrl.Transaction(i.db, i.address, txID)
}

// update runs fn on a fresh cache wrap under the write lock. The wrap is
// written only if fn succeeds. A panic is turned into an error.
func (i *Instance) update(fn func(mswallet.KVStore) error) (err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	cache := i.db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	if err := fn(cache); err != nil {
		return err
	}
	return cache.Write()
}
