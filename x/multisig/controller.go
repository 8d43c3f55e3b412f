package multisig

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/gconf"
)

// Controller implements the wallet state machine on top of a KVStore. It does
// not provide any atomicity on its own: every precondition is checked before
// the first write, but a failing invoker may leave partial contract state
// behind. Run it inside a cache wrap (see Instance and the handlers) to get
// all-or-nothing calls.
type Controller struct {
	wallets WalletBucket
	txs     TransactionBucket
	votes   VotePoolBucket
	invoker Invoker
	methods []string
}

// NewController returns a controller that executes transactions through
// given invoker.
func NewController(invoker Invoker) *Controller {
	return &Controller{
		wallets: NewWalletBucket(),
		txs:     NewTransactionBucket(),
		votes:   NewVotePoolBucket(),
		invoker: invoker,
	}
}

// WithAllowedMethods returns a copy of the controller that accepts only the
// given method names, regardless of the stored configuration.
func (c Controller) WithAllowedMethods(names ...string) *Controller {
	c.methods = append([]string(nil), names...)
	return &c
}

// Create deploys a new wallet and returns its address.
func (c *Controller) Create(ctx mswallet.Context, db mswallet.KVStore, creator mswallet.Address, required uint32) (mswallet.Address, error) {
	if err := creator.Validate(); err != nil {
		return nil, errors.Wrap(err, "creator")
	}
	if required < 1 {
		return nil, errors.Wrap(errors.ErrInput, "required must be at least 1")
	}
	w := Wallet{
		Creator:  creator,
		Required: required,
	}
	if err := c.wallets.Create(db, &w); err != nil {
		return nil, errors.Wrap(err, "cannot create wallet")
	}
	mswallet.GetLogger(ctx).Info("wallet created",
		"wallet", mswallet.Address(w.Address), "creator", creator, "required", required)
	return w.Address, nil
}

// InitOwner declares the first owner. Only the creator may call it and only
// once, before the wallet is configured.
func (c *Controller) InitOwner(ctx mswallet.Context, db mswallet.KVStore, wallet, caller, candidate mswallet.Address) error {
	w, err := c.wallets.GetWallet(db, wallet)
	if err != nil {
		return err
	}
	if !caller.Equals(w.Creator) {
		return errors.Wrap(errors.ErrUnauthorized, "only the creator can initialize")
	}
	if w.Initialized || w.Configured {
		return errors.Wrap(ErrNotConfigured, "initialization phase is closed")
	}
	if err := candidate.Validate(); err != nil {
		return errors.Wrap(err, "candidate")
	}
	if candidate.Equals(w.Address) {
		return errors.Wrap(ErrCannotBeSameAddress, "wallet cannot own itself")
	}
	w.addOwner(candidate)
	w.Initialized = true
	if err := c.wallets.Put(db, w); err != nil {
		return err
	}
	mswallet.GetLogger(ctx).Info("wallet initialized", "wallet", wallet, "owner", candidate)
	return nil
}

// Configure seals the initialization phase and enables owner operations.
func (c *Controller) Configure(ctx mswallet.Context, db mswallet.KVStore, wallet, caller mswallet.Address) error {
	w, err := c.wallets.GetWallet(db, wallet)
	if err != nil {
		return err
	}
	if !caller.Equals(w.Creator) {
		return errors.Wrap(errors.ErrUnauthorized, "only the creator can configure")
	}
	if !w.Initialized || w.Configured {
		return errors.Wrap(ErrNotConfigured, "wallet must be initialized and not yet configured")
	}
	w.Configured = true
	if err := c.wallets.Put(db, w); err != nil {
		return err
	}
	mswallet.GetLogger(ctx).Info("wallet configured", "wallet", wallet)
	return nil
}

// VoteAddOwner records the caller vote to make the candidate an owner.
func (c *Controller) VoteAddOwner(ctx mswallet.Context, db mswallet.KVStore, wallet, caller, candidate mswallet.Address) error {
	w, err := c.ownerWallet(db, wallet, caller)
	if err != nil {
		return err
	}
	if candidate.Equals(w.Address) {
		return errors.Wrap(ErrCannotBeSameAddress, "wallet cannot own itself")
	}
	return c.vote(ctx, db, w, DirectionAdd, caller, candidate)
}

// AddOwner enacts the add votes for the candidate once they reach the quorum.
// With increaseRequired the quorum grows by one.
func (c *Controller) AddOwner(ctx mswallet.Context, db mswallet.KVStore, wallet, caller, candidate mswallet.Address, increaseRequired bool) error {
	w, err := c.ownerWallet(db, wallet, caller)
	if err != nil {
		return err
	}
	if candidate.Equals(w.Address) {
		return errors.Wrap(ErrCannotBeSameAddress, "wallet cannot own itself")
	}
	if err := c.requireVotes(db, w, DirectionAdd, candidate); err != nil {
		return err
	}
	if w.IsOwner(candidate) {
		return errors.Wrapf(errors.ErrDuplicate, "%s is already an owner", candidate)
	}
	w.addOwner(candidate)
	if increaseRequired {
		w.Required++
	}
	if err := c.wallets.Put(db, w); err != nil {
		return err
	}
	if err := c.votes.Clear(db, wallet, DirectionAdd, candidate); err != nil {
		return err
	}
	mswallet.GetLogger(ctx).Info("owner added",
		"wallet", wallet, "owner", candidate, "required", w.Required)
	return nil
}

// VoteRemoveOwner records the caller vote to revoke the candidate ownership.
func (c *Controller) VoteRemoveOwner(ctx mswallet.Context, db mswallet.KVStore, wallet, caller, candidate mswallet.Address) error {
	w, err := c.ownerWallet(db, wallet, caller)
	if err != nil {
		return err
	}
	if !w.IsOwner(candidate) {
		return errors.Wrapf(ErrPassedAddressIsNotOwner, "%s", candidate)
	}
	return c.vote(ctx, db, w, DirectionRemove, caller, candidate)
}

// RemoveOwner enacts the remove votes for the candidate once they reach the
// quorum.
func (c *Controller) RemoveOwner(ctx mswallet.Context, db mswallet.KVStore, wallet, caller, candidate mswallet.Address) error {
	w, err := c.ownerWallet(db, wallet, caller)
	if err != nil {
		return err
	}
	if err := c.requireVotes(db, w, DirectionRemove, candidate); err != nil {
		return err
	}
	if !w.IsOwner(candidate) {
		return errors.Wrapf(ErrPassedAddressIsNotOwner, "%s", candidate)
	}
	w.removeOwner(candidate)
	if err := c.wallets.Put(db, w); err != nil {
		return err
	}
	if err := c.votes.Clear(db, wallet, DirectionRemove, candidate); err != nil {
		return err
	}
	mswallet.GetLogger(ctx).Info("owner removed", "wallet", wallet, "owner", candidate)
	return nil
}

// AddTransaction proposes a call of the named method and returns the
// transaction id. Ids start at 0 and are never reused.
func (c *Controller) AddTransaction(ctx mswallet.Context, db mswallet.KVStore, wallet, caller mswallet.Address, method string) (int64, error) {
	if _, err := c.ownerWallet(db, wallet, caller); err != nil {
		return 0, err
	}
	allowed, err := c.allowedMethods(db)
	if err != nil {
		return 0, err
	}
	if !allowed.Allows(method) {
		return 0, errors.Wrapf(ErrInvalidMethodName, "%q", method)
	}
	t := Transaction{MethodName: method}
	if err := c.txs.Create(db, wallet, &t); err != nil {
		return 0, err
	}
	mswallet.GetLogger(ctx).Info("transaction proposed",
		"wallet", wallet, "tx", t.ID, "method", method, "proposer", caller)
	return t.ID, nil
}

// Approve adds the caller approval to the transaction.
func (c *Controller) Approve(ctx mswallet.Context, db mswallet.KVStore, wallet, caller mswallet.Address, txID int64) error {
	if _, err := c.ownerWallet(db, wallet, caller); err != nil {
		return err
	}
	t, err := c.txs.GetTransaction(db, wallet, txID)
	if err != nil {
		return err
	}
	if t.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "transaction %d", txID)
	}
	if t.HasApproved(caller) {
		return errors.Wrapf(ErrAlreadyVoted, "transaction %d", txID)
	}
	t.Approvals = append(t.Approvals, cloneBytes(caller))
	if err := c.txs.Put(db, wallet, t); err != nil {
		return err
	}
	mswallet.GetLogger(ctx).Debug("transaction approved",
		"wallet", wallet, "tx", txID, "owner", caller, "confirmations", t.Confirmations())
	return nil
}

// Confirmations returns how many owners approved the transaction. Anyone may
// ask, but only once the wallet is configured.
func (c *Controller) Confirmations(db mswallet.ReadOnlyKVStore, wallet mswallet.Address, txID int64) (int64, error) {
	if _, err := c.configuredWallet(db, wallet); err != nil {
		return 0, err
	}
	t, err := c.txs.GetTransaction(db, wallet, txID)
	if err != nil {
		return 0, err
	}
	return t.Confirmations(), nil
}

// Execute runs an approved transaction by invoking its method on the target
// contract and returns the invocation result. A transaction runs at most
// once.
func (c *Controller) Execute(ctx mswallet.Context, db mswallet.KVStore, wallet, caller mswallet.Address, txID int64, target mswallet.Address) ([]byte, error) {
	w, err := c.ownerWallet(db, wallet, caller)
	if err != nil {
		return nil, err
	}
	t, err := c.txs.GetTransaction(db, wallet, txID)
	if err != nil {
		return nil, err
	}
	if t.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", txID)
	}
	if t.Confirmations() < int64(w.Required) {
		return nil, errors.Wrapf(ErrNotEnoughVotes, "%d of %d approvals", t.Confirmations(), w.Required)
	}
	res, err := c.invoker.Invoke(ctx, db, target, t.MethodName)
	if err != nil {
		return nil, errors.Wrapf(err, "invoke %s on %s", t.MethodName, target)
	}
	t.Executed = true
	if err := c.txs.Put(db, wallet, t); err != nil {
		return nil, err
	}
	mswallet.GetLogger(ctx).Info("transaction executed",
		"wallet", wallet, "tx", txID, "method", t.MethodName, "target", target)
	return res, nil
}

// Wallet returns the stored wallet state.
func (c *Controller) Wallet(db mswallet.ReadOnlyKVStore, wallet mswallet.Address) (*Wallet, error) {
	return c.wallets.GetWallet(db, wallet)
}

// Transaction returns the stored transaction.
func (c *Controller) Transaction(db mswallet.ReadOnlyKVStore, wallet mswallet.Address, txID int64) (*Transaction, error) {
	return c.txs.GetTransaction(db, wallet, txID)
}

func (c *Controller) configuredWallet(db mswallet.ReadOnlyKVStore, wallet mswallet.Address) (*Wallet, error) {
	w, err := c.wallets.GetWallet(db, wallet)
	if err != nil {
		return nil, err
	}
	if !w.Configured {
		return nil, errors.Wrapf(ErrOnlyConfigured, "wallet %s", wallet)
	}
	return w, nil
}

// ownerWallet loads a wallet that accepts owner operations from the caller.
// The configuration gate goes first.
func (c *Controller) ownerWallet(db mswallet.ReadOnlyKVStore, wallet, caller mswallet.Address) (*Wallet, error) {
	w, err := c.configuredWallet(db, wallet)
	if err != nil {
		return nil, err
	}
	if !w.IsOwner(caller) {
		return nil, errors.Wrapf(ErrOnlyOwners, "%s", caller)
	}
	return w, nil
}

func (c *Controller) vote(ctx mswallet.Context, db mswallet.KVStore, w *Wallet, dir Direction, caller, candidate mswallet.Address) error {
	if err := candidate.Validate(); err != nil {
		return errors.Wrap(err, "candidate")
	}
	pool, err := c.votes.GetPool(db, w.Address, dir, candidate)
	if err != nil {
		return err
	}
	if pool.HasVoted(caller) {
		return errors.Wrapf(ErrAlreadyVoted, "%s %s", dir, candidate)
	}
	pool.Voters = append(pool.Voters, cloneBytes(caller))
	if err := c.votes.Put(db, w.Address, dir, candidate, pool); err != nil {
		return err
	}
	mswallet.GetLogger(ctx).Debug("owner vote",
		"wallet", mswallet.Address(w.Address), "direction", dir, "candidate", candidate, "voter", caller)
	return nil
}

func (c *Controller) requireVotes(db mswallet.ReadOnlyKVStore, w *Wallet, dir Direction, candidate mswallet.Address) error {
	pool, err := c.votes.GetPool(db, w.Address, dir, candidate)
	if err != nil {
		return err
	}
	if pool.Count() < int64(w.Required) {
		return errors.Wrapf(ErrNotEnoughVotes, "%d of %d votes to %s %s", pool.Count(), w.Required, dir, candidate)
	}
	return nil
}

// allowedMethods returns the allow list in effect: the controller override,
// the stored configuration or the default, in this order.
func (c *Controller) allowedMethods(db mswallet.ReadOnlyKVStore) (*Configuration, error) {
	if c.methods != nil {
		return &Configuration{AllowedMethods: c.methods}, nil
	}
	var conf Configuration
	switch err := gconf.Load(db, gconfPackage, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{AllowedMethods: DefaultAllowedMethods}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}
