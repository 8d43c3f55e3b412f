package multisig

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/orm"
	"github.com/iov-one/mswallet/store"
	"github.com/iov-one/mswallet/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	creationCost int64 = 300
	ownerCost    int64 = 100
	proposalCost int64 = 100
	approvalCost int64 = 50
	queryCost    int64 = 10
	executeCost  int64 = 200
)

const (
	tagAction = "action"
	tagWallet = "wallet"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r mswallet.Registry, auth x.Authenticator, invoker Invoker) {
	RegisterController(r, auth, NewController(invoker))
}

// RegisterController registers all handlers backed by the given controller.
func RegisterController(r mswallet.Registry, auth x.Authenticator, ctrl *Controller) {
	base := handler{auth: auth, ctrl: ctrl}
	r.Handle(pathCreateMsg, CreateHandler{base})
	r.Handle(pathInitOwnerMsg, InitOwnerHandler{base})
	r.Handle(pathConfigureMsg, ConfigureHandler{base})
	r.Handle(pathVoteAddOwnerMsg, VoteAddOwnerHandler{base})
	r.Handle(pathAddOwnerMsg, AddOwnerHandler{base})
	r.Handle(pathVoteRemoveOwnerMsg, VoteRemoveOwnerHandler{base})
	r.Handle(pathRemoveOwnerMsg, RemoveOwnerHandler{base})
	r.Handle(pathAddTransactionMsg, AddTransactionHandler{base})
	r.Handle(pathApproveMsg, ApproveHandler{base})
	r.Handle(pathGetConfirmationsMsg, GetConfirmationsHandler{base})
	r.Handle(pathExecuteMsg, ExecuteHandler{base})
}

// handler holds what every wallet handler needs. Each handler implements
// Deliver through apply; Check runs the same apply on a cache wrap that is
// always discarded, so it fails exactly when Deliver would.
type handler struct {
	auth x.Authenticator
	ctrl *Controller
}

type applyFn func(mswallet.Context, mswallet.KVStore, mswallet.Tx) (*mswallet.DeliverResult, error)

// signer returns the address of the main signer of the transaction.
func (h handler) signer(ctx mswallet.Context) (mswallet.Address, error) {
	cond := x.MainSigner(ctx, h.auth)
	if cond == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return cond.Address(), nil
}

func check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx, apply applyFn, cost int64) (*mswallet.CheckResult, error) {
	scratch := store.Wrap(db)
	defer scratch.Discard()
	if _, err := apply(ctx, scratch, tx); err != nil {
		return nil, err
	}
	return mswallet.NewCheck(cost, ""), nil
}

func result(tx mswallet.Tx, wallet mswallet.Address, data []byte) *mswallet.DeliverResult {
	return &mswallet.DeliverResult{
		Data: data,
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte(mswallet.GetPath(tx))},
			{Key: []byte(tagWallet), Value: []byte(wallet.String())},
		},
	}
}

// CreateHandler deploys a wallet. The signer becomes its creator and the
// wallet address is returned as data.
type CreateHandler struct{ handler }

var _ mswallet.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, creationCost)
}

func (h CreateHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg CreateMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	creator, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	addr, err := h.ctrl.Create(ctx, db, creator, msg.Required)
	if err != nil {
		return nil, err
	}
	return result(tx, addr, addr), nil
}

// InitOwnerHandler declares the first owner of a wallet.
type InitOwnerHandler struct{ handler }

var _ mswallet.Handler = InitOwnerHandler{}

func (h InitOwnerHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, ownerCost)
}

func (h InitOwnerHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg InitOwnerMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.InitOwner(ctx, db, msg.Wallet, caller, msg.Candidate); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// ConfigureHandler seals the initialization of a wallet.
type ConfigureHandler struct{ handler }

var _ mswallet.Handler = ConfigureHandler{}

func (h ConfigureHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, ownerCost)
}

func (h ConfigureHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg ConfigureMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Configure(ctx, db, msg.Wallet, caller); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// VoteAddOwnerHandler records a vote to add an owner.
type VoteAddOwnerHandler struct{ handler }

var _ mswallet.Handler = VoteAddOwnerHandler{}

func (h VoteAddOwnerHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, ownerCost)
}

func (h VoteAddOwnerHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg VoteAddOwnerMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.VoteAddOwner(ctx, db, msg.Wallet, caller, msg.Candidate); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// AddOwnerHandler enacts the add votes for a candidate.
type AddOwnerHandler struct{ handler }

var _ mswallet.Handler = AddOwnerHandler{}

func (h AddOwnerHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, ownerCost)
}

func (h AddOwnerHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg AddOwnerMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.AddOwner(ctx, db, msg.Wallet, caller, msg.Candidate, msg.IncreaseRequired); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// VoteRemoveOwnerHandler records a vote to remove an owner.
type VoteRemoveOwnerHandler struct{ handler }

var _ mswallet.Handler = VoteRemoveOwnerHandler{}

func (h VoteRemoveOwnerHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, ownerCost)
}

func (h VoteRemoveOwnerHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg VoteRemoveOwnerMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.VoteRemoveOwner(ctx, db, msg.Wallet, caller, msg.Candidate); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// RemoveOwnerHandler enacts the remove votes for a candidate.
type RemoveOwnerHandler struct{ handler }

var _ mswallet.Handler = RemoveOwnerHandler{}

func (h RemoveOwnerHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, ownerCost)
}

func (h RemoveOwnerHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg RemoveOwnerMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.RemoveOwner(ctx, db, msg.Wallet, caller, msg.Candidate); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// AddTransactionHandler proposes a transaction. The new transaction id is
// returned as 8 byte big endian data.
type AddTransactionHandler struct{ handler }

var _ mswallet.Handler = AddTransactionHandler{}

func (h AddTransactionHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, proposalCost)
}

func (h AddTransactionHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg AddTransactionMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.AddTransaction(ctx, db, msg.Wallet, caller, msg.MethodName)
	if err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, orm.EncodeSequence(id)), nil
}

// ApproveHandler approves a transaction.
type ApproveHandler struct{ handler }

var _ mswallet.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, approvalCost)
}

func (h ApproveHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg ApproveMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Approve(ctx, db, msg.Wallet, caller, msg.TxID); err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, nil), nil
}

// GetConfirmationsHandler returns the number of approvals of a transaction
// as 8 byte big endian data. It does not require a signer.
type GetConfirmationsHandler struct{ handler }

var _ mswallet.Handler = GetConfirmationsHandler{}

func (h GetConfirmationsHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, queryCost)
}

func (h GetConfirmationsHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg GetConfirmationsMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	n, err := h.ctrl.Confirmations(db, msg.Wallet, msg.TxID)
	if err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, orm.EncodeSequence(n)), nil
}

// ExecuteHandler executes an approved transaction. The data returned by the
// target contract is passed through.
type ExecuteHandler struct{ handler }

var _ mswallet.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.CheckResult, error) {
	return check(ctx, db, tx, h.Deliver, executeCost)
}

func (h ExecuteHandler) Deliver(ctx mswallet.Context, db mswallet.KVStore, tx mswallet.Tx) (*mswallet.DeliverResult, error) {
	var msg ExecuteMsg
	if err := mswallet.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller, err := h.signer(ctx)
	if err != nil {
		return nil, err
	}
	data, err := h.ctrl.Execute(ctx, db, msg.Wallet, caller, msg.TxID, msg.Target)
	if err != nil {
		return nil, err
	}
	return result(tx, msg.Wallet, data), nil
}
