package contract

import (
	"fmt"
	"regexp"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/orm"
)

const (
	// BucketName is where we store the deployments
	BucketName = "contract"
)

var isKind = regexp.MustCompile(`^[a-z][a-z0-9_]{2,31}$`).MatchString

// Contract is the behaviour of a contract kind. self is the address of the
// deployed instance the call is made on, so one implementation can serve
// many deployments.
type Contract interface {
	Call(ctx mswallet.Context, db mswallet.KVStore, self mswallet.Address, method string) ([]byte, error)
}

// ContractFunc is an adapter to use an ordinary function as a Contract.
type ContractFunc func(ctx mswallet.Context, db mswallet.KVStore, self mswallet.Address, method string) ([]byte, error)

// Call calls f(ctx, db, self, method).
func (f ContractFunc) Call(ctx mswallet.Context, db mswallet.KVStore, self mswallet.Address, method string) ([]byte, error) {
	return f(ctx, db, self, method)
}

// Condition returns the condition of the contract deployed with given
// sequence id. Its address is the contract address.
func Condition(id []byte) mswallet.Condition {
	return mswallet.NewCondition("contract", "seq", id)
}

// Validate requires a well formed kind.
func (d *Deployment) Validate() error {
	if !isKind(d.Kind) {
		return errors.Wrapf(errors.ErrModel, "kind %q", d.Kind)
	}
	return nil
}

// Copy returns a copy of the deployment.
func (d *Deployment) Copy() orm.CloneableData {
	cpy := *d
	return &cpy
}

// Registry dispatches calls to deployed contracts. Register all kinds before
// the registry is used, registration is not safe for concurrent use.
type Registry struct {
	kinds  map[string]Contract
	bucket orm.Bucket
	seq    orm.Sequence
}

// NewRegistry returns a registry without any kinds.
func NewRegistry() *Registry {
	bucket := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Deployment)))
	return &Registry{
		kinds:  make(map[string]Contract),
		bucket: bucket,
		seq:    bucket.Sequence("id"),
	}
}

// Register adds a contract kind. Panics if the name is malformed or already
// taken.
func (r *Registry) Register(kind string, c Contract) {
	if !isKind(kind) {
		panic(fmt.Sprintf("invalid contract kind: %q", kind))
	}
	if _, ok := r.kinds[kind]; ok {
		panic(fmt.Sprintf("contract kind %q registered twice", kind))
	}
	r.kinds[kind] = c
}

// Deploy creates a new contract of given kind and returns its address.
func (r *Registry) Deploy(db mswallet.KVStore, kind string) (mswallet.Address, error) {
	if _, ok := r.kinds[kind]; !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	id, err := r.seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire contract id")
	}
	addr := Condition(id).Address()
	if err := r.bucket.Save(db, orm.NewSimpleObj(addr, &Deployment{Kind: kind})); err != nil {
		return nil, errors.Wrap(err, "cannot save deployment")
	}
	return addr, nil
}

// Deployment returns the deployment record at target.
func (r *Registry) Deployment(db mswallet.ReadOnlyKVStore, target mswallet.Address) (*Deployment, error) {
	var d Deployment
	if err := r.bucket.One(db, target, &d); err != nil {
		return nil, errors.Wrapf(err, "contract %s", target)
	}
	return &d, nil
}

// Invoke calls method on the contract deployed at target.
func (r *Registry) Invoke(ctx mswallet.Context, db mswallet.KVStore, target mswallet.Address, method string) ([]byte, error) {
	d, err := r.Deployment(db, target)
	if err != nil {
		return nil, err
	}
	c, ok := r.kinds[d.Kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q deployed at %s", d.Kind, target)
	}
	mswallet.GetLogger(ctx).Debug("contract call", "contract", target, "kind", d.Kind, "method", method)
	return c.Call(ctx, db, target, method)
}
