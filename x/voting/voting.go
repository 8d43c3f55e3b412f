/*
Package voting implements a minimal counter contract. Every Vote call
increments the result of the deployed instance and result reads it back.
*/
package voting

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/orm"
	"github.com/iov-one/mswallet/x/contract"
)

const (
	// Kind is the name the contract is registered under.
	Kind = "voting"

	// MethodVote increments the result.
	MethodVote = "Vote"
	// MethodResult returns the result as 8 byte big endian.
	MethodResult = "result"

	bucketName = "voting"
)

// Validate rejects a negative result.
func (m *Tally) Validate() error {
	if m.Result < 0 {
		return errors.Wrap(errors.ErrModel, "negative result")
	}
	return nil
}

// Copy returns a copy of the tally.
func (m *Tally) Copy() orm.CloneableData {
	cpy := *m
	return &cpy
}

// Contract is the voting contract implementation.
type Contract struct {
	bucket orm.Bucket
}

var _ contract.Contract = (*Contract)(nil)

// New returns the voting contract.
func New() *Contract {
	return &Contract{
		bucket: orm.NewBucket(bucketName, orm.NewSimpleObj(nil, new(Tally))),
	}
}

// Register adds the voting kind to given registry.
func Register(r *contract.Registry) {
	r.Register(Kind, New())
}

// Call dispatches method on the instance deployed at self.
func (c *Contract) Call(ctx mswallet.Context, db mswallet.KVStore, self mswallet.Address, method string) ([]byte, error) {
	switch method {
	case MethodVote:
		t, err := c.tally(db, self)
		if err != nil {
			return nil, err
		}
		t.Result++
		if err := c.bucket.Save(db, orm.NewSimpleObj(self, t)); err != nil {
			return nil, errors.Wrap(err, "cannot save tally")
		}
		mswallet.GetLogger(ctx).Info("vote counted", "contract", self, "result", t.Result)
		return orm.EncodeSequence(t.Result), nil
	case MethodResult:
		t, err := c.tally(db, self)
		if err != nil {
			return nil, err
		}
		return orm.EncodeSequence(t.Result), nil
	default:
		return nil, errors.Wrapf(contract.ErrUnknownMethod, "voting: %q", method)
	}
}

// Result returns the current result of the instance deployed at self.
func (c *Contract) Result(db mswallet.ReadOnlyKVStore, self mswallet.Address) (int64, error) {
	t, err := c.tally(db, self)
	if err != nil {
		return 0, err
	}
	return t.Result, nil
}

func (c *Contract) tally(db mswallet.ReadOnlyKVStore, self mswallet.Address) (*Tally, error) {
	obj, err := c.bucket.Get(db, self)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return &Tally{}, nil
	}
	t, ok := obj.Value().(*Tally)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return t, nil
}
