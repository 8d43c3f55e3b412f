package store

import "github.com/iov-one/mswallet/errors"

// Batch queues writes and applies them all on Write.
type Batch interface {
	SetDeleter
	Write() error
}

type op struct {
	del   bool
	key   []byte
	value []byte
}

func (o op) apply(out SetDeleter) error {
	if o.del {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

func setOp(key, value []byte) op { return op{key: key, value: value} }
func delOp(key []byte) op        { return op{del: true, key: key} }

// nonAtomicBatch replays the queued operations one by one. A failure in the
// middle leaves the earlier ones applied, so it is only fit for in-memory
// targets.
type nonAtomicBatch struct {
	out SetDeleter
	ops []op
}

var _ Batch = (*nonAtomicBatch)(nil)

func newNonAtomicBatch(out SetDeleter) *nonAtomicBatch {
	return &nonAtomicBatch{out: out}
}

func (b *nonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, setOp(key, value))
	return nil
}

func (b *nonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, delOp(key))
	return nil
}

// Write applies and forgets the queued operations.
func (b *nonAtomicBatch) Write() error {
	for i, o := range b.ops {
		if err := o.apply(b.out); err != nil {
			return errors.Wrapf(err, "batch operation %d", i)
		}
	}
	b.ops = nil
	return nil
}
