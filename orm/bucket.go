/*
Package orm stores typed records on top of a KVStore.

A Bucket owns the keys starting with its name and a colon and holds a
single record type. A Sequence hands out increasing ids for it.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket reads and writes records of the template's type under its own
// key prefix. Wrap it in a typed bucket rather than using it directly.
type Bucket struct {
	name     string
	prefix   []byte
	template Object
}

// NewBucket panics when the name is not 3 to 10 characters of [a-z_].
func NewBucket(name string, template Object) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name %q", name))
	}
	return Bucket{
		name:     name,
		prefix:   []byte(name + ":"),
		template: template,
	}
}

// DBKey prefixes key with the bucket name. The result never shares memory
// with an earlier call.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	return append(append(out, b.prefix...), key...)
}

// Get returns nil without an error when key is not set.
func (b Bucket) Get(db mswallet.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	obj := b.template.Clone()
	if err := obj.Value().Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, key, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// One unmarshals the record under key into dest, or fails with
// ErrNotFound.
func (b Bucket) One(db mswallet.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	switch {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, key, err)
	}
	return nil
}

func (b Bucket) Has(db mswallet.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// Save validates obj before writing it.
func (b Bucket) Save(db mswallet.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, obj.Key(), err)
	}
	if err := db.Set(b.DBKey(obj.Key()), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (b Bucket) Delete(db mswallet.KVStore, key []byte) error {
	if err := db.Delete(b.DBKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Sequence returns the named counter of this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
