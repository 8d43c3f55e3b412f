package orm

import "github.com/iov-one/mswallet"

// Model is a value kept in a bucket.
type Model interface {
	mswallet.Persistent
	mswallet.Validater
}

// CloneableData is a Model with a deep copy. Every wallet model implements
// it, so that a loaded record can be changed without touching the cached
// record it came from.
type CloneableData interface {
	Model
	Copy() CloneableData
}

// Object pairs a Model with the key it is stored under. A bucket keeps an
// empty Object as a template and clones it for every value it loads.
type Object interface {
	mswallet.Validater
	Key() []byte
	SetKey([]byte)
	Value() Model
	Clone() Object
}
