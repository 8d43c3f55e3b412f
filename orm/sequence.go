package orm

import (
	"encoding/binary"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

// Sequence is a persistent counter that starts at zero. Its values encode
// to 8 big endian bytes, so byte order follows numeric order.
type Sequence struct {
	key []byte
}

// NewSequence returns the counter stored under "_s.<bucket>:<name>".
func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextVal is NextInt in its encoded form.
func (s *Sequence) NextVal(db mswallet.KVStore) ([]byte, error) {
	n, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(n), nil
}

// NextInt hands out the current value and advances the counter.
func (s *Sequence) NextInt(db mswallet.KVStore) (int64, error) {
	n, err := s.Count(db)
	if err != nil {
		return 0, err
	}
	if err := db.Set(s.key, EncodeSequence(n+1)); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return n, nil
}

// Count is the number of values handed out so far.
func (s *Sequence) Count(db mswallet.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.key)
	switch {
	case err != nil:
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return 0, nil
	case len(raw) != 8:
		return 0, errors.Wrapf(errors.ErrModel, "sequence %q holds %d bytes", s.key, len(raw))
	}
	return DecodeSequence(raw), nil
}

func EncodeSequence(n int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return raw
}

// DecodeSequence reads an EncodeSequence value. Nil reads as zero.
func DecodeSequence(raw []byte) int64 {
	if raw == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}
