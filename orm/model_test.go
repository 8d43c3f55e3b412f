package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/mswallet/errors"
)

// counter is a minimal model used to exercise buckets.
type counter struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Count int64  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

var _ CloneableData = (*counter)(nil)

type counterCodec counter

func (m *counterCodec) Reset()         { *m = counterCodec{} }
func (m *counterCodec) String() string { return proto.CompactTextString(m) }
func (*counterCodec) ProtoMessage()    {}

func (m *counter) Marshal() ([]byte, error) {
	return proto.Marshal((*counterCodec)(m))
}

func (m *counter) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*counterCodec)(m))
}

func (m *counter) Validate() error {
	if m.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (m *counter) Copy() CloneableData {
	cpy := *m
	return &cpy
}
