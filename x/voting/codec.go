package voting

import (
	"github.com/gogo/protobuf/proto"
)

// The wire schema of the types below is kept in codec.proto.

// Tally is the state of a deployed voting contract.
type Tally struct {
	Result int64 `protobuf:"varint,1,opt,name=result,proto3" json:"result,omitempty"`
}

type tallyCodec Tally

func (m *tallyCodec) Reset()         { *m = tallyCodec{} }
func (m *tallyCodec) String() string { return proto.CompactTextString(m) }
func (*tallyCodec) ProtoMessage()    {}

func (m *Tally) Marshal() ([]byte, error) { return proto.Marshal((*tallyCodec)(m)) }
func (m *Tally) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*tallyCodec)(m)) }
