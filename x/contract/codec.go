package contract

import (
	"github.com/gogo/protobuf/proto"
)

// The wire schema of the types below is kept in codec.proto.

// Deployment records the kind of the contract deployed at an address.
type Deployment struct {
	Kind string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
}

type deploymentCodec Deployment

func (m *deploymentCodec) Reset()         { *m = deploymentCodec{} }
func (m *deploymentCodec) String() string { return proto.CompactTextString(m) }
func (*deploymentCodec) ProtoMessage()    {}

func (m *Deployment) Marshal() ([]byte, error) { return proto.Marshal((*deploymentCodec)(m)) }
func (m *Deployment) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*deploymentCodec)(m)) }
func (m *Deployment) String() string           { return proto.CompactTextString((*deploymentCodec)(m)) }
