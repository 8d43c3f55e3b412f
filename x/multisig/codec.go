package multisig

import (
	"github.com/gogo/protobuf/proto"
)

// The wire schema of the types below is kept in codec.proto.

// Wallet is the persisted state of a single multisig wallet.
type Wallet struct {
	// Address is the wallet own address, derived from its sequence id.
	Address []byte `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	// Creator is the account that deployed the wallet. Only the creator
	// can walk the wallet through its initialization phase.
	Creator []byte `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	// Required is the number of votes or approvals needed to act.
	Required uint32 `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	// Initialized is set once the first owner was declared.
	Initialized bool `protobuf:"varint,4,opt,name=initialized,proto3" json:"initialized,omitempty"`
	// Configured is set once initialization is sealed.
	Configured bool `protobuf:"varint,5,opt,name=configured,proto3" json:"configured,omitempty"`
	// Owners in the order they were added.
	Owners [][]byte `protobuf:"bytes,6,rep,name=owners,proto3" json:"owners,omitempty"`
}

type walletCodec Wallet

func (m *walletCodec) Reset()         { *m = walletCodec{} }
func (m *walletCodec) String() string { return proto.CompactTextString(m) }
func (*walletCodec) ProtoMessage()    {}

func (m *Wallet) Marshal() ([]byte, error) { return proto.Marshal((*walletCodec)(m)) }
func (m *Wallet) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*walletCodec)(m)) }
func (m *Wallet) String() string           { return proto.CompactTextString((*walletCodec)(m)) }

// Transaction is a proposal to call a method on a target contract.
type Transaction struct {
	ID         int64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	MethodName string   `protobuf:"bytes,2,opt,name=method_name,json=methodName,proto3" json:"method_name,omitempty"`
	Approvals  [][]byte `protobuf:"bytes,3,rep,name=approvals,proto3" json:"approvals,omitempty"`
	Executed   bool     `protobuf:"varint,4,opt,name=executed,proto3" json:"executed,omitempty"`
}

type transactionCodec Transaction

func (m *transactionCodec) Reset()         { *m = transactionCodec{} }
func (m *transactionCodec) String() string { return proto.CompactTextString(m) }
func (*transactionCodec) ProtoMessage()    {}

func (m *Transaction) Marshal() ([]byte, error) { return proto.Marshal((*transactionCodec)(m)) }
func (m *Transaction) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*transactionCodec)(m)) }
func (m *Transaction) String() string           { return proto.CompactTextString((*transactionCodec)(m)) }

// VotePool holds the owners that voted for a single candidate in a single
// direction.
type VotePool struct {
	Voters [][]byte `protobuf:"bytes,1,rep,name=voters,proto3" json:"voters,omitempty"`
}

type votePoolCodec VotePool

func (m *votePoolCodec) Reset()         { *m = votePoolCodec{} }
func (m *votePoolCodec) String() string { return proto.CompactTextString(m) }
func (*votePoolCodec) ProtoMessage()    {}

func (m *VotePool) Marshal() ([]byte, error) { return proto.Marshal((*votePoolCodec)(m)) }
func (m *VotePool) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*votePoolCodec)(m)) }
func (m *VotePool) String() string           { return proto.CompactTextString((*votePoolCodec)(m)) }

// Configuration is the gconf stored configuration of this extension.
type Configuration struct {
	AllowedMethods []string `protobuf:"bytes,1,rep,name=allowed_methods,json=allowedMethods,proto3" json:"allowed_methods,omitempty"`
}

type configurationCodec Configuration

func (m *configurationCodec) Reset()         { *m = configurationCodec{} }
func (m *configurationCodec) String() string { return proto.CompactTextString(m) }
func (*configurationCodec) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationCodec)(m)) }
func (m *Configuration) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*configurationCodec)(m))
}

// CreateMsg deploys a new wallet with the given quorum. The signer becomes
// the wallet creator.
type CreateMsg struct {
	Required uint32 `protobuf:"varint,1,opt,name=required,proto3" json:"required,omitempty"`
}

type createMsgCodec CreateMsg

func (m *createMsgCodec) Reset()         { *m = createMsgCodec{} }
func (m *createMsgCodec) String() string { return proto.CompactTextString(m) }
func (*createMsgCodec) ProtoMessage()    {}

func (m *CreateMsg) Marshal() ([]byte, error) { return proto.Marshal((*createMsgCodec)(m)) }
func (m *CreateMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*createMsgCodec)(m)) }

// InitOwnerMsg declares the first owner of a wallet.
type InitOwnerMsg struct {
	Wallet    []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	Candidate []byte `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
}

type initOwnerMsgCodec InitOwnerMsg

func (m *initOwnerMsgCodec) Reset()         { *m = initOwnerMsgCodec{} }
func (m *initOwnerMsgCodec) String() string { return proto.CompactTextString(m) }
func (*initOwnerMsgCodec) ProtoMessage()    {}

func (m *InitOwnerMsg) Marshal() ([]byte, error) { return proto.Marshal((*initOwnerMsgCodec)(m)) }
func (m *InitOwnerMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*initOwnerMsgCodec)(m)) }

// ConfigureMsg seals the initialization phase of a wallet.
type ConfigureMsg struct {
	Wallet []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
}

type configureMsgCodec ConfigureMsg

func (m *configureMsgCodec) Reset()         { *m = configureMsgCodec{} }
func (m *configureMsgCodec) String() string { return proto.CompactTextString(m) }
func (*configureMsgCodec) ProtoMessage()    {}

func (m *ConfigureMsg) Marshal() ([]byte, error) { return proto.Marshal((*configureMsgCodec)(m)) }
func (m *ConfigureMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*configureMsgCodec)(m)) }

// VoteAddOwnerMsg is a vote to make the candidate an owner.
type VoteAddOwnerMsg struct {
	Wallet    []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	Candidate []byte `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
}

type voteAddOwnerMsgCodec VoteAddOwnerMsg

func (m *voteAddOwnerMsgCodec) Reset()         { *m = voteAddOwnerMsgCodec{} }
func (m *voteAddOwnerMsgCodec) String() string { return proto.CompactTextString(m) }
func (*voteAddOwnerMsgCodec) ProtoMessage()    {}

func (m *VoteAddOwnerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*voteAddOwnerMsgCodec)(m))
}
func (m *VoteAddOwnerMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*voteAddOwnerMsgCodec)(m))
}

// AddOwnerMsg enacts the add votes collected for the candidate.
type AddOwnerMsg struct {
	Wallet           []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	Candidate        []byte `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
	IncreaseRequired bool   `protobuf:"varint,3,opt,name=increase_required,json=increaseRequired,proto3" json:"increase_required,omitempty"`
}

type addOwnerMsgCodec AddOwnerMsg

func (m *addOwnerMsgCodec) Reset()         { *m = addOwnerMsgCodec{} }
func (m *addOwnerMsgCodec) String() string { return proto.CompactTextString(m) }
func (*addOwnerMsgCodec) ProtoMessage()    {}

func (m *AddOwnerMsg) Marshal() ([]byte, error) { return proto.Marshal((*addOwnerMsgCodec)(m)) }
func (m *AddOwnerMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*addOwnerMsgCodec)(m)) }

// VoteRemoveOwnerMsg is a vote to revoke ownership of the candidate.
type VoteRemoveOwnerMsg struct {
	Wallet    []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	Candidate []byte `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
}

type voteRemoveOwnerMsgCodec VoteRemoveOwnerMsg

func (m *voteRemoveOwnerMsgCodec) Reset()         { *m = voteRemoveOwnerMsgCodec{} }
func (m *voteRemoveOwnerMsgCodec) String() string { return proto.CompactTextString(m) }
func (*voteRemoveOwnerMsgCodec) ProtoMessage()    {}

func (m *VoteRemoveOwnerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*voteRemoveOwnerMsgCodec)(m))
}
func (m *VoteRemoveOwnerMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*voteRemoveOwnerMsgCodec)(m))
}

// RemoveOwnerMsg enacts the remove votes collected for the candidate.
type RemoveOwnerMsg struct {
	Wallet    []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	Candidate []byte `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
}

type removeOwnerMsgCodec RemoveOwnerMsg

func (m *removeOwnerMsgCodec) Reset()         { *m = removeOwnerMsgCodec{} }
func (m *removeOwnerMsgCodec) String() string { return proto.CompactTextString(m) }
func (*removeOwnerMsgCodec) ProtoMessage()    {}

func (m *RemoveOwnerMsg) Marshal() ([]byte, error) { return proto.Marshal((*removeOwnerMsgCodec)(m)) }
func (m *RemoveOwnerMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*removeOwnerMsgCodec)(m))
}

// AddTransactionMsg proposes a call of the named method.
type AddTransactionMsg struct {
	Wallet     []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	MethodName string `protobuf:"bytes,2,opt,name=method_name,json=methodName,proto3" json:"method_name,omitempty"`
}

type addTransactionMsgCodec AddTransactionMsg

func (m *addTransactionMsgCodec) Reset()         { *m = addTransactionMsgCodec{} }
func (m *addTransactionMsgCodec) String() string { return proto.CompactTextString(m) }
func (*addTransactionMsgCodec) ProtoMessage()    {}

func (m *AddTransactionMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*addTransactionMsgCodec)(m))
}
func (m *AddTransactionMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*addTransactionMsgCodec)(m))
}

// ApproveMsg approves a proposed transaction.
type ApproveMsg struct {
	Wallet []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	TxID   int64  `protobuf:"varint,2,opt,name=tx_id,json=txId,proto3" json:"tx_id,omitempty"`
}

type approveMsgCodec ApproveMsg

func (m *approveMsgCodec) Reset()         { *m = approveMsgCodec{} }
func (m *approveMsgCodec) String() string { return proto.CompactTextString(m) }
func (*approveMsgCodec) ProtoMessage()    {}

func (m *ApproveMsg) Marshal() ([]byte, error) { return proto.Marshal((*approveMsgCodec)(m)) }
func (m *ApproveMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*approveMsgCodec)(m)) }

// GetConfirmationsMsg asks for the number of approvals of a transaction.
type GetConfirmationsMsg struct {
	Wallet []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	TxID   int64  `protobuf:"varint,2,opt,name=tx_id,json=txId,proto3" json:"tx_id,omitempty"`
}

type getConfirmationsMsgCodec GetConfirmationsMsg

func (m *getConfirmationsMsgCodec) Reset()         { *m = getConfirmationsMsgCodec{} }
func (m *getConfirmationsMsgCodec) String() string { return proto.CompactTextString(m) }
func (*getConfirmationsMsgCodec) ProtoMessage()    {}

func (m *GetConfirmationsMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*getConfirmationsMsgCodec)(m))
}
func (m *GetConfirmationsMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*getConfirmationsMsgCodec)(m))
}

// ExecuteMsg runs an approved transaction against the target contract.
type ExecuteMsg struct {
	Wallet []byte `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet,omitempty"`
	TxID   int64  `protobuf:"varint,2,opt,name=tx_id,json=txId,proto3" json:"tx_id,omitempty"`
	Target []byte `protobuf:"bytes,3,opt,name=target,proto3" json:"target,omitempty"`
}

type executeMsgCodec ExecuteMsg

func (m *executeMsgCodec) Reset()         { *m = executeMsgCodec{} }
func (m *executeMsgCodec) String() string { return proto.CompactTextString(m) }
func (*executeMsgCodec) ProtoMessage()    {}

func (m *ExecuteMsg) Marshal() ([]byte, error) { return proto.Marshal((*executeMsgCodec)(m)) }
func (m *ExecuteMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*executeMsgCodec)(m)) }
