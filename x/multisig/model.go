package multisig

import (
	"bytes"
	"encoding/hex"
	"regexp"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/orm"
)

const (
	// WalletBucketName is where we store the wallets
	WalletBucketName = "wallet"
	// TransactionBucketName is where we store the proposed transactions
	TransactionBucketName = "wallet_tx"
	// VotePoolBucketName is where we store the pending owner votes
	VotePoolBucketName = "votepool"
	// SequenceName is an auto-increment ID counter for wallets
	SequenceName = "id"

	// To avoid burning CPU, this is the maximum number of owners a single
	// wallet can have.
	maxOwnersAllowed = 100
)

// DefaultAllowedMethods is used when neither the controller nor the genesis
// configuration define an allow list.
var DefaultAllowedMethods = []string{"Vote"}

var isMethodName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`).MatchString

// WalletCondition returns the condition of the wallet with given sequence
// id. Its address is the wallet address.
func WalletCondition(id []byte) mswallet.Condition {
	return mswallet.NewCondition("multisig", "wallet", id)
}

// Direction tells which way a vote pool moves its candidate.
type Direction byte

const (
	DirectionAdd    Direction = 'a'
	DirectionRemove Direction = 'r'
)

func (d Direction) String() string {
	switch d {
	case DirectionAdd:
		return "add"
	case DirectionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

var _ orm.CloneableData = (*Wallet)(nil)

// Validate ensures the wallet is consistent before it is persisted.
func (w *Wallet) Validate() error {
	if err := mswallet.Address(w.Address).Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := mswallet.Address(w.Creator).Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	if w.Required < 1 {
		return errors.Wrap(errors.ErrModel, "required must be at least 1")
	}
	if w.Configured && !w.Initialized {
		return errors.Wrap(errors.ErrModel, "configured before initialized")
	}
	if len(w.Owners) > maxOwnersAllowed {
		return errors.Wrap(errors.ErrModel, "too many owners")
	}
	if err := validateAddressSet(w.Owners); err != nil {
		return errors.Wrap(err, "owners")
	}
	return nil
}

// Copy returns a deep copy of the wallet.
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{
		Address:     cloneBytes(w.Address),
		Creator:     cloneBytes(w.Creator),
		Required:    w.Required,
		Initialized: w.Initialized,
		Configured:  w.Configured,
		Owners:      cloneAddresses(w.Owners),
	}
}

// IsOwner returns true if given address is one of the wallet owners.
// Owner sets are bounded by maxOwnersAllowed.
func (w *Wallet) IsOwner(addr mswallet.Address) bool {
	return containsAddress(w.Owners, addr)
}

// OwnerAddresses returns the owners as addresses.
func (w *Wallet) OwnerAddresses() []mswallet.Address {
	res := make([]mswallet.Address, len(w.Owners))
	for i, o := range w.Owners {
		res[i] = o
	}
	return res
}

func (w *Wallet) addOwner(addr mswallet.Address) {
	w.Owners = append(w.Owners, cloneBytes(addr))
}

func (w *Wallet) removeOwner(addr mswallet.Address) {
	w.Owners = removeAddress(w.Owners, addr)
}

var _ orm.CloneableData = (*Transaction)(nil)

// Validate ensures the transaction is consistent before it is persisted.
func (t *Transaction) Validate() error {
	if t.ID < 0 {
		return errors.Wrap(errors.ErrModel, "negative id")
	}
	if !isMethodName(t.MethodName) {
		return errors.Wrapf(errors.ErrModel, "method name %q", t.MethodName)
	}
	if err := validateAddressSet(t.Approvals); err != nil {
		return errors.Wrap(err, "approvals")
	}
	return nil
}

// Copy returns a deep copy of the transaction.
func (t *Transaction) Copy() orm.CloneableData {
	return &Transaction{
		ID:         t.ID,
		MethodName: t.MethodName,
		Approvals:  cloneAddresses(t.Approvals),
		Executed:   t.Executed,
	}
}

// Confirmations returns how many owners approved this transaction.
func (t *Transaction) Confirmations() int64 {
	return int64(len(t.Approvals))
}

// HasApproved returns true if given address already approved.
func (t *Transaction) HasApproved(addr mswallet.Address) bool {
	return containsAddress(t.Approvals, addr)
}

var _ orm.CloneableData = (*VotePool)(nil)

// Validate ensures every voter is a valid address and votes only once.
func (p *VotePool) Validate() error {
	if len(p.Voters) == 0 {
		return errors.Wrap(errors.ErrEmpty, "voters")
	}
	return validateAddressSet(p.Voters)
}

// Copy returns a deep copy of the pool.
func (p *VotePool) Copy() orm.CloneableData {
	return &VotePool{Voters: cloneAddresses(p.Voters)}
}

// HasVoted returns true if given address is already in the pool.
func (p *VotePool) HasVoted(addr mswallet.Address) bool {
	return containsAddress(p.Voters, addr)
}

// Count returns the number of votes in the pool.
func (p *VotePool) Count() int64 {
	return int64(len(p.Voters))
}

// Validate ensures the allow list is not empty and holds only method names.
func (c *Configuration) Validate() error {
	if len(c.AllowedMethods) == 0 {
		return errors.Wrap(errors.ErrEmpty, "allowed methods")
	}
	for _, name := range c.AllowedMethods {
		if !isMethodName(name) {
			return errors.Wrapf(errors.ErrInput, "method name %q", name)
		}
	}
	return nil
}

// Allows returns true if the method name is on the allow list.
func (c *Configuration) Allows(name string) bool {
	for _, n := range c.AllowedMethods {
		if n == name {
			return true
		}
	}
	return false
}

// WalletBucket is a type-safe wrapper around orm.Bucket
type WalletBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewWalletBucket initializes a WalletBucket with default name
func NewWalletBucket() WalletBucket {
	bucket := orm.NewBucket(WalletBucketName, orm.NewSimpleObj(nil, new(Wallet)))
	return WalletBucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(SequenceName),
	}
}

// Create assigns the next wallet address to w and stores it.
func (b WalletBucket) Create(db mswallet.KVStore, w *Wallet) error {
	id, err := b.idSeq.NextVal(db)
	if err != nil {
		return errors.Wrap(err, "cannot acquire wallet id")
	}
	w.Address = WalletCondition(id).Address()
	return b.Put(db, w)
}

// Put stores the wallet under its own address.
func (b WalletBucket) Put(db mswallet.KVStore, w *Wallet) error {
	return b.Save(db, orm.NewSimpleObj(w.Address, w))
}

// GetWallet returns the wallet with given address.
func (b WalletBucket) GetWallet(db mswallet.ReadOnlyKVStore, addr mswallet.Address) (*Wallet, error) {
	var w Wallet
	if err := b.One(db, addr, &w); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", addr)
	}
	return &w, nil
}

// TransactionBucket stores the proposals of all wallets. Each wallet has its
// own id sequence.
type TransactionBucket struct {
	orm.Bucket
}

// NewTransactionBucket initializes a TransactionBucket with default name
func NewTransactionBucket() TransactionBucket {
	return TransactionBucket{
		Bucket: orm.NewBucket(TransactionBucketName, orm.NewSimpleObj(nil, new(Transaction))),
	}
}

func (b TransactionBucket) seq(wallet mswallet.Address) orm.Sequence {
	return b.Sequence(hex.EncodeToString(wallet))
}

func txKey(wallet mswallet.Address, id int64) []byte {
	return append(cloneBytes(wallet), orm.EncodeSequence(id)...)
}

// Create assigns the next id of the wallet sequence to t and stores it.
func (b TransactionBucket) Create(db mswallet.KVStore, wallet mswallet.Address, t *Transaction) error {
	seq := b.seq(wallet)
	id, err := seq.NextInt(db)
	if err != nil {
		return errors.Wrap(err, "cannot acquire transaction id")
	}
	t.ID = id
	return b.Put(db, wallet, t)
}

// Put stores the transaction under its wallet and id.
func (b TransactionBucket) Put(db mswallet.KVStore, wallet mswallet.Address, t *Transaction) error {
	return b.Save(db, orm.NewSimpleObj(txKey(wallet, t.ID), t))
}

// GetTransaction returns the transaction of the wallet with given id.
func (b TransactionBucket) GetTransaction(db mswallet.ReadOnlyKVStore, wallet mswallet.Address, id int64) (*Transaction, error) {
	var t Transaction
	if err := b.One(db, txKey(wallet, id), &t); err != nil {
		return nil, errors.Wrapf(err, "transaction %d", id)
	}
	return &t, nil
}

// Count returns how many transactions were proposed for the wallet.
func (b TransactionBucket) Count(db mswallet.ReadOnlyKVStore, wallet mswallet.Address) (int64, error) {
	seq := b.seq(wallet)
	return seq.Count(db)
}

// VotePoolBucket stores pending owner votes keyed by wallet, direction and
// candidate.
type VotePoolBucket struct {
	orm.Bucket
}

// NewVotePoolBucket initializes a VotePoolBucket with default name
func NewVotePoolBucket() VotePoolBucket {
	return VotePoolBucket{
		Bucket: orm.NewBucket(VotePoolBucketName, orm.NewSimpleObj(nil, new(VotePool))),
	}
}

func poolKey(wallet mswallet.Address, dir Direction, candidate mswallet.Address) []byte {
	key := make([]byte, 0, len(wallet)+1+len(candidate))
	key = append(key, wallet...)
	key = append(key, byte(dir))
	return append(key, candidate...)
}

// GetPool returns the votes for the candidate. A missing pool is returned
// empty.
func (b VotePoolBucket) GetPool(db mswallet.ReadOnlyKVStore, wallet mswallet.Address, dir Direction, candidate mswallet.Address) (*VotePool, error) {
	obj, err := b.Get(db, poolKey(wallet, dir, candidate))
	if err != nil {
		return nil, errors.Wrapf(err, "%s pool", dir)
	}
	if obj == nil {
		return &VotePool{}, nil
	}
	p, ok := obj.Value().(*VotePool)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return p, nil
}

// Put stores the pool for the candidate.
func (b VotePoolBucket) Put(db mswallet.KVStore, wallet mswallet.Address, dir Direction, candidate mswallet.Address, p *VotePool) error {
	return b.Save(db, orm.NewSimpleObj(poolKey(wallet, dir, candidate), p))
}

// Clear drops all votes for the candidate.
func (b VotePoolBucket) Clear(db mswallet.KVStore, wallet mswallet.Address, dir Direction, candidate mswallet.Address) error {
	return b.Delete(db, poolKey(wallet, dir, candidate))
}

func validateAddressSet(addrs [][]byte) error {
	for i, a := range addrs {
		if err := mswallet.Address(a).Validate(); err != nil {
			return errors.Wrapf(err, "#%d", i)
		}
		if containsAddress(addrs[:i], a) {
			return errors.Wrapf(errors.ErrDuplicate, "#%d %s", i, mswallet.Address(a))
		}
	}
	return nil
}

func containsAddress(addrs [][]byte, addr []byte) bool {
	for _, a := range addrs {
		if bytes.Equal(a, addr) {
			return true
		}
	}
	return false
}

func removeAddress(addrs [][]byte, addr []byte) [][]byte {
	res := make([][]byte, 0, len(addrs))
	for _, a := range addrs {
		if !bytes.Equal(a, addr) {
			res = append(res, a)
		}
	}
	return res
}

func cloneAddresses(addrs [][]byte) [][]byte {
	if addrs == nil {
		return nil
	}
	res := make([][]byte, len(addrs))
	for i, a := range addrs {
		res[i] = cloneBytes(a)
	}
	return res
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
