package multisig

import (
	"context"
	"testing"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/gconf"
	"github.com/iov-one/mswallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitialization(t *testing.T) {
	ctx := context.Background()
	creator, owner, stranger := newAddr(), newAddr(), newAddr()

	cases := map[string]struct {
		// before is applied to a fresh wallet
		before  func(t testing.TB, c *Controller, db mswallet.KVStore, wallet mswallet.Address)
		call    func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error
		wantErr *errors.Error
	}{
		"init owner on a fresh wallet": {
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.InitOwner(ctx, db, wallet, creator, owner)
			},
		},
		"wallet cannot own itself": {
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.InitOwner(ctx, db, wallet, creator, wallet)
			},
			wantErr: ErrCannotBeSameAddress,
		},
		"only the creator can init": {
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.InitOwner(ctx, db, wallet, stranger, owner)
			},
			wantErr: errors.ErrUnauthorized,
		},
		"init owner runs only once": {
			before: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet mswallet.Address) {
				require.NoError(t, c.InitOwner(ctx, db, wallet, creator, owner))
			},
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.InitOwner(ctx, db, wallet, creator, stranger)
			},
			wantErr: ErrNotConfigured,
		},
		"init owner after configure": {
			before: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet mswallet.Address) {
				require.NoError(t, c.InitOwner(ctx, db, wallet, creator, owner))
				require.NoError(t, c.Configure(ctx, db, wallet, creator))
			},
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.InitOwner(ctx, db, wallet, creator, owner)
			},
			wantErr: ErrNotConfigured,
		},
		"configure after init owner": {
			before: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet mswallet.Address) {
				require.NoError(t, c.InitOwner(ctx, db, wallet, creator, owner))
			},
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.Configure(ctx, db, wallet, creator)
			},
		},
		"configure before init owner": {
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.Configure(ctx, db, wallet, creator)
			},
			wantErr: ErrNotConfigured,
		},
		"configure twice": {
			before: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet mswallet.Address) {
				require.NoError(t, c.InitOwner(ctx, db, wallet, creator, owner))
				require.NoError(t, c.Configure(ctx, db, wallet, creator))
			},
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.Configure(ctx, db, wallet, creator)
			},
			wantErr: ErrNotConfigured,
		},
		"only the creator can configure": {
			before: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet mswallet.Address) {
				require.NoError(t, c.InitOwner(ctx, db, wallet, creator, owner))
			},
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.Configure(ctx, db, wallet, owner)
			},
			wantErr: errors.ErrUnauthorized,
		},
		"unknown wallet": {
			call: func(c *Controller, db mswallet.KVStore, wallet mswallet.Address) error {
				return c.InitOwner(ctx, db, newAddr(), creator, owner)
			},
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			c := NewController(&invokerMock{})
			wallet, err := c.Create(ctx, db, creator, 2)
			require.NoError(t, err)
			if tc.before != nil {
				tc.before(t, c, db, wallet)
			}
			if err := tc.call(c, db, wallet); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v error, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateRequiresQuorum(t *testing.T) {
	db := store.MemStore()
	c := NewController(&invokerMock{})
	_, err := c.Create(context.Background(), db, newAddr(), 0)
	assert.True(t, errors.ErrInput.Is(err))

	_, err = c.Create(context.Background(), db, mswallet.Address("short"), 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestOperationsRequireConfiguration(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	c := NewController(&invokerMock{})
	creator, owner, other := newAddr(), newAddr(), newAddr()
	wallet, err := c.Create(ctx, db, creator, 1)
	require.NoError(t, err)
	require.NoError(t, c.InitOwner(ctx, db, wallet, creator, owner))

	// the owner is declared, yet nothing works before configure
	calls := map[string]func() error{
		"getConfirmations": func() error {
			_, err := c.Confirmations(db, wallet, 0)
			return err
		},
		"executeTransaction": func() error {
			_, err := c.Execute(ctx, db, wallet, owner, 1, other)
			return err
		},
		"approve": func() error {
			return c.Approve(ctx, db, wallet, owner, 1)
		},
		"addTransaction": func() error {
			_, err := c.AddTransaction(ctx, db, wallet, owner, "Vote")
			return err
		},
		"addOwner": func() error {
			return c.AddOwner(ctx, db, wallet, owner, other, true)
		},
		"removeOwner": func() error {
			return c.RemoveOwner(ctx, db, wallet, owner, other)
		},
		"voteRemoveOwner": func() error {
			return c.VoteRemoveOwner(ctx, db, wallet, owner, other)
		},
		"voteAddOwner": func() error {
			return c.VoteAddOwner(ctx, db, wallet, owner, other)
		},
		"non owner is rejected by the configuration gate first": func() error {
			return c.VoteAddOwner(ctx, db, wallet, other, other)
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !ErrOnlyConfigured.Is(err) {
				t.Fatalf("want only configured error, got %+v", err)
			}
		})
	}
}

func TestOwnerGovernance(t *testing.T) {
	ctx := context.Background()

	cases := map[string]struct {
		// run receives a configured wallet with required=1 and a single owner
		run     func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error
		wantErr *errors.Error
	}{
		"non owner cannot vote to add": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.VoteAddOwner(ctx, db, wallet, newAddr(), newAddr())
			},
			wantErr: ErrOnlyOwners,
		},
		"double add vote": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				candidate := newAddr()
				require.NoError(t, c.VoteAddOwner(ctx, db, wallet, owner, candidate))
				return c.VoteAddOwner(ctx, db, wallet, owner, candidate)
			},
			wantErr: ErrAlreadyVoted,
		},
		"votes for an existing owner are accepted": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.VoteAddOwner(ctx, db, wallet, owner, owner)
			},
		},
		"add without votes": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.AddOwner(ctx, db, wallet, owner, newAddr(), false)
			},
			wantErr: ErrNotEnoughVotes,
		},
		"non owner cannot add": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				candidate := newAddr()
				require.NoError(t, c.VoteAddOwner(ctx, db, wallet, owner, candidate))
				return c.AddOwner(ctx, db, wallet, newAddr(), candidate, false)
			},
			wantErr: ErrOnlyOwners,
		},
		"second add of the same candidate has no votes": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				candidate := newAddr()
				addOwner(t, c, db, wallet, candidate, false, owner)
				return c.AddOwner(ctx, db, wallet, owner, candidate, false)
			},
			wantErr: ErrNotEnoughVotes,
		},
		"adding an existing owner is a duplicate": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				require.NoError(t, c.VoteAddOwner(ctx, db, wallet, owner, owner))
				return c.AddOwner(ctx, db, wallet, owner, owner, false)
			},
			wantErr: errors.ErrDuplicate,
		},
		"wallet cannot be voted in as its own owner": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.VoteAddOwner(ctx, db, wallet, owner, wallet)
			},
			wantErr: ErrCannotBeSameAddress,
		},
		"wallet cannot be added as its own owner": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				err := c.AddOwner(ctx, db, wallet, owner, wallet, false)
				w, werr := c.Wallet(db, wallet)
				require.NoError(t, werr)
				assert.False(t, w.IsOwner(wallet))
				return err
			},
			wantErr: ErrCannotBeSameAddress,
		},
		"vote to remove a non owner": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.VoteRemoveOwner(ctx, db, wallet, owner, newAddr())
			},
			wantErr: ErrPassedAddressIsNotOwner,
		},
		"double remove vote": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				other := newAddr()
				addOwner(t, c, db, wallet, other, false, owner)
				require.NoError(t, c.VoteRemoveOwner(ctx, db, wallet, owner, other))
				return c.VoteRemoveOwner(ctx, db, wallet, owner, other)
			},
			wantErr: ErrAlreadyVoted,
		},
		"remove without votes": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.RemoveOwner(ctx, db, wallet, owner, owner)
			},
			wantErr: ErrNotEnoughVotes,
		},
		"repeated removal has no votes": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				other := newAddr()
				addOwner(t, c, db, wallet, other, false, owner)
				require.NoError(t, c.VoteRemoveOwner(ctx, db, wallet, owner, other))
				require.NoError(t, c.RemoveOwner(ctx, db, wallet, owner, other))
				return c.RemoveOwner(ctx, db, wallet, owner, other)
			},
			wantErr: ErrNotEnoughVotes,
		},
		"removed owner loses privileges": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				other := newAddr()
				addOwner(t, c, db, wallet, other, false, owner)
				require.NoError(t, c.VoteRemoveOwner(ctx, db, wallet, owner, other))
				require.NoError(t, c.RemoveOwner(ctx, db, wallet, owner, other))
				return c.VoteAddOwner(ctx, db, wallet, other, newAddr())
			},
			wantErr: ErrOnlyOwners,
		},
		"invalid candidate": {
			run: func(t testing.TB, c *Controller, db mswallet.KVStore, wallet, owner mswallet.Address) error {
				return c.VoteAddOwner(ctx, db, wallet, owner, mswallet.Address("short"))
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			c := NewController(&invokerMock{})
			wallet, _, owner := configured(t, c, db, 1)
			if err := tc.run(t, c, db, wallet, owner); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v error, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestAddOwnerIncreasesRequired(t *testing.T) {
	db := store.MemStore()
	c := NewController(&invokerMock{})
	wallet, _, owner := configured(t, c, db, 1)

	second, third := newAddr(), newAddr()
	addOwner(t, c, db, wallet, second, true, owner)
	w, err := c.Wallet(db, wallet)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), w.Required)
	assert.Equal(t, []mswallet.Address{owner, second}, w.OwnerAddresses())

	// one vote is no longer enough
	ctx := context.Background()
	require.NoError(t, c.VoteAddOwner(ctx, db, wallet, owner, third))
	err = c.AddOwner(ctx, db, wallet, owner, third, false)
	assert.True(t, ErrNotEnoughVotes.Is(err))

	require.NoError(t, c.VoteAddOwner(ctx, db, wallet, second, third))
	require.NoError(t, c.AddOwner(ctx, db, wallet, second, third, false))
	w, err = c.Wallet(db, wallet)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), w.Required)
	assert.True(t, w.IsOwner(third))
}

func TestDuplicateAddKeepsVotes(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	c := NewController(&invokerMock{})
	wallet, _, owner := configured(t, c, db, 1)

	require.NoError(t, c.VoteAddOwner(ctx, db, wallet, owner, owner))
	err := c.AddOwner(ctx, db, wallet, owner, owner, false)
	require.True(t, errors.ErrDuplicate.Is(err))

	pool, err := c.votes.GetPool(db, wallet, DirectionAdd, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pool.Count())
}

func TestTransactions(t *testing.T) {
	ctx := context.Background()
	target := newAddr()

	cases := map[string]struct {
		// run receives a configured wallet with required=2 and two owners
		run     func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error
		wantErr *errors.Error
	}{
		"method outside of the allow list": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				_, err := c.AddTransaction(ctx, db, wallet, a, "sayHello")
				return err
			},
			wantErr: ErrInvalidMethodName,
		},
		"non owner cannot propose": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				_, err := c.AddTransaction(ctx, db, wallet, newAddr(), "Vote")
				return err
			},
			wantErr: ErrOnlyOwners,
		},
		"approve unknown transaction": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				return c.Approve(ctx, db, wallet, a, 5)
			},
			wantErr: errors.ErrNotFound,
		},
		"double approve": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				return c.Approve(ctx, db, wallet, a, id)
			},
			wantErr: ErrAlreadyVoted,
		},
		"non owner cannot approve": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				return c.Approve(ctx, db, wallet, newAddr(), id)
			},
			wantErr: ErrOnlyOwners,
		},
		"execute below quorum": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				_, err = c.Execute(ctx, db, wallet, a, id, target)
				return err
			},
			wantErr: ErrNotEnoughVotes,
		},
		"non owner cannot execute": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				require.NoError(t, c.Approve(ctx, db, wallet, b, id))
				_, err = c.Execute(ctx, db, wallet, newAddr(), id, target)
				return err
			},
			wantErr: ErrOnlyOwners,
		},
		"execute unknown transaction": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				_, err := c.Execute(ctx, db, wallet, a, 3, target)
				return err
			},
			wantErr: errors.ErrNotFound,
		},
		"execute approved transaction": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				inv.On("Invoke", mock.Anything, mock.Anything, target, "Vote").Return([]byte("done"), nil).Once()
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				require.NoError(t, c.Approve(ctx, db, wallet, b, id))
				res, err := c.Execute(ctx, db, wallet, b, id, target)
				assert.Equal(t, []byte("done"), res)
				return err
			},
		},
		"execute twice": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				inv.On("Invoke", mock.Anything, mock.Anything, target, "Vote").Return(nil, nil).Once()
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				require.NoError(t, c.Approve(ctx, db, wallet, b, id))
				_, err = c.Execute(ctx, db, wallet, a, id, target)
				require.NoError(t, err)
				_, err = c.Execute(ctx, db, wallet, a, id, target)
				return err
			},
			wantErr: ErrAlreadyExecuted,
		},
		"approve after execution": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				inv.On("Invoke", mock.Anything, mock.Anything, target, "Vote").Return(nil, nil).Once()
				third := newAddr()
				addOwner(t, c, db, wallet, third, false, a, b)
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				require.NoError(t, c.Approve(ctx, db, wallet, b, id))
				_, err = c.Execute(ctx, db, wallet, a, id, target)
				require.NoError(t, err)
				return c.Approve(ctx, db, wallet, third, id)
			},
			wantErr: ErrAlreadyExecuted,
		},
		"invoker failure is returned": {
			run: func(t testing.TB, c *Controller, inv *invokerMock, db mswallet.KVStore, wallet, a, b mswallet.Address) error {
				inv.On("Invoke", mock.Anything, mock.Anything, target, "Vote").Return(nil, errors.ErrState).Once()
				id, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
				require.NoError(t, err)
				require.NoError(t, c.Approve(ctx, db, wallet, a, id))
				require.NoError(t, c.Approve(ctx, db, wallet, b, id))
				_, err = c.Execute(ctx, db, wallet, a, id, target)
				return err
			},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			inv := &invokerMock{}
			c := NewController(inv)
			wallet, _, a := configured(t, c, db, 1)
			b := newAddr()
			addOwner(t, c, db, wallet, b, true, a)

			if err := tc.run(t, c, inv, db, wallet, a, b); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v error, got %+v", tc.wantErr, err)
			}
			inv.AssertExpectations(t)
		})
	}
}

func TestConfirmationsAreIndependent(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	c := NewController(&invokerMock{})
	wallet, _, a := configured(t, c, db, 1)
	b, d := newAddr(), newAddr()
	addOwner(t, c, db, wallet, b, false, a)
	addOwner(t, c, db, wallet, d, false, a)

	first, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
	require.NoError(t, err)
	second, err := c.AddTransaction(ctx, db, wallet, a, "Vote")
	require.NoError(t, err)

	var last int64
	for _, owner := range []mswallet.Address{a, b, d} {
		require.NoError(t, c.Approve(ctx, db, wallet, owner, second))
		n, err := c.Confirmations(db, wallet, second)
		require.NoError(t, err)
		assert.True(t, n > last, "confirmations must grow")
		last = n

		n, err = c.Confirmations(db, wallet, first)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	}
	assert.Equal(t, int64(3), last)

	_, err = c.Confirmations(db, wallet, 9)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestAllowedMethods(t *testing.T) {
	ctx := context.Background()

	t.Run("default", func(t *testing.T) {
		db := store.MemStore()
		c := NewController(&invokerMock{})
		wallet, _, owner := configured(t, c, db, 1)
		_, err := c.AddTransaction(ctx, db, wallet, owner, "Vote")
		assert.NoError(t, err)
		_, err = c.AddTransaction(ctx, db, wallet, owner, "Close")
		assert.True(t, ErrInvalidMethodName.Is(err))
	})

	t.Run("stored configuration", func(t *testing.T) {
		db := store.MemStore()
		require.NoError(t, gconf.Save(db, gconfPackage, &Configuration{AllowedMethods: []string{"Close"}}))
		c := NewController(&invokerMock{})
		wallet, _, owner := configured(t, c, db, 1)
		_, err := c.AddTransaction(ctx, db, wallet, owner, "Close")
		assert.NoError(t, err)
		_, err = c.AddTransaction(ctx, db, wallet, owner, "Vote")
		assert.True(t, ErrInvalidMethodName.Is(err))
	})

	t.Run("controller override wins", func(t *testing.T) {
		db := store.MemStore()
		require.NoError(t, gconf.Save(db, gconfPackage, &Configuration{AllowedMethods: []string{"Close"}}))
		c := NewController(&invokerMock{}).WithAllowedMethods("Reset")
		wallet, _, owner := configured(t, c, db, 1)
		_, err := c.AddTransaction(ctx, db, wallet, owner, "Reset")
		assert.NoError(t, err)
		_, err = c.AddTransaction(ctx, db, wallet, owner, "Close")
		assert.True(t, ErrInvalidMethodName.Is(err))
	})
}
