package multisig

import (
	"context"
	"testing"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/orm"
	"github.com/iov-one/mswallet/wallettest"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// invokerMock is a testify mock of the Invoker.
type invokerMock struct {
	mock.Mock
}

var _ Invoker = (*invokerMock)(nil)

func (m *invokerMock) Invoke(ctx mswallet.Context, db mswallet.KVStore, target mswallet.Address, method string) ([]byte, error) {
	args := m.Called(ctx, db, target, method)
	res, _ := args.Get(0).([]byte)
	return res, args.Error(1)
}

func newAddr() mswallet.Address {
	return wallettest.NewCondition().Address()
}

// configured returns a wallet that is ready for owner operations, with
// owner as the only owner.
func configured(t testing.TB, ctrl *Controller, db mswallet.KVStore, required uint32) (wallet, creator, owner mswallet.Address) {
	t.Helper()
	ctx := context.Background()
	creator, owner = newAddr(), newAddr()
	wallet, err := ctrl.Create(ctx, db, creator, required)
	require.NoError(t, err)
	require.NoError(t, ctrl.InitOwner(ctx, db, wallet, creator, owner))
	require.NoError(t, ctrl.Configure(ctx, db, wallet, creator))
	return wallet, creator, owner
}

// addOwner votes in and adds candidate with all given voters.
func addOwner(t testing.TB, ctrl *Controller, db mswallet.KVStore, wallet, candidate mswallet.Address, increase bool, voters ...mswallet.Address) {
	t.Helper()
	ctx := context.Background()
	for _, v := range voters {
		require.NoError(t, ctrl.VoteAddOwner(ctx, db, wallet, v, candidate))
	}
	require.NoError(t, ctrl.AddOwner(ctx, db, wallet, voters[0], candidate, increase))
}

func seqID(n int64) []byte {
	return orm.EncodeSequence(n)
}
