package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/app"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/orm"
	"github.com/iov-one/mswallet/store"
	"github.com/iov-one/mswallet/x/contract"
	"github.com/iov-one/mswallet/x/multisig"
	"github.com/tendermint/tendermint/libs/log"
)

// inspectGenesis loads the genesis file into a memory store and writes a
// summary of the declared contracts and wallets to out.
func inspectGenesis(out io.Writer, logger log.Logger, path string) error {
	gen, err := app.LoadGenesis(path)
	if err != nil {
		return err
	}

	stack := NewStack(nil)
	db := store.MemStore()
	exec, err := app.NewExecutor(db, stack.Handler, stack.Initializer)
	if err != nil {
		return err
	}
	if err := exec.WithLogger(logger).InitChain(gen); err != nil {
		return err
	}

	fmt.Fprintf(out, "chain: %s\n", exec.ChainID())
	for i := int64(0); ; i++ {
		addr := contract.Condition(orm.EncodeSequence(i)).Address()
		d, err := stack.Contracts.Deployment(db, addr)
		if errors.ErrNotFound.Is(err) {
			break
		} else if err != nil {
			return err
		}
		fmt.Fprintf(out, "contract %s kind=%s\n", addr, d.Kind)
	}
	for i := int64(0); ; i++ {
		addr := multisig.WalletCondition(orm.EncodeSequence(i)).Address()
		w, err := stack.Wallets.Wallet(db, addr)
		if errors.ErrNotFound.Is(err) {
			break
		} else if err != nil {
			return err
		}
		fmt.Fprintf(out, "wallet %s required=%d configured=%t owners=[%s]\n",
			addr, w.Required, w.Configured, joinAddresses(w.OwnerAddresses()))
	}
	return nil
}

func joinAddresses(addrs []mswallet.Address) string {
	s := make([]string, len(addrs))
	for i, a := range addrs {
		s[i] = a.String()
	}
	return strings.Join(s, " ")
}
