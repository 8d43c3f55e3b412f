package multisig

import (
	"github.com/iov-one/mswallet"
)

// Invoker calls a method on a deployed contract. Executing a transaction
// delegates to it, so the wallet never depends on a concrete contract type.
//
// Invoke receives the same store the wallet operates on, so contract state
// changes are committed or rolled back together with the wallet state.
type Invoker interface {
	Invoke(ctx mswallet.Context, db mswallet.KVStore, target mswallet.Address, method string) ([]byte, error)
}
