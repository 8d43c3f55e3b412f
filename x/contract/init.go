package contract

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

// Initializer deploys the contracts declared in the genesis file, in
// declaration order.
type Initializer struct {
	Registry *Registry
}

var _ mswallet.Initializer = (*Initializer)(nil)

// FromGenesis reads the "contracts" list.
func (i *Initializer) FromGenesis(opts mswallet.Options, kv mswallet.KVStore) error {
	var contracts []struct {
		Kind string `json:"kind"`
	}
	if err := opts.ReadOptions("contracts", &contracts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	for n, c := range contracts {
		if _, err := i.Registry.Deploy(kv, c.Kind); err != nil {
			return errors.Wrapf(err, "cannot deploy #%d contract", n)
		}
	}
	return nil
}
