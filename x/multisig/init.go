package multisig

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/gconf"
)

const gconfPackage = "multisig"

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ mswallet.Initializer = (*Initializer)(nil)

// FromGenesis will parse the wallets declared in genesis and save them in the
// database. Wallets get their addresses in declaration order. The method
// allow list is read from the "conf" section.
//
// A wallet declared with owners is initialized. It can also be declared
// configured, which requires owners.
func (*Initializer) FromGenesis(opts mswallet.Options, kv mswallet.KVStore) error {
	var genesis struct {
		Wallets []struct {
			Creator    mswallet.Address   `json:"creator"`
			Required   uint32             `json:"required"`
			Owners     []mswallet.Address `json:"owners"`
			Configured bool               `json:"configured"`
		} `json:"wallets"`
	}
	if err := opts.ReadOptions("multisig", &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if err := gconf.InitConfig(kv, opts, gconfPackage, &Configuration{}); err != nil {
		return errors.Wrap(err, "configuration")
	}

	bucket := NewWalletBucket()
	for i, w := range genesis.Wallets {
		owners := make([][]byte, len(w.Owners))
		for j, o := range w.Owners {
			owners[j] = o
		}
		wallet := Wallet{
			Creator:     w.Creator,
			Required:    w.Required,
			Owners:      owners,
			Initialized: len(owners) > 0,
			Configured:  w.Configured,
		}
		if err := bucket.Create(kv, &wallet); err != nil {
			return errors.Wrapf(err, "cannot save #%d wallet", i)
		}
	}
	return nil
}
