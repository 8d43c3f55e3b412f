package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

// Genesis is the part of a tendermint genesis file the wallet reads.
type Genesis struct {
	ChainID  string           `json:"chain_id"`
	AppState mswallet.Options `json:"app_state"`
}

// LoadGenesis reads a genesis file from disk.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	gen := new(Genesis)
	if err := json.Unmarshal(raw, gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decoding genesis file: %s", err)
	}
	return gen, nil
}

// chainIDKey holds the chain id written by InitChain.
const chainIDKey = "_i.chain_id"

// loadChainID returns "" before InitChain.
func loadChainID(kv mswallet.ReadOnlyKVStore) (string, error) {
	raw, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(raw), nil
}

// saveChainID accepts a valid chain id once. A second call fails with
// ErrState.
func saveChainID(kv mswallet.KVStore, chainID string) error {
	if !mswallet.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	key := []byte(chainIDKey)
	switch has, err := kv.Has(key); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case has:
		return errors.Wrap(errors.ErrState, "chain id already set")
	}
	if err := kv.Set(key, []byte(chainID)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
