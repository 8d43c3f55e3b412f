package gconf

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

// ReadStore is enough for Load.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of a KVStore that Save needs.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is a package configuration object. It is validated on
// every Save.
type Configuration interface {
	mswallet.Persistent
	mswallet.Validater
}

func dbKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates conf and stores it as the configuration of pkg.
func Save(db Store, pkg string, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := conf.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "%s configuration: %s", pkg, err)
	}
	if err := db.Set(dbKey(pkg), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Load reads the configuration of pkg into dst. A package that was never
// configured fails with ErrNotFound.
func Load(db ReadStore, pkg string, dst mswallet.Persistent) error {
	raw, err := db.Get(dbKey(pkg))
	switch {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "%s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig saves the genesis section conf.<pkg> into conf. A missing
// section leaves the package unconfigured.
func InitConfig(db Store, opts mswallet.Options, pkg string, conf Configuration) error {
	var sections mswallet.Options
	if err := opts.ReadOptions("conf", &sections); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis conf: %s", err)
	}
	if _, ok := sections[pkg]; !ok {
		return nil
	}
	if err := sections.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis conf.%s: %s", pkg, err)
	}
	return Save(db, pkg, conf)
}
