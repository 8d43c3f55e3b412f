package wallettest

import (
	"crypto/rand"

	"github.com/iov-one/mswallet"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a fresh ed25519 key pair.
func NewKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewCondition returns the signature condition of a fresh ed25519 key, as
// it would be granted to the signer of a transaction.
func NewCondition() mswallet.Condition {
	pub, _ := NewKey()
	return mswallet.NewCondition("sigs", "ed25519", pub)
}
