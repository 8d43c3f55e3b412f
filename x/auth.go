package x

import (
	"github.com/iov-one/mswallet"
)

// Authenticator tells the wallet handlers who signed a transaction.
type Authenticator interface {
	// GetConditions returns the signer conditions, main signer first.
	GetConditions(mswallet.Context) []mswallet.Condition
	// HasAddress reports whether addr belongs to any signer.
	HasAddress(mswallet.Context, mswallet.Address) bool
}

// MultiAuth asks each authenticator in turn. Signers are reported in the
// order of the authenticators.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth combines several authenticators into one.
func ChainAuth(auths ...Authenticator) MultiAuth {
	return MultiAuth(auths)
}

func (m MultiAuth) GetConditions(ctx mswallet.Context) []mswallet.Condition {
	var all []mswallet.Condition
	for _, a := range m {
		all = append(all, a.GetConditions(ctx)...)
	}
	return all
}

func (m MultiAuth) HasAddress(ctx mswallet.Context, addr mswallet.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner is the first signer, or nil for an unsigned transaction.
func MainSigner(ctx mswallet.Context, auth Authenticator) mswallet.Condition {
	if signers := auth.GetConditions(ctx); len(signers) > 0 {
		return signers[0]
	}
	return nil
}
