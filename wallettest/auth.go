package wallettest

import (
	"context"
	"fmt"

	"github.com/iov-one/mswallet"
)

// Auth is an authenticator that always reports the same signers.
type Auth struct {
	Signers []mswallet.Condition
}

func (a *Auth) GetConditions(mswallet.Context) []mswallet.Condition {
	return a.Signers
}

func (a *Auth) HasAddress(_ mswallet.Context, addr mswallet.Address) bool {
	return hasAddress(a.Signers, addr)
}

// CtxAuth reads signers from the context, under Key. Use SetConditions to
// put them there.
type CtxAuth struct {
	Key string
}

func (a *CtxAuth) SetConditions(ctx mswallet.Context, signers ...mswallet.Condition) mswallet.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetConditions(ctx mswallet.Context) []mswallet.Condition {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []mswallet.Condition:
		return v
	default:
		panic(fmt.Sprintf("context key %q holds %T", a.Key, v))
	}
}

func (a *CtxAuth) HasAddress(ctx mswallet.Context, addr mswallet.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(signers []mswallet.Condition, addr mswallet.Address) bool {
	for _, s := range signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
