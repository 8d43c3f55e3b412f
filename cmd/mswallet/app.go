package main

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/app"
	"github.com/iov-one/mswallet/x"
	"github.com/iov-one/mswallet/x/contract"
	"github.com/iov-one/mswallet/x/multisig"
	"github.com/iov-one/mswallet/x/voting"
	"github.com/prometheus/client_golang/prometheus"
)

// Stack holds everything needed to run wallets as routed messages.
type Stack struct {
	Handler     mswallet.Handler
	Initializer mswallet.Initializer
	Contracts   *contract.Registry
	Wallets     *multisig.Controller
}

// NewStack wires the wallet extension with the contract registry. Metrics
// are registered with reg when it is not nil. The main signer is taken from
// the first authenticator that reports any condition.
func NewStack(reg prometheus.Registerer, auth ...x.Authenticator) *Stack {
	contracts := contract.NewRegistry()
	voting.Register(contracts)
	wallets := multisig.NewController(contracts)

	router := app.NewRouter()
	multisig.RegisterController(router, x.ChainAuth(auth...), wallets)

	decorators := app.ChainDecorators(app.NewLogging(), app.NewRecovery())
	if reg != nil {
		decorators = decorators.Chain(app.NewMetrics(reg))
	}

	return &Stack{
		Handler: decorators.WithHandler(router),
		Initializer: mswallet.ChainInitializers(
			&contract.Initializer{Registry: contracts},
			&multisig.Initializer{},
		),
		Contracts: contracts,
		Wallets:   wallets,
	}
}
