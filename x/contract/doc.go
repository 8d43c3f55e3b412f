/*
Package contract keeps track of deployed contracts and dispatches method
calls to them.

A contract kind is a Go implementation of the Contract interface, registered
under a name. Deploying a kind assigns a fresh address and records which kind
lives there. Registry implements the multisig Invoker, so wallets can execute
approved transactions against any deployed contract.
*/
package contract
