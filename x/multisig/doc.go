/*
Package multisig implements a multisig wallet governed by its owners.

A wallet is deployed with a quorum (required). The creator declares the first
owner with initOwner and seals the setup with configure. From then on owners
vote to add or remove other owners (vote first, then enact once the votes
reach the quorum) and propose transactions. A transaction names a method from
an allow list. Once approved by enough owners any owner may execute it, which
calls the method on a target contract through an Invoker.

The Controller implements the state machine on top of a KVStore. Handlers
expose every operation as a routed message, authenticated with an
x.Authenticator. Instance is the library facade for a single wallet: it
serializes mutations and runs every call in a cache wrap, so a failed call
leaves no trace.

An Initializer can define wallets and the method allow list in the genesis
file.
*/
package multisig
