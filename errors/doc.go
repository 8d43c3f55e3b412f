/*
Package errors provides registered root errors with stable ABCI codes.

Prefer the root errors declared here. x/multisig and x/contract register
their own with Register(code, description). Return them wrapped with
context:

	return errors.Wrapf(errors.ErrNotFound, "transaction %d", id)

and test the kind with Is:

	if errors.ErrNotFound.Is(err) { ... }

The innermost Wrap records a stack trace, printed with %+v.
*/
package errors
