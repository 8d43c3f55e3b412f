package multisig

import (
	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
)

const (
	pathCreateMsg           = "multisig/create"
	pathInitOwnerMsg        = "multisig/init_owner"
	pathConfigureMsg        = "multisig/configure"
	pathVoteAddOwnerMsg     = "multisig/vote_add_owner"
	pathAddOwnerMsg         = "multisig/add_owner"
	pathVoteRemoveOwnerMsg  = "multisig/vote_remove_owner"
	pathRemoveOwnerMsg      = "multisig/remove_owner"
	pathAddTransactionMsg   = "multisig/add_tx"
	pathApproveMsg          = "multisig/approve"
	pathGetConfirmationsMsg = "multisig/confirmations"
	pathExecuteMsg          = "multisig/execute"
)

var (
	_ mswallet.Msg = (*CreateMsg)(nil)
	_ mswallet.Msg = (*InitOwnerMsg)(nil)
	_ mswallet.Msg = (*ConfigureMsg)(nil)
	_ mswallet.Msg = (*VoteAddOwnerMsg)(nil)
	_ mswallet.Msg = (*AddOwnerMsg)(nil)
	_ mswallet.Msg = (*VoteRemoveOwnerMsg)(nil)
	_ mswallet.Msg = (*RemoveOwnerMsg)(nil)
	_ mswallet.Msg = (*AddTransactionMsg)(nil)
	_ mswallet.Msg = (*ApproveMsg)(nil)
	_ mswallet.Msg = (*GetConfirmationsMsg)(nil)
	_ mswallet.Msg = (*ExecuteMsg)(nil)
)

// Path fulfills mswallet.Msg interface to allow routing
func (CreateMsg) Path() string { return pathCreateMsg }

// Validate enforces a positive quorum
func (m *CreateMsg) Validate() error {
	if m.Required < 1 {
		return errors.Wrap(errors.ErrMsg, "required must be at least 1")
	}
	return nil
}

// Path fulfills mswallet.Msg interface to allow routing
func (InitOwnerMsg) Path() string { return pathInitOwnerMsg }

// Validate requires both addresses
func (m *InitOwnerMsg) Validate() error {
	return validateWalletAndCandidate(m.Wallet, m.Candidate)
}

// Path fulfills mswallet.Msg interface to allow routing
func (ConfigureMsg) Path() string { return pathConfigureMsg }

// Validate requires the wallet address
func (m *ConfigureMsg) Validate() error {
	return validateWallet(m.Wallet)
}

// Path fulfills mswallet.Msg interface to allow routing
func (VoteAddOwnerMsg) Path() string { return pathVoteAddOwnerMsg }

// Validate requires both addresses
func (m *VoteAddOwnerMsg) Validate() error {
	return validateWalletAndCandidate(m.Wallet, m.Candidate)
}

// Path fulfills mswallet.Msg interface to allow routing
func (AddOwnerMsg) Path() string { return pathAddOwnerMsg }

// Validate requires both addresses
func (m *AddOwnerMsg) Validate() error {
	return validateWalletAndCandidate(m.Wallet, m.Candidate)
}

// Path fulfills mswallet.Msg interface to allow routing
func (VoteRemoveOwnerMsg) Path() string { return pathVoteRemoveOwnerMsg }

// Validate requires both addresses
func (m *VoteRemoveOwnerMsg) Validate() error {
	return validateWalletAndCandidate(m.Wallet, m.Candidate)
}

// Path fulfills mswallet.Msg interface to allow routing
func (RemoveOwnerMsg) Path() string { return pathRemoveOwnerMsg }

// Validate requires both addresses
func (m *RemoveOwnerMsg) Validate() error {
	return validateWalletAndCandidate(m.Wallet, m.Candidate)
}

// Path fulfills mswallet.Msg interface to allow routing
func (AddTransactionMsg) Path() string { return pathAddTransactionMsg }

// Validate checks the method name format. Whether the method is allowed is
// decided by the wallet.
func (m *AddTransactionMsg) Validate() error {
	if err := validateWallet(m.Wallet); err != nil {
		return err
	}
	if !isMethodName(m.MethodName) {
		return errors.Wrapf(ErrInvalidMethodName, "%q", m.MethodName)
	}
	return nil
}

// Path fulfills mswallet.Msg interface to allow routing
func (ApproveMsg) Path() string { return pathApproveMsg }

// Validate requires the wallet address and a transaction id
func (m *ApproveMsg) Validate() error {
	return validateTxRef(m.Wallet, m.TxID)
}

// Path fulfills mswallet.Msg interface to allow routing
func (GetConfirmationsMsg) Path() string { return pathGetConfirmationsMsg }

// Validate requires the wallet address and a transaction id
func (m *GetConfirmationsMsg) Validate() error {
	return validateTxRef(m.Wallet, m.TxID)
}

// Path fulfills mswallet.Msg interface to allow routing
func (ExecuteMsg) Path() string { return pathExecuteMsg }

// Validate requires the wallet, a transaction id and the target contract
func (m *ExecuteMsg) Validate() error {
	if err := validateTxRef(m.Wallet, m.TxID); err != nil {
		return err
	}
	if err := mswallet.Address(m.Target).Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	return nil
}

func validateWallet(wallet []byte) error {
	if err := mswallet.Address(wallet).Validate(); err != nil {
		return errors.Wrap(err, "wallet")
	}
	return nil
}

func validateWalletAndCandidate(wallet, candidate []byte) error {
	if err := validateWallet(wallet); err != nil {
		return err
	}
	if err := mswallet.Address(candidate).Validate(); err != nil {
		return errors.Wrap(err, "candidate")
	}
	return nil
}

func validateTxRef(wallet []byte, txID int64) error {
	if err := validateWallet(wallet); err != nil {
		return err
	}
	if txID < 0 {
		return errors.Wrap(errors.ErrMsg, "negative transaction id")
	}
	return nil
}
