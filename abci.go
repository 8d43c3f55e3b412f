package mswallet

import (
	"fmt"

	"github.com/iov-one/mswallet/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is what a successful Deliver returns. Failures are reported
// as errors, never through this type.
type DeliverResult struct {
	// Data is the machine readable outcome, such as a new wallet
	// address or an encoded transaction id.
	Data []byte
	Log  string
	// Tags index the transaction by action and wallet.
	Tags []common.KVPair
}

// ToABCI builds the tendermint response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data: d.Data,
		Log:  d.Log,
		Tags: d.Tags,
	}
}

// CheckResult is what a successful Check returns.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the cost the handler charges for the message.
	GasAllocated int64
}

// NewCheck returns a result charging gasAllocated.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

// ToABCI builds the tendermint response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// CheckOrError returns the response for result, or for err when it is set.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverTxError returns the failed DeliverTx response for err. Code and
// log come from errors.ABCIInfo.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

// CheckTxError returns the failed CheckTx response for err. The log is
// prefixed to tell it apart from a delivery failure.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = fmt.Sprintf("cannot check tx: %s", log)
	}
	return abci.ResponseCheckTx{Code: code, Log: log}
}
