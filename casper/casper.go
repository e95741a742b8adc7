package casper

import (
	"bytes"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	"github.com/hybrid-casper/go-casper/casper/contracts/simplecasper"
	"github.com/hybrid-casper/go-casper/inter"
)

// SystemCall executes the code deployed at the given address with the given
// input against the current state, outside normal transaction validation: no
// signature check, no gas charged to a user balance, no receipt produced.
//
// The capability is owned by the host's block-processing pipeline and passed
// in per invocation, so tests substitute fakes and no global state is held
// across calls. A failure is returned raw; the engine wraps it into a
// *SystemCallError.
type SystemCall func(contract common.Address, data []byte) ([]byte, error)

// StateWriter is the narrow slice of the state store that genesis deployment
// needs: account creation with a forced balance, and code installation.
type StateWriter interface {
	// NewContract creates the account with the given balance and nonce.
	NewContract(addr common.Address, balance *big.Int, nonce uint64)
	// InitCode installs code at the given address.
	InitCode(addr common.Address, code []byte) error
}

// Casper drives the finality overlay of a proof-of-work chain: it deploys the
// vote contract machinery at genesis, issues the per-epoch bookkeeping call,
// refreshes the finality metadata fork-choice consults, and classifies the
// privileged vote transactions the contract accepts.
type Casper struct {
	params Params
}

// New creates a Casper engine around a resolved parameter set.
func New(params Params) *Casper {
	return &Casper{
		params: params,
	}
}

// Params returns the resolved parameter set the engine was built with.
func (c *Casper) Params() Params {
	return c.params
}

// IsVoteTransaction reports whether tx is a privileged consensus-vote call.
//
// The rule is consensus-critical: the transaction pool and the block
// validator must agree on it exactly, or nodes fork. The guards run in a
// fixed order and short-circuit on the first failure:
//  1. the transaction is unsigned (zero V, R, S — the privileged-transaction
//     marker, not a user signature),
//  2. it is a call (not a creation) to the vote contract address,
//  3. its payload is at least 4 bytes,
//  4. the payload starts with the vote selector 0xe9dc0614.
func (c *Casper) IsVoteTransaction(tx *types.Transaction) bool {
	v, r, s := tx.RawSignatureValues()
	if v.Sign() != 0 || r.Sign() != 0 || s.Sign() != 0 {
		return false
	}

	to := tx.To()
	if to == nil {
		return false
	}
	if *to != c.params.ContractAddress {
		return false
	}

	data := tx.Data()
	if len(data) < 4 {
		return false
	}
	if !bytes.Equal(data[:4], simplecasper.VoteMethodID) {
		return false
	}

	return true
}

// InitState seeds the chain state at block zero: it creates the vote contract
// account with its starting balance, installs the vote contract, the purity
// checker and the message hasher, and installs the RLP decoder only when the
// parameters ask for it.
//
// State-store errors are propagated unchanged. A partial failure leaves the
// state inconsistent; the genesis builder must treat the whole construction
// as all-or-nothing and discard the state on error.
func (c *Casper) InitState(state StateWriter) error {
	state.NewContract(c.params.ContractAddress, c.params.ContractBalance, 0)
	if err := state.InitCode(c.params.ContractAddress, c.params.ContractCode); err != nil {
		return err
	}
	if err := state.InitCode(c.params.PurityCheckerContractAddress, c.params.PurityCheckerContractCode); err != nil {
		return err
	}
	if err := state.InitCode(c.params.MsgHasherContractAddress, c.params.MsgHasherContractCode); err != nil {
		return err
	}
	if c.params.DeployRlpDecoder {
		if err := state.InitCode(c.params.RlpDecoderContractAddress, c.params.RlpDecoderContractCode); err != nil {
			return err
		}
	}
	return nil
}

// InitContract issues the one-time init call of the vote contract, passing
// the epoch timing and economic constants. The return value is discarded.
func (c *Casper) InitContract(caller SystemCall) error {
	data, err := simplecasper.PackInit(
		c.params.EpochLength,
		c.params.WarmUpPeriod,
		c.params.WithdrawalDelay,
		c.params.DynastyLogoutDelay,
		c.params.MsgHasherContractAddress,
		c.params.PurityCheckerContractAddress,
		c.params.BaseInterestFactor,
		c.params.BasePenaltyFactor,
		c.params.MinDepositSize,
	)
	if err != nil {
		return failedSystemCall(simplecasper.InitMethod, err)
	}
	if _, err := caller(c.params.ContractAddress, data); err != nil {
		return failedSystemCall(simplecasper.InitMethod, err)
	}
	return nil
}

// OnNewEpoch issues the epoch-boundary bookkeeping call when due. A block
// number divisible by the epoch length starts epoch block/epochLength; any
// other block number is a no-op success. The epoch length is positive by
// construction (see Params), so the arithmetic here is unguarded.
func (c *Casper) OnNewEpoch(block idx.Block, caller SystemCall) error {
	if uint64(block)%c.params.EpochLength != 0 {
		return nil
	}
	epoch := idx.Epoch(uint64(block) / c.params.EpochLength)
	log.Debug("Initializing new epoch", "epoch", epoch, "block", block)

	data, err := simplecasper.PackInitializeEpoch(new(big.Int).SetUint64(uint64(epoch)))
	if err != nil {
		return failedSystemCall(simplecasper.InitializeEpochMethod, err)
	}
	if _, err := caller(c.params.ContractAddress, data); err != nil {
		return failedSystemCall(simplecasper.InitializeEpochMethod, err)
	}
	return nil
}

// HighestJustifiedEpoch queries the contract for the highest epoch it
// considers justified, given the configured non-revert deposit threshold.
func (c *Casper) HighestJustifiedEpoch(caller SystemCall) (*big.Int, error) {
	data, err := simplecasper.PackHighestJustifiedEpoch(c.params.NonRevertMinDeposits)
	if err != nil {
		return nil, failedSystemCall(simplecasper.HighestJustifiedEpochMethod, err)
	}
	output, err := caller(c.params.ContractAddress, data)
	if err != nil {
		return nil, failedSystemCall(simplecasper.HighestJustifiedEpochMethod, err)
	}
	epoch, err := simplecasper.UnpackEpoch(simplecasper.HighestJustifiedEpochMethod, output)
	if err != nil {
		return nil, failedSystemCall(simplecasper.HighestJustifiedEpochMethod, err)
	}
	return epoch, nil
}

// HighestFinalizedEpoch queries the contract for the highest epoch it
// considers finalized, given the configured non-revert deposit threshold.
func (c *Casper) HighestFinalizedEpoch(caller SystemCall) (*big.Int, error) {
	data, err := simplecasper.PackHighestFinalizedEpoch(c.params.NonRevertMinDeposits)
	if err != nil {
		return nil, failedSystemCall(simplecasper.HighestFinalizedEpochMethod, err)
	}
	output, err := caller(c.params.ContractAddress, data)
	if err != nil {
		return nil, failedSystemCall(simplecasper.HighestFinalizedEpochMethod, err)
	}
	epoch, err := simplecasper.UnpackEpoch(simplecasper.HighestFinalizedEpochMethod, output)
	if err != nil {
		return nil, failedSystemCall(simplecasper.HighestFinalizedEpochMethod, err)
	}
	return epoch, nil
}

// CheckpointHashes queries the block hash the contract associates with the
// given epoch's checkpoint.
func (c *Casper) CheckpointHashes(epoch *big.Int, caller SystemCall) (common.Hash, error) {
	data, err := simplecasper.PackCheckpointHashes(epoch)
	if err != nil {
		return common.Hash{}, failedSystemCall(simplecasper.CheckpointHashesMethod, err)
	}
	output, err := caller(c.params.ContractAddress, data)
	if err != nil {
		return common.Hash{}, failedSystemCall(simplecasper.CheckpointHashesMethod, err)
	}
	hash, err := simplecasper.UnpackCheckpointHash(output)
	if err != nil {
		return common.Hash{}, failedSystemCall(simplecasper.CheckpointHashesMethod, err)
	}
	return hash, nil
}

// UpdateMetadata refreshes the finality metadata of the block being processed
// with three causally ordered queries: highest justified epoch, highest
// finalized epoch, then the checkpoint hash of the freshly fetched finalized
// epoch. The first failure aborts the update with that call's error; fields
// written before the failure keep their new values, later fields keep their
// previous ones. Callers needing atomicity snapshot the metadata around this.
func (c *Casper) UpdateMetadata(metadata *inter.FinalityMetadata, caller SystemCall) error {
	justified, err := c.HighestJustifiedEpoch(caller)
	if err != nil {
		return err
	}
	metadata.HighestJustifiedEpoch = justified

	finalized, err := c.HighestFinalizedEpoch(caller)
	if err != nil {
		return err
	}
	metadata.HighestFinalizedEpoch = finalized

	hash, err := c.CheckpointHashes(finalized, caller)
	if err != nil {
		return err
	}
	metadata.HighestFinalizedHash = hash

	return nil
}
