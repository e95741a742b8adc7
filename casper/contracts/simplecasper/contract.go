// Package simplecasper holds the on-chain artifact of the Casper FFG vote
// contract: its ABI, the method selectors derived from it, and the built-in
// default bytecodes deployed at genesis.
//
// The client never executes the finality-voting logic itself. It talks to the
// deployed contract through the call payloads packed here and observes the
// results through the unpack helpers. Every payload produced by this package
// must stay bit-compatible with the deployed contract, so the ABI below
// follows the contract's Vyper signatures exactly: epoch numbers are int128,
// deposit thresholds and economic factors are uint256, query results are
// int128 / bytes32.
package simplecasper

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractABI is the JSON ABI of the vote contract, reduced to the functions
// the client calls:
//   - init(int128,int128,int128,int128,address,address,uint256,uint256,uint256)
//   - initialize_epoch(int128)
//   - highest_justified_epoch(uint256) returns (int128)
//   - highest_finalized_epoch(uint256) returns (int128)
//   - checkpoint_hashes(int128) returns (bytes32)
//   - vote(bytes) — never called by the client, parsed only for its selector
const ContractABI = `[
	{"name":"init","type":"function","constant":false,"payable":false,"inputs":[{"name":"epoch_length","type":"int128"},{"name":"warm_up_period","type":"int128"},{"name":"withdrawal_delay","type":"int128"},{"name":"dynasty_logout_delay","type":"int128"},{"name":"msg_hasher","type":"address"},{"name":"purity_checker","type":"address"},{"name":"base_interest_factor","type":"uint256"},{"name":"base_penalty_factor","type":"uint256"},{"name":"min_deposit_size","type":"uint256"}],"outputs":[]},
	{"name":"initialize_epoch","type":"function","constant":false,"payable":false,"inputs":[{"name":"epoch","type":"int128"}],"outputs":[]},
	{"name":"highest_justified_epoch","type":"function","constant":true,"payable":false,"inputs":[{"name":"min_deposits","type":"uint256"}],"outputs":[{"name":"out","type":"int128"}]},
	{"name":"highest_finalized_epoch","type":"function","constant":true,"payable":false,"inputs":[{"name":"min_deposits","type":"uint256"}],"outputs":[{"name":"out","type":"int128"}]},
	{"name":"checkpoint_hashes","type":"function","constant":true,"payable":false,"inputs":[{"name":"epoch","type":"int128"}],"outputs":[{"name":"out","type":"bytes32"}]},
	{"name":"vote","type":"function","constant":false,"payable":false,"inputs":[{"name":"vote_msg","type":"bytes"}],"outputs":[]}
]`

// Method names of the vote contract, as they appear in the ABI.
const (
	InitMethod                  = "init"
	InitializeEpochMethod       = "initialize_epoch"
	HighestJustifiedEpochMethod = "highest_justified_epoch"
	HighestFinalizedEpochMethod = "highest_finalized_epoch"
	CheckpointHashesMethod      = "checkpoint_hashes"
	VoteMethod                  = "vote"
)

var (
	contractAbi abi.ABI

	// VoteMethodID is the 4-byte selector of vote(bytes): 0xe9dc0614.
	// The transaction pool and the block validator classify privileged vote
	// transactions by this prefix, so it is consensus-critical and must match
	// the deployed contract's vote function identifier.
	VoteMethodID []byte
)

// init parses the ABI and extracts the vote selector. A failure here means
// the packaged ABI itself is broken, which is unrecoverable.
func init() {
	parsed, err := abi.JSON(strings.NewReader(ContractABI))
	if err != nil {
		panic(err)
	}
	contractAbi = parsed

	method, exist := contractAbi.Methods[VoteMethod]
	if !exist {
		panic("unknown SimpleCasper method: " + VoteMethod)
	}
	VoteMethodID = make([]byte, len(method.ID))
	copy(VoteMethodID, method.ID)
}

// PackInit encodes the one-time contract initializer call.
func PackInit(
	epochLength uint64,
	warmUpPeriod uint64,
	withdrawalDelay uint64,
	dynastyLogoutDelay uint64,
	msgHasher common.Address,
	purityChecker common.Address,
	baseInterestFactor *big.Int,
	basePenaltyFactor *big.Int,
	minDepositSize *big.Int,
) ([]byte, error) {
	return contractAbi.Pack(InitMethod,
		new(big.Int).SetUint64(epochLength),
		new(big.Int).SetUint64(warmUpPeriod),
		new(big.Int).SetUint64(withdrawalDelay),
		new(big.Int).SetUint64(dynastyLogoutDelay),
		msgHasher,
		purityChecker,
		baseInterestFactor,
		basePenaltyFactor,
		minDepositSize,
	)
}

// PackInitializeEpoch encodes the epoch-boundary bookkeeping call.
func PackInitializeEpoch(epoch *big.Int) ([]byte, error) {
	return contractAbi.Pack(InitializeEpochMethod, epoch)
}

// PackHighestJustifiedEpoch encodes the justified-epoch query. minDeposits is
// the stake threshold below which the contract reports no justification.
func PackHighestJustifiedEpoch(minDeposits *big.Int) ([]byte, error) {
	return contractAbi.Pack(HighestJustifiedEpochMethod, minDeposits)
}

// PackHighestFinalizedEpoch encodes the finalized-epoch query.
func PackHighestFinalizedEpoch(minDeposits *big.Int) ([]byte, error) {
	return contractAbi.Pack(HighestFinalizedEpochMethod, minDeposits)
}

// PackCheckpointHashes encodes the checkpoint-hash query for an epoch.
func PackCheckpointHashes(epoch *big.Int) ([]byte, error) {
	return contractAbi.Pack(CheckpointHashesMethod, epoch)
}

// UnpackEpoch decodes the single int128 returned by the epoch queries.
func UnpackEpoch(method string, output []byte) (*big.Int, error) {
	out, err := contractAbi.Unpack(method, output)
	if err != nil {
		return nil, err
	}
	// Type is checked by the ABI decoder against the outputs declared above.
	return out[0].(*big.Int), nil
}

// UnpackCheckpointHash decodes the bytes32 returned by checkpoint_hashes.
func UnpackCheckpointHash(output []byte) (common.Hash, error) {
	out, err := contractAbi.Unpack(CheckpointHashesMethod, output)
	if err != nil {
		return common.Hash{}, err
	}
	hash := out[0].([32]byte)
	return common.BytesToHash(hash[:]), nil
}
