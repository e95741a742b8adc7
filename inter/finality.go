// Package inter defines the consensus data structures persisted alongside
// block headers. For the finality overlay that is a single record per block:
// the finality facts extracted from the vote contract plus the gas accounted
// to vote transactions.
package inter

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// FinalityMetadata is computed once per block and handed to fork-choice.
// It is mutated only by the engine's UpdateMetadata (the epoch fields and the
// hash) and by AddVoteGas during transaction execution.
//
// The record round-trips through RLP deterministically; the encoded form is
// stored adjacent to the block header.
type FinalityMetadata struct {
	// VoteGasUsed is the gas consumed by vote transactions in this block,
	// accounted separately from the block gas limit.
	VoteGasUsed *big.Int
	// HighestJustifiedEpoch as reported by the vote contract.
	HighestJustifiedEpoch *big.Int
	// HighestFinalizedEpoch as reported by the vote contract.
	HighestFinalizedEpoch *big.Int
	// HighestFinalizedHash is the checkpoint hash of the finalized epoch.
	HighestFinalizedHash common.Hash
}

// EmptyFinalityMetadata returns the all-zero record a block starts from
// before any contract query.
func EmptyFinalityMetadata() FinalityMetadata {
	return FinalityMetadata{
		VoteGasUsed:           new(big.Int),
		HighestJustifiedEpoch: new(big.Int),
		HighestFinalizedEpoch: new(big.Int),
	}
}

// AddVoteGas accounts gas consumed by a vote transaction.
func (m *FinalityMetadata) AddVoteGas(gas uint64) {
	m.VoteGasUsed = new(big.Int).Add(m.VoteGasUsed, new(big.Int).SetUint64(gas))
}

// Copy creates a deep copy, so callers can snapshot the record around a
// metadata update they may need to roll back.
func (m FinalityMetadata) Copy() FinalityMetadata {
	cp := m
	cp.VoteGasUsed = new(big.Int).Set(m.VoteGasUsed)
	cp.HighestJustifiedEpoch = new(big.Int).Set(m.HighestJustifiedEpoch)
	cp.HighestFinalizedEpoch = new(big.Int).Set(m.HighestFinalizedEpoch)
	return cp
}

// MarshalBinary encodes the record into its canonical RLP form.
func (m *FinalityMetadata) MarshalBinary() ([]byte, error) {
	return rlp.EncodeToBytes(m)
}

// UnmarshalBinary decodes the canonical RLP form.
func (m *FinalityMetadata) UnmarshalBinary(raw []byte) error {
	return rlp.DecodeBytes(raw, m)
}
