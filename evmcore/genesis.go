// Package evmcore bridges the finality overlay to the EVM state layer. This
// file applies genesis state: account pre-funding plus deployment of the
// Casper contract set at block zero.
package evmcore

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/log"

	"github.com/hybrid-casper/go-casper/casper"
)

// StateDBWriter adapts *state.StateDB to the narrow casper.StateWriter
// interface genesis deployment is written against.
type StateDBWriter struct {
	*state.StateDB
}

// NewContract creates the account with a forced balance and nonce.
func (w StateDBWriter) NewContract(addr common.Address, balance *big.Int, nonce uint64) {
	w.CreateAccount(addr)
	w.SetBalance(addr, balance)
	w.SetNonce(addr, nonce)
}

// InitCode installs code at the given address. StateDB code writes cannot
// fail; the error return satisfies the interface the state store exposes.
func (w StateDBWriter) InitCode(addr common.Address, code []byte) error {
	w.SetCode(addr, code)
	return nil
}

// ApplyGenesis builds the chain state of block zero: it pre-funds the given
// accounts, deploys the Casper contract set, and commits, returning the state
// root.
//
// Genesis construction is all-or-nothing: on error the returned root is the
// zero hash and the caller must discard the state instead of persisting a
// genesis block over it.
func ApplyGenesis(statedb *state.StateDB, c *casper.Casper, balances map[common.Address]*big.Int) (common.Hash, error) {
	for acc, balance := range balances {
		statedb.SetBalance(acc, balance)
	}

	if err := c.InitState(StateDBWriter{statedb}); err != nil {
		return common.Hash{}, err
	}

	root, err := flush(statedb, true)
	if err != nil {
		return common.Hash{}, err
	}
	return root, nil
}

// flush commits pending state changes to the trie and the trie to the
// underlying database, returning the resulting state root. Non-clean commits
// cap the trie cache afterwards.
func flush(statedb *state.StateDB, clean bool) (root common.Hash, err error) {
	root, err = statedb.Commit(clean)
	if err != nil {
		return
	}
	err = statedb.Database().TrieDB().Commit(root, false, nil)
	if err != nil {
		return
	}
	if !clean {
		err = statedb.Database().TrieDB().Cap(0)
	}
	return
}

// MustApplyGenesis wraps ApplyGenesis and treats a failure as fatal.
func MustApplyGenesis(statedb *state.StateDB, c *casper.Casper, balances map[common.Address]*big.Int) common.Hash {
	root, err := ApplyGenesis(statedb, c, balances)
	if err != nil {
		log.Crit("ApplyGenesis", "err", err)
	}
	return root
}
