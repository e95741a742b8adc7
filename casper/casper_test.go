package casper

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/hybrid-casper/go-casper/casper/contracts/simplecasper"
	"github.com/hybrid-casper/go-casper/inter"
)

func unsignedTx(to *common.Address, data []byte) *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    0,
		To:       to,
		Value:    new(big.Int),
		Gas:      21000,
		GasPrice: new(big.Int),
		Data:     data,
	})
}

// TestIsVoteTransaction exercises the consensus-critical guard chain of the
// vote classifier in its short-circuit order.
func TestIsVoteTransaction(t *testing.T) {
	require := require.New(t)

	c := New(DefaultParams())
	contract := c.Params().ContractAddress
	other := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	selector := []byte{0xe9, 0xdc, 0x06, 0x14}

	// Signed transactions never classify as votes, even with the right target
	// and selector.
	key, err := crypto.GenerateKey()
	require.NoError(err)
	signed, err := types.SignNewTx(key, types.HomesteadSigner{}, &types.LegacyTx{
		Nonce:    0,
		To:       &contract,
		Value:    new(big.Int),
		Gas:      21000,
		GasPrice: new(big.Int),
		Data:     selector,
	})
	require.NoError(err)
	require.False(c.IsVoteTransaction(signed))

	// Unsigned contract creation.
	require.False(c.IsVoteTransaction(unsignedTx(nil, selector)))

	// Unsigned call to a different address.
	require.False(c.IsVoteTransaction(unsignedTx(&other, selector)))

	// Unsigned call to the vote contract with the exact selector.
	require.True(c.IsVoteTransaction(unsignedTx(&contract, selector)))

	// Trailing payload bytes are fine: the check is a prefix match.
	require.True(c.IsVoteTransaction(unsignedTx(&contract, append(append([]byte{}, selector...), 0x01))))

	// Payload shorter than a selector.
	require.False(c.IsVoteTransaction(unsignedTx(&contract, selector[:3])))
	require.False(c.IsVoteTransaction(unsignedTx(&contract, nil)))

	// Wrong selector.
	require.False(c.IsVoteTransaction(unsignedTx(&contract, []byte{0xe9, 0xdc, 0x06, 0x15})))
}

type deployedCode struct {
	code []byte
}

// fakeStateWriter records genesis writes and optionally fails on a given
// address.
type fakeStateWriter struct {
	balances map[common.Address]*big.Int
	nonces   map[common.Address]uint64
	code     map[common.Address]deployedCode
	failAt   common.Address
	failWith error
}

func newFakeStateWriter() *fakeStateWriter {
	return &fakeStateWriter{
		balances: make(map[common.Address]*big.Int),
		nonces:   make(map[common.Address]uint64),
		code:     make(map[common.Address]deployedCode),
	}
}

func (w *fakeStateWriter) NewContract(addr common.Address, balance *big.Int, nonce uint64) {
	w.balances[addr] = balance
	w.nonces[addr] = nonce
}

func (w *fakeStateWriter) InitCode(addr common.Address, code []byte) error {
	if w.failWith != nil && addr == w.failAt {
		return w.failWith
	}
	w.code[addr] = deployedCode{code: code}
	return nil
}

func TestInitState(t *testing.T) {
	require := require.New(t)

	params := DefaultParams()
	c := New(params)

	w := newFakeStateWriter()
	require.NoError(c.InitState(w))

	require.Equal(params.ContractBalance, w.balances[params.ContractAddress])
	require.Equal(uint64(0), w.nonces[params.ContractAddress])
	require.Equal(params.ContractCode, w.code[params.ContractAddress].code)
	require.Equal(params.PurityCheckerContractCode, w.code[params.PurityCheckerContractAddress].code)
	require.Equal(params.MsgHasherContractCode, w.code[params.MsgHasherContractAddress].code)
	require.Equal(params.RlpDecoderContractCode, w.code[params.RlpDecoderContractAddress].code)
}

func TestInitStateSkipsRlpDecoder(t *testing.T) {
	require := require.New(t)

	noDeploy := false
	params := ParamsFrom(&Config{DeployRlpDecoder: &noDeploy})
	c := New(params)

	w := newFakeStateWriter()
	require.NoError(c.InitState(w))

	_, deployed := w.code[params.RlpDecoderContractAddress]
	require.False(deployed)
}

func TestInitStatePropagatesWriteFailure(t *testing.T) {
	require := require.New(t)

	params := DefaultParams()
	c := New(params)

	errDisk := errors.New("disk failure")
	w := newFakeStateWriter()
	w.failAt = params.PurityCheckerContractAddress
	w.failWith = errDisk

	// The error comes back verbatim; the caller discards the half-built state.
	require.Equal(errDisk, c.InitState(w))
}

func TestInitContract(t *testing.T) {
	require := require.New(t)

	params := DefaultParams()
	c := New(params)

	want, err := simplecasper.PackInit(
		params.EpochLength,
		params.WarmUpPeriod,
		params.WithdrawalDelay,
		params.DynastyLogoutDelay,
		params.MsgHasherContractAddress,
		params.PurityCheckerContractAddress,
		params.BaseInterestFactor,
		params.BasePenaltyFactor,
		params.MinDepositSize,
	)
	require.NoError(err)

	var got []byte
	err = c.InitContract(func(contract common.Address, data []byte) ([]byte, error) {
		require.Equal(params.ContractAddress, contract)
		got = data
		return nil, nil
	})
	require.NoError(err)
	require.Equal(want, got)
}

func TestOnNewEpoch(t *testing.T) {
	require := require.New(t)

	c := New(DefaultParams()) // epoch length 5

	var calls [][]byte
	caller := func(contract common.Address, data []byte) ([]byte, error) {
		calls = append(calls, data)
		return nil, nil
	}

	for block := idx.Block(0); block <= 10; block++ {
		require.NoError(c.OnNewEpoch(block, caller))
	}

	// Blocks 0, 5 and 10 are epoch boundaries; 1-4 and 6-9 are not.
	require.Len(calls, 3)
	for i, epoch := range []int64{0, 1, 2} {
		want, err := simplecasper.PackInitializeEpoch(big.NewInt(epoch))
		require.NoError(err)
		require.Equal(want, calls[i])
	}
}

func TestOnNewEpochPropagatesCallFailure(t *testing.T) {
	require := require.New(t)

	c := New(DefaultParams())
	errVM := errors.New("out of gas")

	err := c.OnNewEpoch(5, func(common.Address, []byte) ([]byte, error) {
		return nil, errVM
	})
	var syscallErr *SystemCallError
	require.True(errors.As(err, &syscallErr))
	require.Equal(simplecasper.InitializeEpochMethod, syscallErr.Method)
	require.True(errors.Is(err, errVM))
}

// metadataCaller answers the three finality queries with fixed values and
// optionally fails the checkpoint query.
func metadataCaller(t *testing.T, params Params, justified, finalized int64, hash common.Hash, failCheckpoint error) SystemCall {
	t.Helper()

	justifiedCall, err := simplecasper.PackHighestJustifiedEpoch(params.NonRevertMinDeposits)
	require.NoError(t, err)
	finalizedCall, err := simplecasper.PackHighestFinalizedEpoch(params.NonRevertMinDeposits)
	require.NoError(t, err)
	checkpointCall, err := simplecasper.PackCheckpointHashes(big.NewInt(finalized))
	require.NoError(t, err)

	return func(contract common.Address, data []byte) ([]byte, error) {
		require.Equal(t, params.ContractAddress, contract)
		switch {
		case bytes.Equal(data, justifiedCall):
			return common.LeftPadBytes(big.NewInt(justified).Bytes(), 32), nil
		case bytes.Equal(data, finalizedCall):
			return common.LeftPadBytes(big.NewInt(finalized).Bytes(), 32), nil
		case bytes.Equal(data, checkpointCall):
			if failCheckpoint != nil {
				return nil, failCheckpoint
			}
			return hash.Bytes(), nil
		}
		return nil, fmt.Errorf("unexpected call: %x", data)
	}
}

func TestUpdateMetadata(t *testing.T) {
	require := require.New(t)

	params := DefaultParams()
	c := New(params)
	wantHash := common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000001")

	m := inter.EmptyFinalityMetadata()
	m.AddVoteGas(12000)

	err := c.UpdateMetadata(&m, metadataCaller(t, params, 3, 2, wantHash, nil))
	require.NoError(err)

	require.Equal(int64(3), m.HighestJustifiedEpoch.Int64())
	require.Equal(int64(2), m.HighestFinalizedEpoch.Int64())
	require.Equal(wantHash, m.HighestFinalizedHash)
	// Vote gas is owned by transaction execution, not the updater.
	require.Equal(int64(12000), m.VoteGasUsed.Int64())
}

func TestUpdateMetadataPartialFailure(t *testing.T) {
	require := require.New(t)

	params := DefaultParams()
	c := New(params)

	priorHash := common.HexToHash("0x00000000000000000000000000000000000000000000000000000000000000aa")
	m := inter.EmptyFinalityMetadata()
	m.HighestFinalizedHash = priorHash

	errVM := errors.New("reverted")
	err := c.UpdateMetadata(&m, metadataCaller(t, params, 3, 2, common.Hash{}, errVM))
	require.True(errors.Is(err, errVM))

	// Fields before the failing call reflect the new queries; the hash keeps
	// its previous value.
	require.Equal(int64(3), m.HighestJustifiedEpoch.Int64())
	require.Equal(int64(2), m.HighestFinalizedEpoch.Int64())
	require.Equal(priorHash, m.HighestFinalizedHash)
}

func TestQueryDecodeFailureIsSystemCallError(t *testing.T) {
	require := require.New(t)

	c := New(DefaultParams())

	// The call succeeds but returns garbage; decoding must surface the same
	// error kind as a failed call.
	_, err := c.HighestJustifiedEpoch(func(common.Address, []byte) ([]byte, error) {
		return []byte{0x01, 0x02}, nil
	})
	var syscallErr *SystemCallError
	require.True(errors.As(err, &syscallErr))
	require.Equal(simplecasper.HighestJustifiedEpochMethod, syscallErr.Method)
}
