package inter

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func maxU256() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
}

// TestFinalityMetadataRoundTrip: decode(encode(m)) == m across the value
// range, including the all-zero record and maximal 256-bit fields.
func TestFinalityMetadataRoundTrip(t *testing.T) {
	cases := map[string]FinalityMetadata{
		"empty": EmptyFinalityMetadata(),
		"typical": {
			VoteGasUsed:           big.NewInt(420000),
			HighestJustifiedEpoch: big.NewInt(3),
			HighestFinalizedEpoch: big.NewInt(2),
			HighestFinalizedHash:  common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000001"),
		},
		"max": {
			VoteGasUsed:           maxU256(),
			HighestJustifiedEpoch: maxU256(),
			HighestFinalizedEpoch: maxU256(),
			HighestFinalizedHash:  common.BytesToHash(maxU256().Bytes()),
		},
	}

	for name, m := range cases {
		m := m
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			raw, err := m.MarshalBinary()
			require.NoError(err)

			var got FinalityMetadata
			require.NoError(got.UnmarshalBinary(raw))
			require.Equal(int(0), got.VoteGasUsed.Cmp(m.VoteGasUsed))
			require.Equal(int(0), got.HighestJustifiedEpoch.Cmp(m.HighestJustifiedEpoch))
			require.Equal(int(0), got.HighestFinalizedEpoch.Cmp(m.HighestFinalizedEpoch))
			require.Equal(m.HighestFinalizedHash, got.HighestFinalizedHash)

			// Deterministic: same logical value, same bytes.
			raw2, err := got.MarshalBinary()
			require.NoError(err)
			require.Equal(raw, raw2)
		})
	}
}

func TestAddVoteGas(t *testing.T) {
	require := require.New(t)

	m := EmptyFinalityMetadata()
	require.Equal(int64(0), m.VoteGasUsed.Int64())

	m.AddVoteGas(21000)
	m.AddVoteGas(42000)
	require.Equal(int64(63000), m.VoteGasUsed.Int64())
}

func TestFinalityMetadataCopy(t *testing.T) {
	require := require.New(t)

	m := EmptyFinalityMetadata()
	m.AddVoteGas(100)
	m.HighestJustifiedEpoch.SetInt64(3)

	snapshot := m.Copy()
	m.AddVoteGas(1)
	m.HighestJustifiedEpoch.SetInt64(4)
	m.HighestFinalizedHash = common.HexToHash("0x00000000000000000000000000000000000000000000000000000000000000aa")

	require.Equal(int64(100), snapshot.VoteGasUsed.Int64())
	require.Equal(int64(3), snapshot.HighestJustifiedEpoch.Int64())
	require.Equal(common.Hash{}, snapshot.HighestFinalizedHash)
}
