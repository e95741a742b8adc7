package casper

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Config is the optional, partially-specified Casper section of a chain
// configuration file. Every field is a pointer: nil means "use the built-in
// default" (the Default* table in params.go). ParamsFrom resolves a Config
// into an immutable Params.
//
// The hex-friendly types (hexutil.Bytes, hexutil.Big, common.Address) make the
// record directly unmarshalable from a JSON chain spec.
type Config struct {
	// Main vote contract.
	ContractCode    *hexutil.Bytes  `json:"contractCode,omitempty"`
	ContractAddress *common.Address `json:"contractAddress,omitempty"`
	ContractBalance *hexutil.Big    `json:"contractBalance,omitempty"`

	// Purity checker.
	PurityCheckerContractCode    *hexutil.Bytes  `json:"purityCheckerContractCode,omitempty"`
	PurityCheckerContractAddress *common.Address `json:"purityCheckerContractAddress,omitempty"`

	// Message hasher.
	MsgHasherContractCode    *hexutil.Bytes  `json:"msgHasherContractCode,omitempty"`
	MsgHasherContractAddress *common.Address `json:"msgHasherContractAddress,omitempty"`

	// RLP decoder. DeployRlpDecoder controls whether its code is installed at
	// genesis; chains that already carry a decoder set it to false.
	RlpDecoderContractCode    *hexutil.Bytes  `json:"rlpDecoderContractCode,omitempty"`
	RlpDecoderContractAddress *common.Address `json:"rlpDecoderContractAddress,omitempty"`
	DeployRlpDecoder          *bool           `json:"deployRlpDecoder,omitempty"`

	// Epoch timing and economics passed to the contract initializer.
	EpochLength        *uint64      `json:"epochLength,omitempty"`
	WithdrawalDelay    *uint64      `json:"withdrawalDelay,omitempty"`
	DynastyLogoutDelay *uint64      `json:"dynastyLogoutDelay,omitempty"`
	BaseInterestFactor *hexutil.Big `json:"baseInterestFactor,omitempty"`
	BasePenaltyFactor  *hexutil.Big `json:"basePenaltyFactor,omitempty"`
	MinDepositSize     *hexutil.Big `json:"minDepositSize,omitempty"`
	WarmUpPeriod       *uint64      `json:"warmUpPeriod,omitempty"`

	// Threshold used as the argument of the justified/finalized queries.
	NonRevertMinDeposits *hexutil.Big `json:"nonRevertMinDeposits,omitempty"`
}
