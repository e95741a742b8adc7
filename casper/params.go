// Package casper implements the hybrid Casper finality overlay: the resolved
// consensus parameters, the genesis deployment of the vote contract and its
// helpers, the privileged system calls that drive per-epoch bookkeeping, and
// the classification of privileged vote transactions.
//
// The chain itself keeps producing blocks under proof-of-work; this package
// only layers epoch-based finality on top by talking to the deployed vote
// contract and extracting finality facts for fork-choice.
package casper

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethparams "github.com/ethereum/go-ethereum/params"

	"github.com/hybrid-casper/go-casper/casper/contracts/simplecasper"
)

// The default parameter table. Every Params field resolves to the value below
// when the chain configuration leaves it unset. These are consensus constants:
// two nodes resolving the same configuration must arrive at identical values.
const (
	// DefaultEpochLength is the number of blocks per finality epoch.
	DefaultEpochLength uint64 = 5

	// DefaultWithdrawalDelay is the delay, in epochs, before a validator can
	// withdraw its deposit after logout.
	DefaultWithdrawalDelay uint64 = 150

	// DefaultDynastyLogoutDelay is the delay, in dynasties, before a logout
	// takes effect.
	DefaultDynastyLogoutDelay uint64 = 70

	// DefaultWarmUpPeriod is the number of blocks before voting begins.
	DefaultWarmUpPeriod uint64 = 5
)

var (
	// DefaultContractAddress is where the vote contract is deployed.
	DefaultContractAddress = common.HexToAddress("0x0000000000000000000000000000000000000040")

	// DefaultPurityCheckerAddress is where the purity checker is deployed.
	DefaultPurityCheckerAddress = common.HexToAddress("0x0000000000000000000000000000000000000041")

	// DefaultMsgHasherAddress is where the message hasher is deployed.
	DefaultMsgHasherAddress = common.HexToAddress("0x0000000000000000000000000000000000000042")

	// DefaultRlpDecoderAddress is where the RLP decoder is deployed.
	DefaultRlpDecoderAddress = common.HexToAddress("0x0000000000000000000000000000000000000043")

	// DefaultContractBalance is the balance force-set on the vote contract at
	// genesis, out of which validator interest is paid.
	DefaultContractBalance = ether(1250000)

	// DefaultBaseInterestFactor is passed to the contract initializer.
	DefaultBaseInterestFactor = big.NewInt(70000000)

	// DefaultBasePenaltyFactor is passed to the contract initializer.
	DefaultBasePenaltyFactor = big.NewInt(2000)

	// DefaultMinDepositSize is the minimum validator deposit.
	DefaultMinDepositSize = ether(5)

	// DefaultNonRevertMinDeposits is the stake threshold used as the argument
	// of the justified/finalized queries.
	DefaultNonRevertMinDeposits = ether(1)
)

// Params is the fully resolved, immutable Casper parameter set. It is
// constructed once per process by ParamsFrom and read-only afterwards.
type Params struct {
	// Main vote contract code and deployment address.
	ContractCode    []byte
	ContractAddress common.Address
	// ContractBalance is force-set on the contract account at genesis.
	ContractBalance *big.Int

	PurityCheckerContractCode    []byte
	PurityCheckerContractAddress common.Address

	MsgHasherContractCode    []byte
	MsgHasherContractAddress common.Address

	RlpDecoderContractCode    []byte
	RlpDecoderContractAddress common.Address
	// DeployRlpDecoder controls whether the decoder code is installed at genesis.
	DeployRlpDecoder bool

	// Epoch length in blocks. Positive by construction; configuration
	// validation rejects zero before a Params is ever built.
	EpochLength        uint64
	WithdrawalDelay    uint64
	DynastyLogoutDelay uint64
	BaseInterestFactor *big.Int
	BasePenaltyFactor  *big.Int
	MinDepositSize     *big.Int
	WarmUpPeriod       uint64

	// NonRevertMinDeposits is the min-deposits argument of the epoch queries:
	// below this stake the contract reports no justification.
	NonRevertMinDeposits *big.Int
}

// ParamsFrom resolves an optional configuration record into a Params,
// substituting the documented default for every unset field. A nil cfg yields
// DefaultParams(). Pure and deterministic: equal configurations resolve to
// equal parameter sets.
//
// The RLP-decoder address is resolved first because the default vote contract
// bytecode embeds it (the <rlp_decoder> placeholder).
func ParamsFrom(cfg *Config) Params {
	if cfg == nil {
		cfg = &Config{}
	}

	rlpDecoderAddress := DefaultRlpDecoderAddress
	if cfg.RlpDecoderContractAddress != nil {
		rlpDecoderAddress = *cfg.RlpDecoderContractAddress
	}

	p := Params{
		ContractCode:    defaultCasperCode(rlpDecoderAddress),
		ContractAddress: DefaultContractAddress,
		ContractBalance: new(big.Int).Set(DefaultContractBalance),

		PurityCheckerContractCode:    mustDecodeCode("DefaultPurityCheckerContract", simplecasper.DefaultPurityCheckerContract),
		PurityCheckerContractAddress: DefaultPurityCheckerAddress,

		MsgHasherContractCode:    mustDecodeCode("DefaultMsgHasherContract", simplecasper.DefaultMsgHasherContract),
		MsgHasherContractAddress: DefaultMsgHasherAddress,

		RlpDecoderContractCode:    mustDecodeCode("DefaultRlpDecoderContract", simplecasper.DefaultRlpDecoderContract),
		RlpDecoderContractAddress: rlpDecoderAddress,
		DeployRlpDecoder:          true,

		EpochLength:        DefaultEpochLength,
		WithdrawalDelay:    DefaultWithdrawalDelay,
		DynastyLogoutDelay: DefaultDynastyLogoutDelay,
		BaseInterestFactor: new(big.Int).Set(DefaultBaseInterestFactor),
		BasePenaltyFactor:  new(big.Int).Set(DefaultBasePenaltyFactor),
		MinDepositSize:     new(big.Int).Set(DefaultMinDepositSize),
		WarmUpPeriod:       DefaultWarmUpPeriod,

		NonRevertMinDeposits: new(big.Int).Set(DefaultNonRevertMinDeposits),
	}

	if cfg.ContractCode != nil {
		p.ContractCode = copyBytes(*cfg.ContractCode)
	}
	if cfg.ContractAddress != nil {
		p.ContractAddress = *cfg.ContractAddress
	}
	if cfg.ContractBalance != nil {
		p.ContractBalance = new(big.Int).Set(cfg.ContractBalance.ToInt())
	}
	if cfg.PurityCheckerContractCode != nil {
		p.PurityCheckerContractCode = copyBytes(*cfg.PurityCheckerContractCode)
	}
	if cfg.PurityCheckerContractAddress != nil {
		p.PurityCheckerContractAddress = *cfg.PurityCheckerContractAddress
	}
	if cfg.MsgHasherContractCode != nil {
		p.MsgHasherContractCode = copyBytes(*cfg.MsgHasherContractCode)
	}
	if cfg.MsgHasherContractAddress != nil {
		p.MsgHasherContractAddress = *cfg.MsgHasherContractAddress
	}
	if cfg.RlpDecoderContractCode != nil {
		p.RlpDecoderContractCode = copyBytes(*cfg.RlpDecoderContractCode)
	}
	if cfg.DeployRlpDecoder != nil {
		p.DeployRlpDecoder = *cfg.DeployRlpDecoder
	}
	if cfg.EpochLength != nil {
		p.EpochLength = *cfg.EpochLength
	}
	if cfg.WithdrawalDelay != nil {
		p.WithdrawalDelay = *cfg.WithdrawalDelay
	}
	if cfg.DynastyLogoutDelay != nil {
		p.DynastyLogoutDelay = *cfg.DynastyLogoutDelay
	}
	if cfg.BaseInterestFactor != nil {
		p.BaseInterestFactor = new(big.Int).Set(cfg.BaseInterestFactor.ToInt())
	}
	if cfg.BasePenaltyFactor != nil {
		p.BasePenaltyFactor = new(big.Int).Set(cfg.BasePenaltyFactor.ToInt())
	}
	if cfg.MinDepositSize != nil {
		p.MinDepositSize = new(big.Int).Set(cfg.MinDepositSize.ToInt())
	}
	if cfg.WarmUpPeriod != nil {
		p.WarmUpPeriod = *cfg.WarmUpPeriod
	}
	if cfg.NonRevertMinDeposits != nil {
		p.NonRevertMinDeposits = new(big.Int).Set(cfg.NonRevertMinDeposits.ToInt())
	}

	return p
}

// DefaultParams resolves an entirely empty configuration.
func DefaultParams() Params {
	return ParamsFrom(nil)
}

// Copy creates a deep copy of Params, so callers can hold a mutable snapshot
// without aliasing the byte slices or big.Int values.
func (p Params) Copy() Params {
	cp := p
	cp.ContractCode = copyBytes(p.ContractCode)
	cp.ContractBalance = new(big.Int).Set(p.ContractBalance)
	cp.PurityCheckerContractCode = copyBytes(p.PurityCheckerContractCode)
	cp.MsgHasherContractCode = copyBytes(p.MsgHasherContractCode)
	cp.RlpDecoderContractCode = copyBytes(p.RlpDecoderContractCode)
	cp.BaseInterestFactor = new(big.Int).Set(p.BaseInterestFactor)
	cp.BasePenaltyFactor = new(big.Int).Set(p.BasePenaltyFactor)
	cp.MinDepositSize = new(big.Int).Set(p.MinDepositSize)
	cp.NonRevertMinDeposits = new(big.Int).Set(p.NonRevertMinDeposits)
	return cp
}

// String returns a JSON representation for debugging and config dumps.
func (p Params) String() string {
	b, _ := json.Marshal(&p)
	return string(b)
}

// defaultCasperCode substitutes the RLP-decoder address into the built-in
// vote contract bytecode and decodes it. The default constants ship with the
// binary, so a decode failure is a corrupted build, not a runtime condition.
func defaultCasperCode(rlpDecoder common.Address) []byte {
	src := strings.Replace(
		simplecasper.DefaultCasperContract,
		simplecasper.RlpDecoderPlaceholder,
		hex.EncodeToString(rlpDecoder.Bytes()),
		-1,
	)
	code, err := hex.DecodeString(src)
	if err != nil {
		panic("DefaultCasperContract is not valid hex bytecode: " + err.Error())
	}
	return code
}

func mustDecodeCode(name string, src string) []byte {
	code, err := hex.DecodeString(src)
	if err != nil {
		panic(name + " is not valid hex bytecode: " + err.Error())
	}
	return code
}

func copyBytes(b []byte) []byte {
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(ethparams.Ether))
}
