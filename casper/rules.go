package casper

import (
	"encoding/json"
	"math/big"

	ethparams "github.com/ethereum/go-ethereum/params"
)

// Network identification constants.
const (
	// MainNetworkID is the chain ID of the main network (0xca = 202).
	MainNetworkID uint64 = 0xca

	// TestNetworkID is the chain ID of the test network (0xca2 = 3234).
	TestNetworkID uint64 = 0xca2

	// FakeNetworkID is the chain ID of local/fake networks (0xca3 = 3235).
	FakeNetworkID uint64 = 0xca3
)

// Upgrades tracks which protocol features are enabled for a network.
type Upgrades struct {
	// EIP86 enables the null-signature transaction semantics that privileged
	// vote transactions rely on. Every Casper network runs with it on.
	EIP86 bool
}

// Rules describes the complete configuration of a Casper-enabled network:
// chain identity plus the resolved finality parameters.
type Rules struct {
	// Name is the human-readable network name (e.g. "main", "test", "fake").
	Name string
	// NetworkID is the chain ID used for transaction signing and peering.
	NetworkID uint64

	Upgrades Upgrades

	// Casper holds the resolved finality-overlay parameters.
	Casper Params
}

// MainNetRules returns the production network configuration.
func MainNetRules() Rules {
	return Rules{
		Name:      "main",
		NetworkID: MainNetworkID,
		Upgrades:  Upgrades{EIP86: true},
		Casper:    DefaultParams(),
	}
}

// TestNetRules returns the test network configuration. Same parameters as
// mainnet for realistic testing.
func TestNetRules() Rules {
	return Rules{
		Name:      "test",
		NetworkID: TestNetworkID,
		Upgrades:  Upgrades{EIP86: true},
		Casper:    DefaultParams(),
	}
}

// FakeNetRules returns the configuration of local/fake networks, with
// shortened finality delays so that logout and withdrawal can be exercised
// within a test run. The epoch length keeps its default so epoch arithmetic
// behaves exactly as on mainnet.
func FakeNetRules() Rules {
	withdrawalDelay := uint64(10)
	dynastyLogoutDelay := uint64(5)
	warmUpPeriod := uint64(0)
	return Rules{
		Name:      "fake",
		NetworkID: FakeNetworkID,
		Upgrades:  Upgrades{EIP86: true},
		Casper: ParamsFrom(&Config{
			WithdrawalDelay:    &withdrawalDelay,
			DynastyLogoutDelay: &dynastyLogoutDelay,
			WarmUpPeriod:       &warmUpPeriod,
		}),
	}
}

// EvmChainConfig converts the Rules into an Ethereum ChainConfig for
// transaction signing and EVM execution. The chain keeps ethash proof-of-work
// block production; finality is layered on top by the Casper contract.
func (r Rules) EvmChainConfig() *ethparams.ChainConfig {
	cfg := *ethparams.AllEthashProtocolChanges
	cfg.ChainID = new(big.Int).SetUint64(r.NetworkID)
	return &cfg
}

// Copy creates a deep copy of Rules.
func (r Rules) Copy() Rules {
	cp := r
	cp.Casper = r.Casper.Copy()
	return cp
}

// String returns a JSON representation of Rules for debugging and logging.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
