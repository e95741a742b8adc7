package launcher

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/hybrid-casper/go-casper/casper"
	"github.com/hybrid-casper/go-casper/flags"
)

var app = flags.NewApp()

func init() {
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)
	app.Flags = append(app.Flags, flags.CasperFlags()...)
	app.Action = run
}

// Launch parses flags and runs the launcher.
func Launch(args []string) error {
	return app.Run(args)
}

func run(ctx *cli.Context) error {
	cfg := MakeAllConfigs(ctx)

	if err := setupLogging(cfg.Node.Logging); err != nil {
		return err
	}

	rules, err := makeRules(cfg)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"network":     rules.Name,
		"networkID":   rules.NetworkID,
		"epochLength": rules.Casper.EpochLength,
		"contract":    rules.Casper.ContractAddress.Hex(),
	}).Info("Resolved network rules")

	// Node service assembly is not wired yet; dump the resolved rules so the
	// launcher is usable for configuration validation.
	fmt.Fprintln(app.Writer, rules.String())
	return nil
}

// makeRules picks the network preset and applies the CLI parameter overrides
// on top of it. The zero epoch length is rejected here, during configuration
// loading, so the epoch arithmetic downstream never sees it.
func makeRules(cfg Config) (casper.Rules, error) {
	var rules casper.Rules
	switch cfg.Network {
	case "main":
		rules = casper.MainNetRules()
	case "test":
		rules = casper.TestNetRules()
	case "fake":
		rules = casper.FakeNetRules()
	default:
		return rules, fmt.Errorf("unknown network preset %q", cfg.Network)
	}

	if cfg.Casper.EpochLength != nil {
		if *cfg.Casper.EpochLength == 0 {
			return rules, fmt.Errorf("casper.epochlength must be positive")
		}
		rules.Casper.EpochLength = *cfg.Casper.EpochLength
	}
	if cfg.Casper.ContractAddress != nil {
		rules.Casper.ContractAddress = *cfg.Casper.ContractAddress
	}
	if cfg.Casper.WithdrawalDelay != nil {
		rules.Casper.WithdrawalDelay = *cfg.Casper.WithdrawalDelay
	}
	if cfg.Casper.DynastyLogoutDelay != nil {
		rules.Casper.DynastyLogoutDelay = *cfg.Casper.DynastyLogoutDelay
	}
	if cfg.Casper.WarmUpPeriod != nil {
		rules.Casper.WarmUpPeriod = *cfg.Casper.WarmUpPeriod
	}
	if cfg.Casper.DeployRlpDecoder != nil {
		rules.Casper.DeployRlpDecoder = *cfg.Casper.DeployRlpDecoder
	}

	return rules, nil
}
