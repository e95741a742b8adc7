package launcher

import (
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/urfave/cli.v1"

	"github.com/hybrid-casper/go-casper/casper"
)

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	Node    NodeConfig
	Network string
	// Casper carries only the fields explicitly set on the command line;
	// unset fields stay nil so the network preset's values survive.
	Casper casper.Config
}

type NodeConfig struct {
	DataDir string
	Logging LoggingConfig
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

// MakeAllConfigs merges defaults with CLI flag overrides.
func MakeAllConfigs(ctx *cli.Context) Config {
	cfg := Config{
		Node:    DefaultNodeConfig(),
		Network: ctx.String("network"),
	}

	if ctx.IsSet("datadir") {
		cfg.Node.DataDir = ctx.String("datadir")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Node.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.format") {
		cfg.Node.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.color") {
		cfg.Node.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("sentry.dsn") {
		cfg.Node.Logging.SentryDSN = ctx.String("sentry.dsn")
	}

	if ctx.IsSet("casper.epochlength") {
		v := ctx.Uint64("casper.epochlength")
		cfg.Casper.EpochLength = &v
	}
	if ctx.IsSet("casper.contract") {
		addr := common.HexToAddress(ctx.String("casper.contract"))
		cfg.Casper.ContractAddress = &addr
	}
	if ctx.IsSet("casper.withdrawaldelay") {
		v := ctx.Uint64("casper.withdrawaldelay")
		cfg.Casper.WithdrawalDelay = &v
	}
	if ctx.IsSet("casper.dynastylogoutdelay") {
		v := ctx.Uint64("casper.dynastylogoutdelay")
		cfg.Casper.DynastyLogoutDelay = &v
	}
	if ctx.IsSet("casper.warmup") {
		v := ctx.Uint64("casper.warmup")
		cfg.Casper.WarmUpPeriod = &v
	}
	if ctx.IsSet("casper.deployrlpdecoder") {
		v := ctx.BoolT("casper.deployrlpdecoder")
		cfg.Casper.DeployRlpDecoder = &v
	}

	return cfg
}
