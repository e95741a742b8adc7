package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NetworkFlags selects which network preset the node runs.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Network preset to run (main|test|fake)",
			Value: "main",
		},
	}
}

// CasperFlags exposes the finality parameters that may be overridden from the
// command line. The full parameter set (contract bytecodes, balances) comes
// from the chain specification file; these flags cover the operational knobs.
func CasperFlags() []cli.Flag {
	return []cli.Flag{
		cli.Uint64Flag{
			Name:  "casper.epochlength",
			Usage: "Number of blocks per finality epoch",
		},
		cli.StringFlag{
			Name:  "casper.contract",
			Usage: "Address of the deployed vote contract",
		},
		cli.Uint64Flag{
			Name:  "casper.withdrawaldelay",
			Usage: "Delay in epochs before a logged-out deposit can be withdrawn",
		},
		cli.Uint64Flag{
			Name:  "casper.dynastylogoutdelay",
			Usage: "Delay in dynasties before a logout takes effect",
		},
		cli.Uint64Flag{
			Name:  "casper.warmup",
			Usage: "Number of blocks before voting begins",
		},
		cli.BoolTFlag{
			Name:  "casper.deployrlpdecoder",
			Usage: "Deploy the RLP decoder contract at genesis",
		},
	}
}
