package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the bare CLI application; commands and flags are attached by
// the launcher.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "casper"
	app.Usage = "Hybrid Casper finality overlay node"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}
