package launcher

// DefaultNodeConfig bundles the baseline node settings used before flags
// override them.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		DataDir: "~/.casper",
		Logging: LoggingConfig{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
