package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kerbaras/animes/pkg/config"
)

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", `address to listen on (default ":5000")`)
	cmd.Flags().String("store", "", "store backend: memory, duckdb or sqlite")
	cmd.Flags().Bool("graphiql", true, "serve the GraphiQL explorer on GET /graphql")
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// loadConfig layers the config file and then any flag set on the command
// line over the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if flagChanged(cmd, "addr") {
		cfg.ListenAddr, _ = cmd.Flags().GetString("addr")
	}
	if flagChanged(cmd, "store") {
		cfg.Store, _ = cmd.Flags().GetString("store")
	}
	if flagChanged(cmd, "graphiql") {
		cfg.GraphiQL, _ = cmd.Flags().GetBool("graphiql")
	}
	if flagChanged(cmd, "log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if flagChanged(cmd, "log-format") {
		cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
