package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kerbaras/animes/pkg/app"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalogue in an interactive UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewApp(newClient(cmd)).Run()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
