package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/animes/pkg/client"
)

const defaultEndpoint = "http://localhost:5000/graphql"

var rootCmd = &cobra.Command{
	Use:   "animes",
	Short: "A GraphQL catalogue of genres, animes and characters",
	Long:  "Serve and browse an in-memory catalogue of genres, animes and characters over GraphQL",
	// Serve by default
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to an HCL config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringP("endpoint", "e", defaultEndpoint, "GraphQL endpoint used by client commands")

	addServeFlags(rootCmd)
}

func newClient(cmd *cobra.Command) *client.Client {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	return client.New(endpoint)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
