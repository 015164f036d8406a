package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [document]",
	Short: "Run a GraphQL document against a server",
	Long:  "Send a query or mutation to the server and print the JSON response",
	Example: `  animes query '{ anime(id: 5) { name characters { name } } }'
  animes query 'query ($id: Int) { genre(id: $id) { name } }' --var id=1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawVars, _ := cmd.Flags().GetStringArray("var")
		vars, err := parseVars(rawVars)
		if err != nil {
			return err
		}

		body, err := newClient(cmd).Raw(cmd.Context(), args[0], vars)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}

		// json.Indent keeps the field order of the response
		var out bytes.Buffer
		if err := json.Indent(&out, body, "", "  "); err != nil {
			out.Reset()
			out.Write(body)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(out.String()))
		return nil
	},
}

func init() {
	queryCmd.Flags().StringArray("var", nil, "variable as name=value; values are parsed as JSON when possible")
	rootCmd.AddCommand(queryCmd)
}

// parseVars turns name=value pairs into GraphQL variables. Values that are
// valid JSON (numbers, booleans, objects) keep their type; anything else is
// sent as a string.
func parseVars(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	vars := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=value", pair)
		}

		var parsed any
		if err := jsoniter.UnmarshalFromString(value, &parsed); err != nil {
			parsed = value
		}
		vars[name] = parsed
	}
	return vars, nil
}
