package main

import (
	"fmt"

	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the SKILL.md header",
	Long: `Print a JSON Schema describing the keys accepted in a SKILL.md header
block. Editors can use it to offer completion and inline checks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := skills.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
