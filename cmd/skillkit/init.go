package main

import (
	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skillcli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init <skill-name>",
	Short: "Scaffold a new skill directory",
	Long: `Create <path>/<skill-name> with a templated SKILL.md and example
scripts/, references/ and assets/ directories. An existing directory is never
overwritten.

` + skillcli.InitUsageNotes + `

Examples:
  skillkit init my-new-skill
  skillkit init my-api-helper --path skills/public`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := presenter.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
		if _, err := skillcli.Init(cmd.Context(), p, args[0], viper.GetString("path")); err != nil {
			return reportedError{err}
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringP("path", "p", ".", "Parent directory in which the skill directory is created")
	viper.BindPFlag("path", initCmd.Flags().Lookup("path"))

	rootCmd.AddCommand(initCmd)
}
