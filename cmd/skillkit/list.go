package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the configured skill directories",
	Long: `List the skills found directly inside each skill directory, with their
validation status. Directories default to ./.skills and ~/.skills and can be
set with --dir or the skills.dirs config key. Earlier directories take
precedence when two hold a skill with the same name.

Examples:
  skillkit list
  skillkit list --dir ./skills --match 'pdf-*'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		patterns, _ := cmd.Flags().GetStringSlice("match")
		return runList(cmd.Context(), cmd.OutOrStdout(), patterns)
	},
}

func init() {
	listCmd.Flags().StringSliceP("dir", "d", nil, "Skill directory to scan (repeatable)")
	listCmd.Flags().StringSliceP("match", "m", nil, "Only show skills whose name matches the glob pattern (repeatable)")
	viper.BindPFlag("skills.dirs", listCmd.Flags().Lookup("dir"))

	rootCmd.AddCommand(listCmd)
}

func runList(ctx context.Context, w io.Writer, patterns []string) error {
	discovery, err := skills.Initialize(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to initialize skill discovery")
	}

	entries, err := discovery.DiscoverSkills()
	if err != nil {
		return errors.Wrap(err, "failed to discover skills")
	}

	entries, err = skills.FilterByPatterns(entries, patterns)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No skills found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t---------\t-----------")

	for _, e := range entries {
		status := "ok"
		if !e.Result.Valid {
			status = "invalid"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, status, e.Directory, truncate(e.Metadata.Description, 60))
	}
	return tw.Flush()
}

// truncate shortens s to at most limit characters, marking the cut with "..."
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-3]) + "..."
}
