package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jingkaihe/skillkit/pkg/logger"
	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ValidateConfig struct {
	Format  string
	Verbose bool
	Quiet   bool
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Format:  "text",
		Verbose: false,
		Quiet:   false,
	}
}

// Report is the per-directory validation output. Metadata and Outline are
// only filled for structured formats or verbose text output.
type Report struct {
	skills.Result `yaml:",inline"`
	Metadata      *skills.Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Outline       *skills.Outline  `json:"outline,omitempty" yaml:"outline,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <skill-dir>...",
	Short: "Validate the SKILL.md header of one or more skills",
	Long: `Validate the SKILL.md header block of each given skill directory. Checks
stop at the first failing rule for a directory and report a single message.

Examples:
  skillkit validate ./my-skill
  skillkit validate ./pdf-tools ./stripe-payments --format json
  skillkit validate ./skills/* --quiet`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := getValidateConfigFromFlags(cmd)
		return runValidate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, config)
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().StringP("format", "f", defaults.Format, "Output format (text, json, yaml)")
	validateCmd.Flags().BoolP("verbose", "v", defaults.Verbose, "Show body outline and remaining TODO markers")
	validateCmd.Flags().BoolP("quiet", "q", defaults.Quiet, "Only show failures (text format)")

	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if format, err := cmd.Flags().GetString("format"); err == nil {
		config.Format = format
	}
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil {
		config.Verbose = verbose
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
		config.Quiet = quiet
	}
	return config
}

// runValidate writes one report per directory to w. When any directory fails,
// the returned error aggregates every failure; in text format it is also
// summarised on errW.
func runValidate(ctx context.Context, w, errW io.Writer, dirs []string, config *ValidateConfig) error {
	switch config.Format {
	case "text", "json", "yaml":
	default:
		return errors.Errorf("unsupported format %q", config.Format)
	}

	detailed := config.Verbose || config.Format != "text"

	var result *multierror.Error
	reports := make([]Report, 0, len(dirs))
	for _, dir := range dirs {
		r := buildReport(dir, detailed)
		logger.G(ctx).WithField("dir", dir).WithField("valid", r.Valid).Debug("validated skill")

		reports = append(reports, r)
		if !r.Valid {
			result = multierror.Append(result, errors.Errorf("%s: %s", dir, r.Message))
		}
	}

	if result != nil {
		result.ErrorFormat = failureSummary
	}

	p := presenter.NewWithWriters(w, errW)
	p.SetQuiet(config.Quiet)

	if err := renderReports(w, p, config, reports); err != nil {
		return err
	}

	if err := result.ErrorOrNil(); err != nil {
		if config.Format == "text" {
			p.Error(err, "")
		}
		return reportedError{err}
	}
	return nil
}

func failureSummary(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d skill(s) failed validation: %s", len(errs), strings.Join(msgs, "; "))
}

func buildReport(dir string, detailed bool) Report {
	r := Report{Result: skills.Validate(dir)}
	if !detailed {
		return r
	}

	header, content, err := skills.ReadHeader(dir)
	if content != "" {
		outline := skills.BuildOutline(content)
		r.Outline = &outline
	}
	if err != nil {
		return r
	}
	if md, err := header.Metadata(); err == nil {
		r.Metadata = &md
	}
	return r
}

func renderReports(w io.Writer, p presenter.Presenter, config *ValidateConfig, reports []Report) error {
	switch config.Format {
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal report")
		}
		fmt.Fprintln(w, string(data))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.Wrap(err, "failed to encode report")
		}
		return enc.Close()
	}

	for _, r := range reports {
		if r.Valid {
			p.Success(fmt.Sprintf("%s: %s", r.Path, r.Message))
		} else {
			p.Failure(fmt.Sprintf("%s: %s", r.Path, r.Message))
		}
		if config.Verbose && r.Outline != nil {
			for _, h := range r.Outline.Headings {
				p.Info(fmt.Sprintf("  %s %s", strings.Repeat("#", h.Level), h.Title))
			}
			if r.Outline.TODOs > 0 {
				p.Warning(fmt.Sprintf("%d TODO marker(s) left in SKILL.md", r.Outline.TODOs))
			}
		}
	}
	return nil
}
