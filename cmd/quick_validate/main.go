// Command quick_validate checks the SKILL.md header block of a skill directory.
//
// Usage:
//
//	quick_validate <skill_directory>
//
// It prints a single result message and exits 0 when the skill is valid.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/spf13/pflag"
)

const usage = "Usage: quick_validate <skill_directory>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("quick_validate", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	if err := flags.Parse(args); err != nil || flags.NArg() != 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	result := skills.Validate(flags.Arg(0))
	fmt.Fprintln(stdout, result.Message)
	if !result.Valid {
		return 1
	}
	return 0
}
