// Command init_skill scaffolds a new skill directory from the built-in template.
//
// Usage:
//
//	init_skill <skill-name> --path <path>
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skillcli"
	"github.com/spf13/pflag"
)

const usage = `Usage: init_skill <skill-name> --path <path>

` + skillcli.InitUsageNotes + `

Examples:
  init_skill my-new-skill --path skills/public
  init_skill my-api-helper --path skills/private
  init_skill custom-skill --path /custom/location
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("init_skill", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	path := flags.String("path", "", "Parent directory in which the skill directory is created")

	if err := flags.Parse(args); err != nil || flags.NArg() != 1 || *path == "" {
		fmt.Fprint(stdout, usage)
		return 1
	}

	p := presenter.NewWithWriters(stdout, stderr)
	if _, err := skillcli.Init(context.Background(), p, flags.Arg(0), *path); err != nil {
		return 1
	}
	return 0
}
