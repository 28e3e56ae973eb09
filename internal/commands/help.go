package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Aliases() []string   { return nil }
func (c *HelpCmd) Synopsis() string    { return "Print usage" }
func (c *HelpCmd) Usage() string       { return "taskman help" }
func (c *HelpCmd) RequiresLogin() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskman                                      List your tasks
  taskman list [common flags] [--filter <text>]
  taskman add [common flags] [--desc <text>] <title...>
  taskman edit [common flags] [--title <text>] [--desc <text>] <ref>
  taskman done [common flags] <ref>
  taskman rm [common flags] [--yes] <ref>
  taskman login [common flags] [--yes] <email>
  taskman register [common flags] <email>
  taskman logout [common flags]
  taskman status [common flags]
  taskman help
  taskman version

A <ref> is the task's number from the last listing, its id, or its title.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
