// Package cmd implements the valuecheck command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitConfig  = 2
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// exitError carries a process exit code. A nil err means the command already
// reported the outcome.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

type globalFlags struct {
	messagesFile string
	timezone     string
}

// Execute runs the command line with the process arguments and streams.
func Execute(ctx context.Context) int {
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	code := ExitInvalid
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
		if ee.err == nil {
			return code
		}
	}
	color.New(color.FgHiRed, color.Bold).Fprint(stderr, "error: ")
	fmt.Fprintln(stderr, err)
	return code
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "valuecheck",
		Short: "Validate values against declarative rule lists",
		Long: `valuecheck evaluates a value against rules such as "required",
"isEmail" or "minLength(5)" and reports every rule that fails.

Settings are read from the environment (and a .env file):
  APP_NAME, APP_ENV, LOG_LEVEL       logging
  VALUECHECK_MESSAGES_FILE           YAML file overriding rule messages
  VALUECHECK_TIMEZONE                location used to resolve dates
  VALUECHECK_RATE_LIMIT              requests per window per client for serve
  VALUECHECK_RATE_WINDOW             rate limit window (default 1m)
  VALUECHECK_TRUST_PROXY             key clients by forwarding headers
  HTTP_ADDR, HTTP_*_TIMEOUT          HTTP server settings for serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: ExitConfig, err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.messagesFile, "messages", "", "YAML file with message overrides (overrides VALUECHECK_MESSAGES_FILE)")
	pf.StringVar(&flags.timezone, "timezone", "", "IANA location for date rules (overrides VALUECHECK_TIMEZONE)")

	root.AddCommand(
		newCheckCommand(flags),
		newRulesCommand(flags),
		newServeCommand(flags),
		newVersionCommand(),
	)
	return root
}
