package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuecheck/pkg/validator"
)

type checkResult struct {
	Valid  bool                       `json:"valid"`
	Errors validator.ValidationErrors `json:"errors"`
}

func newCheckCommand(flags *globalFlags) *cobra.Command {
	var (
		rules  []string
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "check [VALUE]",
		Short: "Validate a value against rules",
		Example: `  valuecheck check -r required -r "minLength(5)" hello
  valuecheck check -r isEmail -r "maxLength(64)" --json user@example.com
  valuecheck check -r "greaterThanDate(today)" 12/31/2030`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAppConfig(flags)
			if err != nil {
				return err
			}
			v, err := newValidator(cfg)
			if err != nil {
				return err
			}

			var value string
			if len(args) == 1 {
				value = args[0]
			}

			failures, err := v.Validate(rules, value)
			if err != nil {
				return configError(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				err = printCheckJSON(out, failures)
			} else {
				printCheck(out, failures)
			}
			if err != nil {
				return err
			}
			if !failures.IsEmpty() {
				return &exitError{code: ExitInvalid}
			}
			return nil
		},
	}
	c.Flags().StringArrayVarP(&rules, "rule", "r", nil, `rule specifier, repeatable (e.g. -r required -r "minLength(5)")`)
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return c
}

func printCheck(w io.Writer, failures validator.ValidationErrors) {
	if failures.IsEmpty() {
		color.New(color.FgHiGreen).Fprintln(w, "valid")
		return
	}
	fail := color.New(color.FgHiRed)
	rule := color.New(color.FgHiYellow)
	for _, f := range failures {
		fail.Fprint(w, "invalid ")
		rule.Fprint(w, f.Rule)
		fmt.Fprintf(w, ": %s\n", f.Message)
	}
}

func printCheckJSON(w io.Writer, failures validator.ValidationErrors) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(checkResult{Valid: failures.IsEmpty(), Errors: failures})
}
