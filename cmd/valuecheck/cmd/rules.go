package cmd

import (
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newRulesCommand(flags *globalFlags) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "rules",
		Short: "List available rules and their messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadAppConfig(flags)
			if err != nil {
				return err
			}
			v, err := newValidator(cfg)
			if err != nil {
				return err
			}

			rules := v.Rules()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(rules)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			name := color.New(color.FgHiCyan)
			for _, r := range rules {
				name.Fprint(tw, r.Name)
				tw.Write([]byte("\t" + r.Message + "\n"))
			}
			return tw.Flush()
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the rules as JSON")
	return c
}
