package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ai_dashboard_server/internal/app"
	"ai_dashboard_server/internal/i18n"
)

func runCmd(opts *options) *cobra.Command {
	var (
		input string
		lang  string
	)
	cmd := &cobra.Command{
		Use:   "run <flow>",
		Short: "Run a flow against the configured AI provider and print its JSON output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, ok := i18n.Parse(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}
			return opts.withApp(cmd.Context(), func(a *app.App) error {
				res, err := a.Flows.RunJSON(cmd.Context(), a.Deps(), args[0], json.RawMessage(input), i18n.Name(tag))
				if err != nil {
					return err
				}
				var out bytes.Buffer
				if err := json.Indent(&out, res.Output, "", "  "); err != nil {
					out.Reset()
					out.Write(res.Output)
				}
				if res.Cached {
					fmt.Fprintln(cmd.ErrOrStderr(), "(cached)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.String())
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "flow input as a JSON object")
	cmd.Flags().StringVarP(&lang, "lang", "l", "ti", "request language (ti, en, ar)")
	return cmd
}
