package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		flags  appFlags
		pretty bool
		q      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the app to stdout",
		Long: `Mount the app, dispatch any --dispatch actions in order and print the
resulting HTML page. With --query, print the state value at a gjson path
instead.

Examples:
  flux render --pretty
  flux render --set count=3 --dispatch increment:'{"amount":2}'
  flux render --dispatch rename:'{"title":"Hello"}' --query title`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(os.Stderr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if q != "" {
				v, err := query(s.app.Store.GetState(), q)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			}

			html, err := s.page(pretty)
			if err != nil {
				return err
			}
			fmt.Fprint(out, html)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the HTML output")
	cmd.Flags().StringVarP(&q, "query", "q", "", "Print the state value at this gjson path instead of HTML")

	return cmd
}
