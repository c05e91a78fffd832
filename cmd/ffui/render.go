package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func renderCmd(opts *options) *cobra.Command {
	var (
		tasks   []string
		add     []string
		pretty  bool
		omitIDs bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the demo app's markup",
		Long: `Mount the todo app in an in-memory document and print the
resulting markup. Each --add task is typed and added through the same
input and click events a browser would send.

Examples:
  ffui render --pretty
  ffui render --tasks "Write docs" --add "Ship it"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := snapshot(snapshotOptions{
				tasks:   seedTasks(tasks, opts.cfg.Server.Tasks),
				add:     add,
				pretty:  pretty,
				omitIDs: omitIDs,
			}, slog.Default())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), html)
			if !pretty {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tasks, "tasks", nil, "Initial tasks (default from ffui.toml or built in)")
	cmd.Flags().StringSliceVar(&add, "add", nil, "Tasks to add through simulated events")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVar(&omitIDs, "omit-ids", false, "Drop component id attributes")

	return cmd
}
