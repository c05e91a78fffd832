package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ffui/pkg/export"
)

func exportCmd(opts *options) *cobra.Command {
	var (
		bucket  string
		key     string
		prefix  string
		tasks   []string
		add     []string
		pretty  bool
		list    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload a rendered snapshot to S3",
		Long: `Render the demo app like 'ffui render' and upload the markup to
S3 or an S3-compatible store. Credentials are read from AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  ffui export --bucket snapshots
  ffui export --key today.html --add "Review PRs"
  ffui export --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg.Export
			if bucket != "" {
				cfg.Bucket = bucket
			}
			if prefix != "" {
				cfg.Prefix = prefix
			}

			client, err := export.NewS3Client(cfg)
			if err != nil {
				return err
			}
			logger := slog.Default()
			exp := export.New(client, cfg.Bucket,
				export.WithPrefix(cfg.Prefix),
				export.WithLogger(logger.With("component", "export")),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if list {
				objects, err := exp.List(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, o := range objects {
					fmt.Fprintf(out, "%s\t%d\t%s\n", o.LastModified.Format(time.RFC3339), o.Size, o.Key)
				}
				return nil
			}

			html, err := snapshot(snapshotOptions{
				tasks:  seedTasks(tasks, opts.cfg.Server.Tasks),
				add:    add,
				pretty: pretty,
			}, logger)
			if err != nil {
				return err
			}
			if key == "" {
				key = fmt.Sprintf("todo-%d.html", time.Now().Unix())
			}
			uri, err := exp.Publish(ctx, key, html)
			if err != nil {
				return err
			}
			success("published %s", uri)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Bucket (default from ffui.toml)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object name (default todo-<unix time>.html)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from ffui.toml)")
	cmd.Flags().StringSliceVar(&tasks, "tasks", nil, "Initial tasks")
	cmd.Flags().StringSliceVar(&add, "add", nil, "Tasks to add through simulated events")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the markup")
	cmd.Flags().BoolVar(&list, "list", false, "List published snapshots instead of uploading")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Upload timeout")

	return cmd
}
