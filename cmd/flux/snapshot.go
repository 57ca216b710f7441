package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/flux/pkg/snapshot"
)

func snapshotCmd() *cobra.Command {
	var (
		flags  appFlags
		dir    string
		bucket string
		prefix string
		key    string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the rendered page and state to a directory or S3",
		Long: `Mount the app, dispatch any --dispatch actions and write <key>.html and
<key>.json. Snapshots go to S3 when a bucket is given on the command line
or in the config, and to a local directory otherwise.

Examples:
  flux snapshot --dir ./out --key home
  flux snapshot --bucket my-snapshots --dispatch increment`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(os.Stderr)
			if err != nil {
				return err
			}

			html, err := s.page(pretty)
			if err != nil {
				return err
			}

			cfg := s.cfg.Snapshot
			if bucket != "" {
				cfg.S3.Bucket = bucket
			}
			if prefix != "" {
				cfg.S3.Prefix = prefix
			}
			if dir != "" {
				cfg.Dir = dir
			}
			if key == "" {
				key = snapshot.DefaultKey(time.Now())
			}

			var (
				sink snapshot.Sink
				dest string
			)
			if cfg.S3.Bucket != "" {
				client := snapshot.NewS3Client(snapshot.S3Options{
					Region:          cfg.S3.Region,
					Endpoint:        cfg.S3.Endpoint,
					AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
					SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
					SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
				})
				sink = snapshot.NewS3Sink(client, cfg.S3.Bucket, cfg.S3.Prefix)
				dest = "s3://" + cfg.S3.Bucket + "/" + cfg.S3.Prefix
			} else {
				sink = snapshot.NewDirSink(cfg.Dir)
				dest = cfg.Dir
			}

			if err := snapshot.Write(cmd.Context(), sink, key, html, s.app.Store.GetState()); err != nil {
				return err
			}
			success("Snapshot %s written to %s", key, dest)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (overrides config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix (overrides config)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Snapshot key (default: timestamped)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the HTML output")

	return cmd
}
