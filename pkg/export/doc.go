// Package export publishes rendered snapshots of the live tree to S3 or any
// S3-compatible object store.
//
//	client, err := export.NewS3Client(cfg.Export)
//	exp := export.New(client, cfg.Export.Bucket, export.WithPrefix(cfg.Export.Prefix))
//	uri, err := exp.Publish(ctx, "todo.html", html)
package export
