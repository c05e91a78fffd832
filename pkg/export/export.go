package export

import (
	"context"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/ffui/internal/errors"
)

// ContentType is the content type of published snapshots.
const ContentType = "text/html; charset=utf-8"

// ObjectAPI is the subset of the S3 client the exporter uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	s3.ListObjectsV2APIClient
}

var _ ObjectAPI = (*s3.Client)(nil)

// Exporter uploads snapshots under a key prefix in one bucket.
type Exporter struct {
	client ObjectAPI
	bucket string
	prefix string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithPrefix places every object under prefix.
func WithPrefix(prefix string) Option {
	return func(e *Exporter) {
		e.prefix = strings.Trim(prefix, "/")
	}
}

// WithLogger sets the exporter's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = l
	}
}

// WithClock overrides the time source used for object metadata.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// New creates an Exporter.
func New(client ObjectAPI, bucket string, opts ...Option) *Exporter {
	e := &Exporter{
		client: client,
		bucket: bucket,
		now:    time.Now,
		logger: slog.Default().With("component", "export"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Key returns the full object key for name.
func (e *Exporter) Key(name string) string {
	name = strings.TrimLeft(name, "/")
	if e.prefix == "" {
		return name
	}
	return path.Join(e.prefix, name)
}

// Publish uploads html as name and returns its s3:// URI.
func (e *Exporter) Publish(ctx context.Context, name, html string) (string, error) {
	if e.bucket == "" {
		return "", errors.New(errors.CodeExportFailed).
			WithDetail("no bucket configured").
			WithSuggestion("Set export.bucket in ffui.toml or pass --bucket")
	}
	if strings.TrimSpace(name) == "" {
		return "", errors.New(errors.CodeExportFailed).WithDetail("object name is empty")
	}

	key := e.Key(name)
	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(e.bucket),
		Key:           aws.String(key),
		Body:          strings.NewReader(html),
		ContentLength: aws.Int64(int64(len(html))),
		ContentType:   aws.String(ContentType),
		Metadata: map[string]string{
			"rendered-at": e.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New(errors.CodeExportFailed).
			WithDetailf("put s3://%s/%s", e.bucket, key).
			Wrap(err)
	}

	uri := "s3://" + e.bucket + "/" + key
	e.logger.Info("snapshot published", "uri", uri, "bytes", len(html))
	return uri, nil
}

// Object describes a published snapshot.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// List returns the snapshots under the prefix, newest first.
func (e *Exporter) List(ctx context.Context) ([]Object, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(e.bucket)}
	if e.prefix != "" {
		input.Prefix = aws.String(e.prefix + "/")
	}

	var out []Object
	p := s3.NewListObjectsV2Paginator(e.client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.New(errors.CodeExportFailed).
				WithDetailf("list s3://%s/%s", e.bucket, e.prefix).
				Wrap(err)
		}
		for _, obj := range page.Contents {
			o := Object{Key: aws.ToString(obj.Key), Size: aws.ToInt64(obj.Size)}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastModified.After(out[j].LastModified)
	})
	return out, nil
}
