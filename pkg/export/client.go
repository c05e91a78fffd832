package export

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/ffui/internal/config"
	"github.com/vango-dev/ffui/internal/errors"
)

// Credential environment variables.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
)

// NewS3Client builds an S3 client from the export section. Static
// credentials are read from the standard AWS environment variables when the
// client first signs a request.
func NewS3Client(cfg config.ExportConfig) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, errors.New(errors.CodeExportFailed).WithDetail("export.region is empty")
	}

	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.PathStyle,
		Credentials:  aws.NewCredentialsCache(EnvCredentials()),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts), nil
}

// EnvCredentials returns a provider reading static credentials from the
// environment.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id, secret := os.Getenv(EnvAccessKeyID), os.Getenv(EnvSecretAccessKey)
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New(errors.CodeExportFailed).
				WithDetailf("%s and %s must be set", EnvAccessKeyID, EnvSecretAccessKey)
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv(EnvSessionToken),
			Source:          "ffui-env",
		}, nil
	})
}
