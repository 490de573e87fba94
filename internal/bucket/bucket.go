package bucket

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	S3AccessKey       string `mapstructure:"s3AccessKey"`
	S3SecretAccessKey string `mapstructure:"s3SecretAccessKey"`
	S3Endpoint        string `mapstructure:"s3Endpoint"`
	S3BucketName      string `mapstructure:"s3BucketName"`
	S3BucketLocation  string `mapstructure:"s3BucketLocation"`
	S3Insecure        bool   `mapstructure:"s3Insecure"`
	BaseFolder        string `mapstructure:"baseFolder"`
	SubdomainEndpoint string `mapstructure:"subdomainEndpoint"`
}

// Bucket archives rendered reports in an S3 compatible object store.
type Bucket struct {
	*minio.Client
	*Config
}

func New(c *Config) (*Bucket, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: !c.S3Insecure,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}
	return &Bucket{
		Client: cli,
		Config: c,
	}, nil
}
