package bucket

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// PutReport uploads body under BaseFolder/key and returns its public URL.
func (b *Bucket) PutReport(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	fp := b.constructFullPath(key)
	r := bytes.NewReader(body)

	_, err := b.Client.PutObject(ctx, b.S3BucketName, fp, r, int64(r.Len()), minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", fileName(fp)),
	})
	if err != nil {
		return "", fmt.Errorf("error putting object: %w", err)
	}
	return b.getCDNURL(fp), nil
}
