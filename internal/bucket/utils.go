package bucket

import (
	"fmt"
	"path"
	"strings"
)

func (b *Bucket) constructFullPath(key string) string {
	return strings.TrimPrefix(path.Clean(path.Join(b.BaseFolder, key)), "/")
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, filePath)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}

func fileName(fp string) string {
	return path.Base(fp)
}
